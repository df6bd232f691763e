package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/questlog/internal/domain"
)

// resolveQuestID maps user input to a quest id. Accepts an exact id, a
// unique id prefix, or a unique case-insensitive title match.
func resolveQuestID(quests []domain.Quest, arg string) (string, error) {
	for _, q := range quests {
		if q.ID == arg {
			return q.ID, nil
		}
	}

	var matches []string
	for _, q := range quests {
		if strings.HasPrefix(q.ID, arg) {
			matches = append(matches, q.ID)
		}
	}
	if len(matches) == 0 {
		lower := strings.ToLower(arg)
		for _, q := range quests {
			if strings.ToLower(q.Title) == lower {
				matches = append(matches, q.ID)
			}
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no quest matches %q", arg)
	default:
		return "", fmt.Errorf("%q is ambiguous (%d matches); use a longer id prefix", arg, len(matches))
	}
}
