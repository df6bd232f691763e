package intelligence

import (
	"encoding/json"
	"strings"

	"github.com/alexanderramin/questlog/internal/domain"
)

// questReply mirrors the JSON object the chat prompt asks the oracle to
// embed in its reply. XP is a pointer so "present and numeric" can be
// distinguished from absent.
type questReply struct {
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	XP          *float64 `json:"xp"`
	DueDate     string   `json:"dueDate"`
	Tags        []any    `json:"tags"`
}

// ParseQuestReply splits a raw oracle chat reply into the visible bot text
// and an optional structured quest draft.
//
// The extraction heuristic is deliberately loose and kept for compatibility
// with the established conversation UX: take the substring from the first
// '{' to the last '}' and try to parse it as a quest object. A reply with
// a valid quest shows only the text before the JSON (trimmed); anything
// else shows the full raw text.
func ParseQuestReply(raw string) (string, *domain.QuestDraft) {
	start := strings.IndexByte(raw, '{')
	if start == -1 {
		return raw, nil
	}

	end := strings.LastIndexByte(raw, '}')
	if end < start {
		return raw, nil
	}

	var parsed questReply
	if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil {
		return raw, nil
	}
	if parsed.Type != "quest" || parsed.Title == "" || parsed.Description == "" || parsed.XP == nil {
		return raw, nil
	}

	draft := &domain.QuestDraft{
		Title:       parsed.Title,
		Description: parsed.Description,
		XP:          int(*parsed.XP),
		DueDate:     parsed.DueDate,
	}
	for _, t := range parsed.Tags {
		if s, ok := t.(string); ok {
			draft.Tags = append(draft.Tags, s)
		}
	}

	text := raw
	if start > 0 {
		text = strings.TrimSpace(raw[:start])
	}
	return text, draft
}
