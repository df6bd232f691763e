package domain

// QuestFilter names the board view subsets that drive suggestions.
type QuestFilter string

const (
	FilterActive      QuestFilter = "active"
	FilterCompleted   QuestFilter = "completed"
	FilterToday       QuestFilter = "today"
	FilterSelectedDay QuestFilter = "selected_day"
)

// ScheduleSuggestion pairs a quest id with an oracle-proposed due date.
// Suggestions are ephemeral: they live only inside a planning session and
// are discarded on close or after being applied.
type ScheduleSuggestion struct {
	ID            string `json:"id"`
	SuggestedDate string `json:"suggestedDate"` // YYYY-MM-DD
}

// DailyBriefingItem annotates one quest of a given day with a suggested
// timeframe and a short actionable hint. Recomputed whenever the day's
// quest set changes.
type DailyBriefingItem struct {
	ID        string `json:"id"`
	Timeframe string `json:"timeframe"`
	Hint      string `json:"hint"`
}

// FilterQuests returns the subset of quests matching the filter.
// selectedDate is only consulted for FilterSelectedDay.
func FilterQuests(quests []Quest, filter QuestFilter, today, selectedDate string) []Quest {
	var out []Quest
	for _, q := range quests {
		switch filter {
		case FilterActive:
			if q.Status == QuestActive {
				out = append(out, q)
			}
		case FilterCompleted:
			if q.Status == QuestCompleted {
				out = append(out, q)
			}
		case FilterToday:
			if q.DueDate == today {
				out = append(out, q)
			}
		case FilterSelectedDay:
			if q.DueDate == selectedDate {
				out = append(out, q)
			}
		}
	}
	return out
}
