package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/questlog/internal/domain"
	"github.com/alexanderramin/questlog/internal/oracle"
)

// SuggestionBatchSize is how many quest drafts one request yields.
const SuggestionBatchSize = 3

// SuggestionInput is the context driving one batch suggestion request.
type SuggestionInput struct {
	ContextQuests []domain.Quest
	Filter        domain.QuestFilter
	Transcript    []domain.ChatMessage
	SelectedDate  string // YYYY-MM-DD, consulted for the selected_day filter
}

// SuggestionService asks the oracle for batches of candidate quests
// relevant to the current view, independent of the chat proposal flow.
type SuggestionService struct {
	client oracle.Client
}

// NewSuggestionService creates a SuggestionService.
func NewSuggestionService(client oracle.Client) *SuggestionService {
	return &SuggestionService{client: client}
}

// HasContext reports whether there is anything worth suggesting from yet:
// a transcript beyond the initial greeting, or quests in view.
func (in SuggestionInput) HasContext() bool {
	return len(in.Transcript) > 1 || len(in.ContextQuests) > 0
}

type suggestionBatch struct {
	Quests []domain.QuestDraft `json:"quests"`
}

// Suggest returns up to SuggestionBatchSize quest drafts, or nil when the
// request fails or its output doesn't match the expected shape. With no
// meaningful context it returns nil without issuing a request at all.
func (s *SuggestionService) Suggest(ctx context.Context, in SuggestionInput) []domain.QuestDraft {
	if !in.HasContext() {
		return nil
	}

	resp, err := s.client.Generate(ctx, oracle.GenerateRequest{
		Task:         oracle.TaskSuggest,
		SystemPrompt: suggestSystemPrompt,
		UserPrompt:   buildSuggestUserPrompt(in),
	})
	if err != nil {
		return nil
	}

	batch, err := oracle.ExtractJSON[suggestionBatch](resp.Text, validateSuggestionBatch)
	if err != nil {
		return nil
	}

	drafts := make([]domain.QuestDraft, 0, SuggestionBatchSize)
	for _, d := range batch.Quests {
		if d.Title == "" || d.Description == "" || d.XP == 0 {
			continue
		}
		d.Tags = domain.NormalizeTags(d.Tags)
		drafts = append(drafts, d)
		if len(drafts) == SuggestionBatchSize {
			break
		}
	}
	if len(drafts) == 0 {
		return nil
	}
	return drafts
}

func validateSuggestionBatch(b suggestionBatch) error {
	if len(b.Quests) == 0 {
		return fmt.Errorf("quests array is required")
	}
	return nil
}

// RemoveByTitle drops the first draft with the given title from the batch.
// Drafts have no id until accepted, so title matching is the only handle.
func RemoveByTitle(drafts []domain.QuestDraft, title string) []domain.QuestDraft {
	for i, d := range drafts {
		if d.Title == title {
			return append(drafts[:i:i], drafts[i+1:]...)
		}
	}
	return drafts
}

func buildSuggestUserPrompt(in SuggestionInput) string {
	var b strings.Builder

	recent := recentTranscript(in.Transcript, 6)
	if len(recent) > 0 {
		b.WriteString("Recent conversation:\n---\n")
		for _, m := range recent {
			if m.Sender == domain.SenderUser {
				b.WriteString("User: ")
			} else {
				b.WriteString("Coach: ")
			}
			b.WriteString(m.Text)
			b.WriteString("\n")
		}
		b.WriteString("---\n\n")
	}

	b.WriteString("Filter context: ")
	b.WriteString(filterContext(in.Filter, in.SelectedDate))
	b.WriteString("\n\nExisting quests:\n")

	type questContext struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Tags        []string `json:"tags,omitempty"`
	}
	summaries := make([]questContext, 0, len(in.ContextQuests))
	for _, q := range in.ContextQuests {
		summaries = append(summaries, questContext{Title: q.Title, Description: q.Description, Tags: q.Tags})
	}
	data, _ := json.Marshal(summaries)
	b.Write(data)

	return b.String()
}

// filterContext phrases what kind of suggestions fit the active view.
func filterContext(filter domain.QuestFilter, selectedDate string) string {
	switch filter {
	case domain.FilterCompleted:
		return "Based on these recently completed quests, suggest three new quests that the user might enjoy."
	case domain.FilterToday:
		return "Based on the quests scheduled for today, suggest three small, quick, and easy quests that could also be accomplished today without much effort."
	case domain.FilterSelectedDay:
		day := "the selected day"
		if selectedDate != "" {
			day = selectedDate
		}
		return fmt.Sprintf("Based on the quests scheduled for %s, suggest three small, quick quests that could also be accomplished on that day.", day)
	default:
		return "Based on these currently active quests, suggest three new quests that are logical next steps or similar in theme."
	}
}

// recentTranscript returns the last n turns, skipping the seeded greeting.
func recentTranscript(transcript []domain.ChatMessage, n int) []domain.ChatMessage {
	if len(transcript) > 0 && transcript[0].Sender == domain.SenderBot && transcript[0].Text == domain.GreetingMessage {
		transcript = transcript[1:]
	}
	if len(transcript) > n {
		transcript = transcript[len(transcript)-n:]
	}
	return transcript
}
