package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/questlog/internal/domain"
	"github.com/alexanderramin/questlog/internal/oracle"
)

// BriefingService asks the oracle for a per-quest timeframe and execution
// hint for a given day's quest set. Results are ephemeral: the caller
// discards them as soon as the underlying quest subset changes.
type BriefingService struct {
	client oracle.Client
}

// NewBriefingService creates a BriefingService.
func NewBriefingService(client oracle.Client) *BriefingService {
	return &BriefingService{client: client}
}

type briefingResponse struct {
	Briefings []domain.DailyBriefingItem `json:"briefings"`
}

// Briefing returns briefing items keyed by quest id for the given quests,
// or nil on transport or schema failure. Items for unknown ids are dropped.
func (s *BriefingService) Briefing(ctx context.Context, quests []domain.Quest) []domain.DailyBriefingItem {
	if len(quests) == 0 {
		return nil
	}

	resp, err := s.client.Generate(ctx, oracle.GenerateRequest{
		Task:         oracle.TaskBriefing,
		SystemPrompt: briefingSystemPrompt,
		UserPrompt:   buildBriefingUserPrompt(quests),
	})
	if err != nil {
		return nil
	}

	parsed, err := oracle.ExtractJSON[briefingResponse](resp.Text, validateBriefingResponse)
	if err != nil {
		return nil
	}

	known := make(map[string]bool, len(quests))
	for _, q := range quests {
		known[q.ID] = true
	}

	var out []domain.DailyBriefingItem
	for _, item := range parsed.Briefings {
		if !known[item.ID] || item.Timeframe == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

func validateBriefingResponse(r briefingResponse) error {
	if len(r.Briefings) == 0 {
		return fmt.Errorf("briefings array is required")
	}
	return nil
}

func buildBriefingUserPrompt(quests []domain.Quest) string {
	type questSummary struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	summaries := make([]questSummary, 0, len(quests))
	for _, q := range quests {
		summaries = append(summaries, questSummary{ID: q.ID, Title: q.Title, Description: q.Description})
	}
	data, _ := json.Marshal(summaries)

	var b strings.Builder
	b.WriteString("Quests for today:\n")
	b.Write(data)
	return b.String()
}
