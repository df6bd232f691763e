package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/questlog/internal/domain"
	"github.com/alexanderramin/questlog/internal/oracle"
)

// ScheduleService asks the oracle to assign due dates to every unscheduled
// quest. The proposal is only ever applied after explicit confirmation, as
// one atomic batch update.
type ScheduleService struct {
	client oracle.Client
}

// NewScheduleService creates a ScheduleService.
func NewScheduleService(client oracle.Client) *ScheduleService {
	return &ScheduleService{client: client}
}

type scheduleProposal struct {
	Schedule []domain.ScheduleSuggestion `json:"schedule"`
}

// Propose requests a date assignment for the unscheduled quests, with the
// scheduled ones as context. Returns nil on any transport or schema
// failure; a partial assignment (fewer suggestions than quests) is
// returned as-is. Suggestions for ids outside the unscheduled set and
// suggestions with malformed dates are dropped before the proposal is
// shown for review.
func (s *ScheduleService) Propose(ctx context.Context, unscheduled, scheduled []domain.Quest, today string) []domain.ScheduleSuggestion {
	if len(unscheduled) == 0 {
		return nil
	}

	resp, err := s.client.Generate(ctx, oracle.GenerateRequest{
		Task:         oracle.TaskSchedule,
		SystemPrompt: scheduleSystemPrompt,
		UserPrompt:   buildScheduleUserPrompt(unscheduled, scheduled, today),
	})
	if err != nil {
		return nil
	}

	proposal, err := oracle.ExtractJSON[scheduleProposal](resp.Text, validateScheduleProposal)
	if err != nil {
		return nil
	}

	known := make(map[string]bool, len(unscheduled))
	for _, q := range unscheduled {
		known[q.ID] = true
	}

	var out []domain.ScheduleSuggestion
	for _, sug := range proposal.Schedule {
		if !known[sug.ID] {
			continue
		}
		if domain.ValidateDate(sug.SuggestedDate) != nil {
			continue
		}
		out = append(out, sug)
	}
	return out
}

func validateScheduleProposal(p scheduleProposal) error {
	if len(p.Schedule) == 0 {
		return fmt.Errorf("schedule array is required")
	}
	return nil
}

func buildScheduleUserPrompt(unscheduled, scheduled []domain.Quest, today string) string {
	type unscheduledSummary struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	type scheduledSummary struct {
		Title   string `json:"title"`
		DueDate string `json:"dueDate"`
	}

	us := make([]unscheduledSummary, 0, len(unscheduled))
	for _, q := range unscheduled {
		us = append(us, unscheduledSummary{ID: q.ID, Title: q.Title, Description: q.Description})
	}
	ss := make([]scheduledSummary, 0, len(scheduled))
	for _, q := range scheduled {
		ss = append(ss, scheduledSummary{Title: q.Title, DueDate: q.DueDate})
	}

	usJSON, _ := json.Marshal(us)
	ssJSON, _ := json.Marshal(ss)

	var b strings.Builder
	b.WriteString("Today's date is ")
	b.WriteString(today)
	b.WriteString(".\n\nQuests that need scheduling:\n")
	b.Write(usJSON)
	b.WriteString("\n\nQuests already on the calendar, for context:\n")
	b.Write(ssJSON)
	return b.String()
}
