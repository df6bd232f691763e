package domain

import (
	"fmt"
	"strings"
	"time"
)

type QuestStatus string

const (
	QuestActive    QuestStatus = "ACTIVE"
	QuestCompleted QuestStatus = "COMPLETED"
)

// XP reward bounds enforced at creation time by input validation.
// Stored quests are not re-validated against these.
const (
	MinQuestXP = 10
	MaxQuestXP = 100
)

// Quest is a unit of trackable work with an XP reward.
// ID is immutable after creation and never reused.
type Quest struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	XP          int         `json:"xp"`
	Status      QuestStatus `json:"status"`
	DueDate     string      `json:"dueDate,omitempty"` // YYYY-MM-DD; empty means unscheduled
	Tags        []string    `json:"tags,omitempty"`
}

// QuestDraft is an unconfirmed quest: user form input, an oracle chat
// proposal, or a batch suggestion. Drafts have no ID until accepted.
type QuestDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	XP          int      `json:"xp"`
	DueDate     string   `json:"dueDate,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Validate checks a user-supplied draft before it is added.
// Oracle drafts go through their own schema checks instead.
func (d QuestDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(d.Description) == "" {
		return fmt.Errorf("description is required")
	}
	if d.XP < MinQuestXP || d.XP > MaxQuestXP {
		return fmt.Errorf("xp must be between %d and %d, got %d", MinQuestXP, MaxQuestXP, d.XP)
	}
	if d.DueDate != "" {
		if err := ValidateDate(d.DueDate); err != nil {
			return err
		}
	}
	return nil
}

// NormalizeTags trims, lowercases, and drops empty tag entries,
// preserving insertion order. No uniqueness is enforced.
func NormalizeTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ValidateDate checks a YYYY-MM-DD calendar date.
func ValidateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return nil
}

// IsScheduled reports whether the quest has a due date.
func (q Quest) IsScheduled() bool {
	return q.DueDate != ""
}
