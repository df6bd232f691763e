package testutil

import (
	"github.com/alexanderramin/questlog/internal/domain"
	"github.com/google/uuid"
)

// QuestOption mutates a fixture quest before it is returned.
type QuestOption func(*domain.Quest)

// WithXP sets the quest's XP reward.
func WithXP(xp int) QuestOption {
	return func(q *domain.Quest) {
		q.XP = xp
	}
}

// WithDueDate schedules the quest.
func WithDueDate(date string) QuestOption {
	return func(q *domain.Quest) {
		q.DueDate = date
	}
}

// WithStatus overrides the quest's status.
func WithStatus(s domain.QuestStatus) QuestOption {
	return func(q *domain.Quest) {
		q.Status = s
	}
}

// WithTags sets the quest's tags.
func WithTags(tags ...string) QuestOption {
	return func(q *domain.Quest) {
		q.Tags = tags
	}
}

// NewTestQuest builds an active quest with sensible defaults.
func NewTestQuest(title string, opts ...QuestOption) domain.Quest {
	q := domain.Quest{
		ID:          uuid.New().String(),
		Title:       title,
		Description: "test quest: " + title,
		XP:          domain.MinQuestXP,
		Status:      domain.QuestActive,
	}
	for _, opt := range opts {
		opt(&q)
	}
	return q
}
