package intelligence

import (
	"context"
	"testing"

	"github.com/alexanderramin/questlog/internal/domain"
	"github.com/alexanderramin/questlog/internal/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func briefingQuests() []domain.Quest {
	return []domain.Quest{
		{ID: "q1", Title: "Run 5k", Description: "Morning run", Status: domain.QuestActive, DueDate: "2026-09-01"},
		{ID: "q2", Title: "Read", Description: "One chapter", Status: domain.QuestActive, DueDate: "2026-09-01"},
	}
}

func TestBriefingService_Briefing(t *testing.T) {
	client := &stubOracle{reply: `{"briefings":[
		{"id":"q1","timeframe":"Morning","hint":"Lay out your gear the night before."},
		{"id":"q2","timeframe":"Evening","hint":"Pair it with a cup of tea."}
	]}`}
	svc := NewBriefingService(client)

	got := svc.Briefing(context.Background(), briefingQuests())
	require.Len(t, got, 2)
	assert.Equal(t, "Morning", got[0].Timeframe)
	assert.Equal(t, oracle.TaskBriefing, client.lastReq.Task)
	assert.Contains(t, client.lastReq.UserPrompt, "q1")
	assert.Contains(t, client.lastReq.UserPrompt, "Run 5k")
}

func TestBriefingService_DropsUnknownIDs(t *testing.T) {
	client := &stubOracle{reply: `{"briefings":[
		{"id":"q1","timeframe":"Morning","hint":"Go."},
		{"id":"ghost","timeframe":"Noon","hint":"?"}
	]}`}
	svc := NewBriefingService(client)

	got := svc.Briefing(context.Background(), briefingQuests())
	require.Len(t, got, 1)
	assert.Equal(t, "q1", got[0].ID)
}

func TestBriefingService_FailClosed(t *testing.T) {
	ctx := context.Background()
	quests := briefingQuests()

	svc := NewBriefingService(&stubOracle{err: oracle.ErrUnavailable})
	assert.Nil(t, svc.Briefing(ctx, quests))

	svc = NewBriefingService(&stubOracle{reply: "have a nice day"})
	assert.Nil(t, svc.Briefing(ctx, quests))
}

func TestBriefingService_EmptyDaySkipsRequest(t *testing.T) {
	client := &stubOracle{reply: `{"briefings":[]}`}
	svc := NewBriefingService(client)

	assert.Nil(t, svc.Briefing(context.Background(), nil))
	assert.Zero(t, client.calls)
}
