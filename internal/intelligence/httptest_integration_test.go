package intelligence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexanderramin/questlog/internal/domain"
	"github.com/alexanderramin/questlog/internal/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests exercise the full HTTP serialization path:
// httptest server → oracle client → service parsing. They catch drift
// between the generation server's response format and the services'
// fail-closed parsing that stub-based tests would miss.

func newOracleClient(t *testing.T, handler http.HandlerFunc) oracle.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := oracle.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.Model = "test-model"
	return oracle.NewClient(cfg, oracle.NoopObserver{})
}

func respondWith(t *testing.T, text string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"model":    "test-model",
			"response": text,
		})
	}
}

func TestChatSession_ProposalOverHTTP(t *testing.T) {
	client := newOracleClient(t, respondWith(t,
		`That's a great first step! {"type":"quest","title":"Run 5k","description":"Morning run","xp":30,"tags":["fitness"]}`))

	tr := newTestTracker(t)
	session := NewChatSession(client, tr)

	result, ok := session.Submit(context.Background(), "I want to start running")
	require.True(t, ok)

	assert.Equal(t, "That's a great first step!", result.Reply)
	require.NotNil(t, result.Proposal)
	assert.Equal(t, "Run 5k", result.Proposal.Title)
	assert.Equal(t, 30, result.Proposal.XP)
	assert.Equal(t, StateProposalPending, session.State())
}

func TestChatSession_ServerDownOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	cfg := oracle.DefaultConfig()
	cfg.Endpoint = srv.URL
	client := oracle.NewClient(cfg, oracle.NoopObserver{})

	tr := newTestTracker(t)
	session := NewChatSession(client, tr)

	result, ok := session.Submit(context.Background(), "anyone home?")
	require.True(t, ok)
	assert.Equal(t, apologyMessage, result.Reply)
	assert.Equal(t, StateIdle, session.State())
}

func TestSuggestionService_OverHTTP(t *testing.T) {
	client := newOracleClient(t, respondWith(t, "```json\n"+suggestReply+"\n```"))
	svc := NewSuggestionService(client)

	drafts := svc.Suggest(context.Background(), suggestionInput())
	require.Len(t, drafts, 3, "fenced JSON from the server still parses")
}

func TestScheduleService_OverHTTP(t *testing.T) {
	client := newOracleClient(t, respondWith(t,
		`Here is the plan: {"schedule":[{"id":"q1","suggestedDate":"2026-09-08"}]}`))
	svc := NewScheduleService(client)

	unscheduled := []domain.Quest{{ID: "q1", Title: "t", Description: "d", Status: domain.QuestActive}}
	got := svc.Propose(context.Background(), unscheduled, nil, "2026-09-01")
	require.Len(t, got, 1)
	assert.Equal(t, "2026-09-08", got[0].SuggestedDate)
}

func TestBriefingService_OverHTTP(t *testing.T) {
	client := newOracleClient(t, respondWith(t,
		`{"briefings":[{"id":"q1","timeframe":"Morning","hint":"Start small."}]}`))
	svc := NewBriefingService(client)

	quests := []domain.Quest{{ID: "q1", Title: "t", Description: "d", Status: domain.QuestActive}}
	got := svc.Briefing(context.Background(), quests)
	require.Len(t, got, 1)
	assert.Equal(t, "Start small.", got[0].Hint)
}
