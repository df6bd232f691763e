package oracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.Model = "test-model"
	return NewClient(cfg, NoopObserver{})
}

func TestClient_Generate_Success(t *testing.T) {
	var gotBody generateRequest
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(generateResponse{
			Model:    "test-model",
			Response: "Great idea!",
		})
	})

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskChat,
		SystemPrompt: "be helpful",
		UserPrompt:   "hello",
	})
	require.NoError(t, err)

	assert.Equal(t, "Great idea!", resp.Text)
	assert.Equal(t, "test-model", resp.Model)
	assert.Equal(t, "test-model", gotBody.Model)
	assert.Equal(t, "be helpful", gotBody.System)
	assert.Equal(t, "hello", gotBody.Prompt)
	assert.False(t, gotBody.Stream)
}

func TestClient_Generate_SendsBearerWhenConfigured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(generateResponse{Response: "ok"})
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.APIKey = "sk-test"
	client := NewClient(cfg, NoopObserver{})

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskChat, UserPrompt: "hi"})
	require.NoError(t, err)
}

func TestClient_Generate_RejectedCredential(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskChat, UserPrompt: "hi"})
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestClient_Generate_ServerError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusInternalServerError)
	})

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskSuggest, UserPrompt: "hi"})
	assert.Error(t, err)
}

func TestClient_Generate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	cfg := DefaultConfig()
	cfg.Endpoint = srv.URL
	client := NewClient(cfg, NoopObserver{})

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskChat, UserPrompt: "hi"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Available(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	assert.True(t, client.Available(context.Background()))
}

func TestClient_Available_Down(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	cfg := DefaultConfig()
	cfg.Endpoint = srv.URL
	client := NewClient(cfg, NoopObserver{})
	assert.False(t, client.Available(context.Background()))
}

func TestClient_Generate_ObserverReceivesEvents(t *testing.T) {
	var events []CallEvent
	observer := observerFunc(func(e CallEvent) { events = append(events, e) })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{Response: "ok"})
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.Endpoint = srv.URL
	client := NewClient(cfg, observer)

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskBriefing, UserPrompt: "hi"})
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, TaskBriefing, events[0].Task)
	assert.True(t, events[0].Success)
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
