package intelligence

import (
	"context"
	"testing"

	"github.com/alexanderramin/questlog/internal/oracle"
	"github.com/alexanderramin/questlog/internal/store"
	"github.com/alexanderramin/questlog/internal/tracker"
)

// stubOracle is a scripted oracle.Client for deterministic service tests.
// The httptest-based tests exercise the real HTTP client instead.
type stubOracle struct {
	reply   string
	err     error
	calls   int
	lastReq oracle.GenerateRequest
}

func (s *stubOracle) Generate(ctx context.Context, req oracle.GenerateRequest) (*oracle.GenerateResponse, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &oracle.GenerateResponse{Text: s.reply, Model: "stub"}, nil
}

func (s *stubOracle) Available(ctx context.Context) bool { return s.err == nil }

func newTestTracker(t *testing.T) *tracker.Tracker {
	t.Helper()
	return tracker.New(store.DefaultState(), nil, nil)
}
