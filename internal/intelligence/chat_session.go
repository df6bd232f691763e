package intelligence

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/alexanderramin/questlog/internal/domain"
	"github.com/alexanderramin/questlog/internal/oracle"
	"github.com/alexanderramin/questlog/internal/tracker"
)

// SessionState is the conversational planning session's input gate.
type SessionState string

const (
	// StateIdle accepts new input.
	StateIdle SessionState = "idle"
	// StateAwaitingOracle has a request in flight; input is ignored.
	StateAwaitingOracle SessionState = "awaiting_oracle"
	// StateProposalPending holds a quest draft until Accept or Decline;
	// input is ignored, not queued.
	StateProposalPending SessionState = "proposal_pending"
)

// Scripted bot messages for the fixed transitions.
const (
	apologyMessage = "I'm having trouble connecting right now... My apologies. Let's try again in a moment."
	declineMessage = "No problem. We can always come back to it later or try a different approach!"
)

// chatHistoryWindow caps how many prior transcript turns are replayed to
// the oracle on each send.
const chatHistoryWindow = 12

// ChatSession wraps the stateful exchange with the oracle: one session per
// application lifetime, one pending-proposal slot at a time. The session
// owns the state machine; the tracker owns the transcript it appends to.
type ChatSession struct {
	client oracle.Client
	tr     *tracker.Tracker

	mu      sync.Mutex
	state   SessionState
	pending *domain.QuestDraft
}

// NewChatSession creates the session resource. Conversation context is
// rebuilt from the persisted transcript, so a restarted app resumes where
// the user left off.
func NewChatSession(client oracle.Client, tr *tracker.Tracker) *ChatSession {
	return &ChatSession{client: client, tr: tr, state: StateIdle}
}

// State returns the current input gate.
func (s *ChatSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Pending returns the held proposal, if any.
func (s *ChatSession) Pending() *domain.QuestDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// TurnResult is the outcome of one accepted Submit.
type TurnResult struct {
	Reply    string
	Proposal *domain.QuestDraft
}

// Submit handles one user turn. Empty input, an in-flight request, or a
// pending proposal make it a no-op (ok=false): nothing is appended and no
// request is issued. Otherwise the user message is appended optimistically,
// the oracle is consulted, and the reply (or the fixed apology on failure)
// is appended as the bot message.
func (s *ChatSession) Submit(ctx context.Context, text string) (TurnResult, bool) {
	text = strings.TrimSpace(text)

	s.mu.Lock()
	if text == "" || s.state != StateIdle {
		s.mu.Unlock()
		return TurnResult{}, false
	}
	s.state = StateAwaitingOracle
	s.mu.Unlock()

	s.tr.AppendChat(ctx, domain.ChatMessage{Sender: domain.SenderUser, Text: text})

	resp, err := s.client.Generate(ctx, oracle.GenerateRequest{
		Task:         oracle.TaskChat,
		SystemPrompt: chatSystemPrompt,
		UserPrompt:   buildChatUserPrompt(s.tr.Chat(), text),
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		// No retry: a fixed apology and back to accepting input.
		s.state = StateIdle
		s.tr.AppendChat(ctx, domain.ChatMessage{Sender: domain.SenderBot, Text: apologyMessage})
		return TurnResult{Reply: apologyMessage}, true
	}

	reply, draft := ParseQuestReply(resp.Text)
	s.tr.AppendChat(ctx, domain.ChatMessage{Sender: domain.SenderBot, Text: reply})

	if draft != nil {
		s.pending = draft
		s.state = StateProposalPending
	} else {
		s.state = StateIdle
	}
	return TurnResult{Reply: reply, Proposal: draft}, true
}

// Accept forwards the held draft to the quest store and confirms in chat.
// Returns the created quest, or ok=false when nothing is pending.
func (s *ChatSession) Accept(ctx context.Context) (domain.Quest, bool) {
	s.mu.Lock()
	if s.state != StateProposalPending || s.pending == nil {
		s.mu.Unlock()
		return domain.Quest{}, false
	}
	draft := *s.pending
	s.pending = nil
	s.state = StateIdle
	s.mu.Unlock()

	draft.Tags = domain.NormalizeTags(draft.Tags)
	q := s.tr.AddQuest(ctx, draft)
	s.tr.AppendChat(ctx, domain.ChatMessage{
		Sender: domain.SenderBot,
		Text:   fmt.Sprintf("Awesome! The quest %q has been added to your log.", q.Title),
	})
	return q, true
}

// Decline discards the held draft with a neutral message.
func (s *ChatSession) Decline(ctx context.Context) bool {
	s.mu.Lock()
	if s.state != StateProposalPending || s.pending == nil {
		s.mu.Unlock()
		return false
	}
	s.pending = nil
	s.state = StateIdle
	s.mu.Unlock()

	s.tr.AppendChat(ctx, domain.ChatMessage{Sender: domain.SenderBot, Text: declineMessage})
	return true
}

// buildChatUserPrompt replays the recent transcript so the stateless
// generation endpoint behaves like a persistent conversation. The latest
// user message is already the transcript tail.
func buildChatUserPrompt(transcript []domain.ChatMessage, latest string) string {
	var b strings.Builder

	recent := transcript
	if len(recent) > chatHistoryWindow {
		recent = recent[len(recent)-chatHistoryWindow:]
	}
	// Drop the trailing optimistic copy of the latest message.
	if n := len(recent); n > 0 && recent[n-1].Sender == domain.SenderUser && recent[n-1].Text == latest {
		recent = recent[:n-1]
	}

	if len(recent) > 0 {
		b.WriteString("Previous conversation:\n")
		for _, m := range recent {
			if m.Sender == domain.SenderUser {
				b.WriteString("User: ")
			} else {
				b.WriteString("Coach: ")
			}
			b.WriteString(m.Text)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("User: ")
	b.WriteString(latest)
	return b.String()
}
