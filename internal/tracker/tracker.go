// Package tracker owns the authoritative in-memory application state:
// the quest collection, the progression counters, the chat transcript, and
// the selected theme. Every mutation goes through a named operation and
// triggers a full-state save; storage failures are logged and the session
// continues in memory only.
package tracker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/alexanderramin/questlog/internal/domain"
	"github.com/alexanderramin/questlog/internal/store"
	"github.com/google/uuid"
)

// Saver persists the full application state. *store.Store satisfies it.
type Saver interface {
	Save(ctx context.Context, state *store.State) error
}

// QuestChange is one partial update in a batch, keyed by quest id.
// Nil fields are left untouched.
type QuestChange struct {
	ID      string
	DueDate *string
	Title   *string
	XP      *int
}

// Tracker is the single owner of mutable application state. All methods
// are safe for concurrent use: the chat TUI mutates state from both the
// update loop and command goroutines, so every entry point serializes on
// the same mutex, and the save runs under it too so the saver never
// marshals state mid-mutation.
type Tracker struct {
	mu    sync.Mutex
	state *store.State
	saver Saver
	log   *slog.Logger
}

// New creates a Tracker over previously loaded state.
func New(state *store.State, saver Saver, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{state: state, saver: saver, log: logger}
}

// Quests returns a copy of the quest collection.
func (t *Tracker) Quests() []domain.Quest {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]domain.Quest, len(t.state.Quests))
	copy(out, t.state.Quests)
	return out
}

// Quest looks up a quest by id.
func (t *Tracker) Quest(id string) (domain.Quest, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, q := range t.state.Quests {
		if q.ID == id {
			return q, true
		}
	}
	return domain.Quest{}, false
}

// Progression returns the current level/xp pair.
func (t *Tracker) Progression() domain.Progression {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state.Progression
}

// Chat returns a copy of the transcript.
func (t *Tracker) Chat() []domain.ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]domain.ChatMessage, len(t.state.Chat))
	copy(out, t.state.Chat)
	return out
}

// Theme returns the persisted theme id.
func (t *Tracker) Theme() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state.Theme
}

// SetTheme persists a new theme selection.
func (t *Tracker) SetTheme(ctx context.Context, theme string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.Theme = theme
	t.persist(ctx)
}

// AddQuest assigns a fresh id, activates the draft, and appends it.
// Validation is the caller's concern: the manual form and the oracle
// parsers have already vetted the draft by the time it lands here.
func (t *Tracker) AddQuest(ctx context.Context, draft domain.QuestDraft) domain.Quest {
	t.mu.Lock()
	defer t.mu.Unlock()

	q := domain.Quest{
		ID:          uuid.New().String(),
		Title:       draft.Title,
		Description: draft.Description,
		XP:          draft.XP,
		Status:      domain.QuestActive,
		DueDate:     draft.DueDate,
		Tags:        draft.Tags,
	}
	t.state.Quests = append(t.state.Quests, q)
	t.persist(ctx)
	return q
}

// UpdateQuests applies a batch of partial updates in a single pass.
// Ids not present in the store are silently ignored. The scheduler's
// apply-schedule action uses this to set due dates in bulk.
func (t *Tracker) UpdateQuests(ctx context.Context, changes []QuestChange) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(changes) == 0 {
		return
	}
	byID := make(map[string]QuestChange, len(changes))
	for _, c := range changes {
		byID[c.ID] = c
	}

	touched := false
	for i := range t.state.Quests {
		c, ok := byID[t.state.Quests[i].ID]
		if !ok {
			continue
		}
		if c.DueDate != nil {
			t.state.Quests[i].DueDate = *c.DueDate
		}
		if c.Title != nil {
			t.state.Quests[i].Title = *c.Title
		}
		if c.XP != nil {
			t.state.Quests[i].XP = *c.XP
		}
		touched = true
	}

	if touched {
		t.persist(ctx)
	}
}

// CompleteQuest transitions a quest to COMPLETED and awards its XP exactly
// once. Completing a missing or already-completed quest is a no-op, so the
// award can never double-count. Returns the quest and whether a transition
// happened.
func (t *Tracker) CompleteQuest(ctx context.Context, id string) (domain.Quest, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.state.Quests {
		if t.state.Quests[i].ID != id {
			continue
		}
		if t.state.Quests[i].Status == domain.QuestCompleted {
			return t.state.Quests[i], false
		}

		t.state.Quests[i].Status = domain.QuestCompleted
		t.state.Progression.Award(t.state.Quests[i].XP)
		t.persist(ctx)
		return t.state.Quests[i], true
	}
	return domain.Quest{}, false
}

// AppendChat appends messages to the transcript. The transcript is
// append-only; messages are never edited after this point.
func (t *Tracker) AppendChat(ctx context.Context, msgs ...domain.ChatMessage) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(msgs) == 0 {
		return
	}
	t.state.Chat = append(t.state.Chat, msgs...)
	t.persist(ctx)
}

func (t *Tracker) persist(ctx context.Context) {
	if t.saver == nil {
		return
	}
	if err := t.saver.Save(ctx, t.state); err != nil {
		t.log.Warn("persisting state failed, continuing in memory", "error", err)
	}
}
