// Package store is the persistence adapter: it loads and saves the full
// application state as string-valued entries in the app_state table.
// It carries no business logic.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/alexanderramin/questlog/internal/db"
	"github.com/alexanderramin/questlog/internal/domain"
)

// Persisted state keys.
const (
	KeyQuests = "quests"
	KeyXP     = "xp"
	KeyLevel  = "level"
	KeyChat   = "chatHistory"
	KeyTheme  = "theme"
)

// DefaultTheme is used when no theme has been persisted.
const DefaultTheme = "dark-fantasy"

// State is the full persisted application state. Absent or corrupt keys
// load as their documented defaults.
type State struct {
	Quests      []domain.Quest
	Progression domain.Progression
	Chat        []domain.ChatMessage
	Theme       string
}

// DefaultState returns the state used before anything has been saved:
// no quests, level 1 with 0 XP, the greeting transcript, and the default theme.
func DefaultState() *State {
	return &State{
		Progression: domain.NewProgression(),
		Chat:        domain.InitialTranscript(),
		Theme:       DefaultTheme,
	}
}

// Store reads and writes State against the sqlite key-value table.
type Store struct {
	db  *sql.DB
	uow db.UnitOfWork
	log *slog.Logger
}

// New creates a Store over the given database.
func New(database *sql.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		db:  database,
		uow: db.NewSQLiteUnitOfWork(database),
		log: logger,
	}
}

// Load reads the persisted state. Each key degrades independently: a
// missing or unparseable value falls back to that key's default, logged
// but never surfaced, so a corrupt quest list cannot take down a valid
// progression counter.
func (s *Store) Load(ctx context.Context) *State {
	state := DefaultState()

	values, err := s.readAll(ctx)
	if err != nil {
		s.log.Warn("loading persisted state failed, starting fresh", "error", err)
		return state
	}

	if raw, ok := values[KeyQuests]; ok {
		var quests []domain.Quest
		if err := json.Unmarshal([]byte(raw), &quests); err != nil {
			s.log.Warn("corrupt persisted value, using default", "key", KeyQuests, "error", err)
		} else {
			state.Quests = quests
		}
	}

	if raw, ok := values[KeyXP]; ok {
		if n, err := strconv.Atoi(raw); err != nil {
			s.log.Warn("corrupt persisted value, using default", "key", KeyXP, "error", err)
		} else {
			state.Progression.XP = n
		}
	}

	if raw, ok := values[KeyLevel]; ok {
		if n, err := strconv.Atoi(raw); err != nil || n < 1 {
			s.log.Warn("corrupt persisted value, using default", "key", KeyLevel, "value", raw)
		} else {
			state.Progression.Level = n
		}
	}

	if raw, ok := values[KeyChat]; ok {
		var chat []domain.ChatMessage
		if err := json.Unmarshal([]byte(raw), &chat); err != nil {
			s.log.Warn("corrupt persisted value, using default", "key", KeyChat, "error", err)
		} else if len(chat) > 0 {
			state.Chat = chat
		}
	}

	if raw, ok := values[KeyTheme]; ok && raw != "" {
		state.Theme = raw
	}

	return state
}

// Save writes the complete state in one transaction. The write is full-state,
// not differential, so the durable store always converges on the in-memory
// state after the latest mutation.
func (s *Store) Save(ctx context.Context, state *State) error {
	questsJSON, err := json.Marshal(state.Quests)
	if err != nil {
		return fmt.Errorf("marshaling quests: %w", err)
	}
	chatJSON, err := json.Marshal(state.Chat)
	if err != nil {
		return fmt.Errorf("marshaling chat history: %w", err)
	}

	entries := map[string]string{
		KeyQuests: string(questsJSON),
		KeyXP:     strconv.Itoa(state.Progression.XP),
		KeyLevel:  strconv.Itoa(state.Progression.Level),
		KeyChat:   string(chatJSON),
		KeyTheme:  state.Theme,
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		for key, value := range entries {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR REPLACE INTO app_state (key, value) VALUES (?, ?)`,
				key, value,
			); err != nil {
				return fmt.Errorf("saving %s: %w", key, err)
			}
		}
		return nil
	})
}

func (s *Store) readAll(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM app_state`)
	if err != nil {
		return nil, fmt.Errorf("reading app state: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scanning app state row: %w", err)
		}
		values[key] = value
	}
	return values, rows.Err()
}
