package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/questlog/internal/cli"
	"github.com/alexanderramin/questlog/internal/db"
	"github.com/alexanderramin/questlog/internal/intelligence"
	"github.com/alexanderramin/questlog/internal/oracle"
	"github.com/alexanderramin/questlog/internal/store"
	"github.com/alexanderramin/questlog/internal/tracker"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.questlog/questlog.db
	dbPath := os.Getenv("QUESTLOG_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".questlog", "questlog.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logLevel := slog.LevelWarn
	if os.Getenv("QUESTLOG_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	st := store.New(database, logger)
	tr := tracker.New(st.Load(context.Background()), st, logger)

	cfg := oracle.LoadConfig()
	var observer oracle.Observer = oracle.NoopObserver{}
	if cfg.LogCalls {
		observer = oracle.NewSlogObserver(logger)
	}
	client := oracle.NewClient(cfg, observer)

	app := &cli.App{
		Tracker:     tr,
		Chat:        intelligence.NewChatSession(client, tr),
		Suggestions: intelligence.NewSuggestionService(client),
		Scheduler:   intelligence.NewScheduleService(client),
		Briefings:   intelligence.NewBriefingService(client),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
