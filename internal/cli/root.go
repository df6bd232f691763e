package cli

import (
	"time"

	"github.com/alexanderramin/questlog/internal/cli/formatter"
	"github.com/alexanderramin/questlog/internal/intelligence"
	"github.com/alexanderramin/questlog/internal/tracker"
	"github.com/spf13/cobra"
)

// App holds the wired services used by CLI commands.
type App struct {
	Tracker     *tracker.Tracker
	Chat        *intelligence.ChatSession
	Suggestions *intelligence.SuggestionService
	Scheduler   *intelligence.ScheduleService
	Briefings   *intelligence.BriefingService

	// IsInteractive reports whether stdin is a terminal. Commands that
	// need forms or a TUI refuse to run when it returns false.
	IsInteractive func() bool

	// Today returns the current date as YYYY-MM-DD. Overridable in tests.
	Today func() string
}

func (a *App) today() string {
	if a.Today != nil {
		return a.Today()
	}
	return time.Now().Format("2006-01-02")
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "questlog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "questlog",
		Short: "Gamified goal tracker with an AI coach",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			formatter.ApplyTheme(app.Tracker.Theme())
		},
	}

	root.AddCommand(
		newChatCmd(app),
		newBoardCmd(app),
		newShowCmd(app),
		newAddCmd(app),
		newDoneCmd(app),
		newSuggestCmd(app),
		newPlanCmd(app),
		newBriefingCmd(app),
		newStatusCmd(app),
		newThemeCmd(app),
	)

	return root
}
