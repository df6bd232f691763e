package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/questlog/internal/cli/formatter"
	"github.com/alexanderramin/questlog/internal/domain"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show progression and quest counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			quests := app.Tracker.Quests()

			var active, completed, scheduled, dueToday int
			today := app.today()
			for _, q := range quests {
				switch q.Status {
				case domain.QuestActive:
					active++
					if q.IsScheduled() {
						scheduled++
					}
					if q.DueDate == today {
						dueToday++
					}
				case domain.QuestCompleted:
					completed++
				}
			}

			var b strings.Builder
			b.WriteString(formatter.RenderXPBar(app.Tracker.Progression(), 20) + "\n\n")
			b.WriteString(fmt.Sprintf("  %s  %d\n", formatter.Dim("ACTIVE   "), active))
			b.WriteString(fmt.Sprintf("  %s  %d\n", formatter.Dim("DUE TODAY"), dueToday))
			b.WriteString(fmt.Sprintf("  %s  %d of %d scheduled\n", formatter.Dim("PLANNED  "), scheduled, active))
			b.WriteString(fmt.Sprintf("  %s  %d\n", formatter.Dim("COMPLETED"), completed))

			fmt.Print(formatter.RenderBox("Questlog", b.String()))
			fmt.Println()
			return nil
		},
	}
}
