package cli

import (
	"fmt"

	"github.com/alexanderramin/questlog/internal/cli/formatter"
	"github.com/alexanderramin/questlog/internal/domain"
	"github.com/alexanderramin/questlog/internal/tracker"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Let the coach propose due dates for unscheduled quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			today := app.today()

			var unscheduled, scheduled []domain.Quest
			for _, q := range app.Tracker.Quests() {
				if q.Status != domain.QuestActive {
					continue
				}
				if q.IsScheduled() {
					scheduled = append(scheduled, q)
				} else {
					unscheduled = append(unscheduled, q)
				}
			}

			if len(unscheduled) == 0 {
				fmt.Println(formatter.Dim("Every active quest already has a due date."))
				return nil
			}

			stop := formatter.StartSpinner("Drafting a schedule...")
			proposal := app.Scheduler.Propose(ctx, unscheduled, scheduled, today)
			stop()

			if len(proposal) == 0 {
				fmt.Println(formatter.StyleRed.Render("The coach could not produce a schedule. Nothing was changed; try again in a moment."))
				return nil
			}

			byID := make(map[string]domain.Quest, len(unscheduled))
			for _, q := range unscheduled {
				byID[q.ID] = q
			}

			rows := make([][]string, 0, len(proposal))
			for _, s := range proposal {
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					formatter.StyleFg.Render(byID[s.ID].Title),
					formatter.DueBadge(s.SuggestedDate, today),
					formatter.Dim(s.SuggestedDate),
				})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "QUEST", "WHEN", "DATE"}, rows))

			if len(proposal) < len(unscheduled) {
				fmt.Println(formatter.Dim(fmt.Sprintf("%d quest(s) were left unscheduled by the coach.", len(unscheduled)-len(proposal))))
			}

			if !yes {
				if !app.interactive() {
					fmt.Println(formatter.Dim("Re-run with --yes to apply."))
					return nil
				}
				var apply bool
				if err := confirmForm("Apply these due dates?", &apply).Run(); err != nil {
					return err
				}
				if !apply {
					fmt.Println(formatter.Dim("Schedule discarded."))
					return nil
				}
			}

			changes := make([]tracker.QuestChange, 0, len(proposal))
			for _, s := range proposal {
				date := s.SuggestedDate
				changes = append(changes, tracker.QuestChange{ID: s.ID, DueDate: &date})
			}
			app.Tracker.UpdateQuests(ctx, changes)

			fmt.Printf("Scheduled %d quest(s).\n", len(proposal))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Apply the proposal without asking")

	return cmd
}
