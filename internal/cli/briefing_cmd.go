package cli

import (
	"fmt"

	"github.com/alexanderramin/questlog/internal/cli/formatter"
	"github.com/alexanderramin/questlog/internal/domain"
	"github.com/spf13/cobra"
)

func newBriefingCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "briefing",
		Short: "Get a timeframe and hint for each of the day's quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := app.today()

			filter := domain.FilterToday
			if dateFlag != "" {
				if err := domain.ValidateDate(dateFlag); err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				filter = domain.FilterSelectedDay
			}

			quests := domain.FilterQuests(app.Tracker.Quests(), filter, today, dateFlag)
			if len(quests) == 0 {
				fmt.Println(formatter.Dim("Nothing scheduled for that day."))
				return nil
			}

			stop := formatter.StartSpinner("Preparing your briefing...")
			items := app.Briefings.Briefing(cmd.Context(), quests)
			stop()

			if len(items) == 0 {
				fmt.Println(formatter.StyleRed.Render("The coach could not prepare a briefing right now."))
				return nil
			}

			fmt.Print(formatter.FormatBriefing(quests, items))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Brief a specific day (YYYY-MM-DD) instead of today")

	return cmd
}
