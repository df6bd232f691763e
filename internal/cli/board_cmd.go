package cli

import (
	"fmt"

	"github.com/alexanderramin/questlog/internal/cli/formatter"
	"github.com/alexanderramin/questlog/internal/domain"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var filterFlag, dateFlag string
	var briefFlag bool

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the quest board",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseFilter(filterFlag, dateFlag)
			if err != nil {
				return err
			}

			today := app.today()
			quests := domain.FilterQuests(app.Tracker.Quests(), filter, today, dateFlag)

			var briefings map[string]domain.DailyBriefingItem
			if briefFlag && len(quests) > 0 {
				stop := formatter.StartSpinner("Preparing your briefing...")
				items := app.Briefings.Briefing(cmd.Context(), quests)
				stop()

				if len(items) > 0 {
					briefings = make(map[string]domain.DailyBriefingItem, len(items))
					for _, item := range items {
						briefings[item.ID] = item
					}
				}
			}

			fmt.Print(formatter.FormatBoard(quests, briefings, today))
			return nil
		},
	}

	cmd.Flags().StringVar(&filterFlag, "filter", "active", "Filter: active, completed, today")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Show quests due on a specific day (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&briefFlag, "brief", false, "Annotate each quest with a timeframe and hint from the coach")

	return cmd
}

// parseFilter maps the flag pair to a quest filter. A --date flag wins
// over --filter since it names a specific day.
func parseFilter(filterFlag, dateFlag string) (domain.QuestFilter, error) {
	if dateFlag != "" {
		if err := domain.ValidateDate(dateFlag); err != nil {
			return "", fmt.Errorf("invalid --date: %w", err)
		}
		return domain.FilterSelectedDay, nil
	}

	switch filterFlag {
	case "active":
		return domain.FilterActive, nil
	case "completed":
		return domain.FilterCompleted, nil
	case "today":
		return domain.FilterToday, nil
	default:
		return "", fmt.Errorf("unknown filter %q (use active, completed, or today)", filterFlag)
	}
}
