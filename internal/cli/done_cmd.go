package cli

import (
	"fmt"

	"github.com/alexanderramin/questlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done QUEST",
		Short: "Complete a quest and collect its XP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveQuestID(app.Tracker.Quests(), args[0])
			if err != nil {
				return err
			}

			before := app.Tracker.Progression()
			q, ok := app.Tracker.CompleteQuest(cmd.Context(), id)
			if !ok {
				fmt.Println(formatter.Dim("Already completed, nothing to collect."))
				return nil
			}

			fmt.Printf("Quest complete: %s %s\n", formatter.Bold(q.Title), formatter.XPBadge(q.XP))

			after := app.Tracker.Progression()
			if after.Level > before.Level {
				fmt.Println(formatter.FormatLevelUp(after.Level))
			}
			fmt.Println(formatter.RenderXPBar(after, 20))
			return nil
		},
	}
}
