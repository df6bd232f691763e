package cli

import (
	"fmt"

	"github.com/alexanderramin/questlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show QUEST",
		Short: "Show the full detail of one quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveQuestID(app.Tracker.Quests(), args[0])
			if err != nil {
				return err
			}

			q, ok := app.Tracker.Quest(id)
			if !ok {
				return fmt.Errorf("no quest with id %q", id)
			}

			fmt.Println(formatter.FormatQuestDetail(q, app.today()))
			return nil
		},
	}
}
