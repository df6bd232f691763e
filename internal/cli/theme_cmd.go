package cli

import (
	"fmt"

	"github.com/alexanderramin/questlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [NAME]",
		Short: "List or switch color themes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				active := app.Tracker.Theme()
				for _, name := range formatter.ThemeNames() {
					marker := " "
					if name == active {
						marker = formatter.StyleGreen.Render("●")
					}
					fmt.Printf("%s %s\n", marker, name)
				}
				return nil
			}

			name := args[0]
			if !formatter.ApplyTheme(name) {
				return fmt.Errorf("unknown theme %q (available: %v)", name, formatter.ThemeNames())
			}
			app.Tracker.SetTheme(cmd.Context(), name)
			fmt.Printf("Theme set to %s\n", formatter.Bold(name))
			return nil
		},
	}
}
