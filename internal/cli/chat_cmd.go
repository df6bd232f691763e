package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to Forge, your AI coach",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("chat needs an interactive terminal")
			}

			p := tea.NewProgram(newChatModel(app))
			_, err := p.Run()
			return err
		},
	}
}
