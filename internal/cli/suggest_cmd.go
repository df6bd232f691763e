package cli

import (
	"fmt"

	"github.com/alexanderramin/questlog/internal/cli/formatter"
	"github.com/alexanderramin/questlog/internal/domain"
	"github.com/alexanderramin/questlog/internal/intelligence"
	"github.com/spf13/cobra"
)

func newSuggestCmd(app *App) *cobra.Command {
	var acceptAll bool

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask the coach for quest suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			in := intelligence.SuggestionInput{
				ContextQuests: domain.FilterQuests(app.Tracker.Quests(), domain.FilterActive, app.today(), ""),
				Filter:        domain.FilterActive,
				Transcript:    app.Tracker.Chat(),
			}

			stop := formatter.StartSpinner("Consulting your coach...")
			drafts := app.Suggestions.Suggest(ctx, in)
			stop()

			if len(drafts) == 0 {
				fmt.Println(formatter.Dim("No suggestions right now. Chat a little or add a quest to give the coach some context."))
				return nil
			}

			fmt.Print(formatter.FormatSuggestions(drafts))

			var chosen []domain.QuestDraft
			switch {
			case acceptAll:
				chosen = drafts
			case app.interactive():
				var picked []int
				if err := suggestionPickForm(drafts, &picked).Run(); err != nil {
					return err
				}
				for _, i := range picked {
					if i >= 0 && i < len(drafts) {
						chosen = append(chosen, drafts[i])
					}
				}
			default:
				fmt.Println(formatter.Dim("Re-run with --accept-all to add them."))
			}

			for _, d := range chosen {
				d.Tags = domain.NormalizeTags(d.Tags)
				q := app.Tracker.AddQuest(ctx, d)
				drafts = intelligence.RemoveByTitle(drafts, q.Title)
				fmt.Printf("Added %s %s\n", formatter.Bold(q.Title), formatter.XPBadge(q.XP))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&acceptAll, "accept-all", false, "Add every suggestion without asking")

	return cmd
}
