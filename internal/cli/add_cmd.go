package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/questlog/internal/cli/formatter"
	"github.com/alexanderramin/questlog/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var (
		title, description, dueDate string
		tags                        []string
		xp                          int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a quest by hand",
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := domain.QuestDraft{
				Title:       title,
				Description: description,
				XP:          xp,
				DueDate:     dueDate,
				Tags:        domain.NormalizeTags(tags),
			}

			// No flags and a terminal: collect the draft interactively.
			if title == "" && description == "" {
				if !app.interactive() {
					return fmt.Errorf("provide --title and --description, or run from a terminal for the form")
				}
				var err error
				draft, err = collectQuestDraft()
				if err != nil {
					return err
				}
			}

			if err := draft.Validate(); err != nil {
				return err
			}

			q := app.Tracker.AddQuest(cmd.Context(), draft)
			fmt.Printf("Added quest %s %s\n", formatter.Bold(q.Title), formatter.XPBadge(q.XP))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Quest title")
	cmd.Flags().StringVar(&description, "description", "", "What done looks like")
	cmd.Flags().IntVar(&xp, "xp", domain.MinQuestXP, "XP reward (10-100)")
	cmd.Flags().StringVar(&dueDate, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable)")

	return cmd
}

// collectQuestDraft runs the quest form and converts its raw values.
func collectQuestDraft() (domain.QuestDraft, error) {
	var v questFormValues
	if err := questDraftForm(&v).Run(); err != nil {
		return domain.QuestDraft{}, err
	}

	xp, err := strconv.Atoi(strings.TrimSpace(v.XP))
	if err != nil {
		return domain.QuestDraft{}, fmt.Errorf("parsing xp: %w", err)
	}

	var tags []string
	for _, tag := range strings.Split(v.Tags, ",") {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}

	return domain.QuestDraft{
		Title:       strings.TrimSpace(v.Title),
		Description: strings.TrimSpace(v.Description),
		XP:          xp,
		DueDate:     strings.TrimSpace(v.DueDate),
		Tags:        domain.NormalizeTags(tags),
	}, nil
}
