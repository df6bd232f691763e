package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/questlog/internal/cli/formatter"
	"github.com/alexanderramin/questlog/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// questlogHuhTheme returns a custom huh theme built from the active palette.
func questlogHuhTheme() *huh.Theme {
	palette := formatter.ActiveTheme()
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(palette.Header).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(palette.Header)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(palette.Green)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(palette.Fg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(palette.Fg).Background(palette.Header).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(palette.Dim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(palette.Header)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(palette.Header)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(palette.Fg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(palette.Dim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(palette.Dim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(palette.Dim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(palette.Dim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(palette.Dim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(palette.Dim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(palette.Dim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(palette.Dim)

	return t
}

// validateRequired rejects empty input for the named field.
func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateXP accepts an integer within the quest XP range.
func validateXP(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v < domain.MinQuestXP || v > domain.MaxQuestXP {
		return fmt.Errorf("enter a number between %d and %d", domain.MinQuestXP, domain.MaxQuestXP)
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if err := domain.ValidateDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// questFormValues collects raw string inputs for a quest draft form.
type questFormValues struct {
	Title       string
	Description string
	XP          string
	DueDate     string
	Tags        string
}

// questDraftForm builds the interactive form for creating a quest by hand.
func questDraftForm(v *questFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Run a 5k").
				Value(&v.Title).
				Validate(validateRequired("title")),
			huh.NewInput().
				Title("Description").
				Placeholder("What does done look like?").
				Value(&v.Description).
				Validate(validateRequired("description")),
			huh.NewInput().
				Title(fmt.Sprintf("XP Reward (%d-%d)", domain.MinQuestXP, domain.MaxQuestXP)).
				Placeholder("30").
				Value(&v.XP).
				Validate(validateXP),
			huh.NewInput().
				Title("Due Date (YYYY-MM-DD, blank for none)").
				Placeholder("2026-09-30").
				Value(&v.DueDate).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Tags (comma separated, blank for none)").
				Placeholder("fitness, health").
				Value(&v.Tags),
		),
	).WithTheme(questlogHuhTheme()).WithShowHelp(false)
}

// confirmForm builds a yes/no confirmation form.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(questlogHuhTheme()).WithShowHelp(false)
}

// suggestionPickForm builds a multi-select over suggested drafts.
func suggestionPickForm(drafts []domain.QuestDraft, picked *[]int) *huh.Form {
	options := make([]huh.Option[int], len(drafts))
	for i, d := range drafts {
		options[i] = huh.NewOption(fmt.Sprintf("%s (+%d XP)", d.Title, d.XP), i)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Accept which suggestions?").
				Options(options...).
				Value(picked),
		),
	).WithTheme(questlogHuhTheme()).WithShowHelp(false)
}
