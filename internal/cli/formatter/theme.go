package formatter

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named color palette for all CLI output.
type Theme struct {
	Name string

	Green  lipgloss.Color
	Yellow lipgloss.Color
	Red    lipgloss.Color
	Blue   lipgloss.Color
	Purple lipgloss.Color
	Dim    lipgloss.Color
	Fg     lipgloss.Color
	Header lipgloss.Color
}

// Built-in themes. dark-fantasy uses a Gruvbox-inspired palette and is
// the default; parchment targets light terminals, midnight cool ones.
var themes = map[string]Theme{
	"dark-fantasy": {
		Name:   "dark-fantasy",
		Green:  lipgloss.Color("#8ec07c"),
		Yellow: lipgloss.Color("#fabd2f"),
		Red:    lipgloss.Color("#fb4934"),
		Blue:   lipgloss.Color("#83a598"),
		Purple: lipgloss.Color("#d3869b"),
		Dim:    lipgloss.Color("#928374"),
		Fg:     lipgloss.Color("#ebdbb2"),
		Header: lipgloss.Color("#fe8019"),
	},
	"parchment": {
		Name:   "parchment",
		Green:  lipgloss.Color("#4f7942"),
		Yellow: lipgloss.Color("#b8860b"),
		Red:    lipgloss.Color("#a0342c"),
		Blue:   lipgloss.Color("#3b5b7d"),
		Purple: lipgloss.Color("#7c4a72"),
		Dim:    lipgloss.Color("#8a7e66"),
		Fg:     lipgloss.Color("#3f3528"),
		Header: lipgloss.Color("#8b4513"),
	},
	"midnight": {
		Name:   "midnight",
		Green:  lipgloss.Color("#5de4c7"),
		Yellow: lipgloss.Color("#fffac2"),
		Red:    lipgloss.Color("#d0679d"),
		Blue:   lipgloss.Color("#89ddff"),
		Purple: lipgloss.Color("#a78bfa"),
		Dim:    lipgloss.Color("#506477"),
		Fg:     lipgloss.Color("#e4f0fb"),
		Header: lipgloss.Color("#add7ff"),
	},
}

var current Theme

// Styles derived from the current theme. Recomputed by ApplyTheme.
var (
	StyleGreen  lipgloss.Style
	StyleYellow lipgloss.Style
	StyleRed    lipgloss.Style
	StyleBlue   lipgloss.Style
	StylePurple lipgloss.Style
	StyleDim    lipgloss.Style
	StyleFg     lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style
)

func init() {
	ApplyTheme("dark-fantasy")
}

// ApplyTheme switches the active palette. Unknown names are ignored and
// the previous theme stays active.
func ApplyTheme(name string) bool {
	t, ok := themes[name]
	if !ok {
		return false
	}
	current = t

	StyleGreen = lipgloss.NewStyle().Foreground(t.Green)
	StyleYellow = lipgloss.NewStyle().Foreground(t.Yellow)
	StyleRed = lipgloss.NewStyle().Foreground(t.Red)
	StyleBlue = lipgloss.NewStyle().Foreground(t.Blue)
	StylePurple = lipgloss.NewStyle().Foreground(t.Purple)
	StyleDim = lipgloss.NewStyle().Foreground(t.Dim)
	StyleFg = lipgloss.NewStyle().Foreground(t.Fg)
	StyleHeader = lipgloss.NewStyle().Foreground(t.Header).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(t.Fg).Bold(true)
	return true
}

// ActiveTheme returns the palette currently in effect.
func ActiveTheme() Theme {
	return current
}

// ThemeNames lists the available theme ids in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
