package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Header renders a section header in the accent style with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ActiveTheme().Dim).
		Padding(1, 2)

	if title != "" {
		content = StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
	}
	return box.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// HumanDay renders a YYYY-MM-DD date relative to today: "Today",
// "Tomorrow", or a short absolute form. Unparseable input is returned
// verbatim.
func HumanDay(date, today string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	t, err := time.Parse("2006-01-02", today)
	if err != nil {
		return d.Format("Mon, Jan 2")
	}

	switch int(d.Sub(t).Hours() / 24) {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	case -1:
		return "Yesterday"
	}
	return d.Format("Mon, Jan 2")
}

// DueBadge renders a due date with urgency coloring relative to today.
// Overdue and same-day dates are red, dates within a week yellow.
func DueBadge(date, today string) string {
	label := HumanDay(date, today)

	d, errD := time.Parse("2006-01-02", date)
	t, errT := time.Parse("2006-01-02", today)
	if errD != nil || errT != nil {
		return StyleFg.Render(label)
	}

	days := int(d.Sub(t).Hours() / 24)
	switch {
	case days <= 0:
		return StyleRed.Render(label)
	case days <= 7:
		return StyleYellow.Render(label)
	default:
		return StyleFg.Render(label)
	}
}
