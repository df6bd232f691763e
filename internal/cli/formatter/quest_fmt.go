package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/questlog/internal/domain"
)

// StatusPill returns a colored status indicator for a quest.
func StatusPill(status domain.QuestStatus) string {
	switch status {
	case domain.QuestActive:
		return StyleGreen.Render("● Active")
	case domain.QuestCompleted:
		return StyleDim.Render("✔ Done")
	default:
		return StyleDim.Render(string(status))
	}
}

// TagBadges renders tags as a dim #tag list, empty string for no tags.
func TagBadges(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = "#" + tag
	}
	return StylePurple.Render(strings.Join(parts, " "))
}

// XPBadge renders a quest's XP reward.
func XPBadge(xp int) string {
	return StyleYellow.Render(fmt.Sprintf("+%d XP", xp))
}

// FormatBoard renders a quest list as a table. Briefings, when present,
// add a timeframe and hint column keyed by quest id.
func FormatBoard(quests []domain.Quest, briefings map[string]domain.DailyBriefingItem, today string) string {
	if len(quests) == 0 {
		return Dim("No quests here. Talk to your coach with 'questlog chat' or add one with 'questlog add'.") + "\n"
	}

	headers := []string{"ID", "QUEST", "STATUS", "DUE", "XP", "TAGS"}
	if len(briefings) > 0 {
		headers = append(headers, "WHEN", "HINT")
	}

	rows := make([][]string, 0, len(quests))
	for _, q := range quests {
		due := StyleDim.Render("—")
		if q.IsScheduled() {
			due = DueBadge(q.DueDate, today)
		}
		row := []string{
			TruncID(q.ID),
			StyleFg.Render(q.Title),
			StatusPill(q.Status),
			due,
			XPBadge(q.XP),
			TagBadges(q.Tags),
		}
		if len(briefings) > 0 {
			if b, ok := briefings[q.ID]; ok {
				row = append(row, StyleBlue.Render(b.Timeframe), Dim(b.Hint))
			} else {
				row = append(row, "", "")
			}
		}
		rows = append(rows, row)
	}

	return RenderTable(headers, rows)
}

// FormatQuestDetail renders a single quest as a boxed detail view.
func FormatQuestDetail(q domain.Quest, today string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n\n", Bold(q.Title), XPBadge(q.XP)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("STATUS"), StatusPill(q.Status)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("ID    "), TruncID(q.ID)))
	if q.IsScheduled() {
		b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("DUE   "), DueBadge(q.DueDate, today)))
	}
	if len(q.Tags) > 0 {
		b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("TAGS  "), TagBadges(q.Tags)))
	}
	b.WriteString(fmt.Sprintf("\n  %s\n", StyleFg.Render(q.Description)))

	return RenderBox("Quest", b.String())
}

// FormatProposal renders a pending quest proposal awaiting accept/decline.
func FormatProposal(d domain.QuestDraft) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(d.Title), XPBadge(d.XP)))
	b.WriteString(StyleFg.Render(d.Description) + "\n")
	if d.DueDate != "" {
		b.WriteString(Dim("Due: ") + StyleFg.Render(d.DueDate) + "\n")
	}
	if len(d.Tags) > 0 {
		b.WriteString(TagBadges(d.Tags) + "\n")
	}
	b.WriteString("\n" + StyleGreen.Render("[y]") + Dim(" accept   ") + StyleRed.Render("[n]") + Dim(" decline"))

	return RenderBox("New Quest Proposal", b.String())
}

// FormatSuggestions renders a numbered batch of suggested quest drafts.
func FormatSuggestions(drafts []domain.QuestDraft) string {
	if len(drafts) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(Header("Suggested Quests") + "\n")
	for i, d := range drafts {
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			StylePurple.Render(fmt.Sprintf("%d.", i+1)),
			Bold(d.Title),
			XPBadge(d.XP)))
		b.WriteString("   " + Dim(d.Description) + "\n")
	}
	return b.String()
}

// FormatChatMessage renders one transcript line with a sender prefix.
func FormatChatMessage(msg domain.ChatMessage) string {
	if msg.Sender == domain.SenderUser {
		return Dim("You: ") + StyleFg.Render(msg.Text)
	}
	return StyleHeader.Render("Forge: ") + StyleFg.Render(msg.Text)
}

// FormatBriefing renders a day's briefing items against their quests.
func FormatBriefing(quests []domain.Quest, items []domain.DailyBriefingItem) string {
	if len(items) == 0 {
		return Dim("No briefing available.") + "\n"
	}

	byID := make(map[string]domain.Quest, len(quests))
	for _, q := range quests {
		byID[q.ID] = q
	}

	var b strings.Builder
	b.WriteString(Header("Daily Briefing") + "\n")
	for _, item := range items {
		q, ok := byID[item.ID]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleBlue.Render(item.Timeframe), Bold(q.Title)))
		b.WriteString("  " + Dim(item.Hint) + "\n")
	}
	return b.String()
}

// FormatLevelUp renders the celebration line shown when a completion
// raises the level.
func FormatLevelUp(level int) string {
	return StyleYellow.Render(fmt.Sprintf("★ LEVEL UP! You reached level %d!", level))
}
