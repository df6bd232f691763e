package cli

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/questlog/internal/cli/formatter"
	"github.com/alexanderramin/questlog/internal/domain"
	"github.com/alexanderramin/questlog/internal/intelligence"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// suggestDebounce is how long suggestion inputs must stay unchanged
// before a refresh request is issued. Rapid changes coalesce into one call.
const suggestDebounce = 500 * time.Millisecond

type turnDoneMsg struct {
	result intelligence.TurnResult
}

type suggestTickMsg struct {
	gen int
}

type suggestDoneMsg struct {
	gen    int
	drafts []domain.QuestDraft
}

// chatModel is the interactive coaching session. It renders the
// transcript, a pending proposal when one exists, and a debounced
// suggestion panel fed by the conversation context.
type chatModel struct {
	app   *App
	input textinput.Model
	spin  spinner.Model

	messages []string
	waiting  bool
	proposal *domain.QuestDraft

	suggestions []domain.QuestDraft
	suggestGen  int
}

func newChatModel(app *App) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = formatter.StylePurple

	m := &chatModel{
		app:   app,
		input: ti,
		spin:  sp,
	}

	for _, msg := range app.Tracker.Chat() {
		m.messages = append(m.messages, formatter.FormatChatMessage(msg))
	}
	if d := app.Chat.Pending(); d != nil {
		m.proposal = d
	}

	return m
}

func (m *chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.scheduleSuggest())
}

// scheduleSuggest restarts the suggestion debounce. Bumping the
// generation invalidates any earlier pending tick.
func (m *chatModel) scheduleSuggest() tea.Cmd {
	m.suggestGen++
	gen := m.suggestGen
	return tea.Tick(suggestDebounce, func(time.Time) tea.Msg {
		return suggestTickMsg{gen: gen}
	})
}

func (m *chatModel) suggestCmd(gen int) tea.Cmd {
	in := intelligence.SuggestionInput{
		ContextQuests: domain.FilterQuests(m.app.Tracker.Quests(), domain.FilterActive, m.app.today(), ""),
		Filter:        domain.FilterActive,
		Transcript:    m.app.Tracker.Chat(),
	}
	return func() tea.Msg {
		return suggestDoneMsg{gen: gen, drafts: m.app.Suggestions.Suggest(context.Background(), in)}
	}
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case turnDoneMsg:
		m.waiting = false
		m.messages = append(m.messages, formatter.FormatChatMessage(domain.ChatMessage{
			Sender: domain.SenderBot,
			Text:   msg.result.Reply,
		}))
		m.proposal = msg.result.Proposal
		return m, m.scheduleSuggest()

	case suggestTickMsg:
		if msg.gen != m.suggestGen {
			// A newer change restarted the debounce; drop this tick.
			return m, nil
		}
		return m, m.suggestCmd(msg.gen)

	case suggestDoneMsg:
		// Late responses are kept even when superseded; a fresher
		// request is already in flight and will overwrite this.
		m.suggestions = msg.drafts
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.proposal != nil {
		return m.handleProposalKey(msg)
	}

	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		if m.waiting {
			return m, nil
		}
		text := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		if text == "" {
			return m, nil
		}
		return m.submit(text)

	case tea.KeyRunes:
		// Bare digits accept a suggestion when the input is empty and no
		// turn is in flight.
		if !m.waiting && m.input.Value() == "" && len(msg.Runes) == 1 {
			if i := int(msg.Runes[0] - '1'); i >= 0 && i < len(m.suggestions) {
				return m.acceptSuggestion(i)
			}
		}
	}

	if m.waiting {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleProposalKey routes keys while a proposal is pending. Free-form
// input stays blocked until the user decides.
func (m *chatModel) handleProposalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y", "enter":
		q, ok := m.app.Chat.Accept(context.Background())
		if !ok {
			m.proposal = nil
			return m, nil
		}
		m.proposal = nil
		m.suggestions = intelligence.RemoveByTitle(m.suggestions, q.Title)
		m.syncTranscriptTail()
		return m, m.scheduleSuggest()

	case "n", "esc":
		m.app.Chat.Decline(context.Background())
		m.proposal = nil
		m.syncTranscriptTail()
		return m, m.scheduleSuggest()
	}
	return m, nil
}

func (m *chatModel) submit(text string) (tea.Model, tea.Cmd) {
	m.waiting = true
	m.messages = append(m.messages, formatter.FormatChatMessage(domain.ChatMessage{
		Sender: domain.SenderUser,
		Text:   text,
	}))

	submitCmd := func() tea.Msg {
		result, _ := m.app.Chat.Submit(context.Background(), text)
		return turnDoneMsg{result: result}
	}
	return m, tea.Batch(submitCmd, m.spin.Tick)
}

// acceptSuggestion adds one suggested draft to the log and drops it
// from the panel by title, since drafts have no id until accepted.
func (m *chatModel) acceptSuggestion(i int) (tea.Model, tea.Cmd) {
	d := m.suggestions[i]
	d.Tags = domain.NormalizeTags(d.Tags)
	q := m.app.Tracker.AddQuest(context.Background(), d)
	m.suggestions = intelligence.RemoveByTitle(m.suggestions, q.Title)
	return m, m.scheduleSuggest()
}

// syncTranscriptTail appends transcript entries the session added on its
// own, such as accept confirmations, without re-rendering earlier lines.
func (m *chatModel) syncTranscriptTail() {
	transcript := m.app.Tracker.Chat()
	for i := len(m.messages); i < len(transcript); i++ {
		m.messages = append(m.messages, formatter.FormatChatMessage(transcript[i]))
	}
}

func (m *chatModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Forge") + "\n")
	for _, line := range m.messages {
		b.WriteString(line + "\n")
	}

	if m.waiting {
		b.WriteString(m.spin.View() + formatter.Dim(" Forge is thinking...") + "\n")
	}

	if m.proposal != nil {
		b.WriteString(formatter.FormatProposal(*m.proposal) + "\n")
	}

	if len(m.suggestions) > 0 && m.proposal == nil {
		b.WriteString("\n" + formatter.FormatSuggestions(m.suggestions))
		b.WriteString(formatter.Dim("Press 1-3 on an empty prompt to accept a suggestion.") + "\n")
	}

	b.WriteString("\n" + formatter.StylePurple.Render("you") + formatter.Dim("> ") + m.input.View())
	b.WriteString("\n" + formatter.Dim("enter send · esc quit"))

	return b.String()
}
