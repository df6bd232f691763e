// Package teatest drives bubbletea models synchronously in tests.
//
// Instead of starting a tea.Program, the Driver calls Update directly
// and drains returned Cmds inline, which keeps TUI tests deterministic
// and free of goroutine scheduling. Cmds that block on timers (cursor
// blink, tea.Tick debounces) are given a short grace period and skipped
// when they do not return in time; tests trigger debounced work by
// sending the tick message themselves.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrainDepth bounds message chains so a model that keeps returning
// Cmds cannot hang a test.
const maxDrainDepth = 100

// cmdGrace is how long a Cmd may run before it is skipped. Service
// calls against stubs return in microseconds; timer-backed Cmds block
// for hundreds of milliseconds, so the two are easy to separate.
const cmdGrace = 10 * time.Millisecond

// Driver is a synchronous harness around one tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set when a tea.QuitMsg is observed. The real runtime
	// intercepts it before the model, so the driver tracks it here.
	Quitting bool
}

// New wraps a model. Init is processed immediately so the model starts
// in the same state tea.Program would put it in.
func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	d.drain(model.Init(), 0)
	return d
}

// Send routes a message through Update and drains any resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	model, cmd := d.Model.Update(msg)
	d.Model = model
	d.drain(cmd, 0)
}

// Type sends a string one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// PressEnter sends the Enter key.
func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

// PressEsc sends the Escape key.
func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

// View returns the model's current rendering.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", maxDrainDepth)
		return
	}

	msg := runWithGrace(cmd)
	if msg == nil || isBlinkMsg(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			if sub != nil {
				d.drain(sub, depth+1)
			}
		}
	case tea.QuitMsg:
		d.Quitting = true
		model, _ := d.Model.Update(msg)
		d.Model = model
	default:
		model, next := d.Model.Update(msg)
		d.Model = model
		d.drain(next, depth+1)
	}
}

// runWithGrace executes a Cmd, abandoning it if it blocks on a timer.
func runWithGrace(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdGrace):
		return nil
	}
}

// isBlinkMsg detects bubbles/cursor blink messages, which chain into
// blocking timer Cmds when processed.
func isBlinkMsg(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
