package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katistix/feedback/internal/config"
	"github.com/katistix/feedback/internal/flow"
)

const copiedBadgeDuration = 2 * time.Second

// --- MAIN MODEL ---

// model renders the screen for the machine's current state and turns key
// presses into flow events. It never decides transitions itself.
type model struct {
	machine    *flow.Machine
	screenCopy config.CopyConfig
	keys       keyMap
	help       help.Model
	input      textarea.Model

	focus      int    // index into controlsFor(state)
	response   string // last submitted complaint
	showCopied bool
	err        error

	width      int
	winW, winH int
}

func initialModel(cfg config.Config, machine *flow.Machine) model {
	width := cfg.UI.Width
	ta := textarea.New()
	ta.Placeholder = cfg.Copy.Placeholder
	ta.ShowLineNumbers = false
	ta.SetWidth(width - panelStyle.GetHorizontalPadding())
	ta.SetHeight(4)

	h := help.New()
	h.Styles.ShortKey = helpStyle
	h.Styles.ShortDesc = helpStyle

	return model{
		machine:    machine,
		screenCopy: cfg.Copy,
		keys:       newKeyMap(),
		help:       h,
		input:      ta,
		width:      width,
	}
}

// --- BUBBLE TEA LOGIC ---
func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.winW, m.winH = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case copiedToClipboardMsg:
		if msg.err != nil {
			log.Printf("session=%s copy response: %v", m.machine.ID(), msg.err)
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.showCopied = true
		return m, clearCopiedAfter(copiedBadgeDuration)

	case clearCopiedMsg:
		m.showCopied = false
		return m, nil
	}

	// Cursor blinks and the like.
	if m.machine.State() == flow.Form {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

//nolint:cyclop
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.machine.State()

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Close) && state.Accepts(flow.Close) {
		return m.send(flow.CloseEvent())
	}

	switch state {
	case flow.Question:
		switch {
		case key.Matches(msg, m.keys.Good):
			return m.send(flow.GoodEvent())
		case key.Matches(msg, m.keys.Bad):
			return m.send(flow.BadEvent())
		}
	case flow.Form:
		if key.Matches(msg, m.keys.Submit) {
			return m.send(flow.SubmitEvent(m.input.Value()))
		}
	case flow.Thanks:
		if key.Matches(msg, m.keys.Copy) && m.response != "" {
			return m, copyToClipboardCmd(m.response)
		}
	}

	focused, ok := m.focused()
	typing := ok && focused == controlInput
	// Arrows move the textarea cursor, not focus, while typing.
	arrow := msg.Type == tea.KeyLeft || msg.Type == tea.KeyRight

	switch {
	case key.Matches(msg, m.keys.NextCtl) && !(typing && arrow):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.PrevCtl) && !(typing && arrow):
		return m.moveFocus(-1)
	case key.Matches(msg, m.keys.Select) && ok && !typing:
		if ev, ok := eventFor(focused, m.input.Value()); ok {
			return m.send(ev)
		}
		return m, nil
	}

	if typing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// send forwards ev to the machine and resets the screen when it moves.
func (m model) send(ev flow.Event) (tea.Model, tea.Cmd) {
	from := m.machine.State()
	to := m.machine.Send(ev)
	if to == from {
		return m, nil
	}
	if ev.Kind == flow.Submit {
		m.response = ev.Text
	}

	m.focus = 0
	m.showCopied = false
	m.err = nil

	switch to {
	case flow.Closed:
		m.input.Blur()
		return m, tea.Quit
	case flow.Form:
		m.input.Reset()
		return m, m.input.Focus()
	default:
		m.input.Blur()
		return m, nil
	}
}

func (m model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	controls := controlsFor(m.machine.State())
	if len(controls) == 0 {
		return m, nil
	}
	m.focus = (m.focus + delta + len(controls)) % len(controls)
	if controls[m.focus] == controlInput {
		return m, m.input.Focus()
	}
	m.input.Blur()
	return m, nil
}

func (m model) focused() (control, bool) {
	controls := controlsFor(m.machine.State())
	if m.focus < 0 || m.focus >= len(controls) {
		return 0, false
	}
	return controls[m.focus], true
}

func (m model) View() string {
	state := m.machine.State()
	if state == flow.Closed {
		return ""
	}

	panel := panelFor(state, m.width).Render(m.renderScreen(state))
	out := docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, panel, m.renderHelpView(state)))

	if m.winW > 0 && m.winH > 0 {
		return lipgloss.Place(m.winW, m.winH, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}

func (m model) renderScreen(state flow.State) string {
	focused, _ := m.focused()
	inner := m.width - panelStyle.GetHorizontalPadding()

	var b strings.Builder
	var buttons []string
	hasClose := false
	for _, c := range controlsFor(state) {
		switch {
		case c == controlClose:
			hasClose = true
		case c.isButton():
			style := buttonStyle
			if c == focused {
				style = focusedButtonStyle
			}
			buttons = append(buttons, style.Render(strings.ToUpper(c.String())))
		}
	}

	if hasClose {
		style := closeStyle
		if focused == controlClose {
			style = focusedCloseStyle
		}
		b.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Right, style.Render(controlClose.String())))
		b.WriteString("\n")
	}

	b.WriteString(headerStyle.Render(headerFor(state, m.screenCopy)))
	b.WriteString("\n")

	if state == flow.Form {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}
	if len(buttons) > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	}
	return b.String()
}

func (m model) renderHelpView(state flow.State) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys.forScreen(state, m.response != "")))
	if m.showCopied {
		b.WriteString("  " + copySuccessStyle.Render("Copied!"))
	}
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	return b.String()
}
