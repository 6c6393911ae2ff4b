package main

import (
	"log"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katistix/feedback/internal/flow"
)

// --- BUBBLE TEA MESSAGES ---

// copiedToClipboardMsg reports the result of copying the response.
type copiedToClipboardMsg struct {
	err error
}

// clearCopiedMsg hides the "Copied!" badge.
type clearCopiedMsg struct{}

// --- COMMANDS ---

func copyToClipboardCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedToClipboardMsg{err: clipboard.WriteAll(text)}
	}
}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// logTransitions writes every state change of m to the standard logger.
func logTransitions(m *flow.Machine) {
	m.Subscribe(func(c flow.Change) {
		log.Printf("session=%s %s -[%s]-> %s", m.ID(), c.From, c.Event.Kind, c.To)
	})
}
