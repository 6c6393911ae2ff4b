package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katistix/feedback/internal/flow"
)

// --- STYLES ---
var (
	accentBlue = lipgloss.Color("#4088da")

	docStyle  = lipgloss.NewStyle().Margin(1, 2)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1a1a1a")).MarginBottom(1)

	// Buttons
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(accentBlue).
			Bold(true).
			Padding(0, 2).
			MarginRight(1)
	focusedButtonStyle = buttonStyle.
				Background(lipgloss.Color("#1f5fa8")).
				Underline(true)
	closeStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	focusedCloseStyle = closeStyle.Foreground(lipgloss.Color("#1a1a1a")).Bold(true)

	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	copySuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true)

	// Per-screen panels, one background each.
	panelStyle = lipgloss.NewStyle().
			Padding(1, 3).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentBlue)
	screenColors = map[flow.State]lipgloss.Color{
		flow.Welcome:  lipgloss.Color("#add8e6"),
		flow.Question: lipgloss.Color("#ffffe0"),
		flow.Form:     lipgloss.Color("#cdbeda"),
		flow.Thanks:   lipgloss.Color("#b7e8b6"),
	}
)

func panelFor(s flow.State, width int) lipgloss.Style {
	return panelStyle.Background(screenColors[s]).Width(width)
}
