package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/flashcards/internal/session"
)

// renderHeader renders the status bar: logo, mode, backend and health.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{
		bg.Render("flashcards", styles.Logo),
		bg.Render(m.modeLabel(), styles.MutedText),
	}

	if m.health.Backend != "" {
		backend := truncate(m.health.Backend, 24)
		parts = append(parts, bg.Render(backend, styles.FaintText))
	}

	if m.health.IsDegraded() {
		parts = append(parts, bg.Render("● backend degraded", styles.DangerText))
	} else if m.health.Requests > 0 {
		parts = append(parts, bg.Render("● backend ok", styles.SuccessText))
	}

	left := bg.Join(parts, sep)
	right := bg.Render(m.theme.Name, styles.FaintText)

	inner := m.width - 2
	if inner < 0 {
		inner = 0
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Padding(0, 1).
		Width(m.width).
		Render(spread(left, right, inner))
}

func (m Model) modeLabel() string {
	switch m.machine.Mode() {
	case session.ModeCreate:
		return "Create"
	case session.ModeLoading:
		return "Generating"
	case session.ModeStudy:
		nav := m.machine.Navigator()
		return fmt.Sprintf("Study · %d cards", nav.Len())
	default:
		return ""
	}
}
