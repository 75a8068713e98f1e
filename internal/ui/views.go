package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/five82/flashcards/internal/deck"
	"github.com/five82/flashcards/internal/flashcard"
	"github.com/five82/flashcards/internal/session"
)

const (
	maxCardWidth = 72
	cardHeight   = 11
	flipHint     = "Use ↑↓ arrows to flip"
	loadingText  = "Generating your flashcard set..."
)

// renderMain renders header, content and footer.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderContent renders the body for the current mode.
func (m Model) renderContent() string {
	switch m.machine.Mode() {
	case session.ModeCreate:
		return m.renderCreate()
	case session.ModeLoading:
		return m.renderLoading()
	case session.ModeStudy:
		return m.renderStudy()
	default:
		return ""
	}
}

func (m Model) renderCreate() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(m.renderSourceTabs())
	b.WriteString("\n\n")
	b.WriteString(styles.Input.Render(m.input.View()))

	if notice, ok := m.machine.LastNotice(); ok {
		b.WriteString("\n\n")
		b.WriteString(styles.DangerText.Render(notice.Message))
	}

	return m.center(b.String())
}

func (m Model) renderSourceTabs() string {
	styles := m.theme.Styles()
	tabs := make([]string, 0, len(flashcard.SourceModes()))
	for _, mode := range flashcard.SourceModes() {
		style := styles.TabInactive
		if mode == m.machine.Source() {
			style = styles.TabActive
		}
		tabs = append(tabs, style.Render(mode.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderLoading() string {
	styles := m.theme.Styles()
	line := m.spinner.View() + " " + styles.Text.Render(loadingText)
	return m.center(line)
}

func (m Model) renderStudy() string {
	nav := m.machine.Navigator()
	if nav == nil {
		return ""
	}
	styles := m.theme.Styles()

	width := m.cardWidth()
	card := nav.Card()
	face, label := card.Front, "FRONT"
	if nav.Flipped() {
		face, label = card.Back, "BACK"
	}

	body := wordwrap.String(face, width-8)
	content := styles.FaintText.Render(label) + "\n\n" + styles.Text.Bold(!nav.Flipped()).Render(body)
	if !nav.Flipped() {
		content += "\n\n" + styles.FaintText.Render(flipHint)
	}

	transitioning := nav.Phase() != deck.PhaseIdle
	box := styles.CardStyle(nav.Flipped(), transitioning).
		Width(width).
		Height(cardHeight).
		Render(content)

	return m.center(box + "\n" + m.renderNavRow(nav, width+2))
}

// renderNavRow renders the previous/next affordances around the counter.
func (m Model) renderNavRow(nav *deck.Navigator, width int) string {
	styles := m.theme.Styles()

	prev := styles.AccentText.Render("← prev")
	if nav.AtStart() || nav.Locked() {
		prev = styles.FaintText.Render("← prev")
	}
	next := styles.AccentText.Render("next →")
	if nav.AtEnd() || nav.Locked() {
		next = styles.FaintText.Render("next →")
	}
	counter := styles.MutedText.Render(fmt.Sprintf("%d / %d", nav.Index()+1, nav.Len()))

	side := (width - lipgloss.Width(counter)) / 2
	left := spread(prev, "", side)
	right := spread("", next, width-side-lipgloss.Width(counter))
	return left + counter + right
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	var bindings []key.Binding
	switch m.machine.Mode() {
	case session.ModeCreate:
		bindings = m.keys.CreateHelp()
	case session.ModeStudy:
		bindings = m.keys.StudyHelp()
	default:
		bindings = []key.Binding{m.keys.ForceQuit}
	}

	line := m.help.ShortHelpView(bindings)
	if m.status != "" {
		line = styles.SuccessText.Render(m.status) + "  " + line
	}
	return styles.Footer.Render(line)
}

func (m Model) center(content string) string {
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
}

func (m Model) cardWidth() int {
	w := m.width - 6
	if w > maxCardWidth {
		w = maxCardWidth
	}
	if w < 24 {
		w = 24
	}
	return w
}
