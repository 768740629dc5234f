package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manduvi/mentor-tui/internal/styles"
)

// View renders the application.
func (m Model) View() string {
	if !m.ready {
		return "Carregando..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.tabs.View())

	switch m.tabs.ActiveID() {
	case sectionChat:
		sections = append(sections, m.renderChat())
		sections = append(sections, m.input.View())

	case sectionProgress:
		sections = append(sections, m.sidebar.FullView(m.width))

	case sectionRetriever:
		sections = append(sections, m.retriever.View())

	case sectionConfig:
		sections = append(sections, m.form.View())

	case sectionHealth:
		sections = append(sections, m.health.View())
	}

	sections = append(sections, m.renderStatusBar())

	if m.toasts.HasToasts() {
		sections = append(sections, m.toasts.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderChat places the progress sidebar next to the transcript when
// the terminal is wide enough.
func (m Model) renderChat() string {
	if m.width < 80 {
		return m.chat.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.chat.View(), m.sidebar.View())
}

func (m Model) renderHeader() string {
	title := styles.Header().Render("🎓 Mentor Manduvi")

	var right string
	if view, ok := m.tracker.Last(); ok {
		right = styles.AccentStyle().Render(
			fmt.Sprintf("%d XP • %s", view.XP, view.Level.Label),
		)
	}

	spacerWidth := m.width - lipgloss.Width(title) - lipgloss.Width(right) - 2
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Repeat(" ", spacerWidth), right)
}

func (m Model) renderStatusBar() string {
	var left string
	switch {
	case !m.onlineKnown:
		left = styles.MutedStyle().Render("Conectando...")
	case m.online:
		left = styles.SuccessStyle().Render("✅ Online")
	default:
		left = styles.ErrorStyle().Render("❌ Offline")
	}
	left += styles.StatusBar().Render(fmt.Sprintf("  agente: %s", m.session.AgentID()))

	helpText := "Enter: enviar • Tab: seção • Ctrl+C: sair"
	switch m.tabs.ActiveID() {
	case sectionProgress:
		helpText = "Tab: seção • Ctrl+C: sair"
	case sectionRetriever:
		helpText = "Enter: buscar • Tab: seção • Ctrl+C: sair"
	case sectionConfig:
		helpText = "↑/↓: campo • Enter: salvar • Tab: seção • Ctrl+C: sair"
	case sectionHealth:
		helpText = "r: reexecutar • Tab: seção • Ctrl+C: sair"
	}
	help := styles.StatusBar().Render(helpText)

	spacerWidth := m.width - lipgloss.Width(left) - lipgloss.Width(help) - 2
	if spacerWidth < 0 {
		spacerWidth = 0
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", spacerWidth), help)
}
