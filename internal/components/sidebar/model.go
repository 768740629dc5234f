// Package sidebar renders the progress surfaces: the compact sidebar
// next to the chat and the full profile panel of the Progresso
// section. Both draw from the same cached progress view, so rendering
// is idempotent for a given view.
package sidebar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manduvi/mentor-tui/internal/components/xpbar"
	"github.com/manduvi/mentor-tui/internal/progress"
	"github.com/manduvi/mentor-tui/internal/styles"
)

// Model is the progress surface renderer.
type Model struct {
	view    progress.View
	hasView bool
	bar     xpbar.Model
	width   int
	height  int
	visible bool
}

// New creates a sidebar.
func New(width, height int) Model {
	return Model{
		bar:     xpbar.New(xpbar.VariantBar),
		width:   width,
		height:  height,
		visible: true,
	}
}

// SetSize updates the sidebar dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetVisible toggles the sidebar.
func (m *Model) SetVisible(visible bool) {
	m.visible = visible
}

// IsVisible reports whether the sidebar renders.
func (m Model) IsVisible() bool {
	return m.visible
}

// SetView applies a progress view to every surface this component
// owns. Applying the same view twice renders identically.
func (m *Model) SetView(view progress.View) {
	m.view = view
	m.hasView = true
	m.bar.SetProgress(view.XP, view.Goal)
}

// View renders the compact sidebar.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(styles.PanelTitle().Render("Progresso"))
	sb.WriteString("\n\n")

	if !m.hasView {
		sb.WriteString(styles.MutedStyle().Render("Sem dados ainda."))
		return m.frame(sb.String())
	}

	m.bar.SetWidth(m.width - 14)
	sb.WriteString(styles.AccentStyle().Render(m.view.Level.Label))
	sb.WriteString("\n")
	sb.WriteString(m.bar.View())
	sb.WriteString("\n")
	if m.view.XPToNext > 0 {
		sb.WriteString(styles.MutedStyle().Render(fmt.Sprintf("%d XP para o próximo nível", m.view.XPToNext)))
		sb.WriteString("\n")
	}

	if len(m.view.Badges) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.PanelTitle().Render("Conquistas"))
		sb.WriteString("\n")
		sb.WriteString(styles.SuccessStyle().Render("🏅 " + strings.Join(m.view.Badges, "  🏅 ")))
		sb.WriteString("\n")
	}

	if len(m.view.Missions) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.PanelTitle().Render("Missões"))
		sb.WriteString("\n")
		for _, mission := range m.view.Missions {
			sb.WriteString(styles.MutedStyle().Render("• Revisar " + mission))
			sb.WriteString("\n")
		}
	}

	return m.frame(sb.String())
}

// FullView renders the Progresso section panel, which adds the recent
// event log to the compact surfaces.
func (m Model) FullView(width int) string {
	var sb strings.Builder
	sb.WriteString(styles.PanelTitle().Render("Seu progresso"))
	sb.WriteString("\n\n")

	if !m.hasView {
		sb.WriteString(styles.MutedStyle().Render("Converse com o mentor para começar a ganhar XP."))
		return sb.String()
	}

	bar := m.bar
	bar.SetWidth(width - 20)

	sb.WriteString(fmt.Sprintf("%s %s\n",
		styles.MutedStyle().Render("Nível:"),
		styles.AccentStyle().Render(fmt.Sprintf("%d · %s", m.view.Level.Level, m.view.Level.Label))))
	sb.WriteString(bar.View())
	sb.WriteString("\n\n")

	sb.WriteString(styles.PanelTitle().Render("Conquistas"))
	sb.WriteString("\n")
	if len(m.view.Badges) == 0 {
		sb.WriteString(styles.MutedStyle().Render("Nenhuma ainda."))
		sb.WriteString("\n")
	} else {
		for _, badge := range m.view.Badges {
			sb.WriteString(styles.SuccessStyle().Render("🏅 " + badge))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")

	sb.WriteString(styles.PanelTitle().Render("Missões"))
	sb.WriteString("\n")
	if len(m.view.Missions) == 0 {
		sb.WriteString(styles.MutedStyle().Render("Nenhuma lacuna detectada."))
		sb.WriteString("\n")
	} else {
		for _, mission := range m.view.Missions {
			sb.WriteString("• Revisar " + mission + "\n")
		}
	}
	sb.WriteString("\n")

	sb.WriteString(styles.PanelTitle().Render("Atividade recente"))
	sb.WriteString("\n")
	if len(m.view.Events) == 0 {
		sb.WriteString(styles.MutedStyle().Render("Nenhum evento registrado."))
		sb.WriteString("\n")
	} else {
		for _, line := range m.view.Events {
			sb.WriteString(styles.MutedStyle().Render(line))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func (m Model) frame(content string) string {
	return styles.PanelBorder().
		Width(m.width - 2).
		Render(lipgloss.NewStyle().MaxHeight(m.height).Render(content))
}
