// Package xpbar renders XP progress toward the goal as a bar or a
// compact inline percentage.
package xpbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manduvi/mentor-tui/internal/styles"
)

// Variant selects the display style.
type Variant int

const (
	VariantBar Variant = iota
	VariantCompact
)

// Model is the XP bar.
type Model struct {
	variant     Variant
	xp          int
	goal        int
	width       int
	showNumbers bool
}

// New creates an XP bar.
func New(variant Variant) Model {
	return Model{
		variant:     variant,
		width:       20,
		showNumbers: true,
	}
}

// SetProgress sets the XP total and goal.
func (m *Model) SetProgress(xp, goal int) {
	m.xp = xp
	m.goal = goal
}

// SetWidth sets the bar width in cells.
func (m *Model) SetWidth(width int) {
	if width < 5 {
		width = 5
	}
	m.width = width
}

// SetShowNumbers toggles the "(xp/goal)" suffix.
func (m *Model) SetShowNumbers(show bool) {
	m.showNumbers = show
}

// Percent returns progress as a fraction in [0, 1].
func (m Model) Percent() float64 {
	if m.goal <= 0 || m.xp <= 0 {
		return 0
	}
	p := float64(m.xp) / float64(m.goal)
	if p > 1 {
		return 1
	}
	return p
}

// View renders the bar.
func (m Model) View() string {
	if m.variant == VariantCompact {
		return m.renderCompact()
	}
	return m.renderBar()
}

func (m Model) renderBar() string {
	theme := styles.GetCurrentTheme()
	percent := m.Percent()

	filledWidth := int(float64(m.width) * percent)
	if filledWidth > m.width {
		filledWidth = m.width
	}

	filled := strings.Repeat("█", filledWidth)
	empty := strings.Repeat("░", m.width-filledWidth)

	bar := lipgloss.NewStyle().Foreground(theme.Success).Render(filled) +
		lipgloss.NewStyle().Foreground(theme.Muted).Render(empty)

	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(bar)
	sb.WriteString("] ")
	sb.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("%d%%", int(percent*100))))

	if m.showNumbers {
		sb.WriteString(" ")
		sb.WriteString(lipgloss.NewStyle().Foreground(theme.Muted).Render(fmt.Sprintf("(%d/%d XP)", m.xp, m.goal)))
	}

	return sb.String()
}

func (m Model) renderCompact() string {
	theme := styles.GetCurrentTheme()
	return lipgloss.NewStyle().
		Foreground(theme.Success).
		Render(fmt.Sprintf("%d%%", int(m.Percent()*100)))
}
