// Package tabs renders the section navigation bar. Sections are fixed
// at construction; the app routes activation through Select/Next/Prev.
package tabs

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/manduvi/mentor-tui/internal/styles"
)

// Tab is one navigation section.
type Tab struct {
	ID    string
	Title string
	Icon  string
}

// Model is the tab bar.
type Model struct {
	tabs        []Tab
	activeIndex int
	width       int
}

// New creates a tab bar with the given sections.
func New(tabs []Tab) Model {
	return Model{tabs: tabs}
}

// SetWidth sets the render width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// Select activates the tab at index and returns its ID.
func (m *Model) Select(index int) string {
	if index < 0 || index >= len(m.tabs) {
		return m.ActiveID()
	}
	m.activeIndex = index
	return m.tabs[index].ID
}

// SelectID activates the tab with the given ID, if present.
func (m *Model) SelectID(id string) string {
	for i, tab := range m.tabs {
		if tab.ID == id {
			return m.Select(i)
		}
	}
	return m.ActiveID()
}

// Next activates the following tab, wrapping around.
func (m *Model) Next() string {
	return m.Select((m.activeIndex + 1) % len(m.tabs))
}

// Prev activates the preceding tab, wrapping around.
func (m *Model) Prev() string {
	return m.Select((m.activeIndex - 1 + len(m.tabs)) % len(m.tabs))
}

// ActiveID returns the ID of the active tab.
func (m Model) ActiveID() string {
	if len(m.tabs) == 0 {
		return ""
	}
	return m.tabs[m.activeIndex].ID
}

// ActiveIndex returns the index of the active tab.
func (m Model) ActiveIndex() int {
	return m.activeIndex
}

// Count returns the number of tabs.
func (m Model) Count() int {
	return len(m.tabs)
}

// View renders the bar in the underline style.
func (m Model) View() string {
	if len(m.tabs) == 0 {
		return ""
	}

	theme := styles.GetCurrentTheme()

	var rendered []string
	for i, tab := range m.tabs {
		content := tab.Title
		if tab.Icon != "" {
			content = tab.Icon + " " + content
		}

		var style lipgloss.Style
		if i == m.activeIndex {
			style = lipgloss.NewStyle().
				Foreground(theme.Primary).
				BorderBottom(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(theme.Primary).
				Padding(0, 2).
				Bold(true)
		} else {
			style = lipgloss.NewStyle().
				Foreground(theme.TextSecondary).
				Padding(0, 2)
		}

		rendered = append(rendered, style.Render(content))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
