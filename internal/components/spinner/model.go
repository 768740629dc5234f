// Package spinner renders the animated typing indicator shown while a
// reply is pending.
package spinner

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manduvi/mentor-tui/internal/styles"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const interval = 80 * time.Millisecond

// TickMsg is sent when the spinner should advance a frame.
type TickMsg struct {
	ID int
}

// Model is the typing indicator.
type Model struct {
	id     int
	frame  int
	active bool
	label  string
}

var nextID int

// New creates a typing indicator with the given label.
func New(label string) Model {
	nextID++
	return Model{id: nextID, label: label}
}

// Start begins the animation.
func (m *Model) Start() tea.Cmd {
	m.active = true
	m.frame = 0
	return m.tick()
}

// Stop halts the animation.
func (m *Model) Stop() {
	m.active = false
}

// IsActive reports whether the indicator is animating.
func (m Model) IsActive() bool {
	return m.active
}

// Update advances the animation on its own ticks.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if tick, ok := msg.(TickMsg); ok {
		if tick.ID != m.id || !m.active {
			return m, nil
		}
		m.frame = (m.frame + 1) % len(frames)
		return m, m.tick()
	}
	return m, nil
}

// View renders the current frame with the label.
func (m Model) View() string {
	if !m.active {
		return ""
	}

	theme := styles.GetCurrentTheme()
	frame := lipgloss.NewStyle().Foreground(theme.Accent).Render(frames[m.frame])
	label := lipgloss.NewStyle().Foreground(theme.Muted).Italic(true).Render(m.label)
	return frame + " " + label
}

// Frame returns the current frame glyph without the label.
func (m Model) Frame() string {
	return frames[m.frame]
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{ID: m.id}
	})
}
