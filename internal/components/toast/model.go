// Package toast shows short-lived notifications, most importantly the
// one-shot level-up toast. Each toast dismisses itself after its
// duration.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Type selects the toast styling.
type Type string

const (
	Info    Type = "info"
	Success Type = "success"
	Error   Type = "error"
)

// DefaultDuration is how long a toast stays visible.
const DefaultDuration = 3 * time.Second

// Toast is a single notification.
type Toast struct {
	ID      string
	Message string
	Type    Type
}

// Model manages the active toasts.
type Model struct {
	toasts    []Toast
	width     int
	maxToasts int
}

// New creates an empty toast manager.
func New() Model {
	return Model{width: 80, maxToasts: 3}
}

// SetWidth sets the render width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// Add shows a toast and schedules its removal.
func (m *Model) Add(message string, toastType Type, duration time.Duration) tea.Cmd {
	t := Toast{
		ID:      uuid.New().String(),
		Message: message,
		Type:    toastType,
	}

	m.toasts = append(m.toasts, t)
	if len(m.toasts) > m.maxToasts {
		m.toasts = m.toasts[len(m.toasts)-m.maxToasts:]
	}

	return tea.Tick(duration, func(time.Time) tea.Msg {
		return removeToastMsg{id: t.ID}
	})
}

// removeToastMsg is sent when a toast expires.
type removeToastMsg struct {
	id string
}

// Update removes expired toasts.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if remove, ok := msg.(removeToastMsg); ok {
		for i, t := range m.toasts {
			if t.ID == remove.id {
				m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
				break
			}
		}
	}
	return m, nil
}

// View renders the active toasts stacked vertically.
func (m Model) View() string {
	if len(m.toasts) == 0 {
		return ""
	}

	out := ""
	for i, t := range m.toasts {
		if i > 0 {
			out += "\n"
		}
		out += renderToast(t, m.width)
	}
	return out
}

// HasToasts reports whether any toast is visible.
func (m Model) HasToasts() bool {
	return len(m.toasts) > 0
}
