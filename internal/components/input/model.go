// Package input is the single-line message entry below the chat.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manduvi/mentor-tui/internal/styles"
)

// Model is the message input.
type Model struct {
	input textinput.Model
	width int
}

// New creates a focused message input.
func New(width int) Model {
	ti := textinput.New()
	ti.Placeholder = "Digite sua mensagem..."
	ti.CharLimit = 2048
	ti.Width = width - 6
	ti.Focus()

	return Model{input: ti, width: width}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards key events to the text field.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the input with its border.
func (m Model) View() string {
	theme := styles.GetCurrentTheme()
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(m.width - 2)
	return border.Render(m.input.View())
}

// Value returns the trimmed input text.
func (m Model) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Clear empties the field.
func (m *Model) Clear() {
	m.input.SetValue("")
}

// SetWidth updates the render width.
func (m *Model) SetWidth(width int) {
	m.width = width
	m.input.Width = width - 6
}

// Focus gives the field keyboard focus.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.input.Blur()
}

// Focused reports whether the field has focus.
func (m Model) Focused() bool {
	return m.input.Focused()
}
