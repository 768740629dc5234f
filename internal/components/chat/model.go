// Package chat renders the transcript: user and tutor bubbles, the
// typing indicator, and the reply annotations (citations, XP award,
// next task). Appending always scrolls to the newest entry.
package chat

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/manduvi/mentor-tui/internal/components/spinner"
	"github.com/manduvi/mentor-tui/internal/transcript"
)

// Model is the chat component.
type Model struct {
	viewport   viewport.Model
	transcript *transcript.Transcript
	typing     spinner.Model
	width      int
	height     int
}

// New creates a chat component over an empty transcript.
func New(width, height int) Model {
	vp := viewport.New(width, height)
	vp.SetContent("")

	// If the renderer fails, replies fall back to plain text.
	_ = InitMarkdown(width)

	return Model{
		viewport:   vp,
		transcript: transcript.New(),
		typing:     spinner.New("Digitando..."),
		width:      width,
		height:     height,
	}
}

// Transcript exposes the underlying history.
func (m *Model) Transcript() *transcript.Transcript {
	return m.transcript
}

// SetSize updates the chat dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height

	_ = InitMarkdown(width)
	m.updateContent()
}

// AppendUser appends a user message and scrolls to it.
func (m *Model) AppendUser(text string) {
	m.transcript.AppendUser(text)
	m.updateContent()
}

// AppendAssistant appends a tutor reply with its annotations.
func (m *Model) AppendAssistant(text string, meta transcript.Meta) {
	m.transcript.AppendAssistant(text, meta)
	m.updateContent()
}

// ShowTyping appends the typing placeholder and starts its animation.
func (m *Model) ShowTyping() tea.Cmd {
	m.transcript.ShowTyping()
	m.updateContent()
	return m.typing.Start()
}

// ClearTyping removes the typing placeholder if it is still the last
// entry. Safe to call from both the success and failure paths.
func (m *Model) ClearTyping() {
	if m.transcript.ClearTyping() {
		m.typing.Stop()
		m.updateContent()
	}
}

// Update handles viewport scrolling and typing animation ticks.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	if _, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.typing, cmd = m.typing.Update(msg)
		cmds = append(cmds, cmd)
		if m.typing.IsActive() {
			m.updateContent()
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View renders the chat viewport.
func (m Model) View() string {
	return m.viewport.View()
}

// IsEmpty reports whether the transcript has no entries.
func (m Model) IsEmpty() bool {
	return m.transcript.Len() == 0
}

// ScrollUp scrolls up by one line.
func (m *Model) ScrollUp() {
	m.viewport.LineUp(1)
}

// ScrollDown scrolls down by one line.
func (m *Model) ScrollDown() {
	m.viewport.LineDown(1)
}

// PageUp scrolls up by one page.
func (m *Model) PageUp() {
	m.viewport.ViewUp()
}

// PageDown scrolls down by one page.
func (m *Model) PageDown() {
	m.viewport.ViewDown()
}

// updateContent re-renders the transcript into the viewport and snaps
// to the bottom. Scroll-to-bottom is unconditional on every append.
func (m *Model) updateContent() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}
