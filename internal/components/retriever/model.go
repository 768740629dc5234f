// Package retriever implements the Acervo panel: a debug search over
// the backend's document index.
package retriever

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/manduvi/mentor-tui/internal/styles"
	"github.com/manduvi/mentor-tui/sdk/mentor"
)

// DefaultK is how many chunks a search requests.
const DefaultK = 5

// state tracks where the panel is in its search cycle.
type state int

const (
	stateIdle state = iota
	stateSearching
	stateResults
	stateEmpty
	stateError
)

// SearchRequestedMsg asks the app to run a retriever query.
type SearchRequestedMsg struct {
	Query string
	K     int
}

// Model is the Acervo panel.
type Model struct {
	input textinput.Model
	state state
	hits  []mentor.SourceHit
	width int
}

// New creates the panel.
func New(width int) Model {
	ti := textinput.New()
	ti.Placeholder = "Buscar no acervo..."
	ti.CharLimit = 256
	ti.Width = width - 8

	return Model{input: ti, width: width}
}

// Focus gives keyboard focus to the query field.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.input.Blur()
}

// SetWidth updates the render width.
func (m *Model) SetWidth(width int) {
	m.width = width
	m.input.Width = width - 8
}

// SetResults applies a successful search response.
func (m *Model) SetResults(hits []mentor.SourceHit) {
	m.hits = hits
	if len(hits) == 0 {
		m.state = stateEmpty
	} else {
		m.state = stateResults
	}
}

// SetError marks the search as failed.
func (m *Model) SetError() {
	m.state = stateError
}

// Update handles typing and submit.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		query := strings.TrimSpace(m.input.Value())
		if query == "" {
			return m, nil
		}
		m.state = stateSearching
		return m, func() tea.Msg {
			return SearchRequestedMsg{Query: query, K: DefaultK}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the panel.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(styles.PanelTitle().Render("Acervo"))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	switch m.state {
	case stateSearching:
		sb.WriteString(styles.MutedStyle().Render("Buscando..."))
	case stateEmpty:
		sb.WriteString(styles.MutedStyle().Render("Nenhum resultado encontrado. Verifique se a ingestão foi executada."))
	case stateError:
		sb.WriteString(styles.ErrorStyle().Render("Erro ao buscar no acervo."))
	case stateResults:
		for i, hit := range m.hits {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(styles.AccentStyle().Render(hit.Source))
			sb.WriteString("\n")
			if hit.Score != nil {
				sb.WriteString(styles.MutedStyle().Render(fmt.Sprintf("Score: %.4f", *hit.Score)))
				sb.WriteString("\n")
			}
			if hit.Snippet != "" {
				sb.WriteString(snippetLine(hit.Snippet, m.width-4))
				sb.WriteString("\n")
			}
		}
	default:
		sb.WriteString(styles.MutedStyle().Render("Digite uma consulta e pressione Enter."))
	}

	return sb.String()
}

// snippetLine truncates a snippet to one display line.
func snippetLine(snippet string, width int) string {
	snippet = strings.ReplaceAll(snippet, "\n", " ")
	if runes := []rune(snippet); width > 3 && len(runes) > width {
		snippet = string(runes[:width-3]) + "..."
	}
	return styles.MutedStyle().Italic(true).Render(snippet)
}
