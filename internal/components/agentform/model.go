// Package agentform implements the Configuração panel: the persona
// tuning form, plus API-key storage. Values are only validated and
// sent on save; the form itself never talks to the network.
package agentform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/manduvi/mentor-tui/internal/styles"
	"github.com/manduvi/mentor-tui/sdk/mentor"
)

// SaveRequestedMsg asks the app to persist the edited persona config.
type SaveRequestedMsg struct {
	Config mentor.AgentConfig
}

// SaveKeyRequestedMsg asks the app to store the API key.
type SaveKeyRequestedMsg struct {
	Key     string
	Persist bool
}

// ReloadRequestedMsg asks the app to re-fetch the persona configs.
type ReloadRequestedMsg struct{}

// field indices; the order is the navigation order.
const (
	fieldAgent = iota
	fieldName
	fieldModel
	fieldTemperature
	fieldMaxTokens
	fieldEmbedModel
	fieldRAGK
	fieldChunkSize
	fieldOverlap
	fieldTools
	fieldSystemPrompt
	fieldAPIKey
	fieldPersist
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Agente",
	"Nome",
	"Modelo",
	"Temperatura (0-2)",
	"Max tokens",
	"Modelo de embeddings",
	"RAG k",
	"Tamanho do chunk",
	"Overlap",
	"Ferramentas",
	"Prompt de sistema",
	"OPENAI_API_KEY",
	"Persistir chave",
}

// textFields maps a field index to its slot in the inputs slice; -1
// means the field is not a free-text input.
var textFields = [fieldCount]int{
	-1, 0, 1, 2, 3, 4, 5, 6, 7, -1, 8, 9, -1,
}

// Model is the configuration form.
type Model struct {
	inputs    []textinput.Model
	focus     int
	agentIDs  []string
	agentIdx  int
	agents    map[string]mentor.AgentConfig
	tools     bool
	persist   bool
	status    string
	statusErr bool
	width     int
}

// New creates the form with empty fields.
func New(width int) Model {
	inputs := make([]textinput.Model, 10)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 512
		ti.Width = width - 28
		inputs[i] = ti
	}

	return Model{
		inputs: inputs,
		width:  width,
	}
}

// SetWidth updates the render width.
func (m *Model) SetWidth(width int) {
	m.width = width
	for i := range m.inputs {
		m.inputs[i].Width = width - 28
	}
}

// Focus activates the form.
func (m *Model) Focus() tea.Cmd {
	return m.focusField(m.focus)
}

// Blur deactivates every field.
func (m *Model) Blur() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// SetAgents loads the personas fetched from the backend and fills the
// form with the selected one.
func (m *Model) SetAgents(agents map[string]mentor.AgentConfig) {
	m.agents = agents
	m.agentIDs = make([]string, 0, len(agents))
	for id := range agents {
		m.agentIDs = append(m.agentIDs, id)
	}
	sort.Strings(m.agentIDs)

	if m.agentIdx >= len(m.agentIDs) {
		m.agentIdx = 0
	}
	m.applySelected()
}

// SetStatus shows a result line under the form.
func (m *Model) SetStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

// SelectedAgentID returns the persona being edited.
func (m Model) SelectedAgentID() string {
	if len(m.agentIDs) == 0 {
		return ""
	}
	return m.agentIDs[m.agentIdx]
}

// applySelected fills the fields from the selected persona's config.
func (m *Model) applySelected() {
	cfg, ok := m.agents[m.SelectedAgentID()]
	if !ok {
		return
	}

	m.setText(fieldName, cfg.Name)
	m.setText(fieldModel, cfg.Model)
	m.setText(fieldTemperature, strconv.FormatFloat(cfg.Temperature, 'f', -1, 64))
	m.setText(fieldMaxTokens, strconv.Itoa(cfg.MaxTokens))
	m.setText(fieldEmbedModel, cfg.EmbedModel)
	m.setText(fieldRAGK, strconv.Itoa(cfg.RAGK))
	m.setText(fieldChunkSize, strconv.Itoa(cfg.RAGChunkSize))
	m.setText(fieldOverlap, strconv.Itoa(cfg.RAGOverlap))
	m.setText(fieldSystemPrompt, cfg.SystemPrompt)
	m.tools = cfg.ToolsEnabled
	m.status = ""
}

func (m *Model) setText(field int, value string) {
	if slot := textFields[field]; slot >= 0 {
		m.inputs[slot].SetValue(value)
	}
}

func (m Model) text(field int) string {
	if slot := textFields[field]; slot >= 0 {
		return strings.TrimSpace(m.inputs[slot].Value())
	}
	return ""
}

func (m *Model) focusField(field int) tea.Cmd {
	m.focus = field
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if slot := textFields[field]; slot >= 0 {
		return m.inputs[slot].Focus()
	}
	return nil
}

// buildConfig validates the fields into an AgentConfig.
func (m Model) buildConfig() (mentor.AgentConfig, error) {
	temperature, err := strconv.ParseFloat(m.text(fieldTemperature), 64)
	if err != nil || temperature < 0 || temperature > 2 {
		return mentor.AgentConfig{}, fmt.Errorf("temperatura deve estar entre 0 e 2")
	}

	maxTokens, err := strconv.Atoi(m.text(fieldMaxTokens))
	if err != nil || maxTokens <= 0 {
		return mentor.AgentConfig{}, fmt.Errorf("max tokens deve ser um inteiro positivo")
	}

	ragK, _ := strconv.Atoi(m.text(fieldRAGK))
	chunkSize, _ := strconv.Atoi(m.text(fieldChunkSize))
	overlap, _ := strconv.Atoi(m.text(fieldOverlap))

	return mentor.AgentConfig{
		AgentID:      m.SelectedAgentID(),
		Name:         m.text(fieldName),
		Model:        m.text(fieldModel),
		Temperature:  temperature,
		MaxTokens:    maxTokens,
		EmbedModel:   m.text(fieldEmbedModel),
		RAGK:         ragK,
		RAGChunkSize: chunkSize,
		RAGOverlap:   overlap,
		ToolsEnabled: m.tools,
		SystemPrompt: m.text(fieldSystemPrompt),
	}, nil
}

// Update handles navigation, editing and the save shortcuts.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		// Cursor blink and other component ticks go to the focused field.
		if slot := textFields[m.focus]; slot >= 0 {
			var cmd tea.Cmd
			m.inputs[slot], cmd = m.inputs[slot].Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch key.String() {
	case "up":
		return m, m.focusField((m.focus - 1 + fieldCount) % fieldCount)

	case "down":
		return m, m.focusField((m.focus + 1) % fieldCount)

	case "left", "right":
		switch m.focus {
		case fieldAgent:
			if n := len(m.agentIDs); n > 0 {
				if key.String() == "right" {
					m.agentIdx = (m.agentIdx + 1) % n
				} else {
					m.agentIdx = (m.agentIdx - 1 + n) % n
				}
				m.applySelected()
			}
			return m, nil
		case fieldTools:
			m.tools = !m.tools
			return m, nil
		case fieldPersist:
			m.persist = !m.persist
			return m, nil
		}

	case " ":
		switch m.focus {
		case fieldTools:
			m.tools = !m.tools
			return m, nil
		case fieldPersist:
			m.persist = !m.persist
			return m, nil
		}

	case "enter":
		if m.focus == fieldAPIKey || m.focus == fieldPersist {
			return m.saveKey()
		}
		return m.save()

	case "ctrl+s":
		return m.save()

	case "ctrl+r":
		m.applySelected()
		m.SetStatus("Valores restaurados.", false)
		return m, nil
	}

	if slot := textFields[m.focus]; slot >= 0 {
		var cmd tea.Cmd
		m.inputs[slot], cmd = m.inputs[slot].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) save() (Model, tea.Cmd) {
	cfg, err := m.buildConfig()
	if err != nil {
		m.SetStatus(err.Error(), true)
		return m, nil
	}

	m.SetStatus("Salvando...", false)
	return m, func() tea.Msg {
		return SaveRequestedMsg{Config: cfg}
	}
}

func (m Model) saveKey() (Model, tea.Cmd) {
	key := m.text(fieldAPIKey)
	if key == "" {
		m.SetStatus("Cole sua OPENAI_API_KEY.", true)
		return m, nil
	}

	persist := m.persist
	m.SetStatus("Salvando chave...", false)
	return m, func() tea.Msg {
		return SaveKeyRequestedMsg{Key: key, Persist: persist}
	}
}

// View renders the form.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(styles.PanelTitle().Render("Configuração do agente"))
	sb.WriteString("\n\n")

	for field := 0; field < fieldCount; field++ {
		cursor := "  "
		if field == m.focus {
			cursor = styles.AccentStyle().Render("> ")
		}

		label := styles.MutedStyle().Render(fmt.Sprintf("%-22s", fieldLabels[field]))
		sb.WriteString(cursor + label)

		switch field {
		case fieldAgent:
			sb.WriteString(styles.AccentStyle().Render("< " + m.agentLabel() + " >"))
		case fieldTools:
			sb.WriteString(checkbox(m.tools))
		case fieldPersist:
			sb.WriteString(checkbox(m.persist))
		default:
			if slot := textFields[field]; slot >= 0 {
				sb.WriteString(m.inputs[slot].View())
			}
		}
		sb.WriteString("\n")

		// Blank line between the persona form and the key section.
		if field == fieldSystemPrompt {
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(styles.MutedStyle().Render("Enter/Ctrl+S: salvar · Ctrl+R: restaurar · ←/→: alternar"))
	sb.WriteString("\n")

	if m.status != "" {
		if m.statusErr {
			sb.WriteString(styles.ErrorStyle().Render(m.status))
		} else {
			sb.WriteString(styles.SuccessStyle().Render(m.status))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m Model) agentLabel() string {
	if len(m.agentIDs) == 0 {
		return "carregando..."
	}
	return m.agentIDs[m.agentIdx]
}

func checkbox(checked bool) string {
	if checked {
		return styles.SuccessStyle().Render("[x]")
	}
	return styles.MutedStyle().Render("[ ]")
}
