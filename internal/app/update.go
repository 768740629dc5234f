package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/manduvi/mentor-tui/internal/components/agentform"
	"github.com/manduvi/mentor-tui/internal/components/retriever"
	"github.com/manduvi/mentor-tui/internal/components/toast"
	"github.com/manduvi/mentor-tui/internal/config"
	"github.com/manduvi/mentor-tui/internal/messages"
	"github.com/manduvi/mentor-tui/internal/transcript"
	"github.com/manduvi/mentor-tui/sdk/mentor"
)

// failureText is the reply bubble shown for any failed chat request,
// regardless of the failure kind.
const failureText = "Erro ao conectar com o servidor."

// Update handles all application messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "tab":
			return m.activateSection(m.tabs.Next())

		case "shift+tab":
			return m.activateSection(m.tabs.Prev())
		}

		return m.updateSection(msg)

	case messages.ChatReplyMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.inFlight = false
		m.chat.ClearTyping()

		meta := transcript.Meta{
			Sources:   msg.Reply.Sources,
			XPAwarded: msg.Reply.XPAwarded,
		}
		if msg.Reply.NextTask != nil {
			meta.NextTask = *msg.Reply.NextTask
		}
		m.chat.AppendAssistant(msg.Reply.Reply, meta)

		if snap := msg.Reply.Snapshot(); snap != nil {
			view, leveled := m.tracker.Advance(snap)
			m.sidebar.SetView(view)
			if leveled {
				cmds = append(cmds, m.toasts.Add(
					fmt.Sprintf("🎉 Subiu de nível: %s!", view.Level.Label),
					toast.Success, toast.DefaultDuration,
				))
			}
		}
		cmds = append(cmds, m.input.Focus())
		return m, tea.Batch(cmds...)

	case messages.ChatFailedMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.inFlight = false
		m.chat.ClearTyping()
		m.chat.AppendAssistant(failureText, transcript.Meta{})
		return m, m.input.Focus()

	case messages.ProgressMsg:
		view, leveled := m.tracker.Advance(msg.Snapshot)
		m.sidebar.SetView(view)
		if leveled {
			return m, m.toasts.Add(
				fmt.Sprintf("🎉 Subiu de nível: %s!", view.Level.Label),
				toast.Success, toast.DefaultDuration,
			)
		}
		return m, nil

	case messages.ProgressFailedMsg:
		// The sidebar keeps its last view; nothing to surface.
		return m, nil

	case messages.AgentsLoadedMsg:
		m.agentsLoaded = true
		m.form.SetAgents(msg.Agents)
		return m, nil

	case messages.AgentsFailedMsg:
		m.form.SetStatus("Erro ao carregar agentes: "+errorDetail(msg.Err), true)
		return m, nil

	case messages.ConfigSavedMsg:
		m.form.SetStatus("Configuração salva.", false)
		return m, m.toasts.Add("Configuração salva.", toast.Success, toast.DefaultDuration)

	case messages.ConfigSaveFailedMsg:
		m.form.SetStatus("Erro ao salvar configuração: "+errorDetail(msg.Err), true)
		return m, nil

	case messages.APIKeySavedMsg:
		status := "Chave salva."
		if msg.Persisted {
			status = "Chave salva e persistida no .env."
		}
		m.form.SetStatus(status, false)
		return m, nil

	case messages.APIKeyFailedMsg:
		m.form.SetStatus("Erro ao salvar a chave: "+errorDetail(msg.Err), true)
		return m, nil

	case messages.RetrieverMsg:
		m.retriever.SetResults(msg.Result.Hits)
		return m, nil

	case messages.RetrieverFailedMsg:
		m.retriever.SetError()
		return m, nil

	case messages.HealthReportMsg:
		m.health.SetReport(msg)
		m.online = msg.Server == messages.ProbeOK
		m.onlineKnown = true
		return m, nil

	case messages.HealthCheckMsg:
		m.online = msg.Healthy
		m.onlineKnown = true
		return m, nil

	case retriever.SearchRequestedMsg:
		return m, m.searchRetriever(msg.Query, msg.K)

	case agentform.SaveRequestedMsg:
		m.session.SelectAgent(msg.Config.AgentID)
		return m, m.saveAgentConfig(msg.Config)

	case agentform.SaveKeyRequestedMsg:
		return m, m.saveAPIKey(msg.Key, msg.Persist)

	case agentform.ReloadRequestedMsg:
		return m, m.loadAgents()
	}

	// Everything else (spinner ticks, toast expiry, blink) flows to the
	// components that animate.
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	cmds = append(cmds, cmd)

	m.toasts, cmd = m.toasts.Update(msg)
	cmds = append(cmds, cmd)

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.retriever, cmd = m.retriever.Update(msg)
	cmds = append(cmds, cmd)

	m.form, cmd = m.form.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// errorDetail picks the panel text for a failed request: the backend
// detail when present, else the status code, else the raw error.
func errorDetail(err error) string {
	var apiErr *mentor.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		if apiErr.StatusCode != 0 {
			return fmt.Sprintf("HTTP %d", apiErr.StatusCode)
		}
	}
	if err == nil {
		return "erro desconhecido"
	}
	return err.Error()
}

// updateSection routes a key press to the active section.
func (m Model) updateSection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.tabs.ActiveID() {
	case sectionChat:
		switch msg.String() {
		case "enter":
			return m.submit()
		case "pgup":
			m.chat.PageUp()
			return m, nil
		case "pgdown":
			m.chat.PageDown()
			return m, nil
		case "ctrl+up":
			m.chat.ScrollUp()
			return m, nil
		case "ctrl+down":
			m.chat.ScrollDown()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case sectionRetriever:
		var cmd tea.Cmd
		m.retriever, cmd = m.retriever.Update(msg)
		return m, cmd

	case sectionConfig:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd

	case sectionHealth:
		if msg.String() == "r" {
			m.health.StartProbe()
			return m, m.probeHealth()
		}
	}
	return m, nil
}

// submit sends the current input line through the gateway.
//
// Under the block policy a second enter while a request is in flight is
// ignored. Under the race policy it fires a new request and the seq tag
// makes the last submission win.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	if text == "" {
		return m, nil
	}
	if m.inFlight {
		if m.cfg.SubmitPolicy == config.SubmitBlock {
			return m, nil
		}
		// The pending cycle is superseded; its reply will be dropped,
		// so its placeholder has to go now or nothing ever removes it.
		m.chat.ClearTyping()
	}

	m.seq++
	m.inFlight = true
	m.chat.AppendUser(text)
	typingCmd := m.chat.ShowTyping()
	m.input.Clear()

	return m, tea.Batch(typingCmd, m.sendChat(m.seq, text))
}

// activateSection switches the visible section and runs its refresh.
func (m Model) activateSection(id string) (tea.Model, tea.Cmd) {
	switch id {
	case sectionChat:
		// Reapply the cached view; a stale sidebar after a tab round
		// trip is worse than a redundant render.
		if view, ok := m.tracker.Last(); ok {
			m.sidebar.SetView(view)
		}
		return m, tea.Batch(m.input.Focus(), m.fetchProgress())

	case sectionProgress:
		if view, ok := m.tracker.Last(); ok {
			m.sidebar.SetView(view)
		}
		return m, m.fetchProgress()

	case sectionRetriever:
		return m, m.retriever.Focus()

	case sectionConfig:
		cmds := []tea.Cmd{m.form.Focus()}
		if !m.agentsLoaded {
			cmds = append(cmds, m.loadAgents())
		}
		return m, tea.Batch(cmds...)

	case sectionHealth:
		m.health.StartProbe()
		return m, m.probeHealth()
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.ready = true

	// Header (1), tabs (2), input (3), status bar (1), padding.
	bodyHeight := height - 9
	if bodyHeight < 5 {
		bodyHeight = 5
	}

	chatWidth := width - sidebarWidth - 2
	if chatWidth < 20 {
		chatWidth = width
	}

	m.chat.SetSize(chatWidth, bodyHeight)
	m.sidebar.SetSize(sidebarWidth, bodyHeight)
	m.input.SetWidth(width)
	m.tabs.SetWidth(width)
	m.retriever.SetWidth(width)
	m.form.SetWidth(width)
	m.toasts.SetWidth(width)
}
