package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/manduvi/mentor-tui/internal/messages"
	"github.com/manduvi/mentor-tui/sdk/mentor"
)

func (m Model) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.cfg.RequestTimeout)
}

// sendChat posts one user message. The seq travels with the reply so
// the update loop can drop answers to superseded requests.
func (m Model) sendChat(seq int, message string) tea.Cmd {
	req := &mentor.ChatRequest{
		Message:   message,
		SessionID: m.session.ID(),
		AgentID:   m.session.AgentID(),
	}
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()

		resp, err := m.client.Chat(ctx, req)
		if err != nil {
			return messages.ChatFailedMsg{Seq: seq, Err: err}
		}
		return messages.ChatReplyMsg{Seq: seq, Reply: resp}
	}
}

func (m Model) fetchProgress() tea.Cmd {
	sessionID, agentID := m.session.ID(), m.session.AgentID()
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()

		snap, err := m.client.Progress(ctx, sessionID, agentID)
		if err != nil {
			return messages.ProgressFailedMsg{Err: err}
		}
		return messages.ProgressMsg{Snapshot: snap}
	}
}

func (m Model) loadAgents() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()

		agents, err := m.client.Agents(ctx)
		if err != nil {
			return messages.AgentsFailedMsg{Err: err}
		}
		return messages.AgentsLoadedMsg{Agents: agents}
	}
}

func (m Model) saveAgentConfig(cfg mentor.AgentConfig) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()

		if err := m.client.SaveAgentConfig(ctx, &cfg); err != nil {
			return messages.ConfigSaveFailedMsg{Err: err}
		}
		return messages.ConfigSavedMsg{}
	}
}

func (m Model) saveAPIKey(key string, persist bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()

		if err := m.client.SaveAPIKey(ctx, key, persist); err != nil {
			return messages.APIKeyFailedMsg{Err: err}
		}
		return messages.APIKeySavedMsg{Persisted: persist}
	}
}

func (m Model) searchRetriever(query string, k int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()

		resp, err := m.client.SearchRetriever(ctx, query, k)
		if err != nil {
			return messages.RetrieverFailedMsg{Err: err}
		}
		return messages.RetrieverMsg{Result: resp}
	}
}

// checkHealth is the startup probe behind the status bar indicator.
func (m Model) checkHealth() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()

		err := m.client.Health(ctx)
		return messages.HealthCheckMsg{Healthy: err == nil, Err: err}
	}
}

// probeHealth runs the three probes of the health section. The
// embeddings and index probes reuse the retriever debug endpoint: a
// reachable retriever with hits means both are serving, an empty
// result for a known-good query means the ingestion has not run.
func (m Model) probeHealth() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()

		report := messages.HealthReportMsg{
			Server:     messages.ProbeFailed,
			Embeddings: messages.ProbeFailed,
			Index:      messages.ProbeFailed,
		}

		if err := m.client.Health(ctx); err != nil {
			return report
		}
		report.Server = messages.ProbeOK

		resp, err := m.client.SearchRetriever(ctx, "saúde", 1)
		if err != nil {
			return report
		}
		report.Embeddings = messages.ProbeOK
		if len(resp.Hits) > 0 {
			report.Index = messages.ProbeOK
		} else {
			report.Index = messages.ProbeEmpty
		}
		return report
	}
}
