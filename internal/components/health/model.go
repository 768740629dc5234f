// Package health renders the Saúde panel: server, embeddings and index
// probes, refreshed every time the section activates.
package health

import (
	"strings"

	"github.com/manduvi/mentor-tui/internal/messages"
	"github.com/manduvi/mentor-tui/internal/styles"
)

// Model is the Saúde panel.
type Model struct {
	report  messages.HealthReportMsg
	probing bool
}

// New creates the panel.
func New() Model {
	return Model{}
}

// StartProbe marks the panel as refreshing.
func (m *Model) StartProbe() {
	m.probing = true
}

// SetReport applies probe results.
func (m *Model) SetReport(report messages.HealthReportMsg) {
	m.report = report
	m.probing = false
}

// View renders the panel.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(styles.PanelTitle().Render("Saúde do sistema"))
	sb.WriteString("\n\n")

	if m.probing {
		sb.WriteString(styles.MutedStyle().Render("Verificando..."))
		return sb.String()
	}

	sb.WriteString("Servidor:    " + serverStatus(m.report.Server) + "\n")
	sb.WriteString("Embeddings:  " + probeStatus(m.report.Embeddings, "✅ Funcionando") + "\n")
	sb.WriteString("Índice RAG:  " + indexStatus(m.report.Index) + "\n")

	return sb.String()
}

func serverStatus(status messages.ProbeStatus) string {
	switch status {
	case messages.ProbeOK:
		return styles.SuccessStyle().Render("✅ Online")
	case messages.ProbeFailed:
		return styles.ErrorStyle().Render("❌ Offline")
	default:
		return styles.MutedStyle().Render("...")
	}
}

func probeStatus(status messages.ProbeStatus, okText string) string {
	switch status {
	case messages.ProbeOK:
		return styles.SuccessStyle().Render(okText)
	case messages.ProbeFailed:
		return styles.ErrorStyle().Render("❌ Erro")
	default:
		return styles.MutedStyle().Render("...")
	}
}

func indexStatus(status messages.ProbeStatus) string {
	switch status {
	case messages.ProbeOK:
		return styles.SuccessStyle().Render("✅ Indexado")
	case messages.ProbeEmpty:
		return styles.WarningStyle().Render("⚠️ Vazio")
	case messages.ProbeFailed:
		return styles.ErrorStyle().Render("❌ Erro")
	default:
		return styles.MutedStyle().Render("...")
	}
}
