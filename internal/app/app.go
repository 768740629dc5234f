// Package app wires the session, progress tracker, gateway client and
// every UI component into the bubbletea program.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/manduvi/mentor-tui/internal/components/agentform"
	"github.com/manduvi/mentor-tui/internal/components/chat"
	"github.com/manduvi/mentor-tui/internal/components/health"
	"github.com/manduvi/mentor-tui/internal/components/input"
	"github.com/manduvi/mentor-tui/internal/components/retriever"
	"github.com/manduvi/mentor-tui/internal/components/sidebar"
	"github.com/manduvi/mentor-tui/internal/components/tabs"
	"github.com/manduvi/mentor-tui/internal/components/toast"
	"github.com/manduvi/mentor-tui/internal/config"
	"github.com/manduvi/mentor-tui/internal/progress"
	"github.com/manduvi/mentor-tui/internal/session"
	"github.com/manduvi/mentor-tui/internal/transcript"
	"github.com/manduvi/mentor-tui/sdk/mentor"
)

// Section IDs for the tab bar.
const (
	sectionChat      = "chat"
	sectionProgress  = "progresso"
	sectionRetriever = "acervo"
	sectionConfig    = "config"
	sectionHealth    = "saude"
)

const sidebarWidth = 34

const welcomeText = "Olá! Sou o Mentor Virtual do Instituto Manduvi. " +
	"Posso tirar dúvidas, sugerir exercícios e acompanhar seu progresso.\n\n" +
	"Experimente começar com:\n" +
	"- \"Me explique frações\"\n" +
	"- \"Monte um plano de estudos\"\n" +
	"- \"Quero revisar equações\""

// Model is the root application model.
type Model struct {
	cfg     *config.Config
	client  *mentor.Client
	session *session.Context
	tracker *progress.Tracker

	tabs      tabs.Model
	chat      chat.Model
	input     input.Model
	sidebar   sidebar.Model
	retriever retriever.Model
	form      agentform.Model
	health    health.Model
	toasts    toast.Model

	width  int
	height int
	ready  bool

	// seq tags the in-flight chat request so stale replies are dropped
	// under the race submit policy.
	seq      int
	inFlight bool

	online       bool
	onlineKnown  bool
	agentsLoaded bool
}

// New builds the application model. The welcome message is part of the
// initial transcript so the chat never opens empty.
func New(cfg *config.Config, client *mentor.Client) Model {
	sess := session.New()
	sess.SelectAgent(cfg.AgentID)

	chatModel := chat.New(80, 20)
	chatModel.AppendAssistant(welcomeText, transcript.Meta{})

	return Model{
		cfg:     cfg,
		client:  client,
		session: sess,
		tracker: progress.NewTracker(),
		tabs: tabs.New([]tabs.Tab{
			{ID: sectionChat, Title: "Chat", Icon: "💬"},
			{ID: sectionProgress, Title: "Progresso", Icon: "📈"},
			{ID: sectionRetriever, Title: "Acervo", Icon: "📚"},
			{ID: sectionConfig, Title: "Configuração", Icon: "⚙️"},
			{ID: sectionHealth, Title: "Saúde", Icon: "🩺"},
		}),
		chat:      chatModel,
		input:     input.New(80),
		sidebar:   sidebar.New(sidebarWidth, 20),
		retriever: retriever.New(80),
		form:      agentform.New(80),
		health:    health.New(),
		toasts:    toast.New(),
	}
}

// Init kicks off the startup probe and the first progress fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.input.Init(),
		m.checkHealth(),
		m.fetchProgress(),
		m.loadAgents(),
	)
}

// Session exposes the session context, used by the CLI for logging.
func (m Model) Session() *session.Context {
	return m.session
}
