// Package cli defines the mentor command tree.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/manduvi/mentor-tui/internal/app"
	"github.com/manduvi/mentor-tui/internal/config"
	"github.com/manduvi/mentor-tui/internal/styles"
	"github.com/manduvi/mentor-tui/sdk/mentor"
)

// Version is stamped at build time.
var Version = "dev"

var (
	flagConfig  string
	flagBackend string
	flagAgent   string
)

// NewRootCmd builds the mentor command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mentor",
		Short: "Cliente de terminal do Mentor Virtual Manduvi",
		Long: "mentor é o cliente de terminal do Mentor Virtual do Instituto Manduvi:\n" +
			"converse com o tutor, acompanhe seu XP e nível, pesquise o acervo e\n" +
			"configure os agentes do backend.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	root.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "caminho do arquivo de configuração")
	root.Flags().StringVar(&flagBackend, "backend", "", "URL do backend (sobrepõe a configuração)")
	root.Flags().StringVar(&flagAgent, "agent", "", "agente inicial (sobrepõe a configuração)")

	root.AddCommand(newMockCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func runTUI() error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagBackend != "" {
		cfg.BackendURL = flagBackend
	}
	if flagAgent != "" {
		cfg.AgentID = flagAgent
	}
	styles.SetTheme(cfg.Theme)

	client := mentor.NewClient(cfg.BackendURL,
		mentor.WithTimeout(cfg.RequestTimeout),
	)

	model := app.New(cfg, client)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("erro ao executar a interface: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Mostra a versão do cliente",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mentor %s\n", Version)
		},
	}
}
