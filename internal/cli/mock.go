package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/manduvi/mentor-tui/internal/config"
	"github.com/manduvi/mentor-tui/internal/mock"
)

var flagMockPort int

func newMockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Sobe um backend local de demonstração",
		Long: "Sobe um backend em memória com respostas de exemplo, para usar o\n" +
			"cliente sem o backend real. Aponte o cliente para ele com\n" +
			"MENTOR_BACKEND_URL=http://localhost:<porta>.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flagConfig)
			if err != nil {
				return err
			}

			port := cfg.MockPort
			if flagMockPort != 0 {
				port = flagMockPort
			}

			color.Green("✔ Backend de demonstração em http://localhost:%d", port)
			color.Cyan("  Ctrl+C para encerrar.")

			if err := mock.NewServer().ListenAndServe(port); err != nil {
				color.Red("✖ Servidor encerrado: %v", err)
				return fmt.Errorf("servidor de demonstração: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&flagMockPort, "port", "p", 0, "porta do servidor (padrão: configuração)")
	return cmd
}
