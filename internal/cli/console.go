package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"StoreManager/internal/config"
	"StoreManager/internal/console"
	"StoreManager/internal/store"
	"StoreManager/pkg/kit"
)

func newConsoleCmd(configPath *string) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Run the interactive store menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			log, err := kit.NewLogger(serviceName, logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			svc := store.NewService(store.Deps{Log: log})
			seedStore(svc, cfg.Seed, log)

			d := console.New(svc, cmd.InOrStdin(), cmd.OutOrStdout(), log)
			if err := d.Run(cmd.Context()); err != nil {
				log.Error("console stopped", zap.Error(err))
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&logLevel, "log-level", "error", "log level for the session log on stderr")
	return cmd
}
