package cli

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"StoreManager/internal/auth"
	"StoreManager/internal/config"
	"StoreManager/internal/store"
	"StoreManager/pkg/kit"
)

func newServeCmd(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the store over HTTP/JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTPAddr = addr
			}
			if err := cfg.ValidateServe(); err != nil {
				return err
			}

			log, err := kit.NewLogger(serviceName, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			h, err := newServeHandler(cfg, log)
			if err != nil {
				return err
			}

			if err := kit.RunHTTPServer(cmd.Context(), cfg.HTTPAddr, h, log); err != nil {
				log.Error("http server stopped", zap.Error(err))
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	return cmd
}

func newServeHandler(cfg config.Config, log *zap.Logger) (http.Handler, error) {
	reg := prometheus.NewRegistry()

	svc := store.NewService(store.Deps{Log: log, Metrics: store.NewMetrics(reg)})
	seedStore(svc, cfg.Seed, log)

	users := auth.NewStore()
	if _, err := auth.SeedOperator(users, cfg.OperatorUser, cfg.OperatorPassword); err != nil {
		return nil, err
	}

	return store.NewHandler(&store.Server{Service: svc, Log: log}, store.HTTPDeps{
		Log:      log,
		Service:  serviceName,
		Registry: reg,
		Auth: &auth.Server{
			Log:      log,
			Store:    users,
			JWT:      auth.NewTokenMaker(cfg.JWTSecret),
			TokenTTL: cfg.TokenTTL,
		},
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
		CORSOrigins:    cfg.CORSOrigins,
	}), nil
}
