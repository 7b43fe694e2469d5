package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/threeonelabs/storebuilder/internal/gateway"
)

func newServeCmd() *cobra.Command {
	var (
		port int
		bind string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the storebuilder gateway server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if port != 0 {
				cfg.Gateway.Port = port
			}
			if bind != "" {
				cfg.Gateway.Bind = bind
			}

			if err := paths.EnsureDirs(); err != nil {
				return err
			}

			agents, closeStore, err := openAgentStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			opts := []gateway.ServerOption{}
			if enricher, timeout := buildEnricher(cfg); enricher != nil {
				opts = append(opts, gateway.WithEnricher(enricher, timeout))
			}

			srv := gateway.New(cfg, agents, log, opts...)

			// Block until SIGINT/SIGTERM
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return srv.Start(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "override gateway port")
	cmd.Flags().StringVar(&bind, "bind", "", "override bind mode (loopback, lan)")

	return cmd
}
