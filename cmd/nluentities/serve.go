package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/nluentities/config"
	"github.com/c360studio/nluentities/parser"
	"github.com/c360studio/nluentities/service"
)

func serveCmd(configPath, logLevel *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the extraction service",
		Long: `Serve answers parse requests over NATS request/reply and exposes
Prometheus metrics over HTTP. It runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath, *logLevel)
			if err != nil {
				return err
			}
			logger := config.NewLogger(cfg.Log, os.Stderr)

			svc, err := service.New(cfg,
				service.WithLogger(logger),
				service.WithParser(parser.New(parser.WithLogger(logger))))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return svc.Run(ctx)
		},
	}
	return cmd
}
