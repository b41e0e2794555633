package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lorem/pkg/config"
	"github.com/dmitrymomot/lorem/pkg/demo"
	"github.com/dmitrymomot/lorem/pkg/logger"
)

func serveCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve placeholders over HTTP (configured through APP_ENV, LOREM_* and HTTP_*)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg demo.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			log := logger.New(
				logger.WithEnvironment(cfg.Env, "lorem"),
				logger.WithContextValue("request_id", middleware.RequestIDKey),
			)
			logger.SetAsDefault(log)

			app, err := demo.New(cfg, demo.WithLogger(log))
			if err != nil {
				log.Error("invalid configuration", logger.Error(err))
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	return cmd
}
