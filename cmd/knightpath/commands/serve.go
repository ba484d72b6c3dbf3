package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knightpath/internal/server"
)

func serveCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve knight queries over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Server
			if cmd.Flags().Changed("addr") {
				cfg.Address = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			handler := server.NewRouter(a.svc, a.logger, a.metrics).Setup()
			return server.Run(ctx, cfg, handler, a.logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.address)")

	return cmd
}
