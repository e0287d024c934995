package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepgraph/internal/api"
)

func newServeCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP JSON endpoint",
		Long: `Serve POST /run-algorithm, GET /healthz and GET /metrics until
interrupted. In-flight requests are drained on SIGINT or SIGTERM.

Examples:
  stepgraph serve
  stepgraph serve --addr 0.0.0.0:9000 --config stepgraph.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			gin.SetMode(a.cfg.Server.GinMode)
			router := api.NewRouter(a.engine, a.cfg.Server, a.logger, a.metrics)

			return api.NewServer(router, a.cfg.Server, a.logger).ListenAndServe(ctx)
		},
	}
	c.Flags().String("addr", "", "Override server.addr")

	return c
}
