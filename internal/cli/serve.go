package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/existflow/ironplan/internal/logger"
	"github.com/existflow/ironplan/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the planning feed over HTTP",
	Long: `Run the JSON feed server in-process over the configured dataset.

Examples:
  ironplan serve
  ironplan serve --addr :9090 --source-driver yaml --source-dsn team.yaml`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(catalog, server.Options{Widget: cfg.Widget})

	logger.Info("Server listening", logger.F("addr", serveAddr))
	fmt.Fprintf(cmd.OutOrStdout(), "IronPlan server listening on %s\n", serveAddr)
	return srv.Run(ctx, serveAddr)
}
