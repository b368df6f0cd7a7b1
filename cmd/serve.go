package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/edupulse/channel-insights/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis API",
	Long: `Serve exposes the analysis pipeline over HTTP: a health endpoint, the
batch analyze endpoint, and a per-request status endpoint.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&cfgPortOverride, "port", 0, "Listen port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

var cfgPortOverride int

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfgPortOverride != 0 {
		cfg.Server.Port = cfgPortOverride
	}

	a, cleanup, err := buildAnalyzer(ctx, cfg, 0)
	if err != nil {
		return err
	}
	defer cleanup()

	s := server.NewServer(cfg, a)
	return s.Run(ctx)
}
