package main

import (
	"fmt"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/app"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, the gRPC health endpoint and the digest scheduler",
	Long: `Run the wellness tracker until SIGINT or SIGTERM.

Examples:
  # Run with the default config
  wellness serve

  # Run with a custom config
  wellness serve --config /etc/wellness/prod.yaml`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer syncLogger(log)

	application, err := app.New(cmd.Context(), cfg, log)
	if err != nil {
		log.Error("Failed to initialize application", zap.Error(err))
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := application.Run(); err != nil {
		log.Error("Application error", zap.Error(err))
		return err
	}
	return nil
}
