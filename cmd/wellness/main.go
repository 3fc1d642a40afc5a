// Package main implements the wellness tracker server and its maintenance commands.
package main

import (
	"fmt"
	"os"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/app"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/config"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// configPath overrides CONFIG_PATH when set
	configPath string
	version    = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wellness",
	Short: "Wellness tracker backend",
	Long: `wellness serves the habit, mood, journal and goal tracking API
together with its streak and trend analytics.

Running it without a subcommand is the same as "wellness serve".`,
	Version:      version,
	SilenceUsage:  true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the YAML config (defaults to $CONFIG_PATH or ./config/base.yaml)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(eventsCmd)
}

// loadConfig reads the config and builds the process logger from it
func loadConfig() (*config.Config, *zap.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := app.NewLogger(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, log, nil
}

func syncLogger(log *zap.Logger) {
	_ = logger.Sync(log)
}
