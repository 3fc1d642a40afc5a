package main

import (
	"fmt"

	infradb "github.com/Isha-commits965/wellness-tracker-backend/internal/infrastructure/db"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// listOnly prints the embedded migrations without touching the database
var listOnly bool

func init() {
	migrateCmd.Flags().BoolVar(&listOnly, "list", false, "list embedded migrations and exit")
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long: `Apply every embedded schema migration not yet recorded in schema_migrations.

Examples:
  # Apply pending migrations
  wellness migrate

  # Show the migrations bundled into this binary
  wellness migrate --list`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	if listOnly {
		migrations, err := infradb.Migrations()
		if err != nil {
			return err
		}
		for _, m := range migrations {
			fmt.Fprintln(cmd.OutOrStdout(), m.Version)
		}
		return nil
	}

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer syncLogger(log)

	pool, err := infradb.NewPostgresPool(cmd.Context(), &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	if err := infradb.Migrate(cmd.Context(), pool, log); err != nil {
		return err
	}
	log.Info("Database is up to date", zap.String("database", cfg.Database.Database))
	return nil
}
