// Command migrate applies the database schema for all persistence models.
// It connects with the same configuration the server uses.
package main

import (
	"log/slog"
	"os"

	"palengke/config"
	"palengke/internal/infra/persistence/postgres"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.New()
	if err != nil {
		logger.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	if cfg.Postgres == nil {
		logger.Error("Postgres config is required")
		os.Exit(1)
	}

	db, err := gorm.Open(gormpostgres.Open(cfg.Postgres.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Migration completed")
}
