package database

import (
	"fmt"
	"log/slog"

	"portfolio-api/internal/infra/storage"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to postgres and migrates the documents table used by the
// postgres storage driver.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(&storage.Document{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	slog.Info("connected to database and migrated documents table")
	return db, nil
}
