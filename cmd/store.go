package cmd

import (
	"fmt"
	"log/slog"

	"portfolio-api/config"
	"portfolio-api/database"
	"portfolio-api/internal/infra/storage"
	"portfolio-api/internal/mirror"
	"portfolio-api/internal/store"
)

// openStore builds the content store from the loaded configuration. The
// returned mirror is nil when I18N_DIR is unset.
func openStore() (*store.Store, *mirror.Mirror, error) {
	var backend storage.Backend
	switch config.STORAGE_DRIVER {
	case "file":
		fb := storage.NewFileBackend(config.DATA_DIR)
		backend = fb
		slog.Info("using file storage", "dir", fb.Dir())
	case "postgres":
		db, err := database.Open(config.DB_URL)
		if err != nil {
			return nil, nil, fmt.Errorf("database: %w", err)
		}
		backend = storage.NewGormBackend(db)
		slog.Info("using postgres storage")
	default:
		return nil, nil, fmt.Errorf("unknown STORAGE_DRIVER %q", config.STORAGE_DRIVER)
	}

	if config.I18N_DIR == "" {
		slog.Warn("I18N_DIR not set, frontend dictionaries will not be updated")
		return store.New(backend), nil, nil
	}
	m := mirror.New(storage.NewFileBackend(config.I18N_DIR))
	return store.New(backend, store.WithProjector(m)), m, nil
}
