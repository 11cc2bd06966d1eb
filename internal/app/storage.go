package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"surveyor/internal/adapters/storage"
	"surveyor/internal/config"
	"surveyor/internal/domain"
	"surveyor/internal/errors"
)

// newAccountStore opens the session store selected by cfg.Driver. The returned
// close function is never nil.
func newAccountStore(
	ctx context.Context,
	cfg config.StorageConfig,
	provider domain.ConfigProvider,
	fs domain.FileSystemAdapter,
	logger *slog.Logger,
) (domain.AccountStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.StorageSQLite:
		path := cfg.Path
		if path == "" {
			var err error
			if path, err = provider.GetDatabasePath(); err != nil {
				return nil, noop, fmt.Errorf("failed to resolve database path: %w", err)
			}
		}
		dir := filepath.Dir(path)
		if err := fs.MkdirAll(dir, 0o700); err != nil {
			return nil, noop, errors.NewConfigurationError("storage.path", dir, "failed to create database directory", err)
		}

		db, err := storage.ConnectSQLite(path)
		if err != nil {
			return nil, noop, errors.NewConfigurationError("storage.path", path, "failed to open session database", err)
		}
		store, err := storage.NewSQLiteStore(ctx, db, logger)
		if err != nil {
			_ = db.Close()
			return nil, noop, errors.NewConfigurationError("storage.path", path, "failed to prepare session database", err)
		}
		return store, store.Close, nil

	case config.StorageFile, "":
		path := cfg.Path
		if path == "" {
			var err error
			if path, err = provider.GetSessionPath(); err != nil {
				return nil, noop, fmt.Errorf("failed to resolve session path: %w", err)
			}
		}
		store, err := storage.NewFileStore(fs, path, logger)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	default:
		return nil, noop, errors.NewConfigurationError("storage.driver", cfg.Driver, "unsupported storage driver", nil)
	}
}
