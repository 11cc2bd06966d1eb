// Package storage persists the current account between CLI invocations.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"surveyor/internal/domain"
	domainerrors "surveyor/internal/errors"
	"surveyor/internal/migrations"
)

const (
	dirPermissions  = 0o700 // Owner-only access for security
	filePermissions = 0o600 // Read/write owner only
	sessionVersion  = "1"
)

// session is the on-disk layout of the session file.
type session struct {
	Version string               `yaml:"version"`
	Account *domain.AccountModel `yaml:"account,omitempty"`
}

// FileStore keeps the current account in a YAML file.
type FileStore struct {
	fs       domain.FileSystemAdapter
	path     string
	migrator migrations.SessionMigrator
	logger   *slog.Logger
}

// NewFileStore creates a file-backed account store, creating its directory.
func NewFileStore(fs domain.FileSystemAdapter, path string, logger *slog.Logger) (*FileStore, error) {
	if err := fs.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return nil, domainerrors.NewConfigurationError(
			"storage.path",
			path,
			"failed to create session directory",
			err,
		)
	}

	return &FileStore{
		fs:       fs,
		path:     path,
		migrator: migrations.NewMigrator(logger),
		logger:   logger,
	}, nil
}

// SaveCurrentAccount writes the account, or removes the session file when
// account is nil.
func (s *FileStore) SaveCurrentAccount(ctx context.Context, account *domain.AccountModel) error {
	if account == nil {
		if err := s.fs.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove session file: %w", err)
		}
		s.logger.DebugContext(ctx, "Session cleared", "path", s.path)
		return nil
	}

	data, err := yaml.Marshal(session{Version: sessionVersion, Account: account})
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if writeErr := s.fs.WriteFile(s.path, data, filePermissions); writeErr != nil {
		return fmt.Errorf("failed to write session file: %w", writeErr)
	}

	// WriteFile keeps the mode of an existing file.
	if chmodErr := s.fs.Chmod(s.path, filePermissions); chmodErr != nil {
		s.logger.WarnContext(ctx, "Failed to restrict session file permissions", "path", s.path, "error", chmodErr)
	}

	s.logger.DebugContext(ctx, "Session saved", "path", s.path, "name", account.Name)
	return nil
}

// LoadCurrentAccount reads the account, returning nil when no session exists.
func (s *FileStore) LoadCurrentAccount(ctx context.Context) (*domain.AccountModel, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.DebugContext(ctx, "Session file does not exist", "path", s.path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	account, migrated, err := s.migrator.Migrate(ctx, data, sessionVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if migrated {
		s.rewriteMigrated(ctx, account)
		return account, nil
	}

	var stored session
	if unmarshalErr := yaml.Unmarshal(data, &stored); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", unmarshalErr)
	}

	return stored.Account, nil
}

// rewriteMigrated stores a migrated session in the current layout. Failures
// only cost a repeated migration on the next load.
func (s *FileStore) rewriteMigrated(ctx context.Context, account *domain.AccountModel) {
	if err := s.SaveCurrentAccount(ctx, account); err != nil {
		s.logger.WarnContext(ctx, "Failed to rewrite migrated session", "path", s.path, "error", err)
		return
	}
	if account == nil {
		return
	}
	if err := s.migrator.FixPermissionsPostMigration(ctx, s.path, s.fs); err != nil {
		s.logger.WarnContext(ctx, "Failed to fix permissions after migration", "path", s.path, "error", err)
	}
}
