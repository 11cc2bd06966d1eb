package migrations

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"surveyor/internal/domain"
)

// SessionMigrator handles session file migrations between versions.
type SessionMigrator interface {
	Migrate(ctx context.Context, data []byte, currentVersion string) (*domain.AccountModel, bool, error)
	FixPermissionsPostMigration(ctx context.Context, sessionPath string, fs domain.FileSystemAdapter) error
}

// Migrator implements session migration logic.
type Migrator struct {
	logger *slog.Logger
}

// NewMigrator creates a new session migrator.
func NewMigrator(logger *slog.Logger) *Migrator {
	return &Migrator{
		logger: logger,
	}
}

// Migrate attempts to migrate session data to the current version.
// Returns: account, wasMigrated, error. When the data is already current it
// returns (nil, false, nil) and the caller decodes it itself.
func (m *Migrator) Migrate(
	ctx context.Context,
	data []byte,
	currentVersion string,
) (*domain.AccountModel, bool, error) {
	version, err := m.detectVersion(data)
	if err != nil {
		return nil, false, fmt.Errorf("failed to detect session version: %w", err)
	}

	m.logger.DebugContext(ctx, "Detected session version", "version", version, "current", currentVersion)

	if version == currentVersion {
		return nil, false, nil
	}

	switch version {
	case "0":
		account, migrateErr := migrateFromV0(data)
		if migrateErr != nil {
			return nil, false, fmt.Errorf("failed to migrate from v0: %w", migrateErr)
		}
		m.logger.InfoContext(ctx, "Migrated unversioned session", "hasAccount", account != nil)
		return account, true, nil
	default:
		return nil, false, fmt.Errorf("unsupported session version: %s", version)
	}
}

// detectVersion reads the version key. A missing key means version 0.
func (m *Migrator) detectVersion(data []byte) (string, error) {
	var versionCheck struct {
		Version string `yaml:"version"`
	}

	if err := yaml.Unmarshal(data, &versionCheck); err != nil {
		return "", err
	}

	if versionCheck.Version == "" {
		return "0", nil
	}

	return versionCheck.Version, nil
}

// FixPermissionsPostMigration restricts the session file and its directory
// to the owner. Unversioned sessions were written with default permissions.
func (m *Migrator) FixPermissionsPostMigration(
	ctx context.Context,
	sessionPath string,
	fs domain.FileSystemAdapter,
) error {
	const (
		dirPermissions  = 0o700
		filePermissions = 0o600
	)

	if err := fs.Chmod(sessionPath, filePermissions); err != nil {
		m.logger.WarnContext(ctx, "Failed to fix session file permissions",
			"path", sessionPath, "error", err)
		return fmt.Errorf("failed to fix session file permissions: %w", err)
	}

	sessionDir := filepath.Dir(sessionPath)
	if err := fs.Chmod(sessionDir, dirPermissions); err != nil {
		m.logger.WarnContext(ctx, "Failed to fix session directory permissions",
			"path", sessionDir, "error", err)
		return fmt.Errorf("failed to fix session directory permissions: %w", err)
	}

	m.logger.InfoContext(ctx, "Fixed file and directory permissions post-migration",
		"session_file", sessionPath, "session_dir", sessionDir)
	return nil
}
