package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"surveyor/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS current_account (
	id           INTEGER PRIMARY KEY CHECK (id = 1),
	access_token TEXT NOT NULL,
	name         TEXT NOT NULL,
	saved_at     TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
);`

// ConnectSQLite opens a sqlite database at path. Use ":memory:" for tests.
// The pool is limited to one connection: the store only ever touches one row
// and an in-memory database is private to its connection.
func ConnectSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(500)", path))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// SQLiteStore keeps the current account in a single-row sqlite table.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore creates the schema if needed and returns the store.
func NewSQLiteStore(ctx context.Context, db *sql.DB, logger *slog.Logger) (*SQLiteStore, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to initialize session schema: %w", err)
	}
	return &SQLiteStore{db: db, logger: logger}, nil
}

// SaveCurrentAccount upserts the account row, or deletes it when account is nil.
func (s *SQLiteStore) SaveCurrentAccount(ctx context.Context, account *domain.AccountModel) error {
	if account == nil {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM current_account WHERE id = 1`); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		s.logger.DebugContext(ctx, "Session cleared")
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO current_account (id, access_token, name) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			access_token = excluded.access_token,
			name = excluded.name,
			saved_at = excluded.saved_at`,
		account.AccessToken, account.Name)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.DebugContext(ctx, "Session saved", "name", account.Name)
	return nil
}

// LoadCurrentAccount returns the stored account, or nil when none is stored.
func (s *SQLiteStore) LoadCurrentAccount(ctx context.Context) (*domain.AccountModel, error) {
	var account domain.AccountModel
	err := s.db.QueryRowContext(ctx,
		`SELECT access_token, name FROM current_account WHERE id = 1`,
	).Scan(&account.AccessToken, &account.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &account, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
