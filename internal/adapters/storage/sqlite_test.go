package storage

import (
	"context"
	"testing"

	"surveyor/internal/domain"
	"surveyor/internal/testutil"
)

func setupTestSQLiteStore(t *testing.T) (*SQLiteStore, func()) {
	testDB, err := ConnectSQLite(":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	store, err := NewSQLiteStore(context.Background(), testDB, testutil.Logger())
	if err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}

	cleanup := func() {
		_ = store.Close()
	}

	return store, cleanup
}

func TestSQLiteStore_EmptyLoadsNil(t *testing.T) {
	store, cleanup := setupTestSQLiteStore(t)
	defer cleanup()

	account, err := store.LoadCurrentAccount(context.Background())
	if err != nil {
		t.Fatalf("unexpected error loading account: %v", err)
	}
	if account != nil {
		t.Errorf("expected no account, got %+v", account)
	}
}

func TestSQLiteStore_SaveAndOverwrite(t *testing.T) {
	store, cleanup := setupTestSQLiteStore(t)
	defer cleanup()
	ctx := context.Background()

	first := testutil.MockAccountModel()
	if err := store.SaveCurrentAccount(ctx, &first); err != nil {
		t.Fatalf("unexpected error saving account: %v", err)
	}

	second := domain.AccountModel{AccessToken: "rotated-token", Name: first.Name}
	if err := store.SaveCurrentAccount(ctx, &second); err != nil {
		t.Fatalf("unexpected error overwriting account: %v", err)
	}

	loaded, err := store.LoadCurrentAccount(ctx)
	if err != nil {
		t.Fatalf("unexpected error loading account: %v", err)
	}
	if loaded == nil || *loaded != second {
		t.Errorf("expected %+v, got %+v", second, loaded)
	}

	var rows int
	if err := store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM current_account`).Scan(&rows); err != nil {
		t.Fatalf("unexpected error counting rows: %v", err)
	}
	if rows != 1 {
		t.Errorf("expected a single session row, got %d", rows)
	}
}

func TestSQLiteStore_SaveNilClears(t *testing.T) {
	store, cleanup := setupTestSQLiteStore(t)
	defer cleanup()
	ctx := context.Background()

	account := testutil.MockAccountModel()
	if err := store.SaveCurrentAccount(ctx, &account); err != nil {
		t.Fatalf("unexpected error saving account: %v", err)
	}
	if err := store.SaveCurrentAccount(ctx, nil); err != nil {
		t.Fatalf("unexpected error clearing account: %v", err)
	}

	loaded, err := store.LoadCurrentAccount(ctx)
	if err != nil {
		t.Fatalf("unexpected error loading account: %v", err)
	}
	if loaded != nil {
		t.Errorf("expected cleared session, got %+v", loaded)
	}
}

func TestSQLiteStore_SchemaIsIdempotent(t *testing.T) {
	store, cleanup := setupTestSQLiteStore(t)
	defer cleanup()

	if _, err := NewSQLiteStore(context.Background(), store.db, testutil.Logger()); err != nil {
		t.Fatalf("expected re-initialization to succeed, got: %v", err)
	}
}
