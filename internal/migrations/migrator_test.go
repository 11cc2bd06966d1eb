package migrations_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyor/internal/domain"
	"surveyor/internal/migrations"
	"surveyor/internal/mocks"
	"surveyor/internal/testutil"
)

func TestMigrator_Migrate_V0ToV1(t *testing.T) {
	migrator := migrations.NewMigrator(testutil.Logger())

	v0Session := `accessToken: token-abc
name: Jane
`

	account, migrated, err := migrator.Migrate(context.Background(), []byte(v0Session), "1")

	require.NoError(t, err)
	assert.True(t, migrated)
	assert.Equal(t, &domain.AccountModel{AccessToken: "token-abc", Name: "Jane"}, account)
}

func TestMigrator_Migrate_V0WithoutToken(t *testing.T) {
	migrator := migrations.NewMigrator(testutil.Logger())

	account, migrated, err := migrator.Migrate(context.Background(), []byte("name: Jane\n"), "1")

	require.NoError(t, err)
	assert.True(t, migrated)
	assert.Nil(t, account)
}

func TestMigrator_Migrate_CurrentVersion(t *testing.T) {
	migrator := migrations.NewMigrator(testutil.Logger())

	current := `version: "1"
account:
  accessToken: token-abc
  name: Jane
`

	account, migrated, err := migrator.Migrate(context.Background(), []byte(current), "1")

	require.NoError(t, err)
	assert.False(t, migrated)
	assert.Nil(t, account)
}

func TestMigrator_Migrate_UnsupportedVersion(t *testing.T) {
	migrator := migrations.NewMigrator(testutil.Logger())

	_, migrated, err := migrator.Migrate(context.Background(), []byte(`version: "7"`), "1")

	require.Error(t, err)
	assert.False(t, migrated)
	assert.Contains(t, err.Error(), "unsupported session version: 7")
}

func TestMigrator_Migrate_InvalidYAML(t *testing.T) {
	migrator := migrations.NewMigrator(testutil.Logger())

	_, _, err := migrator.Migrate(context.Background(), []byte("version: [unclosed"), "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to detect session version")
}

func TestMigrator_FixPermissionsPostMigration_Success(t *testing.T) {
	fs := mocks.NewMockFileSystemAdapter(t)
	fs.On("Chmod", "/home/jane/.config/surveyor/session.yaml", os.FileMode(0o600)).Return(nil)
	fs.On("Chmod", "/home/jane/.config/surveyor", os.FileMode(0o700)).Return(nil)

	migrator := migrations.NewMigrator(testutil.Logger())

	err := migrator.FixPermissionsPostMigration(context.Background(), "/home/jane/.config/surveyor/session.yaml", fs)

	require.NoError(t, err)
}

func TestMigrator_FixPermissionsPostMigration_ChmodError(t *testing.T) {
	fs := mocks.NewMockFileSystemAdapter(t)
	fs.On("Chmod", "/home/jane/.config/surveyor/session.yaml", os.FileMode(0o600)).Return(errors.New("operation not permitted"))

	migrator := migrations.NewMigrator(testutil.Logger())

	err := migrator.FixPermissionsPostMigration(context.Background(), "/home/jane/.config/surveyor/session.yaml", fs)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fix session file permissions")
}
