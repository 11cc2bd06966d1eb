package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"surveyor/internal/adapters/filesystem"
	"surveyor/internal/adapters/storage"
	"surveyor/internal/domain"
	domainerrors "surveyor/internal/errors"
	"surveyor/internal/mocks"
	"surveyor/internal/testutil"
)

// FileStoreTestSuite provides common setup for file store tests.
type FileStoreTestSuite struct {
	suite.Suite

	ctx         context.Context
	mockFS      *mocks.MockFileSystemAdapter
	tempDir     string
	sessionPath string
}

func (s *FileStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockFS = mocks.NewMockFileSystemAdapter(s.T())
	s.tempDir = s.T().TempDir()
	s.sessionPath = filepath.Join(s.tempDir, ".config", "surveyor", "session.yaml")
}

func (s *FileStoreTestSuite) createStore() *storage.FileStore {
	s.mockFS.On("MkdirAll", filepath.Dir(s.sessionPath), os.FileMode(0o700)).Return(nil).Maybe()

	store, err := storage.NewFileStore(s.mockFS, s.sessionPath, testutil.Logger())
	s.Require().NoError(err)
	s.Require().NotNil(store)
	return store
}

func (s *FileStoreTestSuite) TestNewFileStore_DirectoryCreationError() {
	s.mockFS.On("MkdirAll", filepath.Dir(s.sessionPath), os.FileMode(0o700)).Return(errors.New("permission denied"))

	store, err := storage.NewFileStore(s.mockFS, s.sessionPath, testutil.Logger())

	s.Require().Error(err)
	s.Nil(store)
	s.True(domainerrors.IsConfiguration(err))
}

func (s *FileStoreTestSuite) TestLoad_MissingFileIsNoSession() {
	store := s.createStore()
	s.mockFS.On("ReadFile", s.sessionPath).Return(nil, os.ErrNotExist)

	account, err := store.LoadCurrentAccount(s.ctx)

	s.Require().NoError(err)
	s.Nil(account)
}

func (s *FileStoreTestSuite) TestLoad_ReadError() {
	store := s.createStore()
	s.mockFS.On("ReadFile", s.sessionPath).Return(nil, errors.New("i/o error"))

	account, err := store.LoadCurrentAccount(s.ctx)

	s.Require().Error(err)
	s.Contains(err.Error(), "failed to read session file")
	s.Nil(account)
}

func (s *FileStoreTestSuite) TestLoad_ExistingSession() {
	store := s.createStore()
	existing := `version: "1"
account:
  accessToken: token-abc
  name: Jane
`
	s.mockFS.On("ReadFile", s.sessionPath).Return([]byte(existing), nil)

	account, err := store.LoadCurrentAccount(s.ctx)

	s.Require().NoError(err)
	s.Equal(&domain.AccountModel{AccessToken: "token-abc", Name: "Jane"}, account)
}

func (s *FileStoreTestSuite) TestLoad_InvalidYAML() {
	store := s.createStore()
	s.mockFS.On("ReadFile", s.sessionPath).Return([]byte("account: [unclosed"), nil)

	_, err := store.LoadCurrentAccount(s.ctx)

	s.Require().Error(err)
	s.Contains(err.Error(), "failed to decode session")
}

func (s *FileStoreTestSuite) TestLoad_MigratesUnversionedSession() {
	store := s.createStore()
	legacy := `accessToken: token-abc
name: Jane
`
	s.mockFS.On("ReadFile", s.sessionPath).Return([]byte(legacy), nil)
	s.mockFS.On("WriteFile", s.sessionPath, mock.MatchedBy(func(data []byte) bool {
		return strings.Contains(string(data), `version: "1"`) && strings.Contains(string(data), "accessToken: token-abc")
	}), os.FileMode(0o600)).Return(nil)
	s.mockFS.On("Chmod", s.sessionPath, os.FileMode(0o600)).Return(nil)
	s.mockFS.On("Chmod", filepath.Dir(s.sessionPath), os.FileMode(0o700)).Return(nil)

	account, err := store.LoadCurrentAccount(s.ctx)

	s.Require().NoError(err)
	s.Equal(&domain.AccountModel{AccessToken: "token-abc", Name: "Jane"}, account)
}

func (s *FileStoreTestSuite) TestLoad_MigrationRewriteFailureStillReturnsAccount() {
	store := s.createStore()
	s.mockFS.On("ReadFile", s.sessionPath).Return([]byte("accessToken: token-abc\n"), nil)
	s.mockFS.On("WriteFile", s.sessionPath, mock.Anything, os.FileMode(0o600)).Return(errors.New("read-only file system"))

	account, err := store.LoadCurrentAccount(s.ctx)

	s.Require().NoError(err)
	s.Equal("token-abc", account.AccessToken)
}

func (s *FileStoreTestSuite) TestSave_WritesOwnerOnlyFile() {
	store := s.createStore()
	s.mockFS.On("WriteFile", s.sessionPath, mock.AnythingOfType("[]uint8"), os.FileMode(0o600)).Return(nil)
	s.mockFS.On("Chmod", s.sessionPath, os.FileMode(0o600)).Return(nil)

	err := store.SaveCurrentAccount(s.ctx, &domain.AccountModel{AccessToken: "t", Name: "n"})

	s.Require().NoError(err)
}

func (s *FileStoreTestSuite) TestSave_WriteError() {
	store := s.createStore()
	s.mockFS.On("WriteFile", s.sessionPath, mock.Anything, os.FileMode(0o600)).Return(errors.New("disk full"))

	err := store.SaveCurrentAccount(s.ctx, &domain.AccountModel{AccessToken: "t", Name: "n"})

	s.Require().Error(err)
	s.Contains(err.Error(), "failed to write session file")
}

func (s *FileStoreTestSuite) TestSave_NilRemovesSession() {
	store := s.createStore()
	s.mockFS.On("Remove", s.sessionPath).Return(os.ErrNotExist)

	s.Require().NoError(store.SaveCurrentAccount(s.ctx, nil))
}

func (s *FileStoreTestSuite) TestSave_NilRemoveError() {
	store := s.createStore()
	s.mockFS.On("Remove", s.sessionPath).Return(errors.New("read-only file system"))

	err := store.SaveCurrentAccount(s.ctx, nil)

	s.Require().Error(err)
	s.Contains(err.Error(), "failed to remove session file")
}

func TestFileStoreTestSuite(t *testing.T) {
	suite.Run(t, new(FileStoreTestSuite))
}

func TestFileStore_RoundTripOnDisk(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "surveyor", "session.yaml")

	store, err := storage.NewFileStore(filesystem.New(), path, testutil.Logger())
	if err != nil {
		t.Fatalf("Expected no error creating store, got: %v", err)
	}

	account := testutil.MockAccountModel()
	if err := store.SaveCurrentAccount(ctx, &account); err != nil {
		t.Fatalf("Expected no error saving, got: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected session file to exist: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("Expected permissions 0600, got %o", info.Mode().Perm())
	}

	loaded, err := store.LoadCurrentAccount(ctx)
	if err != nil {
		t.Fatalf("Expected no error loading, got: %v", err)
	}
	if loaded == nil || *loaded != account {
		t.Errorf("Expected %+v, got %+v", account, loaded)
	}

	if err := store.SaveCurrentAccount(ctx, nil); err != nil {
		t.Fatalf("Expected no error clearing, got: %v", err)
	}
	loaded, err = store.LoadCurrentAccount(ctx)
	if err != nil || loaded != nil {
		t.Errorf("Expected no session after clearing, got %+v (%v)", loaded, err)
	}
}
