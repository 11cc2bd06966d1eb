// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"
	"os"

	"github.com/stretchr/testify/mock"

	"surveyor/internal/domain"
)

// TestingT is the subset of *testing.T the constructors need.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(m *mock.Mock, t TestingT) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// MockAccountStore is a mock of domain.AccountStore.
type MockAccountStore struct {
	mock.Mock
}

// NewMockAccountStore creates a mock that asserts its expectations on cleanup.
func NewMockAccountStore(t TestingT) *MockAccountStore {
	m := &MockAccountStore{}
	register(&m.Mock, t)
	return m
}

func (m *MockAccountStore) SaveCurrentAccount(ctx context.Context, account *domain.AccountModel) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountStore) LoadCurrentAccount(ctx context.Context) (*domain.AccountModel, error) {
	args := m.Called(ctx)
	account, _ := args.Get(0).(*domain.AccountModel)
	return account, args.Error(1)
}

// MockAuthentication is a mock of domain.Authentication.
type MockAuthentication struct {
	mock.Mock
}

// NewMockAuthentication creates a mock that asserts its expectations on cleanup.
func NewMockAuthentication(t TestingT) *MockAuthentication {
	m := &MockAuthentication{}
	register(&m.Mock, t)
	return m
}

func (m *MockAuthentication) Auth(ctx context.Context, params domain.AuthenticationParams) (domain.AccountModel, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(domain.AccountModel), args.Error(1)
}

// MockAddAccount is a mock of domain.AddAccount.
type MockAddAccount struct {
	mock.Mock
}

// NewMockAddAccount creates a mock that asserts its expectations on cleanup.
func NewMockAddAccount(t TestingT) *MockAddAccount {
	m := &MockAddAccount{}
	register(&m.Mock, t)
	return m
}

func (m *MockAddAccount) Add(ctx context.Context, params domain.AddAccountParams) (domain.AccountModel, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(domain.AccountModel), args.Error(1)
}

// MockLoadSurveyResult is a mock of domain.LoadSurveyResult.
type MockLoadSurveyResult struct {
	mock.Mock
}

// NewMockLoadSurveyResult creates a mock that asserts its expectations on cleanup.
func NewMockLoadSurveyResult(t TestingT) *MockLoadSurveyResult {
	m := &MockLoadSurveyResult{}
	register(&m.Mock, t)
	return m
}

func (m *MockLoadSurveyResult) Load(ctx context.Context) (domain.SurveyResultModel, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SurveyResultModel), args.Error(1)
}

// MockSaveSurveyResult is a mock of domain.SaveSurveyResult.
type MockSaveSurveyResult struct {
	mock.Mock
}

// NewMockSaveSurveyResult creates a mock that asserts its expectations on cleanup.
func NewMockSaveSurveyResult(t TestingT) *MockSaveSurveyResult {
	m := &MockSaveSurveyResult{}
	register(&m.Mock, t)
	return m
}

func (m *MockSaveSurveyResult) Save(ctx context.Context, params domain.SaveSurveyResultParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

// MockPasswordReader is a mock of domain.PasswordReader.
type MockPasswordReader struct {
	mock.Mock
}

// NewMockPasswordReader creates a mock that asserts its expectations on cleanup.
func NewMockPasswordReader(t TestingT) *MockPasswordReader {
	m := &MockPasswordReader{}
	register(&m.Mock, t)
	return m
}

func (m *MockPasswordReader) ReadPassword(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordReader) IsInteractive() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockFileSystemAdapter is a mock of domain.FileSystemAdapter.
type MockFileSystemAdapter struct {
	mock.Mock
}

// NewMockFileSystemAdapter creates a mock that asserts its expectations on cleanup.
func NewMockFileSystemAdapter(t TestingT) *MockFileSystemAdapter {
	m := &MockFileSystemAdapter{}
	register(&m.Mock, t)
	return m
}

func (m *MockFileSystemAdapter) ReadFile(path string) ([]byte, error) {
	args := m.Called(path)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockFileSystemAdapter) WriteFile(path string, data []byte, perm os.FileMode) error {
	args := m.Called(path, data, perm)
	return args.Error(0)
}

func (m *MockFileSystemAdapter) MkdirAll(path string, perm os.FileMode) error {
	args := m.Called(path, perm)
	return args.Error(0)
}

func (m *MockFileSystemAdapter) Remove(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockFileSystemAdapter) Chmod(path string, perm os.FileMode) error {
	args := m.Called(path, perm)
	return args.Error(0)
}

func (m *MockFileSystemAdapter) UserHomeDir() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
