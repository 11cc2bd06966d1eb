// Package config resolves where surveyor keeps its files.
package config

import (
	"fmt"
	"path/filepath"

	"surveyor/internal/domain"
)

const appDirName = "surveyor"

// Provider provides configuration paths.
type Provider struct {
	fs domain.FileSystemAdapter
}

// NewProvider creates a new configuration provider.
func NewProvider(fs domain.FileSystemAdapter) *Provider {
	return &Provider{
		fs: fs,
	}
}

// GetConfigDir returns ~/.config/surveyor.
func (p *Provider) GetConfigDir() (string, error) {
	homeDir, err := p.fs.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", appDirName), nil
}

// GetConfigPath returns the path to the surveyor configuration file.
func (p *Provider) GetConfigPath() (string, error) {
	return p.inConfigDir("config.yaml")
}

// GetSessionPath returns the path of the file session store.
func (p *Provider) GetSessionPath() (string, error) {
	return p.inConfigDir("session.yaml")
}

// GetDatabasePath returns the path of the sqlite session store.
func (p *Provider) GetDatabasePath() (string, error) {
	return p.inConfigDir("surveyor.db")
}

func (p *Provider) inConfigDir(name string) (string, error) {
	dir, err := p.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

var _ domain.ConfigProvider = (*Provider)(nil)
