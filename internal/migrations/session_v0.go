// Package migrations upgrades session files written by older releases.
package migrations

import (
	"gopkg.in/yaml.v3"

	"surveyor/internal/domain"
)

// V0Session is the unversioned layout: the account fields sat at the top
// level of the file.
type V0Session struct {
	AccessToken string `yaml:"accessToken"`
	Name        string `yaml:"name"`
}

// migrateFromV0 converts an unversioned session into an account.
// A file without a token carries no session.
func migrateFromV0(data []byte) (*domain.AccountModel, error) {
	var v0 V0Session
	if err := yaml.Unmarshal(data, &v0); err != nil {
		return nil, err
	}

	if v0.AccessToken == "" {
		return nil, nil
	}

	return &domain.AccountModel{
		AccessToken: v0.AccessToken,
		Name:        v0.Name,
	}, nil
}
