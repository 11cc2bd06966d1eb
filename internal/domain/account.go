package domain

import "context"

// AccountModel is the authenticated account returned by the API.
type AccountModel struct {
	AccessToken string `json:"accessToken" yaml:"accessToken"`
	Name        string `json:"name"        yaml:"name"`
}

// CurrentAccountSaver persists the logged-in account.
// Saving nil clears the current session.
type CurrentAccountSaver interface {
	SaveCurrentAccount(ctx context.Context, account *AccountModel) error
}

// CurrentAccountLoader returns the logged-in account, or nil when there is none.
type CurrentAccountLoader interface {
	LoadCurrentAccount(ctx context.Context) (*AccountModel, error)
}

// AccountStore is the full session storage contract.
type AccountStore interface {
	CurrentAccountSaver
	CurrentAccountLoader
}
