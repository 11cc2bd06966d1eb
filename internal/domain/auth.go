package domain

import "context"

// AuthenticationParams are the credentials sent to the login endpoint.
type AuthenticationParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AddAccountParams are the fields sent to the signup endpoint.
type AddAccountParams struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

// Authentication logs an existing account in.
type Authentication interface {
	Auth(ctx context.Context, params AuthenticationParams) (AccountModel, error)
}

// AddAccount registers a new account and logs it in.
type AddAccount interface {
	Add(ctx context.Context, params AddAccountParams) (AccountModel, error)
}

// PasswordReader handles secure password input from users.
type PasswordReader interface {
	ReadPassword(ctx context.Context, prompt string) (string, error)
	IsInteractive() bool
}
