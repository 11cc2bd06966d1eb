package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"surveyor/internal/domain"
)

// LoginCommand authenticates an account and stores it as the current session.
type LoginCommand struct {
	authentication domain.Authentication
	accountSaver   domain.CurrentAccountSaver
	passwordReader domain.PasswordReader
	logger         *slog.Logger
}

// NewLoginCommand creates a new login command.
func NewLoginCommand(
	authentication domain.Authentication,
	accountSaver domain.CurrentAccountSaver,
	passwordReader domain.PasswordReader,
	logger *slog.Logger,
) *LoginCommand {
	return &LoginCommand{
		authentication: authentication,
		accountSaver:   accountSaver,
		passwordReader: passwordReader,
		logger:         logger,
	}
}

// LoginRequest contains the parameters for the login command.
// An empty Password is read through the PasswordReader.
type LoginRequest struct {
	Email    string
	Password string
}

// Execute runs the login command.
func (c *LoginCommand) Execute(ctx context.Context, req LoginRequest) (domain.AccountModel, error) {
	if req.Email == "" {
		return domain.AccountModel{}, errors.New("email is required")
	}

	password := req.Password
	if password == "" {
		var err error
		password, err = c.passwordReader.ReadPassword(ctx, fmt.Sprintf("Password for %s: ", req.Email))
		if err != nil {
			return domain.AccountModel{}, fmt.Errorf("failed to read password: %w", err)
		}
	}

	c.logger.InfoContext(ctx, "Logging in", "email", req.Email)

	account, err := c.authentication.Auth(ctx, domain.AuthenticationParams{
		Email:    req.Email,
		Password: password,
	})
	if err != nil {
		return domain.AccountModel{}, fmt.Errorf("failed to log in: %w", err)
	}

	if err := c.accountSaver.SaveCurrentAccount(ctx, &account); err != nil {
		return domain.AccountModel{}, fmt.Errorf("failed to save current account: %w", err)
	}

	c.logger.InfoContext(ctx, "Successfully logged in", "name", account.Name)
	return account, nil
}
