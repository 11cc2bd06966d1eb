package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"surveyor/internal/domain"
)

// SignupCommand registers a new account and stores it as the current session.
type SignupCommand struct {
	addAccount     domain.AddAccount
	accountSaver   domain.CurrentAccountSaver
	passwordReader domain.PasswordReader
	logger         *slog.Logger
}

// NewSignupCommand creates a new signup command.
func NewSignupCommand(
	addAccount domain.AddAccount,
	accountSaver domain.CurrentAccountSaver,
	passwordReader domain.PasswordReader,
	logger *slog.Logger,
) *SignupCommand {
	return &SignupCommand{
		addAccount:     addAccount,
		accountSaver:   accountSaver,
		passwordReader: passwordReader,
		logger:         logger,
	}
}

// SignupRequest contains the parameters for the signup command.
type SignupRequest struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// Execute runs the signup command.
func (c *SignupCommand) Execute(ctx context.Context, req SignupRequest) (domain.AccountModel, error) {
	if req.Name == "" || req.Email == "" {
		return domain.AccountModel{}, errors.New("name and email are required")
	}

	password, confirmation, err := c.collectPasswords(ctx, req)
	if err != nil {
		return domain.AccountModel{}, err
	}

	c.logger.InfoContext(ctx, "Creating account", "name", req.Name, "email", req.Email)

	account, err := c.addAccount.Add(ctx, domain.AddAccountParams{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             password,
		PasswordConfirmation: confirmation,
	})
	if err != nil {
		return domain.AccountModel{}, fmt.Errorf("failed to sign up: %w", err)
	}

	if err := c.accountSaver.SaveCurrentAccount(ctx, &account); err != nil {
		return domain.AccountModel{}, fmt.Errorf("failed to save current account: %w", err)
	}

	c.logger.InfoContext(ctx, "Successfully signed up", "name", account.Name)
	return account, nil
}

func (c *SignupCommand) collectPasswords(ctx context.Context, req SignupRequest) (string, string, error) {
	password := req.Password
	if password == "" {
		var err error
		password, err = c.passwordReader.ReadPassword(ctx, "Password: ")
		if err != nil {
			return "", "", fmt.Errorf("failed to read password: %w", err)
		}
	}

	confirmation := req.PasswordConfirmation
	if confirmation == "" {
		if req.Password != "" {
			return password, password, nil
		}
		var err error
		confirmation, err = c.passwordReader.ReadPassword(ctx, "Confirm password: ")
		if err != nil {
			return "", "", fmt.Errorf("failed to read password confirmation: %w", err)
		}
	}

	return password, confirmation, nil
}
