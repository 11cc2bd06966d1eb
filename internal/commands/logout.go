package commands

import (
	"context"
	"fmt"
	"log/slog"

	"surveyor/internal/domain"
)

// LogoutCommand clears the current session.
type LogoutCommand struct {
	accountSaver domain.CurrentAccountSaver
	logger       *slog.Logger
}

// NewLogoutCommand creates a new logout command.
func NewLogoutCommand(accountSaver domain.CurrentAccountSaver, logger *slog.Logger) *LogoutCommand {
	return &LogoutCommand{
		accountSaver: accountSaver,
		logger:       logger,
	}
}

// Execute runs the logout command.
func (c *LogoutCommand) Execute(ctx context.Context) error {
	if err := c.accountSaver.SaveCurrentAccount(ctx, nil); err != nil {
		return fmt.Errorf("failed to clear current account: %w", err)
	}

	c.logger.InfoContext(ctx, "Logged out")
	return nil
}
