package commands

import (
	"context"
	"log/slog"

	"surveyor/internal/domain"
	"surveyor/internal/errors"
)

// expireSessionOnAccessDenied drops the stored account when the API rejected
// its token, so the next command asks for a fresh login.
func expireSessionOnAccessDenied(
	ctx context.Context,
	accountSaver domain.CurrentAccountSaver,
	logger *slog.Logger,
	err error,
) {
	if !errors.IsAccessDenied(err) {
		return
	}

	logger.WarnContext(ctx, "Access denied, clearing current account")
	if saveErr := accountSaver.SaveCurrentAccount(ctx, nil); saveErr != nil {
		logger.WarnContext(ctx, "Failed to clear current account", "error", saveErr)
	}
}
