package commands

import (
	"context"
	"fmt"
	"log/slog"

	"surveyor/internal/domain"
)

// ShowResultCommand loads the result of one survey.
type ShowResultCommand struct {
	loadSurveyResult domain.LoadSurveyResult
	accountSaver     domain.CurrentAccountSaver
	logger           *slog.Logger
}

// NewShowResultCommand creates a new show-result command.
func NewShowResultCommand(
	loadSurveyResult domain.LoadSurveyResult,
	accountSaver domain.CurrentAccountSaver,
	logger *slog.Logger,
) *ShowResultCommand {
	return &ShowResultCommand{
		loadSurveyResult: loadSurveyResult,
		accountSaver:     accountSaver,
		logger:           logger,
	}
}

// Execute runs the show-result command.
func (c *ShowResultCommand) Execute(ctx context.Context) (domain.SurveyResultModel, error) {
	result, err := c.loadSurveyResult.Load(ctx)
	if err != nil {
		expireSessionOnAccessDenied(ctx, c.accountSaver, c.logger, err)
		return domain.SurveyResultModel{}, fmt.Errorf("failed to load survey result: %w", err)
	}

	c.logger.DebugContext(ctx, "Loaded survey result", "question", result.Question, "answers", len(result.Answers))
	return result, nil
}
