package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"surveyor/internal/domain"
)

// AnswerCommand records an answer and returns the refreshed result.
type AnswerCommand struct {
	saveSurveyResult domain.SaveSurveyResult
	loadSurveyResult domain.LoadSurveyResult
	accountSaver     domain.CurrentAccountSaver
	logger           *slog.Logger
}

// NewAnswerCommand creates a new answer command.
func NewAnswerCommand(
	saveSurveyResult domain.SaveSurveyResult,
	loadSurveyResult domain.LoadSurveyResult,
	accountSaver domain.CurrentAccountSaver,
	logger *slog.Logger,
) *AnswerCommand {
	return &AnswerCommand{
		saveSurveyResult: saveSurveyResult,
		loadSurveyResult: loadSurveyResult,
		accountSaver:     accountSaver,
		logger:           logger,
	}
}

// AnswerRequest contains the parameters for the answer command.
type AnswerRequest struct {
	Answer string
}

// Execute runs the answer command.
func (c *AnswerCommand) Execute(ctx context.Context, req AnswerRequest) (domain.SurveyResultModel, error) {
	if req.Answer == "" {
		return domain.SurveyResultModel{}, errors.New("answer is required")
	}

	c.logger.InfoContext(ctx, "Saving answer", "answer", req.Answer)

	if err := c.saveSurveyResult.Save(ctx, domain.SaveSurveyResultParams{Answer: req.Answer}); err != nil {
		expireSessionOnAccessDenied(ctx, c.accountSaver, c.logger, err)
		return domain.SurveyResultModel{}, fmt.Errorf("failed to save answer: %w", err)
	}

	result, err := c.loadSurveyResult.Load(ctx)
	if err != nil {
		expireSessionOnAccessDenied(ctx, c.accountSaver, c.logger, err)
		return domain.SurveyResultModel{}, fmt.Errorf("failed to load survey result: %w", err)
	}

	return result, nil
}
