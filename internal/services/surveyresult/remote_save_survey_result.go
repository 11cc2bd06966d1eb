package surveyresult

import (
	"context"
	"log/slog"

	"surveyor/internal/domain"
	"surveyor/internal/errors"
)

// RemoteSaveSurveyResult records an answer through the API.
type RemoteSaveSurveyResult struct {
	url        string
	httpClient domain.HTTPPutClient[domain.SaveSurveyResultParams, domain.RemoteSurveyResultModel]
	logger     *slog.Logger
}

// NewRemoteSaveSurveyResult creates a save use-case bound to url.
func NewRemoteSaveSurveyResult(
	url string,
	httpClient domain.HTTPPutClient[domain.SaveSurveyResultParams, domain.RemoteSurveyResultModel],
	logger *slog.Logger,
) *RemoteSaveSurveyResult {
	return &RemoteSaveSurveyResult{
		url:        url,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Save issues a PUT with the answer. Any response body is ignored.
func (s *RemoteSaveSurveyResult) Save(ctx context.Context, params domain.SaveSurveyResultParams) error {
	s.logger.DebugContext(ctx, "Saving survey answer", "url", s.url, "answer", params.Answer)

	resp, err := s.httpClient.Put(ctx, domain.HTTPRequest[domain.SaveSurveyResultParams]{
		URL:    s.url,
		Method: domain.MethodPut,
		Body:   &params,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "Save survey answer request failed", "url", s.url, "error", err)
		return errors.NewUnexpectedError(err)
	}

	switch resp.StatusCode {
	case domain.StatusOK:
		return nil
	case domain.StatusForbidden:
		s.logger.WarnContext(ctx, "Save survey answer access denied", "url", s.url)
		return errors.ErrAccessDenied
	default:
		s.logger.WarnContext(ctx, "Saving survey answer failed", "url", s.url, "status", int(resp.StatusCode))
		return errors.ErrUnexpected
	}
}
