package surveyresult

import (
	"context"
	"log/slog"

	"surveyor/internal/domain"
	"surveyor/internal/errors"
)

// RemoteLoadSurveyResult fetches a survey result from the API.
type RemoteLoadSurveyResult struct {
	url        string
	httpClient domain.HTTPGetClient[domain.RemoteSurveyResultModel]
	logger     *slog.Logger
}

// NewRemoteLoadSurveyResult creates a load use-case bound to url.
func NewRemoteLoadSurveyResult(
	url string,
	httpClient domain.HTTPGetClient[domain.RemoteSurveyResultModel],
	logger *slog.Logger,
) *RemoteLoadSurveyResult {
	return &RemoteLoadSurveyResult{
		url:        url,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Load issues a GET and converts a 200 body into the domain model.
// A 403 is reported as access denied; every other status is unexpected.
func (l *RemoteLoadSurveyResult) Load(ctx context.Context) (domain.SurveyResultModel, error) {
	l.logger.DebugContext(ctx, "Loading survey result", "url", l.url)

	resp, err := l.httpClient.Get(ctx, domain.HTTPRequest[domain.NoBody]{
		URL:    l.url,
		Method: domain.MethodGet,
	})
	if err != nil {
		l.logger.WarnContext(ctx, "Survey result request failed", "url", l.url, "error", err)
		return domain.SurveyResultModel{}, errors.NewUnexpectedError(err)
	}

	switch resp.StatusCode {
	case domain.StatusOK:
		if resp.Body == nil {
			l.logger.WarnContext(ctx, "Survey result response has no body", "url", l.url)
			return domain.SurveyResultModel{}, errors.ErrUnexpected
		}
		result, convErr := ToSurveyResultModel(*resp.Body)
		if convErr != nil {
			l.logger.WarnContext(ctx, "Malformed survey result", "url", l.url, "error", convErr)
			return domain.SurveyResultModel{}, errors.NewUnexpectedError(convErr)
		}
		return result, nil
	case domain.StatusForbidden:
		l.logger.WarnContext(ctx, "Survey result access denied", "url", l.url)
		return domain.SurveyResultModel{}, errors.ErrAccessDenied
	default:
		l.logger.WarnContext(ctx, "Loading survey result failed", "url", l.url, "status", int(resp.StatusCode))
		return domain.SurveyResultModel{}, errors.ErrUnexpected
	}
}
