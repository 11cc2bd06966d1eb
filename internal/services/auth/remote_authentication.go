// Package auth implements the account use-cases against the remote API.
package auth

import (
	"context"
	"log/slog"

	"surveyor/internal/domain"
	"surveyor/internal/errors"
)

// RemoteAuthentication logs an account in through the API login endpoint.
type RemoteAuthentication struct {
	url        string
	httpClient domain.HTTPPostClient[domain.AuthenticationParams, domain.AccountModel]
	logger     *slog.Logger
}

// NewRemoteAuthentication creates an authentication use-case bound to url.
func NewRemoteAuthentication(
	url string,
	httpClient domain.HTTPPostClient[domain.AuthenticationParams, domain.AccountModel],
	logger *slog.Logger,
) *RemoteAuthentication {
	return &RemoteAuthentication{
		url:        url,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Auth posts the credentials and returns the account on 200.
// A 401 is reported as invalid credentials; every other status is unexpected.
func (a *RemoteAuthentication) Auth(
	ctx context.Context,
	params domain.AuthenticationParams,
) (domain.AccountModel, error) {
	a.logger.DebugContext(ctx, "Authenticating account", "url", a.url, "email", params.Email)

	resp, err := a.httpClient.Post(ctx, domain.HTTPRequest[domain.AuthenticationParams]{
		URL:    a.url,
		Method: domain.MethodPost,
		Body:   &params,
	})
	if err != nil {
		a.logger.WarnContext(ctx, "Authentication request failed", "url", a.url, "error", err)
		return domain.AccountModel{}, errors.NewUnexpectedError(err)
	}

	switch resp.StatusCode {
	case domain.StatusOK:
		if resp.Body == nil {
			a.logger.WarnContext(ctx, "Authentication succeeded without an account body", "url", a.url)
			return domain.AccountModel{}, errors.ErrUnexpected
		}
		return *resp.Body, nil
	case domain.StatusUnauthorized:
		a.logger.WarnContext(ctx, "Authentication rejected", "url", a.url, "status", int(resp.StatusCode))
		return domain.AccountModel{}, errors.ErrInvalidCredentials
	default:
		a.logger.WarnContext(ctx, "Authentication failed", "url", a.url, "status", int(resp.StatusCode))
		return domain.AccountModel{}, errors.ErrUnexpected
	}
}
