package auth

import (
	"context"
	"log/slog"

	"surveyor/internal/domain"
	"surveyor/internal/errors"
)

// RemoteAddAccount registers an account through the API signup endpoint.
type RemoteAddAccount struct {
	url        string
	httpClient domain.HTTPPostClient[domain.AddAccountParams, domain.AccountModel]
	logger     *slog.Logger
}

// NewRemoteAddAccount creates a signup use-case bound to url.
func NewRemoteAddAccount(
	url string,
	httpClient domain.HTTPPostClient[domain.AddAccountParams, domain.AccountModel],
	logger *slog.Logger,
) *RemoteAddAccount {
	return &RemoteAddAccount{
		url:        url,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Add posts the signup fields and returns the new account on 200.
func (a *RemoteAddAccount) Add(ctx context.Context, params domain.AddAccountParams) (domain.AccountModel, error) {
	a.logger.DebugContext(ctx, "Creating account", "url", a.url, "email", params.Email)

	resp, err := a.httpClient.Post(ctx, domain.HTTPRequest[domain.AddAccountParams]{
		URL:    a.url,
		Method: domain.MethodPost,
		Body:   &params,
	})
	if err != nil {
		a.logger.WarnContext(ctx, "Signup request failed", "url", a.url, "error", err)
		return domain.AccountModel{}, errors.NewUnexpectedError(err)
	}

	if resp.StatusCode != domain.StatusOK || resp.Body == nil {
		a.logger.WarnContext(ctx, "Signup failed", "url", a.url, "status", int(resp.StatusCode))
		return domain.AccountModel{}, errors.ErrUnexpected
	}

	return *resp.Body, nil
}
