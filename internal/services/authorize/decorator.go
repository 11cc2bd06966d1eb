// Package authorize decorates transport clients with the current account's access token.
package authorize

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"surveyor/internal/domain"
)

// AccessTokenHeader carries the access token on authorized requests.
const AccessTokenHeader = "x-access-token"

// headers returns the request headers with the access token added, when an
// account is stored. The caller's map is never modified.
func headers(
	ctx context.Context,
	loader domain.CurrentAccountLoader,
	logger *slog.Logger,
	current map[string]string,
) (map[string]string, error) {
	account, err := loader.LoadCurrentAccount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load current account: %w", err)
	}
	if account == nil || account.AccessToken == "" {
		logger.DebugContext(ctx, "No current account, sending request without access token")
		return current, nil
	}

	merged := make(map[string]string, len(current)+1)
	maps.Copy(merged, current)
	merged[AccessTokenHeader] = account.AccessToken
	return merged, nil
}

// GetClient adds the access token to GET requests.
type GetClient[T any] struct {
	inner  domain.HTTPGetClient[T]
	loader domain.CurrentAccountLoader
	logger *slog.Logger
}

// NewGetClient wraps inner.
func NewGetClient[T any](
	inner domain.HTTPGetClient[T],
	loader domain.CurrentAccountLoader,
	logger *slog.Logger,
) *GetClient[T] {
	return &GetClient[T]{inner: inner, loader: loader, logger: logger}
}

// Get forwards the request with the access token header set.
func (c *GetClient[T]) Get(ctx context.Context, req domain.HTTPRequest[domain.NoBody]) (domain.HTTPResponse[T], error) {
	h, err := headers(ctx, c.loader, c.logger, req.Headers)
	if err != nil {
		return domain.HTTPResponse[T]{}, err
	}
	req.Headers = h
	return c.inner.Get(ctx, req)
}

// PutClient adds the access token to PUT requests.
type PutClient[B, T any] struct {
	inner  domain.HTTPPutClient[B, T]
	loader domain.CurrentAccountLoader
	logger *slog.Logger
}

// NewPutClient wraps inner.
func NewPutClient[B, T any](
	inner domain.HTTPPutClient[B, T],
	loader domain.CurrentAccountLoader,
	logger *slog.Logger,
) *PutClient[B, T] {
	return &PutClient[B, T]{inner: inner, loader: loader, logger: logger}
}

// Put forwards the request with the access token header set.
func (c *PutClient[B, T]) Put(ctx context.Context, req domain.HTTPRequest[B]) (domain.HTTPResponse[T], error) {
	h, err := headers(ctx, c.loader, c.logger, req.Headers)
	if err != nil {
		return domain.HTTPResponse[T]{}, err
	}
	req.Headers = h
	return c.inner.Put(ctx, req)
}
