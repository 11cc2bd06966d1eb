package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"surveyor/internal/domain"
)

const (
	// HTTP client retry configuration.
	defaultRetryCount       = 2
	defaultRetryWaitTime    = 500 * time.Millisecond
	defaultRetryMaxWaitTime = 5 * time.Second

	// Rate limiting configuration.
	defaultRequestsPerSecond = 10
	defaultBurst             = 20

	defaultTimeout = 30 * time.Second
)

const (
	contentTypeJSON = "application/json"
	requestIDHeader = "X-Request-Id"
)

// Options configures the shared transport.
type Options struct {
	Timeout            time.Duration
	InsecureSkipVerify bool
	RequestsPerSecond  float64
	Burst              int
	RetryCount         int
}

// Adapter is the shared resty transport with rate limiting.
// Retries cover requests that never produced a response; a delivered status
// code is always handed back to the caller.
type Adapter struct {
	client  *resty.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewAdapter creates a new HTTP adapter. Unset options fall back to a 30s
// timeout and 10 requests per second with a burst of 20. A negative
// RetryCount means two retries; zero disables them.
func NewAdapter(opts Options, logger *slog.Logger) *Adapter {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = defaultRequestsPerSecond
	}
	if opts.Burst <= 0 {
		opts.Burst = defaultBurst
	}
	if opts.RetryCount < 0 {
		opts.RetryCount = defaultRetryCount
	}

	client := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(defaultRetryWaitTime).
		SetRetryMaxWaitTime(defaultRetryMaxWaitTime).
		SetHeader("Accept", contentTypeJSON).
		SetTLSClientConfig(&tls.Config{
			InsecureSkipVerify: opts.InsecureSkipVerify, //nolint:gosec // User-configurable for self-signed certificates
		})

	limiter := rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.Burst)

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return limiter.Wait(req.Context())
	})

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(requestIDHeader) == "" {
			req.SetHeader(requestIDHeader, uuid.NewString())
		}
		logger.DebugContext(req.Context(), "HTTP request",
			"method", req.Method,
			"url", req.URL,
			"requestID", req.Header.Get(requestIDHeader),
		)
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.DebugContext(resp.Request.Context(), "HTTP response",
			"method", resp.Request.Method,
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"duration", resp.Time(),
		)
		return nil
	})

	return &Adapter{
		client:  client,
		limiter: limiter,
		logger:  logger,
	}
}

// Do sends one request. A nil payload sends no body.
func (a *Adapter) Do(
	ctx context.Context,
	method domain.HTTPMethod,
	url string,
	headers map[string]string,
	payload any,
) (*resty.Response, error) {
	verb := strings.ToUpper(string(method))
	request := a.client.R().SetContext(ctx).SetHeaders(headers)

	if payload != nil {
		request.SetHeader("Content-Type", contentTypeJSON).SetBody(payload)
	}

	resp, err := request.Execute(verb, url)
	if err != nil {
		return nil, fmt.Errorf("failed to execute %s request: %w", verb, err)
	}
	return resp, nil
}

// Client is a typed view over the shared Adapter. B is the request payload
// type, T the response payload type.
type Client[B, T any] struct {
	adapter *Adapter
}

// NewClient creates a typed client on top of adapter.
func NewClient[B, T any](adapter *Adapter) *Client[B, T] {
	return &Client[B, T]{adapter: adapter}
}

// Post sends a POST request with a JSON body.
func (c *Client[B, T]) Post(ctx context.Context, req domain.HTTPRequest[B]) (domain.HTTPResponse[T], error) {
	return c.send(ctx, domain.MethodPost, req.URL, req.Headers, req.Body)
}

// Put sends a PUT request with a JSON body.
func (c *Client[B, T]) Put(ctx context.Context, req domain.HTTPRequest[B]) (domain.HTTPResponse[T], error) {
	return c.send(ctx, domain.MethodPut, req.URL, req.Headers, req.Body)
}

// Get sends a GET request.
func (c *Client[B, T]) Get(ctx context.Context, req domain.HTTPRequest[domain.NoBody]) (domain.HTTPResponse[T], error) {
	return c.send(ctx, domain.MethodGet, req.URL, req.Headers, nil)
}

func (c *Client[B, T]) send(
	ctx context.Context,
	method domain.HTTPMethod,
	url string,
	headers map[string]string,
	body *B,
) (domain.HTTPResponse[T], error) {
	var payload any
	if body != nil {
		payload = body
	}

	resp, err := c.adapter.Do(ctx, method, url, headers, payload)
	if err != nil {
		return domain.HTTPResponse[T]{}, err
	}

	result := domain.HTTPResponse[T]{StatusCode: domain.HTTPStatusCode(resp.StatusCode())}

	raw := bytes.TrimSpace(resp.Body())
	if !resp.IsSuccess() || len(raw) == 0 || !isJSONResponse(resp) {
		return result, nil
	}

	// A delivered status is never an error; a body that does not fit T is dropped.
	var decoded T
	if decodeErr := json.Unmarshal(raw, &decoded); decodeErr != nil {
		c.adapter.logger.WarnContext(ctx, "Discarding undecodable response body",
			"method", strings.ToUpper(string(method)),
			"url", url,
			"status", resp.StatusCode(),
			"error", decodeErr)
		return result, nil
	}
	result.Body = &decoded
	return result, nil
}

// isJSONResponse treats a missing Content-Type as JSON.
func isJSONResponse(resp *resty.Response) bool {
	ct := resp.Header().Get("Content-Type")
	return ct == "" || resty.IsJSONType(ct)
}
