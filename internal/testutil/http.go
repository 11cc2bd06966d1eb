package testutil

import (
	"context"
	"sync"

	"surveyor/internal/domain"
)

// HTTPClientSpy is a POST/PUT transport double. It records every request and
// replies with Response, or with Err when set.
type HTTPClientSpy[B, T any] struct {
	mu sync.Mutex

	URL      string
	Method   domain.HTTPMethod
	Body     *B
	Headers  map[string]string
	Calls    int
	Response domain.HTTPResponse[T]
	Err      error
}

// NewHTTPClientSpy returns a spy answering 200 with no body.
func NewHTTPClientSpy[B, T any]() *HTTPClientSpy[B, T] {
	return &HTTPClientSpy[B, T]{
		Response: domain.HTTPResponse[T]{StatusCode: domain.StatusOK},
	}
}

// Post records a POST request.
func (s *HTTPClientSpy[B, T]) Post(_ context.Context, req domain.HTTPRequest[B]) (domain.HTTPResponse[T], error) {
	return s.record(req)
}

// Put records a PUT request.
func (s *HTTPClientSpy[B, T]) Put(_ context.Context, req domain.HTTPRequest[B]) (domain.HTTPResponse[T], error) {
	return s.record(req)
}

func (s *HTTPClientSpy[B, T]) record(req domain.HTTPRequest[B]) (domain.HTTPResponse[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.URL = req.URL
	s.Method = req.Method
	s.Body = req.Body
	s.Headers = req.Headers
	s.Calls++
	return s.Response, s.Err
}

// HTTPGetClientSpy is a GET transport double.
type HTTPGetClientSpy[T any] struct {
	mu sync.Mutex

	URL      string
	Method   domain.HTTPMethod
	Headers  map[string]string
	Calls    int
	Response domain.HTTPResponse[T]
	Err      error
}

// NewHTTPGetClientSpy returns a spy answering 200 with no body.
func NewHTTPGetClientSpy[T any]() *HTTPGetClientSpy[T] {
	return &HTTPGetClientSpy[T]{
		Response: domain.HTTPResponse[T]{StatusCode: domain.StatusOK},
	}
}

// Get records a GET request.
func (s *HTTPGetClientSpy[T]) Get(_ context.Context, req domain.HTTPRequest[domain.NoBody]) (domain.HTTPResponse[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.URL = req.URL
	s.Method = req.Method
	s.Headers = req.Headers
	s.Calls++
	return s.Response, s.Err
}
