package domain

import "context"

// HTTPMethod is the verb of a transport request.
type HTTPMethod string

const (
	MethodGet    HTTPMethod = "get"
	MethodPost   HTTPMethod = "post"
	MethodPut    HTTPMethod = "put"
	MethodDelete HTTPMethod = "delete"
)

// HTTPStatusCode is the status returned by the transport.
type HTTPStatusCode int

const (
	StatusOK           HTTPStatusCode = 200
	StatusNoContent    HTTPStatusCode = 204
	StatusBadRequest   HTTPStatusCode = 400
	StatusUnauthorized HTTPStatusCode = 401
	StatusForbidden    HTTPStatusCode = 403
	StatusNotFound     HTTPStatusCode = 404
	StatusServerError  HTTPStatusCode = 500
)

// NoBody is the request payload type of requests that carry no body.
type NoBody struct{}

// HTTPRequest is a single transport request built by a use-case adapter.
type HTTPRequest[B any] struct {
	URL     string
	Method  HTTPMethod
	Body    *B
	Headers map[string]string
}

// HTTPResponse is what the transport delivered: a status and an optional body.
type HTTPResponse[T any] struct {
	StatusCode HTTPStatusCode
	Body       *T
}

// HTTPPostClient sends POST requests.
type HTTPPostClient[B, T any] interface {
	Post(ctx context.Context, req HTTPRequest[B]) (HTTPResponse[T], error)
}

// HTTPGetClient sends GET requests.
type HTTPGetClient[T any] interface {
	Get(ctx context.Context, req HTTPRequest[NoBody]) (HTTPResponse[T], error)
}

// HTTPPutClient sends PUT requests.
type HTTPPutClient[B, T any] interface {
	Put(ctx context.Context, req HTTPRequest[B]) (HTTPResponse[T], error)
}
