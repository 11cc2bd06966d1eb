// Package errors provides the error vocabulary for surveyor.
//
// The domain taxonomy is closed: every remote use-case outcome that is not a
// success is one of InvalidCredentials, AccessDenied or Unexpected. The
// configuration and validation types cover local setup problems.
package errors

import (
	"errors"
	"fmt"
)

// Error categories for local operations
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrConfiguration = errors.New("configuration error")
)

// Kind identifies a domain error.
type Kind int

const (
	KindUnexpected Kind = iota
	KindInvalidCredentials
	KindAccessDenied
)

func (k Kind) String() string {
	switch k {
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindAccessDenied:
		return "access_denied"
	default:
		return "unexpected"
	}
}

// Message is the fixed, user-facing text of the kind.
func (k Kind) Message() string {
	switch k {
	case KindInvalidCredentials:
		return "invalid credentials"
	case KindAccessDenied:
		return "access denied"
	default:
		return "something went wrong, please try again soon"
	}
}

// DomainError is a translated use-case failure. Two domain errors match under
// errors.Is when their kinds are equal; the cause never affects the message.
type DomainError struct {
	kind  Kind
	cause error
}

// Domain error values, one per kind.
var (
	ErrInvalidCredentials = &DomainError{kind: KindInvalidCredentials}
	ErrAccessDenied       = &DomainError{kind: KindAccessDenied}
	ErrUnexpected         = &DomainError{kind: KindUnexpected}
)

func (e *DomainError) Error() string {
	return e.kind.Message()
}

// Kind returns the kind of the error.
func (e *DomainError) Kind() Kind {
	return e.kind
}

func (e *DomainError) Unwrap() error {
	return e.cause
}

func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.kind == e.kind
}

// NewUnexpectedError wraps a lower-level failure as an unexpected domain error.
func NewUnexpectedError(cause error) *DomainError {
	return &DomainError{kind: KindUnexpected, cause: cause}
}

// KindOf reports the domain kind of err. The second result is false when err
// carries no domain error.
func KindOf(err error) (Kind, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.kind, true
	}
	return KindUnexpected, false
}

// IsInvalidCredentials checks if an error is a rejected login
func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsAccessDenied checks if an error is a rejected session
func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

// IsUnexpected checks if an error is the catch-all domain failure
func IsUnexpected(err error) bool {
	return errors.Is(err, ErrUnexpected)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func (e *ConfigurationError) Is(target error) bool {
	return errors.Is(target, ErrConfiguration)
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(field, value, message string, err error) *ConfigurationError {
	return &ConfigurationError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// IsConfiguration checks if an error is configuration-related
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string
	Value   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return errors.Is(target, ErrInvalidInput)
}

// NewValidationError creates a new validation error
func NewValidationError(field, value, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}

// IsValidation checks if an error is validation-related
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
