// Package errors provides the error taxonomy shared by the YouTube client and the tool layer.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Kind identifies the failure mode of an Error.
type Kind int

const (
	KindAPI Kind = iota // Any other non-2xx upstream response
	KindAuthentication
	KindForbidden
	KindQuotaExceeded
	KindNotFound
	KindRateLimit
	KindValidation
)

// DefaultRetryAfter is used when a 429 response carries no usable Retry-After header.
const DefaultRetryAfter = 60 * time.Second

func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "AuthenticationError"
	case KindForbidden:
		return "ForbiddenError"
	case KindQuotaExceeded:
		return "QuotaExceededError"
	case KindNotFound:
		return "NotFoundError"
	case KindRateLimit:
		return "RateLimitError"
	case KindValidation:
		return "ValidationError"
	default:
		return "YouTubeAPIError"
	}
}

// Code returns the stable machine-readable code for the kind.
func (k Kind) Code() string {
	switch k {
	case KindAuthentication:
		return "AUTHENTICATION_FAILED"
	case KindForbidden:
		return "FORBIDDEN"
	case KindQuotaExceeded:
		return "QUOTA_EXCEEDED"
	case KindNotFound:
		return "NOT_FOUND"
	case KindRateLimit:
		return "RATE_LIMIT_EXCEEDED"
	case KindValidation:
		return "VALIDATION_ERROR"
	default:
		return "API_ERROR"
	}
}

// Error is the single error type raised by the client. Kind-specific fields are
// only populated for the kinds that use them.
type Error struct {
	Kind      Kind
	Message   string
	Status    int
	Retryable bool

	// RateLimit
	RetryAfter time.Duration

	// NotFound
	EntityType string
	Identifier string

	// Validation
	Fields map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// Name returns the kind name, e.g. "NotFoundError".
func (e *Error) Name() string {
	return e.Kind.String()
}

// Code returns the machine-readable error code.
func (e *Error) Code() string {
	return e.Kind.Code()
}

// NewAuthenticationError creates an AuthenticationFailed error.
func NewAuthenticationError(message string) *Error {
	if message == "" {
		message = "authentication failed: provide a valid OAuth access token or API key"
	}
	return &Error{Kind: KindAuthentication, Message: message, Status: http.StatusUnauthorized}
}

// NewForbiddenError creates a Forbidden error.
func NewForbiddenError(message string) *Error {
	if message == "" {
		message = "access forbidden: insufficient permissions for this operation"
	}
	return &Error{Kind: KindForbidden, Message: message, Status: http.StatusForbidden}
}

// NewQuotaExceededError creates a QuotaExceeded error.
func NewQuotaExceededError(message string) *Error {
	if message == "" {
		message = "YouTube API quota exceeded"
	}
	return &Error{Kind: KindQuotaExceeded, Message: message, Status: http.StatusForbidden}
}

// NewNotFoundError creates a NotFound error for a single-resource lookup.
func NewNotFoundError(entityType, identifier string) *Error {
	msg := fmt.Sprintf("%s not found: %s", entityType, identifier)
	if identifier == "" {
		msg = entityType + " not found"
	}
	return &Error{
		Kind:       KindNotFound,
		Message:    msg,
		Status:     http.StatusNotFound,
		EntityType: entityType,
		Identifier: identifier,
	}
}

// NewRateLimitError creates a retryable RateLimitExceeded error. retryAfter is kept
// as given; a negative value (an HTTP date in the past) becomes zero.
func NewRateLimitError(retryAfter time.Duration) *Error {
	if retryAfter < 0 {
		retryAfter = 0
	}
	return &Error{
		Kind:       KindRateLimit,
		Message:    fmt.Sprintf("rate limit exceeded, retry after %d seconds", int(retryAfter.Seconds())),
		Status:     http.StatusTooManyRequests,
		Retryable:  true,
		RetryAfter: retryAfter,
	}
}

// NewValidationError creates a Validation error with per-field details.
func NewValidationError(message string, fields map[string]string) *Error {
	if message == "" {
		message = "validation failed"
	}
	return &Error{Kind: KindValidation, Message: message, Status: http.StatusBadRequest, Fields: fields}
}

// NewAPIError creates a generic upstream error carrying the upstream status.
func NewAPIError(status int, message string) *Error {
	if message == "" {
		message = http.StatusText(status)
	}
	return &Error{
		Kind:    KindAPI,
		Message: fmt.Sprintf("YouTube API error %d: %s", status, message),
		Status:  status,
	}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of err, or KindAPI with ok=false for foreign errors.
func KindOf(err error) (Kind, bool) {
	if e, ok := As(err); ok {
		return e.Kind, true
	}
	return KindAPI, false
}

// IsNotFound returns true if err is a NotFound error.
func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}

// IsValidation returns true if err is a Validation error.
func IsValidation(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindValidation
}

// IsRetryable reports whether the caller may retry the failed call.
func IsRetryable(err error) bool {
	e, ok := As(err)
	return ok && e.Retryable
}
