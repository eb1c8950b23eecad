package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestNotFoundError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "video",
			err:      NewNotFoundError("Video", "dQw4w9WgXcQ"),
			expected: "Video not found: dQw4w9WgXcQ",
		},
		{
			name:     "channel",
			err:      NewNotFoundError("Channel", "UC123"),
			expected: "Channel not found: UC123",
		},
		{
			name:     "without identifier",
			err:      NewNotFoundError("Channel", ""),
			expected: "Channel not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Playlist", "PL1")

	if err.Kind != KindNotFound {
		t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
	}
	if err.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", err.Status, http.StatusNotFound)
	}
	if err.EntityType != "Playlist" {
		t.Errorf("EntityType = %q, want %q", err.EntityType, "Playlist")
	}
	if err.Identifier != "PL1" {
		t.Errorf("Identifier = %q, want %q", err.Identifier, "PL1")
	}
	if err.Retryable {
		t.Error("NotFound must not be retryable")
	}
}

func TestTaxonomy(t *testing.T) {
	tests := []struct {
		name      string
		err       *Error
		kind      Kind
		status    int
		retryable bool
		code      string
		errName   string
	}{
		{"authentication", NewAuthenticationError(""), KindAuthentication, 401, false, "AUTHENTICATION_FAILED", "AuthenticationError"},
		{"forbidden", NewForbiddenError(""), KindForbidden, 403, false, "FORBIDDEN", "ForbiddenError"},
		{"quota", NewQuotaExceededError(""), KindQuotaExceeded, 403, false, "QUOTA_EXCEEDED", "QuotaExceededError"},
		{"not found", NewNotFoundError("Video", "x"), KindNotFound, 404, false, "NOT_FOUND", "NotFoundError"},
		{"rate limit", NewRateLimitError(0), KindRateLimit, 429, true, "RATE_LIMIT_EXCEEDED", "RateLimitError"},
		{"validation", NewValidationError("", nil), KindValidation, 400, false, "VALIDATION_ERROR", "ValidationError"},
		{"api", NewAPIError(500, "backend error"), KindAPI, 500, false, "API_ERROR", "YouTubeAPIError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if tt.err.Status != tt.status {
				t.Errorf("Status = %d, want %d", tt.err.Status, tt.status)
			}
			if tt.err.Retryable != tt.retryable {
				t.Errorf("Retryable = %v, want %v", tt.err.Retryable, tt.retryable)
			}
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %q, want %q", tt.err.Code(), tt.code)
			}
			if tt.err.Name() != tt.errName {
				t.Errorf("Name() = %q, want %q", tt.err.Name(), tt.errName)
			}
			if tt.err.Message == "" {
				t.Error("Message should not be empty")
			}
		})
	}
}

func TestNewRateLimitError(t *testing.T) {
	tests := []struct {
		name       string
		retryAfter time.Duration
		want       time.Duration
	}{
		{"explicit", 30 * time.Second, 30 * time.Second},
		{"zero kept", 0, 0},
		{"negative clamps to zero", -time.Second, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRateLimitError(tt.retryAfter)
			if err.RetryAfter != tt.want {
				t.Errorf("RetryAfter = %v, want %v", err.RetryAfter, tt.want)
			}
		})
	}
}

func TestNewAPIError(t *testing.T) {
	err := NewAPIError(503, "")
	if err.Error() != "YouTube API error 503: Service Unavailable" {
		t.Errorf("Error() = %q", err.Error())
	}

	err = NewAPIError(400, "Invalid value for part")
	if err.Error() != "YouTube API error 400: Invalid value for part" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestHelpers_Wrapped(t *testing.T) {
	notFound := fmt.Errorf("get video: %w", NewNotFoundError("Video", "abc"))
	rateLimited := fmt.Errorf("list: %w", NewRateLimitError(10*time.Second))
	validation := NewValidationError("bad input", map[string]string{"maxResults": "must be between 1 and 50"})
	plain := errors.New("boom")

	if !IsNotFound(notFound) {
		t.Error("IsNotFound should see through wrapping")
	}
	if IsNotFound(rateLimited) {
		t.Error("IsNotFound should be false for rate limit")
	}
	if !IsRetryable(rateLimited) {
		t.Error("IsRetryable should be true for rate limit")
	}
	if IsRetryable(plain) {
		t.Error("IsRetryable should be false for foreign errors")
	}
	if !IsValidation(validation) {
		t.Error("IsValidation should be true")
	}
	if _, ok := KindOf(plain); ok {
		t.Error("KindOf should report ok=false for foreign errors")
	}
	if e, ok := As(notFound); !ok || e.Identifier != "abc" {
		t.Errorf("As() = %v, %v", e, ok)
	}
}
