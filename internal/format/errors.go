package format

import (
	"encoding/json"
	"fmt"

	apierrors "github.com/olgasafonova/youtube-mcp-server/internal/errors"
)

// ErrorDetails is the machine-readable half of an error payload.
type ErrorDetails struct {
	Name              string            `json:"name"`
	Message           string            `json:"message"`
	Code              string            `json:"code"`
	Status            int               `json:"status"`
	Retryable         bool              `json:"retryable"`
	RetryAfterSeconds *int              `json:"retryAfterSeconds,omitempty"`
	Fields            map[string]string `json:"fields,omitempty"`
	EntityType        string            `json:"entityType,omitempty"`
	Identifier        string            `json:"identifier,omitempty"`
}

// Payload is a rendered failure: a one-line message plus details.
type Payload struct {
	Message string       `json:"message"`
	Details ErrorDetails `json:"details"`
}

// FormatError renders any error. Errors outside the taxonomy get name "Error" and status 0.
func FormatError(err error) Payload {
	if err == nil {
		err = fmt.Errorf("unknown error")
	}

	e, ok := apierrors.As(err)
	if !ok {
		return Payload{
			Message: "Error: " + err.Error(),
			Details: ErrorDetails{Name: "Error", Message: err.Error(), Code: "UNKNOWN_ERROR"},
		}
	}

	d := ErrorDetails{
		Name:      e.Name(),
		Message:   e.Message,
		Code:      e.Code(),
		Status:    e.Status,
		Retryable: e.Retryable,
		Fields:    e.Fields,
	}
	switch e.Kind {
	case apierrors.KindRateLimit:
		secs := int(e.RetryAfter.Seconds())
		d.RetryAfterSeconds = &secs
	case apierrors.KindNotFound:
		d.EntityType = e.EntityType
		d.Identifier = e.Identifier
	}

	msg := "Error: " + e.Message
	if e.Retryable {
		msg += " (retryable)"
	}
	return Payload{Message: msg, Details: d}
}

// Text renders the payload as the message followed by the details as JSON.
func (p Payload) Text() string {
	data, err := json.MarshalIndent(p.Details, "", "  ")
	if err != nil {
		return p.Message
	}
	return p.Message + "\n\n" + string(data)
}

// PanicError converts a recovered panic value into an error.
func PanicError(v any) error {
	switch x := v.(type) {
	case error:
		return fmt.Errorf("internal error: %w", x)
	case string:
		return fmt.Errorf("internal error: %s", x)
	default:
		return fmt.Errorf("internal error: %v", x)
	}
}
