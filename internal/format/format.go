// Package format renders tool results as pretty JSON or markdown, and errors as
// structured payloads.
package format

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format selects the payload rendering
type Format string

const (
	JSON     Format = "json"
	Markdown Format = "markdown"
)

// Parse resolves a format name. Empty selects JSON.
func Parse(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", JSON:
		return JSON, nil
	case Markdown:
		return Markdown, nil
	default:
		return "", fmt.Errorf("unknown format %q: must be json or markdown", s)
	}
}

// Render produces the text payload for v. entity names the element type of a page
// (or the type of a single object) and picks the markdown layout.
func Render(v any, f Format, entity string) (string, error) {
	switch f {
	case Markdown:
		return renderMarkdown(v, entity)
	case JSON, "":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode result: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown format %q", f)
	}
}
