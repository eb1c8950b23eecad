// Package youtube implements the YouTube Data API v3 operations exposed as MCP tools.
// Every operation maps one tool call onto one upstream request (two for read-then-write
// updates) and returns typed results from google.golang.org/api/youtube/v3.
package youtube

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/olgasafonova/youtube-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/youtube-mcp-server/internal/errors"
)

// Client wraps the base transport with YouTube resource operations.
type Client struct {
	base *base.Client
}

// NewClient creates a YouTube client. A nil base client gets the defaults.
func NewClient(b *base.Client) *Client {
	if b == nil {
		b = base.NewClient()
	}
	return &Client{base: b}
}

// Close releases idle connections
func (c *Client) Close() {
	c.base.Close()
}

// Output carries the per-call output format switch. It is embedded in every Args type.
type Output struct {
	Format string `json:"format,omitempty" jsonschema:"Output format: json (default) or markdown"`
}

// ResponseFormat returns the requested output format, empty for the server default.
func (o Output) ResponseFormat() string {
	return o.Format
}

// ActionResult reports the outcome of an operation whose upstream response has no body.
type ActionResult struct {
	Success  bool   `json:"success"`
	Action   string `json:"action"`
	Resource string `json:"resource"`
	ID       string `json:"id"`
	Detail   string `json:"detail,omitempty"`
}

func (r ActionResult) LogValue() slog.Value {
	return slog.GroupValue(slog.String("action", r.Action), slog.String("resource", r.Resource), slog.String("id", r.ID))
}

func done(action, resource, id string) ActionResult {
	return ActionResult{Success: true, Action: action, Resource: resource, ID: id}
}

// list fetches one page of a collection and normalizes it.
func list[T any](ctx context.Context, c *Client, path string, q base.Query) (Page[T], error) {
	var resp ListResponse[T]
	if err := c.base.Do(ctx, base.Request{Path: path, Query: q}, &resp); err != nil {
		return Page[T]{}, err
	}
	return NewPage(resp), nil
}

// getOne lists path filtered by id and returns the single match. An empty result set
// is reported as NotFound naming entity and id.
func getOne[T any](ctx context.Context, c *Client, path, entity, id string, q base.Query) (T, error) {
	var zero T
	q.Set("id", id)

	var resp ListResponse[T]
	err := c.base.Do(ctx, base.Request{Path: path, Query: q, Entity: entity, ID: id}, &resp)
	if err != nil {
		return zero, err
	}
	if len(resp.Items) == 0 {
		return zero, apierrors.NewNotFoundError(entity, id)
	}
	return resp.Items[0], nil
}

// write sends body with method and decodes the returned resource.
func write[T any](ctx context.Context, c *Client, method, path string, q base.Query, body any) (T, error) {
	var out T
	err := c.base.Do(ctx, base.Request{Method: method, Path: path, Query: q, Body: body}, &out)
	return out, err
}

// remove issues a DELETE for id.
func (c *Client) remove(ctx context.Context, path, entity, resource, id string) (ActionResult, error) {
	q := base.Query{}
	q.Set("id", id)
	err := c.base.Do(ctx, base.Request{Method: http.MethodDelete, Path: path, Query: q, Entity: entity, ID: id}, nil)
	if err != nil {
		return ActionResult{}, err
	}
	return done("delete", resource, id), nil
}

// parts joins the requested parts or falls back to def.
func parts(requested []string, def string) string {
	kept := make([]string, 0, len(requested))
	for _, p := range requested {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return def
	}
	return strings.Join(kept, ",")
}

// merge overwrites *dst with *src when src is set.
func merge[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

