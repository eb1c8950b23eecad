// Package auth resolves per-call YouTube credentials from request metadata and
// carries them through the request context.
package auth

import (
	"context"
	"net/http"
	"strings"

	apierrors "github.com/olgasafonova/youtube-mcp-server/internal/errors"
)

// Header names accepted on inbound requests.
const (
	HeaderAuthorization = "Authorization"
	HeaderAccessToken   = "X-YouTube-Access-Token"
	HeaderAPIKey        = "X-YouTube-API-Key"
)

// Credentials holds the tenant credentials for one call. Either field may be empty.
type Credentials struct {
	AccessToken string
	APIKey      string
}

// FromHeaders extracts credentials from request headers. It never fails; an
// empty result is rejected later by Validate or at first upstream use.
func FromHeaders(h http.Header) Credentials {
	var c Credentials
	if h == nil {
		return c
	}

	if v := strings.TrimSpace(h.Get(HeaderAuthorization)); v != "" {
		scheme, token, ok := strings.Cut(v, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			c.AccessToken = strings.TrimSpace(token)
		}
	}
	if c.AccessToken == "" {
		c.AccessToken = strings.TrimSpace(h.Get(HeaderAccessToken))
	}
	c.APIKey = strings.TrimSpace(h.Get(HeaderAPIKey))
	return c
}

// IsZero reports whether neither credential is present.
func (c Credentials) IsZero() bool {
	return c.AccessToken == "" && c.APIKey == ""
}

// HasAccessToken reports whether an OAuth access token is present.
func (c Credentials) HasAccessToken() bool {
	return c.AccessToken != ""
}

// Merge returns fallback only when c carries no credential at all. A caller that
// supplies either value is never mixed with the configured defaults.
func (c Credentials) Merge(fallback Credentials) Credentials {
	if !c.IsZero() {
		return c
	}
	return fallback
}

// Validate rejects credentials that carry neither an access token nor an API key.
func (c Credentials) Validate() error {
	if c.IsZero() {
		return apierrors.NewAuthenticationError(
			"missing credentials: provide an OAuth access token (Authorization: Bearer or " +
				HeaderAccessToken + ") or an API key (" + HeaderAPIKey + ")")
	}
	return nil
}

// Mode names the credential that will be used upstream, for logs and spans.
func (c Credentials) Mode() string {
	switch {
	case c.AccessToken != "":
		return "oauth"
	case c.APIKey != "":
		return "api_key"
	default:
		return "none"
	}
}

type contextKey struct{}

// WithCredentials returns a context carrying c.
func WithCredentials(ctx context.Context, c Credentials) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the credentials stored in ctx, if any.
func FromContext(ctx context.Context) (Credentials, bool) {
	c, ok := ctx.Value(contextKey{}).(Credentials)
	return c, ok
}
