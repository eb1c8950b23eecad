// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL       = "https://www.googleapis.com/youtube/v3"
	DefaultUploadBaseURL = "https://www.googleapis.com/upload/youtube/v3"
	DefaultTimeout       = 30 * time.Second
	DefaultUserAgent     = "youtube-mcp-server/1.0 (github.com/olgasafonova/youtube-mcp-server)"
	DefaultRateLimit     = 120 // requests per minute per client, HTTP transport only
	DefaultMaxBodySize   = 10 << 20
)

// Config holds server and upstream settings
type Config struct {
	// BaseURL is the YouTube Data API endpoint
	BaseURL string

	// UploadBaseURL is the media upload endpoint (caption tracks)
	UploadBaseURL string

	// Timeout for upstream requests
	Timeout time.Duration

	// UserAgent identifies the server to the upstream API
	UserAgent string

	// APIKey and AccessToken are fallback credentials used when a call carries none
	APIKey      string
	AccessToken string

	// DefaultFormat is the output format used when a tool call does not pick one
	DefaultFormat string

	// HTTPAddr enables the streamable HTTP transport when non-empty
	HTTPAddr string

	// RateLimit is the per-client request budget per minute on the HTTP transport
	RateLimit int

	// TrustProxy takes the client address from X-Forwarded-For
	TrustProxy bool

	// MaxBodySize caps inbound HTTP request bodies in bytes
	MaxBodySize int64

	LogLevel slog.Level
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		BaseURL:       envOr("YOUTUBE_API_BASE_URL", DefaultBaseURL),
		UploadBaseURL: envOr("YOUTUBE_UPLOAD_BASE_URL", DefaultUploadBaseURL),
		Timeout:       DefaultTimeout,
		UserAgent:     envOr("YOUTUBE_USER_AGENT", DefaultUserAgent),
		APIKey:        strings.TrimSpace(os.Getenv("YOUTUBE_API_KEY")),
		AccessToken:   strings.TrimSpace(os.Getenv("YOUTUBE_ACCESS_TOKEN")),
		DefaultFormat: strings.ToLower(envOr("YOUTUBE_DEFAULT_FORMAT", "json")),
		HTTPAddr:      strings.TrimSpace(os.Getenv("MCP_HTTP_ADDR")),
		RateLimit:     DefaultRateLimit,
		TrustProxy:    os.Getenv("MCP_TRUST_PROXY") == "true",
		MaxBodySize:   DefaultMaxBodySize,
		LogLevel:      slog.LevelInfo,
	}

	if t := os.Getenv("YOUTUBE_TIMEOUT"); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid YOUTUBE_TIMEOUT %q: must be a positive duration", t)
		}
		cfg.Timeout = d
	}

	if r := os.Getenv("MCP_RATE_LIMIT"); r != "" {
		n, err := strconv.Atoi(r)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid MCP_RATE_LIMIT %q: must be a non-negative integer", r)
		}
		cfg.RateLimit = n
	}

	if b := os.Getenv("MCP_MAX_BODY_BYTES"); b != "" {
		n, err := strconv.ParseInt(b, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid MCP_MAX_BODY_BYTES %q: must be a positive integer", b)
		}
		cfg.MaxBodySize = n
	}

	switch cfg.DefaultFormat {
	case "json", "markdown":
	default:
		return nil, fmt.Errorf("invalid YOUTUBE_DEFAULT_FORMAT %q: must be json or markdown", cfg.DefaultFormat)
	}

	if l := os.Getenv("LOG_LEVEL"); l != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(l)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", l, err)
		}
	}

	return cfg, nil
}

// HasCredentials returns true if fallback credentials are configured
func (c *Config) HasCredentials() bool {
	return c.APIKey != "" || c.AccessToken != ""
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
