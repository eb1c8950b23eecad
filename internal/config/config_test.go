package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"YOUTUBE_API_BASE_URL", "YOUTUBE_UPLOAD_BASE_URL", "YOUTUBE_TIMEOUT", "YOUTUBE_USER_AGENT",
		"YOUTUBE_API_KEY", "YOUTUBE_ACCESS_TOKEN", "YOUTUBE_DEFAULT_FORMAT", "MCP_HTTP_ADDR",
		"MCP_RATE_LIMIT", "MCP_TRUST_PROXY", "MCP_MAX_BODY_BYTES", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.UploadBaseURL != DefaultUploadBaseURL {
		t.Errorf("UploadBaseURL = %q, want %q", cfg.UploadBaseURL, DefaultUploadBaseURL)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.DefaultFormat != "json" {
		t.Errorf("DefaultFormat = %q, want json", cfg.DefaultFormat)
	}
	if cfg.RateLimit != DefaultRateLimit {
		t.Errorf("RateLimit = %d, want %d", cfg.RateLimit, DefaultRateLimit)
	}
	if cfg.TrustProxy {
		t.Error("TrustProxy should default to false")
	}
	if cfg.MaxBodySize != DefaultMaxBodySize {
		t.Errorf("MaxBodySize = %d, want %d", cfg.MaxBodySize, DefaultMaxBodySize)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.HasCredentials() {
		t.Error("HasCredentials() should be false without env credentials")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("YOUTUBE_API_BASE_URL", "http://localhost:9999/youtube/v3")
	t.Setenv("YOUTUBE_TIMEOUT", "5s")
	t.Setenv("YOUTUBE_API_KEY", "AIza")
	t.Setenv("YOUTUBE_DEFAULT_FORMAT", "Markdown")
	t.Setenv("MCP_HTTP_ADDR", ":8080")
	t.Setenv("MCP_RATE_LIMIT", "30")
	t.Setenv("MCP_TRUST_PROXY", "true")
	t.Setenv("MCP_MAX_BODY_BYTES", "2048")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.BaseURL != "http://localhost:9999/youtube/v3" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if !cfg.HasCredentials() {
		t.Error("HasCredentials() should be true")
	}
	if cfg.DefaultFormat != "markdown" {
		t.Errorf("DefaultFormat = %q, want markdown", cfg.DefaultFormat)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.RateLimit != 30 {
		t.Errorf("RateLimit = %d, want 30", cfg.RateLimit)
	}
	if !cfg.TrustProxy {
		t.Error("TrustProxy should be true")
	}
	if cfg.MaxBodySize != 2048 {
		t.Errorf("MaxBodySize = %d, want 2048", cfg.MaxBodySize)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad timeout", "YOUTUBE_TIMEOUT", "soon"},
		{"negative timeout", "YOUTUBE_TIMEOUT", "-1s"},
		{"bad rate limit", "MCP_RATE_LIMIT", "lots"},
		{"bad body size", "MCP_MAX_BODY_BYTES", "0"},
		{"bad format", "YOUTUBE_DEFAULT_FORMAT", "xml"},
		{"bad log level", "LOG_LEVEL", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%q should fail", tt.key, tt.value)
			}
		})
	}
}
