// YouTube MCP Server - A Model Context Protocol server for the YouTube Data API v3
// Exposes search, videos, channels, playlists, comments, subscriptions, captions and
// channel administration as MCP tools over stdio or streamable HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/olgasafonova/youtube-mcp-server/internal/auth"
	"github.com/olgasafonova/youtube-mcp-server/internal/base"
	"github.com/olgasafonova/youtube-mcp-server/internal/config"
	"github.com/olgasafonova/youtube-mcp-server/internal/format"
	"github.com/olgasafonova/youtube-mcp-server/internal/infra"
	"github.com/olgasafonova/youtube-mcp-server/internal/youtube"
	"github.com/olgasafonova/youtube-mcp-server/metrics"
	"github.com/olgasafonova/youtube-mcp-server/tools"
	"github.com/olgasafonova/youtube-mcp-server/tracing"
)

// recoverPanic logs a recovered panic instead of crashing the process
func recoverPanic(logger *slog.Logger, operation string) {
	if r := recover(); r != nil {
		metrics.PanicsRecovered.WithLabelValues(operation).Inc()
		logger.Error("Panic recovered",
			"operation", operation,
			"panic", r,
			"stack", string(debug.Stack()))
	}
}

const (
	ServerName    = "youtube-mcp-server"
	ServerVersion = "1.0.0"
)

const instructions = `YouTube MCP Server exposes the YouTube Data API v3 as tools.

Tool families:
- Search: youtube_search, youtube_search_videos, youtube_search_channels, youtube_search_playlists
- Videos: list, get, update, delete, rate, get rating, report abuse
- Channels: list, get, get my channel, update branding, activities, channel sections
- Playlists and playlist items: list, get, create, update, delete, add/move/remove videos
- Comments: threads, replies, post, reply, edit, delete, moderate
- Subscriptions, captions (list, upload, update, delete, download), memberships
- Reference data: languages, regions, video categories, abuse report reasons

Every tool accepts format: "json" (default) or "markdown". List tools return
nextPageToken when more results exist; pass it back as pageToken.

Credentials:
- An API key is enough for public data. Owner actions and "mine" lookups need an OAuth access token.
- Over HTTP, send Authorization: Bearer <token>, X-YouTube-Access-Token or X-YouTube-API-Key.
- YOUTUBE_API_KEY / YOUTUBE_ACCESS_TOKEN are used when a call carries no credentials.`

func main() {
	httpAddr := flag.String("http", "", "Serve the streamable HTTP transport on this address (default: stdio)")
	flag.Parse()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *httpAddr != "" {
		cfg.HTTPAddr = *httpAddr
	}

	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig(ServerVersion))
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	client := youtube.NewClient(base.NewClient(
		base.WithLogger(logger),
		base.WithBaseURL(cfg.BaseURL),
		base.WithUploadURL(cfg.UploadBaseURL),
		base.WithTimeout(cfg.Timeout),
		base.WithUserAgent(cfg.UserAgent),
	))
	defer client.Close()

	server := newServer(cfg, client, logger)

	logger.Info("Starting YouTube MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"api_url", cfg.BaseURL,
		"default_credentials", cfg.HasCredentials(),
		"transport", transportName(cfg),
	)

	if cfg.HTTPAddr == "" {
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	if err := serveHTTP(ctx, cfg, server, logger); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func transportName(cfg *config.Config) string {
	if cfg.HTTPAddr != "" {
		return "http"
	}
	return "stdio"
}

// newServer creates the MCP server with every tool registered.
func newServer(cfg *config.Config, client *youtube.Client, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: instructions,
	})

	defaults := auth.Credentials{APIKey: cfg.APIKey, AccessToken: cfg.AccessToken}
	defaultFormat, err := format.Parse(cfg.DefaultFormat)
	if err != nil {
		logger.Warn("Unknown default format, using json", "format", cfg.DefaultFormat)
		defaultFormat = format.JSON
	}

	registry := tools.NewHandlerRegistry(client, defaults, defaultFormat, logger)
	registry.RegisterAll(server)
	return server
}

// newHTTPHandler routes /mcp through the security middleware and exposes health and metrics.
func newHTTPHandler(cfg *config.Config, server *mcp.Server, logger *slog.Logger) (http.Handler, *SecurityMiddleware) {
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	security := NewSecurityMiddleware(mcpHandler, logger, SecurityConfig{
		RateLimit:   cfg.RateLimit,
		MaxBodySize: cfg.MaxBodySize,
		TrustProxy:  cfg.TrustProxy,
	})

	mux := http.NewServeMux()
	mux.Handle("/mcp", security)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())
	return mux, security
}

func serveHTTP(ctx context.Context, cfg *config.Config, server *mcp.Server, logger *slog.Logger) error {
	handler, security := newHTTPHandler(cfg, server, logger)
	defer security.Close()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("HTTP shutdown failed", "error", err)
		}
	}()

	logger.Info("Listening", "addr", cfg.HTTPAddr, "rate_limit_per_minute", cfg.RateLimit)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// SecurityConfig configures the inbound HTTP protections
type SecurityConfig struct {
	// RateLimit is requests per minute per client; 0 disables limiting
	RateLimit int

	// MaxBodySize caps request bodies in bytes; 0 disables the cap
	MaxBodySize int64

	// TrustProxy takes the client address from X-Forwarded-For
	TrustProxy bool
}

// SecurityMiddleware applies per-client rate limiting and body size caps
type SecurityMiddleware struct {
	next    http.Handler
	logger  *slog.Logger
	config  SecurityConfig
	limiter *infra.RateLimiter
}

// NewSecurityMiddleware wraps next with the configured protections
func NewSecurityMiddleware(next http.Handler, logger *slog.Logger, config SecurityConfig) *SecurityMiddleware {
	return &SecurityMiddleware{
		next:    next,
		logger:  logger,
		config:  config,
		limiter: infra.NewRateLimiter(config.RateLimit, time.Minute),
	}
}

func (m *SecurityMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer recoverPanic(m.logger, "http"+r.URL.Path)

	ip := clientIP(r, m.config.TrustProxy)
	if !m.limiter.Allow(ip) {
		metrics.RateLimitRejections.Inc()
		m.logger.Warn("Rate limit exceeded", "client", ip, "path", r.URL.Path)
		w.Header().Set("Retry-After", "60")
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
		return
	}

	if m.config.MaxBodySize > 0 && r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, m.config.MaxBodySize)
	}

	m.next.ServeHTTP(w, r)
}

// Close stops the limiter's background cleanup
func (m *SecurityMiddleware) Close() {
	m.limiter.Close()
}

// clientIP returns the address used as the rate limiting key
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
