// Package base provides the HTTP transport shared by every YouTube Data API operation:
// query composition, credential attachment, status-code mapping and body decoding.
package base

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"github.com/olgasafonova/youtube-mcp-server/internal/auth"
	apierrors "github.com/olgasafonova/youtube-mcp-server/internal/errors"
	"github.com/olgasafonova/youtube-mcp-server/metrics"
	"github.com/olgasafonova/youtube-mcp-server/tracing"
)

const (
	// DefaultTimeout for API requests
	DefaultTimeout = 30 * time.Second

	// DefaultBaseURL is the YouTube Data API v3 endpoint
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// DefaultUploadURL is the media upload endpoint
	DefaultUploadURL = "https://www.googleapis.com/upload/youtube/v3"

	// DefaultUserAgent is sent when no custom user agent is configured
	DefaultUserAgent = "youtube-mcp-server/1.0"
)

// Client performs every upstream call. It holds no per-call state.
type Client struct {
	HTTPClient *http.Client
	Logger     *slog.Logger
	BaseURL    string
	UploadURL  string
	UserAgent  string
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.HTTPClient = c
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.Logger = l
	}
}

// WithBaseURL overrides the API endpoint
func WithBaseURL(u string) ClientOption {
	return func(client *Client) {
		client.BaseURL = strings.TrimRight(u, "/")
	}
}

// WithUploadURL overrides the media upload endpoint
func WithUploadURL(u string) ClientOption {
	return func(client *Client) {
		client.UploadURL = strings.TrimRight(u, "/")
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) ClientOption {
	return func(client *Client) {
		client.UserAgent = ua
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(client *Client) {
		client.HTTPClient = newHTTPClient(d)
	}
}

// NewClient creates a new base client with default settings
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		HTTPClient: newHTTPClient(DefaultTimeout),
		Logger:     slog.Default(),
		BaseURL:    DefaultBaseURL,
		UploadURL:  DefaultUploadURL,
		UserAgent:  DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Close releases idle connections held by the client
func (c *Client) Close() {
	if c.HTTPClient != nil {
		c.HTTPClient.CloseIdleConnections()
	}
}

// Media is a binary payload sent alongside JSON metadata in a multipart upload.
type Media struct {
	ContentType string
	Content     []byte
}

// Request describes a single upstream call.
type Request struct {
	Method string
	Path   string // e.g. "/videos"
	Query  Query

	// Body is JSON-encoded when non-nil. With Media set it becomes the metadata part.
	Body any

	// Media switches the request to the upload endpoint as a multipart/related body.
	Media *Media

	// Entity and ID name the resource in NotFound errors raised from a 404.
	Entity string
	ID     string
}

// Do executes req with the credentials carried by ctx and decodes the response into out.
// out may be nil (response discarded), *string (raw body) or any JSON target.
// A 204 response or empty body leaves out untouched.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	creds, _ := auth.FromContext(ctx)
	if err := creds.Validate(); err != nil {
		metrics.AuthFailures.WithLabelValues("missing_credentials").Inc()
		return err
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	resource := resourceName(req.Path)

	ctx, span := tracing.StartUpstreamSpan(ctx, method, req.Path, resource, creds.Mode())
	defer span.End()

	httpReq, err := c.newRequest(ctx, method, req, creds)
	if err != nil {
		tracing.RecordError(span, err)
		return err
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		metrics.RecordAPICall(resource, method, time.Since(start).Seconds(), false, "TRANSPORT")
		tracing.RecordError(span, err)
		c.Logger.Warn("YouTube API request failed",
			"method", method,
			"path", req.Path,
			"error", err)
		return fmt.Errorf("request failed: %w", err)
	}

	body, err := readAndClose(resp)
	duration := time.Since(start).Seconds()
	tracing.AddResponseAttributes(span, resp.StatusCode)
	if err != nil {
		metrics.RecordAPICall(resource, method, duration, false, "READ")
		tracing.RecordError(span, err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := checkResponse(resp, body, req); err != nil {
		code := "UNKNOWN"
		if e, ok := apierrors.As(err); ok {
			code = e.Code()
			if e.Kind == apierrors.KindAuthentication {
				metrics.AuthFailures.WithLabelValues("upstream_rejected").Inc()
			}
		}
		metrics.RecordAPICall(resource, method, duration, false, code)
		tracing.RecordError(span, err)
		c.Logger.Warn("YouTube API returned an error",
			"method", method,
			"path", req.Path,
			"status", resp.StatusCode,
			"error", err)
		return err
	}

	metrics.RecordAPICall(resource, method, duration, true, "")

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(body)) == 0 || out == nil {
		return nil
	}

	if s, ok := out.(*string); ok {
		*s = string(body)
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// newRequest builds the HTTP request: endpoint selection, query, auth and body.
func (c *Client) newRequest(ctx context.Context, method string, req Request, creds auth.Credentials) (*http.Request, error) {
	base := c.BaseURL
	q := req.Query.Values()
	if req.Media != nil {
		base = c.UploadURL
		q.Set("uploadType", "multipart")
	}
	if !creds.HasAccessToken() {
		q.Set("key", creds.APIKey)
	}

	reqURL := base + req.Path
	if encoded := q.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case req.Media != nil:
		buf, ct, err := multipartBody(req.Body, req.Media)
		if err != nil {
			return nil, err
		}
		body, contentType = buf, ct
	case req.Body != nil:
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body, contentType = bytes.NewReader(data), "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if c.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.UserAgent)
	}
	if creds.HasAccessToken() {
		token := &oauth2.Token{AccessToken: creds.AccessToken, TokenType: "Bearer"}
		token.SetAuthHeader(httpReq)
	}

	return httpReq, nil
}

// multipartBody encodes metadata as the JSON part and media as the second part.
func multipartBody(metadata any, media *Media) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	meta, err := json.Marshal(metadata)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode upload metadata: %w", err)
	}

	part, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {"application/json; charset=UTF-8"}})
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(meta); err != nil {
		return nil, "", err
	}

	contentType := media.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	part, err = w.CreatePart(textproto.MIMEHeader{"Content-Type": {contentType}})
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(media.Content); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, "multipart/related; boundary=" + w.Boundary(), nil
}

// checkResponse maps a non-2xx response onto the error taxonomy.
func checkResponse(resp *http.Response, body []byte, req Request) error {
	status := resp.StatusCode
	if status >= 200 && status < 300 {
		return nil
	}

	msg := upstreamMessage(resp, body)

	switch status {
	case http.StatusTooManyRequests:
		retryAfter, ok := parseRetryAfter(resp.Header.Get("Retry-After"))
		if !ok {
			retryAfter = apierrors.DefaultRetryAfter
		}
		return apierrors.NewRateLimitError(retryAfter)
	case http.StatusUnauthorized:
		return apierrors.NewAuthenticationError("authentication failed: " + msg)
	case http.StatusForbidden:
		if strings.Contains(strings.ToLower(string(body)), "quota") {
			return apierrors.NewQuotaExceededError("YouTube API quota exceeded: " + msg)
		}
		return apierrors.NewForbiddenError("access forbidden: " + msg)
	case http.StatusNotFound:
		entity := req.Entity
		if entity == "" {
			entity = "Resource"
		}
		return apierrors.NewNotFoundError(entity, req.ID)
	default:
		return apierrors.NewAPIError(status, msg)
	}
}

// upstreamMessage extracts the human-readable message from a Google API error body.
func upstreamMessage(resp *http.Response, body []byte) string {
	probe := &http.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       io.NopCloser(bytes.NewReader(body)),
	}
	var gerr *googleapi.Error
	if errors.As(googleapi.CheckResponse(probe), &gerr) && gerr.Message != "" {
		return gerr.Message
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return truncate(text, 200)
	}
	return http.StatusText(resp.StatusCode)
}

// parseRetryAfter accepts delta-seconds or an HTTP date. ok is false when the
// header is absent or unparsable.
func parseRetryAfter(v string) (time.Duration, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	if seconds, err := strconv.Atoi(v); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second, true
	}
	if t, err := http.ParseTime(v); err == nil {
		d := time.Until(t).Round(time.Second)
		if d < 0 {
			d = 0
		}
		return d, true
	}
	return 0, false
}

// resourceName returns the first path segment, used as a metrics label.
func resourceName(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "unknown"
	}
	return path
}

// readAndClose reads the response body and closes it
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// newHTTPClient creates an HTTP client with optimized transport settings
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		MaxConnsPerHost:       50,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		DisableCompression:    false,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
