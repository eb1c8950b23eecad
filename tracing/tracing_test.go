package tracing

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	apierrors "github.com/olgasafonova/youtube-mcp-server/internal/errors"
)

// recordSpans installs an in-memory tracer provider for the duration of the test.
func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	prev := otel.GetTracerProvider()
	sr := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return sr
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]any {
	m := map[attribute.Key]any{}
	for _, kv := range span.Attributes() {
		m[kv.Key] = kv.Value.AsInterface()
	}
	return m
}

func TestDefaultConfig(t *testing.T) {
	tests := []struct {
		name         string
		env          map[string]string
		wantEnabled  bool
		wantInsecure bool
		wantEnv      string
		wantRate     float64
	}{
		{
			name:     "defaults",
			wantEnv:  "development",
			wantRate: 1.0,
		},
		{
			name:        "enabled explicitly",
			env:         map[string]string{"OTEL_ENABLED": "true", "OTEL_ENVIRONMENT": "production"},
			wantEnabled: true,
			wantEnv:     "production",
			wantRate:    1.0,
		},
		{
			name:         "endpoint enables tracing",
			env:          map[string]string{"OTEL_EXPORTER_OTLP_ENDPOINT": "localhost:4318", "OTEL_EXPORTER_OTLP_INSECURE": "true"},
			wantEnabled:  true,
			wantInsecure: true,
			wantEnv:      "development",
			wantRate:     1.0,
		},
		{
			name:     "sample rate",
			env:      map[string]string{"OTEL_TRACES_SAMPLER_ARG": "0.25"},
			wantEnv:  "development",
			wantRate: 0.25,
		},
		{
			name:     "bad sample rate falls back",
			env:      map[string]string{"OTEL_TRACES_SAMPLER_ARG": "half"},
			wantEnv:  "development",
			wantRate: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"OTEL_ENABLED", "OTEL_ENVIRONMENT", "OTEL_EXPORTER_OTLP_ENDPOINT",
				"OTEL_EXPORTER_OTLP_INSECURE", "OTEL_TRACES_SAMPLER_ARG", "OTEL_SERVICE_NAME"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := DefaultConfig("2.3.4")
			if cfg.ServiceName != "youtube-mcp-server" || cfg.ServiceVersion != "2.3.4" {
				t.Errorf("service = %s@%s", cfg.ServiceName, cfg.ServiceVersion)
			}
			if cfg.Enabled != tt.wantEnabled {
				t.Errorf("Enabled = %v, want %v", cfg.Enabled, tt.wantEnabled)
			}
			if cfg.OTLPInsecure != tt.wantInsecure {
				t.Errorf("OTLPInsecure = %v, want %v", cfg.OTLPInsecure, tt.wantInsecure)
			}
			if cfg.Environment != tt.wantEnv {
				t.Errorf("Environment = %q, want %q", cfg.Environment, tt.wantEnv)
			}
			if cfg.SampleRate != tt.wantRate {
				t.Errorf("SampleRate = %v, want %v", cfg.SampleRate, tt.wantRate)
			}
		})
	}
}

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{Enabled: false})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown returned error: %v", err)
	}
}

func TestSetup_ConsoleExporterUsesWriter(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	shutdown, err := Setup(context.Background(), Config{
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
		Environment:    "test",
		Enabled:        true,
		Writer:         &buf,
		SampleRate:     1.0,
	})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	_, span := StartToolSpan(context.Background(), "youtube_get_video", "videos", "req-1", true)
	span.End()

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"mcp.tool.youtube_get_video", "req-1", "test-service"} {
		if !strings.Contains(out, want) {
			t.Errorf("exported span missing %q:\n%s", want, out)
		}
	}
}

func TestSampler(t *testing.T) {
	tid := trace.TraceID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	sampledParent := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    tid,
		SpanID:     trace.SpanID{1, 2, 3, 4, 5, 6, 7, 8},
		TraceFlags: trace.FlagsSampled,
		Remote:     true,
	}))

	tests := []struct {
		name   string
		rate   float64
		parent context.Context
		want   sdktrace.SamplingDecision
	}{
		{"root always", 1.0, context.Background(), sdktrace.RecordAndSample},
		{"root never", 0, context.Background(), sdktrace.Drop},
		{"sampled parent wins over rate", 0, sampledParent, sdktrace.RecordAndSample},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sampler(tt.rate).ShouldSample(sdktrace.SamplingParameters{
				ParentContext: tt.parent,
				TraceID:       tid,
				Name:          "mcp.tool.youtube_search",
			})
			if got.Decision != tt.want {
				t.Errorf("Decision = %v, want %v", got.Decision, tt.want)
			}
		})
	}
}

func TestStartToolSpan(t *testing.T) {
	sr := recordSpans(t)

	_, span := StartToolSpan(context.Background(), "youtube_delete_video", "videos", "req-42", false)
	span.End()

	ended := sr.Ended()
	if len(ended) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(ended))
	}
	s := ended[0]
	if s.Name() != "mcp.tool.youtube_delete_video" {
		t.Errorf("Name = %q", s.Name())
	}
	if s.SpanKind() != trace.SpanKindServer {
		t.Errorf("SpanKind = %v, want server", s.SpanKind())
	}
	a := attrs(s)
	if a["mcp.tool.name"] != "youtube_delete_video" || a["mcp.tool.category"] != "videos" {
		t.Errorf("tool attributes = %v", a)
	}
	if a["mcp.request.id"] != "req-42" || a["mcp.tool.readonly"] != false {
		t.Errorf("request attributes = %v", a)
	}
}

func TestStartUpstreamSpan(t *testing.T) {
	sr := recordSpans(t)

	ctx, parent := StartToolSpan(context.Background(), "youtube_list_videos", "videos", "req-1", true)
	_, span := StartUpstreamSpan(ctx, "GET", "/videos", "videos", "api_key")
	AddResponseAttributes(span, 200)
	span.End()
	parent.End()

	ended := sr.Ended()
	if len(ended) != 2 {
		t.Fatalf("ended spans = %d, want 2", len(ended))
	}
	s := ended[0]
	if s.Name() != "youtube.api GET /videos" {
		t.Errorf("Name = %q", s.Name())
	}
	if s.SpanKind() != trace.SpanKindClient {
		t.Errorf("SpanKind = %v, want client", s.SpanKind())
	}
	if s.Parent().SpanID() != ended[1].SpanContext().SpanID() {
		t.Error("upstream span should be a child of the tool span")
	}
	a := attrs(s)
	if a["youtube.auth.mode"] != "api_key" || a["youtube.api.resource"] != "videos" {
		t.Errorf("attributes = %v", a)
	}
	if a["http.response.status_code"] != int64(200) {
		t.Errorf("status attribute = %v", a["http.response.status_code"])
	}
}

func TestStartUpstreamSpan_NoAuthMode(t *testing.T) {
	sr := recordSpans(t)

	_, span := StartUpstreamSpan(context.Background(), "POST", "/videos/rate", "videos", "")
	span.End()

	if _, ok := attrs(sr.Ended()[0])["youtube.auth.mode"]; ok {
		t.Error("empty auth mode should not be recorded")
	}
}

func TestRecordError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus codes.Code
		wantAttrs  map[attribute.Key]any
		absent     []attribute.Key
	}{
		{
			name:       "nil leaves the span alone",
			wantStatus: codes.Unset,
			absent:     []attribute.Key{"youtube.error.code"},
		},
		{
			name:       "plain error",
			err:        errors.New("connection reset"),
			wantStatus: codes.Error,
			absent:     []attribute.Key{"youtube.error.code"},
		},
		{
			name:       "rate limit carries retry hints",
			err:        apierrors.NewRateLimitError(30 * time.Second),
			wantStatus: codes.Error,
			wantAttrs: map[attribute.Key]any{
				"youtube.error.code":                "RATE_LIMIT_EXCEEDED",
				"youtube.error.retryable":           true,
				"youtube.error.retry_after_seconds": int64(30),
			},
		},
		{
			name:       "not found",
			err:        apierrors.NewNotFoundError("Video", "abc"),
			wantStatus: codes.Error,
			wantAttrs:  map[attribute.Key]any{"youtube.error.retryable": false},
			absent:     []attribute.Key{"youtube.error.retry_after_seconds"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := recordSpans(t)

			_, span := StartUpstreamSpan(context.Background(), "GET", "/videos", "videos", "oauth")
			RecordError(span, tt.err)
			span.End()

			s := sr.Ended()[0]
			if s.Status().Code != tt.wantStatus {
				t.Errorf("Status = %v, want %v", s.Status().Code, tt.wantStatus)
			}
			a := attrs(s)
			for k, want := range tt.wantAttrs {
				if a[k] != want {
					t.Errorf("%s = %v, want %v", k, a[k], want)
				}
			}
			for _, k := range tt.absent {
				if _, ok := a[k]; ok {
					t.Errorf("%s should not be set", k)
				}
			}
		})
	}
}
