// Package tracing wires OpenTelemetry for the YouTube MCP server. Each tool call
// gets an mcp.tool span and each YouTube API request a child youtube.api span.
package tracing

import (
	"context"
	"io"
	"os"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
	"go.opentelemetry.io/otel/trace"

	apierrors "github.com/olgasafonova/youtube-mcp-server/internal/errors"
)

const tracerName = "github.com/olgasafonova/youtube-mcp-server"

// Config holds tracing configuration
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Enabled        bool

	// OTLPEndpoint selects the OTLP/HTTP exporter; empty means the console exporter
	OTLPEndpoint string
	OTLPInsecure bool

	// Writer receives console spans. Nil means stderr, since stdout carries the stdio transport.
	Writer io.Writer

	SampleRate float64
}

// DefaultConfig reads the standard OTEL_* variables.
func DefaultConfig(serviceVersion string) Config {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	return Config{
		ServiceName:    getEnvOrDefault("OTEL_SERVICE_NAME", "youtube-mcp-server"),
		ServiceVersion: serviceVersion,
		Environment:    getEnvOrDefault("OTEL_ENVIRONMENT", "development"),
		Enabled:        os.Getenv("OTEL_ENABLED") == "true" || endpoint != "",
		OTLPEndpoint:   endpoint,
		OTLPInsecure:   os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") == "true",
		SampleRate:     sampleRateFromEnv(),
	}
}

// Setup installs the global tracer provider and returns its shutdown function.
// When tracing is disabled the global no-op provider stays in place.
func Setup(ctx context.Context, config Config) (func(context.Context) error, error) {
	if !config.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(config.ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
			attribute.String("deployment.environment.name", config.Environment),
		),
	)
	if err != nil {
		return nil, err
	}

	exporter, err := newExporter(ctx, config)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(config.SampleRate)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

func newExporter(ctx context.Context, config Config) (sdktrace.SpanExporter, error) {
	if config.OTLPEndpoint != "" {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(config.OTLPEndpoint)}
		if config.OTLPInsecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	}

	w := config.Writer
	if w == nil {
		w = os.Stderr
	}
	return stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
}

// sampler honours an incoming sampling decision and samples root spans at rate.
func sampler(rate float64) sdktrace.Sampler {
	var root sdktrace.Sampler
	switch {
	case rate >= 1.0:
		root = sdktrace.AlwaysSample()
	case rate <= 0:
		root = sdktrace.NeverSample()
	default:
		root = sdktrace.TraceIDRatioBased(rate)
	}
	return sdktrace.ParentBased(root)
}

// StartToolSpan opens the span covering one MCP tool call.
func StartToolSpan(ctx context.Context, tool, category, requestID string, readOnly bool) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "mcp.tool."+tool,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("mcp.tool.name", tool),
			attribute.String("mcp.tool.category", category),
			attribute.String("mcp.request.id", requestID),
			attribute.Bool("mcp.tool.readonly", readOnly),
		))
}

// StartUpstreamSpan opens a client span for one YouTube API request.
func StartUpstreamSpan(ctx context.Context, method, path, resource, authMode string) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", method),
		attribute.String("youtube.api.resource", resource),
	}
	if authMode != "" {
		attrs = append(attrs, attribute.String("youtube.auth.mode", authMode))
	}
	return otel.Tracer(tracerName).Start(ctx, "youtube.api "+method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...))
}

// AddResponseAttributes records the upstream status code on a span
func AddResponseAttributes(span trace.Span, status int) {
	span.SetAttributes(attribute.Int("http.response.status_code", status))
}

// RecordError marks the span failed. Taxonomy errors also carry their kind and
// retry hints so quota and rate limit failures can be filtered in the backend.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	e, ok := apierrors.As(err)
	if !ok {
		return
	}
	span.SetAttributes(
		attribute.String("youtube.error.code", e.Code()),
		attribute.Bool("youtube.error.retryable", e.Retryable),
	)
	if e.Kind == apierrors.KindRateLimit {
		span.SetAttributes(attribute.Int("youtube.error.retry_after_seconds", int(e.RetryAfter.Seconds())))
	}
}

func sampleRateFromEnv() float64 {
	v := os.Getenv("OTEL_TRACES_SAMPLER_ARG")
	if v == "" {
		return 1.0
	}
	rate, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 1.0
	}
	return rate
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
