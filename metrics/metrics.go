// Package metrics provides Prometheus metrics for the YouTube MCP server.
// It tracks tool calls, upstream API latency, error kinds and rate limiting.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "youtube_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// ToolErrors counts failed tool calls by error code
	ToolErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "tool_errors_total",
		Help:      "Failed tool calls by tool and error code",
	}, []string{"tool", "code"})

	// UpstreamLatency measures YouTube API call latency by resource and method
	UpstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "upstream_latency_seconds",
		Help:      "YouTube API call latency by resource and HTTP method",
		Buckets:   prometheus.DefBuckets,
	}, []string{"resource", "method"})

	// UpstreamRequestsTotal counts YouTube API requests
	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "upstream_requests_total",
		Help:      "Total YouTube API requests by resource, method and status",
	}, []string{"resource", "method", "status"})

	// UpstreamErrors counts YouTube API errors by error code
	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "upstream_errors_total",
		Help:      "YouTube API errors by resource, method and error code",
	}, []string{"resource", "method", "error_code"})

	// RateLimitRejections counts inbound requests rejected by the HTTP transport limiter
	RateLimitRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "rate_limit_rejections_total",
		Help:      "Requests rejected due to rate limiting",
	})

	// AuthFailures counts authentication failures
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "auth_failures_total",
		Help:      "Authentication failure count by reason",
	}, []string{"reason"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})

	// WriteOperations counts mutating tool calls by tool
	WriteOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "write_operations_total",
		Help:      "Write operations by tool and status",
	}, []string{"tool", "status"})

	// OutputSize tracks rendered payload sizes
	OutputSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "output_size_bytes",
		Help:      "Rendered tool output size distribution in bytes",
		Buckets:   []float64{100, 1000, 10000, 50000, 100000, 250000, 500000, 1000000},
	}, []string{"format"})
)

// RecordRequest records a completed request with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	RequestsTotal.WithLabelValues(tool, status(success)).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPICall records a YouTube API call
func RecordAPICall(resource, method string, duration float64, success bool, errorCode string) {
	UpstreamRequestsTotal.WithLabelValues(resource, method, status(success)).Inc()
	UpstreamLatency.WithLabelValues(resource, method).Observe(duration)
	if errorCode != "" {
		UpstreamErrors.WithLabelValues(resource, method, errorCode).Inc()
	}
}

// RecordToolError records a failed tool call by error code
func RecordToolError(tool, code string) {
	ToolErrors.WithLabelValues(tool, code).Inc()
}

// RecordWrite records a mutating tool call
func RecordWrite(tool string, success bool) {
	WriteOperations.WithLabelValues(tool, status(success)).Inc()
}

// RecordOutput records the size of a rendered payload
func RecordOutput(format string, size int) {
	OutputSize.WithLabelValues(format).Observe(float64(size))
}

func status(success bool) string {
	if success {
		return "success"
	}
	return "error"
}
