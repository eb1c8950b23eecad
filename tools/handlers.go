package tools

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/olgasafonova/youtube-mcp-server/internal/auth"
	"github.com/olgasafonova/youtube-mcp-server/internal/format"
	"github.com/olgasafonova/youtube-mcp-server/internal/youtube"
	"github.com/olgasafonova/youtube-mcp-server/metrics"
	"github.com/olgasafonova/youtube-mcp-server/tracing"
)

// toolArgs is implemented by every youtube Args type.
type toolArgs interface {
	Validate() error
	ResponseFormat() string
}

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete youtube.Client methods.
type HandlerRegistry struct {
	client        *youtube.Client
	defaults      auth.Credentials
	defaultFormat format.Format
	logger        *slog.Logger
}

// NewHandlerRegistry creates a new handler registry. defaults are used for any
// credential the request headers do not carry (stdio has no headers at all).
func NewHandlerRegistry(client *youtube.Client, defaults auth.Credentials, defaultFormat format.Format, logger *slog.Logger) *HandlerRegistry {
	if defaultFormat == "" {
		defaultFormat = format.JSON
	}
	return &HandlerRegistry{
		client:        client,
		defaults:      defaults,
		defaultFormat: defaultFormat,
		logger:        logger,
	}
}

// RegisterAll registers all tools with the MCP server and returns how many were registered.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) int {
	n := 0
	for _, spec := range AllTools {
		if h.registerByName(server, spec) {
			n++
		}
	}
	h.logger.Info("Registered all tools", "count", n)
	return n
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) bool {
	tool := h.buildTool(spec)
	c := h.client

	switch spec.Method {
	// Search
	case "Search":
		register(h, server, tool, spec, c.Search)
	case "SearchVideos":
		register(h, server, tool, spec, c.SearchVideos)
	case "SearchChannels":
		register(h, server, tool, spec, c.SearchChannels)
	case "SearchPlaylists":
		register(h, server, tool, spec, c.SearchPlaylists)

	// Videos
	case "ListVideos":
		register(h, server, tool, spec, c.ListVideos)
	case "GetVideo":
		register(h, server, tool, spec, c.GetVideo)
	case "UpdateVideo":
		register(h, server, tool, spec, c.UpdateVideo)
	case "DeleteVideo":
		register(h, server, tool, spec, c.DeleteVideo)
	case "RateVideo":
		register(h, server, tool, spec, c.RateVideo)
	case "GetVideoRating":
		register(h, server, tool, spec, c.GetVideoRating)
	case "ReportVideoAbuse":
		register(h, server, tool, spec, c.ReportVideoAbuse)

	// Channels
	case "ListChannels":
		register(h, server, tool, spec, c.ListChannels)
	case "GetChannel":
		register(h, server, tool, spec, c.GetChannel)
	case "GetMyChannel":
		register(h, server, tool, spec, c.GetMyChannel)
	case "UpdateChannel":
		register(h, server, tool, spec, c.UpdateChannel)

	// Playlists
	case "ListPlaylists":
		register(h, server, tool, spec, c.ListPlaylists)
	case "GetPlaylist":
		register(h, server, tool, spec, c.GetPlaylist)
	case "CreatePlaylist":
		register(h, server, tool, spec, c.CreatePlaylist)
	case "UpdatePlaylist":
		register(h, server, tool, spec, c.UpdatePlaylist)
	case "DeletePlaylist":
		register(h, server, tool, spec, c.DeletePlaylist)

	// Playlist items
	case "ListPlaylistItems":
		register(h, server, tool, spec, c.ListPlaylistItems)
	case "AddPlaylistItem":
		register(h, server, tool, spec, c.AddPlaylistItem)
	case "UpdatePlaylistItem":
		register(h, server, tool, spec, c.UpdatePlaylistItem)
	case "DeletePlaylistItem":
		register(h, server, tool, spec, c.DeletePlaylistItem)

	// Comments
	case "ListCommentThreads":
		register(h, server, tool, spec, c.ListCommentThreads)
	case "GetCommentThread":
		register(h, server, tool, spec, c.GetCommentThread)
	case "CreateCommentThread":
		register(h, server, tool, spec, c.CreateCommentThread)
	case "ListComments":
		register(h, server, tool, spec, c.ListComments)
	case "GetComment":
		register(h, server, tool, spec, c.GetComment)
	case "ReplyToComment":
		register(h, server, tool, spec, c.ReplyToComment)
	case "UpdateComment":
		register(h, server, tool, spec, c.UpdateComment)
	case "DeleteComment":
		register(h, server, tool, spec, c.DeleteComment)
	case "SetCommentModerationStatus":
		register(h, server, tool, spec, c.SetCommentModerationStatus)

	// Subscriptions
	case "ListSubscriptions":
		register(h, server, tool, spec, c.ListSubscriptions)
	case "Subscribe":
		register(h, server, tool, spec, c.Subscribe)
	case "Unsubscribe":
		register(h, server, tool, spec, c.Unsubscribe)

	// Captions
	case "ListCaptions":
		register(h, server, tool, spec, c.ListCaptions)
	case "InsertCaption":
		register(h, server, tool, spec, c.InsertCaption)
	case "UpdateCaption":
		register(h, server, tool, spec, c.UpdateCaption)
	case "DeleteCaption":
		register(h, server, tool, spec, c.DeleteCaption)
	case "DownloadCaption":
		register(h, server, tool, spec, c.DownloadCaption)

	// Activities and channel sections
	case "ListActivities":
		register(h, server, tool, spec, c.ListActivities)
	case "ListChannelSections":
		register(h, server, tool, spec, c.ListChannelSections)
	case "CreateChannelSection":
		register(h, server, tool, spec, c.CreateChannelSection)
	case "UpdateChannelSection":
		register(h, server, tool, spec, c.UpdateChannelSection)
	case "DeleteChannelSection":
		register(h, server, tool, spec, c.DeleteChannelSection)

	// Reference data
	case "ListLanguages":
		register(h, server, tool, spec, c.ListLanguages)
	case "ListRegions":
		register(h, server, tool, spec, c.ListRegions)
	case "ListVideoCategories":
		register(h, server, tool, spec, c.ListVideoCategories)
	case "ListAbuseReportReasons":
		register(h, server, tool, spec, c.ListAbuseReportReasons)

	// Memberships
	case "ListMembers":
		register(h, server, tool, spec, c.ListMembers)
	case "ListMembershipLevels":
		register(h, server, tool, spec, c.ListMembershipLevels)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
		return false
	}
	return true
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	} else if !spec.ReadOnly {
		// The MCP default for non-read-only tools is destructive.
		annotations.DestructiveHint = ptr(false)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Title:       spec.Title,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and logging,
// and always answers with a text payload: the rendered result or a structured error.
func register[Args toolArgs, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (res *mcp.CallToolResult, _ any, _ error) {
		requestID := uuid.NewString()

		ctx, span := tracing.StartToolSpan(ctx, spec.Name, spec.Category, requestID, spec.ReadOnly)
		defer span.End()

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		defer h.recoverPanic(span, spec, requestID, start, &res)

		text, err := execute(ctx, h, span, req, spec, requestID, args, method)
		return h.finish(span, spec, requestID, start, text, err), nil, nil
	})
}

// execute resolves credentials, validates arguments, calls the operation and renders
// its result.
func execute[Args toolArgs, Result any](
	ctx context.Context,
	h *HandlerRegistry,
	span trace.Span,
	req *mcp.CallToolRequest,
	spec ToolSpec,
	requestID string,
	args Args,
	method func(context.Context, Args) (Result, error),
) (string, error) {
	creds := h.credentials(req)
	if err := creds.Validate(); err != nil {
		metrics.AuthFailures.WithLabelValues("missing_credentials").Inc()
		return "", err
	}
	if err := args.Validate(); err != nil {
		return "", err
	}
	f, err := h.outputFormat(args.ResponseFormat())
	if err != nil {
		return "", err
	}
	span.SetAttributes(
		attribute.String("youtube.auth.mode", creds.Mode()),
		attribute.String("mcp.output.format", string(f)),
	)

	result, err := method(auth.WithCredentials(ctx, creds), args)
	if !spec.ReadOnly {
		metrics.RecordWrite(spec.Name, err == nil)
	}
	if err != nil {
		return "", err
	}

	text, err := format.Render(result, f, spec.Entity)
	if err != nil {
		return "", err
	}
	metrics.RecordOutput(string(f), len(text))
	h.logExecution(spec, requestID, f, result)
	return text, nil
}

// credentials merges the request headers over the configured defaults.
func (h *HandlerRegistry) credentials(req *mcp.CallToolRequest) auth.Credentials {
	var creds auth.Credentials
	if req != nil && req.Extra != nil && req.Extra.Header != nil {
		creds = auth.FromHeaders(req.Extra.Header)
	}
	return creds.Merge(h.defaults)
}

// outputFormat picks the requested format, or the server default when none was given.
func (h *HandlerRegistry) outputFormat(requested string) (format.Format, error) {
	if requested == "" {
		return h.defaultFormat, nil
	}
	return format.Parse(requested)
}

// finish records the outcome and builds the MCP result. Failures become IsError
// results carrying the structured error payload; the protocol-level error stays nil.
func (h *HandlerRegistry) finish(span trace.Span, spec ToolSpec, requestID string, start time.Time, text string, err error) *mcp.CallToolResult {
	duration := time.Since(start).Seconds()
	span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

	if err == nil {
		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: text}}}
	}

	payload := format.FormatError(err)
	tracing.RecordError(span, err)
	span.SetAttributes(attribute.String("mcp.error.code", payload.Details.Code))
	metrics.RecordRequest(spec.Name, duration, false)
	metrics.RecordToolError(spec.Name, payload.Details.Code)

	h.logger.Warn("Tool failed",
		"tool", spec.Name,
		"request_id", requestID,
		"code", payload.Details.Code,
		"status", payload.Details.Status,
		"error", err)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: payload.Text()}},
		IsError: true,
	}
}

// recoverPanic recovers from panics in tool handlers and turns them into error results.
func (h *HandlerRegistry) recoverPanic(span trace.Span, spec ToolSpec, requestID string, start time.Time, res **mcp.CallToolResult) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(spec.Name).Inc()
		h.logger.Error("Panic recovered",
			"tool", spec.Name,
			"request_id", requestID,
			"panic", rec,
			"stack", string(debug.Stack()))
		*res = h.finish(span, spec, requestID, start, "", format.PanicError(rec))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, requestID string, f format.Format, result any) {
	attrs := []any{"tool", spec.Name, "request_id", requestID, "format", string(f)}

	// Synthetic results and pages summarize themselves
	switch r := result.(type) {
	case slog.LogValuer:
		attrs = append(attrs, "result", r)
	case *ytapi.Video:
		attrs = append(attrs, "video_id", r.Id)
	case *ytapi.Channel:
		attrs = append(attrs, "channel_id", r.Id)
	case *ytapi.Playlist:
		attrs = append(attrs, "playlist_id", r.Id)
	case *ytapi.PlaylistItem:
		attrs = append(attrs, "playlist_item_id", r.Id)
	case *ytapi.CommentThread:
		attrs = append(attrs, "comment_thread_id", r.Id)
	case *ytapi.Comment:
		attrs = append(attrs, "comment_id", r.Id)
	case *ytapi.Subscription:
		attrs = append(attrs, "subscription_id", r.Id)
	case *ytapi.Caption:
		attrs = append(attrs, "caption_id", r.Id)
	case *ytapi.ChannelSection:
		attrs = append(attrs, "section_id", r.Id)
	}

	h.logger.Info("Tool executed", attrs...)
}
