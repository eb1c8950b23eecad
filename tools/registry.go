// Package tools provides a metadata-driven registry for MCP tool definitions.
// Tools are defined declaratively and registered through type-safe handlers
// that resolve credentials, validate arguments and render results.
package tools

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to a youtube.Client method with matching Args/Result types.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "youtube_list_videos")
	Name string

	// Method is the client method name (e.g., "ListVideos")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools logically (search, videos, comments, etc.)
	Category string

	// Entity picks the markdown layout for the result (e.g., "video", "action")
	Entity string

	// ReadOnly indicates the tool doesn't modify YouTube state
	ReadOnly bool

	// Destructive indicates the tool can delete or overwrite data
	Destructive bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
