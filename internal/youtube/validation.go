package youtube

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	apierrors "github.com/olgasafonova/youtube-mcp-server/internal/errors"
)

// Upstream limits enforced before a request is sent.
const (
	MaxIDs                  = 50
	MaxResults              = 50
	MaxCommentResults       = 100
	MaxMemberResults        = 1000
	MaxMemberChannelFilters = 100
)

// Allowed values for enumerated arguments.
var (
	videoRatings       = []string{"like", "dislike", "none"}
	myRatings          = []string{"like", "dislike"}
	videoCharts        = []string{"mostPopular"}
	privacyStatuses    = []string{"public", "private", "unlisted"}
	searchTypes        = []string{"video", "channel", "playlist"}
	searchOrders       = []string{"date", "rating", "relevance", "title", "videoCount", "viewCount"}
	safeSearchLevels   = []string{"moderate", "none", "strict"}
	videoDurations     = []string{"any", "long", "medium", "short"}
	videoDefinitions   = []string{"any", "high", "standard"}
	videoCaptions      = []string{"any", "closedCaption", "none"}
	eventTypes         = []string{"completed", "live", "upcoming"}
	channelTypes       = []string{"any", "show"}
	threadOrders       = []string{"time", "relevance"}
	textFormats        = []string{"html", "plainText"}
	threadModeration   = []string{"heldForReview", "likelySpam", "published"}
	commentModeration  = []string{"heldForReview", "published", "rejected"}
	subscriptionOrders = []string{"alphabetical", "relevance", "unread"}
	captionFormats     = []string{"sbv", "scc", "srt", "ttml", "vtt"}
	memberModes        = []string{"all_current", "updates"}
	outputFormats      = []string{"json", "markdown"}
	sectionTypes       = []string{
		"allPlaylists", "completedEvents", "liveEvents", "multipleChannels", "multiplePlaylists",
		"popularUploads", "recentUploads", "singlePlaylist", "subscriptions", "upcomingEvents",
	}
)

// checks accumulates field-level validation failures.
type checks map[string]string

func newChecks(o Output) checks {
	c := checks{}
	if o.Format != "" {
		c.enum("format", strings.ToLower(o.Format), outputFormats)
	}
	return c
}

func (c checks) fail(field, msg string) {
	if _, ok := c[field]; !ok {
		c[field] = msg
	}
}

func (c checks) required(field, v string) {
	if strings.TrimSpace(v) == "" {
		c.fail(field, "is required")
	}
}

func (c checks) ids(field string, ids []string, max int) {
	if len(ids) > max {
		c.fail(field, fmt.Sprintf("must contain at most %d entries", max))
	}
}

func (c checks) maxResults(n, max int) {
	if n != 0 && (n < 1 || n > max) {
		c.fail("maxResults", fmt.Sprintf("must be between 1 and %d", max))
	}
}

func (c checks) enum(field, v string, allowed []string) {
	if v != "" && !slices.Contains(allowed, v) {
		c.fail(field, "must be one of: "+strings.Join(allowed, ", "))
	}
}

func (c checks) enumPtr(field string, v *string, allowed []string) {
	if v != nil {
		c.enum(field, *v, allowed)
	}
}

// exactlyOne requires exactly one of the named selectors to be set.
func (c checks) exactlyOne(set map[string]bool) {
	names := make([]string, 0, len(set))
	n := 0
	for name, ok := range set {
		names = append(names, name)
		if ok {
			n++
		}
	}
	if n == 1 {
		return
	}
	sort.Strings(names)
	field := strings.Join(names, "|")
	if n == 0 {
		c.fail(field, "one of "+strings.Join(names, ", ")+" is required")
	} else {
		c.fail(field, "only one of "+strings.Join(names, ", ")+" may be set")
	}
}

// err converts the accumulated failures into a Validation error, or nil.
func (c checks) err() error {
	if len(c) == 0 {
		return nil
	}
	fields := make([]string, 0, len(c))
	for f := range c {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+" "+c[f])
	}
	return apierrors.NewValidationError("invalid arguments: "+strings.Join(parts, "; "), map[string]string(c))
}
