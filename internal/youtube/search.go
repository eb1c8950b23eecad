package youtube

import (
	"context"
	"strings"

	ytapi "google.golang.org/api/youtube/v3"

	"github.com/olgasafonova/youtube-mcp-server/internal/base"
)

// SearchFilters are accepted by every search variant
type SearchFilters struct {
	Query             string `json:"q,omitempty" jsonschema:"Search terms; supports the NOT (-) and OR (|) operators"`
	ChannelID         string `json:"channelId,omitempty" jsonschema:"Only results from this channel"`
	ForMine           bool   `json:"forMine,omitempty" jsonschema:"Only the authenticated user's videos"`
	Order             string `json:"order,omitempty" jsonschema:"date, rating, relevance (default), title, videoCount or viewCount"`
	PublishedAfter    string `json:"publishedAfter,omitempty" jsonschema:"RFC 3339 lower bound"`
	PublishedBefore   string `json:"publishedBefore,omitempty" jsonschema:"RFC 3339 upper bound"`
	RegionCode        string `json:"regionCode,omitempty" jsonschema:"ISO 3166-1 alpha-2 region"`
	RelevanceLanguage string `json:"relevanceLanguage,omitempty" jsonschema:"ISO 639-1 language to favor"`
	SafeSearch        string `json:"safeSearch,omitempty" jsonschema:"moderate (default), none or strict"`
	MaxResults        int    `json:"maxResults,omitempty" jsonschema:"Page size 1-50"`
	PageToken         string `json:"pageToken,omitempty" jsonschema:"Continuation token from a previous page"`
}

// VideoFilters only apply when searching for videos
type VideoFilters struct {
	VideoDuration   string `json:"videoDuration,omitempty" jsonschema:"any, short (<4m), medium (4-20m) or long (>20m)"`
	VideoDefinition string `json:"videoDefinition,omitempty" jsonschema:"any, high or standard"`
	VideoCaption    string `json:"videoCaption,omitempty" jsonschema:"any, closedCaption or none"`
	VideoCategoryID string `json:"videoCategoryId,omitempty" jsonschema:"Category ID"`
	EventType       string `json:"eventType,omitempty" jsonschema:"Broadcast state: completed, live or upcoming"`
}

func (f VideoFilters) isZero() bool {
	return f == VideoFilters{}
}

// SearchArgs searches across resource types
type SearchArgs struct {
	Output
	SearchFilters
	VideoFilters
	Type        string `json:"type,omitempty" jsonschema:"Comma-separated resource types: video, channel, playlist (default all)"`
	ChannelType string `json:"channelType,omitempty" jsonschema:"any or show (channel results only)"`
}

func (a SearchArgs) Validate() error {
	c := newChecks(a.Output)
	a.SearchFilters.check(c, strings.TrimSpace(a.Type))
	for _, t := range strings.Split(a.Type, ",") {
		c.enum("type", strings.TrimSpace(t), searchTypes)
	}
	if !a.VideoFilters.isZero() && strings.TrimSpace(a.Type) != "video" {
		c.fail("type", "video filters require type video")
	}
	a.VideoFilters.check(c)
	c.enum("channelType", a.ChannelType, channelTypes)
	return c.err()
}

// SearchVideosArgs searches videos only
type SearchVideosArgs struct {
	Output
	SearchFilters
	VideoFilters
}

func (a SearchVideosArgs) Validate() error {
	c := newChecks(a.Output)
	a.SearchFilters.check(c, "video")
	a.VideoFilters.check(c)
	return c.err()
}

// SearchChannelsArgs searches channels only
type SearchChannelsArgs struct {
	Output
	SearchFilters
	ChannelType string `json:"channelType,omitempty" jsonschema:"any or show"`
}

func (a SearchChannelsArgs) Validate() error {
	c := newChecks(a.Output)
	a.SearchFilters.check(c, "channel")
	c.enum("channelType", a.ChannelType, channelTypes)
	return c.err()
}

// SearchPlaylistsArgs searches playlists only
type SearchPlaylistsArgs struct {
	Output
	SearchFilters
}

func (a SearchPlaylistsArgs) Validate() error {
	c := newChecks(a.Output)
	a.SearchFilters.check(c, "playlist")
	return c.err()
}

func (f SearchFilters) check(c checks, typ string) {
	if f.ForMine && typ != "" && typ != "video" {
		c.fail("forMine", "only allowed when searching videos")
	}
	c.enum("order", f.Order, searchOrders)
	c.enum("safeSearch", f.SafeSearch, safeSearchLevels)
	c.maxResults(f.MaxResults, MaxResults)
}

func (f VideoFilters) check(c checks) {
	c.enum("videoDuration", f.VideoDuration, videoDurations)
	c.enum("videoDefinition", f.VideoDefinition, videoDefinitions)
	c.enum("videoCaption", f.VideoCaption, videoCaptions)
	c.enum("eventType", f.EventType, eventTypes)
}

// Search runs a search across the requested resource types
func (c *Client) Search(ctx context.Context, args SearchArgs) (Page[*ytapi.SearchResult], error) {
	return c.search(ctx, args.Type, args.SearchFilters, args.VideoFilters, args.ChannelType)
}

// SearchVideos runs a search restricted to videos
func (c *Client) SearchVideos(ctx context.Context, args SearchVideosArgs) (Page[*ytapi.SearchResult], error) {
	return c.search(ctx, "video", args.SearchFilters, args.VideoFilters, "")
}

// SearchChannels runs a search restricted to channels
func (c *Client) SearchChannels(ctx context.Context, args SearchChannelsArgs) (Page[*ytapi.SearchResult], error) {
	return c.search(ctx, "channel", args.SearchFilters, VideoFilters{}, args.ChannelType)
}

// SearchPlaylists runs a search restricted to playlists
func (c *Client) SearchPlaylists(ctx context.Context, args SearchPlaylistsArgs) (Page[*ytapi.SearchResult], error) {
	return c.search(ctx, "playlist", args.SearchFilters, VideoFilters{}, "")
}

// search is the single upstream call behind every search variant.
func (c *Client) search(ctx context.Context, typ string, f SearchFilters, v VideoFilters, channelType string) (Page[*ytapi.SearchResult], error) {
	// forMine is only accepted together with type=video
	if f.ForMine && typ == "" {
		typ = "video"
	}

	q := base.Query{}
	q.Set("part", "snippet").
		Set("type", typ).
		Set("q", f.Query).
		Set("channelId", f.ChannelID).
		SetTrue("forMine", f.ForMine).
		Set("order", f.Order).
		Set("publishedAfter", f.PublishedAfter).
		Set("publishedBefore", f.PublishedBefore).
		Set("regionCode", f.RegionCode).
		Set("relevanceLanguage", f.RelevanceLanguage).
		Set("safeSearch", f.SafeSearch).
		Set("videoDuration", v.VideoDuration).
		Set("videoDefinition", v.VideoDefinition).
		Set("videoCaption", v.VideoCaption).
		Set("videoCategoryId", v.VideoCategoryID).
		Set("eventType", v.EventType).
		Set("channelType", channelType).
		SetInt("maxResults", f.MaxResults).
		Set("pageToken", f.PageToken)
	return list[*ytapi.SearchResult](ctx, c, "/search", q)
}
