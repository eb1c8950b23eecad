package youtube

import (
	"context"

	ytapi "google.golang.org/api/youtube/v3"

	"github.com/olgasafonova/youtube-mcp-server/internal/base"
)

// ListActivitiesArgs selects channel activity events
type ListActivitiesArgs struct {
	Output
	ChannelID       string   `json:"channelId,omitempty" jsonschema:"Activities of this channel"`
	Mine            bool     `json:"mine,omitempty" jsonschema:"Activities of the authenticated user"`
	PublishedAfter  string   `json:"publishedAfter,omitempty" jsonschema:"RFC 3339 lower bound"`
	PublishedBefore string   `json:"publishedBefore,omitempty" jsonschema:"RFC 3339 upper bound"`
	RegionCode      string   `json:"regionCode,omitempty" jsonschema:"ISO 3166-1 alpha-2 region"`
	Part            []string `json:"part,omitempty" jsonschema:"Resource parts (default snippet,contentDetails)"`
	MaxResults      int      `json:"maxResults,omitempty" jsonschema:"Page size 1-50"`
	PageToken       string   `json:"pageToken,omitempty" jsonschema:"Continuation token from a previous page"`
}

func (a ListActivitiesArgs) Validate() error {
	c := newChecks(a.Output)
	c.exactlyOne(map[string]bool{"channelId": a.ChannelID != "", "mine": a.Mine})
	c.maxResults(a.MaxResults, MaxResults)
	return c.err()
}

// ListActivities returns a page of channel activities
func (c *Client) ListActivities(ctx context.Context, args ListActivitiesArgs) (Page[*ytapi.Activity], error) {
	q := base.Query{}
	q.Set("part", parts(args.Part, "snippet,contentDetails")).
		Set("channelId", args.ChannelID).
		SetTrue("mine", args.Mine).
		Set("publishedAfter", args.PublishedAfter).
		Set("publishedBefore", args.PublishedBefore).
		Set("regionCode", args.RegionCode).
		SetInt("maxResults", args.MaxResults).
		Set("pageToken", args.PageToken)
	return list[*ytapi.Activity](ctx, c, "/activities", q)
}
