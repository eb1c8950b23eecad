package youtube

import (
	"context"

	ytapi "google.golang.org/api/youtube/v3"

	"github.com/olgasafonova/youtube-mcp-server/internal/base"
)

// ListMembersArgs lists channel members. Requires an access token of the channel owner.
type ListMembersArgs struct {
	Output
	Mode                    string   `json:"mode,omitempty" jsonschema:"all_current (default) or updates"`
	HasAccessToLevel        string   `json:"hasAccessToLevel,omitempty" jsonschema:"Only members with access to this level ID"`
	FilterByMemberChannelID []string `json:"filterByMemberChannelId,omitempty" jsonschema:"Only these member channel IDs (max 100)"`
	MaxResults              int      `json:"maxResults,omitempty" jsonschema:"Page size 1-1000"`
	PageToken               string   `json:"pageToken,omitempty" jsonschema:"Continuation token from a previous page"`
}

func (a ListMembersArgs) Validate() error {
	c := newChecks(a.Output)
	c.enum("mode", a.Mode, memberModes)
	c.ids("filterByMemberChannelId", a.FilterByMemberChannelID, MaxMemberChannelFilters)
	c.maxResults(a.MaxResults, MaxMemberResults)
	return c.err()
}

// ListMembers returns a page of channel members
func (c *Client) ListMembers(ctx context.Context, args ListMembersArgs) (Page[*ytapi.Member], error) {
	q := base.Query{}
	q.Set("part", "snippet").
		Set("mode", args.Mode).
		Set("hasAccessToLevel", args.HasAccessToLevel).
		SetList("filterByMemberChannelId", args.FilterByMemberChannelID).
		SetInt("maxResults", args.MaxResults).
		Set("pageToken", args.PageToken)
	return list[*ytapi.Member](ctx, c, "/members", q)
}

// ListMembershipLevelsArgs takes only the output format
type ListMembershipLevelsArgs struct {
	Output
}

func (a ListMembershipLevelsArgs) Validate() error {
	return newChecks(a.Output).err()
}

// ListMembershipLevels returns the membership levels of the caller's channel
func (c *Client) ListMembershipLevels(ctx context.Context, args ListMembershipLevelsArgs) (Page[*ytapi.MembershipsLevel], error) {
	q := base.Query{}
	q.Set("part", "id,snippet")
	return list[*ytapi.MembershipsLevel](ctx, c, "/membershipsLevels", q)
}
