package youtube

import (
	"context"

	ytapi "google.golang.org/api/youtube/v3"

	"github.com/olgasafonova/youtube-mcp-server/internal/base"
)

// ListVideoCategoriesArgs selects categories by id or region
type ListVideoCategoriesArgs struct {
	Output
	IDs        []string `json:"ids,omitempty" jsonschema:"Category IDs (max 50)"`
	RegionCode string   `json:"regionCode,omitempty" jsonschema:"ISO 3166-1 alpha-2 region"`
	Hl         string   `json:"hl,omitempty" jsonschema:"Language for category titles"`
}

func (a ListVideoCategoriesArgs) Validate() error {
	c := newChecks(a.Output)
	c.exactlyOne(map[string]bool{"ids": len(a.IDs) > 0, "regionCode": a.RegionCode != ""})
	c.ids("ids", a.IDs, MaxIDs)
	return c.err()
}

// ListVideoCategories returns video categories
func (c *Client) ListVideoCategories(ctx context.Context, args ListVideoCategoriesArgs) (Page[*ytapi.VideoCategory], error) {
	q := base.Query{}
	q.Set("part", "snippet").
		SetList("id", args.IDs).
		Set("regionCode", args.RegionCode).
		Set("hl", args.Hl)
	return list[*ytapi.VideoCategory](ctx, c, "/videoCategories", q)
}

// ListAbuseReportReasonsArgs lists the reasons accepted by youtube_report_video_abuse
type ListAbuseReportReasonsArgs struct {
	Output
	Hl string `json:"hl,omitempty" jsonschema:"Language for reason labels"`
}

func (a ListAbuseReportReasonsArgs) Validate() error {
	return newChecks(a.Output).err()
}

// ListAbuseReportReasons returns the abuse report reasons
func (c *Client) ListAbuseReportReasons(ctx context.Context, args ListAbuseReportReasonsArgs) (Page[*ytapi.VideoAbuseReportReason], error) {
	q := base.Query{}
	q.Set("part", "snippet").Set("hl", args.Hl)
	return list[*ytapi.VideoAbuseReportReason](ctx, c, "/videoAbuseReportReasons", q)
}
