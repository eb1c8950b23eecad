package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/olgasafonova/youtube-mcp-server/internal/base"
)

const defaultVideoParts = "snippet,contentDetails,statistics"

// ListVideosArgs selects videos by id, chart or the caller's rating.
type ListVideosArgs struct {
	Output
	IDs             []string `json:"ids,omitempty" jsonschema:"Video IDs to fetch (max 50)"`
	Chart           string   `json:"chart,omitempty" jsonschema:"Chart to list: mostPopular"`
	MyRating        string   `json:"myRating,omitempty" jsonschema:"Videos the authenticated user rated: like or dislike"`
	RegionCode      string   `json:"regionCode,omitempty" jsonschema:"ISO 3166-1 alpha-2 region for charts"`
	VideoCategoryID string   `json:"videoCategoryId,omitempty" jsonschema:"Category filter for charts"`
	Hl              string   `json:"hl,omitempty" jsonschema:"Language for localized metadata"`
	Part            []string `json:"part,omitempty" jsonschema:"Resource parts (default snippet,contentDetails,statistics)"`
	MaxResults      int      `json:"maxResults,omitempty" jsonschema:"Page size 1-50"`
	PageToken       string   `json:"pageToken,omitempty" jsonschema:"Continuation token from a previous page"`
}

func (a ListVideosArgs) Validate() error {
	c := newChecks(a.Output)
	c.exactlyOne(map[string]bool{"ids": len(a.IDs) > 0, "chart": a.Chart != "", "myRating": a.MyRating != ""})
	c.ids("ids", a.IDs, MaxIDs)
	c.enum("chart", a.Chart, videoCharts)
	c.enum("myRating", a.MyRating, myRatings)
	c.maxResults(a.MaxResults, MaxResults)
	return c.err()
}

// ListVideos returns a page of videos
func (c *Client) ListVideos(ctx context.Context, args ListVideosArgs) (Page[*ytapi.Video], error) {
	q := base.Query{}
	q.Set("part", parts(args.Part, defaultVideoParts)).
		SetList("id", args.IDs).
		Set("chart", args.Chart).
		Set("myRating", args.MyRating).
		Set("regionCode", args.RegionCode).
		Set("videoCategoryId", args.VideoCategoryID).
		Set("hl", args.Hl).
		SetInt("maxResults", args.MaxResults).
		Set("pageToken", args.PageToken)
	return list[*ytapi.Video](ctx, c, "/videos", q)
}

// GetVideoArgs identifies a single video
type GetVideoArgs struct {
	Output
	VideoID string   `json:"videoId" jsonschema:"Video ID"`
	Part    []string `json:"part,omitempty" jsonschema:"Resource parts (default snippet,contentDetails,statistics)"`
}

func (a GetVideoArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("videoId", a.VideoID)
	return c.err()
}

// GetVideo fetches one video by id
func (c *Client) GetVideo(ctx context.Context, args GetVideoArgs) (*ytapi.Video, error) {
	q := base.Query{}
	q.Set("part", parts(args.Part, defaultVideoParts))
	return getOne[*ytapi.Video](ctx, c, "/videos", "Video", args.VideoID, q)
}

// UpdateVideoArgs holds the video fields to change. Nil fields keep their current value.
type UpdateVideoArgs struct {
	Output
	VideoID             string   `json:"videoId" jsonschema:"Video ID"`
	Title               *string  `json:"title,omitempty" jsonschema:"New title"`
	Description         *string  `json:"description,omitempty" jsonschema:"New description"`
	Tags                []string `json:"tags,omitempty" jsonschema:"Replacement tag list"`
	CategoryID          *string  `json:"categoryId,omitempty" jsonschema:"Video category ID"`
	DefaultLanguage     *string  `json:"defaultLanguage,omitempty" jsonschema:"Language of title and description"`
	PrivacyStatus       *string  `json:"privacyStatus,omitempty" jsonschema:"public, private or unlisted"`
	PublishAt           *string  `json:"publishAt,omitempty" jsonschema:"Scheduled publish time (RFC 3339, private videos only)"`
	Embeddable          *bool    `json:"embeddable,omitempty" jsonschema:"Whether the video can be embedded"`
	PublicStatsViewable *bool    `json:"publicStatsViewable,omitempty" jsonschema:"Whether statistics are public"`
	MadeForKids         *bool    `json:"madeForKids,omitempty" jsonschema:"Self-declared made-for-kids flag"`
}

func (a UpdateVideoArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("videoId", a.VideoID)
	c.enumPtr("privacyStatus", a.PrivacyStatus, privacyStatuses)
	return c.err()
}

// UpdateVideo reads the current snippet and status, merges the supplied fields and
// writes both parts back. Upstream replaces whole parts on update.
func (c *Client) UpdateVideo(ctx context.Context, args UpdateVideoArgs) (*ytapi.Video, error) {
	const updateParts = "snippet,status"

	q := base.Query{}
	q.Set("part", updateParts)
	raw, err := getOne[json.RawMessage](ctx, c, "/videos", "Video", args.VideoID, q)
	if err != nil {
		return nil, err
	}
	var current ytapi.Video
	if err := json.Unmarshal(raw, &current); err != nil {
		return nil, fmt.Errorf("decode current video: %w", err)
	}

	snippet := current.Snippet
	if snippet == nil {
		snippet = &ytapi.VideoSnippet{}
	}
	merge(&snippet.Title, args.Title)
	merge(&snippet.Description, args.Description)
	merge(&snippet.CategoryId, args.CategoryID)
	merge(&snippet.DefaultLanguage, args.DefaultLanguage)
	if args.Tags != nil {
		snippet.Tags = args.Tags
	}

	status := current.Status
	if status == nil {
		status = &ytapi.VideoStatus{}
	}
	merge(&status.PrivacyStatus, args.PrivacyStatus)
	merge(&status.PublishAt, args.PublishAt)
	merge(&status.Embeddable, args.Embeddable)
	merge(&status.PublicStatsViewable, args.PublicStatsViewable)
	merge(&status.SelfDeclaredMadeForKids, args.MadeForKids)
	status.ForceSendFields = statusFlagsToSend(gjson.GetBytes(raw, "status"), args)

	body := &ytapi.Video{Id: current.Id, Snippet: snippet, Status: status}
	return write[*ytapi.Video](ctx, c, http.MethodPut, "/videos", base.Query{"part": updateParts}, body)
}

// statusFlagsToSend lists the boolean status fields that must be written even when
// false: those upstream returned and those the caller set. An absent flag stays absent.
func statusFlagsToSend(current gjson.Result, args UpdateVideoArgs) []string {
	flags := []struct {
		key      string
		field    string
		supplied bool
	}{
		{"embeddable", "Embeddable", args.Embeddable != nil},
		{"publicStatsViewable", "PublicStatsViewable", args.PublicStatsViewable != nil},
		{"selfDeclaredMadeForKids", "SelfDeclaredMadeForKids", args.MadeForKids != nil},
	}

	var send []string
	for _, f := range flags {
		if f.supplied || current.Get(f.key).Exists() {
			send = append(send, f.field)
		}
	}
	return send
}

// DeleteVideoArgs identifies the video to delete
type DeleteVideoArgs struct {
	Output
	VideoID string `json:"videoId" jsonschema:"Video ID"`
}

func (a DeleteVideoArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("videoId", a.VideoID)
	return c.err()
}

// DeleteVideo deletes a video owned by the caller
func (c *Client) DeleteVideo(ctx context.Context, args DeleteVideoArgs) (ActionResult, error) {
	return c.remove(ctx, "/videos", "Video", "video", args.VideoID)
}

// RateVideoArgs sets the caller's rating on a video
type RateVideoArgs struct {
	Output
	VideoID string `json:"videoId" jsonschema:"Video ID"`
	Rating  string `json:"rating" jsonschema:"like, dislike or none"`
}

func (a RateVideoArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("videoId", a.VideoID)
	c.required("rating", a.Rating)
	c.enum("rating", a.Rating, videoRatings)
	return c.err()
}

// RateVideo adds or removes a like/dislike
func (c *Client) RateVideo(ctx context.Context, args RateVideoArgs) (ActionResult, error) {
	q := base.Query{}
	q.Set("id", args.VideoID).Set("rating", args.Rating)
	err := c.base.Do(ctx, base.Request{Method: http.MethodPost, Path: "/videos/rate", Query: q, Entity: "Video", ID: args.VideoID}, nil)
	if err != nil {
		return ActionResult{}, err
	}
	r := done("rate", "video", args.VideoID)
	r.Detail = args.Rating
	return r, nil
}

// GetVideoRatingArgs lists the caller's ratings for videos
type GetVideoRatingArgs struct {
	Output
	IDs []string `json:"ids" jsonschema:"Video IDs (max 50)"`
}

func (a GetVideoRatingArgs) Validate() error {
	c := newChecks(a.Output)
	if len(a.IDs) == 0 {
		c.fail("ids", "is required")
	}
	c.ids("ids", a.IDs, MaxIDs)
	return c.err()
}

// VideoRatingsResult lists the caller's rating per video
type VideoRatingsResult struct {
	Items []*ytapi.VideoRating `json:"items"`
	Count int                  `json:"count"`
}

func (r VideoRatingsResult) LogValue() slog.Value {
	return slog.GroupValue(slog.Int("count", r.Count))
}

// GetVideoRating returns the caller's rating for each requested video
func (c *Client) GetVideoRating(ctx context.Context, args GetVideoRatingArgs) (VideoRatingsResult, error) {
	q := base.Query{}
	q.SetList("id", args.IDs)

	var resp ytapi.VideoGetRatingResponse
	if err := c.base.Do(ctx, base.Request{Path: "/videos/getRating", Query: q, Entity: "Video", ID: strings.Join(args.IDs, ",")}, &resp); err != nil {
		return VideoRatingsResult{}, err
	}

	items := resp.Items
	if items == nil {
		items = []*ytapi.VideoRating{}
	}
	return VideoRatingsResult{Items: items, Count: len(items)}, nil
}

// ReportVideoAbuseArgs files an abuse report
type ReportVideoAbuseArgs struct {
	Output
	VideoID           string `json:"videoId" jsonschema:"Video ID"`
	ReasonID          string `json:"reasonId" jsonschema:"Abuse reason ID (see youtube_list_abuse_report_reasons)"`
	SecondaryReasonID string `json:"secondaryReasonId,omitempty" jsonschema:"Secondary reason ID"`
	Comments          string `json:"comments,omitempty" jsonschema:"Additional information"`
	Language          string `json:"language,omitempty" jsonschema:"Language the reporter speaks"`
}

func (a ReportVideoAbuseArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("videoId", a.VideoID)
	c.required("reasonId", a.ReasonID)
	return c.err()
}

// ReportVideoAbuse reports a video for abusive content
func (c *Client) ReportVideoAbuse(ctx context.Context, args ReportVideoAbuseArgs) (ActionResult, error) {
	body := &ytapi.VideoAbuseReport{
		VideoId:           args.VideoID,
		ReasonId:          args.ReasonID,
		SecondaryReasonId: args.SecondaryReasonID,
		Comments:          args.Comments,
		Language:          args.Language,
	}
	err := c.base.Do(ctx, base.Request{Method: http.MethodPost, Path: "/videos/reportAbuse", Body: body, Entity: "Video", ID: args.VideoID}, nil)
	if err != nil {
		return ActionResult{}, err
	}
	r := done("report_abuse", "video", args.VideoID)
	r.Detail = args.ReasonID
	return r, nil
}
