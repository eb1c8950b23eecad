package youtube

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	ytapi "google.golang.org/api/youtube/v3"

	"github.com/olgasafonova/youtube-mcp-server/internal/base"
)

const defaultCaptionContentType = "application/octet-stream"

// ListCaptionsArgs lists caption tracks of a video
type ListCaptionsArgs struct {
	Output
	VideoID string   `json:"videoId" jsonschema:"Video whose caption tracks to list"`
	IDs     []string `json:"ids,omitempty" jsonschema:"Only these caption IDs (max 50)"`
}

func (a ListCaptionsArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("videoId", a.VideoID)
	c.ids("ids", a.IDs, MaxIDs)
	return c.err()
}

// ListCaptions returns the caption tracks of a video. The endpoint is not paginated.
func (c *Client) ListCaptions(ctx context.Context, args ListCaptionsArgs) (Page[*ytapi.Caption], error) {
	q := base.Query{}
	q.Set("part", "snippet").
		Set("videoId", args.VideoID).
		SetList("id", args.IDs)
	return list[*ytapi.Caption](ctx, c, "/captions", q)
}

// InsertCaptionArgs uploads a new caption track
type InsertCaptionArgs struct {
	Output
	VideoID     string `json:"videoId" jsonschema:"Video to add the track to"`
	Language    string `json:"language" jsonschema:"BCP-47 language of the track"`
	Name        string `json:"name,omitempty" jsonschema:"Track name"`
	Content     string `json:"content" jsonschema:"Caption file contents (SRT, VTT, SBV...)"`
	ContentType string `json:"contentType,omitempty" jsonschema:"MIME type of the caption file"`
	IsDraft     bool   `json:"isDraft,omitempty" jsonschema:"Upload as a draft track"`
	Sync        bool   `json:"sync,omitempty" jsonschema:"Let YouTube sync a plain transcript to the audio"`
}

func (a InsertCaptionArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("videoId", a.VideoID)
	c.required("language", a.Language)
	c.required("content", a.Content)
	return c.err()
}

// InsertCaption uploads a caption track as a multipart request to the upload endpoint.
func (c *Client) InsertCaption(ctx context.Context, args InsertCaptionArgs) (*ytapi.Caption, error) {
	meta := &ytapi.Caption{
		Snippet: &ytapi.CaptionSnippet{
			VideoId:  args.VideoID,
			Language: args.Language,
			Name:     args.Name,
			IsDraft:  args.IsDraft,
		},
	}

	q := base.Query{}
	q.Set("part", "snippet").SetTrue("sync", args.Sync)

	var out *ytapi.Caption
	err := c.base.Do(ctx, base.Request{
		Method: http.MethodPost,
		Path:   "/captions",
		Query:  q,
		Body:   meta,
		Media:  captionMedia(args.Content, args.ContentType),
		Entity: "Video",
		ID:     args.VideoID,
	}, &out)
	return out, err
}

// UpdateCaptionArgs changes the draft flag and/or replaces the track contents
type UpdateCaptionArgs struct {
	Output
	CaptionID   string `json:"captionId" jsonschema:"Caption track ID"`
	IsDraft     *bool  `json:"isDraft,omitempty" jsonschema:"New draft status"`
	Content     string `json:"content,omitempty" jsonschema:"Replacement caption file contents"`
	ContentType string `json:"contentType,omitempty" jsonschema:"MIME type of the caption file"`
	Sync        bool   `json:"sync,omitempty" jsonschema:"Let YouTube sync a plain transcript to the audio"`
}

func (a UpdateCaptionArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("captionId", a.CaptionID)
	if a.IsDraft == nil && a.Content == "" {
		c.fail("isDraft|content", "one of isDraft, content is required")
	}
	return c.err()
}

// UpdateCaption updates track metadata with a JSON PUT, or replaces the track with a
// multipart PUT to the upload endpoint when new content is supplied.
func (c *Client) UpdateCaption(ctx context.Context, args UpdateCaptionArgs) (*ytapi.Caption, error) {
	snippet := &ytapi.CaptionSnippet{}
	if args.IsDraft != nil {
		snippet.IsDraft = *args.IsDraft
		snippet.ForceSendFields = []string{"IsDraft"}
	}
	meta := &ytapi.Caption{Id: args.CaptionID, Snippet: snippet}

	q := base.Query{}
	q.Set("part", "snippet").SetTrue("sync", args.Sync)

	req := base.Request{
		Method: http.MethodPut,
		Path:   "/captions",
		Query:  q,
		Body:   meta,
		Entity: "Caption",
		ID:     args.CaptionID,
	}
	if args.Content != "" {
		req.Media = captionMedia(args.Content, args.ContentType)
	}

	var out *ytapi.Caption
	err := c.base.Do(ctx, req, &out)
	return out, err
}

func captionMedia(content, contentType string) *base.Media {
	if contentType == "" {
		contentType = defaultCaptionContentType
	}
	return &base.Media{ContentType: contentType, Content: []byte(content)}
}

// DeleteCaptionArgs identifies the caption track to delete
type DeleteCaptionArgs struct {
	Output
	CaptionID string `json:"captionId" jsonschema:"Caption track ID"`
}

func (a DeleteCaptionArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("captionId", a.CaptionID)
	return c.err()
}

// DeleteCaption deletes a caption track
func (c *Client) DeleteCaption(ctx context.Context, args DeleteCaptionArgs) (ActionResult, error) {
	return c.remove(ctx, "/captions", "Caption", "caption", args.CaptionID)
}

// DownloadCaptionArgs selects a track and optional conversion
type DownloadCaptionArgs struct {
	Output
	CaptionID string `json:"captionId" jsonschema:"Caption track ID"`
	Tfmt      string `json:"tfmt,omitempty" jsonschema:"Convert to sbv, scc, srt, ttml or vtt"`
	Tlang     string `json:"tlang,omitempty" jsonschema:"Machine-translate into this language"`
}

func (a DownloadCaptionArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("captionId", a.CaptionID)
	c.enum("tfmt", a.Tfmt, captionFormats)
	return c.err()
}

// CaptionDownload is the raw text of a caption track
type CaptionDownload struct {
	ID       string `json:"id"`
	Format   string `json:"format,omitempty"`
	Language string `json:"language,omitempty"`
	Content  string `json:"content"`
}

func (d CaptionDownload) LogValue() slog.Value {
	return slog.GroupValue(slog.String("id", d.ID), slog.Int("bytes", len(d.Content)))
}

// DownloadCaption fetches the caption file as text. The caller must own the video.
func (c *Client) DownloadCaption(ctx context.Context, args DownloadCaptionArgs) (CaptionDownload, error) {
	q := base.Query{}
	q.Set("tfmt", args.Tfmt).Set("tlang", args.Tlang)

	var content string
	err := c.base.Do(ctx, base.Request{
		Path:   "/captions/" + url.PathEscape(args.CaptionID),
		Query:  q,
		Entity: "Caption",
		ID:     args.CaptionID,
	}, &content)
	if err != nil {
		return CaptionDownload{}, err
	}
	return CaptionDownload{ID: args.CaptionID, Format: args.Tfmt, Language: args.Tlang, Content: content}, nil
}
