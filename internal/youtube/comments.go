package youtube

import (
	"context"
	"net/http"
	"strings"

	ytapi "google.golang.org/api/youtube/v3"

	"github.com/olgasafonova/youtube-mcp-server/internal/base"
)

const (
	defaultThreadParts  = "snippet,replies"
	defaultCommentParts = "snippet"
)

// ListCommentThreadsArgs selects top-level comment threads.
type ListCommentThreadsArgs struct {
	Output
	VideoID                      string   `json:"videoId,omitempty" jsonschema:"Threads on this video"`
	AllThreadsRelatedToChannelID string   `json:"allThreadsRelatedToChannelId,omitempty" jsonschema:"Threads on any video of this channel"`
	IDs                          []string `json:"ids,omitempty" jsonschema:"Comment thread IDs (max 50)"`
	SearchTerms                  string   `json:"searchTerms,omitempty" jsonschema:"Only threads containing these terms"`
	Order                        string   `json:"order,omitempty" jsonschema:"time (default) or relevance"`
	ModerationStatus             string   `json:"moderationStatus,omitempty" jsonschema:"heldForReview, likelySpam or published (owner only)"`
	TextFormat                   string   `json:"textFormat,omitempty" jsonschema:"html (default) or plainText"`
	Part                         []string `json:"part,omitempty" jsonschema:"Resource parts (default snippet,replies)"`
	MaxResults                   int      `json:"maxResults,omitempty" jsonschema:"Page size 1-100"`
	PageToken                    string   `json:"pageToken,omitempty" jsonschema:"Continuation token from a previous page"`
}

func (a ListCommentThreadsArgs) Validate() error {
	c := newChecks(a.Output)
	c.exactlyOne(map[string]bool{
		"videoId":                      a.VideoID != "",
		"allThreadsRelatedToChannelId": a.AllThreadsRelatedToChannelID != "",
		"ids":                          len(a.IDs) > 0,
	})
	c.ids("ids", a.IDs, MaxIDs)
	c.enum("order", a.Order, threadOrders)
	c.enum("moderationStatus", a.ModerationStatus, threadModeration)
	c.enum("textFormat", a.TextFormat, textFormats)
	c.maxResults(a.MaxResults, MaxCommentResults)
	return c.err()
}

// ListCommentThreads returns a page of comment threads
func (c *Client) ListCommentThreads(ctx context.Context, args ListCommentThreadsArgs) (Page[*ytapi.CommentThread], error) {
	q := base.Query{}
	q.Set("part", parts(args.Part, defaultThreadParts)).
		Set("videoId", args.VideoID).
		Set("allThreadsRelatedToChannelId", args.AllThreadsRelatedToChannelID).
		SetList("id", args.IDs).
		Set("searchTerms", args.SearchTerms).
		Set("order", args.Order).
		Set("moderationStatus", args.ModerationStatus).
		Set("textFormat", args.TextFormat).
		SetInt("maxResults", args.MaxResults).
		Set("pageToken", args.PageToken)
	return list[*ytapi.CommentThread](ctx, c, "/commentThreads", q)
}

// GetCommentThreadArgs identifies a single comment thread
type GetCommentThreadArgs struct {
	Output
	CommentThreadID string   `json:"commentThreadId" jsonschema:"Comment thread ID"`
	Part            []string `json:"part,omitempty" jsonschema:"Resource parts (default snippet,replies)"`
}

func (a GetCommentThreadArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("commentThreadId", a.CommentThreadID)
	return c.err()
}

// GetCommentThread fetches one comment thread by id
func (c *Client) GetCommentThread(ctx context.Context, args GetCommentThreadArgs) (*ytapi.CommentThread, error) {
	q := base.Query{}
	q.Set("part", parts(args.Part, defaultThreadParts))
	return getOne[*ytapi.CommentThread](ctx, c, "/commentThreads", "CommentThread", args.CommentThreadID, q)
}

// CreateCommentThreadArgs posts a new top-level comment
type CreateCommentThreadArgs struct {
	Output
	VideoID   string `json:"videoId" jsonschema:"Video to comment on"`
	ChannelID string `json:"channelId,omitempty" jsonschema:"Channel that owns the video"`
	Text      string `json:"text" jsonschema:"Comment text"`
}

func (a CreateCommentThreadArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("videoId", a.VideoID)
	c.required("text", a.Text)
	return c.err()
}

// CreateCommentThread posts a top-level comment on a video
func (c *Client) CreateCommentThread(ctx context.Context, args CreateCommentThreadArgs) (*ytapi.CommentThread, error) {
	body := &ytapi.CommentThread{
		Snippet: &ytapi.CommentThreadSnippet{
			VideoId:   args.VideoID,
			ChannelId: args.ChannelID,
			TopLevelComment: &ytapi.Comment{
				Snippet: &ytapi.CommentSnippet{TextOriginal: args.Text},
			},
		},
	}
	return write[*ytapi.CommentThread](ctx, c, http.MethodPost, "/commentThreads", base.Query{"part": "snippet"}, body)
}

// ListCommentsArgs selects replies to a comment or comments by id.
type ListCommentsArgs struct {
	Output
	ParentID   string   `json:"parentId,omitempty" jsonschema:"Top-level comment whose replies to list"`
	IDs        []string `json:"ids,omitempty" jsonschema:"Comment IDs (max 50)"`
	TextFormat string   `json:"textFormat,omitempty" jsonschema:"html (default) or plainText"`
	Part       []string `json:"part,omitempty" jsonschema:"Resource parts (default snippet)"`
	MaxResults int      `json:"maxResults,omitempty" jsonschema:"Page size 1-100"`
	PageToken  string   `json:"pageToken,omitempty" jsonschema:"Continuation token from a previous page"`
}

func (a ListCommentsArgs) Validate() error {
	c := newChecks(a.Output)
	c.exactlyOne(map[string]bool{"parentId": a.ParentID != "", "ids": len(a.IDs) > 0})
	c.ids("ids", a.IDs, MaxIDs)
	c.enum("textFormat", a.TextFormat, textFormats)
	c.maxResults(a.MaxResults, MaxCommentResults)
	return c.err()
}

// ListComments returns a page of comments
func (c *Client) ListComments(ctx context.Context, args ListCommentsArgs) (Page[*ytapi.Comment], error) {
	q := base.Query{}
	q.Set("part", parts(args.Part, defaultCommentParts)).
		Set("parentId", args.ParentID).
		SetList("id", args.IDs).
		Set("textFormat", args.TextFormat).
		SetInt("maxResults", args.MaxResults).
		Set("pageToken", args.PageToken)
	return list[*ytapi.Comment](ctx, c, "/comments", q)
}

// GetCommentArgs identifies a single comment
type GetCommentArgs struct {
	Output
	CommentID  string `json:"commentId" jsonschema:"Comment ID"`
	TextFormat string `json:"textFormat,omitempty" jsonschema:"html (default) or plainText"`
}

func (a GetCommentArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("commentId", a.CommentID)
	c.enum("textFormat", a.TextFormat, textFormats)
	return c.err()
}

// GetComment fetches one comment by id
func (c *Client) GetComment(ctx context.Context, args GetCommentArgs) (*ytapi.Comment, error) {
	q := base.Query{}
	q.Set("part", defaultCommentParts).Set("textFormat", args.TextFormat)
	return getOne[*ytapi.Comment](ctx, c, "/comments", "Comment", args.CommentID, q)
}

// ReplyToCommentArgs posts a reply under a top-level comment
type ReplyToCommentArgs struct {
	Output
	ParentID string `json:"parentId" jsonschema:"Top-level comment to reply to"`
	Text     string `json:"text" jsonschema:"Reply text"`
}

func (a ReplyToCommentArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("parentId", a.ParentID)
	c.required("text", a.Text)
	return c.err()
}

// ReplyToComment posts a reply
func (c *Client) ReplyToComment(ctx context.Context, args ReplyToCommentArgs) (*ytapi.Comment, error) {
	body := &ytapi.Comment{
		Snippet: &ytapi.CommentSnippet{ParentId: args.ParentID, TextOriginal: args.Text},
	}
	return write[*ytapi.Comment](ctx, c, http.MethodPost, "/comments", base.Query{"part": "snippet"}, body)
}

// UpdateCommentArgs replaces the text of a comment
type UpdateCommentArgs struct {
	Output
	CommentID string `json:"commentId" jsonschema:"Comment ID"`
	Text      string `json:"text" jsonschema:"New comment text"`
}

func (a UpdateCommentArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("commentId", a.CommentID)
	c.required("text", a.Text)
	return c.err()
}

// UpdateComment edits a comment authored by the caller
func (c *Client) UpdateComment(ctx context.Context, args UpdateCommentArgs) (*ytapi.Comment, error) {
	body := &ytapi.Comment{
		Id:      args.CommentID,
		Snippet: &ytapi.CommentSnippet{TextOriginal: args.Text},
	}
	return write[*ytapi.Comment](ctx, c, http.MethodPut, "/comments", base.Query{"part": "snippet"}, body)
}

// DeleteCommentArgs identifies the comment to delete
type DeleteCommentArgs struct {
	Output
	CommentID string `json:"commentId" jsonschema:"Comment ID"`
}

func (a DeleteCommentArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("commentId", a.CommentID)
	return c.err()
}

// DeleteComment deletes a comment
func (c *Client) DeleteComment(ctx context.Context, args DeleteCommentArgs) (ActionResult, error) {
	return c.remove(ctx, "/comments", "Comment", "comment", args.CommentID)
}

// SetCommentModerationStatusArgs moderates one or more comments
type SetCommentModerationStatusArgs struct {
	Output
	IDs              []string `json:"ids" jsonschema:"Comment IDs (max 50)"`
	ModerationStatus string   `json:"moderationStatus" jsonschema:"heldForReview, published or rejected"`
	BanAuthor        bool     `json:"banAuthor,omitempty" jsonschema:"Also ban the author (rejected only)"`
}

func (a SetCommentModerationStatusArgs) Validate() error {
	c := newChecks(a.Output)
	if len(a.IDs) == 0 {
		c.fail("ids", "is required")
	}
	c.ids("ids", a.IDs, MaxIDs)
	c.required("moderationStatus", a.ModerationStatus)
	c.enum("moderationStatus", a.ModerationStatus, commentModeration)
	if a.BanAuthor && a.ModerationStatus != "rejected" {
		c.fail("banAuthor", "only allowed with moderationStatus rejected")
	}
	return c.err()
}

// SetCommentModerationStatus sets the moderation status of comments on the caller's channel
func (c *Client) SetCommentModerationStatus(ctx context.Context, args SetCommentModerationStatusArgs) (ActionResult, error) {
	q := base.Query{}
	q.SetList("id", args.IDs).
		Set("moderationStatus", args.ModerationStatus).
		SetTrue("banAuthor", args.BanAuthor)

	ids := strings.Join(args.IDs, ",")
	err := c.base.Do(ctx, base.Request{Method: http.MethodPost, Path: "/comments/setModerationStatus", Query: q, Entity: "Comment", ID: ids}, nil)
	if err != nil {
		return ActionResult{}, err
	}
	r := done("set_moderation_status", "comment", ids)
	r.Detail = args.ModerationStatus
	return r, nil
}
