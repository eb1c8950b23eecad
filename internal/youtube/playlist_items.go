package youtube

import (
	"context"
	"net/http"

	ytapi "google.golang.org/api/youtube/v3"

	"github.com/olgasafonova/youtube-mcp-server/internal/base"
)

const defaultPlaylistItemParts = "snippet,contentDetails"

// ListPlaylistItemsArgs selects items of a playlist or items by id.
type ListPlaylistItemsArgs struct {
	Output
	PlaylistID string   `json:"playlistId,omitempty" jsonschema:"Playlist whose items to list"`
	IDs        []string `json:"ids,omitempty" jsonschema:"Playlist item IDs (max 50)"`
	VideoID    string   `json:"videoId,omitempty" jsonschema:"Only items that contain this video"`
	Part       []string `json:"part,omitempty" jsonschema:"Resource parts (default snippet,contentDetails)"`
	MaxResults int      `json:"maxResults,omitempty" jsonschema:"Page size 1-50"`
	PageToken  string   `json:"pageToken,omitempty" jsonschema:"Continuation token from a previous page"`
}

func (a ListPlaylistItemsArgs) Validate() error {
	c := newChecks(a.Output)
	c.exactlyOne(map[string]bool{"playlistId": a.PlaylistID != "", "ids": len(a.IDs) > 0})
	c.ids("ids", a.IDs, MaxIDs)
	c.maxResults(a.MaxResults, MaxResults)
	return c.err()
}

// ListPlaylistItems returns a page of playlist items
func (c *Client) ListPlaylistItems(ctx context.Context, args ListPlaylistItemsArgs) (Page[*ytapi.PlaylistItem], error) {
	q := base.Query{}
	q.Set("part", parts(args.Part, defaultPlaylistItemParts)).
		Set("playlistId", args.PlaylistID).
		SetList("id", args.IDs).
		Set("videoId", args.VideoID).
		SetInt("maxResults", args.MaxResults).
		Set("pageToken", args.PageToken)
	return list[*ytapi.PlaylistItem](ctx, c, "/playlistItems", q)
}

// AddPlaylistItemArgs inserts a video into a playlist
type AddPlaylistItemArgs struct {
	Output
	PlaylistID string `json:"playlistId" jsonschema:"Playlist ID"`
	VideoID    string `json:"videoId" jsonschema:"Video to add"`
	Position   *int64 `json:"position,omitempty" jsonschema:"Zero-based position (default end of playlist)"`
	Note       string `json:"note,omitempty" jsonschema:"User-generated note for the item"`
}

func (a AddPlaylistItemArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("playlistId", a.PlaylistID)
	c.required("videoId", a.VideoID)
	if a.Position != nil && *a.Position < 0 {
		c.fail("position", "must not be negative")
	}
	return c.err()
}

// AddPlaylistItem appends or inserts a video into a playlist
func (c *Client) AddPlaylistItem(ctx context.Context, args AddPlaylistItemArgs) (*ytapi.PlaylistItem, error) {
	snippet := &ytapi.PlaylistItemSnippet{
		PlaylistId: args.PlaylistID,
		ResourceId: &ytapi.ResourceId{Kind: "youtube#video", VideoId: args.VideoID},
	}
	setPosition(snippet, args.Position)

	body := &ytapi.PlaylistItem{Snippet: snippet}
	part := "snippet"
	if args.Note != "" {
		body.ContentDetails = &ytapi.PlaylistItemContentDetails{Note: args.Note}
		part = "snippet,contentDetails"
	}
	return write[*ytapi.PlaylistItem](ctx, c, http.MethodPost, "/playlistItems", base.Query{"part": part}, body)
}

// UpdatePlaylistItemArgs moves an item or changes its note. Nil fields keep their current value.
type UpdatePlaylistItemArgs struct {
	Output
	PlaylistItemID string  `json:"playlistItemId" jsonschema:"Playlist item ID"`
	Position       *int64  `json:"position,omitempty" jsonschema:"New zero-based position"`
	Note           *string `json:"note,omitempty" jsonschema:"New note"`
}

func (a UpdatePlaylistItemArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("playlistItemId", a.PlaylistItemID)
	if a.Position != nil && *a.Position < 0 {
		c.fail("position", "must not be negative")
	}
	return c.err()
}

// UpdatePlaylistItem reads the item, merges position and note, and writes it back.
func (c *Client) UpdatePlaylistItem(ctx context.Context, args UpdatePlaylistItemArgs) (*ytapi.PlaylistItem, error) {
	const updateParts = "snippet,contentDetails"

	q := base.Query{}
	q.Set("part", updateParts)
	current, err := getOne[*ytapi.PlaylistItem](ctx, c, "/playlistItems", "PlaylistItem", args.PlaylistItemID, q)
	if err != nil {
		return nil, err
	}

	snippet := current.Snippet
	if snippet == nil {
		snippet = &ytapi.PlaylistItemSnippet{}
	}
	if args.Position != nil {
		setPosition(snippet, args.Position)
	} else {
		setPosition(snippet, &snippet.Position)
	}

	details := current.ContentDetails
	if details == nil {
		details = &ytapi.PlaylistItemContentDetails{}
	}
	merge(&details.Note, args.Note)

	body := &ytapi.PlaylistItem{Id: current.Id, Snippet: snippet, ContentDetails: details}
	return write[*ytapi.PlaylistItem](ctx, c, http.MethodPut, "/playlistItems", base.Query{"part": updateParts}, body)
}

// setPosition stores pos and forces it onto the wire so position 0 is not dropped.
func setPosition(s *ytapi.PlaylistItemSnippet, pos *int64) {
	if pos == nil {
		return
	}
	s.Position = *pos
	s.ForceSendFields = append(s.ForceSendFields, "Position")
}

// DeletePlaylistItemArgs identifies the playlist item to remove
type DeletePlaylistItemArgs struct {
	Output
	PlaylistItemID string `json:"playlistItemId" jsonschema:"Playlist item ID"`
}

func (a DeletePlaylistItemArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("playlistItemId", a.PlaylistItemID)
	return c.err()
}

// DeletePlaylistItem removes an item from its playlist
func (c *Client) DeletePlaylistItem(ctx context.Context, args DeletePlaylistItemArgs) (ActionResult, error) {
	return c.remove(ctx, "/playlistItems", "PlaylistItem", "playlistItem", args.PlaylistItemID)
}
