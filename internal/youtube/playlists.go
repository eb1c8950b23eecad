package youtube

import (
	"context"
	"net/http"

	ytapi "google.golang.org/api/youtube/v3"

	"github.com/olgasafonova/youtube-mcp-server/internal/base"
)

const defaultPlaylistParts = "snippet,contentDetails,status"

// ListPlaylistsArgs selects playlists by id, channel or ownership.
type ListPlaylistsArgs struct {
	Output
	IDs        []string `json:"ids,omitempty" jsonschema:"Playlist IDs (max 50)"`
	ChannelID  string   `json:"channelId,omitempty" jsonschema:"Channel whose playlists to list"`
	Mine       bool     `json:"mine,omitempty" jsonschema:"Playlists owned by the authenticated user"`
	Hl         string   `json:"hl,omitempty" jsonschema:"Language for localized metadata"`
	Part       []string `json:"part,omitempty" jsonschema:"Resource parts (default snippet,contentDetails,status)"`
	MaxResults int      `json:"maxResults,omitempty" jsonschema:"Page size 1-50"`
	PageToken  string   `json:"pageToken,omitempty" jsonschema:"Continuation token from a previous page"`
}

func (a ListPlaylistsArgs) Validate() error {
	c := newChecks(a.Output)
	c.exactlyOne(map[string]bool{"ids": len(a.IDs) > 0, "channelId": a.ChannelID != "", "mine": a.Mine})
	c.ids("ids", a.IDs, MaxIDs)
	c.maxResults(a.MaxResults, MaxResults)
	return c.err()
}

// ListPlaylists returns a page of playlists
func (c *Client) ListPlaylists(ctx context.Context, args ListPlaylistsArgs) (Page[*ytapi.Playlist], error) {
	q := base.Query{}
	q.Set("part", parts(args.Part, defaultPlaylistParts)).
		SetList("id", args.IDs).
		Set("channelId", args.ChannelID).
		SetTrue("mine", args.Mine).
		Set("hl", args.Hl).
		SetInt("maxResults", args.MaxResults).
		Set("pageToken", args.PageToken)
	return list[*ytapi.Playlist](ctx, c, "/playlists", q)
}

// GetPlaylistArgs identifies a single playlist
type GetPlaylistArgs struct {
	Output
	PlaylistID string   `json:"playlistId" jsonschema:"Playlist ID"`
	Part       []string `json:"part,omitempty" jsonschema:"Resource parts (default snippet,contentDetails,status)"`
}

func (a GetPlaylistArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("playlistId", a.PlaylistID)
	return c.err()
}

// GetPlaylist fetches one playlist by id
func (c *Client) GetPlaylist(ctx context.Context, args GetPlaylistArgs) (*ytapi.Playlist, error) {
	q := base.Query{}
	q.Set("part", parts(args.Part, defaultPlaylistParts))
	return getOne[*ytapi.Playlist](ctx, c, "/playlists", "Playlist", args.PlaylistID, q)
}

// CreatePlaylistArgs describes a new playlist
type CreatePlaylistArgs struct {
	Output
	Title           string   `json:"title" jsonschema:"Playlist title"`
	Description     string   `json:"description,omitempty" jsonschema:"Playlist description"`
	PrivacyStatus   string   `json:"privacyStatus,omitempty" jsonschema:"public, private (default) or unlisted"`
	Tags            []string `json:"tags,omitempty" jsonschema:"Playlist tags"`
	DefaultLanguage string   `json:"defaultLanguage,omitempty" jsonschema:"Language of title and description"`
}

func (a CreatePlaylistArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("title", a.Title)
	c.enum("privacyStatus", a.PrivacyStatus, privacyStatuses)
	return c.err()
}

// CreatePlaylist creates a playlist owned by the caller
func (c *Client) CreatePlaylist(ctx context.Context, args CreatePlaylistArgs) (*ytapi.Playlist, error) {
	privacy := args.PrivacyStatus
	if privacy == "" {
		privacy = "private"
	}
	body := &ytapi.Playlist{
		Snippet: &ytapi.PlaylistSnippet{
			Title:           args.Title,
			Description:     args.Description,
			Tags:            args.Tags,
			DefaultLanguage: args.DefaultLanguage,
		},
		Status: &ytapi.PlaylistStatus{PrivacyStatus: privacy},
	}
	return write[*ytapi.Playlist](ctx, c, http.MethodPost, "/playlists", base.Query{"part": "snippet,status"}, body)
}

// UpdatePlaylistArgs holds the playlist fields to change. Nil fields keep their current value.
type UpdatePlaylistArgs struct {
	Output
	PlaylistID      string   `json:"playlistId" jsonschema:"Playlist ID"`
	Title           *string  `json:"title,omitempty" jsonschema:"New title"`
	Description     *string  `json:"description,omitempty" jsonschema:"New description"`
	PrivacyStatus   *string  `json:"privacyStatus,omitempty" jsonschema:"public, private or unlisted"`
	Tags            []string `json:"tags,omitempty" jsonschema:"Replacement tag list"`
	DefaultLanguage *string  `json:"defaultLanguage,omitempty" jsonschema:"Language of title and description"`
}

func (a UpdatePlaylistArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("playlistId", a.PlaylistID)
	c.enumPtr("privacyStatus", a.PrivacyStatus, privacyStatuses)
	return c.err()
}

// UpdatePlaylist reads snippet and status, merges the supplied fields and writes them back.
func (c *Client) UpdatePlaylist(ctx context.Context, args UpdatePlaylistArgs) (*ytapi.Playlist, error) {
	const updateParts = "snippet,status"

	q := base.Query{}
	q.Set("part", updateParts)
	current, err := getOne[*ytapi.Playlist](ctx, c, "/playlists", "Playlist", args.PlaylistID, q)
	if err != nil {
		return nil, err
	}

	snippet := current.Snippet
	if snippet == nil {
		snippet = &ytapi.PlaylistSnippet{}
	}
	merge(&snippet.Title, args.Title)
	merge(&snippet.Description, args.Description)
	merge(&snippet.DefaultLanguage, args.DefaultLanguage)
	if args.Tags != nil {
		snippet.Tags = args.Tags
	}

	status := current.Status
	if status == nil {
		status = &ytapi.PlaylistStatus{}
	}
	merge(&status.PrivacyStatus, args.PrivacyStatus)

	body := &ytapi.Playlist{Id: current.Id, Snippet: snippet, Status: status}
	return write[*ytapi.Playlist](ctx, c, http.MethodPut, "/playlists", base.Query{"part": updateParts}, body)
}

// DeletePlaylistArgs identifies the playlist to delete
type DeletePlaylistArgs struct {
	Output
	PlaylistID string `json:"playlistId" jsonschema:"Playlist ID"`
}

func (a DeletePlaylistArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("playlistId", a.PlaylistID)
	return c.err()
}

// DeletePlaylist deletes a playlist owned by the caller
func (c *Client) DeletePlaylist(ctx context.Context, args DeletePlaylistArgs) (ActionResult, error) {
	return c.remove(ctx, "/playlists", "Playlist", "playlist", args.PlaylistID)
}
