package youtube

import (
	"context"
	"net/http"

	ytapi "google.golang.org/api/youtube/v3"

	"github.com/olgasafonova/youtube-mcp-server/internal/base"
)

const defaultSectionParts = "snippet,contentDetails"

// ListChannelSectionsArgs selects the shelves on a channel page
type ListChannelSectionsArgs struct {
	Output
	ChannelID string   `json:"channelId,omitempty" jsonschema:"Sections of this channel"`
	IDs       []string `json:"ids,omitempty" jsonschema:"Channel section IDs (max 50)"`
	Mine      bool     `json:"mine,omitempty" jsonschema:"Sections of the authenticated user's channel"`
	Hl        string   `json:"hl,omitempty" jsonschema:"Language for localized metadata"`
	Part      []string `json:"part,omitempty" jsonschema:"Resource parts (default snippet,contentDetails)"`
}

func (a ListChannelSectionsArgs) Validate() error {
	c := newChecks(a.Output)
	c.exactlyOne(map[string]bool{"channelId": a.ChannelID != "", "ids": len(a.IDs) > 0, "mine": a.Mine})
	c.ids("ids", a.IDs, MaxIDs)
	return c.err()
}

// ListChannelSections returns the sections of a channel
func (c *Client) ListChannelSections(ctx context.Context, args ListChannelSectionsArgs) (Page[*ytapi.ChannelSection], error) {
	q := base.Query{}
	q.Set("part", parts(args.Part, defaultSectionParts)).
		Set("channelId", args.ChannelID).
		SetList("id", args.IDs).
		SetTrue("mine", args.Mine).
		Set("hl", args.Hl)
	return list[*ytapi.ChannelSection](ctx, c, "/channelSections", q)
}

// CreateChannelSectionArgs describes a new channel section
type CreateChannelSectionArgs struct {
	Output
	Type        string   `json:"type" jsonschema:"Section type, e.g. singlePlaylist, multiplePlaylists, multipleChannels, recentUploads"`
	Title       string   `json:"title,omitempty" jsonschema:"Title (required for multiple* types)"`
	Position    *int64   `json:"position,omitempty" jsonschema:"Zero-based position on the channel page"`
	PlaylistIDs []string `json:"playlistIds,omitempty" jsonschema:"Playlists shown in the section"`
	ChannelIDs  []string `json:"channelIds,omitempty" jsonschema:"Channels shown in the section"`
}

func (a CreateChannelSectionArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("type", a.Type)
	c.enum("type", a.Type, sectionTypes)
	c.ids("playlistIds", a.PlaylistIDs, MaxIDs)
	c.ids("channelIds", a.ChannelIDs, MaxIDs)
	return c.err()
}

// CreateChannelSection adds a section to the caller's channel
func (c *Client) CreateChannelSection(ctx context.Context, args CreateChannelSectionArgs) (*ytapi.ChannelSection, error) {
	body := &ytapi.ChannelSection{
		Snippet: &ytapi.ChannelSectionSnippet{
			Type:     args.Type,
			Title:    args.Title,
			Position: args.Position,
		},
	}
	part := "snippet"
	if len(args.PlaylistIDs) > 0 || len(args.ChannelIDs) > 0 {
		body.ContentDetails = &ytapi.ChannelSectionContentDetails{
			Playlists: args.PlaylistIDs,
			Channels:  args.ChannelIDs,
		}
		part = defaultSectionParts
	}
	return write[*ytapi.ChannelSection](ctx, c, http.MethodPost, "/channelSections", base.Query{"part": part}, body)
}

// UpdateChannelSectionArgs holds the section fields to change. Nil fields keep their current value.
type UpdateChannelSectionArgs struct {
	Output
	SectionID   string   `json:"sectionId" jsonschema:"Channel section ID"`
	Type        *string  `json:"type,omitempty" jsonschema:"New section type"`
	Title       *string  `json:"title,omitempty" jsonschema:"New title"`
	Position    *int64   `json:"position,omitempty" jsonschema:"New zero-based position"`
	PlaylistIDs []string `json:"playlistIds,omitempty" jsonschema:"Replacement playlist list"`
	ChannelIDs  []string `json:"channelIds,omitempty" jsonschema:"Replacement channel list"`
}

func (a UpdateChannelSectionArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("sectionId", a.SectionID)
	c.enumPtr("type", a.Type, sectionTypes)
	c.ids("playlistIds", a.PlaylistIDs, MaxIDs)
	c.ids("channelIds", a.ChannelIDs, MaxIDs)
	return c.err()
}

// UpdateChannelSection reads the section, merges the supplied fields and writes it back.
func (c *Client) UpdateChannelSection(ctx context.Context, args UpdateChannelSectionArgs) (*ytapi.ChannelSection, error) {
	q := base.Query{}
	q.Set("part", defaultSectionParts)
	current, err := getOne[*ytapi.ChannelSection](ctx, c, "/channelSections", "ChannelSection", args.SectionID, q)
	if err != nil {
		return nil, err
	}

	snippet := current.Snippet
	if snippet == nil {
		snippet = &ytapi.ChannelSectionSnippet{}
	}
	merge(&snippet.Type, args.Type)
	merge(&snippet.Title, args.Title)
	if args.Position != nil {
		snippet.Position = args.Position
	}

	details := current.ContentDetails
	if details == nil {
		details = &ytapi.ChannelSectionContentDetails{}
	}
	if args.PlaylistIDs != nil {
		details.Playlists = args.PlaylistIDs
	}
	if args.ChannelIDs != nil {
		details.Channels = args.ChannelIDs
	}

	body := &ytapi.ChannelSection{Id: current.Id, Snippet: snippet, ContentDetails: details}
	return write[*ytapi.ChannelSection](ctx, c, http.MethodPut, "/channelSections", base.Query{"part": defaultSectionParts}, body)
}

// DeleteChannelSectionArgs identifies the section to delete
type DeleteChannelSectionArgs struct {
	Output
	SectionID string `json:"sectionId" jsonschema:"Channel section ID"`
}

func (a DeleteChannelSectionArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("sectionId", a.SectionID)
	return c.err()
}

// DeleteChannelSection removes a section from the caller's channel
func (c *Client) DeleteChannelSection(ctx context.Context, args DeleteChannelSectionArgs) (ActionResult, error) {
	return c.remove(ctx, "/channelSections", "ChannelSection", "channelSection", args.SectionID)
}
