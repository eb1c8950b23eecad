package youtube

import (
	"context"
	"net/http"

	ytapi "google.golang.org/api/youtube/v3"

	"github.com/olgasafonova/youtube-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/youtube-mcp-server/internal/errors"
)

const defaultChannelParts = "snippet,statistics,contentDetails"

// ListChannelsArgs selects channels by id, legacy username, handle or ownership.
type ListChannelsArgs struct {
	Output
	IDs         []string `json:"ids,omitempty" jsonschema:"Channel IDs (max 50)"`
	ForUsername string   `json:"forUsername,omitempty" jsonschema:"Legacy YouTube username"`
	ForHandle   string   `json:"forHandle,omitempty" jsonschema:"Channel handle, with or without @"`
	Mine        bool     `json:"mine,omitempty" jsonschema:"Channels owned by the authenticated user"`
	Hl          string   `json:"hl,omitempty" jsonschema:"Language for localized metadata"`
	Part        []string `json:"part,omitempty" jsonschema:"Resource parts (default snippet,statistics,contentDetails)"`
	MaxResults  int      `json:"maxResults,omitempty" jsonschema:"Page size 1-50"`
	PageToken   string   `json:"pageToken,omitempty" jsonschema:"Continuation token from a previous page"`
}

func (a ListChannelsArgs) Validate() error {
	c := newChecks(a.Output)
	c.exactlyOne(map[string]bool{
		"ids":         len(a.IDs) > 0,
		"forUsername": a.ForUsername != "",
		"forHandle":   a.ForHandle != "",
		"mine":        a.Mine,
	})
	c.ids("ids", a.IDs, MaxIDs)
	c.maxResults(a.MaxResults, MaxResults)
	return c.err()
}

// ListChannels returns a page of channels
func (c *Client) ListChannels(ctx context.Context, args ListChannelsArgs) (Page[*ytapi.Channel], error) {
	q := base.Query{}
	q.Set("part", parts(args.Part, defaultChannelParts)).
		SetList("id", args.IDs).
		Set("forUsername", args.ForUsername).
		Set("forHandle", args.ForHandle).
		SetTrue("mine", args.Mine).
		Set("hl", args.Hl).
		SetInt("maxResults", args.MaxResults).
		Set("pageToken", args.PageToken)
	return list[*ytapi.Channel](ctx, c, "/channels", q)
}

// GetChannelArgs identifies a single channel
type GetChannelArgs struct {
	Output
	ChannelID string   `json:"channelId" jsonschema:"Channel ID (UC...)"`
	Part      []string `json:"part,omitempty" jsonschema:"Resource parts (default snippet,statistics,contentDetails)"`
}

func (a GetChannelArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("channelId", a.ChannelID)
	return c.err()
}

// GetChannel fetches one channel by id
func (c *Client) GetChannel(ctx context.Context, args GetChannelArgs) (*ytapi.Channel, error) {
	q := base.Query{}
	q.Set("part", parts(args.Part, defaultChannelParts))
	return getOne[*ytapi.Channel](ctx, c, "/channels", "Channel", args.ChannelID, q)
}

// GetMyChannelArgs selects parts of the caller's own channel
type GetMyChannelArgs struct {
	Output
	Part []string `json:"part,omitempty" jsonschema:"Resource parts (default snippet,statistics,contentDetails)"`
}

func (a GetMyChannelArgs) Validate() error {
	return newChecks(a.Output).err()
}

// GetMyChannel fetches the channel of the authenticated user. Requires an access token.
func (c *Client) GetMyChannel(ctx context.Context, args GetMyChannelArgs) (*ytapi.Channel, error) {
	q := base.Query{}
	q.Set("part", parts(args.Part, defaultChannelParts)).SetTrue("mine", true)

	var resp ListResponse[*ytapi.Channel]
	if err := c.base.Do(ctx, base.Request{Path: "/channels", Query: q, Entity: "Channel", ID: "mine"}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, apierrors.NewNotFoundError("Channel", "mine")
	}
	return resp.Items[0], nil
}

// UpdateChannelArgs holds the branding fields to change. Nil fields keep their current value.
type UpdateChannelArgs struct {
	Output
	ChannelID           string  `json:"channelId" jsonschema:"Channel ID"`
	Description         *string `json:"description,omitempty" jsonschema:"Channel description"`
	Keywords            *string `json:"keywords,omitempty" jsonschema:"Space-separated channel keywords"`
	DefaultLanguage     *string `json:"defaultLanguage,omitempty" jsonschema:"Language of the channel metadata"`
	Country             *string `json:"country,omitempty" jsonschema:"Country the channel is associated with"`
	UnsubscribedTrailer *string `json:"unsubscribedTrailer,omitempty" jsonschema:"Video ID of the trailer shown to non-subscribers"`
}

func (a UpdateChannelArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("channelId", a.ChannelID)
	return c.err()
}

// UpdateChannel merges the supplied fields into brandingSettings.channel and writes the part back.
func (c *Client) UpdateChannel(ctx context.Context, args UpdateChannelArgs) (*ytapi.Channel, error) {
	const updateParts = "brandingSettings"

	q := base.Query{}
	q.Set("part", updateParts)
	current, err := getOne[*ytapi.Channel](ctx, c, "/channels", "Channel", args.ChannelID, q)
	if err != nil {
		return nil, err
	}

	branding := current.BrandingSettings
	if branding == nil {
		branding = &ytapi.ChannelBrandingSettings{}
	}
	settings := branding.Channel
	if settings == nil {
		settings = &ytapi.ChannelSettings{}
		branding.Channel = settings
	}
	merge(&settings.Description, args.Description)
	merge(&settings.Keywords, args.Keywords)
	merge(&settings.DefaultLanguage, args.DefaultLanguage)
	merge(&settings.Country, args.Country)
	merge(&settings.UnsubscribedTrailer, args.UnsubscribedTrailer)

	body := &ytapi.Channel{Id: current.Id, BrandingSettings: branding}
	return write[*ytapi.Channel](ctx, c, http.MethodPut, "/channels", base.Query{"part": updateParts}, body)
}
