package youtube

import (
	"context"
	"net/http"

	ytapi "google.golang.org/api/youtube/v3"

	"github.com/olgasafonova/youtube-mcp-server/internal/base"
)

const defaultSubscriptionParts = "snippet,contentDetails"

// ListSubscriptionsArgs selects subscriptions by channel, id or the caller's relationships.
type ListSubscriptionsArgs struct {
	Output
	ChannelID           string   `json:"channelId,omitempty" jsonschema:"Subscriptions of this channel"`
	IDs                 []string `json:"ids,omitempty" jsonschema:"Subscription IDs (max 50)"`
	Mine                bool     `json:"mine,omitempty" jsonschema:"Subscriptions of the authenticated user"`
	MyRecentSubscribers bool     `json:"myRecentSubscribers,omitempty" jsonschema:"Recent subscribers of the authenticated user"`
	MySubscribers       bool     `json:"mySubscribers,omitempty" jsonschema:"Subscribers of the authenticated user"`
	ForChannelID        []string `json:"forChannelId,omitempty" jsonschema:"Only subscriptions to these channels (max 50)"`
	Order               string   `json:"order,omitempty" jsonschema:"alphabetical, relevance (default) or unread"`
	Part                []string `json:"part,omitempty" jsonschema:"Resource parts (default snippet,contentDetails)"`
	MaxResults          int      `json:"maxResults,omitempty" jsonschema:"Page size 1-50"`
	PageToken           string   `json:"pageToken,omitempty" jsonschema:"Continuation token from a previous page"`
}

func (a ListSubscriptionsArgs) Validate() error {
	c := newChecks(a.Output)
	c.exactlyOne(map[string]bool{
		"channelId":           a.ChannelID != "",
		"ids":                 len(a.IDs) > 0,
		"mine":                a.Mine,
		"myRecentSubscribers": a.MyRecentSubscribers,
		"mySubscribers":       a.MySubscribers,
	})
	c.ids("ids", a.IDs, MaxIDs)
	c.ids("forChannelId", a.ForChannelID, MaxIDs)
	c.enum("order", a.Order, subscriptionOrders)
	c.maxResults(a.MaxResults, MaxResults)
	return c.err()
}

// ListSubscriptions returns a page of subscriptions
func (c *Client) ListSubscriptions(ctx context.Context, args ListSubscriptionsArgs) (Page[*ytapi.Subscription], error) {
	q := base.Query{}
	q.Set("part", parts(args.Part, defaultSubscriptionParts)).
		Set("channelId", args.ChannelID).
		SetList("id", args.IDs).
		SetTrue("mine", args.Mine).
		SetTrue("myRecentSubscribers", args.MyRecentSubscribers).
		SetTrue("mySubscribers", args.MySubscribers).
		SetList("forChannelId", args.ForChannelID).
		Set("order", args.Order).
		SetInt("maxResults", args.MaxResults).
		Set("pageToken", args.PageToken)
	return list[*ytapi.Subscription](ctx, c, "/subscriptions", q)
}

// SubscribeArgs identifies the channel to subscribe to
type SubscribeArgs struct {
	Output
	ChannelID string `json:"channelId" jsonschema:"Channel to subscribe to"`
}

func (a SubscribeArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("channelId", a.ChannelID)
	return c.err()
}

// Subscribe subscribes the caller to a channel
func (c *Client) Subscribe(ctx context.Context, args SubscribeArgs) (*ytapi.Subscription, error) {
	body := &ytapi.Subscription{
		Snippet: &ytapi.SubscriptionSnippet{
			ResourceId: &ytapi.ResourceId{Kind: "youtube#channel", ChannelId: args.ChannelID},
		},
	}
	return write[*ytapi.Subscription](ctx, c, http.MethodPost, "/subscriptions", base.Query{"part": "snippet"}, body)
}

// UnsubscribeArgs identifies the subscription to remove
type UnsubscribeArgs struct {
	Output
	SubscriptionID string `json:"subscriptionId" jsonschema:"Subscription ID (not the channel ID)"`
}

func (a UnsubscribeArgs) Validate() error {
	c := newChecks(a.Output)
	c.required("subscriptionId", a.SubscriptionID)
	return c.err()
}

// Unsubscribe deletes a subscription
func (c *Client) Unsubscribe(ctx context.Context, args UnsubscribeArgs) (ActionResult, error) {
	return c.remove(ctx, "/subscriptions", "Subscription", "subscription", args.SubscriptionID)
}
