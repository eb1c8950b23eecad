package tools

// AllTools contains all tool specifications for the YouTube MCP server.
// Tools are organized by resource family for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
//
// Every tool also accepts format: "json" (default) or "markdown".
var AllTools = []ToolSpec{
	// ==========================================================================
	// SEARCH TOOLS
	// ==========================================================================
	{
		Name:     "youtube_search",
		Method:   "Search",
		Title:    "Search YouTube",
		Category: "search",
		Entity:   "searchResult",
		Description: `Search YouTube for videos, channels and playlists at once.

USE WHEN: User asks "find videos about X", "search YouTube for X", or wants mixed result types.

NOT FOR: Fetching a known video or channel by ID (use youtube_get_video / youtube_get_channel).

PARAMETERS:
- q: Search terms (optional)
- type: Comma-separated list of video, channel, playlist (default all)
- order, publishedAfter, publishedBefore, regionCode, relevanceLanguage, safeSearch
- video filters (videoDuration, videoDefinition, ...) require type=video
- maxResults: 1-50, pageToken for the next page

RETURNS: Search results with kind, ID, title and channel. Costs 100 quota units per call.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_search_videos",
		Method:   "SearchVideos",
		Title:    "Search Videos",
		Category: "search",
		Entity:   "searchResult",
		Description: `Search YouTube for videos only, with video-specific filters.

USE WHEN: User asks "find short videos about X", "live streams on X", "HD tutorials for X".

NOT FOR: Finding channels or playlists (use youtube_search_channels / youtube_search_playlists).

PARAMETERS:
- q: Search terms
- videoDuration: any, short, medium, long
- videoDefinition, videoCaption, videoCategoryId, eventType
- forMine: Only the authenticated user's videos (OAuth)
- maxResults: 1-50, pageToken

RETURNS: Video search results. Use youtube_get_video for statistics and duration.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_search_channels",
		Method:   "SearchChannels",
		Title:    "Search Channels",
		Category: "search",
		Entity:   "searchResult",
		Description: `Search YouTube for channels only.

USE WHEN: User asks "find channels about X", "which creators cover X".

NOT FOR: Looking up a channel by handle (use youtube_list_channels with forHandle).

PARAMETERS:
- q: Search terms
- channelType: any or show
- order, regionCode, relevanceLanguage, maxResults, pageToken

RETURNS: Channel search results with channel IDs and titles.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_search_playlists",
		Method:   "SearchPlaylists",
		Title:    "Search Playlists",
		Category: "search",
		Entity:   "searchResult",
		Description: `Search YouTube for playlists only.

USE WHEN: User asks "find playlists about X", "course playlists for X".

NOT FOR: Listing a channel's own playlists (use youtube_list_playlists).

PARAMETERS:
- q: Search terms
- channelId: Restrict to one channel
- order, regionCode, maxResults, pageToken

RETURNS: Playlist search results with playlist IDs and titles.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// VIDEO TOOLS
	// ==========================================================================
	{
		Name:     "youtube_list_videos",
		Method:   "ListVideos",
		Title:    "List Videos",
		Category: "videos",
		Entity:   "video",
		Description: `List videos by IDs, by chart, or by the user's rating.

USE WHEN: User asks "details for these videos", "what's trending in NO", "videos I liked".

NOT FOR: Keyword search (use youtube_search_videos).

PARAMETERS:
- Exactly one of: ids (max 50), chart ("mostPopular"), myRating ("like"/"dislike", OAuth)
- regionCode, videoCategoryId: chart filters
- part: Resource parts (default snippet,contentDetails,statistics)
- maxResults: 1-50, pageToken

RETURNS: Videos with title, channel, views and duration.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_get_video",
		Method:   "GetVideo",
		Title:    "Get Video",
		Category: "videos",
		Entity:   "video",
		Description: `Get one video by ID.

USE WHEN: User shares a video ID or URL and asks "what is this video", "how many views".

NOT FOR: Several videos at once (use youtube_list_videos with ids).

PARAMETERS:
- videoId: Video ID (required)
- part: Resource parts (default snippet,contentDetails,statistics)

RETURNS: The full video resource. Fails with NotFound if the ID does not exist.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_update_video",
		Method:   "UpdateVideo",
		Title:    "Update Video",
		Category: "videos",
		Entity:   "video",
		Description: `Update a video's metadata or privacy settings. Requires OAuth as the owner.

USE WHEN: User says "rename my video", "make this video unlisted", "change the description".

NOT FOR: Playlist membership (use youtube_add_playlist_item).

PARAMETERS:
- videoId: Video ID (required)
- title, description, tags, categoryId, defaultLanguage
- privacyStatus, publishAt, embeddable, publicStatsViewable, madeForKids

Omitted fields keep their current values.

RETURNS: The updated video.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "youtube_delete_video",
		Method:   "DeleteVideo",
		Title:    "Delete Video",
		Category: "videos",
		Entity:   "action",
		Description: `Permanently delete a video. Requires OAuth as the owner.

USE WHEN: User explicitly asks to delete one of their videos.

NOT FOR: Hiding a video (use youtube_update_video with privacyStatus).

PARAMETERS:
- videoId: Video ID (required)

RETURNS: Confirmation with the deleted ID. This cannot be undone.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "youtube_rate_video",
		Method:   "RateVideo",
		Title:    "Rate Video",
		Category: "videos",
		Entity:   "action",
		Description: `Like, dislike or clear the rating of a video. Requires OAuth.

USE WHEN: User says "like this video", "remove my like".

NOT FOR: Reading the current rating (use youtube_get_video_rating).

PARAMETERS:
- videoId: Video ID (required)
- rating: like, dislike or none (required)

RETURNS: Confirmation of the applied rating.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_get_video_rating",
		Method:   "GetVideoRating",
		Title:    "Get Video Rating",
		Category: "videos",
		Entity:   "rating",
		Description: `Get the authenticated user's rating for videos. Requires OAuth.

USE WHEN: User asks "did I like this video", "which of these did I rate".

PARAMETERS:
- ids: Video IDs (required, max 50)

RETURNS: One rating (like, dislike, none, unspecified) per video.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_report_video_abuse",
		Method:   "ReportVideoAbuse",
		Title:    "Report Video Abuse",
		Category: "videos",
		Entity:   "action",
		Description: `Report a video for abusive content. Requires OAuth.

USE WHEN: User explicitly asks to report a video.

PARAMETERS:
- videoId: Video ID (required)
- reasonId: Reason from youtube_list_abuse_report_reasons (required)
- secondaryReasonId, comments, language

RETURNS: Confirmation that the report was filed.`,
		OpenWorld: true,
	},

	// ==========================================================================
	// CHANNEL TOOLS
	// ==========================================================================
	{
		Name:     "youtube_list_channels",
		Method:   "ListChannels",
		Title:    "List Channels",
		Category: "channels",
		Entity:   "channel",
		Description: `List channels by IDs, handle, legacy username, or the user's own.

USE WHEN: User asks "look up @handle", "stats for these channels", "find channel for user X".

NOT FOR: Keyword search (use youtube_search_channels).

PARAMETERS:
- Exactly one of: ids (max 50), forHandle, forUsername, mine (OAuth)
- part: Resource parts (default snippet,statistics,contentDetails)
- maxResults: 1-50, pageToken

RETURNS: Channels with title, handle, subscriber and video counts.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_get_channel",
		Method:   "GetChannel",
		Title:    "Get Channel",
		Category: "channels",
		Entity:   "channel",
		Description: `Get one channel by ID.

USE WHEN: User has a channel ID (UC...) and asks about the channel.

NOT FOR: Lookup by handle (use youtube_list_channels with forHandle).

PARAMETERS:
- channelId: Channel ID (required)
- part: Resource parts (default snippet,statistics,contentDetails)

RETURNS: The channel resource. Fails with NotFound if the ID does not exist.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_get_my_channel",
		Method:   "GetMyChannel",
		Title:    "Get My Channel",
		Category: "channels",
		Entity:   "channel",
		Description: `Get the authenticated user's channel. Requires OAuth.

USE WHEN: User asks "show my channel", "how many subscribers do I have".

PARAMETERS:
- part: Resource parts (default snippet,statistics,contentDetails)

RETURNS: The user's channel, including the uploads playlist ID.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_update_channel",
		Method:   "UpdateChannel",
		Title:    "Update Channel",
		Category: "channels",
		Entity:   "channel",
		Description: `Update a channel's branding settings. Requires OAuth as the owner.

USE WHEN: User says "change my channel description", "set my channel trailer".

PARAMETERS:
- channelId: Channel ID (required)
- description, keywords, defaultLanguage, country, unsubscribedTrailer

Omitted fields keep their current values.

RETURNS: The updated channel.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// PLAYLIST TOOLS
	// ==========================================================================
	{
		Name:     "youtube_list_playlists",
		Method:   "ListPlaylists",
		Title:    "List Playlists",
		Category: "playlists",
		Entity:   "playlist",
		Description: `List playlists by IDs, by channel, or the user's own.

USE WHEN: User asks "what playlists does channel X have", "show my playlists".

NOT FOR: The videos inside a playlist (use youtube_list_playlist_items).

PARAMETERS:
- Exactly one of: ids (max 50), channelId, mine (OAuth)
- maxResults: 1-50, pageToken

RETURNS: Playlists with title, channel, item count and privacy.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_get_playlist",
		Method:   "GetPlaylist",
		Title:    "Get Playlist",
		Category: "playlists",
		Entity:   "playlist",
		Description: `Get one playlist by ID.

USE WHEN: User shares a playlist ID or URL and asks about it.

PARAMETERS:
- playlistId: Playlist ID (required)

RETURNS: The playlist resource. Fails with NotFound if the ID does not exist.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_create_playlist",
		Method:   "CreatePlaylist",
		Title:    "Create Playlist",
		Category: "playlists",
		Entity:   "playlist",
		Description: `Create a playlist on the user's channel. Requires OAuth.

USE WHEN: User says "make a playlist called X".

PARAMETERS:
- title: Playlist title (required)
- description, tags, defaultLanguage
- privacyStatus: public, private (default) or unlisted

RETURNS: The created playlist with its new ID.`,
		OpenWorld: true,
	},
	{
		Name:     "youtube_update_playlist",
		Method:   "UpdatePlaylist",
		Title:    "Update Playlist",
		Category: "playlists",
		Entity:   "playlist",
		Description: `Update a playlist's title, description, tags or privacy. Requires OAuth.

USE WHEN: User says "rename playlist X", "make playlist X public".

PARAMETERS:
- playlistId: Playlist ID (required)
- title, description, privacyStatus, tags, defaultLanguage

Omitted fields keep their current values.

RETURNS: The updated playlist.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "youtube_delete_playlist",
		Method:   "DeletePlaylist",
		Title:    "Delete Playlist",
		Category: "playlists",
		Entity:   "action",
		Description: `Permanently delete a playlist. Requires OAuth as the owner.

USE WHEN: User explicitly asks to delete a playlist.

NOT FOR: Removing one video from a playlist (use youtube_delete_playlist_item).

PARAMETERS:
- playlistId: Playlist ID (required)

RETURNS: Confirmation with the deleted ID.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// PLAYLIST ITEM TOOLS
	// ==========================================================================
	{
		Name:     "youtube_list_playlist_items",
		Method:   "ListPlaylistItems",
		Title:    "List Playlist Items",
		Category: "playlists",
		Entity:   "playlistItem",
		Description: `List the videos in a playlist.

USE WHEN: User asks "what's in playlist X", "list my uploads" (use the uploads playlist ID from youtube_get_my_channel).

PARAMETERS:
- Exactly one of: playlistId, ids (max 50)
- videoId: Only items containing this video
- maxResults: 1-50, pageToken

RETURNS: Items with position, title, video ID and owner channel.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_add_playlist_item",
		Method:   "AddPlaylistItem",
		Title:    "Add Video to Playlist",
		Category: "playlists",
		Entity:   "playlistItem",
		Description: `Add a video to a playlist. Requires OAuth.

USE WHEN: User says "add this video to playlist X".

PARAMETERS:
- playlistId: Playlist ID (required)
- videoId: Video ID (required)
- position: Zero-based position (default end)
- note: Item note

RETURNS: The created playlist item. Its ID is needed to move or remove it later.`,
		OpenWorld: true,
	},
	{
		Name:     "youtube_update_playlist_item",
		Method:   "UpdatePlaylistItem",
		Title:    "Update Playlist Item",
		Category: "playlists",
		Entity:   "playlistItem",
		Description: `Move a playlist item or change its note. Requires OAuth.

USE WHEN: User says "move this video to the top of the playlist".

PARAMETERS:
- playlistItemId: Playlist item ID (required, not the video ID)
- position: New zero-based position
- note: New note

RETURNS: The updated playlist item.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "youtube_delete_playlist_item",
		Method:   "DeletePlaylistItem",
		Title:    "Remove Video from Playlist",
		Category: "playlists",
		Entity:   "action",
		Description: `Remove an item from a playlist. Requires OAuth.

USE WHEN: User says "remove this video from playlist X".

PARAMETERS:
- playlistItemId: Playlist item ID (required, from youtube_list_playlist_items)

RETURNS: Confirmation with the removed item ID.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// COMMENT TOOLS
	// ==========================================================================
	{
		Name:     "youtube_list_comment_threads",
		Method:   "ListCommentThreads",
		Title:    "List Comment Threads",
		Category: "comments",
		Entity:   "commentThread",
		Description: `List top-level comment threads on a video or channel.

USE WHEN: User asks "what are people saying about this video", "comments on my channel".

NOT FOR: Replies to one comment (use youtube_list_comments with parentId).

PARAMETERS:
- Exactly one of: videoId, allThreadsRelatedToChannelId, ids (max 50)
- searchTerms, order (time/relevance), moderationStatus, textFormat
- maxResults: 1-100, pageToken

RETURNS: Threads with author, text, likes and reply count.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_get_comment_thread",
		Method:   "GetCommentThread",
		Title:    "Get Comment Thread",
		Category: "comments",
		Entity:   "commentThread",
		Description: `Get one comment thread by ID, including loaded replies.

PARAMETERS:
- commentThreadId: Thread ID (required)

RETURNS: The thread. Fails with NotFound if the ID does not exist.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_create_comment_thread",
		Method:   "CreateCommentThread",
		Title:    "Post Comment",
		Category: "comments",
		Entity:   "commentThread",
		Description: `Post a new top-level comment on a video. Requires OAuth.

USE WHEN: User says "comment X on this video".

NOT FOR: Replying to an existing comment (use youtube_reply_to_comment).

PARAMETERS:
- videoId: Video ID (required)
- text: Comment text (required)
- channelId: Channel owning the video (optional)

RETURNS: The created thread.`,
		OpenWorld: true,
	},
	{
		Name:     "youtube_list_comments",
		Method:   "ListComments",
		Title:    "List Comments",
		Category: "comments",
		Entity:   "comment",
		Description: `List replies to a comment, or comments by ID.

USE WHEN: User asks "show the replies to this comment".

PARAMETERS:
- Exactly one of: parentId, ids (max 50)
- textFormat: html or plainText
- maxResults: 1-100, pageToken

RETURNS: Comments with author, text, likes and publish time.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_get_comment",
		Method:   "GetComment",
		Title:    "Get Comment",
		Category: "comments",
		Entity:   "comment",
		Description: `Get one comment by ID.

PARAMETERS:
- commentId: Comment ID (required)

RETURNS: The comment. Fails with NotFound if the ID does not exist.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_reply_to_comment",
		Method:   "ReplyToComment",
		Title:    "Reply to Comment",
		Category: "comments",
		Entity:   "comment",
		Description: `Reply to a top-level comment. Requires OAuth.

USE WHEN: User says "reply X to that comment".

PARAMETERS:
- parentId: Top-level comment ID (required)
- text: Reply text (required)

RETURNS: The created reply.`,
		OpenWorld: true,
	},
	{
		Name:     "youtube_update_comment",
		Method:   "UpdateComment",
		Title:    "Edit Comment",
		Category: "comments",
		Entity:   "comment",
		Description: `Edit the text of the user's own comment. Requires OAuth.

PARAMETERS:
- commentId: Comment ID (required)
- text: New text (required)

RETURNS: The updated comment.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "youtube_delete_comment",
		Method:   "DeleteComment",
		Title:    "Delete Comment",
		Category: "comments",
		Entity:   "action",
		Description: `Delete a comment. Requires OAuth as the author.

USE WHEN: User explicitly asks to delete their comment.

NOT FOR: Hiding other people's comments on your videos (use youtube_set_comment_moderation_status).

PARAMETERS:
- commentId: Comment ID (required)

RETURNS: Confirmation with the deleted ID.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "youtube_set_comment_moderation_status",
		Method:   "SetCommentModerationStatus",
		Title:    "Moderate Comments",
		Category: "comments",
		Entity:   "action",
		Description: `Publish, hold or reject comments on the user's videos. Requires OAuth as the channel owner.

USE WHEN: User says "approve these held comments", "reject this spam and ban the author".

PARAMETERS:
- ids: Comment IDs (required, max 50)
- moderationStatus: heldForReview, published or rejected (required)
- banAuthor: Also ban the author (rejected only)

RETURNS: Confirmation with the moderated IDs.`,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// SUBSCRIPTION TOOLS
	// ==========================================================================
	{
		Name:     "youtube_list_subscriptions",
		Method:   "ListSubscriptions",
		Title:    "List Subscriptions",
		Category: "subscriptions",
		Entity:   "subscription",
		Description: `List subscriptions of a channel, the user's subscriptions, or the user's subscribers.

USE WHEN: User asks "what channels am I subscribed to", "who subscribed recently".

PARAMETERS:
- Exactly one of: channelId, ids, mine, myRecentSubscribers, mySubscribers
- forChannelId: Only these channels (max 50)
- order: alphabetical, relevance or unread
- maxResults: 1-50, pageToken

RETURNS: Subscriptions with channel title and channel ID.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_subscribe",
		Method:   "Subscribe",
		Title:    "Subscribe to Channel",
		Category: "subscriptions",
		Entity:   "subscription",
		Description: `Subscribe the user to a channel. Requires OAuth.

PARAMETERS:
- channelId: Channel ID (required)

RETURNS: The created subscription. Its ID is needed to unsubscribe.`,
		OpenWorld: true,
	},
	{
		Name:     "youtube_unsubscribe",
		Method:   "Unsubscribe",
		Title:    "Unsubscribe",
		Category: "subscriptions",
		Entity:   "action",
		Description: `Delete a subscription. Requires OAuth.

PARAMETERS:
- subscriptionId: Subscription ID (required, from youtube_list_subscriptions with mine=true)

RETURNS: Confirmation with the deleted subscription ID.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// CAPTION TOOLS
	// ==========================================================================
	{
		Name:     "youtube_list_captions",
		Method:   "ListCaptions",
		Title:    "List Captions",
		Category: "captions",
		Entity:   "caption",
		Description: `List caption tracks of a video.

USE WHEN: User asks "which subtitles does this video have".

PARAMETERS:
- videoId: Video ID (required)
- ids: Only these caption IDs

RETURNS: Tracks with language, name, kind and status.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_insert_caption",
		Method:   "InsertCaption",
		Title:    "Upload Caption",
		Category: "captions",
		Entity:   "caption",
		Description: `Upload a caption track to a video. Requires OAuth as the owner.

PARAMETERS:
- videoId: Video ID (required)
- language: BCP-47 language (required)
- content: Caption file contents (required)
- name, contentType, isDraft, sync

RETURNS: The created caption track.`,
		OpenWorld: true,
	},
	{
		Name:     "youtube_update_caption",
		Method:   "UpdateCaption",
		Title:    "Update Caption",
		Category: "captions",
		Entity:   "caption",
		Description: `Replace a caption track's file or change its draft status. Requires OAuth.

PARAMETERS:
- captionId: Caption ID (required)
- isDraft and/or content (at least one)
- contentType, sync

RETURNS: The updated caption track.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "youtube_delete_caption",
		Method:   "DeleteCaption",
		Title:    "Delete Caption",
		Category: "captions",
		Entity:   "action",
		Description: `Delete a caption track. Requires OAuth as the owner.

PARAMETERS:
- captionId: Caption ID (required)

RETURNS: Confirmation with the deleted ID.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "youtube_download_caption",
		Method:   "DownloadCaption",
		Title:    "Download Caption",
		Category: "captions",
		Entity:   "captionDownload",
		Description: `Download the text of a caption track. Requires OAuth with access to the video.

USE WHEN: User asks "get the transcript/subtitles of this video".

PARAMETERS:
- captionId: Caption ID (required, from youtube_list_captions)
- tfmt: Convert to sbv, scc, srt, ttml or vtt
- tlang: Machine-translate into this language

RETURNS: The caption file contents.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// ACTIVITY & CHANNEL SECTION TOOLS
	// ==========================================================================
	{
		Name:     "youtube_list_activities",
		Method:   "ListActivities",
		Title:    "List Activities",
		Category: "channels",
		Entity:   "activity",
		Description: `List recent channel activity (uploads, likes, playlist additions).

USE WHEN: User asks "what has channel X done lately", "my recent activity".

PARAMETERS:
- Exactly one of: channelId, mine (OAuth)
- publishedAfter, publishedBefore, regionCode
- maxResults: 1-50, pageToken

RETURNS: Activities with type, title and publish time.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_list_channel_sections",
		Method:   "ListChannelSections",
		Title:    "List Channel Sections",
		Category: "channels",
		Entity:   "channelSection",
		Description: `List the shelves shown on a channel's home page.

PARAMETERS:
- Exactly one of: channelId, ids, mine (OAuth)

RETURNS: Sections with type, title and position.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_create_channel_section",
		Method:   "CreateChannelSection",
		Title:    "Create Channel Section",
		Category: "channels",
		Entity:   "channelSection",
		Description: `Add a section to the user's channel page. Requires OAuth.

PARAMETERS:
- type: Section type (required)
- title: Required for multiplePlaylists/multipleChannels
- position, playlistIds, channelIds

RETURNS: The created section.`,
		OpenWorld: true,
	},
	{
		Name:     "youtube_update_channel_section",
		Method:   "UpdateChannelSection",
		Title:    "Update Channel Section",
		Category: "channels",
		Entity:   "channelSection",
		Description: `Change a channel section. Requires OAuth.

PARAMETERS:
- sectionId: Section ID (required)
- type, title, position, playlistIds, channelIds

Omitted fields keep their current values.

RETURNS: The updated section.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "youtube_delete_channel_section",
		Method:   "DeleteChannelSection",
		Title:    "Delete Channel Section",
		Category: "channels",
		Entity:   "action",
		Description: `Remove a section from the user's channel page. Requires OAuth.

PARAMETERS:
- sectionId: Section ID (required)

RETURNS: Confirmation with the deleted ID.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// REFERENCE DATA TOOLS
	// ==========================================================================
	{
		Name:     "youtube_list_languages",
		Method:   "ListLanguages",
		Title:    "List Languages",
		Category: "reference",
		Entity:   "language",
		Description: `List interface languages supported by YouTube.

USE WHEN: User needs a valid hl or relevanceLanguage value.

PARAMETERS:
- hl: Language for the names in the response

RETURNS: Language codes and names.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_list_regions",
		Method:   "ListRegions",
		Title:    "List Regions",
		Category: "reference",
		Entity:   "region",
		Description: `List content regions supported by YouTube.

USE WHEN: User needs a valid regionCode value.

PARAMETERS:
- hl: Language for the names in the response

RETURNS: Region codes and names.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_list_video_categories",
		Method:   "ListVideoCategories",
		Title:    "List Video Categories",
		Category: "reference",
		Entity:   "category",
		Description: `List video categories for a region, or categories by ID.

USE WHEN: User needs a videoCategoryId for charts, search or video updates.

PARAMETERS:
- Exactly one of: regionCode, ids
- hl: Language for titles

RETURNS: Category IDs, titles and whether they can be assigned to videos.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_list_abuse_report_reasons",
		Method:   "ListAbuseReportReasons",
		Title:    "List Abuse Report Reasons",
		Category: "reference",
		Entity:   "abuseReason",
		Description: `List the reasons accepted by youtube_report_video_abuse.

PARAMETERS:
- hl: Language for labels

RETURNS: Reason IDs and labels.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// MEMBERSHIP TOOLS
	// ==========================================================================
	{
		Name:     "youtube_list_members",
		Method:   "ListMembers",
		Title:    "List Channel Members",
		Category: "members",
		Entity:   "member",
		Description: `List paying members of the user's channel. Requires OAuth as a channel with memberships.

PARAMETERS:
- mode: all_current (default) or updates
- hasAccessToLevel: Only members of this level
- filterByMemberChannelId: Only these member channels (max 100)
- maxResults: 1-1000, pageToken

RETURNS: Members with channel, level and member-since date.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_list_membership_levels",
		Method:   "ListMembershipLevels",
		Title:    "List Membership Levels",
		Category: "members",
		Entity:   "membershipLevel",
		Description: `List the membership levels offered by the user's channel. Requires OAuth.

RETURNS: Level IDs and display names.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
