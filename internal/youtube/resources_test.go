package youtube

import (
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	apierrors "github.com/olgasafonova/youtube-mcp-server/internal/errors"
)

func TestSearchVariantsFixType(t *testing.T) {
	c, calls := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"items":[{"id":{"kind":"youtube#video","videoId":"v1"},"snippet":{"title":"Go"}}]}`)
	})
	ctx := apiKeyCtx()
	filters := SearchFilters{Query: "golang", MaxResults: 5}

	if _, err := c.SearchVideos(ctx, SearchVideosArgs{SearchFilters: filters, VideoFilters: VideoFilters{VideoDuration: "short"}}); err != nil {
		t.Fatalf("SearchVideos() error = %v", err)
	}
	if _, err := c.SearchChannels(ctx, SearchChannelsArgs{SearchFilters: filters}); err != nil {
		t.Fatalf("SearchChannels() error = %v", err)
	}
	if _, err := c.SearchPlaylists(ctx, SearchPlaylistsArgs{SearchFilters: filters}); err != nil {
		t.Fatalf("SearchPlaylists() error = %v", err)
	}
	page, err := c.Search(ctx, SearchArgs{SearchFilters: filters})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if page.Items[0].Id.VideoId != "v1" {
		t.Errorf("videoId = %q", page.Items[0].Id.VideoId)
	}

	wantTypes := []string{"video", "channel", "playlist", ""}
	for i, want := range wantTypes {
		q := (*calls)[i].Query
		if (*calls)[i].Path != "/youtube/v3/search" {
			t.Errorf("call %d path = %q", i, (*calls)[i].Path)
		}
		if q["type"] != want {
			t.Errorf("call %d type = %q, want %q", i, q["type"], want)
		}
		if q["q"] != "golang" || q["maxResults"] != "5" {
			t.Errorf("call %d query = %v", i, q)
		}
	}
	if (*calls)[0].Query["videoDuration"] != "short" {
		t.Error("video filters should be forwarded for video search")
	}
}

func TestGetByIDNotFoundNamesEntity(t *testing.T) {
	c, _ := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"kind":"youtube#listResponse"}`)
	})
	ctx := apiKeyCtx()

	tests := []struct {
		entity string
		call   func() error
	}{
		{"Channel", func() error { _, err := c.GetChannel(ctx, GetChannelArgs{ChannelID: "x1"}); return err }},
		{"Playlist", func() error { _, err := c.GetPlaylist(ctx, GetPlaylistArgs{PlaylistID: "x1"}); return err }},
		{"CommentThread", func() error {
			_, err := c.GetCommentThread(ctx, GetCommentThreadArgs{CommentThreadID: "x1"})
			return err
		}},
		{"Comment", func() error { _, err := c.GetComment(ctx, GetCommentArgs{CommentID: "x1"}); return err }},
		{"PlaylistItem", func() error {
			_, err := c.UpdatePlaylistItem(ctx, UpdatePlaylistItemArgs{PlaylistItemID: "x1"})
			return err
		}},
		{"ChannelSection", func() error {
			_, err := c.UpdateChannelSection(ctx, UpdateChannelSectionArgs{SectionID: "x1"})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.entity, func(t *testing.T) {
			err := tt.call()
			e, ok := apierrors.As(err)
			if !ok || e.Kind != apierrors.KindNotFound {
				t.Fatalf("error = %v, want NotFound", err)
			}
			if e.EntityType != tt.entity || e.Identifier != "x1" {
				t.Errorf("NotFound names %s/%s, want %s/x1", e.EntityType, e.Identifier, tt.entity)
			}
		})
	}
}

func TestGetMyChannel(t *testing.T) {
	c, calls := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"items":[{"id":"UCme","snippet":{"title":"Me"}}]}`)
	})

	ch, err := c.GetMyChannel(tokenCtx(), GetMyChannelArgs{})
	if err != nil {
		t.Fatalf("GetMyChannel() error = %v", err)
	}
	if ch.Id != "UCme" {
		t.Errorf("Id = %q", ch.Id)
	}
	if (*calls)[0].Query["mine"] != "true" {
		t.Errorf("mine = %q", (*calls)[0].Query["mine"])
	}
}

func TestUpdateChannel_MergesBranding(t *testing.T) {
	c, calls := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			respondJSON(w, `{"items":[{"id":"UC1","brandingSettings":{"channel":{"title":"T","description":"old","keywords":"go mcp"}}}]}`)
			return
		}
		respondJSON(w, `{"id":"UC1"}`)
	})

	desc := "new"
	if _, err := c.UpdateChannel(tokenCtx(), UpdateChannelArgs{ChannelID: "UC1", Description: &desc}); err != nil {
		t.Fatalf("UpdateChannel() error = %v", err)
	}

	put := (*calls)[1]
	if put.Query["part"] != "brandingSettings" {
		t.Errorf("part = %q", put.Query["part"])
	}
	body := decodeBody(t, put.Body)
	if dig(body, "brandingSettings", "channel", "description") != "new" {
		t.Errorf("description = %v", dig(body, "brandingSettings", "channel", "description"))
	}
	if dig(body, "brandingSettings", "channel", "keywords") != "go mcp" {
		t.Errorf("keywords should round-trip, got %v", dig(body, "brandingSettings", "channel", "keywords"))
	}
}

func TestCreatePlaylist_DefaultsPrivate(t *testing.T) {
	c, calls := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"id":"PL1"}`)
	})

	pl, err := c.CreatePlaylist(tokenCtx(), CreatePlaylistArgs{Title: "Mix"})
	if err != nil {
		t.Fatalf("CreatePlaylist() error = %v", err)
	}
	if pl.Id != "PL1" {
		t.Errorf("Id = %q", pl.Id)
	}
	body := decodeBody(t, (*calls)[0].Body)
	if dig(body, "status", "privacyStatus") != "private" || dig(body, "snippet", "title") != "Mix" {
		t.Errorf("body = %v", body)
	}
}

func TestUpdatePlaylist_MergesSuppliedFields(t *testing.T) {
	c, calls := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			respondJSON(w, `{"items":[{"id":"PL1","snippet":{"title":"Old","description":"Keep"},"status":{"privacyStatus":"public"}}]}`)
			return
		}
		respondJSON(w, `{"id":"PL1"}`)
	})

	title := "New"
	if _, err := c.UpdatePlaylist(tokenCtx(), UpdatePlaylistArgs{PlaylistID: "PL1", Title: &title}); err != nil {
		t.Fatalf("UpdatePlaylist() error = %v", err)
	}
	body := decodeBody(t, (*calls)[1].Body)
	if dig(body, "snippet", "title") != "New" || dig(body, "snippet", "description") != "Keep" {
		t.Errorf("snippet = %v", body["snippet"])
	}
	if dig(body, "status", "privacyStatus") != "public" {
		t.Errorf("status = %v", body["status"])
	}
}

func TestAddPlaylistItem_PositionZeroIsSent(t *testing.T) {
	c, calls := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"id":"PLI1"}`)
	})

	zero := int64(0)
	if _, err := c.AddPlaylistItem(tokenCtx(), AddPlaylistItemArgs{PlaylistID: "PL1", VideoID: "v1", Position: &zero}); err != nil {
		t.Fatalf("AddPlaylistItem() error = %v", err)
	}
	got := (*calls)[0]
	if got.Query["part"] != "snippet" {
		t.Errorf("part = %q", got.Query["part"])
	}
	body := decodeBody(t, got.Body)
	snippet, _ := body["snippet"].(map[string]any)
	if pos, ok := snippet["position"]; !ok || pos != float64(0) {
		t.Errorf("position = %v (present %v), want 0", pos, ok)
	}
	if dig(body, "snippet", "resourceId", "videoId") != "v1" || dig(body, "snippet", "resourceId", "kind") != "youtube#video" {
		t.Errorf("resourceId = %v", dig(body, "snippet", "resourceId"))
	}
}

func TestCreateCommentThread(t *testing.T) {
	c, calls := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"id":"T1"}`)
	})

	if _, err := c.CreateCommentThread(tokenCtx(), CreateCommentThreadArgs{VideoID: "v1", Text: "Nice"}); err != nil {
		t.Fatalf("CreateCommentThread() error = %v", err)
	}
	body := decodeBody(t, (*calls)[0].Body)
	if dig(body, "snippet", "topLevelComment", "snippet", "textOriginal") != "Nice" {
		t.Errorf("body = %v", body)
	}
}

func TestSetCommentModerationStatus(t *testing.T) {
	c, calls := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	res, err := c.SetCommentModerationStatus(tokenCtx(), SetCommentModerationStatusArgs{
		IDs:              []string{"c1", "c2"},
		ModerationStatus: "rejected",
		BanAuthor:        true,
	})
	if err != nil {
		t.Fatalf("SetCommentModerationStatus() error = %v", err)
	}
	if res.ID != "c1,c2" || res.Detail != "rejected" {
		t.Errorf("result = %+v", res)
	}
	q := (*calls)[0].Query
	if q["id"] != "c1,c2" || q["moderationStatus"] != "rejected" || q["banAuthor"] != "true" {
		t.Errorf("query = %v", q)
	}
}

func TestSubscribe(t *testing.T) {
	c, calls := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"id":"S1"}`)
	})

	if _, err := c.Subscribe(tokenCtx(), SubscribeArgs{ChannelID: "UC1"}); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	body := decodeBody(t, (*calls)[0].Body)
	if dig(body, "snippet", "resourceId", "channelId") != "UC1" {
		t.Errorf("body = %v", body)
	}
}

func TestInsertCaption_Multipart(t *testing.T) {
	c, calls := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"id":"cap1","snippet":{"language":"en"}}`)
	})

	caption, err := c.InsertCaption(tokenCtx(), InsertCaptionArgs{
		VideoID:     "v1",
		Language:    "en",
		Name:        "English",
		Content:     "WEBVTT\n\n00:00.000 --> 00:01.000\nHi",
		ContentType: "text/vtt",
	})
	if err != nil {
		t.Fatalf("InsertCaption() error = %v", err)
	}
	if caption.Id != "cap1" {
		t.Errorf("Id = %q", caption.Id)
	}

	got := (*calls)[0]
	if got.Path != "/upload/youtube/v3/captions" || got.Query["uploadType"] != "multipart" {
		t.Errorf("request = %s %v", got.Path, got.Query)
	}

	mediaType, params, err := mime.ParseMediaType(got.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/related" {
		t.Fatalf("Content-Type = %q", got.Header.Get("Content-Type"))
	}
	reader := multipart.NewReader(strings.NewReader(string(got.Body)), params["boundary"])

	meta, err := reader.NextPart()
	if err != nil {
		t.Fatalf("metadata part: %v", err)
	}
	metaBody, _ := io.ReadAll(meta)
	if !strings.Contains(string(metaBody), `"language":"en"`) {
		t.Errorf("metadata = %s", metaBody)
	}

	media, err := reader.NextPart()
	if err != nil {
		t.Fatalf("media part: %v", err)
	}
	content, _ := io.ReadAll(media)
	if !strings.HasPrefix(string(content), "WEBVTT") {
		t.Errorf("media = %q", content)
	}
}

func TestUpdateCaption_MetadataOnlyUsesJSON(t *testing.T) {
	c, calls := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"id":"cap1"}`)
	})

	draft := false
	if _, err := c.UpdateCaption(tokenCtx(), UpdateCaptionArgs{CaptionID: "cap1", IsDraft: &draft}); err != nil {
		t.Fatalf("UpdateCaption() error = %v", err)
	}
	got := (*calls)[0]
	if got.Path != "/youtube/v3/captions" || got.Method != http.MethodPut {
		t.Errorf("request = %s %s", got.Method, got.Path)
	}
	body := decodeBody(t, got.Body)
	snippet, _ := body["snippet"].(map[string]any)
	if v, ok := snippet["isDraft"]; !ok || v != false {
		t.Errorf("isDraft = %v (present %v)", v, ok)
	}
}

func TestUpdateCaption_WithContentUsesUpload(t *testing.T) {
	c, calls := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"id":"cap1"}`)
	})

	if _, err := c.UpdateCaption(tokenCtx(), UpdateCaptionArgs{CaptionID: "cap1", Content: "1\n00:00:00,000 --> 00:00:01,000\nHi"}); err != nil {
		t.Fatalf("UpdateCaption() error = %v", err)
	}
	got := (*calls)[0]
	if got.Path != "/upload/youtube/v3/captions" || got.Method != http.MethodPut {
		t.Errorf("request = %s %s", got.Method, got.Path)
	}
}

func TestDownloadCaption(t *testing.T) {
	c, calls := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "1\n00:00:00,000 --> 00:00:01,000\nHello\n")
	})

	dl, err := c.DownloadCaption(tokenCtx(), DownloadCaptionArgs{CaptionID: "cap1", Tfmt: "srt"})
	if err != nil {
		t.Fatalf("DownloadCaption() error = %v", err)
	}
	if dl.ID != "cap1" || dl.Format != "srt" || !strings.Contains(dl.Content, "Hello") {
		t.Errorf("download = %+v", dl)
	}
	if (*calls)[0].Path != "/youtube/v3/captions/cap1" || (*calls)[0].Query["tfmt"] != "srt" {
		t.Errorf("request = %s %v", (*calls)[0].Path, (*calls)[0].Query)
	}
}

func TestUpdateChannelSection_MergesContent(t *testing.T) {
	c, calls := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			respondJSON(w, `{"items":[{"id":"S1","snippet":{"type":"multiplePlaylists","title":"Best","position":2},"contentDetails":{"playlists":["PL1"]}}]}`)
			return
		}
		respondJSON(w, `{"id":"S1"}`)
	})

	title := "Better"
	if _, err := c.UpdateChannelSection(tokenCtx(), UpdateChannelSectionArgs{SectionID: "S1", Title: &title}); err != nil {
		t.Fatalf("UpdateChannelSection() error = %v", err)
	}
	body := decodeBody(t, (*calls)[1].Body)
	if dig(body, "snippet", "title") != "Better" || dig(body, "snippet", "type") != "multiplePlaylists" {
		t.Errorf("snippet = %v", body["snippet"])
	}
	if dig(body, "snippet", "position") != float64(2) {
		t.Errorf("position = %v", dig(body, "snippet", "position"))
	}
	if pls, _ := dig(body, "contentDetails", "playlists").([]any); len(pls) != 1 {
		t.Errorf("playlists = %v", dig(body, "contentDetails", "playlists"))
	}
}

func TestReferenceData(t *testing.T) {
	c, calls := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"items":[{"id":"x","snippet":{"name":"X"}}]}`)
	})
	ctx := apiKeyCtx()

	if _, err := c.ListLanguages(ctx, ListLanguagesArgs{Hl: "nb"}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ListRegions(ctx, ListRegionsArgs{}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ListVideoCategories(ctx, ListVideoCategoriesArgs{RegionCode: "US"}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ListAbuseReportReasons(ctx, ListAbuseReportReasonsArgs{}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ListMembershipLevels(tokenCtx(), ListMembershipLevelsArgs{}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ListMembers(tokenCtx(), ListMembersArgs{MaxResults: 500}); err != nil {
		t.Fatal(err)
	}

	wantPaths := []string{
		"/youtube/v3/i18nLanguages", "/youtube/v3/i18nRegions", "/youtube/v3/videoCategories",
		"/youtube/v3/videoAbuseReportReasons", "/youtube/v3/membershipsLevels", "/youtube/v3/members",
	}
	for i, want := range wantPaths {
		if (*calls)[i].Path != want {
			t.Errorf("call %d path = %q, want %q", i, (*calls)[i].Path, want)
		}
	}
	if (*calls)[0].Query["hl"] != "nb" {
		t.Errorf("hl = %q", (*calls)[0].Query["hl"])
	}
	if (*calls)[5].Query["maxResults"] != "500" {
		t.Errorf("maxResults = %q", (*calls)[5].Query["maxResults"])
	}
}
