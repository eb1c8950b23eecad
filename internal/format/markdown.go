package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/tidwall/gjson"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MaxCellWidth is the display width budget of a table cell, ellipsis included.
const MaxCellWidth = 50

// genericColumns is how many keys of the first item the fallback table shows.
const genericColumns = 5

const ellipsis = "..."

var printer = message.NewPrinter(language.English)

// column is one table column. The first path yielding a non-empty value wins.
type column struct {
	Header string
	Paths  []string
	Count  bool // render with thousands separators
}

func col(header string, paths ...string) column {
	return column{Header: header, Paths: paths}
}

func counter(header string, paths ...string) column {
	return column{Header: header, Paths: paths, Count: true}
}

// layout describes how an entity type renders.
type layout struct {
	Singular string
	Plural   string
	Columns  []column
}

var layouts = map[string]layout{
	"video": {"Video", "Videos", []column{
		col("ID", "id"),
		col("Title", "snippet.title"),
		col("Channel", "snippet.channelTitle"),
		counter("Views", "statistics.viewCount"),
		col("Duration", "contentDetails.duration"),
	}},
	"channel": {"Channel", "Channels", []column{
		col("ID", "id"),
		col("Title", "snippet.title", "brandingSettings.channel.title"),
		col("Handle", "snippet.customUrl"),
		counter("Subscribers", "statistics.subscriberCount"),
		counter("Videos", "statistics.videoCount"),
	}},
	"playlist": {"Playlist", "Playlists", []column{
		col("ID", "id"),
		col("Title", "snippet.title"),
		col("Channel", "snippet.channelTitle"),
		counter("Items", "contentDetails.itemCount"),
		col("Privacy", "status.privacyStatus"),
	}},
	"playlistItem": {"Playlist Item", "Playlist Items", []column{
		col("ID", "id"),
		col("Position", "snippet.position"),
		col("Title", "snippet.title"),
		col("Video ID", "contentDetails.videoId", "snippet.resourceId.videoId"),
		col("Channel", "snippet.videoOwnerChannelTitle", "snippet.channelTitle"),
	}},
	"commentThread": {"Comment Thread", "Comment Threads", []column{
		col("ID", "id"),
		col("Author", "snippet.topLevelComment.snippet.authorDisplayName"),
		col("Comment", "snippet.topLevelComment.snippet.textOriginal", "snippet.topLevelComment.snippet.textDisplay"),
		counter("Likes", "snippet.topLevelComment.snippet.likeCount"),
		counter("Replies", "snippet.totalReplyCount"),
	}},
	"comment": {"Comment", "Comments", []column{
		col("ID", "id"),
		col("Author", "snippet.authorDisplayName"),
		col("Comment", "snippet.textOriginal", "snippet.textDisplay"),
		counter("Likes", "snippet.likeCount"),
		col("Published", "snippet.publishedAt"),
	}},
	"subscription": {"Subscription", "Subscriptions", []column{
		col("ID", "id"),
		col("Channel", "snippet.title"),
		col("Channel ID", "snippet.resourceId.channelId"),
		col("Subscribed", "snippet.publishedAt"),
	}},
	"caption": {"Caption", "Captions", []column{
		col("ID", "id"),
		col("Language", "snippet.language"),
		col("Name", "snippet.name"),
		col("Kind", "snippet.trackKind"),
		col("Status", "snippet.status"),
	}},
	"activity": {"Activity", "Activities", []column{
		col("ID", "id"),
		col("Type", "snippet.type"),
		col("Title", "snippet.title"),
		col("Channel", "snippet.channelTitle"),
		col("Published", "snippet.publishedAt"),
	}},
	"channelSection": {"Channel Section", "Channel Sections", []column{
		col("ID", "id"),
		col("Type", "snippet.type"),
		col("Title", "snippet.title"),
		col("Position", "snippet.position"),
	}},
	"language": {"Language", "Languages", []column{
		col("ID", "id"),
		col("Code", "snippet.hl"),
		col("Name", "snippet.name"),
	}},
	"region": {"Region", "Regions", []column{
		col("ID", "id"),
		col("Code", "snippet.gl"),
		col("Name", "snippet.name"),
	}},
	"category": {"Video Category", "Video Categories", []column{
		col("ID", "id"),
		col("Title", "snippet.title"),
		col("Assignable", "snippet.assignable"),
	}},
	"abuseReason": {"Abuse Report Reason", "Abuse Report Reasons", []column{
		col("ID", "id"),
		col("Label", "snippet.label"),
	}},
	"member": {"Member", "Members", []column{
		col("Channel ID", "snippet.memberDetails.channelId"),
		col("Name", "snippet.memberDetails.displayName"),
		col("Level", "snippet.membershipsDetails.highestAccessibleLevelDisplayName"),
		col("Since", "snippet.membershipsDetails.membershipsDuration.memberSince"),
	}},
	"membershipLevel": {"Membership Level", "Membership Levels", []column{
		col("ID", "id"),
		col("Name", "snippet.levelDetails.displayName"),
	}},
	"searchResult": {"Search Result", "Search Results", []column{
		col("Kind", "id.kind"),
		col("ID", "id.videoId", "id.channelId", "id.playlistId"),
		col("Title", "snippet.title"),
		col("Channel", "snippet.channelTitle"),
		col("Published", "snippet.publishedAt"),
	}},
	"rating": {"Video Rating", "Video Ratings", []column{
		col("Video ID", "videoId"),
		col("Rating", "rating"),
	}},
	"action": {Singular: "Result", Plural: "Results"},
	"captionDownload": {Singular: "Caption Track", Plural: "Caption Tracks"},
}

// layoutFor returns the layout for entity; unknown entities get headings only.
func layoutFor(entity string) layout {
	if l, ok := layouts[entity]; ok {
		return l
	}
	name := entity
	if name == "" {
		name = "Item"
	}
	return layout{Singular: name, Plural: "Items"}
}

func renderMarkdown(v any, entity string) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	doc := gjson.ParseBytes(data)
	l := layoutFor(entity)

	switch {
	case isPage(doc):
		return renderPage(doc, l), nil
	case doc.IsObject():
		return renderObject(doc, l), nil
	default:
		return "```json\n" + pretty(doc.Raw) + "\n```\n", nil
	}
}

// isPage reports whether doc is a paginated envelope or an items/count result.
func isPage(doc gjson.Result) bool {
	return doc.IsObject() && doc.Get("items").IsArray() && doc.Get("count").Exists()
}

func renderPage(doc gjson.Result, l layout) string {
	var b strings.Builder
	items := doc.Get("items").Array()

	fmt.Fprintf(&b, "## %s\n\n", l.Plural)
	if total := doc.Get("totalResults"); total.Exists() {
		fmt.Fprintf(&b, "Showing %s of %s %s.\n\n", printer.Sprintf("%d", len(items)), printer.Sprintf("%d", total.Int()), results(total.Int()))
	} else {
		fmt.Fprintf(&b, "Showing %s %s.\n\n", printer.Sprintf("%d", len(items)), results(int64(len(items))))
	}

	if len(items) == 0 {
		b.WriteString("_No items found._\n")
	} else {
		columns := l.Columns
		if len(columns) == 0 {
			columns = genericLayout(items[0])
		}
		writeTable(&b, columns, items)
	}

	if next := doc.Get("nextPageToken").String(); next != "" {
		fmt.Fprintf(&b, "\nMore results available. Pass `pageToken: %s` to fetch the next page.\n", next)
	}
	if prev := doc.Get("prevPageToken").String(); prev != "" {
		fmt.Fprintf(&b, "\nPrevious page token: `%s`\n", prev)
	}
	return b.String()
}

// genericLayout builds columns from the first item's first keys in document order.
// Later items with other shapes show "-" for the missing cells.
func genericLayout(first gjson.Result) []column {
	if !first.IsObject() {
		return []column{{Header: "Value", Paths: []string{"@this"}}}
	}
	var columns []column
	first.ForEach(func(key, _ gjson.Result) bool {
		k := key.String()
		columns = append(columns, column{Header: k, Paths: []string{escapePath(k)}})
		return len(columns) < genericColumns
	})
	if len(columns) == 0 {
		columns = []column{{Header: "Value", Paths: []string{"@this"}}}
	}
	return columns
}

func writeTable(b *strings.Builder, columns []column, items []gjson.Result) {
	headers := make([]string, len(columns))
	seps := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = escapeCell(c.Header)
		seps[i] = "---"
	}
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|" + strings.Join(seps, "|") + "|\n")

	cells := make([]string, len(columns))
	for _, item := range items {
		for i, c := range columns {
			cells[i] = cellValue(item, c)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
}

// cellValue extracts the first non-empty path value and formats it for a table cell.
func cellValue(item gjson.Result, c column) string {
	for _, p := range c.Paths {
		v := item.Get(p)
		if !v.Exists() || v.Type == gjson.Null {
			continue
		}
		s := v.String()
		if v.IsObject() || v.IsArray() {
			s = v.Raw
		}
		if strings.TrimSpace(s) == "" {
			continue
		}
		if c.Count {
			s = formatCount(s)
		}
		return fitCell(collapse(s), MaxCellWidth)
	}
	return "-"
}

func renderObject(doc gjson.Result, l layout) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", l.Singular)

	n := 0
	doc.ForEach(func(key, value gjson.Result) bool {
		n++
		k := key.String()
		switch {
		case value.IsObject() || value.IsArray():
			fmt.Fprintf(&b, "- **%s**:\n\n```json\n%s\n```\n\n", k, pretty(value.Raw))
		case value.Type == gjson.String && strings.Contains(value.Str, "\n"):
			fmt.Fprintf(&b, "- **%s**:\n\n```\n%s\n```\n\n", k, strings.TrimRight(value.Str, "\n"))
		default:
			fmt.Fprintf(&b, "- **%s**: %s\n", k, scalar(value))
		}
		return true
	})
	if n == 0 {
		b.WriteString("_No fields._\n")
	}
	return b.String()
}

func scalar(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return "-"
	case gjson.String:
		if v.Str == "" {
			return "-"
		}
		return v.Str
	default:
		return v.Raw
	}
}

// Truncate cuts s to max display columns. A cut string ends with "..." and is
// exactly max columns wide for single-width text.
func Truncate(s string, max int) string {
	return runewidth.Truncate(s, max, ellipsis)
}

// formatCount adds thousands separators to integer strings; other values pass through.
func formatCount(s string) string {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return s
	}
	return printer.Sprintf("%d", n)
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// fitCell escapes s for a table cell and truncates it so the escaped text fits
// in max display columns. An escape sequence is never split.
func fitCell(s string, max int) string {
	if !strings.Contains(s, "|") {
		return Truncate(s, max)
	}
	escaped := escapeCell(s)
	if runewidth.StringWidth(escaped) <= max {
		return escaped
	}

	budget := max - runewidth.StringWidth(ellipsis)
	var b strings.Builder
	width := 0
	for _, r := range s {
		piece := string(r)
		if r == '|' {
			piece = `\|`
		}
		w := runewidth.StringWidth(piece)
		if width+w > budget {
			break
		}
		b.WriteString(piece)
		width += w
	}
	b.WriteString(ellipsis)
	return b.String()
}

func results(n int64) string {
	if n == 1 {
		return "result"
	}
	return "results"
}

// escapePath makes a literal key usable as a gjson path.
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', '!', '=', '<', '>', '%':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func pretty(raw string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(raw), "", "  "); err != nil {
		return raw
	}
	return buf.String()
}
