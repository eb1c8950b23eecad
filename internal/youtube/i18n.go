package youtube

import (
	"context"

	ytapi "google.golang.org/api/youtube/v3"

	"github.com/olgasafonova/youtube-mcp-server/internal/base"
)

// ListLanguagesArgs lists the interface languages YouTube supports
type ListLanguagesArgs struct {
	Output
	Hl string `json:"hl,omitempty" jsonschema:"Language used for the names in the response (default en_US)"`
}

func (a ListLanguagesArgs) Validate() error {
	return newChecks(a.Output).err()
}

// ListLanguages returns the supported application languages
func (c *Client) ListLanguages(ctx context.Context, args ListLanguagesArgs) (Page[*ytapi.I18nLanguage], error) {
	q := base.Query{}
	q.Set("part", "snippet").Set("hl", args.Hl)
	return list[*ytapi.I18nLanguage](ctx, c, "/i18nLanguages", q)
}

// ListRegionsArgs lists the content regions YouTube supports
type ListRegionsArgs struct {
	Output
	Hl string `json:"hl,omitempty" jsonschema:"Language used for the names in the response (default en_US)"`
}

func (a ListRegionsArgs) Validate() error {
	return newChecks(a.Output).err()
}

// ListRegions returns the supported content regions
func (c *Client) ListRegions(ctx context.Context, args ListRegionsArgs) (Page[*ytapi.I18nRegion], error) {
	q := base.Query{}
	q.Set("part", "snippet").Set("hl", args.Hl)
	return list[*ytapi.I18nRegion](ctx, c, "/i18nRegions", q)
}
