package youtube

import "log/slog"

// PageInfo mirrors the upstream pageInfo block. Pointers distinguish absent from zero.
type PageInfo struct {
	TotalResults   *int64 `json:"totalResults,omitempty"`
	ResultsPerPage *int64 `json:"resultsPerPage,omitempty"`
}

// ListResponse is the upstream list envelope shared by every collection endpoint.
type ListResponse[T any] struct {
	Items         []T       `json:"items"`
	PageInfo      *PageInfo `json:"pageInfo,omitempty"`
	NextPageToken string    `json:"nextPageToken,omitempty"`
	PrevPageToken string    `json:"prevPageToken,omitempty"`
}

// Page is the uniform paginated envelope returned by every list operation.
type Page[T any] struct {
	Items          []T    `json:"items"`
	Count          int    `json:"count"`
	TotalResults   *int64 `json:"totalResults,omitempty"`
	ResultsPerPage *int64 `json:"resultsPerPage,omitempty"`
	HasMore        bool   `json:"hasMore"`
	NextPageToken  string `json:"nextPageToken,omitempty"`
	PrevPageToken  string `json:"prevPageToken,omitempty"`
}

// NewPage normalizes an upstream list response. Count always equals len(Items) and
// HasMore is true exactly when a next page token is present.
func NewPage[T any](resp ListResponse[T]) Page[T] {
	items := resp.Items
	if items == nil {
		items = []T{}
	}

	p := Page[T]{
		Items:         items,
		Count:         len(items),
		HasMore:       resp.NextPageToken != "",
		NextPageToken: resp.NextPageToken,
		PrevPageToken: resp.PrevPageToken,
	}
	if resp.PageInfo != nil {
		p.TotalResults = resp.PageInfo.TotalResults
		p.ResultsPerPage = resp.PageInfo.ResultsPerPage
	}
	return p
}

// LogValue summarizes the page for structured logs without the items.
func (p Page[T]) LogValue() slog.Value {
	attrs := []slog.Attr{slog.Int("count", p.Count), slog.Bool("has_more", p.HasMore)}
	if p.TotalResults != nil {
		attrs = append(attrs, slog.Int64("total_results", *p.TotalResults))
	}
	return slog.GroupValue(attrs...)
}
