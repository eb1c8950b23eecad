package youtube

import (
	"encoding/json"
	"testing"
)

func TestNewPage(t *testing.T) {
	items := make([]string, 25)
	total, perPage := int64(120), int64(25)

	p := NewPage(ListResponse[string]{
		Items:         items,
		PageInfo:      &PageInfo{TotalResults: &total, ResultsPerPage: &perPage},
		NextPageToken: "ABC",
	})

	if p.Count != 25 {
		t.Errorf("Count = %d, want 25", p.Count)
	}
	if p.TotalResults == nil || *p.TotalResults != 120 {
		t.Errorf("TotalResults = %v, want 120", p.TotalResults)
	}
	if !p.HasMore {
		t.Error("HasMore should be true with a next page token")
	}
	if p.NextPageToken != "ABC" {
		t.Errorf("NextPageToken = %q, want ABC", p.NextPageToken)
	}
}

func TestNewPage_HasMoreFollowsToken(t *testing.T) {
	tests := []struct {
		name string
		next string
		prev string
		want bool
	}{
		{"no tokens", "", "", false},
		{"only previous", "", "PREV", false},
		{"next", "NEXT", "", true},
		{"both", "NEXT", "PREV", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(ListResponse[int]{Items: []int{1}, NextPageToken: tt.next, PrevPageToken: tt.prev})
			if p.HasMore != tt.want {
				t.Errorf("HasMore = %v, want %v", p.HasMore, tt.want)
			}
			if p.PrevPageToken != tt.prev {
				t.Errorf("PrevPageToken = %q, want %q", p.PrevPageToken, tt.prev)
			}
		})
	}
}

func TestNewPage_AbsentItems(t *testing.T) {
	p := NewPage(ListResponse[int]{})

	if p.Items == nil {
		t.Fatal("Items should be an empty slice, not nil")
	}
	if p.Count != 0 {
		t.Errorf("Count = %d, want 0", p.Count)
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"items":[],"count":0,"hasMore":false}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}

func TestNewPage_FromUpstreamJSON(t *testing.T) {
	raw := `{"items":[{"id":"a"},{"id":"b"}],"pageInfo":{"resultsPerPage":2},"prevPageToken":"P"}`
	var resp ListResponse[map[string]string]
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	p := NewPage(resp)
	if p.Count != 2 {
		t.Errorf("Count = %d, want 2", p.Count)
	}
	if p.TotalResults != nil {
		t.Errorf("TotalResults = %v, want nil when upstream omits it", *p.TotalResults)
	}
	if p.ResultsPerPage == nil || *p.ResultsPerPage != 2 {
		t.Errorf("ResultsPerPage = %v, want 2", p.ResultsPerPage)
	}
	if p.HasMore {
		t.Error("HasMore should be false without a next page token")
	}
}
