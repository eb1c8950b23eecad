package youtube

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/olgasafonova/youtube-mcp-server/internal/auth"
	"github.com/olgasafonova/youtube-mcp-server/internal/base"
)

// recorded captures one upstream request seen by the fake server.
type recorded struct {
	Method string
	Path   string
	Query  map[string]string
	Body   []byte
	Header http.Header
}

// fakeUpstream serves handler and records every request.
func fakeUpstream(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*Client, *[]recorded) {
	t.Helper()
	calls := &[]recorded{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		q := map[string]string{}
		for k := range r.URL.Query() {
			q[k] = r.URL.Query().Get(k)
		}
		*calls = append(*calls, recorded{Method: r.Method, Path: r.URL.Path, Query: q, Body: body, Header: r.Header.Clone()})
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	b := base.NewClient(base.WithBaseURL(server.URL+"/youtube/v3"), base.WithUploadURL(server.URL+"/upload/youtube/v3"))
	c := NewClient(b)
	t.Cleanup(c.Close)
	return c, calls
}

// respondJSON writes v with status 200.
func respondJSON(w http.ResponseWriter, v string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, v)
}

func apiKeyCtx() context.Context {
	return auth.WithCredentials(context.Background(), auth.Credentials{APIKey: "test-key"})
}

func tokenCtx() context.Context {
	return auth.WithCredentials(context.Background(), auth.Credentials{AccessToken: "test-token"})
}

// decodeBody unmarshals a recorded JSON body into a generic map.
func decodeBody(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("request body is not JSON: %v (%s)", err, body)
	}
	return m
}

// dig walks a decoded JSON object by keys.
func dig(m map[string]any, keys ...string) any {
	var cur any = m
	for _, k := range keys {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = obj[k]
	}
	return cur
}
