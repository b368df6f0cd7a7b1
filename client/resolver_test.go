package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsCanonicalChannelID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"canonical id", "UC1234567890abcdefghijkl", true},
		{"canonical with dash and underscore", "UC_-abcdefghijklmnopqrst", true},
		{"too short", "UC123", false},
		{"too long", "UC1234567890abcdefghijklm", false},
		{"wrong prefix", "UX1234567890abcdefghijkl", false},
		{"handle", "@somechannel", false},
		{"empty", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsCanonicalChannelID(tc.input); got != tc.want {
				t.Errorf("IsCanonicalChannelID(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestExtractChannelSegment(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantSegment string
		wantMatch   bool
	}{
		{"channel path", "https://youtube.com/channel/UC1234567890abcdefghijkl", "UC1234567890abcdefghijkl", true},
		{"handle path", "https://www.youtube.com/@somecreator", "somecreator", true},
		{"custom path", "https://youtube.com/c/SomeCreator", "SomeCreator", true},
		{"legacy user path", "https://youtube.com/user/oldname", "oldname", true},
		{"bare canonical id", "UC1234567890abcdefghijkl", "UC1234567890abcdefghijkl", true},
		{"free text", "just a channel name", "", false},
		{"unrelated url", "https://example.com/watch", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			segment, matched := extractChannelSegment(tc.input)
			if matched != tc.wantMatch || segment != tc.wantSegment {
				t.Errorf("extractChannelSegment(%q) = (%q, %v), want (%q, %v)",
					tc.input, segment, matched, tc.wantSegment, tc.wantMatch)
			}
		})
	}
}

func TestResolveChannelIDCanonicalNeedsNoNetwork(t *testing.T) {
	// No Connect: any network call would hit a nil service and fail.
	c := &YouTubeDataClient{apiKey: "AIzaSyTest"}

	tests := []struct {
		name  string
		input string
	}{
		{"bare id", "UC1234567890abcdefghijkl"},
		{"channel url", "https://youtube.com/channel/UC1234567890abcdefghijkl"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, err := c.ResolveChannelID(context.Background(), tc.input)
			if err != nil {
				t.Fatalf("ResolveChannelID(%q) error = %v", tc.input, err)
			}
			if id != "UC1234567890abcdefghijkl" {
				t.Errorf("ResolveChannelID(%q) = %q, want UC1234567890abcdefghijkl", tc.input, id)
			}
		})
	}
}

func TestResolveChannelIDViaSearch(t *testing.T) {
	searchCalls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		searchCalls++
		if got := r.URL.Query().Get("type"); got != "channel" {
			t.Errorf("search type = %q, want channel", got)
		}
		if got := r.URL.Query().Get("q"); got != "somecreator" {
			t.Errorf("search q = %q, want somecreator (extracted segment)", got)
		}
		writeJSON(w, map[string]any{
			"items": []map[string]any{
				{"id": map[string]any{"kind": "youtube#channel", "channelId": "UCresolved00000000000000"}},
			},
		})
	})

	id, err := c.ResolveChannelID(context.Background(), "https://youtube.com/@somecreator")
	if err != nil {
		t.Fatalf("ResolveChannelID error = %v", err)
	}
	if id != "UCresolved00000000000000" {
		t.Errorf("resolved id = %q, want UCresolved00000000000000", id)
	}
	if searchCalls != 1 {
		t.Errorf("search calls = %d, want 1", searchCalls)
	}
}

func TestResolveChannelIDSnippetFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"items": []map[string]any{
				{
					"id":      map[string]any{"kind": "youtube#channel"},
					"snippet": map[string]any{"channelId": "UCfromsnippet00000000000"},
				},
			},
		})
	})

	id, err := c.ResolveChannelID(context.Background(), "some channel name")
	if err != nil {
		t.Fatalf("ResolveChannelID error = %v", err)
	}
	if id != "UCfromsnippet00000000000" {
		t.Errorf("resolved id = %q, want UCfromsnippet00000000000", id)
	}
}

func TestResolveChannelIDNoResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"items": []map[string]any{}})
	})

	_, err := c.ResolveChannelID(context.Background(), "https://youtube.com/@nobody")
	var resErr *ResolutionError
	if !asError(err, &resErr) {
		t.Fatalf("error = %v, want *ResolutionError", err)
	}
	if resErr.Input != "https://youtube.com/@nobody" {
		t.Errorf("ResolutionError.Input = %q", resErr.Input)
	}
}

func TestResolveChannelIDNotConnected(t *testing.T) {
	c := &YouTubeDataClient{apiKey: "AIzaSyTest"}
	_, err := c.ResolveChannelID(context.Background(), "free text channel")
	var resErr *ResolutionError
	if !asError(err, &resErr) {
		t.Fatalf("error = %v, want *ResolutionError", err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}
