package appview_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skylens/internal/core"
	"skylens/pkg/appview"

	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, opts appview.Options, handler http.HandlerFunc) *appview.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts.BaseURL = srv.URL
	if opts.PageDelay == 0 {
		opts.PageDelay = time.Millisecond
	}

	client := appview.NewClient(opts)
	t.Cleanup(func() { client.Close() })

	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func feedItem(uri, createdAt string) core.RawFeedItem {
	return core.RawFeedItem{
		Post: core.FeedPost{
			URI:    uri,
			Author: core.Author{DID: "did:plc:alice", Handle: "alice.bsky.social"},
			Record: core.PostRecord{Text: "hi", CreatedAt: createdAt},
		},
	}
}

func TestGetProfile(t *testing.T) {
	t.Parallel()

	t.Run("resolves an actor", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, appview.Options{}, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/xrpc/app.bsky.actor.getProfile", r.URL.Path)
			require.Equal(t, "alice.bsky.social", r.URL.Query().Get("actor"))

			writeJSON(t, w, core.Profile{
				DID:            "did:plc:alice",
				Handle:         "alice.bsky.social",
				DisplayName:    "Alice",
				FollowersCount: 42,
			})
		})

		profile, err := client.GetProfile(t.Context(), "alice.bsky.social")
		require.NoError(t, err)
		require.Equal(t, "did:plc:alice", profile.DID)
		require.Equal(t, "Alice", profile.DisplayName)
		require.Equal(t, 42, profile.FollowersCount)
	})

	t.Run("maps 404 to ErrUserNotFound", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, appview.Options{}, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"InvalidRequest"}`, http.StatusNotFound)
		})

		_, err := client.GetProfile(t.Context(), "nobody.bsky.social")
		require.ErrorIs(t, err, core.ErrUserNotFound)
		require.ErrorContains(t, err, "nobody.bsky.social")
	})

	t.Run("maps other failures to ErrUpstream", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, appview.Options{}, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream broke", http.StatusBadGateway)
		})

		_, err := client.GetProfile(t.Context(), "alice.bsky.social")
		require.ErrorIs(t, err, core.ErrUpstream)
	})
}

func TestFetchAllPosts(t *testing.T) {
	t.Parallel()

	t.Run("follows cursors until the feed ends", func(t *testing.T) {
		t.Parallel()

		var cursors []string
		client := newClient(t, appview.Options{}, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/xrpc/app.bsky.feed.getAuthorFeed", r.URL.Path)
			cursor := r.URL.Query().Get("cursor")
			cursors = append(cursors, cursor)

			switch cursor {
			case "":
				writeJSON(t, w, appview.FeedPage{
					Feed:   []core.RawFeedItem{feedItem("at://1", "2026-08-20T10:00:00Z")},
					Cursor: "page2",
				})
			case "page2":
				writeJSON(t, w, appview.FeedPage{
					Feed: []core.RawFeedItem{feedItem("at://2", "2026-08-19T10:00:00Z")},
				})
			default:
				t.Errorf("unexpected cursor %q", cursor)
			}
		})

		items, err := client.FetchAllPosts(t.Context(), "alice.bsky.social")
		require.NoError(t, err)
		require.Len(t, items, 2)
		require.Equal(t, "at://1", items[0].Post.URI)
		require.Equal(t, "at://2", items[1].Post.URI)
		require.Equal(t, []string{"", "page2"}, cursors)
	})

	t.Run("stops at the page cap even with a live cursor", func(t *testing.T) {
		t.Parallel()

		pages := 0
		client := newClient(t, appview.Options{MaxPages: 3}, func(w http.ResponseWriter, r *http.Request) {
			pages++
			writeJSON(t, w, appview.FeedPage{
				Feed:   []core.RawFeedItem{feedItem("at://x", "2026-08-20T10:00:00Z")},
				Cursor: "more",
			})
		})

		items, err := client.FetchAllPosts(t.Context(), "alice.bsky.social")
		require.NoError(t, err)
		require.Len(t, items, 3)
		require.Equal(t, 3, pages)
	})

	t.Run("stops once a page falls behind the cutoff", func(t *testing.T) {
		t.Parallel()

		pages := 0
		cutoff := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		client := newClient(t, appview.Options{Cutoff: cutoff}, func(w http.ResponseWriter, r *http.Request) {
			pages++
			writeJSON(t, w, appview.FeedPage{
				Feed: []core.RawFeedItem{
					feedItem("at://new", "2026-08-20T10:00:00Z"),
					feedItem("at://old", "2026-07-01T10:00:00Z"),
				},
				Cursor: "more",
			})
		})

		items, err := client.FetchAllPosts(t.Context(), "alice.bsky.social")
		require.NoError(t, err)
		require.Len(t, items, 2)
		require.Equal(t, 1, pages)
	})

	t.Run("reports a mid-pagination failure", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, appview.Options{}, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("cursor") == "" {
				writeJSON(t, w, appview.FeedPage{
					Feed:   []core.RawFeedItem{feedItem("at://1", "2026-08-20T10:00:00Z")},
					Cursor: "page2",
				})
				return
			}
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		})

		_, err := client.FetchAllPosts(t.Context(), "alice.bsky.social")
		require.ErrorIs(t, err, core.ErrUpstream)
	})

	t.Run("empty feed yields no items", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, appview.Options{}, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, appview.FeedPage{})
		})

		items, err := client.FetchAllPosts(t.Context(), "alice.bsky.social")
		require.NoError(t, err)
		require.Empty(t, items)
	})
}
