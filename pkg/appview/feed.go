package appview

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"skylens/internal/core"
)

const getAuthorFeed = "/xrpc/app.bsky.feed.getAuthorFeed"

// FeedPage is one page of an author feed. An absent cursor signals the
// end of pagination.
type FeedPage struct {
	Feed   []core.RawFeedItem `json:"feed"`
	Cursor string             `json:"cursor,omitempty"`
}

// GetAuthorFeed fetches a single feed page.
// https://docs.bsky.app/docs/api/app-bsky-feed-get-author-feed
func (c *Client) GetAuthorFeed(ctx context.Context, actor string, limit int, cursor string) (*FeedPage, error) {
	req := c.r(ctx).
		SetQueryParam("actor", actor).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&FeedPage{})

	if cursor != "" {
		req.SetQueryParam("cursor", cursor)
	}

	res, err := req.Get(getAuthorFeed)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("%w: getAuthorFeed: %s: %s", core.ErrUpstream, res.Status(), res.String())
	}

	return res.Result().(*FeedPage), nil
}

// FetchAllPosts paginates the author feed sequentially: each page's cursor
// comes from the previous response, pages are separated by a fixed delay
// to respect the API's informal rate limits, and the page cap guarantees
// termination even on a cursor loop. Any page failure aborts and reports;
// partially accumulated data is discarded.
func (c *Client) FetchAllPosts(ctx context.Context, actor string) ([]core.RawFeedItem, error) {
	var items []core.RawFeedItem
	cursor := ""

	for page := 0; page < c.opts.MaxPages; page++ {
		if page > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.opts.PageDelay):
			}
		}

		resp, err := c.GetAuthorFeed(ctx, actor, c.opts.PageSize, cursor)
		if err != nil {
			return nil, err
		}

		items = append(items, resp.Feed...)

		if !c.opts.Cutoff.IsZero() && pageOlderThan(resp.Feed, c.opts.Cutoff) {
			break
		}

		if resp.Cursor == "" || len(resp.Feed) == 0 {
			break
		}
		cursor = resp.Cursor
	}

	return items, nil
}

// pageOlderThan reports whether the oldest parseable timestamp in the page
// predates the cutoff. The feed is newest-first, so the last item decides.
func pageOlderThan(feed []core.RawFeedItem, cutoff time.Time) bool {
	for i := len(feed) - 1; i >= 0; i-- {
		raw := feed[i].Post.Record.CreatedAt
		if raw == "" {
			continue
		}
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			continue
		}
		return ts.Before(cutoff)
	}
	return false
}
