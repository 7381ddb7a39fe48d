// Package appview is a thin client for the public Bluesky AppView API.
package appview

import (
	"context"
	"time"

	"resty.dev/v3"
)

const DefaultBaseURL = "https://public.api.bsky.app"

type Options struct {
	BaseURL string

	// PageSize is the per-request feed limit, capped at 100 by the API.
	PageSize int

	// MaxPages bounds pagination so a cursor loop can never hang an
	// analysis.
	MaxPages int

	// PageDelay is the blocking wait between sequential page fetches.
	PageDelay time.Duration

	// Cutoff, when non-zero, stops pagination once a page's oldest item
	// is older than this.
	Cutoff time.Time
}

func (o Options) withDefaults() Options {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.PageSize <= 0 || o.PageSize > 100 {
		o.PageSize = 100
	}
	if o.MaxPages <= 0 {
		o.MaxPages = 10
	}
	if o.PageDelay == 0 {
		o.PageDelay = 300 * time.Millisecond
	}
	return o
}

type Client struct {
	opts   Options
	client *resty.Client
}

func NewClient(opts Options) *Client {
	opts = opts.withDefaults()

	client := resty.NewWithTransportSettings(&resty.TransportSettings{
		DialerTimeout:         5 * time.Second,
		IdleConnTimeout:       10 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
	})
	client.SetBaseURL(opts.BaseURL)

	return &Client{
		opts:   opts,
		client: client,
	}
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) r(ctx context.Context) *resty.Request {
	return c.client.R().WithContext(ctx)
}
