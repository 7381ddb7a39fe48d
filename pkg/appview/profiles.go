package appview

import (
	"context"
	"fmt"
	"net/http"

	"skylens/internal/core"
)

const getProfile = "/xrpc/app.bsky.actor.getProfile"

// GetProfile resolves a handle or DID to a profile.
// https://docs.bsky.app/docs/api/app-bsky-actor-get-profile
//
// A 404 means the actor does not exist; it is reported as
// core.ErrUserNotFound so callers can distinguish it from transient
// upstream failures.
func (c *Client) GetProfile(ctx context.Context, actor string) (*core.Profile, error) {
	res, err := c.r(ctx).
		SetQueryParam("actor", actor).
		SetResult(&core.Profile{}).
		Get(getProfile)
	if err != nil {
		return nil, err
	}

	switch {
	case res.StatusCode() == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", core.ErrUserNotFound, actor)
	case res.IsError():
		return nil, fmt.Errorf("%w: getProfile: %s: %s", core.ErrUpstream, res.Status(), res.String())
	}

	return res.Result().(*core.Profile), nil
}
