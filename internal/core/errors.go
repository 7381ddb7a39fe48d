package core

import "errors"

var (
	// ErrUserNotFound means the profile fetch returned 404. Terminal, not
	// retriable.
	ErrUserNotFound = errors.New("user not found")

	// ErrUpstream wraps any other non-2xx from the AppView. The pagination
	// loop aborts and reports; no automatic retry.
	ErrUpstream = errors.New("upstream request failed")
)
