package core

import "context"

// FeedSource is the upstream the analysis pipeline reads from.
type FeedSource interface {
	GetProfile(ctx context.Context, actor string) (*Profile, error)
	FetchAllPosts(ctx context.Context, actor string) ([]RawFeedItem, error)
}

// ContentSample is the capped text sample handed to the summarizer.
type ContentSample struct {
	OriginalPosts []string `json:"originalPosts"`
	ReplyPosts    []string `json:"replyPosts"`
}

// Segmenter splits CJK text into tokens. Two implementations exist: a
// dictionary segmenter and an n-gram fallback for when the dictionary
// cannot be loaded. Callers depend only on this interface.
type Segmenter interface {
	Segment(text string) []SegmentedToken
}

// SegmentedToken is one segmentation result. Weight is 1 for dictionary
// tokens; the n-gram fallback weights longer spans higher.
type SegmentedToken struct {
	Text   string
	Weight int
}
