// Package classifier partitions a raw author feed into the analyzed
// user's posts, replies and reposts, plus content from other users.
package classifier

import (
	"time"

	"skylens/internal/core"
)

// Kind is the routing decision for a single feed item.
type Kind string

const (
	KindPost   Kind = "post"
	KindReply  Kind = "reply"
	KindRepost Kind = "repost"
	KindOther  Kind = "other"
)

// Routed is one classified feed item. Exactly one of Post/Reply/Repost is
// set for owned items; Raw is set for KindOther.
type Routed struct {
	Kind   Kind
	Post   *core.OwnPost
	Reply  *core.OwnReply
	Repost *core.OwnRepost
	Raw    *core.RawFeedItem
}

// Classifier routes feed items against a single subject profile.
type Classifier struct {
	profile *core.Profile
}

func New(profile *core.Profile) *Classifier {
	return &Classifier{profile: profile}
}

// Route classifies one item. It is total: missing or malformed optional
// fields degrade to non-matches and never fail.
func (c *Classifier) Route(item core.RawFeedItem) Routed {
	switch {
	case item.IsRepost():
		if !item.Reason.By.Matches(c.profile) {
			return Routed{Kind: KindOther, Raw: &item}
		}
		return Routed{Kind: KindRepost, Repost: &core.OwnRepost{
			Original:   ownPost(item.Post),
			By:         item.Reason.By,
			RepostedAt: item.Reason.IndexedAt,
		}}

	case item.IsReply():
		if !item.Post.Author.Matches(c.profile) {
			return Routed{Kind: KindOther, Raw: &item}
		}
		reply := &core.OwnReply{
			OwnPost: ownPost(item.Post),
			ReplyTo: replyTo(item.Reply),
		}
		reply.ThreadDepth = threadDepth(item.Reply)
		return Routed{Kind: KindReply, Reply: reply}

	default:
		if !item.Post.Author.Matches(c.profile) {
			return Routed{Kind: KindOther, Raw: &item}
		}
		post := ownPost(item.Post)
		return Routed{Kind: KindPost, Post: &post}
	}
}

// Classify routes a whole feed and assembles the classified content with
// its summary metadata. Every input item lands in exactly one collection.
func (c *Classifier) Classify(items []core.RawFeedItem) *core.ClassifiedContent {
	content := &core.ClassifiedContent{}
	builder := NewBuilder(content)

	for _, item := range items {
		builder.Add(c.Route(item))
		builder.Observe(ItemTimestamp(item))
	}

	builder.Finish()
	return content
}

// Builder accumulates routed items into a ClassifiedContent. It exists so
// the streaming pipeline can feed it item by item.
type Builder struct {
	content  *core.ClassifiedContent
	earliest time.Time
	latest   time.Time
}

func NewBuilder(content *core.ClassifiedContent) *Builder {
	return &Builder{content: content}
}

func (b *Builder) Add(routed Routed) {
	switch routed.Kind {
	case KindPost:
		b.content.Posts = append(b.content.Posts, *routed.Post)
	case KindReply:
		b.content.Replies = append(b.content.Replies, *routed.Reply)
	case KindRepost:
		b.content.Reposts = append(b.content.Reposts, *routed.Repost)
	case KindOther:
		b.content.Other = append(b.content.Other, *routed.Raw)
	}
}

// Observe widens the running time range with one item's timestamp.
// Unparseable timestamps are skipped.
func (b *Builder) Observe(ts time.Time) {
	if ts.IsZero() {
		return
	}
	if b.earliest.IsZero() || ts.Before(b.earliest) {
		b.earliest = ts
	}
	if b.latest.IsZero() || ts.After(b.latest) {
		b.latest = ts
	}
}

func (b *Builder) Finish() {
	c := b.content
	c.Summary = core.ContentSummary{
		Total:    len(c.Posts) + len(c.Replies) + len(c.Reposts) + len(c.Other),
		Posts:    len(c.Posts),
		Replies:  len(c.Replies),
		Reposts:  len(c.Reposts),
		Other:    len(c.Other),
		Earliest: b.earliest,
		Latest:   b.latest,
	}
}

func ownPost(post core.FeedPost) core.OwnPost {
	return core.OwnPost{
		URI:       post.URI,
		CID:       post.CID,
		Text:      post.Record.Text,
		CreatedAt: post.Record.CreatedAt,
		Likes:     post.LikeCount,
		Replies:   post.ReplyCount,
		Reposts:   post.RepostCount,
		Meta:      ExtractMeta(post.Record, post.Embed),
	}
}

func replyTo(block *core.FeedReplyBlock) core.ReplyTo {
	if block == nil {
		return core.ReplyTo{}
	}
	ref := core.ReplyTo{}
	if block.Root != nil {
		root := block.Root.Author
		ref.Root = &root
	}
	if block.Parent != nil {
		parent := block.Parent.Author
		ref.Parent = &parent
	}
	return ref
}

// threadDepth is the coarse 0/1/2 heuristic: 1 when the parent is also
// the thread root, 2 when they differ. A reply whose block is missing
// entirely still counts as depth 1.
func threadDepth(block *core.FeedReplyBlock) int {
	if block == nil || block.Parent == nil || block.Root == nil {
		return 1
	}
	if block.Parent.URI == block.Root.URI {
		return 1
	}
	return 2
}

// ItemTimestamp is the item's temporal key: the repost timestamp for
// reposts, the record creation time otherwise.
func ItemTimestamp(item core.RawFeedItem) time.Time {
	raw := item.Post.Record.CreatedAt
	if item.IsRepost() && item.Reason.IndexedAt != "" {
		raw = item.Reason.IndexedAt
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return ts
}
