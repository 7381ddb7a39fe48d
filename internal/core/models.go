package core

import "time"

const repostReasonType = "app.bsky.feed.defs#reasonRepost"

// Author identifies a Bluesky actor as returned by the AppView.
type Author struct {
	DID         string `json:"did"`
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

// Matches reports whether the author is the given profile. Handles are
// mutable, so DID is the durable match target, but either suffices.
func (a Author) Matches(p *Profile) bool {
	if p == nil {
		return false
	}
	return (a.DID != "" && a.DID == p.DID) || (a.Handle != "" && a.Handle == p.Handle)
}

// PostPointer is a uri/cid stub referencing another record.
type PostPointer struct {
	URI string `json:"uri"`
	CID string `json:"cid"`
}

// RecordReplyRef is the reply reference embedded in a post record.
type RecordReplyRef struct {
	Root   *PostPointer `json:"root,omitempty"`
	Parent *PostPointer `json:"parent,omitempty"`
}

// PostRecord is the app.bsky.feed.post record payload.
type PostRecord struct {
	Text      string          `json:"text"`
	CreatedAt string          `json:"createdAt"`
	Langs     []string        `json:"langs,omitempty"`
	Reply     *RecordReplyRef `json:"reply,omitempty"`
}

// Embed carries only the type tag of a post embed, which is all the
// pipeline inspects.
type Embed struct {
	Type string `json:"$type"`
}

// FeedPost is a hydrated post view from the AppView feed.
type FeedPost struct {
	URI         string     `json:"uri"`
	CID         string     `json:"cid"`
	Author      Author     `json:"author"`
	Record      PostRecord `json:"record"`
	Embed       *Embed     `json:"embed,omitempty"`
	IndexedAt   string     `json:"indexedAt"`
	LikeCount   int        `json:"likeCount"`
	ReplyCount  int        `json:"replyCount"`
	RepostCount int        `json:"repostCount"`
}

// FeedReplyBlock holds the hydrated root/parent of a reply feed item.
type FeedReplyBlock struct {
	Root   *FeedPost `json:"root,omitempty"`
	Parent *FeedPost `json:"parent,omitempty"`
}

// RepostReason is present on feed items that are reposts. It carries the
// reposting actor and the repost's own timestamp.
type RepostReason struct {
	Type      string `json:"$type"`
	By        Author `json:"by"`
	IndexedAt string `json:"indexedAt"`
}

// RawFeedItem is one entry of an app.bsky.feed.getAuthorFeed response.
// Exactly one of {post, reply, repost} holds per item, determined
// structurally: reason present means repost, reply present means reply,
// otherwise an original post.
type RawFeedItem struct {
	Post   FeedPost        `json:"post"`
	Reply  *FeedReplyBlock `json:"reply,omitempty"`
	Reason *RepostReason   `json:"reason,omitempty"`
}

// IsRepost reports whether the item is a repost by structural marker.
func (i RawFeedItem) IsRepost() bool {
	return i.Reason != nil && i.Reason.Type == repostReasonType
}

// IsReply reports whether the item is a reply. Some feed shapes populate
// only the record-level reply ref, so both locations are checked.
func (i RawFeedItem) IsReply() bool {
	return i.Reply != nil || i.Post.Record.Reply != nil
}

// Profile is an app.bsky.actor.getProfile response.
type Profile struct {
	DID            string `json:"did"`
	Handle         string `json:"handle"`
	DisplayName    string `json:"displayName,omitempty"`
	Description    string `json:"description,omitempty"`
	Avatar         string `json:"avatar,omitempty"`
	Banner         string `json:"banner,omitempty"`
	FollowersCount int    `json:"followersCount"`
	FollowsCount   int    `json:"followsCount"`
	PostsCount     int    `json:"postsCount"`
	IndexedAt      string `json:"indexedAt,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// PostMeta is derived once per item at classification time and never
// recomputed downstream.
type PostMeta struct {
	Hashtags   []string `json:"hashtags,omitempty"`
	Mentions   []string `json:"mentions,omitempty"`
	HasLinks   bool     `json:"hasLinks"`
	HasMedia   bool     `json:"hasMedia"`
	TextLength int      `json:"textLength"`
	Languages  []string `json:"languages,omitempty"`
}

// ItemType discriminates merged activity items.
type ItemType string

const (
	TypePost   ItemType = "post"
	TypeReply  ItemType = "reply"
	TypeRepost ItemType = "repost"
)

// OwnPost is a post authored by the analyzed user, enriched with metadata.
type OwnPost struct {
	URI       string   `json:"uri"`
	CID       string   `json:"cid"`
	Text      string   `json:"text"`
	CreatedAt string   `json:"createdAt"`
	Likes     int      `json:"likes"`
	Replies   int      `json:"replies"`
	Reposts   int      `json:"reposts"`
	Meta      PostMeta `json:"meta"`
}

// ReplyTo references the thread a reply belongs to, with author identity
// where the feed resolved it.
type ReplyTo struct {
	Root   *Author `json:"root,omitempty"`
	Parent *Author `json:"parent,omitempty"`
}

// OwnReply extends OwnPost with thread references. ThreadDepth is a coarse
// heuristic: 0 when not a reply, 1 when the parent is also the root, 2 when
// they differ. It is not an exact thread distance.
type OwnReply struct {
	OwnPost
	ReplyTo     ReplyTo `json:"replyTo"`
	ThreadDepth int     `json:"threadDepth"`
}

// OwnRepost references the reposted original plus the repost's own
// timestamp. The repost timestamp, not the original's creation time, is the
// temporal key for all activity analytics.
type OwnRepost struct {
	Original   OwnPost `json:"original"`
	By         Author  `json:"by"`
	RepostedAt string  `json:"repostedAt"`
}

// ContentSummary is the classification's summary metadata.
type ContentSummary struct {
	Total    int       `json:"total"`
	Posts    int       `json:"posts"`
	Replies  int       `json:"replies"`
	Reposts  int       `json:"reposts"`
	Other    int       `json:"other"`
	Earliest time.Time `json:"earliest,omitzero"`
	Latest   time.Time `json:"latest,omitzero"`
}

// ClassifiedContent is the immutable result of classification: four
// disjoint collections plus summary metadata. Other holds content from
// other users that surfaced in the feed; it is kept for completeness and
// not mined further.
type ClassifiedContent struct {
	Posts   []OwnPost      `json:"posts"`
	Replies []OwnReply     `json:"replies"`
	Reposts []OwnRepost    `json:"reposts"`
	Other   []RawFeedItem  `json:"-"`
	Summary ContentSummary `json:"summary"`
}
