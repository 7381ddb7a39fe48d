// Package analytics turns classified feed content into the activity
// histograms, timelines, rankings and insights the presentation layer
// renders.
package analytics

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"skylens/internal/core"

	"github.com/samber/lo"
)

const (
	maxInteractions = 30
	maxHashtags     = 20

	chineseRatioThreshold = 0.3
)

// Options control aggregation. Timezone is an IANA name used for
// hour-of-day bucketing; it defaults to UTC so server-side runs are
// deterministic. Calendar-day bucketing stays UTC regardless, so a "day"
// is stable across viewer timezones.
type Options struct {
	Timezone   string
	UserDID    string
	UserHandle string
}

type Aggregator struct {
	Logger *slog.Logger
}

func New(logger *slog.Logger) *Aggregator {
	return &Aggregator{Logger: logger}
}

// mergedItem is one entry of the chronologically merged activity list.
// For reposts the timestamp is the repost's own, not the original's:
// activity analytics describe the subject's timeline of actions.
type mergedItem struct {
	Type      core.ItemType
	Text      string
	Meta      core.PostMeta
	Timestamp time.Time
	Raw       string
}

// Aggregate computes the full analytics result. It is total over any
// classified content: unparseable timestamps are substituted with the
// epoch and logged, never fatal. Two runs over the same input and options
// produce identical results.
func (a *Aggregator) Aggregate(content *core.ClassifiedContent, opts Options) *core.AnalyticsResult {
	loc := a.location(opts.Timezone)
	merged := a.merge(content)

	res := &core.AnalyticsResult{
		ActivityTimeline: []core.TimelineEntry{},
		TopInteractions:  []core.Interaction{},
		CommonHashtags:   []core.HashtagCount{},
	}

	a.buildHistograms(res, merged, loc)
	res.ActivityPoints = activityPoints(merged, loc)
	res.ActivityTimeline = timeline(merged)
	res.TopInteractions = interactions(content, opts)
	res.CommonHashtags = hashtags(merged)
	res.RawText, res.IsChineseContent = corpus(merged)
	res.Insights = insights(content, merged, res)

	return res
}

// merge flattens posts, replies and reposts into one list sorted
// ascending by timestamp. The sort is stable: ties keep feed order.
func (a *Aggregator) merge(content *core.ClassifiedContent) []mergedItem {
	items := make([]mergedItem, 0, len(content.Posts)+len(content.Replies)+len(content.Reposts))

	for _, p := range content.Posts {
		items = append(items, mergedItem{
			Type: core.TypePost, Text: p.Text, Meta: p.Meta,
			Timestamp: a.parseTime(p.CreatedAt), Raw: p.CreatedAt,
		})
	}
	for _, r := range content.Replies {
		items = append(items, mergedItem{
			Type: core.TypeReply, Text: r.Text, Meta: r.Meta,
			Timestamp: a.parseTime(r.CreatedAt), Raw: r.CreatedAt,
		})
	}
	for _, r := range content.Reposts {
		items = append(items, mergedItem{
			Type: core.TypeRepost, Text: r.Original.Text, Meta: r.Original.Meta,
			Timestamp: a.parseTime(r.RepostedAt), Raw: r.RepostedAt,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.Before(items[j].Timestamp)
	})

	return items
}

func (a *Aggregator) parseTime(raw string) time.Time {
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		a.Logger.Warn("unparseable timestamp, using epoch", "value", raw, "error", err)
		return time.Unix(0, 0).UTC()
	}
	return ts
}

func (a *Aggregator) location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		a.Logger.Warn("unknown timezone, falling back to UTC", "timezone", name, "error", err)
		return time.UTC
	}
	return loc
}

func (a *Aggregator) buildHistograms(res *core.AnalyticsResult, merged []mergedItem, loc *time.Location) {
	for _, item := range merged {
		hour := item.Timestamp.In(loc).Hour()
		res.ActivityByHour[hour]++

		switch item.Type {
		case core.TypePost:
			res.ActivityByHourAndType.Posts[hour]++
		case core.TypeReply:
			res.ActivityByHourAndType.Replies[hour]++
		case core.TypeRepost:
			res.ActivityByHourAndType.Reposts[hour]++
		}
	}
}

func activityPoints(merged []mergedItem, loc *time.Location) []core.ActivityPoint {
	points := lo.Map(merged, func(item mergedItem, _ int) core.ActivityPoint {
		local := item.Timestamp.In(loc)
		return core.ActivityPoint{
			Hour:      local.Hour(),
			Minute:    local.Minute(),
			Timestamp: local.Hour()*60 + local.Minute(),
			Type:      item.Type,
			CreatedAt: item.Raw,
		}
	})

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp < points[j].Timestamp
	})

	return points
}

// timeline groups activity by UTC calendar date, one entry per day that
// has at least one item, ascending by date string. The likes counter is a
// reserved field the feed API gives no data for.
func timeline(merged []mergedItem) []core.TimelineEntry {
	byDate := map[string]*core.TimelineEntry{}

	for _, item := range merged {
		date := item.Timestamp.UTC().Format("2006-01-02")
		entry, ok := byDate[date]
		if !ok {
			entry = &core.TimelineEntry{Date: date}
			byDate[date] = entry
		}

		switch item.Type {
		case core.TypePost:
			entry.Posts++
		case core.TypeReply:
			entry.Replies++
		case core.TypeRepost:
			entry.Reposts++
		}
		entry.Total++
	}

	entries := lo.Map(lo.Values(byDate), func(e *core.TimelineEntry, _ int) core.TimelineEntry {
		return *e
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})

	return entries
}

// interactions mines the subject's own replies: the immediate parent
// author and, when distinct, the thread root author each count one
// interaction, unless they are the subject. Ranked descending by count,
// capped at 30. Ties break on DID so the ranking is deterministic.
func interactions(content *core.ClassifiedContent, opts Options) []core.Interaction {
	counts := map[string]*core.Interaction{}

	bump := func(author *core.Author) {
		if author == nil || author.DID == "" {
			return
		}
		// DID is the durable identity; the handle check additionally
		// catches feeds hydrated before a handle change.
		if author.DID == opts.UserDID {
			return
		}
		if opts.UserHandle != "" && author.Handle == opts.UserHandle {
			return
		}
		entry, ok := counts[author.DID]
		if !ok {
			displayName := author.DisplayName
			if displayName == "" {
				displayName = author.Handle
			}
			entry = &core.Interaction{
				DID:         author.DID,
				Handle:      author.Handle,
				DisplayName: displayName,
				Avatar:      author.Avatar,
			}
			counts[author.DID] = entry
		}
		entry.Count++
	}

	for _, reply := range content.Replies {
		parent := reply.ReplyTo.Parent
		root := reply.ReplyTo.Root

		bump(parent)
		if root != nil && (parent == nil || root.DID != parent.DID) {
			bump(root)
		}
	}

	ranked := lo.Map(lo.Values(counts), func(i *core.Interaction, _ int) core.Interaction {
		return *i
	})
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].DID < ranked[j].DID
	})

	if len(ranked) > maxInteractions {
		ranked = ranked[:maxInteractions]
	}
	return ranked
}

func hashtags(merged []mergedItem) []core.HashtagCount {
	counts := map[string]int{}
	for _, item := range merged {
		for _, tag := range item.Meta.Hashtags {
			counts[tag]++
		}
	}

	ranked := lo.MapToSlice(counts, func(tag string, count int) core.HashtagCount {
		return core.HashtagCount{Tag: tag, Count: count}
	})
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Tag < ranked[j].Tag
	})

	if len(ranked) > maxHashtags {
		ranked = ranked[:maxHashtags]
	}
	return ranked
}

// corpus joins all texts and flags the corpus as Chinese-dominant when
// CJK characters exceed 30% of the non-whitespace characters.
func corpus(merged []mergedItem) (string, bool) {
	texts := lo.FilterMap(merged, func(item mergedItem, _ int) (string, bool) {
		return item.Text, item.Text != ""
	})
	raw := strings.Join(texts, " ")

	var cjk, total int
	for _, r := range raw {
		switch {
		case r == ' ' || r == '\n' || r == '\t':
		case r >= 0x4e00 && r <= 0x9fff:
			cjk++
			total++
		default:
			total++
		}
	}

	return raw, total > 0 && float64(cjk)/float64(total) > chineseRatioThreshold
}

func insights(content *core.ClassifiedContent, merged []mergedItem, res *core.AnalyticsResult) core.Insights {
	out := core.Insights{
		TotalPosts:   len(content.Posts),
		TotalReplies: len(content.Replies),
		TotalReposts: len(content.Reposts),
	}

	var textTotal, textCount int
	for _, item := range merged {
		if item.Text != "" {
			textTotal += item.Meta.TextLength
			textCount++
		}
		if item.Meta.HasMedia {
			out.PostsWithMedia++
		}
		if item.Meta.HasLinks {
			out.PostsWithLinks++
		}
	}
	if textCount > 0 {
		out.AvgTextLength = float64(textTotal) / float64(textCount)
	}

	// Lowest hour wins ties, explicitly.
	best := 0
	for hour := 1; hour < 24; hour++ {
		if res.ActivityByHour[hour] > res.ActivityByHour[best] {
			best = hour
		}
	}
	out.MostActiveHour = best

	// Timeline is sorted ascending by date, so the first max is the
	// earliest day with the highest total.
	maxTotal := 0
	for _, entry := range res.ActivityTimeline {
		if entry.Total > maxTotal {
			maxTotal = entry.Total
			out.MostActiveDay = entry.Date
		}
	}

	return out
}
