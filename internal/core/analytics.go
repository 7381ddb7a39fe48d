package core

// HourHistogram is a 24-slot activity histogram indexed by hour of day.
// All slots are always present and zero-filled by construction.
type HourHistogram [24]int

// Sum returns the total count across all hours.
func (h HourHistogram) Sum() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// TypedHourHistograms splits hourly activity by item type.
type TypedHourHistograms struct {
	Posts   HourHistogram `json:"posts"`
	Replies HourHistogram `json:"replies"`
	Reposts HourHistogram `json:"reposts"`
}

// ActivityPoint is a per-item record for scatter-plot visualization.
// Timestamp is minutes since midnight in the target timezone.
type ActivityPoint struct {
	Hour      int      `json:"hour"`
	Minute    int      `json:"minute"`
	Timestamp int      `json:"timestamp"`
	Type      ItemType `json:"type"`
	CreatedAt string   `json:"createdAt"`
}

// TimelineEntry is one calendar day of activity. Likes is a reserved
// field, always zero: the feed API does not expose the data to fill it.
type TimelineEntry struct {
	Date    string `json:"date"`
	Posts   int    `json:"posts"`
	Replies int    `json:"replies"`
	Reposts int    `json:"reposts"`
	Likes   int    `json:"likes"`
	Total   int    `json:"total"`
}

// Interaction is one ranked entry of the interaction graph.
type Interaction struct {
	DID         string `json:"did"`
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar,omitempty"`
	Count       int    `json:"count"`
}

// HashtagCount is one ranked hashtag. Tag is lowercased and stripped of
// the leading '#'.
type HashtagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Insights are the scalar summaries of an analysis.
type Insights struct {
	TotalPosts     int     `json:"totalPosts"`
	TotalReplies   int     `json:"totalReplies"`
	TotalReposts   int     `json:"totalReposts"`
	AvgTextLength  float64 `json:"avgTextLength"`
	MostActiveHour int     `json:"mostActiveHour"`
	MostActiveDay  string  `json:"mostActiveDay"`
	PostsWithMedia int     `json:"postsWithMedia"`
	PostsWithLinks int     `json:"postsWithLinks"`
}

// AnalyticsResult is the aggregator's output and the stable contract
// consumed by the presentation layer.
type AnalyticsResult struct {
	ActivityByHour        HourHistogram       `json:"activityByHour"`
	ActivityByHourAndType TypedHourHistograms `json:"activityByHourAndType"`
	ActivityPoints        []ActivityPoint     `json:"activityPoints"`
	ActivityTimeline      []TimelineEntry     `json:"activityTimeline"`
	TopInteractions       []Interaction       `json:"topInteractions"`
	CommonHashtags        []HashtagCount      `json:"commonHashtags"`
	Insights              Insights            `json:"insights"`
	RawText               string              `json:"rawText"`
	IsChineseContent      bool                `json:"isChineseContent"`
}

// WordDatum is one word-cloud entry. Value is a frequency or weighted
// frequency; collections are emitted sorted descending by value.
type WordDatum struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// Summary is an LLM-generated personality summary.
type Summary struct {
	Summary      string `json:"summary"`
	Animal       string `json:"animal,omitempty"`
	AnimalReason string `json:"animalReason,omitempty"`
}

// Analysis bundles everything produced for one handle.
type Analysis struct {
	Profile   *Profile         `json:"profile"`
	Content   ContentSummary   `json:"content"`
	Analytics *AnalyticsResult `json:"analytics"`
	Words     []WordDatum      `json:"words"`
	Summary   *Summary         `json:"summary,omitempty"`
}
