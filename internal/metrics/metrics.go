package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skylens_analyses_total",
		Help: "The total number of analyses by outcome.",
	}, []string{"outcome"})

	FeedItemsFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skylens_feed_items_fetched_total",
		Help: "The total number of feed items fetched from the AppView.",
	})

	ItemsClassified = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skylens_items_classified_total",
		Help: "The total number of classified feed items by kind.",
	}, []string{"kind"})

	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "skylens_analysis_duration_seconds",
		Help:    "End-to-end duration of one analysis.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
	})
)
