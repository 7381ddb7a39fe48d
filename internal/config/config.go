package config

import "time"

type Config struct {
	LogLevel string `flag:"log-level"`

	Listen        string `flag:"listen"`
	MetricsListen string `flag:"metrics-listen"`

	AppViewURL   string        `flag:"appview-url"`
	FeedPageSize int           `flag:"feed-page-size"`
	MaxFeedPages int           `flag:"max-feed-pages"`
	PageDelay    time.Duration `flag:"page-delay"`

	// Timezone used for hour-of-day bucketing when the request does not
	// supply one. Pinned to UTC so server-side results are deterministic.
	Timezone string `flag:"timezone"`

	OpenAIKey   string `flag:"openai-key"`
	OpenAIModel string `flag:"openai-model"`
}
