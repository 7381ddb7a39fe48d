package flags

import (
	"fmt"
	"slices"
	"time"

	"github.com/urfave/cli/v3"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

var LogLevel = &cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "The level of the logs",
	Value:   "info",
	Validator: func(value string) error {
		if !slices.Contains(validLogLevels, value) {
			return fmt.Errorf("invalid log level: %s, allowed values are: %s", value, validLogLevels)
		}
		return nil
	},
	Sources: cli.EnvVars("LOG_LEVEL"),
}

var Listen = &cli.StringFlag{
	Name:    "listen",
	Usage:   "The address the API server listens on",
	Value:   ":8888",
	Sources: cli.EnvVars("LISTEN"),
}

var MetricsListen = &cli.StringFlag{
	Name:    "metrics-listen",
	Usage:   "The address the metrics server listens on",
	Value:   ":9090",
	Sources: cli.EnvVars("METRICS_LISTEN"),
}

var AppViewURL = &cli.StringFlag{
	Name:    "appview-url",
	Usage:   "Base URL of the Bluesky AppView API",
	Value:   "https://public.api.bsky.app",
	Sources: cli.EnvVars("APPVIEW_URL"),
}

var FeedPageSize = &cli.IntFlag{
	Name:    "feed-page-size",
	Usage:   "Feed items requested per page, capped at 100 by the API",
	Value:   100,
	Sources: cli.EnvVars("FEED_PAGE_SIZE"),
}

var MaxFeedPages = &cli.IntFlag{
	Name:    "max-feed-pages",
	Usage:   "Hard cap on fetched feed pages per analysis",
	Value:   10,
	Sources: cli.EnvVars("MAX_FEED_PAGES"),
}

var PageDelay = &cli.DurationFlag{
	Name:    "page-delay",
	Usage:   "Delay between sequential feed page fetches",
	Value:   300 * time.Millisecond,
	Sources: cli.EnvVars("PAGE_DELAY"),
}

var Timezone = &cli.StringFlag{
	Name:    "timezone",
	Usage:   "Default IANA timezone for hour-of-day bucketing",
	Value:   "UTC",
	Sources: cli.EnvVars("TIMEZONE"),
}

var OpenAIKey = &cli.StringFlag{
	Name:    "openai-key",
	Usage:   "OpenAI API key; summaries are disabled when empty",
	Sources: cli.EnvVars("OPENAI_API_KEY"),
}

var OpenAIModel = &cli.StringFlag{
	Name:    "openai-model",
	Usage:   "OpenAI model used for personality summaries",
	Sources: cli.EnvVars("OPENAI_MODEL"),
}

var Locale = &cli.StringFlag{
	Name:    "locale",
	Usage:   "Locale hint for word processing, e.g. en or zh",
	Sources: cli.EnvVars("LOCALE"),
}

var WithSummary = &cli.BoolFlag{
	Name:    "summary",
	Usage:   "Include the LLM personality summary",
	Value:   false,
	Sources: cli.EnvVars("WITH_SUMMARY"),
}
