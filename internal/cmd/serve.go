package cmd

import (
	"context"

	"skylens/internal/analysis"
	"skylens/internal/api"
	"skylens/internal/cmd/flags"
	"skylens/internal/metrics"
	"skylens/internal/summarizer"
	"skylens/internal/words"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
)

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "Serve the analysis API over HTTP",
	Flags: []cli.Flag{
		flags.Listen,
		flags.MetricsListen,
		flags.AppViewURL,
		flags.FeedPageSize,
		flags.MaxFeedPages,
		flags.PageDelay,
		flags.Timezone,
		flags.OpenAIKey,
		flags.OpenAIModel,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			pal.Provide(&words.Processor{}),
			pal.Provide(&summarizer.Summarizer{}),
			pal.Provide(&analysis.Service{}),
			pal.Provide(&api.Server{}),
			pal.Provide(&metrics.Server{}),
		)
	},
}
