package cmd

import (
	"context"
	"errors"
	"log/slog"

	"skylens/internal/analysis"
	"skylens/internal/cmd/flags"
	"skylens/internal/config"
	"skylens/internal/summarizer"
	"skylens/internal/words"
	"skylens/pkg/clicfg"

	"github.com/k0kubun/pp"
	"github.com/urfave/cli/v3"
)

var analyzeCmd = &cli.Command{
	Name:      "analyze",
	Usage:     "Run a one-shot analysis for a handle and print the result",
	ArgsUsage: "<handle>",
	Flags: []cli.Flag{
		flags.AppViewURL,
		flags.FeedPageSize,
		flags.MaxFeedPages,
		flags.PageDelay,
		flags.Timezone,
		flags.Locale,
		flags.WithSummary,
		flags.OpenAIKey,
		flags.OpenAIModel,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		handle := c.Args().First()
		if handle == "" {
			return errors.New("handle is required")
		}

		cfg := config.Config{}
		if err := clicfg.ParseFlags(c, &cfg); err != nil {
			return err
		}

		logger := slog.Default()

		summ := &summarizer.Summarizer{Logger: logger, Config: &cfg}
		if err := summ.Init(ctx); err != nil {
			return err
		}

		service := &analysis.Service{
			Logger:     logger,
			Config:     &cfg,
			Words:      words.NewProcessor(logger),
			Summarizer: summ,
		}
		if err := service.Init(ctx); err != nil {
			return err
		}

		result, err := service.Analyze(ctx, analysis.Request{
			Handle:      handle,
			Timezone:    c.String("timezone"),
			Locale:      c.String("locale"),
			WithSummary: c.Bool("summary"),
		})
		if err != nil {
			return err
		}

		pp.Println(result)
		return nil
	},
}
