// Package analysis orchestrates one request-scoped pipeline run:
// fetch pages, classify, aggregate, word-process, optionally summarize.
package analysis

import (
	"context"
	"log/slog"
	"time"

	"skylens/internal/analytics"
	"skylens/internal/classifier"
	"skylens/internal/config"
	"skylens/internal/core"
	"skylens/internal/metrics"
	"skylens/internal/summarizer"
	"skylens/internal/words"
	"skylens/pkg/appview"

	"github.com/zhulik/pips"
	"github.com/zhulik/pips/apply"
)

// Request describes one analysis. Timezone and Locale are optional; the
// configured defaults apply when absent.
type Request struct {
	Handle      string
	Timezone    string
	Locale      string
	WithSummary bool
}

type Service struct {
	Logger     *slog.Logger
	Config     *config.Config
	Summarizer *summarizer.Summarizer
	Words      *words.Processor

	feed       core.FeedSource
	aggregator *analytics.Aggregator
}

func (s *Service) Init(context.Context) error {
	s.Logger = s.Logger.With("component", "analysis.Service")
	s.aggregator = analytics.New(s.Logger)

	if s.feed == nil {
		s.feed = appview.NewClient(appview.Options{
			BaseURL:   s.Config.AppViewURL,
			PageSize:  s.Config.FeedPageSize,
			MaxPages:  s.Config.MaxFeedPages,
			PageDelay: s.Config.PageDelay,
		})
	}
	return nil
}

// Analyze runs the whole pipeline for one handle. Each call operates on
// its own freshly fetched snapshot; concurrent analyses share no state.
func (s *Service) Analyze(ctx context.Context, req Request) (*core.Analysis, error) {
	start := time.Now()

	result, err := s.analyze(ctx, req)
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.AnalysesTotal.WithLabelValues("ok").Inc()
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	return result, nil
}

func (s *Service) analyze(ctx context.Context, req Request) (*core.Analysis, error) {
	profile, err := s.feed.GetProfile(ctx, req.Handle)
	if err != nil {
		return nil, err
	}

	items, err := s.feed.FetchAllPosts(ctx, profile.Handle)
	if err != nil {
		return nil, err
	}
	metrics.FeedItemsFetched.Add(float64(len(items)))

	classified, err := s.classify(ctx, items, profile)
	if err != nil {
		return nil, err
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = s.Config.Timezone
	}

	aggregated := s.aggregator.Aggregate(classified, analytics.Options{
		Timezone:   timezone,
		UserDID:    profile.DID,
		UserHandle: profile.Handle,
	})

	wordData := s.Words.Process(aggregated.RawText, words.Options{
		Locale: req.Locale,
	})

	result := &core.Analysis{
		Profile:   profile,
		Content:   classified.Summary,
		Analytics: aggregated,
		Words:     wordData,
	}

	if req.WithSummary && s.Summarizer != nil && s.Summarizer.Enabled() {
		result.Summary = s.summarize(ctx, classified, profile, req.Locale)
	}

	return result, nil
}

// classify streams the raw feed through a pipeline that routes each item
// and folds it into the classified content. Stages run sequentially per
// item, so the result order is deterministic.
func (s *Service) classify(ctx context.Context, items []core.RawFeedItem, profile *core.Profile) (*core.ClassifiedContent, error) {
	cls := classifier.New(profile)
	content := &core.ClassifiedContent{}
	builder := classifier.NewBuilder(content)

	input := make(chan pips.D[core.RawFeedItem])
	go func() {
		defer close(input)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case input <- pips.NewD(item):
			}
		}
	}()

	err := pips.New[core.RawFeedItem, any]().
		Then(apply.Each(func(_ context.Context, item core.RawFeedItem) error {
			routed := cls.Route(item)
			builder.Add(routed)
			builder.Observe(classifier.ItemTimestamp(item))
			metrics.ItemsClassified.WithLabelValues(string(routed.Kind)).Inc()
			return nil
		})).
		Run(ctx, input).
		Wait(ctx)
	if err != nil {
		return nil, err
	}

	builder.Finish()
	return content, nil
}

// summarize is best-effort: a failed or empty summary degrades to none,
// it never fails the analysis.
func (s *Service) summarize(ctx context.Context, classified *core.ClassifiedContent, profile *core.Profile, locale string) *core.Summary {
	sample := summarizer.BuildSample(classified)

	summary, err := s.Summarizer.Summarize(ctx, sample, profile.DisplayName, locale)
	if err != nil {
		s.Logger.Error("summarization failed", "handle", profile.Handle, "error", err)
		return nil
	}
	return summary
}
