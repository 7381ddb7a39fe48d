package words

import (
	"log/slog"
	"strings"
	"testing"

	"skylens/internal/core"

	"github.com/stretchr/testify/require"
)

// listSegmenter replays a fixed token list, standing in for the
// dictionary segmenter so single-character behavior is testable without
// the dictionary.
type listSegmenter []string

func (s listSegmenter) Segment(string) []core.SegmentedToken {
	tokens := make([]core.SegmentedToken, 0, len(s))
	for _, t := range s {
		tokens = append(tokens, core.SegmentedToken{Text: t, Weight: 1})
	}
	return tokens
}

func TestProcessChinese(t *testing.T) {
	t.Parallel()

	p := fallbackProcessor()
	opts := Options{Locale: "zh"}

	t.Run("embedded latin tokens are excluded entirely", func(t *testing.T) {
		t.Parallel()

		data := p.Process("我在学习 golang 编程语言 really cool", opts)

		for _, d := range data {
			require.False(t, strings.ContainsAny(d.Text, "abcdefghijklmnopqrstuvwxyz"), "token %q", d.Text)
		}
	})

	t.Run("repeated-character filler is dropped", func(t *testing.T) {
		t.Parallel()

		data := p.Process("哈哈哈哈 编程语言 好好好", opts)

		for _, d := range data {
			require.False(t, isRepetition(d.Text), "token %q", d.Text)
		}
	})

	t.Run("stop words are dropped", func(t *testing.T) {
		t.Parallel()

		data := p.Process("因为我们喜欢编程语言 所以我们喜欢编程语言", opts)

		require.Zero(t, value(data, "因为"))
		require.Zero(t, value(data, "我们"))
		require.NotZero(t, value(data, "编程"))
	})

	t.Run("min word length resizes the fallback window", func(t *testing.T) {
		t.Parallel()

		data := p.Process("编程语言", Options{Locale: "zh", MinWordLength: 3})

		require.Zero(t, value(data, "编程"))
		require.Zero(t, value(data, "语言"))
		require.Equal(t, 3, value(data, "编程语"))
		require.Equal(t, 4, value(data, "编程语言"))
	})

	t.Run("single characters need the allow-list and a frequency floor", func(t *testing.T) {
		t.Parallel()

		// 茶 is allow-listed and appears twice; 桌 is not allow-listed.
		sp := &Processor{
			Logger:    slog.Default(),
			segmenter: listSegmenter{"茶", "茶", "桌", "桌", "编程"},
		}
		data := sp.Process("喝茶品茶书桌书桌编程", opts)

		require.Equal(t, 2, value(data, "茶"))
		require.Zero(t, value(data, "桌"))
	})

	t.Run("allow-listed single character below the floor is dropped", func(t *testing.T) {
		t.Parallel()

		sp := &Processor{
			Logger:    slog.Default(),
			segmenter: listSegmenter{"茶", "编程", "编程"},
		}
		data := sp.Process("喝茶编程编程", opts)

		require.Zero(t, value(data, "茶"))
		require.Equal(t, 2, value(data, "编程"))
	})
}

func TestNGramSegmenter(t *testing.T) {
	t.Parallel()

	t.Run("generates windows over CJK runs, weighting longer spans", func(t *testing.T) {
		t.Parallel()

		tokens := NewNGramSegmenter(2).Segment("编程语言")

		weights := map[string]int{}
		for _, token := range tokens {
			weights[token.Text] = token.Weight
		}

		require.Equal(t, 2, weights["编程"])
		require.Equal(t, 2, weights["语言"])
		require.Equal(t, 3, weights["编程语"])
		require.Equal(t, 4, weights["编程语言"])
	})

	t.Run("non-CJK characters break runs", func(t *testing.T) {
		t.Parallel()

		tokens := NewNGramSegmenter(2).Segment("编程, 语言")

		texts := map[string]bool{}
		for _, token := range tokens {
			texts[token.Text] = true
		}

		require.True(t, texts["编程"])
		require.True(t, texts["语言"])
		require.False(t, texts["编程语"])
	})

	t.Run("out-of-range minimum falls back to bigrams", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, 2, NewNGramSegmenter(0).MinN)
		require.Equal(t, 2, NewNGramSegmenter(7).MinN)
		require.Equal(t, 3, NewNGramSegmenter(3).MinN)
	})
}

func TestDictSegmenterFallback(t *testing.T) {
	t.Parallel()

	// Whichever segmenter initialization picked, the processor must
	// satisfy the same contract.
	p := NewProcessor(slog.Default())

	data := p.Process("我们今天讨论编程语言的设计", Options{Locale: "zh"})

	require.NotEmpty(t, data)
	for i := 1; i < len(data); i++ {
		require.GreaterOrEqual(t, data[i-1].Value, data[i].Value)
	}
	for _, d := range data {
		require.NotRegexp(t, "^[a-zA-Z]+$", d.Text)
	}
}
