package classifier_test

import (
	"testing"

	"skylens/internal/classifier"
	"skylens/internal/core"

	"github.com/stretchr/testify/require"
)

func TestExtractMeta(t *testing.T) {
	t.Parallel()

	t.Run("hashtags are lowercased and stripped", func(t *testing.T) {
		t.Parallel()

		meta := classifier.ExtractMeta(core.PostRecord{Text: "talking #GoLang and #RustLang today"}, nil)

		require.Equal(t, []string{"golang", "rustlang"}, meta.Hashtags)
	})

	t.Run("hashtags cover CJK characters", func(t *testing.T) {
		t.Parallel()

		meta := classifier.ExtractMeta(core.PostRecord{Text: "今天聊聊 #编程 吧"}, nil)

		require.Equal(t, []string{"编程"}, meta.Hashtags)
	})

	t.Run("mentions keep dots and drop the at sign", func(t *testing.T) {
		t.Parallel()

		meta := classifier.ExtractMeta(core.PostRecord{Text: "cc @alice.bsky.social and @bob"}, nil)

		require.Equal(t, []string{"alice.bsky.social", "bob"}, meta.Mentions)
	})

	t.Run("links", func(t *testing.T) {
		t.Parallel()

		require.True(t, classifier.ExtractMeta(core.PostRecord{Text: "see https://example.com"}, nil).HasLinks)
		require.True(t, classifier.ExtractMeta(core.PostRecord{Text: "see http://example.com"}, nil).HasLinks)
		require.False(t, classifier.ExtractMeta(core.PostRecord{Text: "no links here"}, nil).HasLinks)
	})

	t.Run("media embeds", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			embed *core.Embed
			want  bool
		}{
			{&core.Embed{Type: "app.bsky.embed.images#view"}, true},
			{&core.Embed{Type: "app.bsky.embed.video#view"}, true},
			{&core.Embed{Type: "app.bsky.embed.external#view"}, true},
			{&core.Embed{Type: "app.bsky.embed.record#view"}, false},
			{nil, false},
		}

		for _, tc := range cases {
			require.Equal(t, tc.want, classifier.ExtractMeta(core.PostRecord{}, tc.embed).HasMedia)
		}
	})

	t.Run("text length counts UTF-16 code units", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, 5, classifier.ExtractMeta(core.PostRecord{Text: "hello"}, nil).TextLength)
		// astral-plane emoji is a surrogate pair
		require.Equal(t, 2, classifier.ExtractMeta(core.PostRecord{Text: "😀"}, nil).TextLength)
		// BMP CJK characters are one unit each
		require.Equal(t, 2, classifier.ExtractMeta(core.PostRecord{Text: "你好"}, nil).TextLength)
	})

	t.Run("languages pass through", func(t *testing.T) {
		t.Parallel()

		meta := classifier.ExtractMeta(core.PostRecord{Text: "x", Langs: []string{"en", "zh"}}, nil)

		require.Equal(t, []string{"en", "zh"}, meta.Languages)
	})
}
