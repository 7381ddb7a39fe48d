package summarizer_test

import (
	"fmt"
	"testing"

	"skylens/internal/core"
	"skylens/internal/summarizer"

	"github.com/stretchr/testify/require"
)

func posts(n int) []core.OwnPost {
	out := make([]core.OwnPost, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, core.OwnPost{Text: fmt.Sprintf("post %d", i)})
	}
	return out
}

func replies(n int) []core.OwnReply {
	out := make([]core.OwnReply, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, core.OwnReply{OwnPost: core.OwnPost{Text: fmt.Sprintf("reply %d", i)}})
	}
	return out
}

func TestBuildSample(t *testing.T) {
	t.Parallel()

	t.Run("takes originals in feed order up to the cap", func(t *testing.T) {
		t.Parallel()

		sample := summarizer.BuildSample(&core.ClassifiedContent{
			Posts:   posts(40),
			Replies: replies(5),
		})

		require.Len(t, sample.OriginalPosts, 30)
		require.Equal(t, "post 0", sample.OriginalPosts[0])
		require.Equal(t, "post 29", sample.OriginalPosts[29])
		require.Len(t, sample.ReplyPosts, 5)
	})

	t.Run("subsamples replies over the cap", func(t *testing.T) {
		t.Parallel()

		source := replies(50)
		sample := summarizer.BuildSample(&core.ClassifiedContent{Replies: source})

		require.Len(t, sample.ReplyPosts, 20)

		pool := map[string]bool{}
		for _, r := range source {
			pool[r.Text] = true
		}
		seen := map[string]bool{}
		for _, text := range sample.ReplyPosts {
			require.True(t, pool[text])
			require.False(t, seen[text], "duplicate %q in subsample", text)
			seen[text] = true
		}
	})

	t.Run("drops empty texts before capping", func(t *testing.T) {
		t.Parallel()

		sample := summarizer.BuildSample(&core.ClassifiedContent{
			Posts: []core.OwnPost{{Text: ""}, {Text: "kept"}, {Text: ""}},
		})

		require.Equal(t, []string{"kept"}, sample.OriginalPosts)
	})

	t.Run("empty content yields an empty sample", func(t *testing.T) {
		t.Parallel()

		sample := summarizer.BuildSample(&core.ClassifiedContent{})

		require.Empty(t, sample.OriginalPosts)
		require.Empty(t, sample.ReplyPosts)
	})
}
