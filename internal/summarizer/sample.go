package summarizer

import (
	"math/rand"

	"skylens/internal/core"

	"github.com/samber/lo"
)

const (
	maxOriginalSamples = 30
	maxReplySamples    = 20
)

// BuildSample collects the capped text sample handed to the LLM. When the
// reply pool exceeds its cap a random subsample is taken, so this is the
// one deliberately non-deterministic step of the pipeline.
func BuildSample(content *core.ClassifiedContent) core.ContentSample {
	originals := lo.FilterMap(content.Posts, func(p core.OwnPost, _ int) (string, bool) {
		return p.Text, p.Text != ""
	})
	if len(originals) > maxOriginalSamples {
		originals = originals[:maxOriginalSamples]
	}

	replies := lo.FilterMap(content.Replies, func(r core.OwnReply, _ int) (string, bool) {
		return r.Text, r.Text != ""
	})
	if len(replies) > maxReplySamples {
		shuffled := make([]string, len(replies))
		copy(shuffled, replies)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		replies = shuffled[:maxReplySamples]
	}

	return core.ContentSample{
		OriginalPosts: originals,
		ReplyPosts:    replies,
	}
}
