package classifier

import (
	"regexp"
	"strings"
	"unicode/utf16"

	"skylens/internal/core"

	"github.com/samber/lo"
)

var (
	hashtagRe = regexp.MustCompile(`#([\w\x{4e00}-\x{9fff}]+)`)
	mentionRe = regexp.MustCompile(`@([\w.]+)`)
	linkRe    = regexp.MustCompile(`https?://`)
)

var mediaEmbedMarkers = []string{"images", "video", "external"}

// ExtractMeta derives per-post metadata from a record and its embed. It
// runs once at classification time; downstream components read the result
// and never re-inspect the raw record.
func ExtractMeta(record core.PostRecord, embed *core.Embed) core.PostMeta {
	return core.PostMeta{
		Hashtags:   extractHashtags(record.Text),
		Mentions:   extractMentions(record.Text),
		HasLinks:   linkRe.MatchString(record.Text),
		HasMedia:   hasMediaEmbed(embed),
		TextLength: utf16Length(record.Text),
		Languages:  record.Langs,
	}
}

func extractHashtags(text string) []string {
	matches := hashtagRe.FindAllStringSubmatch(text, -1)
	if matches == nil {
		return nil
	}
	return lo.Map(matches, func(m []string, _ int) string {
		return strings.ToLower(m[1])
	})
}

func extractMentions(text string) []string {
	matches := mentionRe.FindAllStringSubmatch(text, -1)
	if matches == nil {
		return nil
	}
	return lo.Map(matches, func(m []string, _ int) string {
		return m[1]
	})
}

func hasMediaEmbed(embed *core.Embed) bool {
	if embed == nil {
		return false
	}
	return lo.SomeBy(mediaEmbedMarkers, func(marker string) bool {
		return strings.Contains(embed.Type, marker)
	})
}

// utf16Length counts UTF-16 code units. Astral-plane characters such as
// emoji count as two units, matching Bluesky's own length accounting.
func utf16Length(text string) int {
	return len(utf16.Encode([]rune(text)))
}
