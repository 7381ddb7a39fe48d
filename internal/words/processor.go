// Package words builds word-cloud data: language-aware tokenization,
// stop-word and noise filtering, and frequency ranking.
package words

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"skylens/internal/core"
)

const (
	defaultMinWordLength = 3
	defaultMaxWords      = 100

	// Surviving single CJK characters still need to show up at least
	// this often.
	singleCharMinCount = 2
)

// Options control word processing. Locale, when set, overrides script
// auto-detection: any locale containing "zh" selects the Chinese path.
// MinWordLength is the English token length floor and, on the Chinese
// path, the n-gram fallback's window minimum.
type Options struct {
	Locale        string
	MinWordLength int
	MaxWords      int
}

func (o Options) withDefaults() Options {
	if o.MinWordLength <= 0 {
		o.MinWordLength = defaultMinWordLength
	}
	if o.MaxWords <= 0 {
		o.MaxWords = defaultMaxWords
	}
	return o
}

// Processor turns a raw text corpus into ranked word-cloud data. The
// Chinese segmenter is picked at startup: the dictionary segmenter when
// its dictionary loads, the n-gram fallback otherwise.
type Processor struct {
	Logger *slog.Logger

	segmenter core.Segmenter
}

func NewProcessor(logger *slog.Logger) *Processor {
	p := &Processor{Logger: logger}
	p.initSegmenter()
	return p
}

func (p *Processor) Init(context.Context) error {
	p.Logger = p.Logger.With("component", "words.Processor")
	p.initSegmenter()
	return nil
}

func (p *Processor) initSegmenter() {
	seg, err := NewDictSegmenter()
	if err != nil {
		p.Logger.Warn("dictionary segmenter unavailable, using n-gram fallback", "error", err)
		p.segmenter = NewNGramSegmenter(2)
		return
	}
	p.segmenter = seg
}

// Process tokenizes, filters and ranks the corpus. Output is sorted
// descending by value; tokens are emitted in full, truncation for display
// is the renderer's concern. An empty corpus yields an empty, valid
// result.
func (p *Processor) Process(text string, opts Options) []core.WordDatum {
	if strings.TrimSpace(text) == "" {
		return []core.WordDatum{}
	}

	if p.isChinese(text, opts.Locale) {
		return p.processChinese(text, opts)
	}
	return p.processEnglish(text, opts.withDefaults())
}

// isChinese trusts an explicit locale; otherwise the majority script in
// the sample decides.
func (p *Processor) isChinese(text, locale string) bool {
	if locale != "" {
		return strings.Contains(locale, "zh")
	}

	var cjk, latin int
	for _, r := range text {
		switch {
		case isCJK(r):
			cjk++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			latin++
		}
	}
	return cjk > latin
}

var (
	nonWordRe = regexp.MustCompile(`[^a-z0-9']+`)
	numericRe = regexp.MustCompile(`^[0-9]+$`)
	latinRe   = regexp.MustCompile(`^[a-zA-Z]+$`)
)

func (p *Processor) processEnglish(text string, opts Options) []core.WordDatum {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), " ")

	counts := map[string]int{}
	for _, token := range strings.Fields(cleaned) {
		token = strings.Trim(token, "'")

		if len(token) < opts.MinWordLength {
			continue
		}
		if englishStopWords[token] {
			continue
		}
		if numericRe.MatchString(token) {
			continue
		}
		if mostlyNonLetters(token) {
			continue
		}
		counts[token]++
	}

	return rank(counts, opts.MaxWords)
}

// chineseSegmenter returns the active segmenter. When the n-gram
// fallback is active its window follows the caller's minimum word
// length; an absent or out-of-range minimum keeps the bigram floor. The
// dictionary segmenter needs no minimum.
func (p *Processor) chineseSegmenter(opts Options) core.Segmenter {
	if _, ok := p.segmenter.(NGramSegmenter); ok {
		return NewNGramSegmenter(opts.MinWordLength)
	}
	return p.segmenter
}

func (p *Processor) processChinese(text string, opts Options) []core.WordDatum {
	seg := p.chineseSegmenter(opts)
	opts = opts.withDefaults()

	weights := map[string]int{}

	for _, token := range seg.Segment(text) {
		t := strings.TrimSpace(token.Text)
		switch {
		case t == "":
		case latinRe.MatchString(t):
			// Embedded English is excluded entirely: each word cloud
			// stays single-language.
		case !containsCJK(t):
		case chineseStopWords[t]:
		case isRepetition(t):
		case runeLen(t) == 1 && !meaningfulSingleChars[t]:
		default:
			weights[t] += token.Weight
		}
	}

	for t, v := range weights {
		if runeLen(t) == 1 && v < singleCharMinCount {
			delete(weights, t)
		}
	}

	return rank(weights, opts.MaxWords)
}

func rank(counts map[string]int, maxWords int) []core.WordDatum {
	data := make([]core.WordDatum, 0, len(counts))
	for text, value := range counts {
		data = append(data, core.WordDatum{Text: text, Value: value})
	}

	sort.Slice(data, func(i, j int) bool {
		if data[i].Value != data[j].Value {
			return data[i].Value > data[j].Value
		}
		return data[i].Text < data[j].Text
	})

	if len(data) > maxWords {
		data = data[:maxWords]
	}
	return data
}

// mostlyNonLetters drops tokens where letters are the minority, which
// weeds out leftovers like "x86'''" or mixed id fragments.
func mostlyNonLetters(token string) bool {
	letters := 0
	for _, r := range token {
		if r >= 'a' && r <= 'z' {
			letters++
		}
	}
	return letters*2 < len(token)
}

// isRepetition reports whether all characters of the token are the same,
// catching filler like "哈哈哈" and "好好好".
func isRepetition(token string) bool {
	runes := []rune(token)
	if len(runes) < 2 {
		return false
	}
	for _, r := range runes[1:] {
		if r != runes[0] {
			return false
		}
	}
	return true
}

func containsCJK(token string) bool {
	for _, r := range token {
		if isCJK(r) {
			return true
		}
	}
	return false
}

func runeLen(s string) int {
	return len([]rune(s))
}
