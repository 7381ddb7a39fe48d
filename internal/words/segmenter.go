package words

import (
	"skylens/internal/core"

	"github.com/go-ego/gse"
	"github.com/samber/lo"
)

// DictSegmenter segments CJK text with the gse dictionary segmenter.
// This is the primary strategy.
type DictSegmenter struct {
	seg gse.Segmenter
}

func NewDictSegmenter() (*DictSegmenter, error) {
	d := &DictSegmenter{}
	if err := d.seg.LoadDict(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *DictSegmenter) Segment(text string) []core.SegmentedToken {
	return lo.Map(d.seg.Cut(text, true), func(t string, _ int) core.SegmentedToken {
		return core.SegmentedToken{Text: t, Weight: 1}
	})
}

// NGramSegmenter is the fallback for environments where the dictionary
// cannot be loaded. It slides windows of MinN..MaxN over contiguous CJK
// runs, weighting longer spans higher. It deliberately over-generates and
// relies on the downstream filters to suppress noise.
type NGramSegmenter struct {
	MinN int
	MaxN int
}

func NewNGramSegmenter(minN int) NGramSegmenter {
	if minN < 2 || minN > 4 {
		minN = 2
	}
	return NGramSegmenter{MinN: minN, MaxN: 4}
}

func (s NGramSegmenter) Segment(text string) []core.SegmentedToken {
	var tokens []core.SegmentedToken

	for _, run := range cjkRuns(text) {
		for n := s.MinN; n <= s.MaxN; n++ {
			for i := 0; i+n <= len(run); i++ {
				tokens = append(tokens, core.SegmentedToken{
					Text:   string(run[i : i+n]),
					Weight: n,
				})
			}
		}
	}

	return tokens
}

// cjkRuns extracts maximal runs of contiguous CJK characters.
func cjkRuns(text string) [][]rune {
	var runs [][]rune
	var current []rune

	for _, r := range text {
		if isCJK(r) {
			current = append(current, r)
			continue
		}
		if len(current) > 0 {
			runs = append(runs, current)
			current = nil
		}
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}

	return runs
}

func isCJK(r rune) bool {
	return r >= 0x4e00 && r <= 0x9fff
}
