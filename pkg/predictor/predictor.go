// Package predictor ranks dictionary candidates against a swiped gesture
// path and returns the most likely intended words.
package predictor

import (
	"container/heap"
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/swypelab/swyft/pkg/dictionary"
	"github.com/swypelab/swyft/pkg/dtw"
	"github.com/swypelab/swyft/pkg/keyboard"
	"github.com/swypelab/swyft/pkg/path"
)

// ErrUnknownLanguage is returned by New when no asset is embedded for the
// requested language code.
var ErrUnknownLanguage = dictionary.ErrUnknownLanguage

// Prediction is a single ranked candidate word.
type Prediction struct {
	Word  string
	Score float64
	Freq  float64
}

// Predictor answers Predict calls against one language's dictionary asset.
// Everything it holds is built once at New and never mutated afterward, so
// a *Predictor may be shared across goroutines without additional locking.
type Predictor struct {
	asset     *dictionary.Asset
	layout    keyboard.Layout
	trie      *patricia.Trie // word -> index into asset.Entries, for first-letter filtering
	cfg       Config
	maxPopLog float64 // log(1+frequency) of the most frequent entry, a safe pruning upper bound
}

// New constructs a Predictor for the given language code using cfg, or
// DefaultConfig if cfg is nil.
func New(languageCode string, cfg *Config) (*Predictor, error) {
	asset, err := dictionary.Load(languageCode)
	if err != nil {
		if errors.Is(err, dictionary.ErrUnknownLanguage) {
			return nil, ErrUnknownLanguage
		}
		return nil, err
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	trie := patricia.NewTrie()
	maxFreq := uint32(0)
	for i, e := range asset.Entries {
		trie.Insert(patricia.Prefix(e.Word), i)
		if e.Frequency > maxFreq {
			maxFreq = e.Frequency
		}
	}

	return &Predictor{
		asset:     asset,
		layout:    keyboard.QWERTY(),
		trie:      trie,
		cfg:       *cfg,
		maxPopLog: math.Log(1 + float64(maxFreq)),
	}, nil
}

// Predict returns up to k ranked predictions for a swipe trace. Casing is
// ignored and anything other than an ASCII letter is dropped first. An empty
// or entirely unrecognized trace yields an empty list rather than an error. A
// single recognized letter is returned verbatim with score 0.
func (p *Predictor) Predict(input string, k int) []Prediction {
	input = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, strings.ToLower(input))
	if input == "" || k <= 0 {
		return nil
	}

	runes := []rune(input)
	if len(runes) == 1 {
		if _, ok := p.layout.PointFor(runes[0]); ok {
			freq := 0.0
			if item := p.trie.Get(patricia.Prefix(input)); item != nil {
				freq = displayLogFreq(p.asset.Entries[item.(int)].Frequency)
			}
			return []Prediction{{Word: string(runes[0]), Score: 0, Freq: freq}}
		}
		return nil
	}

	inputPath := path.Build(input, p.layout)
	if len(inputPath) == 0 {
		return nil
	}

	firstChar := runes[0]
	lastChar := runes[len(runes)-1]
	lastPt, haveLastPt := p.layout.PointFor(lastChar)

	indices := p.candidateIndices(firstChar)

	h := &candidateHeap{}
	var seq uint64

	consider := func(idx int) {
		e := p.asset.Entries[idx]
		entryPath := toPathPoints(e.Path)
		if lengthSkewExceeds(len(inputPath), len(entryPath), p.cfg.LengthSkewMax) {
			return
		}

		penalty := 0.0
		wordRunes := []rune(e.Word)
		lastWordChar := wordRunes[len(wordRunes)-1]
		if lastWordChar != lastChar {
			if wp, ok := p.layout.PointFor(lastWordChar); ok && haveLastPt {
				penalty = euclidean(lastPt, wp) * p.cfg.LastCharPenalty
			} else {
				penalty = 50.0
			}
		}

		// ceiling bounds raw DTW distance: any entry scoring at most
		// worstAllowed must have dist+penalty-weight*popLogFreq <= worstAllowed,
		// and weight*popLogFreq <= weight*maxPopLog for every entry, so
		// dist > worstAllowed+weight*maxPopLog-penalty can be pruned safely.
		ceiling := math.Inf(1)
		if h.Len() >= k {
			ceiling = (*h)[0].score + p.cfg.PopularityWeight*p.maxPopLog - penalty
		}

		band := bandWidth(len(inputPath), len(entryPath), p.cfg.BandDivisor)
		dist := dtw.Distance(inputPath, entryPath, band, ceiling)
		if math.IsInf(dist, 1) {
			return
		}

		score := dist + penalty - p.cfg.PopularityWeight*popularityLogFreq(e.Frequency)

		c := candidate{word: e.Word, score: score, freq: e.Frequency, seq: seq}
		seq++

		if h.Len() < k {
			heap.Push(h, c)
			return
		}
		if c.score < (*h)[0].score {
			heap.Pop(h)
			heap.Push(h, c)
		}
	}

	if indices != nil {
		for _, idx := range indices {
			consider(idx)
		}
	} else {
		for idx := range p.asset.Entries {
			consider(idx)
		}
	}

	out := make([]Prediction, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		c := heap.Pop(h).(candidate)
		out[i] = Prediction{Word: c.word, Score: c.score, Freq: displayLogFreq(c.freq)}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		if out[i].Freq != out[j].Freq {
			return out[i].Freq > out[j].Freq
		}
		return out[i].Word < out[j].Word
	})

	return out
}

// candidateIndices returns the asset indices of words whose first letter is
// ch, using the patricia trie, or nil if first-letter filtering is
// disabled.
func (p *Predictor) candidateIndices(ch rune) []int {
	if !p.cfg.FirstCharStrict {
		return nil
	}
	idxs := []int{}
	_ = p.trie.VisitSubtree(patricia.Prefix(string(ch)), func(_ patricia.Prefix, item patricia.Item) error {
		idxs = append(idxs, item.(int))
		return nil
	})
	return idxs
}

// lengthSkewExceeds reports whether two path lengths differ by more than a
// factor of max, comparing simplified path lengths rather than letter
// counts (the asset itself is sorted by letter count).
func lengthSkewExceeds(n, m int, max float64) bool {
	if n == 0 || m == 0 {
		return true
	}
	long, short := float64(n), float64(m)
	if short > long {
		long, short = short, long
	}
	return long/short > max
}

// bandWidth picks the Sakoe-Chiba half-width for a pair of paths: the
// shorter path's length divided by the configured divisor, floored at 2.
func bandWidth(n, m, divisor int) int {
	short := n
	if m < short {
		short = m
	}
	if divisor < 1 {
		divisor = 1
	}
	w := short / divisor
	if w < 2 {
		w = 2
	}
	return w
}

// popularityLogFreq is log(1+frequency), the popularity term the combined
// score subtracts (weighted) from raw DTW distance.
func popularityLogFreq(freq uint32) float64 {
	return math.Log(1 + float64(freq))
}

// displayLogFreq is the plain log frequency exposed on Prediction.Freq for
// debugging/UI, 0 for an unknown or zero-frequency entry.
func displayLogFreq(freq uint32) float64 {
	if freq == 0 {
		return 0
	}
	return math.Log(float64(freq))
}

func toPathPoints(pts []dictionary.Point) path.Path {
	out := make(path.Path, len(pts))
	for i, p := range pts {
		out[i] = keyboard.Point{X: p.X, Y: p.Y}
	}
	return out
}

func euclidean(a, b keyboard.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
