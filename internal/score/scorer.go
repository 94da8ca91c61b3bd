package score

import (
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/daylightlab/moodquote/internal/model"
	"github.com/daylightlab/moodquote/internal/mood"
)

// Scoring weights. Matching is plain substring containment,
// case-insensitive, not token-boundary-aware ("sadly" contains "sad").
// A cheap heuristic, not NLP.
const (
	moodKeywordWeight = 2.0
	topicTokenWeight  = 1.5
	mismatchPenalty   = 0.8
	genericTagBonus   = 1.0
	// JitterMax bounds the random score addition used to diversify
	// near-tied rankings.
	JitterMax = 0.3
)

// genericBonusTags mark an inspirational/wisdom style quote.
var genericBonusTags = []string{"inspir", "wisdom", "happi", "life"}

// Mismatch word lists. Only sadness and joy carry a penalty rule; the
// other nine moods deliberately have none.
var (
	sadnessMismatches = []string{"joy", "happy", "smile", "delight"}
	joyMismatches     = []string{"sad", "sorrow", "grief", "lonely"}
)

// Scorer computes relevance scores for quote candidates against a mood
// signal. The jitter source is injected so tests can use a fixed seed
// or disable jitter entirely.
type Scorer struct {
	mu        sync.Mutex
	rng       *rand.Rand
	jitterMax float64
}

// NewScorer creates a scorer with jitter drawn from the given source.
// A nil source falls back to a time-seeded one.
func NewScorer(src rand.Source) *Scorer {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Scorer{
		rng:       rand.New(src),
		jitterMax: JitterMax,
	}
}

// NewStaticScorer creates a scorer with jitter disabled, making the
// score a pure function of quote and signal.
func NewStaticScorer() *Scorer {
	return &Scorer{jitterMax: 0}
}

// Score computes the relevance score of one quote. Rules are additive:
// +2.0 per mood keyword found in text or tags, +1.5 per topic token
// found in text, -0.8 for a sentiment mismatch, +1.0 for a generic
// inspirational tag, plus jitter in [0, JitterMax).
func (s *Scorer) Score(q model.Quote, signal model.MoodSignal) float64 {
	text := strings.ToLower(q.Text)
	tags := make([]string, len(q.Tags))
	for i, t := range q.Tags {
		tags[i] = strings.ToLower(t)
	}

	var score float64

	for _, kw := range mood.Keywords(signal.Mood) {
		if strings.Contains(text, kw) || anyContains(tags, kw) {
			score += moodKeywordWeight
		}
	}

	for _, tk := range signal.Topics {
		if tk != "" && strings.Contains(text, tk) {
			score += topicTokenWeight
		}
	}

	switch signal.Mood {
	case model.MoodSadness:
		if containsAny(text, sadnessMismatches) {
			score -= mismatchPenalty
		}
	case model.MoodJoy:
		if containsAny(text, joyMismatches) {
			score -= mismatchPenalty
		}
	}

	for _, tag := range tags {
		if containsAny(tag, genericBonusTags) {
			score += genericTagBonus
			break
		}
	}

	return score + s.jitter()
}

// Rank scores every quote in the pool and orders it by descending
// score. The sort is stable: exact ties keep their first-seen order.
func (s *Scorer) Rank(pool []model.Quote, signal model.MoodSignal) []model.ScoredQuote {
	scored := make([]model.ScoredQuote, len(pool))
	for i, q := range pool {
		scored[i] = model.ScoredQuote{Quote: q, Score: s.Score(q, signal)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Select returns the top-ranked candidate, or nil when the pool is
// empty. Callers must treat nil as an explicit absence, distinct from
// any quote with empty text.
func Select(scored []model.ScoredQuote) *model.ScoredQuote {
	if len(scored) == 0 {
		return nil
	}
	top := scored[0]
	return &top
}

func (s *Scorer) jitter() float64 {
	if s.jitterMax == 0 || s.rng == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() * s.jitterMax
}

// anyContains reports whether any element of list contains sub.
func anyContains(list []string, sub string) bool {
	for _, v := range list {
		if strings.Contains(v, sub) {
			return true
		}
	}
	return false
}

// containsAny reports whether text contains any of the given substrings.
func containsAny(text string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(text, sub) {
			return true
		}
	}
	return false
}
