package score

import (
	"math/rand"
	"testing"

	"github.com/daylightlab/moodquote/internal/model"
)

func TestScore_MoodKeywordMonotonicity(t *testing.T) {
	s := NewStaticScorer()
	signal := model.MoodSignal{Mood: model.MoodCalm}

	with := model.Quote{Text: "Peace comes from within.", Author: "Buddha"}
	without := model.Quote{Text: "Do or do not, there is no try.", Author: "Yoda"}

	if s.Score(with, signal) <= s.Score(without, signal) {
		t.Errorf("quote containing mood keyword must score strictly higher: %f vs %f",
			s.Score(with, signal), s.Score(without, signal))
	}
}

func TestScore_KeywordMatchesTags(t *testing.T) {
	s := NewStaticScorer()
	signal := model.MoodSignal{Mood: model.MoodCalm}

	tagged := model.Quote{Text: "Breathe.", Author: "A", Tags: []string{"tranquility"}}
	plain := model.Quote{Text: "Breathe.", Author: "A"}

	if s.Score(tagged, signal) <= s.Score(plain, signal) {
		t.Error("keyword found in a tag must raise the score")
	}
}

func TestScore_TopicTokens(t *testing.T) {
	s := NewStaticScorer()
	base := model.MoodSignal{Mood: model.MoodInspiration}
	withTopics := model.MoodSignal{Mood: model.MoodInspiration, Topics: []string{"ocean", "dream"}}

	q := model.Quote{Text: "The ocean is a dream in motion.", Author: "A"}

	diff := s.Score(q, withTopics) - s.Score(q, base)
	if diff != 2*topicTokenWeight {
		t.Errorf("expected +%f for two topic hits, got %f", 2*topicTokenWeight, diff)
	}
}

func TestScore_SadnessMismatchPenalty(t *testing.T) {
	s := NewStaticScorer()
	q := model.Quote{Text: "A happy heart makes the face cheerful.", Author: "A"}

	sad := s.Score(q, model.MoodSignal{Mood: model.MoodSadness})
	// Same quote against a mood with no penalty rule and no keyword
	// overlap isolates the penalty term.
	neutral := s.Score(q, model.MoodSignal{Mood: model.MoodAnger})

	if sad >= neutral {
		t.Errorf("expected mismatch penalty for 'happy' under sadness: %f vs %f", sad, neutral)
	}
	if neutral-sad != mismatchPenalty {
		t.Errorf("expected penalty of %f, got %f", mismatchPenalty, neutral-sad)
	}
}

func TestScore_JoyMismatchPenalty(t *testing.T) {
	s := NewStaticScorer()
	q := model.Quote{Text: "Even in sorrow there is grace.", Author: "A"}

	joy := s.Score(q, model.MoodSignal{Mood: model.MoodJoy})
	neutral := s.Score(q, model.MoodSignal{Mood: model.MoodAnger})

	if neutral-joy != mismatchPenalty {
		t.Errorf("expected penalty of %f, got %f", mismatchPenalty, neutral-joy)
	}
}

func TestScore_NoMismatchRuleForOtherMoods(t *testing.T) {
	s := NewStaticScorer()
	// "happy" under anger: no penalty rule exists for anger.
	q := model.Quote{Text: "happy", Author: "A"}
	if got := s.Score(q, model.MoodSignal{Mood: model.MoodAnger}); got != 0 {
		t.Errorf("expected 0 for anger with no matches, got %f", got)
	}
}

func TestScore_GenericTagBonusAppliedOnce(t *testing.T) {
	s := NewStaticScorer()
	signal := model.MoodSignal{Mood: model.MoodAnger}

	q := model.Quote{Text: "x", Author: "A", Tags: []string{"inspirational", "wisdom"}}
	if got := s.Score(q, signal); got != genericTagBonus {
		t.Errorf("expected single bonus %f, got %f", genericTagBonus, got)
	}
}

func TestScore_SubstringNotTokenBoundary(t *testing.T) {
	s := NewStaticScorer()
	// "sadly" contains "sad": the heuristic is plain containment.
	q := model.Quote{Text: "Sadly, time passes.", Author: "A"}
	if got := s.Score(q, model.MoodSignal{Mood: model.MoodSadness}); got != moodKeywordWeight {
		t.Errorf("expected %f for substring match, got %f", moodKeywordWeight, got)
	}
}

func TestScore_JitterBounded(t *testing.T) {
	s := NewScorer(rand.NewSource(42))
	q := model.Quote{Text: "x", Author: "A"}
	signal := model.MoodSignal{Mood: model.MoodAnger}

	for i := 0; i < 100; i++ {
		got := s.Score(q, signal)
		if got < 0 || got >= JitterMax {
			t.Fatalf("jitter out of bounds: %f", got)
		}
	}
}

func TestRank_OrdersByDescendingScore(t *testing.T) {
	s := NewStaticScorer()
	signal := model.MoodSignal{Mood: model.MoodCalm}

	pool := []model.Quote{
		{Text: "Rage against everything.", Author: "Loud"},
		{Text: "Peace and quiet and a tranquil mind.", Author: "Still", Tags: []string{"calm", "life"}},
	}

	scored := s.Rank(pool, signal)
	if scored[0].Author != "Still" {
		t.Errorf("expected calm quote first, got %s", scored[0].Author)
	}
	if scored[0].Score <= scored[1].Score {
		t.Errorf("ranking not descending: %f, %f", scored[0].Score, scored[1].Score)
	}
}

func TestRank_StableOnExactTies(t *testing.T) {
	s := NewStaticScorer()
	signal := model.MoodSignal{Mood: model.MoodAnger}

	pool := []model.Quote{
		{Text: "alpha", Author: "First"},
		{Text: "beta", Author: "Second"},
		{Text: "gamma", Author: "Third"},
	}

	scored := s.Rank(pool, signal)
	for i, want := range []string{"First", "Second", "Third"} {
		if scored[i].Author != want {
			t.Errorf("position %d: expected %s, got %s", i, want, scored[i].Author)
		}
	}
}

func TestSelect_EmptyPool(t *testing.T) {
	if got := Select(nil); got != nil {
		t.Errorf("expected explicit absence for empty pool, got %v", got)
	}
	if got := Select([]model.ScoredQuote{}); got != nil {
		t.Errorf("expected explicit absence for empty slice, got %v", got)
	}
}

func TestSelect_ReturnsTop(t *testing.T) {
	scored := []model.ScoredQuote{
		{Quote: model.Quote{Text: "best", Author: "A"}, Score: 5},
		{Quote: model.Quote{Text: "rest", Author: "B"}, Score: 1},
	}
	got := Select(scored)
	if got == nil || got.Text != "best" {
		t.Errorf("expected top candidate, got %v", got)
	}
}
