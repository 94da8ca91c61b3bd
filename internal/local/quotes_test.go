package local

import (
	"strings"
	"testing"

	"github.com/daylightlab/moodquote/internal/model"
)

func TestPick_DirectTagMatch(t *testing.T) {
	s := NewStore()
	s.pick = func(n int) int { return 0 }

	q := s.Pick(model.MoodCalm)
	if q == nil {
		t.Fatal("expected a quote")
	}

	found := false
	for _, tag := range q.Tags {
		if strings.Contains(tag, "calm") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a calm-tagged quote, got tags %v", q.Tags)
	}
}

func TestPick_BroadensSmallPool(t *testing.T) {
	// Two gratitude quotes exist at most, which is under the
	// broadening threshold; related tags (fullness, calm) must widen
	// the pool rather than leaving it as-is.
	s := NewStore()

	seen := map[string]bool{}
	for i := 0; i < len(s.quotes); i++ {
		s.pick = func(n int) int { return i % n }
		if q := s.Pick(model.MoodGratitude); q != nil {
			seen[q.Author] = true
		}
	}

	direct := len(filterByTag(s.quotes, "gratitude"))
	if len(seen) <= direct {
		t.Errorf("expected broadened pool larger than %d direct matches, saw %d distinct quotes", direct, len(seen))
	}
}

func TestPick_UnmatchedMoodUsesWholeList(t *testing.T) {
	s := &Store{
		quotes: []model.Quote{{Text: "only one", Author: "A", Tags: []string{"nothing-related"}}},
		pick:   func(n int) int { return 0 },
	}

	if q := s.Pick(model.MoodAnger); q == nil || q.Text != "only one" {
		t.Errorf("expected whole-list fallback, got %v", q)
	}
}

func TestPick_EmptyList(t *testing.T) {
	s := &Store{pick: func(n int) int { return 0 }}
	if q := s.Pick(model.MoodJoy); q != nil {
		t.Errorf("expected nil for empty list, got %v", q)
	}
}

func TestBundledQuotes_AllValid(t *testing.T) {
	for _, q := range quotes {
		if q.Text == "" || q.Author == "" {
			t.Errorf("bundled quote missing text or author: %+v", q)
		}
		if q.Source != "local" {
			t.Errorf("bundled quote missing local source: %+v", q)
		}
	}
}
