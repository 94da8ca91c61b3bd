package mood

import (
	"testing"

	"github.com/daylightlab/moodquote/internal/model"
)

func TestClassify_FirstMatcherPerCategory(t *testing.T) {
	for _, r := range rules {
		got := Classify(r.matchers[0])
		if got != r.mood {
			t.Errorf("Classify(%q) = %s, want %s", r.matchers[0], got, r.mood)
		}
	}
}

func TestClassify_Default(t *testing.T) {
	inputs := []string{"", "hello world", "오늘 날씨", "12345"}
	for _, in := range inputs {
		if got := Classify(in); got != model.MoodInspiration {
			t.Errorf("Classify(%q) = %s, want %s", in, got, model.MoodInspiration)
		}
	}
}

func TestClassify_Normalization(t *testing.T) {
	// Whitespace inside the input must not defeat substring matching.
	if got := Classify("  슬 프 다  "); got != model.MoodSadness {
		t.Errorf("expected sadness for whitespace-split matcher, got %s", got)
	}
}

func TestClassify_RuleOrderTieBreak(t *testing.T) {
	// Input containing matchers from two categories resolves to the
	// earlier rule.
	if got := Classify("슬프지만 행복해"); got != model.MoodSadness {
		t.Errorf("expected sadness to win over joy, got %s", got)
	}
	if got := Classify("행복하고 불안해"); got != model.MoodJoy {
		t.Errorf("expected joy to win over anxiety, got %s", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Hello World  ", "helloworld"},
		{"슬픔\t과 눈물", "슬픔과눈물"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTables_CoverAllMoods(t *testing.T) {
	for _, mood := range model.AllMoods {
		kws := Keywords(mood)
		if len(kws) < 3 || len(kws) > 5 {
			t.Errorf("mood %s: expected 3-5 sentiment keywords, got %d", mood, len(kws))
		}
		if len(RelatedTags(mood)) == 0 {
			t.Errorf("mood %s: expected related tags", mood)
		}
		if len(ImageQueries(mood)) == 0 {
			t.Errorf("mood %s: expected image queries", mood)
		}
	}
}

func TestImageQueries_UnknownFallsBack(t *testing.T) {
	got := ImageQueries(model.MoodCategory("nonsense"))
	want := ImageQueries(model.MoodInspiration)
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("expected default image queries for unknown mood, got %v", got)
	}
}
