package mood

import (
	"strings"
	"unicode"

	"github.com/daylightlab/moodquote/internal/model"
)

// rule pairs a category with the substrings that trigger it.
type rule struct {
	mood     model.MoodCategory
	matchers []string
}

// rules is evaluated in order; the first matching rule wins. Matcher
// substrings overlap across categories, so the order is a tie-break and
// must be preserved.
var rules = []rule{
	{model.MoodSadness, []string{"슬프", "우울", "힘들", "눈물", "외롭", "쓸쓸", "허무", "상실"}},
	{model.MoodJoy, []string{"기쁨", "기뻐", "행복", "설렘", "신남", "즐거움", "환희"}},
	{model.MoodAnxiety, []string{"불안", "초조", "걱정", "두려움", "공포", "긴장"}},
	{model.MoodAnger, []string{"분노", "화남", "짜증", "억울", "격앙"}},
	{model.MoodCalm, []string{"평온", "고요", "차분", "안정", "명상", "휴식", "평화"}},
	{model.MoodLove, []string{"사랑", "연애", "그리움", "연결", "마음", "사무침"}},
	{model.MoodHope, []string{"희망", "용기", "도전", "의지", "미래", "빛", "긍정"}},
	{model.MoodGrowth, []string{"성장", "꾸준", "인내", "노력", "발전", "학습", "습관"}},
	{model.MoodGratitude, []string{"감사", "고마움", "충만", "은혜"}},
	{model.MoodCreativity, []string{"창의", "영감", "아이디어", "상상", "창조"}},
}

// Normalize trims, lower-cases and strips all whitespace from input.
func Normalize(input string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Classify maps free-form input text onto one of the closed mood
// categories. Unmatched input defaults to MoodInspiration.
func Classify(input string) model.MoodCategory {
	t := Normalize(input)
	for _, r := range rules {
		for _, m := range r.matchers {
			if strings.Contains(t, m) {
				return r.mood
			}
		}
	}
	return model.MoodInspiration
}

// FirstMatcher returns the first-listed matcher substring for a
// category, or "" for the default category which has no rule.
func FirstMatcher(mood model.MoodCategory) string {
	for _, r := range rules {
		if r.mood == mood {
			return r.matchers[0]
		}
	}
	return ""
}
