package model

// MoodCategory is one of the eleven fixed emotional labels that drive
// keyword and topic matching. The set is closed: the classifier always
// returns one of these values, defaulting to MoodInspiration.
type MoodCategory string

const (
	MoodSadness     MoodCategory = "sadness"
	MoodJoy         MoodCategory = "joy"
	MoodAnxiety     MoodCategory = "anxiety"
	MoodAnger       MoodCategory = "anger"
	MoodCalm        MoodCategory = "calm"
	MoodLove        MoodCategory = "love"
	MoodHope        MoodCategory = "hope"
	MoodGrowth      MoodCategory = "growth"
	MoodGratitude   MoodCategory = "gratitude"
	MoodCreativity  MoodCategory = "creativity"
	MoodInspiration MoodCategory = "inspiration"
)

// AllMoods lists every category in classifier rule order, with the
// default category last.
var AllMoods = []MoodCategory{
	MoodSadness,
	MoodJoy,
	MoodAnxiety,
	MoodAnger,
	MoodCalm,
	MoodLove,
	MoodHope,
	MoodGrowth,
	MoodGratitude,
	MoodCreativity,
	MoodInspiration,
}

// IsValid reports whether m is a member of the closed category set.
func (m MoodCategory) IsValid() bool {
	for _, mood := range AllMoods {
		if m == mood {
			return true
		}
	}
	return false
}

// ParseMood maps a raw label onto the closed category set. Anything
// outside the set collapses to MoodInspiration.
func ParseMood(label string) MoodCategory {
	m := MoodCategory(label)
	if m.IsValid() {
		return m
	}
	return MoodInspiration
}
