package mood

import "github.com/daylightlab/moodquote/internal/model"

// Static keyword tables. All three are initialized once and never
// mutated, so concurrent reads need no synchronization.

// sentimentKeywords maps each category to the English sentiment
// keywords the scorer matches against quote text and tags.
var sentimentKeywords = map[model.MoodCategory][]string{
	model.MoodSadness:     {"sad", "sorrow", "grief", "melancholy", "lonely"},
	model.MoodJoy:         {"joy", "happiness", "delight", "cheer", "smile"},
	model.MoodAnxiety:     {"anxiety", "uneasy", "worry", "fear", "nervous"},
	model.MoodAnger:       {"anger", "rage", "fury", "wrath"},
	model.MoodCalm:        {"calm", "peace", "serene", "quiet", "tranquil"},
	model.MoodLove:        {"love", "affection", "beloved", "romance"},
	model.MoodHope:        {"hope", "optimism", "light", "future"},
	model.MoodGrowth:      {"growth", "persevere", "learn", "progress"},
	model.MoodGratitude:   {"gratitude", "thankful", "appreciation"},
	model.MoodCreativity:  {"creative", "imagination", "inspire", "invent"},
	model.MoodInspiration: {"inspiration", "insight", "spark"},
}

// relatedTags maps each category to adjacent tags used to broaden a
// too-small local pool before giving up on mood filtering entirely.
var relatedTags = map[model.MoodCategory][]string{
	model.MoodSadness:     {"healing", "hope", "calm", "inner"},
	model.MoodJoy:         {"hope", "love", "light"},
	model.MoodAnxiety:     {"courage", "hope", "calm"},
	model.MoodAnger:       {"understanding", "calm", "courage"},
	model.MoodCalm:        {"meditation", "rest", "reflection"},
	model.MoodLove:        {"connection", "longing", "light"},
	model.MoodHope:        {"courage", "recovery", "light"},
	model.MoodGrowth:      {"consistency", "patience", "recovery"},
	model.MoodGratitude:   {"fullness", "calm"},
	model.MoodCreativity:  {"inspiration", "ideas"},
	model.MoodInspiration: {"creativity", "hope", "growth", "calm", "light"},
}

// imageQueries maps each category to search query candidates for the
// background image collaborator.
var imageQueries = map[model.MoodCategory][]string{
	model.MoodSadness:     {"moody sky", "rain night", "misty forest", "lonely road", "blue ocean", "noir city"},
	model.MoodJoy:         {"sunrise", "golden hour", "colorful aurora", "spring blossoms", "bokeh lights", "rainbow"},
	model.MoodAnxiety:     {"storm clouds", "night city neon", "foggy", "abstract shadows", "waves at night", "eerie"},
	model.MoodAnger:       {"thunderstorm", "volcanic", "crimson sky", "wild ocean"},
	model.MoodCalm:        {"calm ocean", "aurora borealis", "quiet lake", "milky way", "zen garden", "soft mist"},
	model.MoodLove:        {"romantic sky", "soft pastel clouds", "stardust", "warm sunset", "pink aurora", "tender"},
	model.MoodHope:        {"dawn light", "rising sun", "starry sky", "northern lights", "new beginnings", "light rays"},
	model.MoodGrowth:      {"mountain path", "forest trail light", "sprout macro", "climb", "dreamy hills", "steps"},
	model.MoodGratitude:   {"golden field", "warm light", "harvest", "sunbeam"},
	model.MoodCreativity:  {"surreal", "dreamscape", "ethereal", "nebula", "cosmic art"},
	model.MoodInspiration: {"dreamy", "space nebula", "galaxy", "cosmic", "ocean night", "aurora"},
}

// Keywords returns the English sentiment keywords for a category.
func Keywords(mood model.MoodCategory) []string {
	return sentimentKeywords[mood]
}

// RelatedTags returns the broadening tags for a category.
func RelatedTags(mood model.MoodCategory) []string {
	return relatedTags[mood]
}

// ImageQueries returns the image search query candidates for a
// category, falling back to the default category's candidates.
func ImageQueries(mood model.MoodCategory) []string {
	if q, ok := imageQueries[mood]; ok {
		return q
	}
	return imageQueries[model.MoodInspiration]
}
