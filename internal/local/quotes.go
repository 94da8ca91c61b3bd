package local

import (
	"math/rand"
	"strings"
	"time"

	"github.com/daylightlab/moodquote/internal/model"
	"github.com/daylightlab/moodquote/internal/mood"
)

// quotes is the bundled fallback list consulted when every live
// provider fails. Tags use the mood category vocabulary plus the
// related-tag vocabulary so the broadening step has something to match.
var quotes = []model.Quote{
	{Text: "This too shall pass.", Author: "Persian proverb", Tags: []string{"sadness", "healing", "hope"}, Source: "local"},
	{Text: "Tears are words the heart cannot say.", Author: "Gérard de Nerval", Tags: []string{"sadness", "inner"}, Source: "local"},
	{Text: "Happiness is not something ready made. It comes from your own actions.", Author: "Dalai Lama", Tags: []string{"joy", "light"}, Source: "local"},
	{Text: "Joy is the simplest form of gratitude.", Author: "Karl Barth", Tags: []string{"joy", "gratitude"}, Source: "local"},
	{Text: "Worry does not empty tomorrow of its sorrow.", Author: "Corrie ten Boom", Tags: []string{"anxiety", "courage"}, Source: "local"},
	{Text: "You don't have to control your thoughts. You just have to stop letting them control you.", Author: "Dan Millman", Tags: []string{"anxiety", "calm"}, Source: "local"},
	{Text: "For every minute you remain angry, you give up sixty seconds of peace of mind.", Author: "Ralph Waldo Emerson", Tags: []string{"anger", "understanding", "calm"}, Source: "local"},
	{Text: "Peace comes from within. Do not seek it without.", Author: "Buddha", Tags: []string{"calm", "meditation", "reflection"}, Source: "local"},
	{Text: "Nature does not hurry, yet everything is accomplished.", Author: "Lao Tzu", Tags: []string{"calm", "rest"}, Source: "local"},
	{Text: "Where there is love there is life.", Author: "Mahatma Gandhi", Tags: []string{"love", "connection"}, Source: "local"},
	{Text: "We are most alive when we are in love.", Author: "John Updike", Tags: []string{"love", "light"}, Source: "local"},
	{Text: "Hope is being able to see that there is light despite all of the darkness.", Author: "Desmond Tutu", Tags: []string{"hope", "light", "courage"}, Source: "local"},
	{Text: "Everything that is done in this world is done by hope.", Author: "Martin Luther", Tags: []string{"hope", "recovery"}, Source: "local"},
	{Text: "It does not matter how slowly you go as long as you do not stop.", Author: "Confucius", Tags: []string{"growth", "consistency", "patience"}, Source: "local"},
	{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs", Tags: []string{"growth", "inspiration"}, Source: "local"},
	{Text: "Gratitude turns what we have into enough.", Author: "Melody Beattie", Tags: []string{"gratitude", "fullness"}, Source: "local"},
	{Text: "Creativity is intelligence having fun.", Author: "Albert Einstein", Tags: []string{"creativity", "ideas"}, Source: "local"},
	{Text: "You can't use up creativity. The more you use, the more you have.", Author: "Maya Angelou", Tags: []string{"creativity", "inspiration"}, Source: "local"},
	{Text: "The best way to predict the future is to create it.", Author: "Peter Drucker", Tags: []string{"inspiration", "creativity", "hope"}, Source: "local"},
	{Text: "Act as if what you do makes a difference. It does.", Author: "William James", Tags: []string{"inspiration", "growth"}, Source: "local"},
}

// Store picks fallback quotes from the bundled list.
type Store struct {
	quotes []model.Quote
	pick   func(n int) int
}

// NewStore creates a store over the bundled list.
func NewStore() *Store {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Store{quotes: quotes, pick: rng.Intn}
}

// Pick returns a random quote matching the mood. The pool is built by
// tag filtering; if fewer than three quotes match directly, it is
// broadened with the mood's related tags, and if still empty the whole
// list is used. Returns nil only when the list itself is empty.
func (s *Store) Pick(m model.MoodCategory) *model.Quote {
	if len(s.quotes) == 0 {
		return nil
	}

	pool := filterByTag(s.quotes, string(m))

	if len(pool) < 3 {
		for _, related := range mood.RelatedTags(m) {
			for _, q := range filterByTag(s.quotes, related) {
				if !containsQuote(pool, q) {
					pool = append(pool, q)
				}
			}
		}
	}
	if len(pool) == 0 {
		pool = s.quotes
	}

	q := pool[s.pick(len(pool))]
	return &q
}

// filterByTag keeps quotes with any tag containing the target as a
// substring, matching the scorer's containment heuristic.
func filterByTag(pool []model.Quote, tag string) []model.Quote {
	var out []model.Quote
	for _, q := range pool {
		for _, t := range q.Tags {
			if strings.Contains(strings.ToLower(t), strings.ToLower(tag)) {
				out = append(out, q)
				break
			}
		}
	}
	return out
}

func containsQuote(pool []model.Quote, q model.Quote) bool {
	for _, p := range pool {
		if p.Key() == q.Key() {
			return true
		}
	}
	return false
}
