package engine

import "github.com/daylightlab/moodquote/internal/model"

// Dedupe removes case-insensitive (text, author) duplicates from the
// pool. The first occurrence of each key is kept; output order matches
// first-seen order in the input.
func Dedupe(pool []model.Quote) []model.Quote {
	seen := make(map[string]bool, len(pool))
	out := make([]model.Quote, 0, len(pool))
	for _, q := range pool {
		key := q.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, q)
	}
	return out
}
