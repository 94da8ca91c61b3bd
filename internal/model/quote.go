package model

import "strings"

// Quote is a normalized candidate produced by a provider adapter.
// Text and Author together form the dedup identity (case-insensitive).
type Quote struct {
	Text   string   `json:"text"`             // Original (English) quote text
	Author string   `json:"author"`           // Attributed author
	Tags   []string `json:"tags,omitempty"`   // Provider-supplied tags, may be empty
	Source string   `json:"source,omitempty"` // Identity of the provider adapter
}

// Key returns the case-insensitive dedup key for the quote.
func (q Quote) Key() string {
	return strings.ToLower(q.Text) + "::" + strings.ToLower(q.Author)
}

// ScoredQuote pairs a quote with its relevance score. It exists only
// for the duration of one selection cycle and is never persisted.
type ScoredQuote struct {
	Quote
	Score float64 `json:"score"`
}

// MoodSignal is the scoring input built per request from the classifier
// output and the optional extractor override.
type MoodSignal struct {
	Mood   MoodCategory `json:"mood"`
	Topics []string     `json:"topics,omitempty"` // Lower-cased topic tokens, at most 6
}

// SelectionResult is the terminal artifact of one engine invocation.
type SelectionResult struct {
	Text         string   `json:"text"`          // Translated text, or the original on pass-through
	TextOriginal string   `json:"text_original"` // Untranslated provider text
	Author       string   `json:"author"`
	Tags         []string `json:"tags,omitempty"`
	Source       string   `json:"source,omitempty"`
}
