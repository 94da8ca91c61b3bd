package engine

import (
	"context"
	"strings"

	"github.com/daylightlab/moodquote/internal/model"
	"github.com/daylightlab/moodquote/internal/mood"
	"github.com/daylightlab/moodquote/internal/score"
)

// maxTopics caps the topic tokens carried into scoring per request.
const maxTopics = 6

// Aggregator supplies the merged candidate pool for one cycle.
type Aggregator interface {
	Aggregate(ctx context.Context) []model.Quote
}

// Translator renders text in the target language. Implementations are
// total: they return usable text on every call.
type Translator interface {
	Translate(ctx context.Context, text string) string
	TranslateBatch(ctx context.Context, texts []string) []string
}

// Engine orchestrates one selection cycle: classify, aggregate,
// dedupe, score, select, translate. All state is request-scoped; the
// engine itself is safe for concurrent use.
type Engine struct {
	aggregator Aggregator
	scorer     *score.Scorer
	translator Translator
}

// New creates an engine from its collaborators.
func New(aggregator Aggregator, scorer *score.Scorer, translator Translator) *Engine {
	return &Engine{
		aggregator: aggregator,
		scorer:     scorer,
		translator: translator,
	}
}

// BuildSignal derives the scoring signal for a request. An override
// mood from the extraction collaborator takes precedence over the
// substring classifier; topics are lower-cased and capped.
func (e *Engine) BuildSignal(input string, overrideMood model.MoodCategory, topics []string) model.MoodSignal {
	m := mood.Classify(input)
	if overrideMood != "" && overrideMood.IsValid() {
		m = overrideMood
	}
	return model.MoodSignal{Mood: m, Topics: normalizeTopics(topics)}
}

// SelectQuote runs the full pipeline and returns the best candidate
// rendered in the target language. A nil result with nil error is the
// explicit empty outcome: the aggregate pool had no usable candidate.
// The caller decides on any downstream fallback.
func (e *Engine) SelectQuote(ctx context.Context, input string, overrideMood model.MoodCategory, topics []string) (*model.SelectionResult, error) {
	signal := e.BuildSignal(input, overrideMood, topics)

	pool := Dedupe(e.aggregator.Aggregate(ctx))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	best := score.Select(e.scorer.Rank(pool, signal))
	if best == nil {
		return nil, nil
	}

	return &model.SelectionResult{
		Text:         e.translator.Translate(ctx, best.Text),
		TextOriginal: best.Text,
		Author:       best.Author,
		Tags:         best.Tags,
		Source:       best.Source,
	}, nil
}

// SelectTop runs the same pipeline but returns up to n candidates,
// bulk pre-translated with the batch variant. Entries the batch call
// could not cover keep their original text.
func (e *Engine) SelectTop(ctx context.Context, input string, overrideMood model.MoodCategory, topics []string, n int) ([]model.SelectionResult, error) {
	if n <= 0 {
		n = 1
	}
	signal := e.BuildSignal(input, overrideMood, topics)

	pool := Dedupe(e.aggregator.Aggregate(ctx))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scored := e.scorer.Rank(pool, signal)
	if len(scored) == 0 {
		return nil, nil
	}
	if len(scored) > n {
		scored = scored[:n]
	}

	texts := make([]string, len(scored))
	for i, sq := range scored {
		texts[i] = sq.Text
	}
	translated := e.translator.TranslateBatch(ctx, texts)

	results := make([]model.SelectionResult, len(scored))
	for i, sq := range scored {
		results[i] = model.SelectionResult{
			Text:         translated[i],
			TextOriginal: sq.Text,
			Author:       sq.Author,
			Tags:         sq.Tags,
			Source:       sq.Source,
		}
	}
	return results, nil
}

// normalizeTopics lower-cases, trims and caps the topic tokens.
func normalizeTopics(topics []string) []string {
	out := make([]string, 0, maxTopics)
	for _, t := range topics {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		out = append(out, t)
		if len(out) == maxTopics {
			break
		}
	}
	return out
}
