package provider

import (
	"context"

	"github.com/daylightlab/moodquote/internal/model"
	"github.com/daylightlab/moodquote/internal/worker"
)

// Aggregator fans out one fetch per provider, joins all of them and
// merges the successful contributions. A provider that fails only
// loses its own contribution; it can never abort the aggregation.
type Aggregator struct {
	providers []Provider
}

// NewAggregator creates an aggregator over the given providers.
func NewAggregator(providers ...Provider) *Aggregator {
	return &Aggregator{providers: providers}
}

// fetchJob runs one provider fetch. It carries the request context so
// cancellation from the caller propagates into the HTTP call.
type fetchJob struct {
	ctx      context.Context
	index    int
	provider Provider
}

func (j *fetchJob) Execute(_ context.Context) worker.Result {
	quotes, err := j.provider.Fetch(j.ctx)
	return &fetchResult{index: j.index, quotes: quotes, err: err}
}

type fetchResult struct {
	index  int
	quotes []model.Quote
	err    error
}

func (r *fetchResult) GetError() error { return r.err }

// Aggregate fetches from all providers concurrently and returns the
// merged pool. The join waits for every provider to settle; it never
// short-circuits on the first success or failure. On cancellation the
// partial pool is discarded.
func (a *Aggregator) Aggregate(ctx context.Context) []model.Quote {
	if len(a.providers) == 0 {
		return nil
	}

	pool := worker.NewPool(len(a.providers))
	pool.Start()

	for i, p := range a.providers {
		pool.Submit(&fetchJob{ctx: ctx, index: i, provider: p})
	}

	results := pool.Wait()

	if ctx.Err() != nil {
		return nil
	}

	// Keep provider submission order; insertion order within each
	// provider is preserved by the adapters.
	byProvider := make([][]model.Quote, len(a.providers))
	for _, r := range results {
		fr := r.(*fetchResult)
		if fr.err != nil {
			continue
		}
		byProvider[fr.index] = fr.quotes
	}

	var merged []model.Quote
	for _, quotes := range byProvider {
		merged = append(merged, quotes...)
	}
	return merged
}
