package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/daylightlab/moodquote/internal/model"
)

// stubProvider implements Provider for aggregation tests.
type stubProvider struct {
	id     string
	quotes []model.Quote
	err    error
}

func (s *stubProvider) ID() string { return s.id }

func (s *stubProvider) Fetch(ctx context.Context) ([]model.Quote, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.quotes, nil
}

func TestAggregator_MergesAllProviders(t *testing.T) {
	a := NewAggregator(
		&stubProvider{id: "one", quotes: []model.Quote{
			{Text: "first", Author: "A", Source: "one"},
			{Text: "second", Author: "B", Source: "one"},
		}},
		&stubProvider{id: "two", quotes: []model.Quote{
			{Text: "third", Author: "C", Source: "two"},
		}},
	)

	pool := a.Aggregate(context.Background())
	if len(pool) != 3 {
		t.Fatalf("expected 3 quotes, got %d", len(pool))
	}

	// Provider submission order, insertion order within provider.
	if pool[0].Text != "first" || pool[1].Text != "second" || pool[2].Text != "third" {
		t.Errorf("unexpected merge order: %v", pool)
	}
}

func TestAggregator_FailedProviderYieldsEmptyContribution(t *testing.T) {
	a := NewAggregator(
		&stubProvider{id: "broken", err: errors.New("connection refused")},
		&stubProvider{id: "ok", quotes: []model.Quote{{Text: "kept", Author: "A", Source: "ok"}}},
	)

	pool := a.Aggregate(context.Background())
	if len(pool) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(pool))
	}
	if pool[0].Text != "kept" {
		t.Errorf("unexpected quote: %v", pool[0])
	}
}

func TestAggregator_AllProvidersFail(t *testing.T) {
	a := NewAggregator(
		&stubProvider{id: "one", err: errors.New("boom")},
		&stubProvider{id: "two", err: errors.New("boom")},
	)

	pool := a.Aggregate(context.Background())
	if len(pool) != 0 {
		t.Fatalf("expected empty pool, got %d quotes", len(pool))
	}
}

func TestAggregator_NoProviders(t *testing.T) {
	a := NewAggregator()
	if pool := a.Aggregate(context.Background()); len(pool) != 0 {
		t.Fatalf("expected empty pool, got %d", len(pool))
	}
}

func TestAggregator_CancelledContextDiscardsPartialResults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := NewAggregator(
		&stubProvider{id: "one", quotes: []model.Quote{{Text: "late", Author: "A"}}},
	)

	if pool := a.Aggregate(ctx); pool != nil {
		t.Errorf("expected nil pool on cancellation, got %v", pool)
	}
}
