package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/daylightlab/moodquote/internal/model"
	"github.com/daylightlab/moodquote/internal/worker"
)

// ZenQuotes adapts the zenquotes.io /api/quotes endpoint. The API
// returns a flat array and carries no tags.
type ZenQuotes struct {
	client    *http.Client
	baseURL   string
	userAgent string
	limiter   *worker.Limiter
}

// NewZenQuotes creates a zenquotes.io adapter.
func NewZenQuotes(cfg model.ZenQuotesConfig, httpCfg model.HTTPConfig, limiter *worker.Limiter) *ZenQuotes {
	return &ZenQuotes{
		client:    NewHTTPClient(httpCfg),
		baseURL:   cfg.BaseURL,
		userAgent: httpCfg.UserAgent,
		limiter:   limiter,
	}
}

// ID returns the provider identity stamped onto every record.
func (p *ZenQuotes) ID() string { return "zenquotes" }

// Fetch retrieves and normalizes one pool of quotes.
func (p *ZenQuotes) Fetch(ctx context.Context) ([]model.Quote, error) {
	endpoint := p.baseURL + "/api/quotes"

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx, endpoint); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	var payload []struct {
		Q string `json:"q"`
		A string `json:"a"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	raw := make([]model.Quote, 0, len(payload))
	for _, r := range payload {
		raw = append(raw, model.Quote{
			Text:   r.Q,
			Author: r.A,
		})
	}

	return normalize(raw, p.ID()), nil
}
