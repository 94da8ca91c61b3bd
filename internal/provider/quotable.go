package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/daylightlab/moodquote/internal/model"
	"github.com/daylightlab/moodquote/internal/worker"
)

// Quotable adapts the quotable.io /quotes endpoint. The API is asked
// for a broad inspirational pool; it is never queried by mood.
type Quotable struct {
	client    *http.Client
	baseURL   string
	limit     int
	tags      string
	userAgent string
	limiter   *worker.Limiter
}

// NewQuotable creates a quotable.io adapter.
func NewQuotable(cfg model.QuotableConfig, httpCfg model.HTTPConfig, limiter *worker.Limiter) *Quotable {
	return &Quotable{
		client:    NewHTTPClient(httpCfg),
		baseURL:   cfg.BaseURL,
		limit:     cfg.Limit,
		tags:      cfg.Tags,
		userAgent: httpCfg.UserAgent,
		limiter:   limiter,
	}
}

// ID returns the provider identity stamped onto every record.
func (p *Quotable) ID() string { return "quotable" }

// Fetch retrieves and normalizes one pool of quotes.
func (p *Quotable) Fetch(ctx context.Context) ([]model.Quote, error) {
	endpoint := fmt.Sprintf("%s/quotes?limit=%d&tags=%s", p.baseURL, p.limit, url.QueryEscape(p.tags))

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

	var payload struct {
		Results []struct {
			Content string   `json:"content"`
			Author  string   `json:"author"`
			Tags    []string `json:"tags"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	raw := make([]model.Quote, 0, len(payload.Results))
	for _, r := range payload.Results {
		raw = append(raw, model.Quote{
			Text:   r.Content,
			Author: r.Author,
			Tags:   r.Tags,
		})
	}

	return normalize(raw, p.ID()), nil
}
