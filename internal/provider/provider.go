package provider

import (
	"context"
	"net/http"

	"github.com/daylightlab/moodquote/internal/model"
	"github.com/daylightlab/moodquote/internal/util"
)

// Provider fetches a pool of candidate quotes from one external
// source. Providers return generic inspirational pools; mood filtering
// happens downstream in the scorer, not via query parameters.
type Provider interface {
	ID() string
	Fetch(ctx context.Context) ([]model.Quote, error)
}

// NewHTTPClient builds the outbound HTTP client shared by adapters.
func NewHTTPClient(cfg model.HTTPConfig) *http.Client {
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy),
		},
	}
}

// normalize stamps the source id and drops malformed records. A record
// missing a non-empty text or author is discarded silently; that is a
// data quality issue, not a provider failure.
func normalize(raw []model.Quote, source string) []model.Quote {
	out := make([]model.Quote, 0, len(raw))
	for _, q := range raw {
		if q.Text == "" || q.Author == "" {
			continue
		}
		q.Source = source
		if q.Tags == nil {
			q.Tags = []string{}
		}
		out = append(out, q)
	}
	return out
}
