package background

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/daylightlab/moodquote/internal/model"
	"github.com/daylightlab/moodquote/internal/mood"
	"github.com/daylightlab/moodquote/internal/provider"
	"github.com/daylightlab/moodquote/internal/worker"
)

// Image sources.
const (
	SourceAPI      = "unsplash-api"
	SourceKeyless  = "unsplash-source"
	SourceFallback = "fallback"
)

// Image is a resolved background image with optional attribution.
type Image struct {
	URL    string  `json:"url"`
	Source string  `json:"source"`
	Query  string  `json:"query"`
	Credit *Credit `json:"credit,omitempty"`
}

// Credit carries Unsplash attribution fields.
type Credit struct {
	AuthorName string `json:"author_name"`
	AuthorLink string `json:"author_link,omitempty"`
	ImageLink  string `json:"image_link,omitempty"`
}

// Client looks up a mood-matched background image. Like every other
// collaborator it degrades rather than fails: without an access key or
// on any API error it returns a keyless image URL built from the query.
type Client struct {
	httpClient *http.Client
	config     model.ImageConfig
	userAgent  string
	limiter    *worker.Limiter
	pick       func(n int) int
}

// New creates a background image client.
func New(config model.ImageConfig, httpCfg model.HTTPConfig, limiter *worker.Limiter) *Client {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Client{
		httpClient: provider.NewHTTPClient(httpCfg),
		config:     config,
		userAgent:  httpCfg.UserAgent,
		limiter:    limiter,
		pick:       rng.Intn,
	}
}

// Lookup resolves a background image for the mood. An explicit query
// (from the keyword extractor) takes precedence over the mood's query
// candidates.
func (c *Client) Lookup(ctx context.Context, m model.MoodCategory, query string) Image {
	if query == "" {
		candidates := mood.ImageQueries(m)
		query = candidates[c.pick(len(candidates))]
	}

	if c.config.AccessKey == "" {
		return c.keylessImage(query, SourceKeyless)
	}

	img, err := c.fetchRandomPhoto(ctx, query)
	if err != nil {
		return c.keylessImage(query, SourceFallback)
	}
	return img
}

func (c *Client) fetchRandomPhoto(ctx context.Context, query string) (Image, error) {
	endpoint := fmt.Sprintf("%s/photos/random?query=%s&orientation=landscape&content_filter=high",
		c.config.BaseURL, url.QueryEscape(query))

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, endpoint); err != nil {
			return Image{}, fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Image{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Authorization", "Client-ID "+c.config.AccessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Image{}, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Image{}, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	var payload struct {
		URLs struct {
			Regular string `json:"regular"`
			Full    string `json:"full"`
			Raw     string `json:"raw"`
		} `json:"urls"`
		Links struct {
			HTML string `json:"html"`
		} `json:"links"`
		User struct {
			Name  string `json:"name"`
			Links struct {
				HTML string `json:"html"`
			} `json:"links"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Image{}, fmt.Errorf("decode payload: %w", err)
	}

	imageURL := payload.URLs.Regular
	if imageURL == "" {
		imageURL = payload.URLs.Full
	}
	if imageURL == "" {
		imageURL = payload.URLs.Raw
	}
	if imageURL == "" {
		return Image{}, fmt.Errorf("no image URL in payload")
	}

	img := Image{
		URL:    imageURL,
		Source: SourceAPI,
		Query:  query,
	}
	if payload.User.Name != "" {
		img.Credit = &Credit{
			AuthorName: payload.User.Name,
			AuthorLink: payload.User.Links.HTML,
			ImageLink:  payload.Links.HTML,
		}
	}
	return img, nil
}

func (c *Client) keylessImage(query, source string) Image {
	return Image{
		URL:    fmt.Sprintf("%s/1600x900/?%s", c.config.FallbackURL, url.QueryEscape(query)),
		Source: source,
		Query:  query,
	}
}
