package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/daylightlab/moodquote/internal/model"
)

func testHTTPConfig() model.HTTPConfig {
	return model.HTTPConfig{
		Timeout:   5 * time.Second,
		UserAgent: "moodquote-test",
	}
}

func TestQuotable_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "40" {
			t.Errorf("expected limit=40, got %s", got)
		}
		if got := r.URL.Query().Get("tags"); got != "inspirational|life" {
			t.Errorf("unexpected tags param: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"results":[
			{"content":"Peace begins with a smile.","author":"Mother Teresa","tags":["calm","life"]},
			{"content":"","author":"Nobody"},
			{"content":"No author here","author":""}
		]}`)
	}))
	defer server.Close()

	p := NewQuotable(model.QuotableConfig{BaseURL: server.URL, Limit: 40, Tags: "inspirational|life"}, testHTTPConfig(), nil)

	quotes, err := p.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	// Records missing text or author are dropped during normalization.
	if len(quotes) != 1 {
		t.Fatalf("expected 1 quote after normalization, got %d", len(quotes))
	}
	q := quotes[0]
	if q.Author != "Mother Teresa" {
		t.Errorf("unexpected author: %s", q.Author)
	}
	if q.Source != "quotable" {
		t.Errorf("expected source quotable, got %s", q.Source)
	}
	if len(q.Tags) != 2 {
		t.Errorf("expected 2 tags, got %v", q.Tags)
	}
}

func TestQuotable_Fetch_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	p := NewQuotable(model.QuotableConfig{BaseURL: server.URL, Limit: 40}, testHTTPConfig(), nil)
	if _, err := p.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for 503")
	}
}

func TestQuotable_Fetch_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `not json at all`)
	}))
	defer server.Close()

	p := NewQuotable(model.QuotableConfig{BaseURL: server.URL, Limit: 40}, testHTTPConfig(), nil)
	if _, err := p.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
