package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the full engine configuration. It is read-only after
// construction and safe for concurrent reads.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Providers ProvidersConfig `yaml:"providers"`
	Cache     CacheConfig     `yaml:"cache"`
	Translate TranslateConfig `yaml:"translate"`
	Keywords  KeywordsConfig  `yaml:"keywords"`
	Image     ImageConfig     `yaml:"image"`
	Output    OutputConfig    `yaml:"output"`
}

// HTTPConfig controls outbound HTTP behavior shared by all adapters.
type HTTPConfig struct {
	Timeout           time.Duration `yaml:"timeout"`
	UserAgent         string        `yaml:"user_agent"`
	RequestsPerSecond float64       `yaml:"requests_per_second"` // Per-host outbound rate
	Burst             int           `yaml:"burst"`
	HTTPProxy         string        `yaml:"http_proxy,omitempty"`
	HTTPSProxy        string        `yaml:"https_proxy,omitempty"`
}

// ProvidersConfig holds per-provider endpoints. Base URLs are
// overridable so tests can point adapters at local servers.
type ProvidersConfig struct {
	Quotable  QuotableConfig  `yaml:"quotable"`
	ZenQuotes ZenQuotesConfig `yaml:"zenquotes"`
}

// QuotableConfig configures the quotable.io adapter.
type QuotableConfig struct {
	BaseURL string `yaml:"base_url"`
	Limit   int    `yaml:"limit"`
	Tags    string `yaml:"tags"` // Pipe-separated tag filter sent to the API
}

// ZenQuotesConfig configures the zenquotes.io adapter.
type ZenQuotesConfig struct {
	BaseURL string `yaml:"base_url"`
}

// CacheConfig controls caching of provider responses.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// TranslateConfig configures the translation collaborator. An empty
// APIKey is a valid state that forces pass-through mode.
type TranslateConfig struct {
	APIKey         string `yaml:"-"` // env-only, never in YAML
	Model          string `yaml:"model"`
	BaseURL        string `yaml:"base_url,omitempty"`
	TargetLanguage string `yaml:"target_language"`
	Timeout        int    `yaml:"timeout"` // seconds
	MaxTopN        int    `yaml:"max_top_n"` // pool size cap for batch pre-translation
}

// KeywordsConfig configures the mood/topic extraction collaborator.
type KeywordsConfig struct {
	APIKey  string `yaml:"-"` // env-only, never in YAML
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url,omitempty"`
	Timeout int    `yaml:"timeout"` // seconds
}

// ImageConfig configures the background image lookup.
type ImageConfig struct {
	AccessKey   string `yaml:"-"` // env-only, never in YAML
	BaseURL     string `yaml:"base_url"`
	FallbackURL string `yaml:"fallback_url"`
}

// OutputConfig controls CLI output behavior.
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
	JSON    bool `yaml:"json"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	cacheDir := ".moodquote-cache"
	if home, err := os.UserHomeDir(); err == nil {
		cacheDir = filepath.Join(home, ".moodquote", "cache")
	}

	return &Config{
		HTTP: HTTPConfig{
			Timeout:           10 * time.Second,
			UserAgent:         "moodquote/0.1 (+https://github.com/daylightlab/moodquote)",
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Providers: ProvidersConfig{
			Quotable: QuotableConfig{
				BaseURL: "https://api.quotable.io",
				Limit:   40,
				Tags:    "inspirational|life|happiness|wisdom",
			},
			ZenQuotes: ZenQuotesConfig{
				BaseURL: "https://zenquotes.io",
			},
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       cacheDir,
			MemoryTTL: 1 * time.Hour,
			DiskTTL:   24 * time.Hour,
		},
		Translate: TranslateConfig{
			Model:          "gpt-4o-mini",
			TargetLanguage: "Korean",
			Timeout:        30,
			MaxTopN:        5,
		},
		Keywords: KeywordsConfig{
			Model:   "gpt-4o-mini",
			Timeout: 30,
		},
		Image: ImageConfig{
			BaseURL:     "https://api.unsplash.com",
			FallbackURL: "https://source.unsplash.com",
		},
		Output: OutputConfig{},
	}
}
