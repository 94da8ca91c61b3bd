package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/daylightlab/moodquote/internal/cache"
	"github.com/daylightlab/moodquote/internal/engine"
	"github.com/daylightlab/moodquote/internal/keywords"
	"github.com/daylightlab/moodquote/internal/local"
	"github.com/daylightlab/moodquote/internal/model"
	"github.com/daylightlab/moodquote/internal/provider"
	"github.com/daylightlab/moodquote/internal/score"
	"github.com/daylightlab/moodquote/internal/translate"
	"github.com/daylightlab/moodquote/internal/worker"
)

var (
	timeout    time.Duration
	userAgent  string
	noCache    bool
	noExtract  bool
	topN       int
	topicsFlag string
	moodFlag   string
	targetLang string
	jsonOut    bool
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote <mood text>",
	Short: "Select and translate a quote matching the described mood",
	Long: `Quote classifies the input text into a mood category, fetches
candidate quotes from all configured providers concurrently, scores
them against the mood and topics, and prints the best match translated
into the target language.

When every provider is unreachable, a bundled local quote list is
consulted as a last resort.

Example:
  moodquote quote "오늘은 좀 우울하다"
  moodquote quote "설레는 아침" --top 3
  moodquote quote "지친 하루" --mood calm --topics rest,ocean --json`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall selection timeout")
	quoteCmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent override")
	quoteCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable provider response cache")
	quoteCmd.Flags().BoolVar(&noExtract, "no-extract", false, "skip LLM mood/topic extraction")
	quoteCmd.Flags().IntVar(&topN, "top", 1, "number of candidates to print")
	quoteCmd.Flags().StringVar(&topicsFlag, "topics", "", "comma-separated topic tokens")
	quoteCmd.Flags().StringVar(&moodFlag, "mood", "", "mood category override (skips classification)")
	quoteCmd.Flags().StringVar(&targetLang, "lang", "", "target language override")
	quoteCmd.Flags().BoolVar(&jsonOut, "json", false, "print result as JSON")
}

// buildConfig assembles the engine configuration from defaults, flags
// and environment credentials.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.JSON = jsonOut
	if targetLang != "" {
		cfg.Translate.TargetLanguage = targetLang
	}

	// Credentials come from the environment only. Their absence is a
	// valid state: translation and extraction run in pass-through mode.
	cfg.Translate.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Keywords.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Image.AccessKey = os.Getenv("UNSPLASH_ACCESS_KEY")

	return cfg
}

// buildEngine wires providers, cache, limiter, scorer and translator.
func buildEngine(cfg *model.Config) *engine.Engine {
	limiter := worker.NewLimiter(cfg.HTTP.RequestsPerSecond, cfg.HTTP.Burst)

	var providers []provider.Provider
	providers = append(providers,
		provider.NewQuotable(cfg.Providers.Quotable, cfg.HTTP, limiter),
		provider.NewZenQuotes(cfg.Providers.ZenQuotes, cfg.HTTP, limiter),
	)

	if cfg.Cache.Enabled {
		layered := cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		for i, p := range providers {
			providers[i] = provider.NewCachedProvider(p, layered, cfg.Cache.DiskTTL)
		}
	}

	translator := translate.New(translate.Config{
		APIKey:         cfg.Translate.APIKey,
		Model:          cfg.Translate.Model,
		BaseURL:        cfg.Translate.BaseURL,
		TargetLanguage: cfg.Translate.TargetLanguage,
		Timeout:        cfg.Translate.Timeout,
	})

	return engine.New(provider.NewAggregator(providers...), score.NewScorer(nil), translator)
}

func runQuote(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := buildConfig()
	eng := buildEngine(cfg)

	if cfg.Translate.MaxTopN > 0 && topN > cfg.Translate.MaxTopN {
		topN = cfg.Translate.MaxTopN
	}

	overrideMood := model.MoodCategory("")
	if moodFlag != "" {
		overrideMood = model.ParseMood(moodFlag)
	}
	topics := splitTopics(topicsFlag)

	// Optional LLM extraction refines the mood and topics when no
	// explicit override was given.
	if !noExtract && moodFlag == "" {
		extractor := keywords.New(keywords.Config{
			APIKey:  cfg.Keywords.APIKey,
			Model:   cfg.Keywords.Model,
			BaseURL: cfg.Keywords.BaseURL,
			Timeout: cfg.Keywords.Timeout,
		})
		if sig := extractor.Extract(ctx, input); sig.Source == keywords.SourceOpenAI {
			overrideMood = sig.Mood
			topics = append(topics, sig.Topics...)
			if verbose {
				fmt.Fprintf(os.Stderr, "Extracted mood: %s, topics: %v\n", sig.Mood, sig.Topics)
			}
		}
	}

	if verbose {
		sig := eng.BuildSignal(input, overrideMood, topics)
		fmt.Fprintf(os.Stderr, "Mood: %s\n", sig.Mood)
		fmt.Fprintf(os.Stderr, "Topics: %v\n", sig.Topics)
		fmt.Fprintln(os.Stderr)
	}

	if topN > 1 {
		results, err := eng.SelectTop(ctx, input, overrideMood, topics, topN)
		if err != nil {
			return fmt.Errorf("selection failed: %w", err)
		}
		if len(results) == 0 {
			results = localFallbackResults(eng, input, overrideMood, topics)
		}
		if len(results) == 0 {
			return fmt.Errorf("no quote available")
		}
		return printResults(results)
	}

	result, err := eng.SelectQuote(ctx, input, overrideMood, topics)
	if err != nil {
		return fmt.Errorf("selection failed: %w", err)
	}
	if result == nil {
		// Every provider failed or returned nothing: fall back to the
		// bundled local list.
		if verbose {
			fmt.Fprintln(os.Stderr, "Empty live pool, using local fallback")
		}
		results := localFallbackResults(eng, input, overrideMood, topics)
		if len(results) == 0 {
			return fmt.Errorf("no quote available")
		}
		result = &results[0]
	}

	return printResults([]model.SelectionResult{*result})
}

// localFallbackResults picks from the bundled list for the resolved mood.
func localFallbackResults(eng *engine.Engine, input string, overrideMood model.MoodCategory, topics []string) []model.SelectionResult {
	sig := eng.BuildSignal(input, overrideMood, topics)
	q := local.NewStore().Pick(sig.Mood)
	if q == nil {
		return nil
	}
	return []model.SelectionResult{{
		Text:         q.Text,
		TextOriginal: q.Text,
		Author:       q.Author,
		Tags:         q.Tags,
		Source:       q.Source,
	}}
}

func printResults(results []model.SelectionResult) error {
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)
	}

	for _, r := range results {
		fmt.Printf("%q\n", r.Text)
		if r.Text != r.TextOriginal {
			fmt.Printf("  (%s)\n", r.TextOriginal)
		}
		fmt.Printf("  — %s", r.Author)
		if r.Source != "" {
			fmt.Printf(" [%s]", r.Source)
		}
		fmt.Println()
	}
	return nil
}

func splitTopics(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
