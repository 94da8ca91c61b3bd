package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/daylightlab/moodquote/internal/background"
	"github.com/daylightlab/moodquote/internal/keywords"
	"github.com/daylightlab/moodquote/internal/model"
	"github.com/daylightlab/moodquote/internal/mood"
	"github.com/daylightlab/moodquote/internal/worker"
)

var (
	bgQuery   string
	bgTimeout time.Duration
	bgJSON    bool
)

// backgroundCmd represents the background command
var backgroundCmd = &cobra.Command{
	Use:   "background [mood text]",
	Short: "Look up a background image URL matching the mood",
	Long: `Background resolves the mood of the input text and fetches a
matching image from Unsplash. Without an access key it falls back to a
keyless source URL built from the mood's image query.

Example:
  moodquote background "차분한 저녁"
  moodquote background --query "calm ocean"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBackground,
}

func init() {
	rootCmd.AddCommand(backgroundCmd)

	backgroundCmd.Flags().StringVar(&bgQuery, "query", "", "explicit image query (skips mood resolution)")
	backgroundCmd.Flags().DurationVar(&bgTimeout, "timeout", 15*time.Second, "lookup timeout")
	backgroundCmd.Flags().BoolVar(&bgJSON, "json", false, "print result as JSON")
}

func runBackground(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), bgTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Image.AccessKey = os.Getenv("UNSPLASH_ACCESS_KEY")
	cfg.Keywords.APIKey = os.Getenv("OPENAI_API_KEY")

	category := model.MoodInspiration
	query := bgQuery
	if query == "" && len(args) == 1 {
		category = mood.Classify(args[0])
		extractor := keywords.New(keywords.Config{
			APIKey:  cfg.Keywords.APIKey,
			Model:   cfg.Keywords.Model,
			BaseURL: cfg.Keywords.BaseURL,
			Timeout: cfg.Keywords.Timeout,
		})
		if sig := extractor.Extract(ctx, args[0]); sig.Source == keywords.SourceOpenAI {
			category = sig.Mood
			if len(sig.Keywords) > 0 {
				query = sig.Keywords[0]
			}
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Mood: %s\n", category)
		}
	}

	limiter := worker.NewLimiter(cfg.HTTP.RequestsPerSecond, cfg.HTTP.Burst)
	client := background.New(cfg.Image, cfg.HTTP, limiter)

	img := client.Lookup(ctx, category, query)

	if bgJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(img)
	}

	fmt.Println(img.URL)
	if verbose {
		fmt.Fprintf(os.Stderr, "Source: %s, query: %q\n", img.Source, img.Query)
		if img.Credit != nil {
			fmt.Fprintf(os.Stderr, "Photo by %s on Unsplash\n", img.Credit.AuthorName)
		}
	}
	return nil
}
