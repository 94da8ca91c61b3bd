package keywords

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/daylightlab/moodquote/internal/model"
)

// Signal sources.
const (
	SourceOpenAI   = "openai"
	SourceFallback = "fallback"
)

// Signal is the extracted mood/topic/keyword bundle for one input. A
// Signal with Source == SourceOpenAI carries a mood that takes
// precedence over the substring classifier; a fallback Signal only
// contributes image keywords.
type Signal struct {
	Mood     model.MoodCategory `json:"mood"`
	Topics   []string           `json:"topics,omitempty"`
	Keywords []string           `json:"keywords,omitempty"` // English image-search keywords
	Source   string             `json:"source"`
}

// Config holds extraction collaborator configuration.
type Config struct {
	APIKey  string // empty disables extraction entirely
	Model   string
	BaseURL string
	Timeout int // seconds
}

// Extractor derives a mood override, topic tokens and image keywords
// from free-form input text. Like the translator, it is total: any
// failure degrades to the static fallback signal.
type Extractor struct {
	client *openai.Client
	config Config
}

// New creates an extractor. Without an API key every extraction
// returns the fallback signal without a network attempt.
func New(config Config) *Extractor {
	if config.Model == "" {
		config.Model = openai.GPT4oMini
	}

	e := &Extractor{config: config}
	if config.APIKey != "" {
		clientConfig := openai.DefaultConfig(config.APIKey)
		if config.BaseURL != "" {
			clientConfig.BaseURL = config.BaseURL
		}
		e.client = openai.NewClientWithConfig(clientConfig)
	}
	return e
}

// Enabled reports whether a credential is configured.
func (e *Extractor) Enabled() bool {
	return e.client != nil
}

// FallbackSignal is the static signal used when extraction is
// unconfigured or fails.
func FallbackSignal() Signal {
	return Signal{
		Mood:     model.MoodInspiration,
		Keywords: []string{"dreamy", "cosmic", "aurora"},
		Source:   SourceFallback,
	}
}

// Extract derives a signal from the input text. One request, no
// retries; every failure path yields the fallback signal.
func (e *Extractor) Extract(ctx context.Context, text string) Signal {
	if e.client == nil || strings.TrimSpace(text) == "" {
		return FallbackSignal()
	}

	timeout := time.Duration(e.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	labels := make([]string, len(model.AllMoods))
	for i, m := range model.AllMoods {
		labels[i] = string(m)
	}

	prompt := fmt.Sprintf(`From the user's sentence below, extract:
1) the dominant mood, chosen from: %s
2) 2-5 topic tokens (short nouns, lower-case English)
3) 3-5 short English image-search keywords
Return exactly one JSON object of the form {"mood":"...","topics":["..."],"keywords":["..."]}
Sentence: %s`, strings.Join(labels, ", "), text)

	req := openai.ChatCompletionRequest{
		Model: e.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You are a helpful assistant. Always respond with ONLY one JSON object with fields: " +
					"mood (one of the given labels), topics (2-5 short nouns), and keywords (3-5 short English search keywords).",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.4,
	}

	resp, err := e.client.CreateChatCompletion(ctxWithTimeout, req)
	if err != nil || len(resp.Choices) == 0 {
		return FallbackSignal()
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)

	var parsed struct {
		Mood     string   `json:"mood"`
		Topics   []string `json:"topics"`
		Keywords []string `json:"keywords"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &parsed); err != nil {
		return FallbackSignal()
	}

	sig := Signal{
		Mood:     model.ParseMood(parsed.Mood),
		Topics:   lowerAll(parsed.Topics),
		Keywords: parsed.Keywords,
		Source:   SourceOpenAI,
	}
	if len(sig.Keywords) == 0 {
		sig.Keywords = []string{"dreamy", "cosmic", "aurora"}
	}
	return sig
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

var codeFenceRe = regexp.MustCompile("^```(?:json)?")

func stripCodeFences(content string) string {
	content = codeFenceRe.ReplaceAllString(content, "")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
