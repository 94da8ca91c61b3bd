package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Config holds translation collaborator configuration.
type Config struct {
	// APIKey for the OpenAI API. Empty means pass-through mode: no
	// network attempt is ever made and input text is returned as-is.
	APIKey string

	// Model name, defaults to gpt-4o-mini
	Model string

	// BaseURL for custom endpoints (tests point this at a local server)
	BaseURL string

	// TargetLanguage the quotes are rendered in
	TargetLanguage string

	// Timeout for API requests
	Timeout int // seconds
}

// Translator renders quote text in the target language. Its contract
// is total: every call returns usable text. Accuracy is best-effort,
// presence is guaranteed.
type Translator struct {
	client *openai.Client
	config Config
}

// New creates a translator. Without an API key the translator is in
// pass-through mode, which is a valid configuration, not an error.
func New(config Config) *Translator {
	if config.Model == "" {
		config.Model = openai.GPT4oMini
	}
	if config.TargetLanguage == "" {
		config.TargetLanguage = "Korean"
	}

	t := &Translator{config: config}
	if config.APIKey != "" {
		clientConfig := openai.DefaultConfig(config.APIKey)
		if config.BaseURL != "" {
			clientConfig.BaseURL = config.BaseURL
		}
		t.client = openai.NewClientWithConfig(clientConfig)
	}
	return t
}

// Enabled reports whether a credential is configured.
func (t *Translator) Enabled() bool {
	return t.client != nil
}

// Translate renders text in the target language. Exactly one request
// is issued; on any failure (transport, non-success, malformed
// payload, missing field) the original text is returned unchanged.
// No retries.
func (t *Translator) Translate(ctx context.Context, text string) string {
	if t.client == nil || text == "" {
		return text
	}

	content, err := t.complete(ctx, t.singlePrompt(text))
	if err != nil {
		return text
	}

	var parsed struct {
		Translation string `json:"translation"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &parsed); err != nil {
		return text
	}
	if parsed.Translation == "" {
		return text
	}
	return parsed.Translation
}

// TranslateBatch renders each text in the target language, returning a
// slice aligned with the input. If the call fails entirely, every item
// falls back to its original text; if it returns fewer translations
// than requested, entries beyond the returned count fall back
// index-aligned.
func (t *Translator) TranslateBatch(ctx context.Context, texts []string) []string {
	out := make([]string, len(texts))
	copy(out, texts)

	if t.client == nil || len(texts) == 0 {
		return out
	}

	content, err := t.complete(ctx, t.batchPrompt(texts))
	if err != nil {
		return out
	}

	var parsed struct {
		Translations []string `json:"translations"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &parsed); err != nil {
		return out
	}

	for i := range out {
		if i < len(parsed.Translations) && parsed.Translations[i] != "" {
			out[i] = parsed.Translations[i]
		}
	}
	return out
}

// complete issues one chat completion and returns the message content.
func (t *Translator) complete(ctx context.Context, userPrompt string) (string, error) {
	timeout := time.Duration(t.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: t.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf("You are a translator. Render each English quote as one natural, concise %s sentence. "+
					"No emoji, no parentheses, no commentary. Respond with ONLY one JSON object.", t.config.TargetLanguage),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := t.client.CreateChatCompletion(ctxWithTimeout, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (t *Translator) singlePrompt(text string) string {
	quoted, _ := json.Marshal(text)
	return fmt.Sprintf("Translate this sentence. { \"text\": %s }\nReturn exactly the form { \"translation\": \"...\" }", quoted)
}

func (t *Translator) batchPrompt(texts []string) string {
	arr, _ := json.Marshal(texts)
	return fmt.Sprintf("Translate the following array of English sentences into %s, returning an array in the same order. "+
		"Return exactly the form { \"translations\": [\"...\", ...] }\nInput array: %s", t.config.TargetLanguage, arr)
}

var codeFenceRe = regexp.MustCompile("^```(?:json)?")

// stripCodeFences removes a markdown code fence the model sometimes
// wraps around its JSON despite instructions.
func stripCodeFences(content string) string {
	content = codeFenceRe.ReplaceAllString(content, "")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
