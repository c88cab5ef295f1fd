package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"sportscal/internal/filter"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4o-mini"
	// DefaultTimeout bounds a single extraction call so a hung endpoint
	// never blocks message processing; the fallback path runs instead.
	DefaultTimeout = 30 * time.Second

	defaultMaxTokens = 300
)

// OpenAIExtractor asks a chat-completion endpoint for a strict-JSON filter.
// It is always wrapped with WithFallback so callers never see its errors.
type OpenAIExtractor struct {
	client      openai.Client
	model       string
	temperature float64
	timeout     time.Duration
}

// OpenAIConfig carries the knobs for the AI-backed extractor.
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string // override for tests; empty means the public API
	Model       string
	Temperature float64
}

func NewOpenAIExtractor(cfg OpenAIConfig) *OpenAIExtractor {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.1
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: DefaultTimeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIExtractor{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     DefaultTimeout,
	}
}

func (e *OpenAIExtractor) Extract(ctx context.Context, text string) (filter.Filter, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(e.model),
		Temperature: openai.Float(e.temperature),
		MaxTokens:   openai.Int(defaultMaxTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt),
			openai.UserMessage(text),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return filter.Filter{}, fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return filter.Filter{}, fmt.Errorf("empty completion response")
	}

	var f filter.Filter
	raw := ExtractJSON(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return filter.Filter{}, fmt.Errorf("parsing filter JSON: %w", err)
	}

	f.Normalize()
	return f, nil
}
