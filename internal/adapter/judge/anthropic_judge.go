package judge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ai-assess/internal/domain"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicMaxTokens = 512

// AnthropicJudge implements domain.Judge over the Claude Messages API.
type AnthropicJudge struct {
	client      *anthropic.Client
	model       anthropic.Model
	temperature float64
	maxTokens   int64
}

var _ domain.Judge = (*AnthropicJudge)(nil)

// NewAnthropicJudge creates a judge. Extra request options (base URL, HTTP client,
// retries) are passed to the SDK client unchanged.
func NewAnthropicJudge(apiKey, model string, temperature float64, maxTokens int, opts ...option.RequestOption) (*AnthropicJudge, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Anthropic API key cannot be empty")
	}
	if model == "" {
		model = string(anthropic.ModelClaude3_5Sonnet20241022)
	}
	if maxTokens <= 0 {
		maxTokens = defaultAnthropicMaxTokens
	}

	clientOpts := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := anthropic.NewClient(clientOpts...)

	return &AnthropicJudge{
		client:      &client,
		model:       anthropic.Model(model),
		temperature: temperature,
		maxTokens:   int64(maxTokens),
	}, nil
}

// Judge implements domain.Judge.
func (j *AnthropicJudge) Judge(ctx context.Context, systemInstructions string, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       j.model,
		MaxTokens:   j.maxTokens,
		Temperature: anthropic.Float(j.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if systemInstructions != "" {
		params.System = []anthropic.TextBlockParam{{Text: systemInstructions}}
	}

	resp, err := j.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic api error: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.AsText().Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("empty content in anthropic response")
	}
	return sb.String(), nil
}
