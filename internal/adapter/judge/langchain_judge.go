package judge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ai-assess/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	ollamaLLM "github.com/tmc/langchaingo/llms/ollama"
	openaiLLM "github.com/tmc/langchaingo/llms/openai"
)

// LangChainJudge implements domain.Judge over any langchaingo model.
type LangChainJudge struct {
	llm         llms.Model
	temperature float64
	maxTokens   int
}

var _ domain.Judge = (*LangChainJudge)(nil)

// NewLangChainJudge wraps an existing langchaingo model.
func NewLangChainJudge(llm llms.Model, temperature float64, maxTokens int) *LangChainJudge {
	return &LangChainJudge{llm: llm, temperature: temperature, maxTokens: maxTokens}
}

// NewOllamaJudge connects to a local Ollama server.
func NewOllamaJudge(serverURL, model string, temperature float64, maxTokens int) (*LangChainJudge, error) {
	if model == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}
	opts := []ollamaLLM.Option{ollamaLLM.WithModel(model)}
	if serverURL != "" {
		opts = append(opts, ollamaLLM.WithServerURL(serverURL))
	}
	llm, err := ollamaLLM.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama LLM client: %w", err)
	}
	return NewLangChainJudge(llm, temperature, maxTokens), nil
}

// NewOpenAIJudge uses the OpenAI chat completion API. serverURL may point at any
// OpenAI compatible endpoint; empty means the public API.
func NewOpenAIJudge(apiKey, serverURL, model string, temperature float64, maxTokens int) (*LangChainJudge, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key cannot be empty")
	}
	opts := []openaiLLM.Option{openaiLLM.WithToken(apiKey)}
	if model != "" {
		opts = append(opts, openaiLLM.WithModel(model))
	}
	if serverURL != "" {
		opts = append(opts, openaiLLM.WithBaseURL(serverURL))
	}
	llm, err := openaiLLM.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI LLM client: %w", err)
	}
	return NewLangChainJudge(llm, temperature, maxTokens), nil
}

// NewGoogleAIJudge uses the Gemini API.
func NewGoogleAIJudge(ctx context.Context, apiKey, model string, temperature float64, maxTokens int) (*LangChainJudge, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key cannot be empty")
	}
	opts := []googleai.Option{googleai.WithAPIKey(apiKey)}
	if model != "" {
		opts = append(opts, googleai.WithDefaultModel(model))
	}
	llm, err := googleai.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini LLM client: %w", err)
	}
	return NewLangChainJudge(llm, temperature, maxTokens), nil
}

// Judge implements domain.Judge.
func (j *LangChainJudge) Judge(ctx context.Context, systemInstructions string, prompt string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemInstructions),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	opts := []llms.CallOption{llms.WithTemperature(j.temperature)}
	if j.maxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(j.maxTokens))
	}

	resp, err := j.llm.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", errors.New("empty response from LLM")
	}

	content := strings.TrimSpace(resp.Choices[0].Content)
	if content == "" {
		return "", errors.New("empty content in LLM response")
	}
	return content, nil
}
