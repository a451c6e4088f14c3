package judge

import (
	"context"
	"fmt"

	"ai-assess/internal/config"
	"ai-assess/internal/domain"
)

// New builds the judge selected by cfg.Provider. Provider "none" returns a nil judge,
// which leaves free-text grading to the fallback heuristics.
func New(ctx context.Context, cfg config.LLMConfig) (domain.Judge, error) {
	var (
		j   domain.Judge
		err error
	)
	switch cfg.Provider {
	case "none", "":
		return nil, nil
	case "ollama":
		j, err = NewOllamaJudge(cfg.ServerURL, cfg.Model, cfg.Temperature, cfg.MaxTokens)
	case "openai":
		j, err = NewOpenAIJudge(cfg.APIKey, cfg.ServerURL, cfg.Model, cfg.Temperature, cfg.MaxTokens)
	case "googleai":
		j, err = NewGoogleAIJudge(ctx, cfg.APIKey, cfg.Model, cfg.Temperature, cfg.MaxTokens)
	case "anthropic":
		j, err = NewAnthropicJudge(cfg.APIKey, cfg.Model, cfg.Temperature, cfg.MaxTokens)
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s judge: %w", cfg.Provider, err)
	}
	return j, nil
}
