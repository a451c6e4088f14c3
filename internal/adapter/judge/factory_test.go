package judge

import (
	"context"
	"testing"

	"ai-assess/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	j, err := New(context.Background(), config.LLMConfig{Provider: "none"})
	require.NoError(t, err)
	assert.Nil(t, j)

	j, err = New(context.Background(), config.LLMConfig{Provider: "ollama", Model: "qwen3:0.6b", ServerURL: "http://localhost:11434"})
	require.NoError(t, err)
	assert.IsType(t, &LangChainJudge{}, j)

	j, err = New(context.Background(), config.LLMConfig{Provider: "anthropic", APIKey: "k", Model: "claude-test"})
	require.NoError(t, err)
	assert.IsType(t, &AnthropicJudge{}, j)

	j, err = New(context.Background(), config.LLMConfig{Provider: "openai"})
	require.Error(t, err)
	assert.Nil(t, j)

	_, err = New(context.Background(), config.LLMConfig{Provider: "mystery"})
	assert.ErrorContains(t, err, "unsupported llm provider")
}
