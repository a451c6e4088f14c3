package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"ai-assess/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LLM_PROVIDER", "none")
	t.Setenv("REDIS_ADDRESS", "")
	t.Setenv("DB_NAME", "")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config-dir", t.TempDir()}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestEvaluateCommand(t *testing.T) {
	out, err := execute(t, "evaluate",
		"--kind", "mcq",
		"--question", "Capital of France?",
		"--answer", "Paris",
		"--reference", "b",
		"--option", "a) Berlin", "--option", "b) Paris")
	require.NoError(t, err)

	var resp dto.EvaluateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.IsCorrect)
	assert.Equal(t, 95, resp.Confidence)
	assert.Equal(t, "MCQ", resp.QuestionKind)
}

func TestEvaluateCommand_FallbackWithoutJudge(t *testing.T) {
	out, err := execute(t, "evaluate",
		"--kind", "SA",
		"--question", "Difference between list and tuple?",
		"--answer", "list is mutable",
		"--reference", "Lists are mutable, tuples are immutable")
	require.NoError(t, err)

	var resp dto.EvaluateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.IsCorrect)
	assert.Equal(t, "fallback", resp.Method)
}

func TestEvaluateCommand_RequiresQuestion(t *testing.T) {
	_, err := execute(t, "evaluate", "--answer", "x", "--reference", "y")
	assert.Error(t, err)
}

func TestScoreCommand_RequiresRegistration(t *testing.T) {
	_, err := execute(t, "score")
	assert.Error(t, err)
}

func TestScoreCommand_NoDatabase(t *testing.T) {
	_, err := execute(t, "score", "--registration", "12")
	assert.Error(t, err)
}
