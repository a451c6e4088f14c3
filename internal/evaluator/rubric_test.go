package evaluator

import (
	"testing"

	"ai-assess/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRubricFor(t *testing.T) {
	assert.Equal(t, "code", RubricFor(domain.KindCode).Name)
	assert.Equal(t, "short_answer", RubricFor(domain.KindShortAnswer).Name)
	assert.Equal(t, "short_answer", RubricFor(domain.QuestionKind("ESSAY")).Name)
}

func TestBuildPrompt(t *testing.T) {
	prompt := CodeRubric.BuildPrompt("Reverse a linked list", "iterative three-pointer reversal", "def rev(h): ...")

	assert.Contains(t, prompt, "Reverse a linked list")
	assert.Contains(t, prompt, "iterative three-pointer reversal")
	assert.Contains(t, prompt, "def rev(h): ...")
	assert.Contains(t, prompt, "Any programming language is acceptable")
	assert.Contains(t, prompt, `"is_correct"`)
	assert.Contains(t, prompt, `"confidence"`)
	assert.Contains(t, prompt, `"reason"`)
}

func TestShortAnswerRubric_AllowsMixedLanguage(t *testing.T) {
	prompt := ShortAnswerRubric.BuildPrompt("q", "r", "u")
	assert.Contains(t, prompt, "Hinglish")
	assert.Contains(t, prompt, "50%")
}
