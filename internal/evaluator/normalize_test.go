package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \t\n"))
	assert.Equal(t, "hello, world!", Normalize("  Hello,   World! "))
}

func TestNormalizeOption(t *testing.T) {
	tests := map[string]string{
		"(B) Paris":       "b paris",
		"  Option C:  ":   "option c",
		"O(n log n)":      "on log n",
		"snake_case-name": "snake_casename",
		"सही उत्तर।":      "सही उत्तर",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeOption(in), in)
	}
}

func TestSignificantWords(t *testing.T) {
	got := significantWords("The lists are mutable, and the class is big")
	assert.Contains(t, got, "list")
	assert.Contains(t, got, "mutable")
	assert.Contains(t, got, "class")
	assert.NotContains(t, got, "the")
	assert.NotContains(t, got, "is")
	assert.NotContains(t, got, "and")
}
