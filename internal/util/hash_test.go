package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString(t *testing.T) {
	a := HashString("CODE", "question", "reference", "answer")
	b := HashString("CODE", "question", "reference", "answer")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	// The separator keeps part boundaries significant.
	assert.NotEqual(t, HashString("ab", "c"), HashString("a", "bc"))
}

func TestNewULID(t *testing.T) {
	id := NewULID()
	assert.Len(t, id, 26)
	assert.True(t, IsULID(id))
	assert.NotEqual(t, id, NewULID())
	assert.False(t, IsULID("not-a-ulid"))
}
