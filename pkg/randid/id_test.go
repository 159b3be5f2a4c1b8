package randid

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Length(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z0-9]*$`)

	for _, length := range []int{0, 1, 4, 8, 12, 16} {
		result := Generate(length)

		assert.Len(t, result, length)
		assert.True(t, pattern.MatchString(result), "Generate(%d) = %q, want only [a-z0-9]", length, result)
	}
}

func TestGenerate_NegativeLength(t *testing.T) {
	assert.Empty(t, Generate(-1))
}

func TestGenerate_Uniqueness(t *testing.T) {
	// Statistical check; with 36^12 possible values, collisions in 100
	// draws would indicate a broken RNG.
	seen := make(map[string]bool)
	for range 100 {
		seen[Generate(12)] = true
	}

	assert.Len(t, seen, 100)
}
