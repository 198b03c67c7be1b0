package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomIndexEmptySet(t *testing.T) {
	assert.Equal(t, -1, RandomIndex(0))
	assert.Equal(t, -1, RandomIndex(-3))
}

func TestRandomIndexBounds(t *testing.T) {
	assert.Equal(t, 0, RandomIndex(1))

	for i := 0; i < 200; i++ {
		idx := RandomIndex(7)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 7)
	}
}

func TestGenerateReceipt(t *testing.T) {
	first := GenerateReceipt()
	second := GenerateReceipt()

	assert.True(t, strings.HasPrefix(first, "rcpt_"))
	assert.NotEqual(t, first, second)
}
