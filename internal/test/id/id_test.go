package id_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyprint-backend/internal/id"
)

func TestNew_Prefix(t *testing.T) {
	got, err := id.New("book")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "book-"))
	assert.Greater(t, len(got), len("book-"))
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		got := id.MustNew("pht")
		assert.False(t, seen[got], "duplicate id %s", got)
		seen[got] = true
	}
}

func TestNewOrder_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-[A-Z0-9]{6}$`)
	for i := 0; i < 100; i++ {
		got, err := id.NewOrder()
		require.NoError(t, err)
		assert.Regexp(t, pattern, got)
	}
}
