package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharPatternScoreDetectsGermanUmlaut(t *testing.T) {
	d := charPatternScore("schön")
	require.NotNil(t, d)
	assert.Greater(t, d["de"], 0.0)
}

func TestCharPatternScoreNoMatchIsNil(t *testing.T) {
	assert.Nil(t, charPatternScore("hello"))
}

func TestCharsetHintProviderReady(t *testing.T) {
	var p charsetHintProvider
	assert.True(t, p.Ready())
	assert.Equal(t, "charset", p.Name())
}

func TestCharsetHintProviderDistributions(t *testing.T) {
	var p charsetHintProvider
	dists, err := p.Distributions(context.Background(), []Token{newToken("schön", 0, 6)})
	require.NoError(t, err)
	require.Len(t, dists, 1)
	assert.Greater(t, dists[0]["de"], 0.0)
}

func TestContainsSubstring(t *testing.T) {
	assert.True(t, containsSubstring("schön", "ö"))
	assert.False(t, containsSubstring("schon", "ö"))
}
