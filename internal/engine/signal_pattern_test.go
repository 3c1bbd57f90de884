package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternHintProviderMatchesConfiguredPattern(t *testing.T) {
	p := newPatternHintProvider()
	var lang string
	for l, pats := range languagePatterns {
		if len(pats) > 0 {
			lang = l
			break
		}
	}
	require.NotEmpty(t, lang)
	d := p.scores("")
	assert.Nil(t, d)
	en := p.scores("the")
	require.NotNil(t, en)
	assert.InDelta(t, 1-0.6, en["en"], 1e-9)
}

func TestPatternHintProviderNoMatchIsNil(t *testing.T) {
	p := newPatternHintProvider()
	d := p.scores("zzzzzzzzzzzzzzzzzzzzzzzzzzz1234")
	assert.Nil(t, d)
}

func TestPatternHintProviderReady(t *testing.T) {
	p := newPatternHintProvider()
	assert.True(t, p.Ready())
	assert.Equal(t, "pattern", p.Name())
}

func TestPatternHintProviderDistributionsLength(t *testing.T) {
	p := newPatternHintProvider()
	dists, err := p.Distributions(context.Background(), []Token{newToken("hello", 0, 5), newToken("world", 6, 11)})
	require.NoError(t, err)
	assert.Len(t, dists, 2)
}

func TestPow06Decreasing(t *testing.T) {
	assert.Greater(t, pow06(1), pow06(2))
	assert.Equal(t, 1.0, pow06(0))
}
