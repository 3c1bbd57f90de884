package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNgramBackend struct {
	calls int
}

func (b *recordingNgramBackend) TopK(_ string, k int) ([]string, []float64, error) {
	b.calls++
	return []string{"en", "fr"}, []float64{0.7, 0.3}, nil
}

func TestNgramProviderNotReadyWithoutBackend(t *testing.T) {
	p := newNgramProvider(nil, 0)
	assert.False(t, p.Ready())
	dists, err := p.Distributions(context.Background(), []Token{newToken("hi", 0, 2)})
	require.NoError(t, err)
	assert.Nil(t, dists[0])
}

func TestNgramProviderNormalizesScores(t *testing.T) {
	b := &recordingNgramBackend{}
	p := newNgramProvider(b, 16)
	dists, err := p.Distributions(context.Background(), []Token{newToken("hello", 0, 5)})
	require.NoError(t, err)
	require.NotNil(t, dists[0])
	assert.InDelta(t, 0.7, dists[0]["en"], 1e-9)
}

func TestNgramProviderCachesByTokenAndScript(t *testing.T) {
	b := &recordingNgramBackend{}
	p := newNgramProvider(b, 16)
	tok := newToken("hello", 0, 5)
	_, err := p.Distributions(context.Background(), []Token{tok})
	require.NoError(t, err)
	_, err = p.Distributions(context.Background(), []Token{tok})
	require.NoError(t, err)
	assert.Equal(t, 1, b.calls)
}

func TestNgramProviderName(t *testing.T) {
	p := newNgramProvider(nil, 0)
	assert.Equal(t, "ngram", p.Name())
}
