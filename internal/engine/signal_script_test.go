package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptPriorProviderPerfectScript(t *testing.T) {
	var p scriptPriorProvider
	dists, err := p.Distributions(context.Background(), []Token{newToken("こんにちは", 0, 15)})
	require.NoError(t, err)
	require.Len(t, dists, 1)
	assert.InDelta(t, 1.0, dists[0]["ja"], 1e-9)
}

func TestScriptPriorProviderSharedScript(t *testing.T) {
	d := scriptCandidateScore(LATIN, 5)
	assert.Greater(t, len(d), 1)
}

func TestScriptPriorProviderOtherScript(t *testing.T) {
	assert.Nil(t, scriptCandidateScore(OTHER, 5))
}

func TestScriptPriorProviderAlwaysReady(t *testing.T) {
	var p scriptPriorProvider
	assert.True(t, p.Ready())
}
