package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuseProblematicWordOverride(t *testing.T) {
	var f Fuser
	tok := newToken("katze", 0, 5)
	pre, post := f.Fuse(tok, map[string]Dist{})
	require.NotNil(t, post)
	lab, v := post.argmax()
	assert.Equal(t, problematicWords["katze"], lab)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, pre, post)
}

func TestFuseIndonesianMorphologyOverride(t *testing.T) {
	var f Fuser
	tok := newToken("mempelajari", 0, 11)
	_, post := f.Fuse(tok, map[string]Dist{"ngram": {"id": 0.5, "en": 0.5}})
	if hasIndonesianMorphology(tok.Lower) {
		assert.Greater(t, post["id"], 0.5)
	}
}

func TestWeightsForStrongMarker(t *testing.T) {
	tok := newToken("the", 0, 3)
	w := weightsFor(tok)
	assert.Equal(t, weightsLatinStrongMarker, w)
}

func TestWeightsForShortVsLong(t *testing.T) {
	short := newToken("hi", 0, 2)
	long := newToken("extraordinarily", 0, 15)
	assert.Equal(t, weightsLatinLen2, weightsFor(short))
	assert.Equal(t, weightsLatinLong, weightsFor(long))
}

func TestFuseGenericWeightedSum(t *testing.T) {
	var f Fuser
	tok := newToken("xyzzy", 0, 5)
	raw := map[string]Dist{
		"transformer": {"en": 0.8, "fr": 0.2},
		"ngram":       {"en": 0.6, "fr": 0.4},
		"pattern":     {"en": 0.5},
		"script":      {"en": 1.0},
		"charset":     {},
	}
	pre, post := f.Fuse(tok, raw)
	require.NotNil(t, pre)
	require.NotNil(t, post)
	var total float64
	for _, v := range post {
		total += v
	}
	assert.InDelta(t, 1.0, total, 1e-6)
}

func TestApplyAgreementBonusCapped(t *testing.T) {
	d := Dist{"en": 0.9}
	raw := map[string]Dist{
		"transformer": {"en": 0.9},
		"ngram":       {"en": 0.9},
	}
	applyAgreementBonus(d, raw)
	assert.LessOrEqual(t, d["en"], agreementCap)
}
