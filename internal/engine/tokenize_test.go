package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeBasicLatin(t *testing.T) {
	tk := &Tokenizer{}
	toks := tk.Tokenize(context.Background(), "hello world")
	require.Len(t, toks, 2)
	assert.Equal(t, "hello", toks[0].Surface)
	assert.Equal(t, "world", toks[1].Surface)
}

func TestTokenizeScriptBoundary(t *testing.T) {
	tk := &Tokenizer{}
	toks := tk.Tokenize(context.Background(), "hello你好")
	require.GreaterOrEqual(t, len(toks), 2)
	assert.Equal(t, LATIN, toks[0].Script)
	assert.Equal(t, HAN, toks[len(toks)-1].Script)
}

func TestTokenizeEmpty(t *testing.T) {
	tk := &Tokenizer{}
	assert.Nil(t, tk.Tokenize(context.Background(), "   "))
	assert.Nil(t, tk.Tokenize(context.Background(), ""))
}

func TestTokenizePreservesOffsets(t *testing.T) {
	tk := &Tokenizer{}
	text := "hello world"
	toks := tk.Tokenize(context.Background(), text)
	for _, tok := range toks {
		assert.Equal(t, tok.Surface, text[tok.Start:tok.End])
	}
}

func TestSegmentByScriptPunctuation(t *testing.T) {
	segs := segmentByScript("hi, there!")
	assert.Contains(t, segs, ",")
	assert.Contains(t, segs, "!")
}

func TestSplitLongTokens(t *testing.T) {
	long := "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghij"
	out := splitLongTokens([]string{long})
	assert.Greater(t, len(out), 1)
}

func TestMergeShortFragmentsDevanagari(t *testing.T) {
	out := mergeShortFragments([]string{"क", "ि", "ताब"})
	assert.NotEmpty(t, out)
}
