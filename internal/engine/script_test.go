package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRune(t *testing.T) {
	cases := []struct {
		r    rune
		want Script
	}{
		{'a', LATIN},
		{'я', CYRILLIC},
		{'あ', HIRAGANA},
		{'ア', KATAKANA},
		{'漢', HAN},
		{'한', HANGUL},
		{'ก', THAI},
		{'अ', DEVANAGARI},
		{'অ', BENGALI},
		{'ب', ARABIC},
		{'1', OTHER},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, classifyRune(c.r), "rune %q", c.r)
	}
}

func TestDominantScript(t *testing.T) {
	assert.Equal(t, LATIN, dominantScript("hello"))
	assert.Equal(t, HAN, dominantScript("你好"))
	assert.Equal(t, OTHER, dominantScript("123"))
	assert.Equal(t, OTHER, dominantScript(""))
}

func TestCharScriptCache(t *testing.T) {
	// Calling charScript repeatedly must return the same value whether
	// or not the LRU cache was warm.
	for i := 0; i < 3; i++ {
		assert.Equal(t, LATIN, charScript('z'))
	}
}

func TestNormalizeTextNFC(t *testing.T) {
	// A letter followed by a combining acute accent (U+0301) must
	// normalize to the single precomposed code point.
	decomposed := string([]rune{'e', 0x0301})
	want := string([]rune{0x00E9})
	got := normalizeText(decomposed)
	assert.Equal(t, want, got)
}
