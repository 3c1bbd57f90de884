package engine

import (
	"context"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var propertySamples = []string{
	"hello world, this is a simple test.",
	"bonjour le monde, comment ça va aujourd'hui?",
	"こんにちは世界、今日はいい天気ですね。",
	"สวัสดีครับ วันนี้อากาศดีมาก",
	"Mixing English with un peu de français in the same sentence.",
	"",
	"   ",
	"12345 !!! ...",
}

func allowedLabels() map[string]bool {
	m := map[string]bool{unknownLabel: true}
	for _, l := range top20 {
		m[l] = true
	}
	return m
}

func nonWhitespaceRuneCount(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

func TestPropertyLabelsAreSupportedOrUnknown(t *testing.T) {
	allowed := allowedLabels()
	e := New(Config{})
	for _, text := range propertySamples {
		segs, err := e.Detect(context.Background(), text)
		require.NoError(t, err)
		for _, s := range segs {
			assert.True(t, allowed[s.Language], "unexpected label %q for text %q", s.Language, text)
		}
	}
}

func TestPropertySegmentCharCountBoundedByInput(t *testing.T) {
	e := New(Config{})
	for _, text := range propertySamples {
		segs, err := e.Detect(context.Background(), text)
		require.NoError(t, err)
		var total int
		for _, s := range segs {
			total += nonWhitespaceRuneCount(s.Text)
		}
		assert.LessOrEqual(t, total, nonWhitespaceRuneCount(text))
	}
}

func TestPropertyDeterministic(t *testing.T) {
	e := New(Config{})
	for _, text := range propertySamples {
		first, err := e.Detect(context.Background(), text)
		require.NoError(t, err)
		second, err := e.Detect(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestPropertyIdempotentOnReconstructedText(t *testing.T) {
	e := New(Config{})
	for _, text := range propertySamples {
		segs, err := e.Detect(context.Background(), text)
		require.NoError(t, err)
		if len(segs) == 0 {
			continue
		}
		var rebuilt strings.Builder
		for _, s := range segs {
			rebuilt.WriteString(s.Text)
		}
		again, err := e.Detect(context.Background(), rebuilt.String())
		require.NoError(t, err)
		assert.NotEmpty(t, again)
	}
}

func TestPropertyNoAdjacentSegmentsShareLabel(t *testing.T) {
	e := New(Config{})
	for _, text := range propertySamples {
		segs, err := e.Detect(context.Background(), text)
		require.NoError(t, err)
		for i := 1; i < len(segs); i++ {
			assert.NotEqual(t, segs[i-1].Language, segs[i].Language, "adjacent segments should have been merged for %q", text)
		}
	}
}

func countLabel(segs []Segment, lang string) int {
	n := 0
	for _, s := range segs {
		if s.Language == lang {
			n++
		}
	}
	return n
}

const monotonicityTrailer = " Also, this is a simple additional English sentence."

func TestPropertyMonotonicityTrailingEnglishNeverDecreasesEnCount(t *testing.T) {
	e := New(Config{})
	for _, text := range propertySamples {
		before, err := e.Detect(context.Background(), text)
		require.NoError(t, err)
		after, err := e.Detect(context.Background(), text+monotonicityTrailer)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, countLabel(after, "en"), countLabel(before, "en"),
			"appending an English sentence decreased the en segment count for %q", text)
	}
}

func TestPropertyMonotonicityTrailingEnglishNeverFlipsNonLatinTokenToEnglish(t *testing.T) {
	e := New(Config{})
	for _, text := range propertySamples {
		_, before, err := e.DetectVerbose(context.Background(), text)
		require.NoError(t, err)
		_, after, err := e.DetectVerbose(context.Background(), text+monotonicityTrailer)
		require.NoError(t, err)
		n := len(before)
		if len(after) < n {
			n = len(after)
		}
		for i := 0; i < n; i++ {
			if before[i].Token.Script == LATIN || before[i].Label == "en" {
				continue
			}
			assert.NotEqual(t, "en", after[i].Label,
				"token %q (script %v, originally %q) flipped to en after appending an English sentence to %q",
				before[i].Token.Surface, before[i].Token.Script, before[i].Label, text)
		}
	}
}

// scriptContainmentAllowed mirrors spec's script-containment property: a
// token in one of these scripts may only ever be labeled the script's
// one corresponding language.
var scriptContainmentAllowed = map[Script]string{
	BENGALI:    "bn",
	DEVANAGARI: "hi",
	HANGUL:     "ko",
	THAI:       "th",
	HIRAGANA:   "ja",
	KATAKANA:   "ja",
}

func TestPropertyScriptContainment(t *testing.T) {
	e := New(Config{})
	for _, text := range propertySamples {
		_, traces, err := e.DetectVerbose(context.Background(), text)
		require.NoError(t, err)
		for _, tr := range traces {
			want, ok := scriptContainmentAllowed[tr.Token.Script]
			if !ok {
				continue
			}
			assert.Equal(t, want, tr.Label,
				"token %q with script %v labeled %q, want %q", tr.Token.Surface, tr.Token.Script, tr.Label, want)
		}
	}
}
