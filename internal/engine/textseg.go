package engine

import (
	"strings"

	"github.com/rivo/uniseg"
)

// sentenceSpans returns the byte-offset [start,end) ranges of each
// sentence in text, using uniseg's Unicode sentence-boundary algorithm
// rather than a hand-rolled punctuation scan (adapted from the
// teacher's uniseg-backed splitSentences helper). The finalizer's
// majority-backfill pass keys off these spans; the disambiguator's
// group-prior scan counts over the whole token sequence and does not.
func sentenceSpans(text string) [][2]int {
	if len(text) == 0 {
		return nil
	}
	var spans [][2]int
	remaining := text
	state := -1
	offset := 0
	for len(remaining) > 0 {
		sentence, rest, newState := uniseg.FirstSentenceInString(remaining, state)
		if sentence != "" {
			spans = append(spans, [2]int{offset, offset + len(sentence)})
		}
		offset += len(sentence)
		remaining = rest
		state = newState
	}
	return spans
}

// tokenSentenceBoundaries maps sentenceSpans over a token sequence,
// returning the index of the first token in each sentence.
func tokenSentenceBoundaries(tokens []Token, text string) []int {
	spans := sentenceSpans(text)
	if len(spans) == 0 {
		if len(tokens) == 0 {
			return nil
		}
		return []int{0}
	}
	var bounds []int
	si := 0
	lastSentence := -1
	for i, t := range tokens {
		for si < len(spans)-1 && t.Start >= spans[si+1][0] {
			si++
		}
		if si != lastSentence {
			bounds = append(bounds, i)
			lastSentence = si
		}
	}
	return bounds
}

// defaultWordRun splits a script-homogeneous segment into uniseg word
// boundaries, the fallback used by the tokenizer's Stage 2 for scripts
// with no dedicated rule and no available SegmenterBackend (adapted
// from a Unicode word-boundary scan).
func defaultWordRun(text string) []string {
	if len(text) == 0 {
		return nil
	}
	var out []string
	remaining := text
	state := -1
	for len(remaining) > 0 {
		word, rest, newState := uniseg.FirstWordInString(remaining, state)
		if strings.TrimSpace(word) != "" {
			out = append(out, word)
		}
		remaining = rest
		state = newState
	}
	return out
}
