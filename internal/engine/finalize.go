package engine

import "strings"

// Finalizer implements 4.H: the post-decoder cleanup pass that fills
// remaining unknowns from context, consolidates runs of Latin script
// that the decoder split needlessly, and merges adjacent same-label
// tokens into the segments returned to the caller.
type Finalizer struct{}

func (Finalizer) Finalize(tokens []Token, dists []Dist, labels []string) []Segment {
	return finalizeWithText(tokens, dists, labels, "")
}

// FinalizeWithText behaves like Finalize but additionally uses the
// original input text to derive Unicode sentence boundaries (via
// uniseg) for the majority-backfill pass, instead of falling back to a
// punctuation-only scan over the token stream.
func (Finalizer) FinalizeWithText(tokens []Token, dists []Dist, labels []string, text string) []Segment {
	return finalizeWithText(tokens, dists, labels, text)
}

func finalizeWithText(tokens []Token, dists []Dist, labels []string, text string) []Segment {
	labels = fillUnknownsFromNeighbors(tokens, dists, labels)
	labels = fillUnknownsFromScript(tokens, labels)
	labels = sentenceMajorityBackfill(tokens, labels, text)
	labels = latinConsolidation(tokens, labels)
	labels = pinStrongEnglish(tokens, labels)
	return mergeSpans(tokens, labels)
}

// fillUnknownsFromNeighbors replaces an "unknown" label with the
// nearest non-unknown neighbor's label when the token's own
// distribution still carries meaningful residual mass for it
// (unknownMaxDistForBackfill), left neighbor preferred.
func fillUnknownsFromNeighbors(tokens []Token, dists []Dist, labels []string) []string {
	n := len(labels)
	out := make([]string, n)
	copy(out, labels)
	for i, lab := range labels {
		if lab != unknownLabel {
			continue
		}
		var left, right string
		for j := i - 1; j >= 0; j-- {
			if out[j] != unknownLabel {
				left = out[j]
				break
			}
		}
		for j := i + 1; j < n; j++ {
			if labels[j] != unknownLabel {
				right = labels[j]
				break
			}
		}
		candidate := left
		if candidate == "" {
			candidate = right
		}
		if candidate == "" {
			continue
		}
		if _, hasDist := dists[i][candidate]; !hasDist {
			continue
		}
		maxp := dists[i].max()
		if maxp-dists[i][candidate] <= unknownMaxDistForBackfill {
			out[i] = candidate
		}
	}
	return out
}

// fillUnknownsFromScript resolves any remaining unknown whose script
// maps to exactly one supported language.
func fillUnknownsFromScript(tokens []Token, labels []string) []string {
	out := make([]string, len(labels))
	copy(out, labels)
	for i, lab := range labels {
		if lab != unknownLabel {
			continue
		}
		if l, ok := perfectScriptMap[tokens[i].Script]; ok {
			out[i] = l
		}
	}
	return out
}

// sentenceMajorityBackfill handles the case where unknowns dominate a
// sentence: sentences come from uniseg's sentence boundaries over text,
// or, when text is empty, from splits after sentence-final punctuation
// tokens. If the unknown ratio within a sentence reaches
// unknownRatioMajorityBackfill, the remaining
// unknowns are assigned the sentence's plurality label (when that
// label's share clears sentenceGuessMinShare); above
// unknownRatioFullFallback, every unknown in the window falls back to
// the plurality label unconditionally.
func sentenceMajorityBackfill(tokens []Token, labels []string, text string) []string {
	n := len(labels)
	out := make([]string, n)
	copy(out, labels)

	var starts []int
	if text != "" {
		starts = tokenSentenceBoundaries(tokens, text)
	} else {
		starts = sentenceBoundaries(tokens)
	}
	for si := 0; si < len(starts); si++ {
		lo := starts[si]
		hi := n
		if si+1 < len(starts) {
			hi = starts[si+1]
		}
		if hi <= lo {
			continue
		}
		counts := map[string]int{}
		unknownCount := 0
		for j := lo; j < hi; j++ {
			if out[j] == unknownLabel {
				unknownCount++
			} else {
				counts[out[j]]++
			}
		}
		total := hi - lo
		if total == 0 || unknownCount == 0 {
			continue
		}
		ratio := float64(unknownCount) / float64(total)
		if ratio < unknownRatioMajorityBackfill {
			continue
		}
		majorityLabel, majorityCount := "", 0
		for lab, c := range counts {
			if c > majorityCount {
				majorityLabel, majorityCount = lab, c
			}
		}
		if majorityLabel == "" {
			continue
		}
		share := float64(majorityCount) / float64(total-unknownCount+majorityCount)
		if ratio >= unknownRatioFullFallback || share >= sentenceGuessMinShare {
			for j := lo; j < hi; j++ {
				if out[j] == unknownLabel {
					out[j] = majorityLabel
				}
			}
		}
	}
	return out
}

// sentenceBoundaries returns token indices that start a new sentence,
// splitting on tokens whose surface is purely sentence-final
// punctuation.
func sentenceBoundaries(tokens []Token) []int {
	if len(tokens) == 0 {
		return nil
	}
	bounds := []int{0}
	for i, t := range tokens {
		if strings.ContainsAny(t.Surface, ".!?。！？") && i+1 < len(tokens) {
			bounds = append(bounds, i+1)
		}
	}
	return bounds
}

// latinConsolidation collapses a long, mostly-uniform run of Latin
// tokens that the decoder fragmented into a handful of minority labels
// back to the run's majority label, when the run is long enough and
// clean enough (latinConsolidationMinCount/MinRatio/MinLen) to trust
// the majority over the per-token switches.
func latinConsolidation(tokens []Token, labels []string) []string {
	n := len(labels)
	out := make([]string, n)
	copy(out, labels)

	i := 0
	for i < n {
		if tokens[i].Script != LATIN {
			i++
			continue
		}
		j := i
		for j < n && tokens[j].Script == LATIN {
			j++
		}
		runLen := j - i
		if runLen >= latinConsolidationMinLen {
			counts := map[string]int{}
			for k := i; k < j; k++ {
				counts[out[k]]++
			}
			majorityLabel, majorityCount := "", 0
			for lab, c := range counts {
				if c > majorityCount {
					majorityLabel, majorityCount = lab, c
				}
			}
			if majorityCount >= latinConsolidationMinCount &&
				float64(majorityCount)/float64(runLen) >= latinConsolidationMinRatio {
				for k := i; k < j; k++ {
					if !strongEnWords[tokens[k].Lower] || majorityLabel == "en" {
						out[k] = majorityLabel
					}
				}
			}
		}
		i = j
	}
	return out
}

// pinStrongEnglish re-asserts "en" over any label a neighboring
// consolidation pass may have assigned to a token on the curated
// strong-English word list, since that list is definitional evidence.
func pinStrongEnglish(tokens []Token, labels []string) []string {
	out := make([]string, len(labels))
	copy(out, labels)
	for i, t := range tokens {
		if strongEnWords[t.Lower] {
			out[i] = "en"
		}
	}
	return out
}

// mergeSpans collapses consecutive tokens sharing a label into a
// single segment, joining the token surfaces with one space per byte of
// gap between consecutive tokens' offsets (the gap's own characters are
// not copied).
func mergeSpans(tokens []Token, labels []string) []Segment {
	if len(tokens) == 0 {
		return nil
	}
	var segments []Segment
	start := 0
	for i := 1; i <= len(tokens); i++ {
		if i < len(tokens) && labels[i] == labels[start] {
			continue
		}
		text := tokens[start].Surface
		for k := start + 1; k < i; k++ {
			if tokens[k].Start > tokens[k-1].End {
				text += strings.Repeat(" ", tokens[k].Start-tokens[k-1].End)
			}
			text += tokens[k].Surface
		}
		segments = append(segments, Segment{Text: text, Language: labels[start]})
		start = i
	}
	return segments
}
