package engine

import (
	"context"
	"regexp"
	"strings"
	"unicode"
)

// Tokenizer implements the 6-stage pipeline of 4.B. It holds the optional
// script-specific segmenter backends (4.C's tokenizer-facing providers);
// a zero-value Tokenizer works with every stage's script-default fallback.
type Tokenizer struct {
	Segmenters Segmenters
}

// Tokenize runs all six stages over normalized text and returns the final
// token sequence.
func (tk *Tokenizer) Tokenize(ctx context.Context, text string) []Token {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	norm := normalizeText(text)
	segs := segmentByScript(norm)

	var surfaces []string
	for idx, seg := range segs {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		surfaces = append(surfaces, tk.subTokenize(ctx, segs, idx)...)
	}

	surfaces = splitLongTokens(surfaces)
	surfaces = mergeShortFragments(surfaces)
	surfaces = splitVietnameseConcatenations(surfaces)
	surfaces = splitIndonesianConcatenations(surfaces)

	tokens := make([]Token, 0, len(surfaces))
	cursor := 0
	for _, s := range surfaces {
		start := strings.Index(norm[cursor:], s)
		if start < 0 {
			tokens = append(tokens, newToken(s, cursor, cursor+len(s)))
			continue
		}
		start += cursor
		end := start + len(s)
		tokens = append(tokens, newToken(s, start, end))
		cursor = end
	}
	return tokens
}

// --- Stage 1: script segmentation ---

// segmentByScript walks the text once: whitespace breaks segments,
// combining marks attach to the previous buffer, punctuation/symbols
// flush and emit as their own one-character token, and letters extend the
// buffer while their script matches the buffer's script.
func segmentByScript(text string) []string {
	var out []string
	var buf []rune
	prevScript := OTHER
	havePrev := false

	flush := func() {
		if len(buf) == 0 {
			return
		}
		seg := string(buf)
		if strings.TrimSpace(seg) != "" {
			out = append(out, seg)
		}
		buf = buf[:0]
	}

	for _, r := range text {
		if unicode.IsSpace(r) {
			flush()
			havePrev = false
			continue
		}
		if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Me, r) {
			buf = append(buf, r)
			continue
		}
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			flush()
			out = append(out, string(r))
			havePrev = false
			continue
		}
		sc := charScript(r)
		if !havePrev || sc == prevScript {
			buf = append(buf, r)
			prevScript = sc
			havePrev = true
		} else {
			flush()
			buf = append(buf, r)
			prevScript = sc
			havePrev = true
		}
	}
	flush()
	return out
}

// --- Stage 2: per-script sub-tokenization ---

var wordRunPattern = regexp.MustCompile(`[\p{L}']+`)
var devanagariRunPattern = regexp.MustCompile(`[\x{0900}-\x{097F}]+`)
var bengaliRunPattern = regexp.MustCompile(`[\x{0980}-\x{09FF}]+`)
var viHeuristicRunPattern = regexp.MustCompile(`[A-Za-zĂÂĐÊÔƠƯăâđêôơư]+`)

func (tk *Tokenizer) subTokenize(ctx context.Context, segs []string, idx int) []string {
	seg := segs[idx]
	sc := dominantScript(seg)

	switch sc {
	case HIRAGANA, KATAKANA:
		if tk.Segmenters.japaneseReady() {
			if toks, err := tk.Segmenters.Japanese.Segment(ctx, seg); err == nil && len(toks) > 0 {
				return toks
			}
		}
		return []string{seg}
	case HAN:
		if hasKanaContext(segs, idx) && tk.Segmenters.japaneseReady() {
			if toks, err := tk.Segmenters.Japanese.Segment(ctx, seg); err == nil && len(toks) > 0 {
				return toks
			}
		}
		if tk.Segmenters.chineseReady() {
			if toks, err := tk.Segmenters.Chinese.Segment(ctx, seg); err == nil && len(toks) > 0 {
				return toks
			}
		}
		return []string{seg}
	case THAI:
		if tk.Segmenters.thaiReady() {
			if toks, err := tk.Segmenters.Thai.Segment(ctx, seg); err == nil && len(toks) > 0 {
				return toks
			}
		}
		return []string{seg}
	case DEVANAGARI:
		return devanagariRunPattern.FindAllString(seg, -1)
	case BENGALI:
		return bengaliRunPattern.FindAllString(seg, -1)
	case LATIN:
		if hasVietnameseDiacritic(seg) {
			toks := viHeuristicRunPattern.FindAllString(seg, -1)
			if len(toks) >= 2 {
				return toks
			}
		}
		if len(seg) > 5 {
			if stem, ok := indonesianStem(seg); ok {
				return []string{stem}
			}
		}
		return wordRunPattern.FindAllString(seg, -1)
	default:
		if toks := defaultWordRun(seg); len(toks) > 0 {
			return toks
		}
		return []string{seg}
	}
}

func hasKanaContext(segs []string, idx int) bool {
	lo, hi := idx-2, idx+2
	if lo < 0 {
		lo = 0
	}
	if hi >= len(segs) {
		hi = len(segs) - 1
	}
	for j := lo; j <= hi; j++ {
		for _, r := range segs[j] {
			sc := charScript(r)
			if sc == HIRAGANA || sc == KATAKANA {
				return true
			}
		}
	}
	return false
}

// --- Stage 3: long-token splitting ---

// RE2 (Go's regexp engine) has no lookaround, so the upper-case run
// alternative here is slightly looser than the original's negative
// lookahead for a following lowercase letter; it still splits on
// camel-case and script boundaries, just with marginally different
// greediness on runs like "ABCdef".
var longTokenSplitPattern = regexp.MustCompile(
	`[A-Z]?[a-z]+|[A-Z]+|[\x{0900}-\x{097F}]+|[\x{0980}-\x{09FF}]+|[\x{0E00}-\x{0E7F}]+|[\x{4E00}-\x{9FFF}]+`,
)

func splitLongTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if len([]rune(t)) > 20 && !strings.ContainsAny(t, " \t\n") {
			parts := longTokenSplitPattern.FindAllString(t, -1)
			if len(parts) > 0 {
				out = append(out, parts...)
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// --- Stage 4: short-fragment merging ---

func mergeShortFragments(tokens []string) []string {
	var merged []string
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		sc := dominantScript(tok)
		if (sc == DEVANAGARI || sc == BENGALI) && len([]rune(tok)) <= 2 {
			accum := tok
			j := i + 1
			for j < len(tokens) {
				next := tokens[j]
				sc2 := dominantScript(next)
				if sc2 == sc && len([]rune(next)) <= 3 && len([]rune(accum))+len([]rune(next)) <= 8 {
					accum += next
					j++
				} else {
					break
				}
			}
			merged = append(merged, accum)
			i = j
		} else {
			merged = append(merged, tok)
			i++
		}
	}
	return merged
}
