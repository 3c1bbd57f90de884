package engine

import (
	"sort"
	"strings"
)

// viDiacritics are the Vietnamese-specific letters (ă â ê ô ơ ư đ, both
// cases) used throughout tokenization and disambiguation to recognize
// Vietnamese text.
var viDiacritics = buildRuneSet("ăâêôơưĂÂÊÔƠƯđĐ")

var viVowels = buildRuneSet(
	"aàáảãạăằắẳẵặâầấẩẫậeèéẻẽẹêềếểễệiìíỉĩịoòóỏõọôồốổỗộơờớởỡợuùúủũụưừứửữựyỳýỷỹỵ" +
		"AÀÁẢÃẠĂẰẮẲẴẶÂẦẤẨẪẬEÈÉẺẼẸÊỀẾỂỄỆIÌÍỈĨỊOÒÓỎÕỌÔỒỐỔỖỘƠỜỚỞỠỢUÙÚỦŨỤƯỪỨỬỮỰYỲÝỶỸỴ",
)

var viOnsets = []string{
	"ngh", "ng", "gh", "kh", "th", "nh", "ph", "tr", "ch", "qu", "gi",
	"b", "c", "d", "đ", "g", "h", "k", "l", "m", "n", "p", "q", "r", "s", "t", "v", "x",
}

var viCodas = map[string]bool{
	"nh": true, "ng": true, "ch": true, "c": true, "m": true, "n": true, "p": true, "t": true,
}

var viCompoundWhitelist = map[string]bool{}

func init() {
	for _, w := range []string{
		"tâmtrí", "giấcmơ", "tươnglai", "lòngdũngcảm", "giađình", "nghệthuật",
		"đạidương", "thiênnhiên", "âmnhạc", "sựimlặng", "trítuệ", "sựthanhlịch",
		"tựdo", "ngôisao", "bóngtối", "cửasổ", "hòabình", "hyvọng", "ánhsáng",
	} {
		viCompoundWhitelist[w] = true
	}
}

func buildRuneSet(s string) map[rune]bool {
	m := make(map[rune]bool, len(s))
	for _, r := range s {
		m[r] = true
	}
	return m
}

func hasVietnameseDiacritic(s string) bool {
	for _, r := range s {
		if viDiacritics[r] {
			return true
		}
	}
	return false
}

func isAllLetters(s string) bool {
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || viVowels[r] || viDiacritics[r]) {
			return false
		}
	}
	return len(s) > 0
}

func isAllUpper(s string) bool {
	return s == strings.ToUpper(s) && s != strings.ToLower(s)
}

// findVietnameseBoundaries mirrors _find_vi_boundaries: candidate split
// points are positions where a valid Vietnamese onset, preceded by a
// vowel or valid coda, begins a new syllable.
func findVietnameseBoundaries(w string) []int {
	wl := []rune(strings.ToLower(w))
	n := len(wl)
	type cand struct{ pos, onsetLen int }
	var candidates []cand

	for i := 1; i < n; i++ {
		var onset string
		for _, on := range viOnsets {
			onRunes := []rune(on)
			j := i + len(onRunes)
			if j >= n {
				continue
			}
			if hasPrefixAt(wl, onRunes, i) && viVowels[wl[j]] {
				onset = on
				break
			}
		}
		if onset == "" {
			continue
		}
		hasVowelBefore := false
		for _, c := range wl[:i] {
			if viVowels[c] {
				hasVowelBefore = true
				break
			}
		}
		if !hasVowelBefore {
			continue
		}
		last2 := ""
		if i >= 2 {
			last2 = string(wl[i-2 : i])
		}
		last1 := string(wl[i-1 : i])
		validCoda := viCodas[last2] || viCodas[last1] || viVowels[wl[i-1]]
		if !validCoda {
			continue
		}
		candidates = append(candidates, cand{i, len([]rune(onset))})
	}

	sort.Slice(candidates, func(a, b int) bool { return candidates[a].pos < candidates[b].pos })

	var cleaned []int
	prevPos := -1
	prevLen := 0
	for _, c := range candidates {
		if prevPos >= 0 && c.pos == prevPos+1 && prevLen >= 2 {
			continue
		}
		cleaned = append(cleaned, c.pos)
		prevPos, prevLen = c.pos, c.onsetLen
	}
	return cleaned
}

func hasPrefixAt(s []rune, prefix []rune, at int) bool {
	if at+len(prefix) > len(s) {
		return false
	}
	for i, r := range prefix {
		if s[at+i] != r {
			return false
		}
	}
	return true
}

// splitVietnameseConcatenations handles run-on Vietnamese compounds.
func splitVietnameseConcatenations(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for idx, t := range tokens {
		rl := len([]rune(t))
		if rl >= 4 && rl <= 40 && isAllLetters(t) && dominantScript(t) == LATIN && hasVietnameseDiacritic(t) {
			tl := strings.ToLower(t)
			if viCompoundWhitelist[tl] {
				out = append(out, t)
				continue
			}
			diacCount := 0
			for _, r := range t {
				if viDiacritics[r] {
					diacCount++
				}
			}
			var left, right string
			if idx > 0 {
				left = tokens[idx-1]
			}
			if idx+1 < len(tokens) {
				right = tokens[idx+1]
			}
			leftVi := left != "" && hasVietnameseDiacritic(left)
			rightVi := right != "" && hasVietnameseDiacritic(right)

			bounds := findVietnameseBoundaries(t)
			minLenOK := 8
			needContext := diacCount >= 2
			if needContext {
				minLenOK = 10
			}

			if len(bounds) > 0 && (leftVi || rightVi || (rl >= minLenOK && !needContext)) && !isAllUpper(t) {
				parts := splitAtRuneIndices(t, bounds)
				allNonEmpty := true
				for _, p := range parts {
					if strings.TrimSpace(p) == "" {
						allNonEmpty = false
						break
					}
				}
				if allNonEmpty {
					out = append(out, parts...)
					continue
				}
			}
		}
		out = append(out, t)
	}
	return out
}

func splitAtRuneIndices(s string, bounds []int) []string {
	rs := []rune(s)
	var parts []string
	prev := 0
	for _, b := range bounds {
		if b > len(rs) {
			b = len(rs)
		}
		parts = append(parts, string(rs[prev:b]))
		prev = b
	}
	parts = append(parts, string(rs[prev:]))
	return parts
}
