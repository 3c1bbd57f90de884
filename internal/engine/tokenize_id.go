package engine

import "strings"

// splitIndonesianConcatenations does a greedy longest-match
// root-dictionary partitioning of unbroken Latin tokens.
func splitIndonesianConcatenations(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for idx, t := range tokens {
		rl := len([]rune(t))
		if rl >= 6 && rl <= 30 && isAllLetters(t) && dominantScript(t) == LATIN && !hasVietnameseDiacritic(t) {
			var left, right string
			if idx > 0 {
				left = tokens[idx-1]
			}
			if idx+1 < len(tokens) {
				right = tokens[idx+1]
			}
			leftID := left != "" && idComprehensiveRoots[strings.ToLower(left)]
			rightID := right != "" && idComprehensiveRoots[strings.ToLower(right)]

			rs := []rune(t)
			var splits []string
			i := 0
			ok := true
			for i < len(rs) {
				found := false
				for j := len(rs); j > i+3; j-- {
					part := strings.ToLower(string(rs[i:j]))
					if idComprehensiveRoots[part] {
						splits = append(splits, string(rs[i:j]))
						i = j
						found = true
						break
					}
				}
				if !found {
					ok = false
					break
				}
			}
			if ok && len(splits) >= 2 && (leftID || rightID || rl >= 12) {
				out = append(out, splits...)
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// indonesianStem is a graceful-degrade stand-in for the original's
// Sastrawi stemmer: Go's ecosystem has no Sastrawi port, so affixes are
// stripped against the same root table the rest of the Indonesian
// handling uses, rather than pulling in unrelated morphological tooling
// for a single optional tokenizer branch. A segment that is itself a
// known root is returned lowercased with ok=true; otherwise one prefix
// or one suffix is stripped, and it reports ok=false — the caller then
// falls back to default word-run extraction — when no strip lands on a
// known root.
func indonesianStem(seg string) (string, bool) {
	tl := strings.ToLower(seg)
	if idComprehensiveRoots[tl] {
		return tl, true
	}
	for _, pre := range idPrefixes {
		if strings.HasPrefix(tl, pre) {
			if rest := tl[len(pre):]; idComprehensiveRoots[rest] {
				return rest, true
			}
		}
	}
	for _, suf := range idSuffixes {
		if strings.HasSuffix(tl, suf) {
			if rest := tl[:len(tl)-len(suf)]; idComprehensiveRoots[rest] {
				return rest, true
			}
		}
	}
	return seg, false
}

var idPrefixes = []string{"meng", "meny", "men", "mem", "me", "ber", "pe", "per", "ter", "se", "ke"}
var idSuffixes = []string{"kan", "lah", "nya", "kah"}

// hasIndonesianMorphology mirrors the prefix/suffix/root test used across
// the fuser and disambiguator.
func hasIndonesianMorphology(tokenLower string) bool {
	for _, pre := range []string{"ber", "me", "mem", "men", "meng", "meny", "pe", "per", "pel"} {
		if strings.HasPrefix(tokenLower, pre) {
			return true
		}
	}
	for _, suf := range []string{"kan", "lah", "nya", "kah"} {
		if strings.HasSuffix(tokenLower, suf) {
			return true
		}
	}
	if strings.HasPrefix(tokenLower, "ke") && strings.HasSuffix(tokenLower, "an") && len(tokenLower) > 4 {
		return true
	}
	return idComprehensiveRoots[tokenLower]
}
