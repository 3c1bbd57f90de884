package engine

import (
	"regexp"
	"strings"
)

// Disambiguator applies 4.F's 11 stages once over the whole token
// sequence, after fusion and unknown injection.
type Disambiguator struct{}

var (
	ptEvidenceRe = regexp.MustCompile(`(ção|ções|viagem|coração|luz|ã|õ)`)
	esEvidenceRe = regexp.MustCompile(`(ción|ciones|ñ|montaña|[áéíóúü])`)
	itEvidenceRe = regexp.MustCompile(`(zione|zioni|ggia|ggio|famiglia|ità)`)
	frEvidenceRe = regexp.MustCompile(`(tion|sion|étoile|nature|[çéèêàùôâî])`)
	deEvidenceRe = regexp.MustCompile(`[äöüß]|freiheit|natur|keit|heit|eleganz|katze|wesen`)
)

var nlWordSet = buildStringSet([]string{"het", "een", "van", "schaduw", "vrijheid"})

func (Disambiguator) Disambiguate(tokens []Token, dists []Dist) []Dist {
	n := len(tokens)
	out := make([]Dist, n)
	for i, d := range dists {
		out[i] = d.clone()
	}

	hasKana := false
	for _, t := range tokens {
		for _, r := range t.Surface {
			if sc := charScript(r); sc == HIRAGANA || sc == KATAKANA {
				hasKana = true
			}
		}
	}

	var ptEv, esEv, itEv, frEv, deEv, nlEv, idMorphCount int
	for _, t := range tokens {
		if ptEvidenceRe.MatchString(t.Lower) {
			ptEv++
		}
		if esEvidenceRe.MatchString(t.Lower) {
			esEv++
		}
		if itEvidenceRe.MatchString(t.Lower) {
			itEv++
		}
		if frEvidenceRe.MatchString(t.Lower) {
			frEv++
		}
		if deEvidenceRe.MatchString(t.Lower) {
			deEv++
		}
		if strings.Contains(t.Lower, "ij") || strings.HasSuffix(t.Lower, "heid") || strings.HasSuffix(t.Lower, "lijk") || nlWordSet[t.Lower] {
			nlEv++
		}
		if idTriggers[t.Lower] {
			idMorphCount++
		}
	}

	for i, t := range tokens {
		d := out[i]
		if d == nil {
			d = Dist{}
		}
		sc := t.Script

		// Stage 3: HAN fallback.
		if sc == HAN {
			zh, hasZh := d["zh"]
			ja, hasJa := d["ja"]
			if !hasZh && !hasJa {
				d = Dist{"zh": 1.0}
			} else if hasZh && (zh < 0.5 || d.max() < 0.5) {
				nd := Dist{}
				if hasZh {
					nd["zh"] = zh
				}
				if hasJa {
					nd["ja"] = ja
				}
				if !hasJa || ja < 0.3 {
					nd["zh"] = 1.0
					if hasJa {
						nd["ja"] = 0
					}
				}
				d = nd
			}
		}

		// Stage 1: script hard filters.
		if allowed, ok := scriptAllowedSet[sc]; ok {
			for k := range d {
				if !allowed[k] {
					delete(d, k)
				}
			}
			d = renormalizeInPlace(d)
		}

		// Stage 2: Latin purity.
		if sc == LATIN {
			for _, l := range []string{"ar", "ur", "zh", "ja", "ko", "th", "hi", "bn", "ru"} {
				delete(d, l)
			}
		}

		// Stage 4: sentence-level group priors (romance + de/nl).
		if sc == LATIN && len(d) >= 2 {
			applyGroupPrior(d, "pt", []string{"es", "it", "fr"}, ptEv, 1.4, 0.7)
			applyGroupPrior(d, "es", []string{"pt", "it", "fr"}, esEv, 1.35, 0.72)
			applyGroupPrior(d, "it", []string{"es", "pt", "fr"}, itEv, 1.35, 0.72)
			applyGroupPrior(d, "fr", []string{"es", "pt", "it"}, frEv, 1.3, 0.75)
			applyGroupPrior(d, "de", []string{"nl"}, deEv, 1.4, 0.7)
			applyGroupPrior(d, "nl", []string{"de"}, nlEv, 1.3, 0.75)
		}

		// Stage 5: ar/ur fight.
		if sc == ARABIC || (sc == LATIN && (d["ar"] > 0 || d["ur"] > 0)) {
			applyArUrFight(tokens, i, d)
		}

		// Stage 6: hi/bn fight.
		if sc == DEVANAGARI || sc == BENGALI {
			applyHiBnFight(tokens, i, d)
		}

		// Stage 7: zh/ja fight.
		if sc == HAN {
			applyZhJaFight(t, d, hasKana)
		}

		// Stage 8: Vietnamese boost.
		if sc == LATIN && hasVietnameseDiacritic(t.Surface) {
			applyVietnameseBoost(t, d)
		}

		// Stage 9: Indonesian morphology boost.
		if sc == LATIN && hasIndonesianMorphology(t.Lower) {
			applyIndonesianBoost(t, d, idMorphCount)
		}

		// Stage 10: accented-Latin anti-English.
		if sc == LATIN {
			applyAccentedAntiEnglish(t, d)
		}

		// Stage 11: suffix locks.
		applySuffixLocks(t.Lower, d)

		out[i] = renormalizeInPlace(d)
	}
	return out
}

var scriptAllowedSet = map[Script]map[string]bool{
	ARABIC:     {"ar": true, "ur": true},
	CYRILLIC:   {"ru": true},
	DEVANAGARI: {"hi": true},
	BENGALI:    {"bn": true},
	HANGUL:     {"ko": true},
	THAI:       {"th": true},
}

func renormalizeInPlace(d Dist) Dist {
	var total float64
	for _, v := range d {
		total += v
	}
	if total <= 0 {
		return d
	}
	inv := 1.0 / total
	for k := range d {
		d[k] *= inv
	}
	return d
}

func applyGroupPrior(d Dist, lang string, competitors []string, evidence int, boost, damp float64) {
	if evidence < 2 {
		return
	}
	if v, ok := d[lang]; ok {
		d[lang] = v * boost
	}
	for _, c := range competitors {
		if v, ok := d[c]; ok {
			d[c] = v * damp
		}
	}
}

func applyArUrFight(tokens []Token, i int, d Dist) {
	lo, hi := windowBounds(len(tokens), i, 2)
	var urBias float64
	for j := lo; j <= hi; j++ {
		t := tokens[j]
		for _, r := range t.Surface {
			if urSpecificChars[r] {
				urBias += 0.25
				break
			}
		}
		if urWords[t.Lower] {
			urBias += 0.20
		}
		for _, r := range t.Surface {
			if arSpecificChars[r] {
				urBias -= 0.15
				break
			}
		}
	}
	if v, ok := d["ur"]; ok {
		nv := v + urBias
		if tokens[i].Script == LATIN {
			nv *= 0.3
		}
		if nv < 0 {
			nv = 0
		}
		d["ur"] = nv
	}
}

func applyHiBnFight(tokens []Token, i int, d Dist) {
	lo, hi := windowBounds(len(tokens), i, 2)
	var devCount, benCount int
	for j := lo; j <= hi; j++ {
		switch tokens[j].Script {
		case DEVANAGARI:
			devCount++
		case BENGALI:
			benCount++
		}
	}
	if devCount == benCount {
		return
	}
	winner, loser := "hi", "bn"
	if benCount > devCount {
		winner, loser = "bn", "hi"
	}
	if v, ok := d[winner]; ok {
		d[winner] = v + 0.25
	}
	if v, ok := d[loser]; ok {
		nv := v - 0.12
		if nv < 0 {
			nv = 0
		}
		d[loser] = nv
	}
}

func applyZhJaFight(t Token, d Dist, hasKanaContext bool) {
	var simp, trad, jp bool
	for _, r := range t.Surface {
		if simpOnlyChars[r] {
			simp = true
		}
		if tradBiasChars[r] {
			trad = true
		}
		if jpSpecificChars[r] {
			jp = true
		}
	}
	if simp {
		if v, ok := d["zh"]; ok {
			d["zh"] = v + 0.30
		} else {
			d["zh"] = 0.30
		}
	}
	if jp {
		if v, ok := d["ja"]; ok {
			d["ja"] = v + 0.35
		} else {
			d["ja"] = 0.35
		}
	} else if trad && hasKanaContext {
		if v, ok := d["ja"]; ok {
			d["ja"] = v + 0.20
		}
	}
	if hasKanaContext {
		if v, ok := d["ja"]; ok {
			d["ja"] = v + 0.40
		} else {
			d["ja"] = 0.12
		}
		if t.runeLen() == 1 {
			if d["zh"] < 0.60 && d["ja"] < 0.75 {
				d["ja"] = 0.75
			}
		}
	}
}

func applyVietnameseBoost(t Token, d Dist) {
	floor := 0.45
	if t.runeLen() <= 4 {
		floor = 0.35
	}
	var multiSyllable bool
	for _, r := range t.Surface {
		switch r {
		case 'ă', 'â', 'ê', 'ô', 'ơ', 'ư', 'Ă', 'Â', 'Ê', 'Ô', 'Ơ', 'Ư':
			multiSyllable = true
		}
	}
	if multiSyllable && floor < 0.55 {
		floor = 0.55
	}
	if d["vi"] < floor {
		d["vi"] = floor
	}
	if v, ok := d["en"]; ok {
		d["en"] = v * 0.5
	}
	for lang, v := range d {
		if lang == "vi" || lang == "en" {
			continue
		}
		if v <= 0.7 {
			d[lang] = v * 0.6
		}
	}
}

func applyIndonesianBoost(t Token, d Dist, sentenceEvidence int) {
	bonus := 0.25
	if idComprehensiveRoots[t.Lower] {
		bonus = 0.40
	}
	mult := 1.0
	if sentenceEvidence > 3 {
		mult = 1.30
	} else if sentenceEvidence > 2 {
		mult = 1.15
	}
	bonus *= mult
	d["id"] += bonus
	if v, ok := d["en"]; ok {
		nv := v - bonus*0.5
		if nv < 0 {
			nv = 0
		}
		d["en"] = nv
	}
}

var accentedBigrams = []string{"ção", "ción", "ä", "ö", "ü", "ñ", "ç", "ã", "õ", "ij"}

func applyAccentedAntiEnglish(t Token, d Dist) {
	if strongEnWords[t.Lower] {
		return
	}
	en, ok := d["en"]
	if !ok || en > 0.9 {
		return
	}
	hasNonASCII := !isASCII(t.Surface)
	hasBigram := false
	for _, b := range accentedBigrams {
		if strings.Contains(t.Lower, b) {
			hasBigram = true
			break
		}
	}
	if hasNonASCII || hasBigram {
		d["en"] = en * 0.25
	}
}

func applySuffixLocks(tokenLower string, d Dist) {
	switch {
	case strings.HasSuffix(tokenLower, "ção") || strings.HasSuffix(tokenLower, "ções"):
		d["pt"] += 0.35
	case strings.HasSuffix(tokenLower, "ción") || strings.HasSuffix(tokenLower, "ciones"):
		d["es"] += 0.35
	case strings.HasSuffix(tokenLower, "zione"):
		d["it"] += 0.25
	case strings.HasSuffix(tokenLower, "heid") || strings.HasSuffix(tokenLower, "lijk"):
		d["nl"] += 0.25
	}
}

func windowBounds(n, i, half int) (int, int) {
	lo, hi := i-half, i+half
	if lo < 0 {
		lo = 0
	}
	if hi >= n {
		hi = n - 1
	}
	return lo, hi
}
