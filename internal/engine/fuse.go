package engine

import (
	"regexp"
	"strings"
)

// patternCompiledEN reuses the curated English function-word patterns
// (data_tables.go) to back looksEnglish's "English-like evidence" check
// (4.D override #3).
var patternCompiledEN = compilePatterns(languagePatterns["en"])

func compilePatterns(pats []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(pats))
	for _, p := range pats {
		if re, err := regexp.Compile(p); err == nil {
			out = append(out, re)
		}
	}
	return out
}

// fuseWeights is the token-adaptive weighted fusion table of 4.D, columns
// in the order [transformer, ngram, pattern, script, charset].
type fuseWeights struct {
	transformer, ngram, pattern, script, charset float64
}

var (
	weightsLatinStrongMarker = fuseWeights{0.70, 0.25, 0.03, 0.01, 0.01}
	weightsLatinLen2         = fuseWeights{0.20, 0.35, 0.20, 0.15, 0.10}
	weightsLatinLen4         = fuseWeights{0.35, 0.40, 0.15, 0.08, 0.02}
	weightsLatinLong         = fuseWeights{0.50, 0.35, 0.10, 0.03, 0.02}
	weightsOtherLen2         = fuseWeights{0.15, 0.25, 0.25, 0.25, 0.10}
	weightsOtherLen4         = fuseWeights{0.25, 0.30, 0.20, 0.20, 0.05}
	weightsOtherLong         = fuseWeights{0.40, 0.30, 0.15, 0.12, 0.03}
)

// agreementSubset is the set of languages eligible for the transformer/
// n-gram agreement bonus.
var agreementSubset = buildStringSet([]string{"en", "id", "zh", "ja", "hi", "ar", "vi"})

func weightsFor(t Token) fuseWeights {
	isStrongMarker := strongEnWords[t.Lower] || idComprehensiveRoots[t.Lower]
	rl := t.runeLen()
	if t.Script == LATIN {
		switch {
		case isStrongMarker:
			return weightsLatinStrongMarker
		case rl <= 2:
			return weightsLatinLen2
		case rl <= 4:
			return weightsLatinLen4
		default:
			return weightsLatinLong
		}
	}
	switch {
	case rl <= 2:
		return weightsOtherLen2
	case rl <= 4:
		return weightsOtherLen4
	default:
		return weightsOtherLong
	}
}

// Fuser implements 4.D: per-token weighted fusion over the five signal
// providers' raw outputs, with curated overrides and pre/post-fuse
// blending.
type Fuser struct{}

func (Fuser) Fuse(t Token, raw map[string]Dist) (preFused, postFused Dist) {
	// Curated overrides replace only the 22%-weight pre-fuse input; the
	// independent, model-inclusive fuse below still runs and is still
	// blended with them at prefuseBlendAlpha, so a pin never bypasses
	// the neural/n-gram signal entirely.
	var override Dist
	ngram := raw["ngram"]

	if lang, ok := problematicWords[t.Lower]; ok {
		override = Dist{lang: 1.0}
	}

	if override == nil && hasIndonesianMorphology(t.Lower) && !looksEnglish(t.Lower, ngram) {
		if idComprehensiveRoots[t.Lower] {
			override = Dist{"id": 1.0}
		} else if ngram["id"] > 0 {
			override = Dist{"id": 0.9, "en": 0.1}
		}
	}

	if override == nil && ngram["en"] >= 0.70 && isASCII(t.Surface) && looksEnglish(t.Lower, ngram) && !hasIndonesianMorphology(t.Lower) {
		override = Dist{"en": 1.0}
	}

	w := weightsFor(t)
	if override != nil {
		preFused = override
	} else {
		preFused = weightedSum(raw, w, false)
	}
	postFused = weightedSum(raw, w, true)
	applyAgreementBonus(postFused, raw)

	preFused = normalize(preFused)
	postFused = normalize(postFused)

	blended := Dist{}
	for _, k := range unionKeys(preFused, postFused) {
		blended[k] = prefuseBlendAlpha*preFused[k] + (1-prefuseBlendAlpha)*postFused[k]
	}
	postFused = normalize(blended)

	if (t.Script == DEVANAGARI || t.Script == BENGALI || t.Script == THAI) && postFused.max() < 0.10 {
		if lang, ok := perfectScriptMap[t.Script]; ok {
			d := Dist{lang: 1.0}
			return d, d
		}
	}

	return preFused, postFused
}

func weightedSum(raw map[string]Dist, w fuseWeights, includeTransformer bool) Dist {
	out := Dist{}
	add := func(d Dist, weight float64) {
		for k, v := range d {
			out[k] += v * weight
		}
	}
	if includeTransformer {
		add(raw["transformer"], w.transformer)
	}
	add(raw["ngram"], w.ngram)
	add(raw["pattern"], w.pattern)
	add(raw["script"], w.script)
	add(raw["charset"], w.charset)
	return out
}

func applyAgreementBonus(d Dist, raw map[string]Dist) {
	transformer := raw["transformer"]
	ngram := raw["ngram"]
	for lang := range agreementSubset {
		if transformer[lang] > 0.4 && ngram[lang] > 0.4 {
			v := d[lang] + agreementBonus
			if v > agreementCap {
				v = agreementCap
			}
			d[lang] = v
		}
	}
}

func looksEnglish(tokenLower string, ngram Dist) bool {
	if strongEnWords[tokenLower] {
		return true
	}
	if strings.HasSuffix(tokenLower, "tion") || strings.HasSuffix(tokenLower, "ment") || strings.HasSuffix(tokenLower, "ance") {
		return true
	}
	for _, re := range patternCompiledEN {
		if re.MatchString(tokenLower) {
			return true
		}
	}
	return false
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}

func unionKeys(ds ...Dist) []string {
	seen := map[string]bool{}
	var out []string
	for _, d := range ds {
		for k := range d {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	return out
}
