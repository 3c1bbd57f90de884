package engine

import "math"

// Decoder runs the log-domain Viterbi search of 4.G: the label alphabet
// is built per request from the labels actually observed in the fused
// distributions (plus "unknown"), never the full supported-language
// list, so the DP stays small for short inputs.
type Decoder struct{}

var relatedPairs = map[[2]string]bool{
	{"id", "ms"}: true, {"ms", "id"}: true,
	{"hi", "ur"}: true, {"ur", "hi"}: true,
	{"pt", "es"}: true, {"es", "pt"}: true,
	{"zh", "ja"}: true, {"ja", "zh"}: true,
}

var implausiblePairExtra = map[[2]string]float64{
	{"hi", "id"}: implausibleHiID, {"id", "hi"}: implausibleHiID,
	{"ar", "id"}: implausibleArID, {"id", "ar"}: implausibleArID,
	{"th", "en"}: implausibleThEn, {"en", "th"}: implausibleThEn,
	{"en", "hi"}: implausibleEnHi, {"hi", "en"}: implausibleEnHi,
	{"hi", "en"}: implausibleHiEn,
	{"id", "en"}: implausibleIdEn, {"en", "id"}: implausibleIdEn,
}

func (Decoder) Decode(tokens []Token, dists []Dist) []string {
	n := len(tokens)
	if n == 0 {
		return nil
	}

	alphabet := buildAlphabet(dists)
	m := len(alphabet)
	idx := make(map[string]int, m)
	for i, l := range alphabet {
		idx[l] = i
	}

	emission := make([][]float64, n)
	for i := range emission {
		emission[i] = make([]float64, m)
		for j, lab := range alphabet {
			p := dists[i][lab]
			if p < minLangScore {
				p = minLangScore
			}
			e := math.Log(p)
			e += emissionAdjustment(tokens[i], lab)
			emission[i][j] = e
		}
	}

	dp := make([][]float64, n)
	back := make([][]int, n)
	for i := range dp {
		dp[i] = make([]float64, m)
		back[i] = make([]int, m)
	}
	copy(dp[0], emission[0])
	for j := range back[0] {
		back[0][j] = -1
	}

	for i := 1; i < n; i++ {
		for j := 0; j < m; j++ {
			best := math.Inf(-1)
			bestK := 0
			for k := 0; k < m; k++ {
				score := dp[i-1][k] + transitionPenalty(tokens, i, alphabet[k], alphabet[j])
				if score > best {
					best = score
					bestK = k
				}
			}
			dp[i][j] = best + emission[i][j]
			back[i][j] = bestK
		}
	}

	labels := make([]string, n)
	best := math.Inf(-1)
	bestJ := 0
	for j := 0; j < m; j++ {
		if dp[n-1][j] > best {
			best = dp[n-1][j]
			bestJ = j
		}
	}
	labels[n-1] = alphabet[bestJ]
	for i := n - 1; i > 0; i-- {
		bestJ = back[i][bestJ]
		labels[i-1] = alphabet[bestJ]
	}
	return labels
}

func buildAlphabet(dists []Dist) []string {
	seen := map[string]bool{unknownLabel: true}
	out := []string{unknownLabel}
	for _, d := range dists {
		for lab := range d {
			if !seen[lab] {
				seen[lab] = true
				out = append(out, lab)
			}
		}
	}
	return out
}

// emissionAdjustment penalizes a script/label mismatch and applies the
// Indonesian-morphology emission bonus/penalty of 4.G.
func emissionAdjustment(t Token, lab string) float64 {
	var adj float64
	if primary, ok := langPrimaryScript[lab]; ok && primary != t.Script && t.Script != OTHER {
		hanKanaException := primary == HAN && (t.Script == HAN || t.Script == HIRAGANA || t.Script == KATAKANA)
		if !hanKanaException && t.runeLen() > scriptMismatchLenThresh {
			adj -= scriptMismatchPenalty
		}
	}
	if hasIndonesianMorphology(t.Lower) {
		if lab == "id" {
			adj += idMorphEmissionBonus
		} else if lab == "en" {
			adj -= idMorphEmissionPenalty
		}
	}
	return adj
}

// transitionPenalty scores moving from `from` to `to` at position i,
// applying the switch penalty, the short-token extra, the implausible-
// pair table and the related-language discount.
func transitionPenalty(tokens []Token, i int, from, to string) float64 {
	if from == to {
		return 0
	}
	penalty := switchPenalty
	if tokens[i].runeLen() <= shortTokenMaxLen && !shortNoPenaltyScripts[tokens[i].Script] {
		penalty += shortSwitchExtra
	}
	if extra, ok := implausiblePairExtra[[2]string{from, to}]; ok {
		switch {
		case from == "en" && to == "hi":
			if tokens[i].Script != DEVANAGARI {
				penalty += extra
			}
		case (from == "id" && to == "en") || (from == "en" && to == "id"):
			if hasIndonesianMorphology(tokens[i].Lower) {
				extra *= idMorphDiscount
			}
			penalty += extra
		default:
			penalty += extra
		}
	}
	if relatedPairs[[2]string{from, to}] {
		penalty -= relatedPairDiscount
	}
	if penalty < 0 {
		penalty = 0
	}
	return -penalty
}
