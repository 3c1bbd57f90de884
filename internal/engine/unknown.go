package engine

// injectUnknown implements 4.E: for each token, compare its max
// confidence to a neighborhood-scaled threshold and inject an "unknown"
// mass when evidence is both low and not "strong" (no value >= 0.25 and
// fewer than 2 candidates).
func injectUnknown(tokens []Token, dists []Dist) []Dist {
	n := len(dists)
	maxps := make([]float64, n)
	for i, d := range dists {
		maxps[i] = d.max()
	}

	out := make([]Dist, n)
	for i, d := range dists {
		if len(d) == 0 {
			out[i] = Dist{unknownLabel: 1.0}
			continue
		}

		maxp := maxps[i]
		neighborAvg := neighborhoodAvg(maxps, i)
		th := 0.35 * (1 - 0.7*neighborAvg)

		sc := tokens[i].Script
		switch {
		case sc == LATIN:
			if th > unknownLatinCeil {
				th = unknownLatinCeil
			}
		default:
			if th < unknownNonLatinFloor {
				th = unknownNonLatinFloor
			}
			if th > unknownNonLatinCeil {
				th = unknownNonLatinCeil
			}
		}

		if tokens[i].runeLen() <= shortTokenMaxLen {
			cap := 0.10
			if sc == LATIN {
				cap = 0.05
			}
			if th > cap {
				th = cap
			}
		}

		if sc != LATIN && maxp >= unknownNonLatinStrongMaxp {
			out[i] = d
			continue
		}

		strongHint := false
		candidates := 0
		for _, v := range d {
			if v >= unknownStrongEvidenceMin {
				strongHint = true
			}
			candidates++
		}
		if candidates >= 2 {
			strongHint = true
		}

		if maxp < th && !strongHint {
			unk := th - maxp
			unk *= 0.7
			if unk < unknownMinProb {
				unk = unknownMinProb
			}
			nd := d.clone()
			if nd == nil {
				nd = Dist{}
			}
			var total float64
			for _, v := range nd {
				total += v
			}
			scale := 0.0
			if total > 0 {
				scale = (1.0 - unk) / total
			}
			for k := range nd {
				nd[k] *= scale
			}
			nd[unknownLabel] = unk
			out[i] = nd
			continue
		}

		out[i] = d
	}
	return out
}

func neighborhoodAvg(maxps []float64, i int) float64 {
	half := unknownNeighborWindow / 2
	lo := i - half
	hi := i + half
	if lo < 0 {
		lo = 0
	}
	if hi >= len(maxps) {
		hi = len(maxps) - 1
	}
	if hi < lo {
		return 0
	}
	var sum float64
	count := 0
	for j := lo; j <= hi; j++ {
		sum += maxps[j]
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
