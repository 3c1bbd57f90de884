package engine

import "strings"

// Token is a contiguous run of characters produced by the tokenizer (3.).
// Surface preserves the original text for span reconstruction; Lower is
// used for classification.
type Token struct {
	Surface string
	Lower   string
	Script  Script
	Start   int
	End     int
}

func newToken(surface string, start, end int) Token {
	return Token{
		Surface: surface,
		Lower:   strings.ToLower(surface),
		Script:  dominantScript(surface),
		Start:   start,
		End:     end,
	}
}

func (t Token) runeLen() int {
	return len([]rune(t.Surface))
}

// Dist is a probability distribution over language codes, plus the
// "unknown" sentinel. A nil/empty Dist means "no signal."
type Dist map[string]float64

// normalize drops entries below keepThreshold and rescales the remainder
// to sum to 1. An all-zero or empty input normalizes to nil.
func normalize(d Dist) Dist {
	if len(d) == 0 {
		return nil
	}
	out := make(Dist, len(d))
	var total float64
	for k, v := range d {
		if v < 0 {
			continue
		}
		if v >= keepThreshold {
			out[k] = v
			total += v
		}
	}
	if total <= 0 {
		return nil
	}
	inv := 1.0 / total
	for k := range out {
		out[k] *= inv
	}
	return out
}

func (d Dist) clone() Dist {
	if d == nil {
		return nil
	}
	out := make(Dist, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// argmax returns the highest-mass label and its mass; ("", -1) for an
// empty distribution.
func (d Dist) argmax() (string, float64) {
	var bestK string
	var bestV float64 = -1
	for k, v := range d {
		if v > bestV {
			bestK, bestV = k, v
		}
	}
	return bestK, bestV
}

func (d Dist) max() float64 {
	_, v := d.argmax()
	if v < 0 {
		return 0
	}
	return v
}

// TokenState carries one token's per-phase distributions through the
// pipeline (3. "Per-token state").
type TokenState struct {
	Token     Token
	Raw       map[string]Dist
	PreFused  Dist
	PostFused Dist
	Label     string
}

// Segment is the finalized output unit.
type Segment struct {
	Text     string
	Language string
}
