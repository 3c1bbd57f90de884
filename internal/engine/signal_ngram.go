package engine

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// NgramBackend is the pluggable interface behind the subword-n-gram
// signal, standing in for the fastText `lid.176.ftz`-style model.
// Like NeuralBackend, the trained model artifact is outside this
// module's scope; a real backend can be registered via
// Config/WithNgramBackend.
type NgramBackend interface {
	// TopK returns up to k (label, score) pairs for a single token, most
	// confident first.
	TopK(token string, k int) (labels []string, scores []float64, err error)
}

type ngramCacheKey struct {
	token  string
	script Script
}

type ngramProvider struct {
	backend NgramBackend
	cache   *lru.Cache[ngramCacheKey, Dist]
}

func newNgramProvider(backend NgramBackend, cacheSize int) *ngramProvider {
	if cacheSize <= 0 {
		cacheSize = 4096
	}
	c, _ := lru.New[ngramCacheKey, Dist](cacheSize)
	return &ngramProvider{backend: backend, cache: c}
}

func (p *ngramProvider) Name() string { return "ngram" }
func (p *ngramProvider) Ready() bool  { return p.backend != nil }

const (
	ngramTopK            = 5
	ngramTopKShort       = 3
	ngramTopKNonLatinMax = 10
	ngramTopKNonLatinAdd = 3
)

var ngramScriptBoost = map[Script]bool{
	DEVANAGARI: true, BENGALI: true, THAI: true, HAN: true, HIRAGANA: true, KATAKANA: true,
}

func (p *ngramProvider) Distributions(_ context.Context, tokens []Token) ([]Dist, error) {
	out := make([]Dist, len(tokens))
	if p.backend == nil {
		return out, nil
	}
	for i, t := range tokens {
		key := ngramCacheKey{token: t.Lower, script: t.Script}
		if d, ok := p.cache.Get(key); ok {
			out[i] = d
			continue
		}
		k := ngramTopK
		if t.runeLen() <= shortTokenMaxLen {
			k = ngramTopKShort
		}
		if ngramScriptBoost[t.Script] {
			k += ngramTopKNonLatinAdd
			if k > ngramTopKNonLatinMax {
				k = ngramTopKNonLatinMax
			}
		}
		labels, scores, err := p.backend.TopK(t.Lower, k)
		if err != nil {
			continue
		}
		d := Dist{}
		var total float64
		for j, lab := range labels {
			if j >= len(scores) {
				break
			}
			if isSupportedLang(lab) && scores[j] > 0 {
				d[lab] = scores[j]
				total += scores[j]
			}
		}
		if total > 0 {
			inv := 1.0 / total
			for lab := range d {
				d[lab] *= inv
			}
		} else {
			d = nil
		}
		p.cache.Add(key, d)
		out[i] = d
	}
	return out, nil
}
