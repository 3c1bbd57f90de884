package engine

import (
	"context"
	"regexp"
)

// patternHintProvider implements the regex-pattern-hints signal:
// score(l) = 1 - 0.6^m where m counts distinct matching patterns for
// language l.
type patternHintProvider struct {
	compiled map[string][]*regexp.Regexp
}

func newPatternHintProvider() *patternHintProvider {
	p := &patternHintProvider{compiled: make(map[string][]*regexp.Regexp, len(languagePatterns))}
	for lang, pats := range languagePatterns {
		for _, pat := range pats {
			re, err := regexp.Compile(pat)
			if err != nil {
				continue
			}
			p.compiled[lang] = append(p.compiled[lang], re)
		}
	}
	return p
}

func (p *patternHintProvider) Name() string { return "pattern" }
func (p *patternHintProvider) Ready() bool  { return true }

func (p *patternHintProvider) Distributions(_ context.Context, tokens []Token) ([]Dist, error) {
	out := make([]Dist, len(tokens))
	for i, t := range tokens {
		out[i] = p.scores(t.Lower)
	}
	return out, nil
}

func (p *patternHintProvider) scores(tokenLower string) Dist {
	var d Dist
	for lang, res := range p.compiled {
		m := 0
		for _, re := range res {
			if re.MatchString(tokenLower) {
				m++
			}
		}
		if m > 0 {
			if d == nil {
				d = Dist{}
			}
			d[lang] = 1.0 - pow06(m)
		}
	}
	return d
}

func pow06(m int) float64 {
	v := 1.0
	for i := 0; i < m; i++ {
		v *= 0.6
	}
	return v
}
