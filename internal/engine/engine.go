package engine

import "context"

// Engine wires the full pipeline of 4.A-4.H: tokenizer, five signal
// providers, fuser, unknown injector, disambiguator, Viterbi decoder and
// post-decoder finalizer.
type Engine struct {
	cfg           Config
	tokenizer     *Tokenizer
	providers     []SignalProvider
	fuser         Fuser
	disambiguator Disambiguator
	decoder       Decoder
	finalizer     Finalizer
}

// New builds an Engine from Config. Unlike a construction path that
// construction (which can fail on a missing Docker binary), this never
// errors: every optional backend is allowed to be nil and every
// provider degrades gracefully.
func New(cfg Config) *Engine {
	m := newModels(cfg)
	return &Engine{
		cfg:       cfg,
		tokenizer: &Tokenizer{Segmenters: cfg.Segmenters},
		providers: []SignalProvider{
			m.neural,
			m.ngram,
			newPatternHintProvider(),
			scriptPriorProvider{},
			charsetHintProvider{},
		},
	}
}

// TokenTrace records the full per-token signal trail for the --explain
// CLI flag and for DetectVerbose, supplementing the plain Segment API
// with the original_source's debug affordances (SPEC_FULL.md §2,
// supplemented features).
type TokenTrace struct {
	Token         Token
	Raw           map[string]Dist
	PreFused      Dist
	PostFused     Dist
	WithUnknown   Dist
	Disambiguated Dist
	Label         string
}

// Detect runs the full pipeline over text and returns the merged
// language segments.
func (e *Engine) Detect(ctx context.Context, text string) ([]Segment, error) {
	traces, err := e.trace(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(traces) == 0 {
		return nil, nil
	}
	tokens := make([]Token, len(traces))
	labels := make([]string, len(traces))
	dists := make([]Dist, len(traces))
	for i, tr := range traces {
		tokens[i] = tr.Token
		labels[i] = tr.Label
		dists[i] = tr.Disambiguated
	}
	return e.finalizer.FinalizeWithText(tokens, dists, labels, text), nil
}

// DetectVerbose runs the full pipeline and additionally returns the
// per-token signal trail, for debugging and the CLI's --explain flag.
func (e *Engine) DetectVerbose(ctx context.Context, text string) ([]Segment, []TokenTrace, error) {
	traces, err := e.trace(ctx, text)
	if err != nil {
		return nil, nil, err
	}
	if len(traces) == 0 {
		return nil, nil, nil
	}
	tokens := make([]Token, len(traces))
	labels := make([]string, len(traces))
	dists := make([]Dist, len(traces))
	for i, tr := range traces {
		tokens[i] = tr.Token
		labels[i] = tr.Label
		dists[i] = tr.Disambiguated
	}
	segments := e.finalizer.FinalizeWithText(tokens, dists, labels, text)
	return segments, traces, nil
}

func (e *Engine) trace(ctx context.Context, text string) ([]TokenTrace, error) {
	tokens := e.tokenizer.Tokenize(ctx, text)
	if len(tokens) == 0 {
		return nil, nil
	}

	raw := make([]map[string]Dist, len(tokens))
	for i := range raw {
		raw[i] = map[string]Dist{}
	}
	for _, p := range e.providers {
		if !p.Ready() {
			continue
		}
		dists, err := p.Distributions(ctx, tokens)
		if err != nil {
			GetLogger().Warn().Err(err).Str("provider", p.Name()).Msg("signal provider failed, skipping")
			continue
		}
		for i, d := range dists {
			if d != nil {
				raw[i][p.Name()] = d
			}
		}
	}

	preFused := make([]Dist, len(tokens))
	postFused := make([]Dist, len(tokens))
	for i, t := range tokens {
		pre, post := e.fuser.Fuse(t, raw[i])
		preFused[i] = pre
		postFused[i] = post
	}

	withUnknown := injectUnknown(tokens, postFused)
	disambiguated := e.disambiguator.Disambiguate(tokens, withUnknown)
	labels := e.decoder.Decode(tokens, disambiguated)

	traces := make([]TokenTrace, len(tokens))
	for i, t := range tokens {
		traces[i] = TokenTrace{
			Token:         t,
			Raw:           raw[i],
			PreFused:      preFused[i],
			PostFused:     postFused[i],
			WithUnknown:   withUnknown[i],
			Disambiguated: disambiguated[i],
			Label:         labels[i],
		}
	}
	return traces, nil
}

// BatchSize returns the configured worker-pool size for DetectBatch.
func (e *Engine) BatchSize() int { return e.cfg.BatchSize }

// Ready reports which optional backends are currently active, for
// diagnostics.
func (e *Engine) Ready() (neural, ngram bool) {
	for _, p := range e.providers {
		switch p.Name() {
		case "transformer":
			neural = p.Ready()
		case "ngram":
			ngram = p.Ready()
		}
	}
	return
}
