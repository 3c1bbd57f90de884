package engine

import "context"

// NeuralBackend is the pluggable interface behind the neural-classifier
// signal. The transformer itself (papluca/xlm-roberta-base-language-detection
// in the system this was distilled from) is outside this module's budget —
// Training the classifier is out of scope: this module excludes "producing probability distributions for
// downstream consumers" as a *training* concern, and the Purpose section
// scopes this module as the fusion engine, not a model-serving stack. A
// real backend (ONNX Runtime, a gRPC call to a serving process, etc.) can
// be registered via Config/WithNeuralBackend; absent one, the provider
// reports Ready()==false and the fuser's weights naturally rebalance
// toward the other four signals, exactly per the
// Provider-unavailable policy.
type NeuralBackend interface {
	// BatchDistributions classifies a batch of raw texts and returns, for
	// each, a map of label (lowercase) -> raw score. Labels outside the
	// top-20 set are discarded and the remainder renormalized by the
	// caller.
	BatchDistributions(ctx context.Context, texts []string) ([]map[string]float64, error)
}

type neuralProvider struct {
	backend   NeuralBackend
	batchSize int
}

func newNeuralProvider(backend NeuralBackend, batchSize int) *neuralProvider {
	return &neuralProvider{backend: backend, batchSize: batchSize}
}

func (p *neuralProvider) Name() string { return "transformer" }
func (p *neuralProvider) Ready() bool  { return p.backend != nil }

func (p *neuralProvider) Distributions(ctx context.Context, tokens []Token) ([]Dist, error) {
	out := make([]Dist, len(tokens))
	if p.backend == nil || len(tokens) == 0 {
		return out, nil
	}
	bs := p.batchSize
	if bs <= 0 {
		bs = 16
	}
	for start := 0; start < len(tokens); start += bs {
		end := start + bs
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := make([]string, end-start)
		for i := start; i < end; i++ {
			batch[i-start] = tokens[i].Surface
		}
		raw, err := p.backend.BatchDistributions(ctx, batch)
		if err != nil {
			// Per-token inference failure: substitute empty
			// distributions for this batch and continue.
			continue
		}
		for i, scores := range raw {
			d := Dist{}
			var total float64
			for lab, sc := range scores {
				if isSupportedLang(lab) && sc > 0 {
					d[lab] = sc
					total += sc
				}
			}
			if total > 0 {
				inv := 1.0 / total
				for k := range d {
					d[k] *= inv
				}
				out[start+i] = d
			}
		}
	}
	return out, nil
}
