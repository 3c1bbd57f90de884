package engine

// models groups the optional heavyweight signal backends and their
// readiness, mirroring the original ModelManager's role of lazily owning
// the transformer and n-gram model handles (supplemented from
// original_source, per SPEC_FULL.md §2's supplemented features: the distilled
// spec only says providers degrade gracefully, the original names this
// responsibility explicitly as a manager type).
type models struct {
	neural *neuralProvider
	ngram  *ngramProvider
}

func newModels(cfg Config) *models {
	var neuralBackend NeuralBackend
	if cfg.NeuralModelEnabled {
		neuralBackend = cfg.NeuralBackend
	}
	return &models{
		neural: newNeuralProvider(neuralBackend, cfg.BatchSize),
		ngram:  newNgramProvider(cfg.NgramBackend, cfg.NgramCacheSize),
	}
}

// Ready reports which providers have a backend, for diagnostics.
func (m *models) Ready() (neural, ngram bool) {
	return m.neural.Ready(), m.ngram.Ready()
}
