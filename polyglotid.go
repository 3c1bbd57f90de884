// Package polyglotid identifies, token by token, which of a fixed set
// of languages a piece of mixed-language text is written in, and
// merges adjacent same-language tokens into segments.
package polyglotid

import (
	"context"
	"sync"

	"github.com/tassa-yoniso-manasi-karoto/polyglotid/internal/engine"
	"github.com/tassa-yoniso-manasi-karoto/polyglotid/lang/jpn"
	"github.com/tassa-yoniso-manasi-karoto/polyglotid/lang/tha"
	"github.com/tassa-yoniso-manasi-karoto/polyglotid/lang/zho"

	"github.com/rs/zerolog"
)

// Segment is a maximal run of adjacent tokens assigned the same
// language, with its reconstructed source text.
type Segment = engine.Segment

// TokenTrace is the per-token debug trail returned by DetectVerbose.
type TokenTrace = engine.TokenTrace

// Config configures the default engine. See the With* options below.
type Config = engine.Config

// ConfigOption is a functional option for Config.
type ConfigOption = engine.ConfigOption

var (
	WithNeuralModel    = engine.WithNeuralModel
	WithNeuralBackend  = engine.WithNeuralBackend
	WithNgramBackend   = engine.WithNgramBackend
	WithNgramCacheSize = engine.WithNgramCacheSize
	WithGPU            = engine.WithGPU
	WithBatchSize      = engine.WithBatchSize
)

var (
	defaultOnce   sync.Once
	defaultEngine *engine.Engine
	defaultErr    error
	defaultMu     sync.Mutex
)

// defaultSegmenters wires the module's three script-specific external
// tokenizers (HAN, kana, Thai) as the default segmenter set. The
// tokenizer uses a segmenter only while its Ready reports true and never
// calls InitWithContext itself; a segmenter that has not been
// initialized is skipped, and each run of its script is kept whole as
// one token.
func defaultSegmenters() engine.Segmenters {
	return engine.Segmenters{
		Japanese: jpn.New(),
		Chinese:  zho.New(),
		Thai:     tha.New(),
	}
}

func buildDefault() (*engine.Engine, error) {
	cfg, err := engine.NewConfig(WithSegmenters(defaultSegmenters()))
	if err != nil {
		return nil, err
	}
	return engine.New(cfg), nil
}

// WithSegmenters registers script-specific external tokenizers; exposed
// so callers can override the defaults (e.g. to disable Docker-backed
// segmenters entirely in a constrained environment).
func WithSegmenters(s engine.Segmenters) ConfigOption {
	return engine.WithSegmenters(s)
}

// DefaultSegmenters returns the module's default script-specific
// external tokenizers (gojieba, ichiran, pythainlp), for callers
// building a custom Config who still want the standard ones.
func DefaultSegmenters() engine.Segmenters {
	return defaultSegmenters()
}

func getDefault() (*engine.Engine, error) {
	defaultOnce.Do(func() {
		defaultEngine, defaultErr = buildDefault()
	})
	return defaultEngine, defaultErr
}

// Init replaces the package-level default engine with one built from
// cfg. Safe to call before the first Detect call; callers that need
// custom NeuralBackend/NgramBackend implementations, or that want to
// disable the Docker-backed segmenters, should call this once at
// startup. cfg.Segmenters is used as given — pass DefaultSegmenters()
// explicitly to keep the standard HAN/kana/Thai tokenizers.
func Init(cfg Config) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	// Consume the lazy build so getDefault never replaces cfg's engine.
	defaultOnce.Do(func() {})
	defaultEngine = engine.New(cfg)
	defaultErr = nil
	return nil
}

// SetLogger installs the logger used by the engine and its providers.
func SetLogger(l zerolog.Logger) { engine.SetLogger(l) }

// CanonicalLangCode resolves code — any ISO 639-1, 639-2 or 639-3
// identifier — to the two-letter code used in a Segment's Language,
// reporting false if code doesn't map to one of the supported
// languages.
func CanonicalLangCode(code string) (string, bool) {
	return engine.CanonicalLangCode(code)
}

// Detect runs language identification over text using the package
// default engine, built lazily on first use.
func Detect(text string) ([]Segment, error) {
	return DetectWithContext(context.Background(), text)
}

// DetectWithContext is Detect with ctx passed through to the signal and
// segmenter backends; detection itself does not stop or return an error
// when ctx is cancelled.
func DetectWithContext(ctx context.Context, text string) ([]Segment, error) {
	e, err := getDefault()
	if err != nil {
		return nil, err
	}
	return e.Detect(ctx, text)
}

// DetectVerbose runs Detect and additionally returns the full per-token
// signal trail, for debugging and the CLI's --explain flag.
func DetectVerbose(text string) ([]Segment, []TokenTrace, error) {
	return DetectVerboseWithContext(context.Background(), text)
}

// DetectVerboseWithContext is DetectVerbose with ctx handled as in
// DetectWithContext.
func DetectVerboseWithContext(ctx context.Context, text string) ([]Segment, []TokenTrace, error) {
	e, err := getDefault()
	if err != nil {
		return nil, nil, err
	}
	return e.DetectVerbose(ctx, text)
}

// DetectBatch runs Detect independently over each text in texts.
func DetectBatch(texts []string) ([][]Segment, error) {
	return DetectBatchWithContext(context.Background(), texts)
}

// DetectBatchWithContext is DetectBatch with ctx handled as in
// DetectWithContext for every text. Texts are processed independently across a bounded pool of
// workers sized by Config.BatchSize, mirroring a thread-pool-and-
// futures batch pattern: a fixed number of workers drain a queue of
// job indices rather than spawning one goroutine per text. An error on
// one text does not abort the others — its slot in the result stays
// nil — and the first error encountered across the batch is returned
// once every text has been processed.
func DetectBatchWithContext(ctx context.Context, texts []string) ([][]Segment, error) {
	e, err := getDefault()
	if err != nil {
		return nil, err
	}
	out := make([][]Segment, len(texts))

	workers := e.BatchSize()
	if workers <= 0 {
		workers = 1
	}
	if workers > len(texts) {
		workers = len(texts)
	}
	if workers == 0 {
		return out, nil
	}

	jobs := make(chan int, len(texts))
	for i := range texts {
		jobs <- i
	}
	close(jobs)

	var (
		wg       sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				segs, err := e.Detect(ctx, texts[i])
				if err != nil {
					errMu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					errMu.Unlock()
					continue
				}
				out[i] = segs
			}
		}()
	}
	wg.Wait()

	return out, firstErr
}
