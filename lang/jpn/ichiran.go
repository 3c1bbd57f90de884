// Package jpn wraps go-ichiran as the Japanese SegmenterBackend, used
// for HIRAGANA/KATAKANA runs and HAN runs with kana context.
package jpn

import (
	"context"
	"fmt"
	"strings"

	"github.com/tassa-yoniso-manasi-karoto/go-ichiran"
)

// Segmenter implements engine.SegmenterBackend using ichiran's
// morphological analyzer. ichiran owns a Docker container; this
// provider is the sole owner of that container's lifecycle within a
// process: only one provider per language may manage the container.
type Segmenter struct {
	ready bool
}

// New returns an uninitialized Japanese segmenter.
func New() *Segmenter {
	return &Segmenter{}
}

func (s *Segmenter) Name() string { return "ichiran" }
func (s *Segmenter) Ready() bool  { return s.ready }

// InitWithContext starts (or attaches to) the ichiran Docker container.
func (s *Segmenter) InitWithContext(ctx context.Context) error {
	if s.ready {
		return nil
	}
	if err := ichiran.InitWithContext(ctx); err != nil {
		return fmt.Errorf("ichiran: failed to initialize: %w", err)
	}
	s.ready = true
	return nil
}

// CloseWithContext stops the ichiran Docker container.
func (s *Segmenter) CloseWithContext(ctx context.Context) error {
	if !s.ready {
		return nil
	}
	s.ready = false
	return ichiran.Close()
}

// Segment runs ichiran's morphological analysis over a kana/kanji run
// and returns its lexical surface forms, stripped of the Japanese
// punctuation ichiran already substitutes for Western equivalents.
func (s *Segmenter) Segment(ctx context.Context, text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	if !s.ready {
		if err := s.InitWithContext(ctx); err != nil {
			return nil, err
		}
	}
	jTokens, err := ichiran.AnalyzeWithContext(ctx, removeJapanesePunctuation(text))
	if err != nil {
		return nil, fmt.Errorf("ichiran: failed to analyze %q: %w", text, err)
	}
	out := make([]string, 0, len(*jTokens))
	for _, jt := range *jTokens {
		if strings.TrimSpace(jt.Surface) != "" {
			out = append(out, jt.Surface)
		}
	}
	return out, nil
}

// removeJapanesePunctuation strips the full-width/Japanese punctuation
// ichiran already normalizes internally, so it isn't double-counted as
// a lexical token.
func removeJapanesePunctuation(s string) string {
	const punct = "、。・「」，．？！（）"
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(punct, r) {
			return -1
		}
		return r
	}, s)
}
