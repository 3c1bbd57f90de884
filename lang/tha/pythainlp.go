// Package tha wraps go-pythainlp as the Thai SegmenterBackend.
package tha

import (
	"context"
	"fmt"
	"time"

	"github.com/tassa-yoniso-manasi-karoto/go-pythainlp"
)

// =============================================================================
// DOCKER CONTAINER LIFECYCLE
// =============================================================================
//
// Segmenter is the sole owner of the pythainlp Docker container's
// lifecycle within a process: InitWithContext starts it, CloseWithContext
// stops it. Nothing else in this module should construct its own
// pythainlp.PyThaiNLPManager.
// =============================================================================

// Segmenter implements engine.SegmenterBackend using go-pythainlp's
// word tokenizer in lightweight mode.
type Segmenter struct {
	manager                  *pythainlp.PyThaiNLPManager
	downloadProgressCallback func(current, total int64, status string)
}

// New returns an uninitialized Thai segmenter.
func New() *Segmenter {
	return &Segmenter{}
}

// WithDownloadProgressCallback sets a callback for Docker image pull
// progress.
func (s *Segmenter) WithDownloadProgressCallback(cb func(current, total int64, status string)) {
	s.downloadProgressCallback = cb
}

func (s *Segmenter) Name() string { return "pythainlp" }
func (s *Segmenter) Ready() bool  { return s.manager != nil }

// InitWithContext starts (or attaches to) the pythainlp container.
func (s *Segmenter) InitWithContext(ctx context.Context) error {
	if s.manager != nil {
		return nil
	}
	opts := []pythainlp.ManagerOption{
		pythainlp.WithQueryTimeout(30 * time.Second),
		pythainlp.WithLightweightMode(true),
	}
	if s.downloadProgressCallback != nil {
		opts = append(opts, pythainlp.WithDownloadProgressCallback(s.downloadProgressCallback))
	}

	manager, err := pythainlp.NewManager(ctx, opts...)
	if err != nil {
		return fmt.Errorf("pythainlp: failed to create manager: %w", err)
	}
	// InitRecreate rather than Init: a stopped container from a prior
	// run holds a stale port mapping that Init alone won't fix.
	if err := manager.InitRecreate(ctx, false); err != nil {
		return fmt.Errorf("pythainlp: failed to initialize: %w", err)
	}
	s.manager = manager
	pythainlp.SetDefaultManager(manager)
	return nil
}

// CloseWithContext stops the pythainlp container.
func (s *Segmenter) CloseWithContext(ctx context.Context) error {
	if s.manager == nil {
		return nil
	}
	pythainlp.ClearDefaultManager()
	err := s.manager.Close()
	s.manager = nil
	return err
}

// Segment tokenizes a Thai-script run into words.
func (s *Segmenter) Segment(ctx context.Context, text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	if s.manager == nil {
		if err := s.InitWithContext(ctx); err != nil {
			return nil, err
		}
	}
	result, err := s.manager.Tokenize(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("pythainlp: tokenization failed: %w", err)
	}
	return result.Raw, nil
}
