// Package zho wraps gojieba as the Chinese SegmenterBackend for
// HAN-script sub-tokenization.
package zho

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/yanyiwu/gojieba"
)

// dictFiles lists the gojieba dictionary files with their expected
// sizes, for download-progress reporting.
var dictFiles = []struct {
	name string
	size int64
}{
	{"jieba.dict.utf8", 5079385},
	{"hmm_model.utf8", 519568},
	{"user.dict.utf8", 49},
	{"idf.utf8", 6083765},
	{"stop_words.utf8", 8987},
}

const dictBaseURL = "https://raw.githubusercontent.com/yanyiwu/gojieba/v1.4.6/deps/cppjieba/dict/"

// DownloadProgressCallback reports dictionary download progress:
// current bytes, total bytes, and a human-readable status string.
type DownloadProgressCallback func(current, total int64, status string)

// Segmenter implements engine.SegmenterBackend using gojieba. On first
// use it downloads gojieba's dictionary files (~12MB) into the user's
// XDG data directory.
type Segmenter struct {
	downloadProgressCallback DownloadProgressCallback
	jieba                    *gojieba.Jieba
}

// New returns an uninitialized Chinese segmenter. Call InitWithContext
// before Segment; the engine's tokenizer does not call it, and skips the
// segmenter until Ready reports true.
func New() *Segmenter {
	return &Segmenter{}
}

// WithDownloadProgressCallback registers a callback for dictionary
// download progress.
func (s *Segmenter) WithDownloadProgressCallback(cb DownloadProgressCallback) {
	s.downloadProgressCallback = cb
}

func (s *Segmenter) Name() string { return "gojieba" }
func (s *Segmenter) Ready() bool  { return s.jieba != nil }

// InitWithContext downloads any missing dictionary files and constructs
// the gojieba tokenizer.
func (s *Segmenter) InitWithContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("gojieba: context canceled during initialization: %w", err)
	}
	if s.jieba != nil {
		return nil
	}

	dictDir, err := ensureDictDir()
	if err != nil {
		return fmt.Errorf("gojieba: failed to create dictionary directory: %w", err)
	}
	if err := s.ensureDictionaries(ctx, dictDir); err != nil {
		return fmt.Errorf("gojieba: failed to download dictionaries: %w", err)
	}

	s.jieba = gojieba.NewJieba(
		filepath.Join(dictDir, "jieba.dict.utf8"),
		filepath.Join(dictDir, "hmm_model.utf8"),
		filepath.Join(dictDir, "user.dict.utf8"),
		filepath.Join(dictDir, "idf.utf8"),
		filepath.Join(dictDir, "stop_words.utf8"),
	)
	return nil
}

// CloseWithContext frees the gojieba instance.
func (s *Segmenter) CloseWithContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("gojieba: context canceled during close: %w", err)
	}
	if s.jieba != nil {
		s.jieba.Free()
		s.jieba = nil
	}
	return nil
}

// Segment tokenizes a HAN-script run into words using gojieba's
// precise (HMM-enabled) mode.
func (s *Segmenter) Segment(ctx context.Context, text string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("gojieba: context canceled during segmentation: %w", err)
	}
	if s.jieba == nil {
		if err := s.InitWithContext(ctx); err != nil {
			return nil, err
		}
	}
	if text == "" {
		return nil, nil
	}
	return s.jieba.Cut(text, true), nil
}

// ensureDictDir creates and returns the dictionary directory path,
// following the XDG base directory specification.
func ensureDictDir() (string, error) {
	dictDir := filepath.Join(xdg.DataHome, "polyglotid", "gojieba", "dict")
	return dictDir, os.MkdirAll(dictDir, 0755)
}

func (s *Segmenter) ensureDictionaries(ctx context.Context, dictDir string) error {
	allExist := true
	for _, df := range dictFiles {
		if _, err := os.Stat(filepath.Join(dictDir, df.name)); os.IsNotExist(err) {
			allExist = false
			break
		}
	}
	if allExist {
		return nil
	}

	var totalSize int64
	for _, df := range dictFiles {
		totalSize += df.size
	}

	var downloaded int64
	for _, df := range dictFiles {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("context canceled: %w", err)
		}
		destPath := filepath.Join(dictDir, df.name)
		if _, err := os.Stat(destPath); err == nil {
			downloaded += df.size
			continue
		}
		if err := s.downloadFile(ctx, dictBaseURL+df.name, destPath, &downloaded, totalSize); err != nil {
			return fmt.Errorf("failed to download %s: %w", df.name, err)
		}
	}
	return nil
}

func (s *Segmenter) downloadFile(ctx context.Context, url, destPath string, downloaded *int64, totalSize int64) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	tmpPath := destPath + ".tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		out.Close()
		os.Remove(tmpPath)
	}()

	buf := make([]byte, 32*1024)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				return fmt.Errorf("failed to write: %w", writeErr)
			}
			*downloaded += int64(n)
			if s.downloadProgressCallback != nil {
				s.downloadProgressCallback(*downloaded, totalSize, "downloading gojieba dictionaries")
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("failed to read: %w", readErr)
		}
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return os.Rename(tmpPath, destPath)
}
