package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNeuralBackend struct{}

func (stubNeuralBackend) BatchDistributions(_ context.Context, texts []string) ([]map[string]float64, error) {
	return make([]map[string]float64, len(texts)), nil
}

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.BatchSize)
	assert.Equal(t, 4096, cfg.NgramCacheSize)
	assert.False(t, cfg.NeuralModelEnabled)
}

func TestNewConfigInvalidBatchSize(t *testing.T) {
	_, err := NewConfig(WithBatchSize(0))
	assert.ErrorIs(t, err, ErrInvalidBatchSize)
}

func TestNewConfigInvalidCacheSize(t *testing.T) {
	_, err := NewConfig(WithNgramCacheSize(-1))
	assert.ErrorIs(t, err, ErrInvalidCacheSize)
}

func TestWithNeuralBackendEnablesModel(t *testing.T) {
	cfg, err := NewConfig(WithNeuralBackend(stubNeuralBackend{}))
	require.NoError(t, err)
	assert.True(t, cfg.NeuralModelEnabled)
	assert.NotNil(t, cfg.NeuralBackend)
}

func TestWithNeuralBackendNilDisablesModel(t *testing.T) {
	cfg, err := NewConfig(WithNeuralModel(true), WithNeuralBackend(nil))
	require.NoError(t, err)
	assert.False(t, cfg.NeuralModelEnabled)
}

func TestWithSegmentersSetsField(t *testing.T) {
	cfg, err := NewConfig(WithSegmenters(Segmenters{}))
	require.NoError(t, err)
	assert.Equal(t, Segmenters{}, cfg.Segmenters)
}
