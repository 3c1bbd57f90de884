package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewModelsNeuralDisabledByDefault(t *testing.T) {
	m := newModels(Config{NeuralBackend: stubNeuralBackend{}})
	neural, _ := m.Ready()
	assert.False(t, neural)
}

func TestNewModelsNeuralEnabledWhenFlagSet(t *testing.T) {
	m := newModels(Config{NeuralBackend: stubNeuralBackend{}, NeuralModelEnabled: true})
	neural, _ := m.Ready()
	assert.True(t, neural)
}

func TestNewModelsNgramReadyWhenBackendSet(t *testing.T) {
	m := newModels(Config{NgramBackend: stubNgramBackend{}})
	_, ngram := m.Ready()
	assert.True(t, ngram)
}
