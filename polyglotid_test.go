package polyglotid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitThenDetectUsesNewEngine(t *testing.T) {
	require.NoError(t, Init(Config{}))
	segs, err := Detect("hello world")
	require.NoError(t, err)
	assert.NotEmpty(t, segs)
}

func TestDetectVerboseReturnsTraces(t *testing.T) {
	require.NoError(t, Init(Config{}))
	segs, traces, err := DetectVerbose("bonjour le monde")
	require.NoError(t, err)
	assert.NotEmpty(t, segs)
	assert.NotEmpty(t, traces)
}

func TestDetectBatchProcessesEachTextIndependently(t *testing.T) {
	require.NoError(t, Init(Config{}))
	results, err := DetectBatch([]string{"hello world", "bonjour le monde"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.NotEmpty(t, results[0])
	assert.NotEmpty(t, results[1])
}

func TestDefaultSegmentersWiresAllThree(t *testing.T) {
	s := DefaultSegmenters()
	assert.NotNil(t, s.Japanese)
	assert.NotNil(t, s.Chinese)
	assert.NotNil(t, s.Thai)
}
