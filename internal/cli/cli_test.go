package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tassa-yoniso-manasi-karoto/polyglotid"
)

func TestReadInputFromArgs(t *testing.T) {
	text, err := ReadInput([]string{"hello", "world"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}

func TestReadInputFromStdin(t *testing.T) {
	text, err := ReadInput(nil, strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", text)
}

func TestStyleForNoColorReturnsPlainStyle(t *testing.T) {
	s := styleFor("en", true)
	assert.Equal(t, "plain", s.Render("plain"))
}

func TestStyleForUnknownLangFallsBackToGray(t *testing.T) {
	s := styleFor("not-a-lang", false)
	assert.Equal(t, lipgloss.Color("240"), s.GetForeground())
}

func TestRunPlainRendersSegments(t *testing.T) {
	require.NoError(t, polyglotid.Init(polyglotid.Config{}))
	var buf bytes.Buffer
	err := Run(&buf, "hello world", Options{NoColor: true})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[en]")
}

func TestRunExplainIncludesTraceHeader(t *testing.T) {
	require.NoError(t, polyglotid.Init(polyglotid.Config{}))
	var buf bytes.Buffer
	err := Run(&buf, "hello world", Options{NoColor: true, Explain: true})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "token")
	assert.Contains(t, buf.String(), "disambiguated")
}
