package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tassa-yoniso-manasi-karoto/polyglotid"
)

func TestRootCmdRunsWithPositionalArgs(t *testing.T) {
	require.NoError(t, polyglotid.Init(polyglotid.Config{}))
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--no-color", "hello", "world"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "hello")
}

func TestRootCmdReadsFromStdin(t *testing.T) {
	require.NoError(t, polyglotid.Init(polyglotid.Config{}))
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetIn(bytes.NewBufferString("bonjour le monde"))
	root.SetArgs([]string{"--no-color"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "bonjour")
}
