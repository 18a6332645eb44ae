package dev

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, os.WriteFile(path, []byte("earlier\n"), 0644))

	logger := newLogger(path)
	logger.Printf("%q", "hello")
	logger.Printf("%q", "world")

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), "earlier\n")
	require.Regexp(t, `"hello"\n.*"world"\n$`, string(contents))
}

func TestNewLogger_UnopenablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "debug.log")
	require.NotPanics(t, func() {
		newLogger(path).Printf("%q", "dropped")
	})
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestDebug_Disabled(t *testing.T) {
	orig := debugSet
	debugSet = ""
	t.Cleanup(func() { debugSet = orig })

	require.False(t, Enabled())
	require.NotPanics(t, func() { Debug("ignored") })
}
