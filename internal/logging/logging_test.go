package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(Options{Prefix: "junkover", Level: "debug", Output: &buf})
	require.NoError(t, err)
	defer closeFn()

	logger.Debug("hit by", "name", "asteroid")
	assert.Contains(t, buf.String(), "hit by")
	assert.Contains(t, buf.String(), "asteroid")
	assert.Contains(t, buf.String(), "junkover")
}

func TestNewFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Options{Level: "warn", Output: &buf})
	require.NoError(t, err)

	logger.Info("quiet")
	assert.Empty(t, buf.String())
	logger.Warn("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junkover.log")
	logger, closeFn, err := New(Options{File: path})
	require.NoError(t, err)

	logger.Info("game over", "score", 12)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "game over")
}

func TestNewBadLevel(t *testing.T) {
	_, _, err := New(Options{Level: "chatty"})
	assert.Error(t, err)
}
