package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, lvl)

	lvl, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewWritesFile(t *testing.T) {
	opts := DefaultOptions()
	opts.Path = filepath.Join(t.TempDir(), "nested", "game.log")

	log, err := New(opts)
	require.NoError(t, err)
	log.Infow("player spawned", "x", 1.5)
	log.Debug("hidden at info level")
	Sync(log)

	data, err := os.ReadFile(opts.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "player spawned")
	assert.Contains(t, string(data), "INFO")
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestNewRejectsBadLevel(t *testing.T) {
	opts := DefaultOptions()
	opts.Path = filepath.Join(t.TempDir(), "game.log")
	opts.Level = "verbose"
	_, err := New(opts)
	assert.Error(t, err)
}
