package logging_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/nhohnhehr/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriters_Fanout(t *testing.T) {
	var a, b bytes.Buffer
	logger := logging.NewWithWriters(slog.LevelInfo, &a, &b)

	logger.Debug("hidden")
	logger.Info("room created", "error", errors.New("boom"))

	for _, buf := range []*bytes.Buffer{&a, &b} {
		out := buf.String()
		assert.Contains(t, out, "room created")
		assert.Contains(t, out, "err=boom")
		assert.NotContains(t, out, "hidden")
	}
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")

	logger, closer, err := logging.NewWithFile(slog.LevelDebug, path)
	require.NoError(t, err)
	logger.Debug("step", "ip", "(0,0)")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=step")
}

func TestNewWithFile_BadPath(t *testing.T) {
	_, _, err := logging.NewWithFile(slog.LevelInfo, filepath.Join(t.TempDir(), "missing", "run.log"))
	assert.Error(t, err)
}
