package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, TRACE, ParseLevel("trace"))
	assert.Equal(t, WARN, ParseLevel(" Warning "))
	assert.Equal(t, CRITICAL, ParseLevel("critical"))
	assert.Equal(t, INFO, ParseLevel("loud"))
}

func TestWriterLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf, INFO)
	log.SetPrefix("[c1] ")

	log.Debug("hidden %d", 1)
	log.Info("shown %d", 2)
	log.Error("failed: %v", "boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[INFO] [c1] shown 2\n")
	assert.Contains(t, out, "[ERROR] [c1] failed: boom\n")

	log.SetMinLevel(TRACE)
	log.Trace("now visible")
	assert.Contains(t, buf.String(), "[TRACE] [c1] now visible")
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")

	log, err := NewFileLogger(path, DEBUG, false)
	require.NoError(t, err)
	log.Debug("first")
	require.NoError(t, log.Close())
	log.Info("after close")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
	assert.Contains(t, string(data), "[DEBUG] first")
}
