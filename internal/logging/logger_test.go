package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rgehrsitz/itrgo/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)
}

func TestNew_WritesJSONWithServiceFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "itrgo.log")

	logger, err := New(Config{Level: "debug", Format: "json", Version: "1.2.3", OutputPaths: []string{path}})
	require.NoError(t, err)

	logger.Debug("computed")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	assert.Contains(t, line, `"msg":"computed"`)
	assert.Contains(t, line, `"service":"itrgo"`)
	assert.Contains(t, line, `"version":"1.2.3"`)
}

func TestNew_LevelFiltersDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "itrgo.log")

	logger, err := New(Config{Level: "warn", Format: "console", OutputPaths: []string{path}})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestSugaredLoggerSatisfiesEngineLogger(t *testing.T) {
	logger, err := New(Config{OutputPaths: []string{filepath.Join(t.TempDir(), "x.log")}})
	require.NoError(t, err)

	var l calculation.Logger = logger.Sugar()
	assert.NotNil(t, l)
}

func TestNormalizeFormat(t *testing.T) {
	assert.Equal(t, "json", normalizeFormat(" JSON "))
	assert.Equal(t, "console", normalizeFormat("console"))
	assert.Equal(t, "console", normalizeFormat(""))
}
