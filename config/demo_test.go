package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := loadDemoConfig()

	assert.Equal(t, []string{"PDF", "TXT", "DOCX"}, cfg.Formats)
	assert.Equal(t, "print", cfg.Strategy)
	assert.Equal(t, []string{"PDF", "TXT"}, cfg.Documents)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"stderr"}, cfg.Logging.OutputPaths)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DOCFLOW_STRATEGY", "save")
	t.Setenv("DOCFLOW_LOG_LEVEL", "debug")

	cfg := loadDemoConfig()

	assert.Equal(t, "save", cfg.Strategy)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestYAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docflow.yaml")
	data := []byte("strategy: save\ndocuments:\n  - DOCX\n  - PDF\nlogging:\n  level: warn\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	t.Setenv("DOCFLOW_CONFIG", path)

	cfg := loadDemoConfig()

	assert.Equal(t, "save", cfg.Strategy)
	assert.Equal(t, []string{"DOCX", "PDF"}, cfg.Documents)
	assert.Equal(t, "warn", cfg.Logging.Level)
	// fields absent from the file keep their defaults
	assert.Equal(t, []string{"PDF", "TXT", "DOCX"}, cfg.Formats)
}

func TestEnvWinsOverYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy: save\n"), 0644))

	t.Setenv("DOCFLOW_CONFIG", path)
	t.Setenv("DOCFLOW_STRATEGY", "print")

	cfg := loadDemoConfig()

	assert.Equal(t, "print", cfg.Strategy)
}

func TestBrokenConfigFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\tnot yaml"), 0644))

	t.Setenv("DOCFLOW_CONFIG", path)

	cfg := loadDemoConfig()

	assert.Equal(t, "print", cfg.Strategy)
}
