package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arrayproc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
lang: ru
max_attempts: 3
seed: 42
random:
  min: 0
  max: 9
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ru", cfg.Lang)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, Range{Min: 0, Max: 9}, cfg.Random)
	assert.Equal(t, Default().MaxSize, cfg.MaxSize)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "lang: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown language", func(c *Config) { c.Lang = "de" }},
		{"negative attempts", func(c *Config) { c.MaxAttempts = -1 }},
		{"zero max size", func(c *Config) { c.MaxSize = 0 }},
		{"inverted range", func(c *Config) { c.Random = Range{Min: 5, Max: 4} }},
		{"range beyond int32", func(c *Config) { c.Random = Range{Min: 0, Max: math.MaxInt32 + 1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, "random:\n  min: 10\n  max: 1\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
