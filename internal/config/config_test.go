package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 300, cfg.Population)
	assert.Equal(t, 50, cfg.SampleSize)
	assert.Equal(t, "riverside.db", cfg.DBPath)
	assert.Equal(t, 8080, cfg.APIPort)
	assert.Equal(t, 1.0, cfg.Speed)
	assert.Empty(t, cfg.Ollama.URL)
	assert.Equal(t, "gemma3:4b", cfg.Ollama.Model)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riverside.yaml")
	raw := []byte(`
seed: 42
population: 25
sample_size: 5
api_port: 9090
ollama:
  url: http://localhost:11434
  model: llama3
`)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 25, cfg.Population)
	assert.Equal(t, 5, cfg.SampleSize)
	assert.Equal(t, 9090, cfg.APIPort)
	assert.Equal(t, "http://localhost:11434", cfg.Ollama.URL)
	assert.Equal(t, "llama3", cfg.Ollama.Model)

	// Untouched keys keep their defaults.
	assert.Equal(t, "riverside.db", cfg.DBPath)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riverside.yaml")
	require.NoError(t, os.WriteFile(path, []byte("population: [not a number"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("RIVERSIDE_OLLAMA_URL", "http://ollama.internal:11434")
	t.Setenv("RIVERSIDE_API_PORT", "7070")
	t.Setenv("RIVERSIDE_SEED", "1234")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://ollama.internal:11434", cfg.Ollama.URL)
	assert.Equal(t, 7070, cfg.APIPort)
	assert.Equal(t, int64(1234), cfg.Seed)
}
