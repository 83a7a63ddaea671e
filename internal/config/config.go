// Package config loads run configuration from a YAML file with
// environment overrides for the secrets-ish bits.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the full run configuration.
type Config struct {
	Seed       int64   `yaml:"seed"`        // 0 = derive a fresh seed
	Population int     `yaml:"population"`  // background agent target
	SampleSize int     `yaml:"sample_size"` // background agents acting per step
	DBPath     string  `yaml:"db_path"`
	APIPort    int     `yaml:"api_port"`
	Speed      float64 `yaml:"speed"`

	Ollama Ollama `yaml:"ollama"`
}

// Ollama configures the optional chat backend. An empty URL disables it.
type Ollama struct {
	URL   string `yaml:"url"`
	Model string `yaml:"model"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Population: 300,
		SampleSize: 50,
		DBPath:     "riverside.db",
		APIPort:    8080,
		Speed:      1.0,
		Ollama: Ollama{
			Model: "gemma3:4b",
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("RIVERSIDE_OLLAMA_URL"); v != "" {
		c.Ollama.URL = v
	}
	if v := os.Getenv("RIVERSIDE_OLLAMA_MODEL"); v != "" {
		c.Ollama.Model = v
	}
	if v := os.Getenv("RIVERSIDE_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("RIVERSIDE_API_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.APIPort = port
		}
	}
	if v := os.Getenv("RIVERSIDE_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = seed
		}
	}
}
