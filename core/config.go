package core

import (
	"github.com/kelseyhightower/envconfig"
)

// envPrefix is the prefix of every environment variable read by the library.
const envPrefix = "UMAP"

// Config holds the runtime settings read from the environment.
type Config struct {
	Debug   string `envconfig:"DEBUG"`              // UMAP_DEBUG: off, 0, full or info
	Seed    string `envconfig:"SEED"`               // UMAP_SEED: integer seed for random generators
	Workers int    `envconfig:"WORKERS" default:"0"` // UMAP_WORKERS: 0 means one worker per CPU
}

// LoadConfig reads the UMAP_* environment variables into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
