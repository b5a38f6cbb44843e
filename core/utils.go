package core

import (
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// GetSeed receives a seed value for random number generation from the UMAP_SEED environment variable.
func GetSeed() int64 {
	cfg, err := LoadConfig()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read UMAP configuration from environment")
		cfg.Seed = os.Getenv(envPrefix + "_SEED")
	}
	seedStr := strings.TrimSpace(cfg.Seed)
	if seedStr != "" {
		if seed, err := strconv.ParseInt(seedStr, 10, 64); err == nil {
			log.Info().Msgf("Using seed from UMAP_SEED value: %d", seed)
			return seed
		}
		log.Warn().Msgf("Failed to parse UMAP_SEED value: %s", seedStr)
	}

	seed := time.Now().UnixNano()
	log.Info().Msgf("Using current time as seed: %d", seed)
	return seed
}

// NewRand returns a random generator seeded by GetSeed.
// The generator is not safe for concurrent use.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(GetSeed()))
}
