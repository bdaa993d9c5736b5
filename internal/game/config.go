package game

import (
	"fmt"
	"os"
	"strconv"
)

// EnvSeed names the variable that fixes the random seed.
const EnvSeed = "NUMBERGUESS_SEED"

// Config holds game configuration options.
type Config struct {
	// Seed for target selection. Used for reproducible games.
	// A seed of 0 means a random seed will be generated.
	Seed int64
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config

	if raw := os.Getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvSeed, raw, err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}
