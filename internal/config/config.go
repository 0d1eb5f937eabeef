package config

import (
	"os"
	"strconv"

	"salestat/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data   DataConfig
	Engine EngineConfig
}

// DataConfig holds dataset source settings
type DataConfig struct {
	FilePath string // .xlsx or .csv sales file
}

// EngineConfig holds statistical engine settings
type EngineConfig struct {
	SampleSize int   // cap on normality-test sample draws
	Seed       int64 // deterministic sampling seed
}

// Default engine settings. The sample cap and seed are behavioral
// contracts: repeated runs with identical inputs must produce
// bit-identical results.
const (
	DefaultSampleSize = 1000
	DefaultSeed       = 42
)

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Engine: EngineConfig{
			SampleSize: DefaultSampleSize,
			Seed:       DefaultSeed,
		},
	}

	config.Data.FilePath = os.Getenv("DATA_FILE")
	if config.Data.FilePath == "" {
		return nil, errors.ConfigInvalid("DATA_FILE is required")
	}

	if v := os.Getenv("SAMPLE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.ConfigInvalid("SAMPLE_SIZE must be an integer")
		}
		config.Engine.SampleSize = n
	}

	if v := os.Getenv("SAMPLE_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.ConfigInvalid("SAMPLE_SEED must be an integer")
		}
		config.Engine.Seed = n
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Engine.SampleSize <= 0 {
		return errors.ConfigInvalid("SAMPLE_SIZE must be positive")
	}
	return nil
}
