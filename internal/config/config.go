// Package config provides application configuration through environment variables and an
// optional YAML bundle file describing the sequences to register.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"

	lfsrDomain "github.com/glanchow/woklfsr/internal/lfsr/domain"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string

	// LfsrConfigFile is the path of a YAML bundle file. When set it replaces Generator as the
	// source of sequences.
	LfsrConfigFile string
	// Generator is the default sequence read from the LFSR_* variables.
	Generator GeneratorConfig
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "lfsr"),

		// Sequences
		LfsrConfigFile: env.GetString("LFSR_CONFIG_FILE", ""),
		Generator: GeneratorConfig{
			Feedback: env.GetString("LFSR_FEEDBACK", defaultFeedback),
			State:    env.GetString("LFSR_STATE", defaultState),
			Base:     env.GetString("LFSR_BASE", ""),
			Pad:      env.GetBool("LFSR_PAD", false),
		},
	}
}

// Generators returns the generator configurations to register, keyed by sequence name.
// With LfsrConfigFile set they come from the bundle file, otherwise Generator is
// registered as the default sequence.
func (c *Config) Generators() (map[string]GeneratorConfig, error) {
	if c.LfsrConfigFile == "" {
		return map[string]GeneratorConfig{lfsrDomain.DefaultSequenceName: c.Generator}, nil
	}

	bundle, err := LoadFile(c.LfsrConfigFile)
	if err != nil {
		return nil, err
	}
	return bundle.Generators()
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
