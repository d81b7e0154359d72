// Package config provides the configuration of the golden-vector generator.
// It parses command-line flags with environment variable overrides, so the
// tool can run unattended in CI.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix for all environment variables consumed by the
// generator. Environment variables provide an alternative to CLI flags.
const EnvPrefix = "POLYFFT_"

// Default configuration values, overridable via flags or environment.
const (
	// DefaultOutputDir is where the golden file is written.
	DefaultOutputDir = "domain/testdata"
	// DefaultSizes is the comma-separated list of domain sizes to record.
	DefaultSizes = "2,4,6,8,10,12,16,24"
	// DefaultSeed seeds the deterministic input-vector generator.
	DefaultSeed = 1
)

// Config aggregates the generator's parameters.
type Config struct {
	// OutputDir is the directory receiving the golden file.
	OutputDir string
	// Sizes are the domain sizes to record, in order.
	Sizes []uint64
	// Seed seeds the deterministic input-vector generator.
	Seed uint64
	// Quiet disables the progress spinner.
	Quiet bool
}

// getEnvString returns the value of the prefixed environment variable, or
// the default if unset.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvUint64 returns the prefixed environment variable parsed as uint64,
// or the default if unset or invalid.
func getEnvUint64(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseUint(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// Parse reads the configuration from the given argument list (without the
// program name).
func Parse(args []string) (*Config, error) {
	fs := flag.NewFlagSet("generate-golden", flag.ContinueOnError)
	out := fs.String("out", getEnvString("OUT", DefaultOutputDir), "output directory for the golden file")
	sizes := fs.String("sizes", getEnvString("SIZES", DefaultSizes), "comma-separated domain sizes to record")
	seed := fs.Uint64("seed", getEnvUint64("SEED", DefaultSeed), "seed for the deterministic input vectors")
	quiet := fs.Bool("quiet", false, "disable the progress spinner")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{OutputDir: *out, Seed: *seed, Quiet: *quiet}
	for _, part := range strings.Split(*sizes, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", part, err)
		}
		if n < 2 {
			return nil, fmt.Errorf("invalid size %d: must be at least 2", n)
		}
		cfg.Sizes = append(cfg.Sizes, n)
	}
	if len(cfg.Sizes) == 0 {
		return nil, fmt.Errorf("no sizes requested")
	}
	return cfg, nil
}
