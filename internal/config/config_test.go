package config

import (
	"testing"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, DefaultOutputDir)
	}
	if cfg.Seed != DefaultSeed {
		t.Errorf("Seed = %d, want %d", cfg.Seed, DefaultSeed)
	}
	if len(cfg.Sizes) == 0 {
		t.Error("no default sizes")
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse([]string{"-out", "/tmp/gold", "-sizes", "4, 6,8", "-seed", "9", "-quiet"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputDir != "/tmp/gold" || cfg.Seed != 9 || !cfg.Quiet {
		t.Errorf("unexpected config: %+v", cfg)
	}
	want := []uint64{4, 6, 8}
	if len(cfg.Sizes) != len(want) {
		t.Fatalf("Sizes = %v, want %v", cfg.Sizes, want)
	}
	for i := range want {
		if cfg.Sizes[i] != want[i] {
			t.Fatalf("Sizes = %v, want %v", cfg.Sizes, want)
		}
	}
}

func TestParseRejectsBadSizes(t *testing.T) {
	if _, err := Parse([]string{"-sizes", "4,banana"}); err == nil {
		t.Error("accepted a non-numeric size")
	}
	if _, err := Parse([]string{"-sizes", "1"}); err == nil {
		t.Error("accepted size 1")
	}
	if _, err := Parse([]string{"-sizes", ","}); err == nil {
		t.Error("accepted an empty size list")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv(EnvPrefix+"SEED", "77")
	t.Setenv(EnvPrefix+"OUT", "env-dir")
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 77 {
		t.Errorf("Seed = %d, want 77", cfg.Seed)
	}
	if cfg.OutputDir != "env-dir" {
		t.Errorf("OutputDir = %q, want env-dir", cfg.OutputDir)
	}

	// Flags win over the environment.
	cfg, err = Parse([]string{"-seed", "5"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 5 {
		t.Errorf("Seed = %d, want flag value 5", cfg.Seed)
	}
}
