// Command generate-golden regenerates the golden FFT vectors used by the
// domain test suite. For each requested size it asks the dispatcher for a
// domain over field/fp, transforms a deterministic input vector, and records
// input and output in domain/testdata/fft_golden.json.
//
// Usage:
//
//	go run ./cmd/generate-golden [-out dir] [-sizes 2,4,6,...] [-seed n] [-quiet]
//
// Flags can also be set through POLYFFT_OUT, POLYFFT_SIZES and POLYFFT_SEED.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/rs/zerolog"

	"github.com/agbru/polyfft/domain"
	"github.com/agbru/polyfft/field/fp"
	"github.com/agbru/polyfft/internal/config"
	"github.com/agbru/polyfft/pkg/golden"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		os.Exit(2)
	}

	var spin *spinner.Spinner
	if !cfg.Quiet {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		spin.Suffix = " generating golden vectors"
		spin.Start()
		defer spin.Stop()
	}

	file, err := generate(cfg)
	if err != nil {
		if spin != nil {
			spin.Stop()
		}
		logger.Error().Err(err).Msg("generation failed")
		os.Exit(1)
	}

	if err := write(cfg.OutputDir, file); err != nil {
		if spin != nil {
			spin.Stop()
		}
		logger.Error().Err(err).Msg("writing golden file failed")
		os.Exit(1)
	}

	if spin != nil {
		spin.Stop()
	}
	logger.Info().
		Int("cases", len(file.Cases)).
		Str("dir", cfg.OutputDir).
		Msg("golden vectors written")
}

func generate(cfg *config.Config) (*golden.File, error) {
	f := fp.New()
	rng := splitmix64(cfg.Seed)
	file := &golden.File{Modulus: fp.Modulus}

	for _, size := range cfg.Sizes {
		d, err := domain.New[fp.Element](f, size)
		if err != nil {
			return nil, fmt.Errorf("size %d: %w", size, err)
		}

		m := d.Size()
		input := make([]uint64, m)
		vec := make([]fp.Element, m)
		for i := range vec {
			input[i] = rng() % fp.Modulus
			vec[i] = fp.Element(input[i])
		}
		if err := d.FFT(vec); err != nil {
			return nil, fmt.Errorf("size %d: %w", size, err)
		}

		output := make([]uint64, m)
		for i, e := range vec {
			output[i] = uint64(e)
		}
		file.Cases = append(file.Cases, golden.Case{
			Construction: constructionName(d),
			Size:         m,
			Input:        input,
			Output:       output,
		})
	}
	return file, nil
}

// constructionName maps the dispatcher's choice to the label stored in the
// golden file.
func constructionName(d domain.EvaluationDomain[fp.Element]) string {
	switch d.(type) {
	case *domain.BasicRadix2[fp.Element]:
		return "basic radix-2"
	case *domain.ExtendedRadix2[fp.Element]:
		return "extended radix-2"
	case *domain.StepRadix2[fp.Element]:
		return "step radix-2"
	case domain.GeometricSequence[fp.Element]:
		return "geometric sequence"
	case domain.ArithmeticSequence[fp.Element]:
		return "arithmetic sequence"
	default:
		return "unknown"
	}
}

// splitmix64 returns a deterministic uint64 stream; the exact sequence is
// part of the golden-file format, so the generator must not change.
func splitmix64(seed uint64) func() uint64 {
	x := seed
	return func() uint64 {
		x += 0x9E3779B97F4A7C15
		z := x
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
}

func write(dir string, file *golden.File) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(filepath.Join(dir, "fft_golden.json"), data, 0o644)
}
