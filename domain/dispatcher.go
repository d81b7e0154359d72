package domain

import (
	apperrors "github.com/agbru/polyfft/errors"
	"github.com/agbru/polyfft/fft"
	"github.com/agbru/polyfft/field"
	"github.com/agbru/polyfft/internal/logging"
)

// New returns an evaluation domain of size at least minSize, trying the
// constructions in a fixed order and keeping the first that accepts:
//
//  1. basic radix-2 at minSize
//  2. extended radix-2 at minSize
//  3. step radix-2 at minSize
//  4. basic radix-2 at big + rounded_small
//  5. extended radix-2 at big + rounded_small
//  6. step radix-2 at big + rounded_small
//  7. geometric sequence at minSize
//  8. arithmetic sequence at minSize
//
// where big = 2^floor(log2(minSize-1)) and rounded_small rounds
// minSize - big up to a power of two, so the enlarged candidates never fall
// below minSize. The choice is deterministic; callers must read the actual
// size from the returned domain, which may exceed minSize. A candidate's
// failure never propagates: the trial moves on, and only when every
// candidate declines does New fail with a DomainSizeError.
func New[E any](f field.Field[E], minSize uint64) (EvaluationDomain[E], error) {
	if minSize <= 1 {
		return nil, apperrors.NewInvalidSizeError(minSize)
	}

	big := uint64(1) << fft.Log2Floor(minSize-1)
	roundedSmall := uint64(1) << fft.Log2Ceil(minSize-big)
	enlarged := big + roundedSmall

	type candidate struct {
		name  string
		size  uint64
		build func(uint64) (EvaluationDomain[E], error)
	}
	basic := func(m uint64) (EvaluationDomain[E], error) { return tryDomain[E](NewBasicRadix2(f, m)) }
	extended := func(m uint64) (EvaluationDomain[E], error) { return tryDomain[E](NewExtendedRadix2(f, m)) }
	step := func(m uint64) (EvaluationDomain[E], error) { return tryDomain[E](NewStepRadix2(f, m)) }
	geometric := func(m uint64) (EvaluationDomain[E], error) { return tryDomain[E](NewGeometric(f, m)) }
	arithmetic := func(m uint64) (EvaluationDomain[E], error) { return tryDomain[E](NewArithmetic(f, m)) }

	candidates := []candidate{
		{basicName, minSize, basic},
		{extendedName, minSize, extended},
		{stepName, minSize, step},
		{basicName, enlarged, basic},
		{extendedName, enlarged, extended},
		{stepName, enlarged, step},
		{geometricName, minSize, geometric},
		{arithmeticName, minSize, arithmetic},
	}

	log := logging.Default()
	for _, c := range candidates {
		d, err := c.build(c.size)
		if err != nil {
			log.Debug("evaluation domain candidate declined",
				logging.String("construction", c.name),
				logging.Uint64("size", c.size),
				logging.String("reason", err.Error()))
			continue
		}
		log.Debug("evaluation domain selected",
			logging.String("construction", c.name),
			logging.Uint64("size", d.Size()),
			logging.Uint64("min_size", minSize))
		return d, nil
	}
	return nil, apperrors.NewDomainSizeError("dispatcher", minSize, "no construction supports the requested size")
}

// tryDomain normalizes a concrete constructor result into the interface,
// making sure a failed trial yields a nil interface value rather than a
// typed nil.
func tryDomain[E any](d EvaluationDomain[E], err error) (EvaluationDomain[E], error) {
	if err != nil {
		return nil, err
	}
	return d, nil
}
