package domain

import (
	"math/rand"

	"github.com/agbru/polyfft/field"
	"github.com/agbru/polyfft/field/fp"
)

// evalPoly evaluates the coefficient vector at x by Horner's rule.
func evalPoly(f field.Field[fp.Element], coeffs []fp.Element, x fp.Element) fp.Element {
	acc := f.Zero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = f.Add(f.Mul(acc, x), coeffs[i])
	}
	return acc
}

// randomCoeffs draws a deterministic pseudo-random coefficient vector.
func randomCoeffs(rng *rand.Rand, n uint64) []fp.Element {
	f := fp.New()
	a := make([]fp.Element, n)
	for i := range a {
		a[i] = f.FromUint64(rng.Uint64())
	}
	return a
}

func clone(a []fp.Element) []fp.Element {
	return append([]fp.Element(nil), a...)
}

// cappedField restricts fp to a smaller 2-adicity, for exercising the
// dispatcher's fallback arms. The sequence-generator capabilities promote
// through the embedded field.
type cappedField struct {
	fp.Field
	s uint32
}

func (c cappedField) TwoAdicity() uint32 { return c.s }

func (c cappedField) RootOfUnity(n uint64) (fp.Element, bool) {
	if n == 0 || n&(n-1) != 0 || n > uint64(1)<<c.s {
		return 0, false
	}
	return c.Field.RootOfUnity(n)
}

// bareField hides everything but the core field interface, so the sequence
// domains' capability assertions fail.
type bareField struct {
	field.Field[fp.Element]
}
