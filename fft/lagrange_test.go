package fft

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	apperrors "github.com/agbru/polyfft/errors"
	"github.com/agbru/polyfft/field/fp"
)

func TestLagrangeCoefficientsKronecker(t *testing.T) {
	t.Parallel()
	f := fp.New()

	for _, m := range []uint64{2, 4, 16} {
		omega, _ := f.RootOfUnity(m)
		for i := uint64(0); i < m; i++ {
			u, err := LagrangeCoefficients[fp.Element](f, m, f.Exp(omega, i))
			if err != nil {
				t.Fatalf("m=%d: %v", m, err)
			}
			for j := uint64(0); j < m; j++ {
				want := f.Zero()
				if i == j {
					want = f.One()
				}
				if !f.Equal(u[j], want) {
					t.Errorf("m=%d: L_%d(omega^%d) = %v, want %v", m, j, i, u[j], want)
				}
			}
		}
	}
}

// TestLagrangeCoefficientsInterpolate verifies that the coefficients are the
// interpolation weights: for a random polynomial p of degree < m,
// p(t) = sum_i p(omega^i) * u[i].
func TestLagrangeCoefficientsInterpolate(t *testing.T) {
	t.Parallel()
	f := fp.New()
	rng := rand.New(rand.NewSource(99))

	for _, m := range []uint64{2, 8, 32} {
		t.Run(fmt.Sprintf("m=%d", m), func(t *testing.T) {
			omega, _ := f.RootOfUnity(m)
			coeffs := randomVector(rng, int(m))

			eval := func(x fp.Element) fp.Element {
				acc := f.Zero()
				for i := len(coeffs) - 1; i >= 0; i-- {
					acc = f.Add(f.Mul(acc, x), coeffs[i])
				}
				return acc
			}

			t0 := f.FromUint64(rng.Uint64())
			u, err := LagrangeCoefficients[fp.Element](f, m, t0)
			if err != nil {
				t.Fatalf("LagrangeCoefficients: %v", err)
			}

			sum := f.Zero()
			for i := uint64(0); i < m; i++ {
				sum = f.Add(sum, f.Mul(eval(f.Exp(omega, i)), u[i]))
			}
			if !f.Equal(sum, eval(t0)) {
				t.Errorf("interpolated %v, evaluated %v", sum, eval(t0))
			}
		})
	}
}

func TestLagrangeCoefficientsRejectsBadSize(t *testing.T) {
	t.Parallel()
	f := fp.New()
	for _, m := range []uint64{0, 3, 6} {
		_, err := LagrangeCoefficients[fp.Element](f, m, f.One())
		if !errors.Is(err, apperrors.ErrDomainSize) {
			t.Errorf("m=%d: got %v, want ErrDomainSize", m, err)
		}
	}
	// Beyond the field's 2-adicity there is no root to evaluate against.
	_, err := LagrangeCoefficients[fp.Element](f, 1<<28, f.One())
	if !errors.Is(err, apperrors.ErrDomainSize) {
		t.Errorf("m=2^28: got %v, want ErrDomainSize", err)
	}
}
