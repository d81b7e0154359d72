package fft

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	apperrors "github.com/agbru/polyfft/errors"
	"github.com/agbru/polyfft/field/fp"
)

// naiveDFT computes the transform by its definition, a'[j] = sum_i a[i]*w^(i*j),
// as the oracle for the kernel tests.
func naiveDFT(f fp.Field, a []fp.Element, omega fp.Element) []fp.Element {
	n := uint64(len(a))
	out := make([]fp.Element, n)
	for j := uint64(0); j < n; j++ {
		acc := f.Zero()
		wj := f.Exp(omega, j)
		x := f.One()
		for i := uint64(0); i < n; i++ {
			acc = f.Add(acc, f.Mul(a[i], x))
			x = f.Mul(x, wj)
		}
		out[j] = acc
	}
	return out
}

func randomVector(rng *rand.Rand, n int) []fp.Element {
	f := fp.New()
	a := make([]fp.Element, n)
	for i := range a {
		a[i] = f.FromUint64(rng.Uint64())
	}
	return a
}

func TestRadix2MatchesNaiveDFT(t *testing.T) {
	t.Parallel()
	f := fp.New()
	rng := rand.New(rand.NewSource(42))

	for _, n := range []uint64{1, 2, 4, 8, 16, 64, 256} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			omega, ok := f.RootOfUnity(n)
			if !ok {
				t.Fatalf("no %d-th root of unity", n)
			}
			a := randomVector(rng, int(n))
			want := naiveDFT(f, a, omega)
			if err := Radix2[fp.Element](f, a, omega); err != nil {
				t.Fatalf("Radix2: %v", err)
			}
			if diff := cmp.Diff(want, a); diff != "" {
				t.Errorf("transform mismatch (-naive +kernel):\n%s", diff)
			}
		})
	}
}

func TestRadix2RoundTrip(t *testing.T) {
	t.Parallel()
	f := fp.New()
	rng := rand.New(rand.NewSource(7))

	for _, n := range []uint64{2, 8, 32, 128} {
		omega, _ := f.RootOfUnity(n)
		omegaInv := f.Inverse(omega)
		nInv := f.Inverse(f.FromUint64(n))

		a := randomVector(rng, int(n))
		orig := append([]fp.Element(nil), a...)

		if err := Radix2[fp.Element](f, a, omega); err != nil {
			t.Fatalf("forward: %v", err)
		}
		if err := Radix2[fp.Element](f, a, omegaInv); err != nil {
			t.Fatalf("inverse: %v", err)
		}
		for i := range a {
			a[i] = f.Mul(a[i], nInv)
		}
		if diff := cmp.Diff(orig, a); diff != "" {
			t.Errorf("n=%d round trip mismatch:\n%s", n, diff)
		}
	}
}

func TestRadix2RejectsNonPowerOfTwo(t *testing.T) {
	t.Parallel()
	f := fp.New()
	for _, n := range []int{0, 3, 6, 12, 100} {
		a := make([]fp.Element, n)
		err := Radix2[fp.Element](f, a, f.One())
		if !errors.Is(err, apperrors.ErrDomainSize) {
			t.Errorf("n=%d: got %v, want ErrDomainSize", n, err)
		}
	}
}

func TestMultiplyByCoset(t *testing.T) {
	t.Parallel()
	f := fp.New()
	g := f.MultiplicativeGenerator()

	a := []fp.Element{1, 1, 1, 1}
	MultiplyByCoset[fp.Element](f, a, g)
	want := []fp.Element{1, g, f.Mul(g, g), f.Mul(f.Mul(g, g), g)}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("coset twist mismatch:\n%s", diff)
	}

	// Twisting by g then by g^-1 is the identity.
	rng := rand.New(rand.NewSource(3))
	b := randomVector(rng, 16)
	orig := append([]fp.Element(nil), b...)
	MultiplyByCoset[fp.Element](f, b, g)
	MultiplyByCoset[fp.Element](f, b, f.Inverse(g))
	if diff := cmp.Diff(orig, b); diff != "" {
		t.Errorf("coset twist not invertible:\n%s", diff)
	}
}

// TestRadix2EvaluatesAtRoots cross-checks the kernel against Horner
// evaluation at each power of omega.
func TestRadix2EvaluatesAtRoots(t *testing.T) {
	t.Parallel()
	f := fp.New()
	rng := rand.New(rand.NewSource(11))

	const n = 16
	omega, _ := f.RootOfUnity(n)
	a := randomVector(rng, n)
	coeffs := append([]fp.Element(nil), a...)
	if err := Radix2[fp.Element](f, a, omega); err != nil {
		t.Fatalf("Radix2: %v", err)
	}
	for j := uint64(0); j < n; j++ {
		x := f.Exp(omega, j)
		acc := f.Zero()
		for i := n - 1; i >= 0; i-- {
			acc = f.Add(f.Mul(acc, x), coeffs[i])
		}
		if !f.Equal(acc, a[j]) {
			t.Errorf("evaluation at omega^%d: kernel %v, Horner %v", j, a[j], acc)
		}
	}
}

func BenchmarkRadix2Serial(b *testing.B) {
	f := fp.New()
	const n = 1 << 12
	omega, _ := f.RootOfUnity(n)
	rng := rand.New(rand.NewSource(1))
	a := randomVector(rng, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Radix2[fp.Element](f, a, omega)
	}
}

func BenchmarkRadix2Parallel(b *testing.B) {
	f := fp.New()
	const n = 1 << 12
	omega, _ := f.RootOfUnity(n)
	rng := rand.New(rand.NewSource(1))
	a := randomVector(rng, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Radix2Parallel[fp.Element](f, a, omega)
	}
}
