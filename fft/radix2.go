package fft

import (
	apperrors "github.com/agbru/polyfft/errors"
	"github.com/agbru/polyfft/field"
)

// Radix2 transforms a in place into its discrete Fourier transform over the
// powers of omega: a'[j] = sum_i a[i] * omega^(i*j). The length of a must be
// a power of two, and omega must satisfy omega^n = 1 and omega^(n/2) != 1;
// the root condition is the caller's contract. The transform is not
// normalized, so the inverse transform must divide by n externally.
//
// The implementation is an iterative decimation-in-time Cooley-Tukey: a
// single in-place bit-reversal permutation followed by log2(n) butterfly
// stages with an incrementally maintained stage twiddle.
func Radix2[E any](f field.Field[E], a []E, omega E) error {
	n := uint64(len(a))
	if !IsPowerOfTwo(n) {
		return apperrors.NewDomainSizeError("radix-2 kernel", n, "vector length is not a power of two")
	}
	logN := Log2Floor(n)

	// Each pair is swapped exactly once: only when k precedes its reversal.
	for k := uint64(0); k < n; k++ {
		rk := bitReverse(k, logN)
		if k < rk {
			a[k], a[rk] = a[rk], a[k]
		}
	}

	for s := uint32(1); s <= logN; s++ {
		m := uint64(1) << (s - 1)
		wm := f.Exp(omega, n/(2*m))
		for g := uint64(0); g < n; g += 2 * m {
			w := f.One()
			for j := uint64(0); j < m; j++ {
				t := f.Mul(w, a[g+j+m])
				a[g+j+m] = f.Sub(a[g+j], t)
				a[g+j] = f.Add(a[g+j], t)
				w = f.Mul(w, wm)
			}
		}
	}
	return nil
}

// MultiplyByCoset twists a by the coset generator g: a[i] *= g^i, with a[0]
// unchanged. Applied before a transform it turns an evaluation on the domain
// D into an evaluation on g*D; applied with g^-1 after an inverse transform
// it undoes the shift.
func MultiplyByCoset[E any](f field.Field[E], a []E, g E) {
	if len(a) < 2 {
		return
	}
	pow := g
	for i := 1; i < len(a); i++ {
		a[i] = f.Mul(a[i], pow)
		pow = f.Mul(pow, g)
	}
}
