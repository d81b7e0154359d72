package fft

import (
	apperrors "github.com/agbru/polyfft/errors"
	"github.com/agbru/polyfft/field"
)

// LagrangeCoefficients evaluates all m Lagrange basis polynomials of the
// radix-2 domain {1, w, w^2, ...} at t, where w is the field's primitive
// m-th root of unity. The result u satisfies, for any polynomial p of degree
// below m, p(t) = sum_i p(w^i) * u[i].
//
// When t is itself a domain element the result is the matching standard
// basis vector, found by scanning the powers of w. The field contract
// guarantees the primitive root generates every m-th root of unity, so the
// scan always finds t when t^m = 1.
//
// Outside the domain the coefficients follow from L_i(t) = Z(t)*w^i / (m*(t - w^i))
// with Z(t) = t^m - 1, maintained incrementally: l starts at Z(t)/m and picks
// up a factor w per step while r walks the domain.
func LagrangeCoefficients[E any](f field.Field[E], m uint64, t E) ([]E, error) {
	if m == 0 || !IsPowerOfTwo(m) {
		return nil, apperrors.NewDomainSizeError("radix-2 kernel", m, "Lagrange evaluation size is not a power of two")
	}
	omega, ok := f.RootOfUnity(m)
	if !ok {
		return nil, apperrors.NewDomainSizeError("radix-2 kernel", m, "field has no primitive %d-th root of unity", m)
	}

	u := make([]E, m)
	one := f.One()
	tm := f.Exp(t, m)

	if f.Equal(tm, one) {
		for i := range u {
			u[i] = f.Zero()
		}
		r := one
		for i := uint64(0); i < m; i++ {
			if f.Equal(r, t) {
				u[i] = one
				break
			}
			r = f.Mul(r, omega)
		}
		return u, nil
	}

	z := f.Sub(tm, one)
	l := f.Mul(z, f.Inverse(f.FromUint64(m)))
	r := one
	for i := uint64(0); i < m; i++ {
		u[i] = f.Mul(l, f.Inverse(f.Sub(t, r)))
		l = f.Mul(l, omega)
		r = f.Mul(r, omega)
	}
	return u, nil
}
