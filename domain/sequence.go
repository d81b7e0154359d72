package domain

import (
	apperrors "github.com/agbru/polyfft/errors"
	"github.com/agbru/polyfft/fft"
	"github.com/agbru/polyfft/field"
)

// sequenceCore is the shared implementation behind the geometric- and
// arithmetic-sequence domains: an explicit point set with quadratic-time
// evaluation and interpolation. These constructions are the dispatcher's
// last resort for sizes the radix-2 family cannot reach, so the O(m^2) cost
// is accepted in exchange for working over any distinct point set.
//
// Construction precomputes the master polynomial Z(X) = prod_i (X - d_i) and
// the barycentric weights w_i = 1/prod_{j!=i}(d_i - d_j); everything else is
// derived from those per call.
type sequenceCore[E any] struct {
	f    field.Field[E]
	name string

	points  []E
	zCoeffs []E // Z, monic, length m+1
	weights []E // w_i = 1/Z'(d_i)
}

// newSequenceCore builds the core over the given pairwise-distinct points.
func newSequenceCore[E any](f field.Field[E], name string, points []E) *sequenceCore[E] {
	m := len(points)

	// Expand Z(X) = prod (X - d_i) one factor at a time.
	z := make([]E, m+1)
	z[0] = f.One()
	for i := 1; i <= m; i++ {
		z[i] = f.Zero()
	}
	deg := 0
	for _, d := range points {
		negD := f.Neg(d)
		deg++
		for k := deg; k >= 1; k-- {
			z[k] = f.Add(f.Mul(z[k], negD), z[k-1])
		}
		z[0] = f.Mul(z[0], negD)
	}

	// w_i = 1/prod_{j!=i}(d_i - d_j).
	weights := make([]E, m)
	for i, di := range points {
		prod := f.One()
		for j, dj := range points {
			if j != i {
				prod = f.Mul(prod, f.Sub(di, dj))
			}
		}
		weights[i] = f.Inverse(prod)
	}

	return &sequenceCore[E]{f: f, name: name, points: points, zCoeffs: z, weights: weights}
}

// horner evaluates the coefficient vector a at x.
func (s *sequenceCore[E]) horner(a []E, x E) E {
	f := s.f
	if len(a) == 0 {
		return f.Zero()
	}
	acc := a[len(a)-1]
	for i := len(a) - 2; i >= 0; i-- {
		acc = f.Add(f.Mul(acc, x), a[i])
	}
	return acc
}

// Size returns the number of points.
func (s *sequenceCore[E]) Size() uint64 { return uint64(len(s.points)) }

// FFT evaluates the length-m coefficient vector a at every domain point,
// in place.
func (s *sequenceCore[E]) FFT(a []E) error {
	if err := checkLength(s.name, s.Size(), a); err != nil {
		return err
	}
	transformsTotal.WithLabelValues(s.name, directionForward).Inc()
	out := make([]E, len(a))
	for i, d := range s.points {
		out[i] = s.horner(a, d)
	}
	copy(a, out)
	return nil
}

// IFFT interpolates the length-m evaluation vector a back into coefficient
// form, in place. Each point contributes values[i] * w_i * Z(X)/(X - d_i),
// with the quotient obtained by synthetic division of the master polynomial.
func (s *sequenceCore[E]) IFFT(a []E) error {
	if err := checkLength(s.name, s.Size(), a); err != nil {
		return err
	}
	transformsTotal.WithLabelValues(s.name, directionInverse).Inc()
	f := s.f
	m := len(s.points)

	coeffs := make([]E, m)
	for k := range coeffs {
		coeffs[k] = f.Zero()
	}
	q := make([]E, m)
	for i, d := range s.points {
		// q = Z / (X - d): synthetic division, exact because Z(d) = 0.
		q[m-1] = s.zCoeffs[m]
		for k := m - 2; k >= 0; k-- {
			q[k] = f.Add(s.zCoeffs[k+1], f.Mul(q[k+1], d))
		}
		scale := f.Mul(a[i], s.weights[i])
		for k := 0; k < m; k++ {
			coeffs[k] = f.Add(coeffs[k], f.Mul(scale, q[k]))
		}
	}
	copy(a, coeffs)
	return nil
}

// CosetFFT evaluates a over g*D.
func (s *sequenceCore[E]) CosetFFT(a []E, g E) error {
	if err := checkLength(s.name, s.Size(), a); err != nil {
		return err
	}
	fft.MultiplyByCoset(s.f, a, g)
	return s.FFT(a)
}

// ICosetFFT inverts CosetFFT for the same g.
func (s *sequenceCore[E]) ICosetFFT(a []E, g E) error {
	if err := s.IFFT(a); err != nil {
		return err
	}
	fft.MultiplyByCoset(s.f, a, s.f.Inverse(g))
	return nil
}

// EvaluateAllLagrangePolynomials returns (L_0(t), ..., L_{m-1}(t)) through
// the barycentric form L_i(t) = Z(t) * w_i / (t - d_i), with the Kronecker
// case handled by scanning for t among the points first.
func (s *sequenceCore[E]) EvaluateAllLagrangePolynomials(t E) ([]E, error) {
	f := s.f
	m := len(s.points)
	u := make([]E, m)

	for i, d := range s.points {
		if f.Equal(t, d) {
			for j := range u {
				u[j] = f.Zero()
			}
			u[i] = f.One()
			return u, nil
		}
	}

	z := s.horner(s.zCoeffs, t)
	for i, d := range s.points {
		u[i] = f.Mul(z, f.Mul(s.weights[i], f.Inverse(f.Sub(t, d))))
	}
	return u, nil
}

// Element returns d_i.
func (s *sequenceCore[E]) Element(i uint64) E {
	return s.points[i]
}

// EvaluateVanishingPolynomial returns Z(t).
func (s *sequenceCore[E]) EvaluateVanishingPolynomial(t E) E {
	return s.horner(s.zCoeffs, t)
}

// AddVanishing adds c*Z(X) to the length-(m+1) coefficient vector h.
func (s *sequenceCore[E]) AddVanishing(c E, h []E) error {
	if uint64(len(h)) != s.Size()+1 {
		return apperrors.NewDomainSizeError(s.name, s.Size(), "coefficient vector has length %d, want %d", len(h), s.Size()+1)
	}
	f := s.f
	for k, zk := range s.zCoeffs {
		h[k] = f.Add(h[k], f.Mul(c, zk))
	}
	return nil
}

// DivideByVanishingOnCoset divides the evaluations p over g*D pointwise by
// Z(g*d_i).
func (s *sequenceCore[E]) DivideByVanishingOnCoset(p []E) error {
	if err := checkLength(s.name, s.Size(), p); err != nil {
		return err
	}
	f := s.f
	g := f.MultiplicativeGenerator()
	for i, d := range s.points {
		z := s.horner(s.zCoeffs, f.Mul(g, d))
		// Unlike the radix-2 family, a multiplicative shift of a sequence
		// domain can land back inside it (0 is fixed by any shift), so the
		// denominator must be checked rather than assumed nonzero.
		if f.Equal(z, f.Zero()) {
			return apperrors.NewDomainSizeError(s.name, s.Size(), "coset point %d lies in the domain", i)
		}
		p[i] = f.Mul(p[i], f.Inverse(z))
	}
	return nil
}
