package domain

import (
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/polyfft/errors"
	"github.com/agbru/polyfft/fft"
	"github.com/agbru/polyfft/field"
)

// ExtendedRadix2 is the evaluation domain of size m = 2*small_m, small_m a
// power of two with a primitive root available: the small_m-th roots of
// unity together with their translate by the coset shift,
//
//	d_i           = omega^i          for 0 <= i < small_m
//	d_{small_m+i} = shift * omega^i  for 0 <= i < small_m
//
// where shift is the square of the field's multiplicative generator. It
// doubles the reachable size past basic radix-2: small_m may be the full
// 2-adic subgroup. The shift is squared so the divide-on-coset points
// g*shift*omega^i stay clear of both blocks.
type ExtendedRadix2[E any] struct {
	f      field.Field[E]
	m      uint64
	smallM uint64

	omega E // primitive small_m-th root of unity
	shift E

	shiftToSmall E // shift^small_m
}

var _ EvaluationDomain[uint64] = (*ExtendedRadix2[uint64])(nil)

// NewExtendedRadix2 constructs the domain of size m. It fails with an
// InvalidSizeError for m <= 1 and a DomainSizeError when m is not a power of
// two or the field lacks a primitive (m/2)-th root of unity.
func NewExtendedRadix2[E any](f field.Field[E], m uint64) (*ExtendedRadix2[E], error) {
	if m <= 1 {
		return nil, apperrors.NewInvalidSizeError(m)
	}
	if !fft.IsPowerOfTwo(m) {
		return nil, apperrors.NewDomainSizeError(extendedName, m, "size is not a power of two")
	}
	smallM := m / 2
	omega, ok := f.RootOfUnity(smallM)
	if !ok {
		return nil, apperrors.NewDomainSizeError(extendedName, m, "field has no primitive %d-th root of unity", smallM)
	}
	shift := f.Square(f.MultiplicativeGenerator())
	constructionsTotal.WithLabelValues(extendedName).Inc()
	return &ExtendedRadix2[E]{
		f:            f,
		m:            m,
		smallM:       smallM,
		omega:        omega,
		shift:        shift,
		shiftToSmall: f.Exp(shift, smallM),
	}, nil
}

// Size returns m.
func (d *ExtendedRadix2[E]) Size() uint64 { return d.m }

// FFT evaluates the length-m coefficient vector a over the domain, in place.
// The polynomial is reduced modulo X^small_m - 1 for the root block and
// modulo X^small_m - shift^small_m (then twisted by shift^i) for the coset
// block; both residues go through the radix-2 kernel concurrently.
func (d *ExtendedRadix2[E]) FFT(a []E) error {
	if err := checkLength(extendedName, d.m, a); err != nil {
		return err
	}
	transformsTotal.WithLabelValues(extendedName, directionForward).Inc()
	f := d.f

	c0 := make([]E, d.smallM)
	c1 := make([]E, d.smallM)
	shiftI := f.One()
	for i := uint64(0); i < d.smallM; i++ {
		c0[i] = f.Add(a[i], a[i+d.smallM])
		c1[i] = f.Mul(shiftI, f.Add(a[i], f.Mul(d.shiftToSmall, a[i+d.smallM])))
		shiftI = f.Mul(shiftI, d.shift)
	}

	var eg errgroup.Group
	eg.Go(func() error { return fft.Radix2Parallel(f, c0, d.omega) })
	eg.Go(func() error { return fft.Radix2Parallel(f, c1, d.omega) })
	if err := eg.Wait(); err != nil {
		return err
	}

	copy(a[:d.smallM], c0)
	copy(a[d.smallM:], c1)
	return nil
}

// IFFT interpolates the length-m evaluation vector a back into coefficient
// form, in place. Both blocks are kernel-inverted and normalized, the coset
// block is untwisted by shift^-i, and the two residues are recombined
// through (shift^small_m - 1)^-1.
func (d *ExtendedRadix2[E]) IFFT(a []E) error {
	if err := checkLength(extendedName, d.m, a); err != nil {
		return err
	}
	transformsTotal.WithLabelValues(extendedName, directionInverse).Inc()
	f := d.f

	u0 := make([]E, d.smallM)
	u1 := make([]E, d.smallM)
	copy(u0, a[:d.smallM])
	copy(u1, a[d.smallM:])

	omegaInv := f.Inverse(d.omega)
	smallInv := f.Inverse(f.FromUint64(d.smallM))
	var eg errgroup.Group
	eg.Go(func() error {
		if err := fft.Radix2Parallel(f, u0, omegaInv); err != nil {
			return err
		}
		for i := range u0 {
			u0[i] = f.Mul(u0[i], smallInv)
		}
		return nil
	})
	eg.Go(func() error {
		if err := fft.Radix2Parallel(f, u1, omegaInv); err != nil {
			return err
		}
		shiftInv := f.Inverse(d.shift)
		shiftInvI := smallInv
		for i := range u1 {
			u1[i] = f.Mul(u1[i], shiftInvI)
			shiftInvI = f.Mul(shiftInvI, shiftInv)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	// u0[i] = a_i + a_{i+small_m}, u1[i] = a_i + shift^small_m * a_{i+small_m}.
	denInv := f.Inverse(f.Sub(d.shiftToSmall, f.One()))
	for i := uint64(0); i < d.smallM; i++ {
		hi := f.Mul(f.Sub(u1[i], u0[i]), denInv)
		a[i] = f.Sub(u0[i], hi)
		a[i+d.smallM] = hi
	}
	return nil
}

// CosetFFT evaluates a over g*D.
func (d *ExtendedRadix2[E]) CosetFFT(a []E, g E) error {
	if err := checkLength(extendedName, d.m, a); err != nil {
		return err
	}
	fft.MultiplyByCoset(d.f, a, g)
	return d.FFT(a)
}

// ICosetFFT inverts CosetFFT for the same g.
func (d *ExtendedRadix2[E]) ICosetFFT(a []E, g E) error {
	if err := d.IFFT(a); err != nil {
		return err
	}
	fft.MultiplyByCoset(d.f, a, d.f.Inverse(g))
	return nil
}

// EvaluateAllLagrangePolynomials returns (L_0(t), ..., L_{m-1}(t)): the
// per-block radix-2 coefficients (at t and at t*shift^-1), each scaled by
// the constant carrying the other block's factor of Z.
func (d *ExtendedRadix2[E]) EvaluateAllLagrangePolynomials(t E) ([]E, error) {
	f := d.f

	block0, err := fft.LagrangeCoefficients(f, d.smallM, t)
	if err != nil {
		return nil, err
	}
	block1, err := fft.LagrangeCoefficients(f, d.smallM, f.Mul(t, f.Inverse(d.shift)))
	if err != nil {
		return nil, err
	}

	tToSmall := f.Exp(t, d.smallM)
	f0 := f.Mul(f.Sub(tToSmall, d.shiftToSmall), f.Inverse(f.Sub(f.One(), d.shiftToSmall)))
	f1 := f.Mul(f.Sub(tToSmall, f.One()), f.Inverse(f.Sub(d.shiftToSmall, f.One())))

	result := make([]E, d.m)
	for i := uint64(0); i < d.smallM; i++ {
		result[i] = f.Mul(block0[i], f0)
		result[d.smallM+i] = f.Mul(block1[i], f1)
	}
	return result, nil
}

// Element returns omega^i in the root block and shift*omega^(i-small_m) in
// the coset block.
func (d *ExtendedRadix2[E]) Element(i uint64) E {
	if i < d.smallM {
		return d.f.Exp(d.omega, i)
	}
	return d.f.Mul(d.shift, d.f.Exp(d.omega, i-d.smallM))
}

// EvaluateVanishingPolynomial returns
// Z(t) = (t^small_m - 1) * (t^small_m - shift^small_m).
func (d *ExtendedRadix2[E]) EvaluateVanishingPolynomial(t E) E {
	f := d.f
	tToSmall := f.Exp(t, d.smallM)
	return f.Mul(f.Sub(tToSmall, f.One()), f.Sub(tToSmall, d.shiftToSmall))
}

// AddVanishing adds c*Z(X) to the length-(m+1) coefficient vector h, using
// the expanded coefficients
// Z(X) = X^m - (shift^small_m + 1)*X^small_m + shift^small_m.
func (d *ExtendedRadix2[E]) AddVanishing(c E, h []E) error {
	if uint64(len(h)) != d.m+1 {
		return apperrors.NewDomainSizeError(extendedName, d.m, "coefficient vector has length %d, want %d", len(h), d.m+1)
	}
	f := d.f
	h[d.m] = f.Add(h[d.m], c)
	h[d.smallM] = f.Sub(h[d.smallM], f.Mul(c, f.Add(d.shiftToSmall, f.One())))
	h[0] = f.Add(h[0], f.Mul(c, d.shiftToSmall))
	return nil
}

// DivideByVanishingOnCoset divides the evaluations p over g*D by Z. Both
// blocks see a constant: X^small_m is g^small_m on the root block and
// (g*shift)^small_m on the coset block.
func (d *ExtendedRadix2[E]) DivideByVanishingOnCoset(p []E) error {
	if err := checkLength(extendedName, d.m, p); err != nil {
		return err
	}
	f := d.f
	g := f.MultiplicativeGenerator()

	gToSmall := f.Exp(g, d.smallM)
	z0Inv := f.Inverse(f.Mul(f.Sub(gToSmall, f.One()), f.Sub(gToSmall, d.shiftToSmall)))

	gsToSmall := f.Mul(gToSmall, d.shiftToSmall)
	z1Inv := f.Inverse(f.Mul(f.Sub(gsToSmall, f.One()), f.Sub(gsToSmall, d.shiftToSmall)))

	for i := uint64(0); i < d.smallM; i++ {
		p[i] = f.Mul(p[i], z0Inv)
		p[d.smallM+i] = f.Mul(p[d.smallM+i], z1Inv)
	}
	return nil
}
