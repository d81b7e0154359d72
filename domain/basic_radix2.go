package domain

import (
	apperrors "github.com/agbru/polyfft/errors"
	"github.com/agbru/polyfft/fft"
	"github.com/agbru/polyfft/field"
)

// BasicRadix2 is the evaluation domain over the full group of m-th roots of
// unity, m = 2^k: d_i = omega^i for a primitive m-th root omega. It requires
// log2(m) <= TwoAdicity of the field.
type BasicRadix2[E any] struct {
	f     field.Field[E]
	m     uint64
	omega E // primitive m-th root of unity

	omegaInv E
	mInv     E
}

var _ EvaluationDomain[uint64] = (*BasicRadix2[uint64])(nil)

// NewBasicRadix2 constructs the domain of size m. It fails with an
// InvalidSizeError for m <= 1 and a DomainSizeError when m is not a power of
// two or the field lacks a primitive m-th root of unity.
func NewBasicRadix2[E any](f field.Field[E], m uint64) (*BasicRadix2[E], error) {
	if m <= 1 {
		return nil, apperrors.NewInvalidSizeError(m)
	}
	if !fft.IsPowerOfTwo(m) {
		return nil, apperrors.NewDomainSizeError(basicName, m, "size is not a power of two")
	}
	if uint64(fft.Log2Floor(m)) > uint64(f.TwoAdicity()) {
		return nil, apperrors.NewDomainSizeError(basicName, m, "log2(size) exceeds the field's 2-adicity %d", f.TwoAdicity())
	}
	omega, ok := f.RootOfUnity(m)
	if !ok {
		return nil, apperrors.NewDomainSizeError(basicName, m, "field has no primitive %d-th root of unity", m)
	}
	constructionsTotal.WithLabelValues(basicName).Inc()
	return &BasicRadix2[E]{
		f:        f,
		m:        m,
		omega:    omega,
		omegaInv: f.Inverse(omega),
		mInv:     f.Inverse(f.FromUint64(m)),
	}, nil
}

// Size returns m.
func (d *BasicRadix2[E]) Size() uint64 { return d.m }

// FFT evaluates the length-m coefficient vector a over the domain, in place.
func (d *BasicRadix2[E]) FFT(a []E) error {
	if err := checkLength(basicName, d.m, a); err != nil {
		return err
	}
	transformsTotal.WithLabelValues(basicName, directionForward).Inc()
	return fft.Radix2Parallel(d.f, a, d.omega)
}

// IFFT interpolates the length-m evaluation vector a back into coefficient
// form, in place: the unnormalized inverse transform followed by division
// by m.
func (d *BasicRadix2[E]) IFFT(a []E) error {
	if err := checkLength(basicName, d.m, a); err != nil {
		return err
	}
	transformsTotal.WithLabelValues(basicName, directionInverse).Inc()
	if err := fft.Radix2Parallel(d.f, a, d.omegaInv); err != nil {
		return err
	}
	for i := range a {
		a[i] = d.f.Mul(a[i], d.mInv)
	}
	return nil
}

// CosetFFT evaluates a over g*D: twist the coefficients by the coset, then
// transform.
func (d *BasicRadix2[E]) CosetFFT(a []E, g E) error {
	if err := checkLength(basicName, d.m, a); err != nil {
		return err
	}
	fft.MultiplyByCoset(d.f, a, g)
	return d.FFT(a)
}

// ICosetFFT inverts CosetFFT: inverse transform, then untwist by g^-1.
func (d *BasicRadix2[E]) ICosetFFT(a []E, g E) error {
	if err := d.IFFT(a); err != nil {
		return err
	}
	fft.MultiplyByCoset(d.f, a, d.f.Inverse(g))
	return nil
}

// EvaluateAllLagrangePolynomials returns (L_0(t), ..., L_{m-1}(t)).
func (d *BasicRadix2[E]) EvaluateAllLagrangePolynomials(t E) ([]E, error) {
	return fft.LagrangeCoefficients(d.f, d.m, t)
}

// Element returns omega^i.
func (d *BasicRadix2[E]) Element(i uint64) E {
	return d.f.Exp(d.omega, i)
}

// EvaluateVanishingPolynomial returns Z(t) = t^m - 1.
func (d *BasicRadix2[E]) EvaluateVanishingPolynomial(t E) E {
	return d.f.Sub(d.f.Exp(t, d.m), d.f.One())
}

// AddVanishing adds c*Z(X) = c*(X^m - 1) to the length-(m+1) coefficient
// vector h.
func (d *BasicRadix2[E]) AddVanishing(c E, h []E) error {
	if uint64(len(h)) != d.m+1 {
		return apperrors.NewDomainSizeError(basicName, d.m, "coefficient vector has length %d, want %d", len(h), d.m+1)
	}
	h[d.m] = d.f.Add(h[d.m], c)
	h[0] = d.f.Sub(h[0], c)
	return nil
}

// DivideByVanishingOnCoset divides the evaluations p over g*D by Z. On the
// coset, Z(g*omega^i) = g^m - 1 is a single constant because omega^m = 1.
func (d *BasicRadix2[E]) DivideByVanishingOnCoset(p []E) error {
	if err := checkLength(basicName, d.m, p); err != nil {
		return err
	}
	g := d.f.MultiplicativeGenerator()
	zInv := d.f.Inverse(d.f.Sub(d.f.Exp(g, d.m), d.f.One()))
	for i := range p {
		p[i] = d.f.Mul(p[i], zInv)
	}
	return nil
}
