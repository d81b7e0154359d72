package domain

import (
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/polyfft/errors"
	"github.com/agbru/polyfft/fft"
	"github.com/agbru/polyfft/field"
)

// StepRadix2 is the evaluation domain of size m = big_m + small_m, where
// big_m = 2^floor(log2(m-1)) and small_m = m - big_m must itself be a power
// of two. The domain is the union of the big_m-th roots of unity and a coset
// of the small_m-th roots:
//
//	d_i        = big_omega^i            for 0 <= i < big_m
//	d_{big_m+i} = omega * small_omega^i  for 0 <= i < small_m
//
// with omega a primitive (2*big_m)-th root, big_omega = omega^2 and
// small_omega a primitive small_m-th root. The coset block is disjoint from
// the first block because omega is not a big_m-th root of unity.
type StepRadix2[E any] struct {
	f      field.Field[E]
	m      uint64
	bigM   uint64
	smallM uint64

	omega      E // primitive (2*big_m)-th root of unity
	bigOmega   E // omega^2, primitive big_m-th root
	smallOmega E // primitive small_m-th root
}

var _ EvaluationDomain[uint64] = (*StepRadix2[uint64])(nil)

// NewStepRadix2 constructs the domain of size m. It fails with an
// InvalidSizeError for m <= 1 and a DomainSizeError when m - big_m is not a
// power of two below big_m or the field lacks the required roots of unity.
// m = 2, where both parts are 1, is accepted.
func NewStepRadix2[E any](f field.Field[E], m uint64) (*StepRadix2[E], error) {
	if m <= 1 {
		return nil, apperrors.NewInvalidSizeError(m)
	}
	bigM := uint64(1) << fft.Log2Floor(m-1)
	smallM := m - bigM
	if !fft.IsPowerOfTwo(smallM) {
		return nil, apperrors.NewDomainSizeError(stepName, m, "small part %d is not a power of two", smallM)
	}
	if smallM >= bigM && m > 2 {
		return nil, apperrors.NewDomainSizeError(stepName, m, "small part %d is not below the big part %d", smallM, bigM)
	}
	omega, ok := f.RootOfUnity(2 * bigM)
	if !ok {
		return nil, apperrors.NewDomainSizeError(stepName, m, "field has no primitive %d-th root of unity", 2*bigM)
	}
	smallOmega, ok := f.RootOfUnity(smallM)
	if !ok {
		return nil, apperrors.NewDomainSizeError(stepName, m, "field has no primitive %d-th root of unity", smallM)
	}
	constructionsTotal.WithLabelValues(stepName).Inc()
	return &StepRadix2[E]{
		f:          f,
		m:          m,
		bigM:       bigM,
		smallM:     smallM,
		omega:      omega,
		bigOmega:   f.Square(omega),
		smallOmega: smallOmega,
	}, nil
}

// Size returns m.
func (d *StepRadix2[E]) Size() uint64 { return d.m }

// FFT evaluates the length-m coefficient vector a over the domain, in place.
//
// The polynomial is reduced to two sub-problems: c = a mod (X^big_m - 1),
// evaluated over the big_m-th roots, and the omega-twisted residue d whose
// small_m-wise sums e carry the evaluations over the coset block. The two
// sub-transforms are independent and run concurrently.
func (d *StepRadix2[E]) FFT(a []E) error {
	if err := checkLength(stepName, d.m, a); err != nil {
		return err
	}
	transformsTotal.WithLabelValues(stepName, directionForward).Inc()
	f := d.f

	c := make([]E, d.bigM)
	twisted := make([]E, d.bigM)
	omegaI := f.One()
	for i := uint64(0); i < d.bigM; i++ {
		if i < d.smallM {
			c[i] = f.Add(a[i], a[i+d.bigM])
			twisted[i] = f.Mul(omegaI, f.Sub(a[i], a[i+d.bigM]))
		} else {
			c[i] = a[i]
			twisted[i] = f.Mul(omegaI, a[i])
		}
		omegaI = f.Mul(omegaI, d.omega)
	}

	e := make([]E, d.smallM)
	compr := d.bigM / d.smallM
	for i := uint64(0); i < d.smallM; i++ {
		e[i] = twisted[i]
		for j := uint64(1); j < compr; j++ {
			e[i] = f.Add(e[i], twisted[i+j*d.smallM])
		}
	}

	var eg errgroup.Group
	eg.Go(func() error { return fft.Radix2Parallel(f, c, d.bigOmega) })
	eg.Go(func() error { return fft.Radix2Parallel(f, e, d.smallOmega) })
	if err := eg.Wait(); err != nil {
		return err
	}

	copy(a[:d.bigM], c)
	copy(a[d.bigM:], e)
	return nil
}

// IFFT interpolates the length-m evaluation vector a back into coefficient
// form, in place, inverting FFT exactly: both blocks are kernel-inverted and
// normalized, the twisted aliases of the upper coefficients are subtracted
// out of the coset block, and the halved sum/difference recombination
// recovers the coefficients that were folded together.
func (d *StepRadix2[E]) IFFT(a []E) error {
	if err := checkLength(stepName, d.m, a); err != nil {
		return err
	}
	transformsTotal.WithLabelValues(stepName, directionInverse).Inc()
	f := d.f

	u0 := make([]E, d.bigM)
	u1 := make([]E, d.smallM)
	copy(u0, a[:d.bigM])
	copy(u1, a[d.bigM:])

	var eg errgroup.Group
	eg.Go(func() error {
		if err := fft.Radix2Parallel(f, u0, f.Inverse(d.bigOmega)); err != nil {
			return err
		}
		bigInv := f.Inverse(f.FromUint64(d.bigM))
		for i := range u0 {
			u0[i] = f.Mul(u0[i], bigInv)
		}
		return nil
	})
	eg.Go(func() error {
		if err := fft.Radix2Parallel(f, u1, f.Inverse(d.smallOmega)); err != nil {
			return err
		}
		smallInv := f.Inverse(f.FromUint64(d.smallM))
		for i := range u1 {
			u1[i] = f.Mul(u1[i], smallInv)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	tmp := make([]E, d.bigM)
	omegaI := f.One()
	for i := uint64(0); i < d.bigM; i++ {
		tmp[i] = f.Mul(u0[i], omegaI)
		omegaI = f.Mul(omegaI, d.omega)
	}

	copy(a[d.smallM:d.bigM], u0[d.smallM:])

	compr := d.bigM / d.smallM
	omegaInv := f.Inverse(d.omega)
	omegaInvI := f.One()
	for i := uint64(0); i < d.smallM; i++ {
		for j := uint64(1); j < compr; j++ {
			u1[i] = f.Sub(u1[i], tmp[i+j*d.smallM])
		}
		u1[i] = f.Mul(u1[i], omegaInvI)
		omegaInvI = f.Mul(omegaInvI, omegaInv)
	}

	half := f.Inverse(f.FromUint64(2))
	for i := uint64(0); i < d.smallM; i++ {
		a[i] = f.Mul(f.Add(u0[i], u1[i]), half)
		a[d.bigM+i] = f.Mul(f.Sub(u0[i], u1[i]), half)
	}
	return nil
}

// CosetFFT evaluates a over g*D.
func (d *StepRadix2[E]) CosetFFT(a []E, g E) error {
	if err := checkLength(stepName, d.m, a); err != nil {
		return err
	}
	fft.MultiplyByCoset(d.f, a, g)
	return d.FFT(a)
}

// ICosetFFT inverts CosetFFT for the same g.
func (d *StepRadix2[E]) ICosetFFT(a []E, g E) error {
	if err := d.IFFT(a); err != nil {
		return err
	}
	fft.MultiplyByCoset(d.f, a, d.f.Inverse(g))
	return nil
}

// EvaluateAllLagrangePolynomials returns (L_0(t), ..., L_{m-1}(t)).
//
// Within each block the coefficients are those of the block's own radix-2
// domain, corrected by the factor that accounts for the other block's part
// of the vanishing polynomial: t^small_m - omega^small_m over the big block
// (divided per element), and (t^big_m - 1)/(omega^big_m - 1) over the coset
// block (a single constant, since the coset points share X^big_m).
func (d *StepRadix2[E]) EvaluateAllLagrangePolynomials(t E) ([]E, error) {
	f := d.f

	inner, err := fft.LagrangeCoefficients(f, d.bigM, t)
	if err != nil {
		return nil, err
	}
	outer, err := fft.LagrangeCoefficients(f, d.smallM, f.Mul(t, f.Inverse(d.omega)))
	if err != nil {
		return nil, err
	}

	result := make([]E, d.m)
	omegaToSmall := f.Exp(d.omega, d.smallM)
	bigOmegaToSmall := f.Exp(d.bigOmega, d.smallM)

	l0 := f.Sub(f.Exp(t, d.smallM), omegaToSmall)
	elt := f.One()
	for i := uint64(0); i < d.bigM; i++ {
		result[i] = f.Mul(inner[i], f.Mul(l0, f.Inverse(f.Sub(elt, omegaToSmall))))
		elt = f.Mul(elt, bigOmegaToSmall)
	}

	l1 := f.Mul(
		f.Sub(f.Exp(t, d.bigM), f.One()),
		f.Inverse(f.Sub(f.Exp(d.omega, d.bigM), f.One())),
	)
	for i := uint64(0); i < d.smallM; i++ {
		result[d.bigM+i] = f.Mul(l1, outer[i])
	}
	return result, nil
}

// Element returns big_omega^i in the first block and omega*small_omega^(i-big_m)
// in the coset block.
func (d *StepRadix2[E]) Element(i uint64) E {
	if i < d.bigM {
		return d.f.Exp(d.bigOmega, i)
	}
	return d.f.Mul(d.omega, d.f.Exp(d.smallOmega, i-d.bigM))
}

// EvaluateVanishingPolynomial returns
// Z(t) = (t^big_m - 1) * (t^small_m - omega^small_m).
func (d *StepRadix2[E]) EvaluateVanishingPolynomial(t E) E {
	f := d.f
	return f.Mul(
		f.Sub(f.Exp(t, d.bigM), f.One()),
		f.Sub(f.Exp(t, d.smallM), f.Exp(d.omega, d.smallM)),
	)
}

// AddVanishing adds c*Z(X) to the length-(m+1) coefficient vector h. The
// four deltas are the expanded coefficients of
// Z(X) = (X^big_m - 1)*(X^small_m - omega^small_m).
func (d *StepRadix2[E]) AddVanishing(c E, h []E) error {
	if uint64(len(h)) != d.m+1 {
		return apperrors.NewDomainSizeError(stepName, d.m, "coefficient vector has length %d, want %d", len(h), d.m+1)
	}
	f := d.f
	omegaToSmall := f.Exp(d.omega, d.smallM)
	cShift := f.Mul(c, omegaToSmall)
	h[d.m] = f.Add(h[d.m], c)
	h[d.bigM] = f.Sub(h[d.bigM], cShift)
	h[d.smallM] = f.Sub(h[d.smallM], c)
	h[0] = f.Add(h[0], cShift)
	return nil
}

// DivideByVanishingOnCoset divides the evaluations p over g*D by Z. Over the
// big block, Z(g*big_omega^i) varies only through the omega^(2*small_m*i)
// factor of its second term and is maintained incrementally; over the coset
// block, Z is the single constant Z((g*omega) * small_omega^i).
func (d *StepRadix2[E]) DivideByVanishingOnCoset(p []E) error {
	if err := checkLength(stepName, d.m, p); err != nil {
		return err
	}
	f := d.f
	g := f.MultiplicativeGenerator()

	z0 := f.Sub(f.Exp(g, d.bigM), f.One())
	gToSmallZ0 := f.Mul(f.Exp(g, d.smallM), z0)
	omegaToSmall := f.Exp(d.omega, d.smallM)
	omegaToSmallZ0 := f.Mul(omegaToSmall, z0)
	omegaTo2Small := f.Square(omegaToSmall)

	elt := f.One()
	for i := uint64(0); i < d.bigM; i++ {
		p[i] = f.Mul(p[i], f.Inverse(f.Sub(f.Mul(gToSmallZ0, elt), omegaToSmallZ0)))
		elt = f.Mul(elt, omegaTo2Small)
	}

	gw := f.Mul(g, d.omega)
	z1 := f.Mul(
		f.Sub(f.Exp(gw, d.bigM), f.One()),
		f.Sub(f.Exp(gw, d.smallM), omegaToSmall),
	)
	z1Inv := f.Inverse(z1)
	for i := uint64(0); i < d.smallM; i++ {
		p[d.bigM+i] = f.Mul(p[d.bigM+i], z1Inv)
	}
	return nil
}
