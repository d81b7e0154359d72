// Package domain provides evaluation domains for polynomial FFTs over a
// finite field: ordered sets of distinct field points on which polynomials
// move between coefficient and evaluation form.
//
// Five constructions share one contract. The radix-2 family (basic, extended,
// step) covers sizes 2^k, 2^(k+1) and 2^k + 2^r through the shared radix-2
// kernel; the geometric- and arithmetic-sequence domains serve fields without
// enough 2-adic structure. New picks a construction for a requested minimum
// size by trying candidates in a fixed order.
//
// A domain is immutable after construction and may be shared by concurrent
// callers operating on disjoint vectors. Vectors passed to the in-place
// operations are owned by the operation for its duration and must be treated
// as undefined after a failure.
package domain

import (
	apperrors "github.com/agbru/polyfft/errors"
)

// EvaluationDomain is the capability set shared by all constructions over a
// field with element type E.
type EvaluationDomain[E any] interface {
	// Size returns the number m of domain elements. Callers that requested a
	// minimum size must read the actual size from here.
	Size() uint64

	// FFT transforms, in place, a length-m coefficient vector into its
	// evaluations over the domain.
	FFT(a []E) error

	// IFFT transforms, in place, a length-m evaluation vector back into
	// coefficients. It is the exact inverse of FFT.
	IFFT(a []E) error

	// CosetFFT evaluates the polynomial over the shifted domain g*D.
	CosetFFT(a []E, g E) error

	// ICosetFFT inverts CosetFFT for the same g.
	ICosetFFT(a []E, g E) error

	// EvaluateAllLagrangePolynomials returns the length-m vector of Lagrange
	// basis evaluations (L_0(t), ..., L_{m-1}(t)). For any polynomial p of
	// degree below m, p(t) = sum_i p(d_i) * L_i(t).
	EvaluateAllLagrangePolynomials(t E) ([]E, error)

	// Element returns the i-th domain element d_i.
	Element(i uint64) E

	// EvaluateVanishingPolynomial returns Z(t) for the vanishing polynomial
	// Z(X) = prod_i (X - d_i) of the domain.
	EvaluateVanishingPolynomial(t E) E

	// AddVanishing adds c*Z(X) to the degree-m coefficient vector h, which
	// must have length m+1.
	AddVanishing(c E, h []E) error

	// DivideByVanishingOnCoset divides, pointwise and in place, a length-m
	// vector of evaluations over the coset g*D (g the field's multiplicative
	// generator) by the corresponding evaluations of Z.
	DivideByVanishingOnCoset(p []E) error
}

// Construction names, used in error hints and as metric labels.
const (
	basicName      = "basic radix-2"
	extendedName   = "extended radix-2"
	stepName       = "step radix-2"
	geometricName  = "geometric sequence"
	arithmeticName = "arithmetic sequence"
)

// checkLength validates the length of an operation's input vector.
func checkLength[E any](construction string, m uint64, a []E) error {
	if uint64(len(a)) != m {
		return apperrors.NewDomainSizeError(construction, m, "input vector has length %d, want %d", len(a), m)
	}
	return nil
}
