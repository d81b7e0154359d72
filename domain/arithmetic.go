package domain

import (
	apperrors "github.com/agbru/polyfft/errors"
	"github.com/agbru/polyfft/field"
)

// ArithmeticSequence is the fallback evaluation domain over the arithmetic
// progression d_i = i*c, where the step c comes from the field's optional
// ArithmeticSequenceField capability. It supports any size below the field
// characteristic, independently of the field's 2-adicity.
type ArithmeticSequence[E any] struct {
	*sequenceCore[E]
}

var _ EvaluationDomain[uint64] = ArithmeticSequence[uint64]{}

// NewArithmetic constructs the domain of size m. It fails with an
// InvalidSizeError for m <= 1 and a DomainSizeError when the field does not
// expose an arithmetic generator, the step is zero, or m exceeds the field
// characteristic (which would fold points together).
func NewArithmetic[E any](f field.Field[E], m uint64) (ArithmeticSequence[E], error) {
	if m <= 1 {
		return ArithmeticSequence[E]{}, apperrors.NewInvalidSizeError(m)
	}
	af, ok := f.(field.ArithmeticSequenceField[E])
	if !ok {
		return ArithmeticSequence[E]{}, apperrors.NewDomainSizeError(arithmeticName, m, "field has no arithmetic sequence generator")
	}
	c := af.ArithmeticGenerator()
	if f.Equal(c, f.Zero()) {
		return ArithmeticSequence[E]{}, apperrors.NewDomainSizeError(arithmeticName, m, "arithmetic step is zero")
	}

	points := make([]E, m)
	points[0] = f.Zero()
	for i := uint64(1); i < m; i++ {
		points[i] = f.Add(points[i-1], c)
		// i*c collides with j*c exactly when i-j vanishes in the field, so
		// distinctness reduces to no index below m mapping to zero.
		if f.Equal(f.FromUint64(i), f.Zero()) {
			return ArithmeticSequence[E]{}, apperrors.NewDomainSizeError(arithmeticName, m, "size exceeds the field characteristic %d", i)
		}
	}

	constructionsTotal.WithLabelValues(arithmeticName).Inc()
	return ArithmeticSequence[E]{newSequenceCore(f, arithmeticName, points)}, nil
}
