package domain

import (
	apperrors "github.com/agbru/polyfft/errors"
	"github.com/agbru/polyfft/field"
)

// GeometricSequence is the fallback evaluation domain over the geometric
// progression d_i = r^i, where r comes from the field's optional
// GeometricSequenceField capability. It supports any size for which the
// first m powers of r are distinct, independently of the field's 2-adicity.
type GeometricSequence[E any] struct {
	*sequenceCore[E]
}

var _ EvaluationDomain[uint64] = GeometricSequence[uint64]{}

// NewGeometric constructs the domain of size m. It fails with an
// InvalidSizeError for m <= 1 and a DomainSizeError when the field does not
// expose a geometric generator or the generator's order is below m.
func NewGeometric[E any](f field.Field[E], m uint64) (GeometricSequence[E], error) {
	if m <= 1 {
		return GeometricSequence[E]{}, apperrors.NewInvalidSizeError(m)
	}
	gf, ok := f.(field.GeometricSequenceField[E])
	if !ok {
		return GeometricSequence[E]{}, apperrors.NewDomainSizeError(geometricName, m, "field has no geometric sequence generator")
	}
	r := gf.GeometricGenerator()
	if f.Equal(r, f.Zero()) {
		return GeometricSequence[E]{}, apperrors.NewDomainSizeError(geometricName, m, "geometric generator is zero")
	}

	points := make([]E, m)
	points[0] = f.One()
	for i := uint64(1); i < m; i++ {
		points[i] = f.Mul(points[i-1], r)
		// The points r^0..r^(m-1) are distinct exactly when no intermediate
		// power closes the cycle back to one.
		if f.Equal(points[i], f.One()) {
			return GeometricSequence[E]{}, apperrors.NewDomainSizeError(geometricName, m, "geometric generator has order %d", i)
		}
	}

	constructionsTotal.WithLabelValues(geometricName).Inc()
	return GeometricSequence[E]{newSequenceCore(f, geometricName, points)}, nil
}
