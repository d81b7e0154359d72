// Package fp implements the prime field F_p for p = 2013265921 = 15*2^27 + 1.
// The modulus is NTT-friendly: the multiplicative group has 2-adicity 27, so
// primitive 2^k-th roots of unity exist for every k <= 27. Elements are kept
// reduced in a uint64, and products fit in 64 bits because p < 2^31.
package fp

import (
	"fmt"

	"github.com/agbru/polyfft/field"
)

const (
	// Modulus is the field characteristic p.
	Modulus uint64 = 2013265921

	// Generator is the smallest generator of the multiplicative group F_p^*.
	Generator uint64 = 31

	// TwoAdicity is the largest k such that 2^k divides p-1.
	TwoAdicity uint32 = 27
)

// Element is a field element, always kept in [0, Modulus).
type Element uint64

// Field implements field.Field[Element]. The zero value is ready to use.
type Field struct{}

var _ field.Field[Element] = Field{}

// New returns the field F_p.
func New() Field { return Field{} }

// Zero returns the additive identity.
func (Field) Zero() Element { return 0 }

// One returns the multiplicative identity.
func (Field) One() Element { return 1 }

// FromUint64 reduces v modulo p.
func (Field) FromUint64(v uint64) Element { return Element(v % Modulus) }

// Add returns a + b mod p.
func (Field) Add(a, b Element) Element {
	s := uint64(a) + uint64(b)
	if s >= Modulus {
		s -= Modulus
	}
	return Element(s)
}

// Sub returns a - b mod p.
func (Field) Sub(a, b Element) Element {
	if a >= b {
		return a - b
	}
	return a + Element(Modulus) - b
}

// Neg returns -a mod p.
func (Field) Neg(a Element) Element {
	if a == 0 {
		return 0
	}
	return Element(Modulus) - a
}

// Mul returns a * b mod p. Both operands are below 2^31, so the product
// cannot overflow a uint64.
func (Field) Mul(a, b Element) Element {
	return Element(uint64(a) * uint64(b) % Modulus)
}

// Square returns a * a mod p.
func (f Field) Square(a Element) Element { return f.Mul(a, a) }

// Exp returns a^n by square-and-multiply.
func (f Field) Exp(a Element, n uint64) Element {
	result := Element(1)
	base := a
	for n > 0 {
		if n&1 == 1 {
			result = f.Mul(result, base)
		}
		base = f.Mul(base, base)
		n >>= 1
	}
	return result
}

// Inverse returns a^-1 via Fermat's little theorem. a must be nonzero.
func (f Field) Inverse(a Element) Element {
	if a == 0 {
		panic(fmt.Sprintf("fp: inverse of zero in F_%d", Modulus))
	}
	return f.Exp(a, Modulus-2)
}

// Equal reports whether a and b are the same element. Representations are
// canonical, so this is plain integer equality.
func (Field) Equal(a, b Element) bool { return a == b }

// MultiplicativeGenerator returns the generator of F_p^*.
func (Field) MultiplicativeGenerator() Element { return Element(Generator) }

// TwoAdicity returns the 2-adicity of p-1.
func (Field) TwoAdicity() uint32 { return TwoAdicity }

// RootOfUnity returns a primitive n-th root of unity for n = 2^k, k <= 27.
// The root is g^((p-1)/n) for the group generator g, which has exact order n
// because g generates the full multiplicative group.
func (f Field) RootOfUnity(n uint64) (Element, bool) {
	if n == 0 || n&(n-1) != 0 {
		return 0, false
	}
	if n > 1<<TwoAdicity {
		return 0, false
	}
	return f.Exp(Element(Generator), (Modulus-1)/n), true
}

// GeometricGenerator returns the ratio of the geometric fallback domain.
// 5 has multiplicative order 2^26*3 = 201326592, so its powers stay distinct
// for any realistic domain size, and it is kept distinct from the group
// generator so that coset points g*5^i stay clear of the domain.
func (Field) GeometricGenerator() Element { return Element(5) }

// ArithmeticGenerator returns the step of the arithmetic fallback domain.
func (Field) ArithmeticGenerator() Element { return Element(7) }
