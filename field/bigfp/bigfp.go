// Package bigfp implements prime fields F_p for arbitrary odd prime moduli
// over big integers. It backs the evaluation domains when the modulus does
// not fit machine words, e.g. the scalar fields of pairing-friendly curves.
//
// The big-integer backend is selected at build time: math/big by default, or
// GMP with the "gmp" build tag (see int_big.go and int_gmp.go). The public
// API is identical under both backends.
package bigfp

import (
	"fmt"

	"github.com/agbru/polyfft/field"
)

// Element is a field element. Values are always kept reduced in [0, p).
// The zero Element is not valid; obtain elements from a Field.
type Element struct {
	v *bigInt
}

// Field implements field.Field[Element] for a runtime-chosen prime modulus.
type Field struct {
	p          *bigInt
	pMinus1    *bigInt
	generator  uint64
	twoAdicity uint32
}

var _ field.Field[Element] = (*Field)(nil)

// New constructs F_p from the decimal representation of an odd prime modulus,
// a generator of the multiplicative group, and the 2-adicity of p-1. The
// modulus is not primality-checked; callers supply known field parameters.
func New(modulusDecimal string, generator uint64, twoAdicity uint32) (*Field, error) {
	p, ok := newInt().SetString(modulusDecimal, 10)
	if !ok {
		return nil, fmt.Errorf("bigfp: invalid modulus %q", modulusDecimal)
	}
	if p.Sign() <= 0 || p.Bit(0) == 0 {
		return nil, fmt.Errorf("bigfp: modulus %q is not an odd prime", modulusDecimal)
	}
	pm1 := newInt().Sub(p, oneInt())
	return &Field{p: p, pMinus1: pm1, generator: generator, twoAdicity: twoAdicity}, nil
}

// BLS12381Fr returns the scalar field of BLS12-381
// (r = 52435875175126190479447740508185965837690552500527637822603658699938581184513),
// whose multiplicative group has 2-adicity 32 with generator 7.
func BLS12381Fr() *Field {
	f, err := New("52435875175126190479447740508185965837690552500527637822603658699938581184513", 7, 32)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Field) wrap(v *bigInt) Element { return Element{v: v} }

// Zero returns the additive identity.
func (f *Field) Zero() Element { return f.wrap(newInt()) }

// One returns the multiplicative identity.
func (f *Field) One() Element { return f.wrap(oneInt()) }

// FromUint64 returns the canonical image of v in F_p.
func (f *Field) FromUint64(v uint64) Element {
	return f.wrap(newInt().Mod(newInt().SetUint64(v), f.p))
}

// Add returns a + b.
func (f *Field) Add(a, b Element) Element {
	return f.wrap(newInt().Mod(newInt().Add(a.v, b.v), f.p))
}

// Sub returns a - b.
func (f *Field) Sub(a, b Element) Element {
	return f.wrap(newInt().Mod(newInt().Sub(a.v, b.v), f.p))
}

// Neg returns -a.
func (f *Field) Neg(a Element) Element {
	return f.wrap(newInt().Mod(newInt().Neg(a.v), f.p))
}

// Mul returns a * b.
func (f *Field) Mul(a, b Element) Element {
	return f.wrap(newInt().Mod(newInt().Mul(a.v, b.v), f.p))
}

// Square returns a * a.
func (f *Field) Square(a Element) Element { return f.Mul(a, a) }

// Exp returns a^n.
func (f *Field) Exp(a Element, n uint64) Element {
	return f.wrap(newInt().Exp(a.v, newInt().SetUint64(n), f.p))
}

// Inverse returns a^-1. a must be nonzero.
func (f *Field) Inverse(a Element) Element {
	if a.v == nil || a.v.Sign() == 0 {
		panic("bigfp: inverse of zero")
	}
	return f.wrap(newInt().ModInverse(a.v, f.p))
}

// Equal reports whether a and b are the same element.
func (f *Field) Equal(a, b Element) bool { return a.v.Cmp(b.v) == 0 }

// MultiplicativeGenerator returns the configured generator of F_p^*.
func (f *Field) MultiplicativeGenerator() Element { return f.FromUint64(f.generator) }

// TwoAdicity returns the configured 2-adicity of p-1.
func (f *Field) TwoAdicity() uint32 { return f.twoAdicity }

// RootOfUnity returns g^((p-1)/n) for n = 2^k, k <= TwoAdicity.
func (f *Field) RootOfUnity(n uint64) (Element, bool) {
	if n == 0 || n&(n-1) != 0 {
		return Element{}, false
	}
	if f.twoAdicity < 64 && n > uint64(1)<<f.twoAdicity {
		return Element{}, false
	}
	e := newInt().Div(f.pMinus1, newInt().SetUint64(n))
	g := newInt().SetUint64(f.generator)
	return f.wrap(newInt().Exp(g, e, f.p)), true
}

// GeometricGenerator returns the ratio of the geometric fallback domain,
// kept distinct from the group generator so that coset points stay clear of
// the domain.
func (f *Field) GeometricGenerator() Element { return f.FromUint64(5) }

// ArithmeticGenerator returns the step of the arithmetic fallback domain.
func (f *Field) ArithmeticGenerator() Element { return f.FromUint64(3) }

// String formats an element in decimal, for test failure messages.
func (e Element) String() string {
	if e.v == nil {
		return "<nil>"
	}
	return e.v.String()
}
