package bigfp

import (
	"testing"
)

func TestNewValidation(t *testing.T) {
	t.Parallel()
	if _, err := New("not-a-number", 7, 32); err == nil {
		t.Error("New accepted a malformed modulus")
	}
	if _, err := New("65536", 3, 16); err == nil {
		t.Error("New accepted an even modulus")
	}
	if _, err := New("-17", 3, 4); err == nil {
		t.Error("New accepted a negative modulus")
	}
}

func TestArithmetic(t *testing.T) {
	t.Parallel()
	f, err := New("65537", 3, 16) // F_65537, 2-adicity 16
	if err != nil {
		t.Fatal(err)
	}

	a := f.FromUint64(12345)
	b := f.FromUint64(54321)

	if !f.Equal(f.Sub(f.Add(a, b), b), a) {
		t.Error("add/sub do not invert")
	}
	if !f.Equal(f.Mul(a, f.Inverse(a)), f.One()) {
		t.Error("a * a^-1 != 1")
	}
	if !f.Equal(f.Square(a), f.Mul(a, a)) {
		t.Error("square != self-product")
	}
	if !f.Equal(f.Add(a, f.Neg(a)), f.Zero()) {
		t.Error("a + (-a) != 0")
	}
	if !f.Equal(f.Exp(a, 0), f.One()) {
		t.Error("a^0 != 1")
	}
	if !f.Equal(f.Exp(a, 3), f.Mul(a, f.Square(a))) {
		t.Error("a^3 != a * a^2")
	}
	if !f.Equal(f.FromUint64(65537), f.Zero()) {
		t.Error("FromUint64 does not reduce")
	}
}

func TestRootsOfUnity(t *testing.T) {
	t.Parallel()
	f, err := New("65537", 3, 16)
	if err != nil {
		t.Fatal(err)
	}

	for _, n := range []uint64{1, 2, 4, 256, 65536} {
		w, ok := f.RootOfUnity(n)
		if !ok {
			t.Fatalf("RootOfUnity(%d) declined", n)
		}
		if !f.Equal(f.Exp(w, n), f.One()) {
			t.Errorf("w^%d != 1", n)
		}
		if n > 1 && f.Equal(f.Exp(w, n/2), f.One()) {
			t.Errorf("w not primitive for n=%d", n)
		}
	}
	if _, ok := f.RootOfUnity(1 << 17); ok {
		t.Error("RootOfUnity past the 2-adicity must decline")
	}
	if _, ok := f.RootOfUnity(12); ok {
		t.Error("RootOfUnity(12) must decline: not a power of two")
	}
}

func TestBLS12381FrParameters(t *testing.T) {
	t.Parallel()
	f := BLS12381Fr()

	if f.TwoAdicity() != 32 {
		t.Fatalf("TwoAdicity = %d, want 32", f.TwoAdicity())
	}
	w, ok := f.RootOfUnity(1 << 32)
	if !ok {
		t.Fatal("no 2^32-th root of unity")
	}
	if !f.Equal(f.Exp(f.Square(w), 1<<31), f.One()) {
		t.Error("(w^2)^(2^31) != 1")
	}
	if f.Equal(f.Exp(w, 1<<31), f.One()) {
		t.Error("w is not primitive of order 2^32")
	}

	g := f.MultiplicativeGenerator()
	if f.Equal(g, f.Zero()) || f.Equal(g, f.One()) {
		t.Error("degenerate multiplicative generator")
	}
}
