//go:build gmp

// GMP-backed big-integer arithmetic, conditionally compiled with the "gmp"
// build tag. The build tag architecture ensures that:
//   - Projects can build without GMP (the default, using math/big)
//   - GMP support is opt-in, requiring: go build -tags=gmp
//   - The codebase remains portable across systems without libgmp installed
//
// github.com/ncw/gmp mirrors the math/big API, so the backend swap is a type
// alias plus constructors; the field arithmetic in bigfp.go is shared.
package bigfp

import "github.com/ncw/gmp"

type bigInt = gmp.Int

func newInt() *bigInt { return new(gmp.Int) }

func oneInt() *bigInt { return gmp.NewInt(1) }
