//go:build !gmp

// Default big-integer backend using math/big. Projects that install libgmp
// can switch to the GMP backend with: go build -tags=gmp
package bigfp

import "math/big"

type bigInt = big.Int

func newInt() *bigInt { return new(big.Int) }

func oneInt() *bigInt { return big.NewInt(1) }
