package fft

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/polyfft/field/fp"
)

// TestParallelMatchesSerial verifies bit-for-bit equality of the two kernels
// across vector sizes and lane counts, including lane counts exceeding the
// vector (which must fall back to serial).
func TestParallelMatchesSerial(t *testing.T) {
	t.Parallel()
	f := fp.New()
	rng := rand.New(rand.NewSource(1234))

	for _, n := range []uint64{2, 4, 8, 64, 256, 1024} {
		for _, logCPUs := range []uint32{0, 1, 2, 3, 5, 12} {
			t.Run(fmt.Sprintf("n=%d/lanes=2^%d", n, logCPUs), func(t *testing.T) {
				omega, ok := f.RootOfUnity(n)
				if !ok {
					t.Fatalf("no %d-th root of unity", n)
				}
				a := randomVector(rng, int(n))
				serial := append([]fp.Element(nil), a...)
				par := append([]fp.Element(nil), a...)

				if err := Radix2[fp.Element](f, serial, omega); err != nil {
					t.Fatalf("serial: %v", err)
				}
				if err := radix2ParallelLanes[fp.Element](f, par, omega, logCPUs); err != nil {
					t.Fatalf("parallel: %v", err)
				}
				if diff := cmp.Diff(serial, par); diff != "" {
					t.Errorf("kernel outputs differ (-serial +parallel):\n%s", diff)
				}
			})
		}
	}
}

// TestParallelMatchesSerial_PropertyBased drives the same equivalence with
// random vectors and lane counts.
func TestParallelMatchesSerial_PropertyBased(t *testing.T) {
	f := fp.New()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("parallel kernel equals serial kernel", prop.ForAll(
		func(raw []uint64, logN uint8, logCPUs uint8) bool {
			n := uint64(1) << (logN % 8)
			omega, _ := f.RootOfUnity(n)

			a := make([]fp.Element, n)
			for i := range a {
				a[i] = f.FromUint64(raw[i%len(raw)] + uint64(i))
			}
			serial := append([]fp.Element(nil), a...)
			par := append([]fp.Element(nil), a...)

			if err := Radix2[fp.Element](f, serial, omega); err != nil {
				return false
			}
			if err := radix2ParallelLanes[fp.Element](f, par, omega, uint32(logCPUs%4)); err != nil {
				return false
			}
			for i := range serial {
				if serial[i] != par[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(8, gen.UInt64()),
		gen.UInt8(),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}

func TestRadix2ParallelPublicEntry(t *testing.T) {
	t.Parallel()
	f := fp.New()
	rng := rand.New(rand.NewSource(5))

	const n = 512
	omega, _ := f.RootOfUnity(n)
	a := randomVector(rng, n)
	serial := append([]fp.Element(nil), a...)

	if err := Radix2[fp.Element](f, serial, omega); err != nil {
		t.Fatalf("serial: %v", err)
	}
	if err := Radix2Parallel[fp.Element](f, a, omega); err != nil {
		t.Fatalf("parallel: %v", err)
	}
	if diff := cmp.Diff(serial, a); diff != "" {
		t.Errorf("Radix2Parallel differs from Radix2:\n%s", diff)
	}
}
