//go:build !nofftparallel

package fft

import (
	"math/bits"
	"runtime"
)

// logLanes returns log2 of the process-wide worker-lane count: the host's
// reported parallelism rounded down to a power of two. A single-CPU host
// yields 0, which routes every transform to the serial kernel.
func logLanes() uint32 {
	p := runtime.GOMAXPROCS(0)
	if p < 2 {
		return 0
	}
	return uint32(bits.Len(uint(p)) - 1)
}
