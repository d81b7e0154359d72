package fft

import (
	"sync"

	"github.com/agbru/polyfft/field"
	"github.com/agbru/polyfft/internal/parallel"
)

// Radix2Parallel computes the same transform as Radix2 by decomposing the
// length-m DFT into P interleaved sub-DFTs of length m/P, where P is the
// process-wide lane count (host parallelism rounded down to a power of two,
// or 1 under the nofftparallel build tag). When the vector is too short for
// the lane count the serial kernel is used, so the output is identical to
// Radix2 for every input.
func Radix2Parallel[E any](f field.Field[E], a []E, omega E) error {
	return radix2ParallelLanes(f, a, omega, logLanes())
}

// radix2ParallelLanes runs the decomposition with P = 2^logCPUs lanes.
//
// Lane j first accumulates the twisted sub-sum
//
//	tmp[j][i] = sum_s a[(i + s*m/P) mod m] * omega^(j*(i + s*m/P))
//
// with the twiddle maintained incrementally (elt = omega^(j*idx) throughout),
// then applies the serial kernel to tmp[j] with root omega^P. A final
// scatter interleaves the sub-results back into a. The three steps are
// separated by barriers: a step begins only after the previous one has
// completed for every lane.
func radix2ParallelLanes[E any](f field.Field[E], a []E, omega E, logCPUs uint32) error {
	m := uint64(len(a))
	if logCPUs == 0 {
		return Radix2(f, a, omega)
	}
	if !IsPowerOfTwo(m) {
		return Radix2(f, a, omega) // serial kernel reports the size error
	}
	logM := Log2Floor(m)
	if logM < logCPUs {
		return Radix2(f, a, omega)
	}

	lanes := uint64(1) << logCPUs
	chunk := m >> logCPUs

	tmp := make([][]E, lanes)
	for j := range tmp {
		lane := make([]E, chunk)
		for i := range lane {
			lane[i] = f.Zero()
		}
		tmp[j] = lane
	}

	// Step 1: per-lane twisted accumulation.
	var wg sync.WaitGroup
	wg.Add(int(lanes))
	for j := uint64(0); j < lanes; j++ {
		go func(j uint64) {
			defer wg.Done()
			omegaJ := f.Exp(omega, j)
			omegaStep := f.Exp(omega, j*chunk)
			elt := f.One()
			for i := uint64(0); i < chunk; i++ {
				for s := uint64(0); s < lanes; s++ {
					idx := (i + s*chunk) % m
					tmp[j][i] = f.Add(tmp[j][i], f.Mul(a[idx], elt))
					elt = f.Mul(elt, omegaStep)
				}
				elt = f.Mul(elt, omegaJ)
			}
		}(j)
	}
	wg.Wait()

	// Step 2: per-lane serial sub-FFT with root omega^P.
	omegaLanes := f.Exp(omega, lanes)
	var ec parallel.ErrorCollector
	wg.Add(int(lanes))
	for j := uint64(0); j < lanes; j++ {
		go func(j uint64) {
			defer wg.Done()
			ec.SetError(Radix2(f, tmp[j], omegaLanes))
		}(j)
	}
	wg.Wait()
	if err := ec.Err(); err != nil {
		return err
	}

	// Step 3: scatter. Lane i writes the stride-P slice a[i], a[i+P], ...
	wg.Add(int(lanes))
	for i := uint64(0); i < lanes; i++ {
		go func(i uint64) {
			defer wg.Done()
			for j := uint64(0); j < chunk; j++ {
				a[j*lanes+i] = tmp[i][j]
			}
		}(i)
	}
	wg.Wait()
	return nil
}
