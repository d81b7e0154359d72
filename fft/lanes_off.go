//go:build nofftparallel

package fft

// The nofftparallel build tag disables the fork-join pool: every transform
// runs on the serial kernel. Build with: go build -tags=nofftparallel
func logLanes() uint32 { return 0 }
