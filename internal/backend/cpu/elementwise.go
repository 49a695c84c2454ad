package cpu

import "github.com/born-ml/ndcore/internal/parallel"

// AddInto writes a[i] + b[i] into dst[i].
// All three slices must have the same length.
func AddInto[T Number](cpu *CPUBackend, dst, a, b []T) {
	checkLengths("add", len(dst), len(a), len(b))
	parallel.Range(len(dst), cpu.cfg, func(lo, hi int) {
		d, x, y := dst[lo:hi], a[lo:hi], b[lo:hi]
		for i := range d {
			d[i] = x[i] + y[i]
		}
	})
}

// MulInto writes a[i] * b[i] into dst[i].
// All three slices must have the same length.
func MulInto[T Number](cpu *CPUBackend, dst, a, b []T) {
	checkLengths("mul", len(dst), len(a), len(b))
	parallel.Range(len(dst), cpu.cfg, func(lo, hi int) {
		d, x, y := dst[lo:hi], a[lo:hi], b[lo:hi]
		for i := range d {
			d[i] = x[i] * y[i]
		}
	})
}

// Fill sets every element of dst to v.
func Fill[T Number](cpu *CPUBackend, dst []T, v T) {
	parallel.Range(len(dst), cpu.cfg, func(lo, hi int) {
		d := dst[lo:hi]
		for i := range d {
			d[i] = v
		}
	})
}
