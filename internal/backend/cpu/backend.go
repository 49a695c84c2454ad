// Package cpu implements the CPU kernels behind ndcore tensors.
//
// Kernels operate on flat slices in storage order. Shape checks happen in the
// tensor package before a kernel is called; kernels only verify lengths.
package cpu

import (
	"fmt"

	"github.com/born-ml/ndcore/internal/parallel"
)

// Number is the set of element types the kernels accept.
type Number interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// CPUBackend runs tensor kernels on the CPU.
type CPUBackend struct {
	cfg parallel.Config
}

// New creates a CPU backend with the default parallel configuration.
func New() *CPUBackend {
	return &CPUBackend{cfg: parallel.DefaultConfig()}
}

// NewWithConfig creates a CPU backend with an explicit parallel configuration.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{cfg: cfg}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Config returns the parallel configuration used by elementwise kernels.
func (cpu *CPUBackend) Config() parallel.Config {
	return cpu.cfg
}

func checkLengths(op string, dst int, srcs ...int) {
	for _, n := range srcs {
		if n != dst {
			panic(fmt.Sprintf("%s: length mismatch: dst %d, src %d", op, dst, n))
		}
	}
}
