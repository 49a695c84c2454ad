package tensor

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/ndcore/internal/backend/cpu"
)

// Filled creates a tensor with every element set to value.
//
// Example:
//
//	t, err := tensor.Filled[float32](tensor.Shape{3, 3}, 3.14)
func Filled[T Numeric](shape Shape, value T, opts ...Option) (*Tensor[T], error) {
	o := buildOptions(opts)
	var zero T
	t, err := newTensor(shape, zero, o.backend)
	if err != nil {
		return nil, fmt.Errorf("filled: %w", err)
	}
	if value != zero {
		cpu.Fill(o.backend, t.Data(), value)
	}
	return t, nil
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t, err := tensor.Zeros[float32](tensor.Shape{3, 4})
func Zeros[T Numeric](shape Shape, opts ...Option) (*Tensor[T], error) {
	return Filled(shape, T(0), opts...)
}

// Ones creates a tensor filled with ones.
func Ones[T Numeric](shape Shape, opts ...Option) (*Tensor[T], error) {
	return Filled(shape, T(1), opts...)
}

// Uniform creates a tensor whose elements are independent draws from [0, 1).
// The draws come from the WithRand source if given, else from math/rand's
// global source.
// Note: Uses math/rand (not crypto/rand) - appropriate for statistical purposes.
//
// Example:
//
//	t, err := tensor.Uniform[float32](tensor.Shape{100, 100})
func Uniform[T Float](shape Shape, opts ...Option) (*Tensor[T], error) {
	o := buildOptions(opts)
	t, err := newTensor(shape, T(0), o.backend)
	if err != nil {
		return nil, fmt.Errorf("uniform: %w", err)
	}

	draw := rand.Float64 //nolint:gosec // G404: statistical use
	if o.rng != nil {
		draw = o.rng.Float64
	}

	data := t.Data()
	for i := range data {
		v := T(draw())
		// float32 rounding can carry a draw just below 1 up to 1.
		if v >= 1 {
			v = T(0)
		}
		data[i] = v
	}
	return t, nil
}

// FromSlice creates a tensor from a Go slice in row-major order.
// The slice is copied into the tensor's memory.
func FromSlice[T Numeric](data []T, shape Shape, opts ...Option) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("from slice: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("from slice: %w: shape %v requires %d elements, but got %d",
			ErrLengthMismatch, shape, shape.NumElements(), len(data))
	}

	o := buildOptions(opts)
	t, err := newTensor(shape, T(0), o.backend)
	if err != nil {
		return nil, err
	}
	copy(t.Data(), data)
	return t, nil
}

// Must returns t, panicking if err is non-nil.
// Intended for tests and for shapes known to be valid.
func Must[T Numeric](t *Tensor[T], err error) *Tensor[T] {
	if err != nil {
		panic(err)
	}
	return t
}
