// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/born-ml/ndcore/internal/backend/cpu"
	"github.com/born-ml/ndcore/internal/tensor"
)

// Type aliases for public API

// Numeric is a constraint for tensor element types.
// Supported types: float32, float64, int32, int64, uint8.
type Numeric = tensor.Numeric

// Float is the constraint for types accepted by Uniform.
type Float = tensor.Float

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a generic shape-indexed tensor.
type Tensor[T Numeric] = tensor.Tensor[T]

// Op identifies the operation that produced a tensor.
type Op = tensor.Op

// Producing operations.
const (
	OpLeaf     Op = tensor.OpLeaf
	OpAdd      Op = tensor.OpAdd
	OpMultiply Op = tensor.OpMultiply
)

// Option configures tensor construction.
type Option = tensor.Option

// IndexError describes a failed multi-dimensional index lookup.
type IndexError = tensor.IndexError

// Errors returned by tensor operations.
var (
	ErrInvalidShape    = tensor.ErrInvalidShape
	ErrRankMismatch    = tensor.ErrRankMismatch
	ErrIndexOutOfRange = tensor.ErrIndexOutOfRange
	ErrShapeMismatch   = tensor.ErrShapeMismatch
	ErrEmptyTensor     = tensor.ErrEmptyTensor
	ErrLengthMismatch  = tensor.ErrLengthMismatch
	ErrNilTensor       = tensor.ErrNilTensor
	ErrNullCell        = tensor.ErrNullCell
	ErrInvalidBuffer   = tensor.ErrInvalidBuffer
)

// WithBackend sets the CPU backend used by operations on the new tensor.
func WithBackend(b *cpu.CPUBackend) Option {
	return tensor.WithBackend(b)
}

// WithRand sets the random source used by Uniform.
func WithRand(r *rand.Rand) Option {
	return tensor.WithRand(r)
}

// Filled creates a tensor with every element set to value.
func Filled[T Numeric](shape Shape, value T, opts ...Option) (*Tensor[T], error) {
	return tensor.Filled(shape, value, opts...)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t, err := tensor.Zeros[float32](tensor.Shape{3, 4})
func Zeros[T Numeric](shape Shape, opts ...Option) (*Tensor[T], error) {
	return tensor.Zeros[T](shape, opts...)
}

// Ones creates a tensor filled with ones.
func Ones[T Numeric](shape Shape, opts ...Option) (*Tensor[T], error) {
	return tensor.Ones[T](shape, opts...)
}

// Uniform creates a tensor of independent draws from [0, 1).
//
// Example:
//
//	t, err := tensor.Uniform[float32](tensor.Shape{100, 100})
//	mean, _ := t.Mean()         // ~0.5
//	variance, _ := t.Variance() // ~1/12
func Uniform[T Float](shape Shape, opts ...Option) (*Tensor[T], error) {
	return tensor.Uniform[T](shape, opts...)
}

// FromSlice creates a tensor from a Go slice in row-major order.
// The slice is copied.
func FromSlice[T Numeric](data []T, shape Shape, opts ...Option) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape, opts...)
}

// Must returns t, panicking if err is non-nil.
func Must[T Numeric](t *Tensor[T], err error) *Tensor[T] {
	return tensor.Must(t, err)
}
