package tensor

import (
	"fmt"
	"math"
)

// Shape represents the dimensions of a tensor, outermost first.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the product of the dimensions.
// An empty shape has no elements; Validate rejects it.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has rank >= 1, no negative dimension and
// an element count that fits in an int.
// A zero dimension is allowed and yields an empty tensor.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: rank must be at least 1", ErrInvalidShape)
	}
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrInvalidShape, i, dim)
		}
	}
	n := 1
	for _, dim := range s {
		if dim == 0 {
			return nil
		}
		if n > math.MaxInt/dim {
			return fmt.Errorf("%w: element count of %v overflows int", ErrInvalidShape, s)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// stride[i] is the product of all dimensions after i; the last stride is 1.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Offset maps a multi-dimensional index to its row-major flat offset:
// sum over every dimension i of idx[i] * stride[i].
// Returns an *IndexError on rank mismatch or an index outside [0, s[i]).
func (s Shape) Offset(idx []int) (int, error) {
	return offsetOf(s, s.ComputeStrides(), idx)
}

func offsetOf(shape Shape, strides, idx []int) (int, error) {
	if len(idx) != len(shape) {
		return -1, &IndexError{Index: append([]int(nil), idx...), Shape: shape.Clone(), Dim: -1, Err: ErrRankMismatch}
	}

	offset := 0
	for i, v := range idx {
		if v < 0 || v >= shape[i] {
			return -1, &IndexError{Index: append([]int(nil), idx...), Shape: shape.Clone(), Dim: i, Err: ErrIndexOutOfRange}
		}
		offset += v * strides[i]
	}
	return offset, nil
}

// Unravel is the inverse of Offset: it maps a flat offset back to an index.
func (s Shape) Unravel(offset int) ([]int, error) {
	n := s.NumElements()
	if offset < 0 || offset >= n {
		return nil, fmt.Errorf("%w: offset %d, %d elements in shape %v", ErrIndexOutOfRange, offset, n, s)
	}
	idx := make([]int, len(s))
	for d := len(s) - 1; d >= 0; d-- {
		idx[d] = offset % s[d]
		offset /= s[d]
	}
	return idx, nil
}
