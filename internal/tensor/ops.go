package tensor

import (
	"fmt"

	"github.com/born-ml/ndcore/internal/backend/cpu"
)

type kernel[T Numeric] func(b *cpu.CPUBackend, dst, x, y []T)

// Add performs element-wise addition. Shapes must be equal; otherwise the
// error wraps ErrShapeMismatch. The result records [t, other] as children.
//
// Example:
//
//	a := tensor.Must(tensor.Ones[float32](tensor.Shape{2, 2}))
//	b := tensor.Must(tensor.Filled[float32](tensor.Shape{2, 2}, 2))
//	c, err := a.Add(b) // every element is 3
func (t *Tensor[T]) Add(other *Tensor[T]) (*Tensor[T], error) {
	return t.combine(OpAdd, other, cpu.AddInto[T])
}

// Multiply performs element-wise multiplication with the same rules as Add.
func (t *Tensor[T]) Multiply(other *Tensor[T]) (*Tensor[T], error) {
	return t.combine(OpMultiply, other, cpu.MulInto[T])
}

func (t *Tensor[T]) combine(op Op, other *Tensor[T], k kernel[T]) (*Tensor[T], error) {
	if other == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilTensor)
	}
	if !t.shape.Equal(other.shape) {
		return nil, fmt.Errorf("%s: %w: %v vs %v", op, ErrShapeMismatch, t.shape, other.shape)
	}

	result, err := newTensor(t.shape, T(0), t.backend)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	k(t.backend, result.Data(), t.Data(), other.Data())

	result.op = op
	result.children = []*Tensor[T]{t, other}
	return result, nil
}
