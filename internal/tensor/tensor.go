package tensor

import (
	"fmt"
	"iter"
	"math/rand"

	"github.com/born-ml/ndcore/internal/backend/cpu"
)

// Op identifies how a tensor was produced.
type Op int

// Producing operations recorded on a tensor.
const (
	OpLeaf Op = iota
	OpAdd
	OpMultiply
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpLeaf:
		return "leaf"
	case OpAdd:
		return "add"
	case OpMultiply:
		return "multiply"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Tensor is a shape-indexed view over a flat Storage.
//
// A tensor owns one Storage sized to product(shape) and a gradient Storage
// of the same size. The gradient is allocated zeroed and reserved for a
// future reverse-mode pass; nothing in this package writes it.
//
// Tensors produced by Add or Multiply record their operands as children,
// so the most recent result is the root of a DAG of operations.
//
// Tensor is not safe for concurrent mutation.
type Tensor[T Numeric] struct {
	shape    Shape
	strides  []int
	data     *Storage[T]
	grad     *Storage[T]
	op       Op
	children []*Tensor[T]
	backend  *cpu.CPUBackend
}

// Option configures tensor construction.
type Option func(*options)

type options struct {
	backend *cpu.CPUBackend
	rng     *rand.Rand
}

// WithBackend sets the backend used by operations on the new tensor and on
// tensors derived from it.
func WithBackend(b *cpu.CPUBackend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithRand sets the random source used by Uniform.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

var defaultBackend = cpu.New()

func buildOptions(opts []Option) options {
	o := options{backend: defaultBackend}
	for _, opt := range opts {
		opt(&o)
	}
	if o.backend == nil {
		o.backend = defaultBackend
	}
	return o
}

func newTensor[T Numeric](shape Shape, fill T, b *cpu.CPUBackend) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	n := shape.NumElements()
	data, err := NewStorage(n, fill)
	if err != nil {
		return nil, err
	}
	grad, err := ZeroStorage[T](n)
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
		data:    data,
		grad:    grad,
		op:      OpLeaf,
		backend: b,
	}, nil
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// Strides returns a copy of the tensor's row-major strides.
func (t *Tensor[T]) Strides() []int {
	return append([]int(nil), t.strides...)
}

// Rank returns the number of dimensions.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return dataTypeOf[T]()
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return t.data.Len()
}

// Storage returns the tensor's flat data container.
func (t *Tensor[T]) Storage() *Storage[T] {
	return t.data
}

// Grad returns the reserved gradient container.
func (t *Tensor[T]) Grad() *Storage[T] {
	return t.grad
}

// Op returns the operation that produced the tensor.
func (t *Tensor[T]) Op() Op {
	return t.op
}

// Children returns the operands recorded by Add or Multiply, in order.
// Leaf tensors have none.
func (t *Tensor[T]) Children() []*Tensor[T] {
	return t.children
}

// Backend returns the backend used by this tensor's operations.
func (t *Tensor[T]) Backend() *cpu.CPUBackend {
	return t.backend
}

// Data returns a slice view of the tensor's data in storage order.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	return t.data.Data()
}

// Get returns a cell for the element at idx. The cell is invalid, with an
// *IndexError, if len(idx) differs from the rank or any idx[i] is outside
// [0, shape[i]).
func (t *Tensor[T]) Get(idx ...int) Cell[T] {
	offset, err := offsetOf(t.shape, t.strides, idx)
	if err != nil {
		return invalidCell[T](err)
	}
	return t.data.CellAt(offset)
}

// Set writes value at idx. Nothing is written if idx is invalid, and the
// *IndexError is returned.
func (t *Tensor[T]) Set(value T, idx ...int) error {
	return t.Get(idx...).Assign(value)
}

// At returns the element at idx, or an *IndexError.
func (t *Tensor[T]) At(idx ...int) (T, error) {
	c := t.Get(idx...)
	if !c.Valid() {
		var zero T
		return zero, c.Err()
	}
	return c.Item(), nil
}

// All returns an iterator over the elements in storage order.
// Each call starts a fresh traversal.
func (t *Tensor[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range t.Data() {
			if !yield(v) {
				return
			}
		}
	}
}

// Enumerate returns an iterator over (flat offset, element) pairs.
func (t *Tensor[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range t.Data() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// ForEach calls fn for every element in storage order.
func (t *Tensor[T]) ForEach(fn func(T)) {
	for v := range t.All() {
		fn(v)
	}
}

// Clone returns a leaf tensor sharing this tensor's data storage
// (shared count + 1) with its own zeroed gradient.
func (t *Tensor[T]) Clone() *Tensor[T] {
	var zero T
	n := t.data.Len()
	return &Tensor[T]{
		shape:   t.shape.Clone(),
		strides: append([]int(nil), t.strides...),
		data:    t.data.Copy(),
		grad:    &Storage[T]{buf: NewBuffer(n, zero), count: n},
		op:      OpLeaf,
		backend: t.backend,
	}
}

// Release drops the tensor's data and gradient handles. Element access on a
// released tensor panics with ErrInvalidBuffer.
func (t *Tensor[T]) Release() {
	t.data.Release()
	t.grad.Release()
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v", t.DType(), t.shape)
}
