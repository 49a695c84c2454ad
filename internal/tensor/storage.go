package tensor

import "fmt"

// Storage is the flat, un-shaped element store of a tensor: one Buffer
// handle plus the element count it was allocated with.
//
// Copy shares the handle (copy-on-handle). Writes through any copy are
// visible through all of them.
type Storage[T Numeric] struct {
	buf   *Buffer[T]
	count int
}

// NewStorage allocates count elements, each set to fill.
func NewStorage[T Numeric](count int, fill T) (*Storage[T], error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative element count %d", ErrInvalidShape, count)
	}
	return &Storage[T]{buf: NewBuffer(count, fill), count: count}, nil
}

// ZeroStorage allocates count zero-valued elements.
func ZeroStorage[T Numeric](count int) (*Storage[T], error) {
	var zero T
	return NewStorage(count, zero)
}

// CellAt returns a cell bound to element offset, or an invalid cell
// wrapping ErrIndexOutOfRange when offset is outside [0, Len()).
func (s *Storage[T]) CellAt(offset int) Cell[T] {
	if offset < 0 || offset >= s.count {
		return invalidCell[T](fmt.Errorf("%w: offset %d, length %d", ErrIndexOutOfRange, offset, s.count))
	}
	return validCell(s.buf, offset)
}

// Buffer returns the underlying handle. It is shared, not copied; call
// Copy on it to take an independent owner.
func (s *Storage[T]) Buffer() *Buffer[T] {
	return s.buf
}

// Len returns the element count.
func (s *Storage[T]) Len() int {
	return s.count
}

// Data returns the elements as a slice (zero-copy).
func (s *Storage[T]) Data() []T {
	return s.buf.Slice()
}

// Copy returns a container sharing the same buffer (shared count + 1).
func (s *Storage[T]) Copy() *Storage[T] {
	return &Storage[T]{buf: s.buf.Copy(), count: s.count}
}

// Release drops this container's buffer handle.
// Reports whether the underlying storage was freed.
func (s *Storage[T]) Release() bool {
	return s.buf.Release()
}
