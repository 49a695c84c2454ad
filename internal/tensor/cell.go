package tensor

// Cell is a bounds-checked reference to one element of a Buffer.
//
// A Cell is either valid (bound to a buffer and an in-range offset) or
// invalid, in which case Err reports why. It does not own the buffer.
// Reading an invalid cell yields the zero value; writing through it is a
// no-op that returns the cell's error.
//
// A valid cell whose buffer has since been released is a lifetime bug:
// Item and Assign panic with ErrInvalidBuffer.
type Cell[T Numeric] struct {
	buf    *Buffer[T]
	offset int
	err    error
}

func validCell[T Numeric](buf *Buffer[T], offset int) Cell[T] {
	return Cell[T]{buf: buf, offset: offset}
}

func invalidCell[T Numeric](err error) Cell[T] {
	return Cell[T]{offset: -1, err: err}
}

// Valid reports whether the cell refers to an element.
func (c Cell[T]) Valid() bool {
	return c.err == nil && c.buf != nil
}

// Err returns nil for a valid cell, otherwise the reason it is invalid.
func (c Cell[T]) Err() error {
	if c.err != nil {
		return c.err
	}
	if c.buf == nil {
		return ErrNullCell
	}
	return nil
}

// Offset returns the flat offset, or -1 for an invalid cell.
func (c Cell[T]) Offset() int {
	if !c.Valid() {
		return -1
	}
	return c.offset
}

// Item returns the referenced element, or the zero value for an invalid cell.
func (c Cell[T]) Item() T {
	if !c.Valid() {
		var zero T
		return zero
	}
	return c.buf.At(c.offset)
}

// Assign writes v to the referenced element.
// For an invalid cell nothing is written and the cell's error is returned.
func (c Cell[T]) Assign(v T) error {
	if !c.Valid() {
		return c.Err()
	}
	c.buf.SetAt(c.offset, v)
	return nil
}
