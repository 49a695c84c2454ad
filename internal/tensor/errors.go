package tensor

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors. Match them with errors.Is.
var (
	ErrInvalidShape    = errors.New("tensor: invalid shape")
	ErrRankMismatch    = errors.New("tensor: index rank does not match shape rank")
	ErrIndexOutOfRange = errors.New("tensor: index out of range")
	ErrShapeMismatch   = errors.New("tensor: shape mismatch")
	ErrEmptyTensor     = errors.New("tensor: empty tensor")
	ErrLengthMismatch  = errors.New("tensor: data length does not match shape")
	ErrNilTensor       = errors.New("tensor: nil tensor")
	ErrNullCell        = errors.New("tensor: null cell reference")

	// ErrInvalidBuffer is the panic value (wrapped) for use of a released
	// or never-allocated buffer handle.
	ErrInvalidBuffer = errors.New("tensor: invalid buffer handle")
)

// IndexError describes a failed multi-dimensional index lookup.
// Err is ErrRankMismatch or ErrIndexOutOfRange.
type IndexError struct {
	Index []int // Index as given by the caller
	Shape Shape // Shape it was checked against
	Dim   int   // Offending dimension, -1 for a rank mismatch
	Err   error
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	if e.Dim < 0 {
		return fmt.Sprintf("%v: got %d indices %v for shape %v", e.Err, len(e.Index), e.Index, e.Shape)
	}
	return fmt.Sprintf("%v: index %d at dimension %d (size %d) in %s for shape %v",
		e.Err, e.Index[e.Dim], e.Dim, e.Shape[e.Dim], formatIndex(e.Index), e.Shape)
}

// Unwrap returns the sentinel error.
func (e *IndexError) Unwrap() error {
	return e.Err
}

func formatIndex(idx []int) string {
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = fmt.Sprint(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
