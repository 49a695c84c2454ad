// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/ndcore/internal/tensor"

// Buffer is a reference-counted handle over a fixed-length run of elements.
//
// Every handle from NewBuffer, Adopt or Copy must be released exactly once;
// the storage is freed when the last handle is released.
//
// Example:
//
//	a := tensor.NewBuffer[float32](4, 0)
//	b := a.Copy()        // RefCount() == 2, no allocation
//	b.Release()          // RefCount() == 1
//	freed := a.Release() // true, a.IsValid() == false
type Buffer[T Numeric] = tensor.Buffer[T]

// Cell is a bounds-checked reference to one element, possibly invalid.
type Cell[T Numeric] = tensor.Cell[T]

// Storage is a tensor's flat element store.
type Storage[T Numeric] = tensor.Storage[T]

// NewBuffer allocates n elements, each set to fill.
func NewBuffer[T Numeric](n int, fill T) *Buffer[T] {
	return tensor.NewBuffer(n, fill)
}

// Adopt wraps caller-allocated data in a buffer with a single owner.
func Adopt[T Numeric](data []T) *Buffer[T] {
	return tensor.Adopt(data)
}

// NewStorage allocates a flat store of count elements set to fill.
func NewStorage[T Numeric](count int, fill T) (*Storage[T], error) {
	return tensor.NewStorage(count, fill)
}
