// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides shape-indexed numeric tensors over
// reference-counted buffers.
//
// # Overview
//
// The package is layered, leaves first:
//   - Buffer[T]: reference-counted handle over a fixed-length element run
//   - Cell[T]: bounds-checked reference to one element, possibly invalid
//   - Storage[T]: flat element store (one Buffer plus its element count)
//   - Tensor[T]: shape, row-major strides, storage, reserved gradient
//
// # Basic Usage
//
//	import "github.com/born-ml/ndcore/tensor"
//
//	func main() {
//	    x, _ := tensor.Ones[float32](tensor.Shape{2, 2})
//	    y, _ := tensor.Filled[float32](tensor.Shape{2, 2}, 2)
//
//	    z, err := x.Add(y) // every element is 3
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    mean, _ := z.Mean()
//	}
//
// # Indexing
//
// Get returns a Cell. A rank mismatch or an out-of-range index yields an
// invalid cell whose Err wraps ErrRankMismatch or ErrIndexOutOfRange; it
// reads as zero and ignores writes. Set and At return the error directly.
//
//	c := x.Get(1, 0)
//	if !c.Valid() {
//	    return c.Err()
//	}
//	v := c.Item()
//
// # Errors
//
// Shape and emptiness errors are returned from Add, Multiply, Mean,
// Variance and StdDev (ErrShapeMismatch, ErrEmptyTensor). Use of a released
// buffer panics with an error wrapping ErrInvalidBuffer.
//
// # Memory Management
//
// Buffers are reference-counted. Clone shares data with the original and
// every handle must be released once; the storage is freed when the last
// handle is released.
package tensor
