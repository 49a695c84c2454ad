// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend for ndcore tensors.
//
// # Overview
//
// The backend runs elementwise kernels (Add, Multiply, Fill) over flat
// storage and splits large inputs into contiguous chunks processed by
// separate goroutines. Reductions use gonum's stat package.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ndcore/backend/cpu"
//	    "github.com/born-ml/ndcore/tensor"
//	)
//
//	func main() {
//	    backend := cpu.NewWithConfig(cpu.ParallelConfig{Enabled: false})
//	    x, _ := tensor.Ones[float32](tensor.Shape{2, 3}, tensor.WithBackend(backend))
//	    y, _ := tensor.Ones[float32](tensor.Shape{2, 3})
//	    z, _ := x.Add(y) // runs on backend, sequentially
//	}
//
// Results inherit the backend of the receiver.
package cpu
