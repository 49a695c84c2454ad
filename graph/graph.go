// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph records tensor operations in an arena of nodes.
//
// Example:
//
//	g := graph.New[float32]()
//	a, _ := g.Leaf(x)
//	b, _ := g.Leaf(y)
//	sum, _ := g.Add(a, b)
//	prod, _ := g.Multiply(sum, b)
//	order, _ := g.Topological(prod) // [a b sum prod]
package graph

import (
	"github.com/born-ml/ndcore/internal/graph"
	"github.com/born-ml/ndcore/tensor"
)

// NodeID is the arena index of a node.
type NodeID = graph.NodeID

// Node is one recorded operation.
type Node[T tensor.Numeric] = graph.Node[T]

// Graph is an arena of recorded operations.
type Graph[T tensor.Numeric] = graph.Graph[T]

// Errors returned by graph operations.
var (
	ErrUnknownNode = graph.ErrUnknownNode
	ErrNilTensor   = graph.ErrNilTensor
)

// New creates an empty graph.
func New[T tensor.Numeric]() *Graph[T] {
	return graph.New[T]()
}
