// Package graph records tensor operations in an arena of nodes addressed by
// stable indices.
//
// Each node is a Leaf (an input tensor) or the result of Add or Multiply
// over two earlier nodes. Node IDs only ever refer backwards, so the arena
// is a DAG in recording order. No gradients are computed here; the
// traversal order needed by a reverse-mode pass is exposed by Topological.
//
// Usage:
//
//	g := graph.New[float32]()
//	a, _ := g.Leaf(x)
//	b, _ := g.Leaf(y)
//	sum, _ := g.Add(a, b)
//	order, _ := g.Topological(sum) // [a b sum]
package graph

import (
	"errors"
	"fmt"

	"github.com/born-ml/ndcore/internal/tensor"
)

// Common errors.
var (
	ErrUnknownNode = errors.New("graph: unknown node")
	ErrNilTensor   = errors.New("graph: nil tensor")
)

// NodeID is the arena index of a node.
type NodeID int

// Node is one recorded operation.
type Node[T tensor.Numeric] struct {
	ID     NodeID
	Kind   tensor.Op         // OpLeaf, OpAdd or OpMultiply
	Inputs []NodeID          // empty for leaves, [lhs, rhs] otherwise
	Value  *tensor.Tensor[T] // leaf tensor or operation result
}

// Graph is an arena of nodes. It is not safe for concurrent use.
type Graph[T tensor.Numeric] struct {
	nodes []Node[T]
}

// New creates an empty graph.
func New[T tensor.Numeric]() *Graph[T] {
	return &Graph[T]{
		nodes: make([]Node[T], 0, 16),
	}
}

// Len returns the number of recorded nodes.
func (g *Graph[T]) Len() int {
	return len(g.nodes)
}

// Leaf records an input tensor.
func (g *Graph[T]) Leaf(t *tensor.Tensor[T]) (NodeID, error) {
	if t == nil {
		return -1, ErrNilTensor
	}
	return g.push(tensor.OpLeaf, nil, t), nil
}

// Add evaluates a + b elementwise and records the result.
func (g *Graph[T]) Add(a, b NodeID) (NodeID, error) {
	return g.binary(tensor.OpAdd, a, b)
}

// Multiply evaluates a * b elementwise and records the result.
func (g *Graph[T]) Multiply(a, b NodeID) (NodeID, error) {
	return g.binary(tensor.OpMultiply, a, b)
}

func (g *Graph[T]) binary(op tensor.Op, a, b NodeID) (NodeID, error) {
	lhs, err := g.Tensor(a)
	if err != nil {
		return -1, fmt.Errorf("%s: %w", op, err)
	}
	rhs, err := g.Tensor(b)
	if err != nil {
		return -1, fmt.Errorf("%s: %w", op, err)
	}

	var out *tensor.Tensor[T]
	switch op {
	case tensor.OpAdd:
		out, err = lhs.Add(rhs)
	case tensor.OpMultiply:
		out, err = lhs.Multiply(rhs)
	default:
		return -1, fmt.Errorf("graph: unsupported op %s", op)
	}
	if err != nil {
		return -1, err
	}
	return g.push(op, []NodeID{a, b}, out), nil
}

func (g *Graph[T]) push(op tensor.Op, inputs []NodeID, t *tensor.Tensor[T]) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node[T]{ID: id, Kind: op, Inputs: inputs, Value: t})
	return id
}

// Node returns the node with the given ID.
func (g *Graph[T]) Node(id NodeID) (Node[T], error) {
	if id < 0 || int(id) >= len(g.nodes) {
		return Node[T]{}, fmt.Errorf("%w: %d (graph has %d nodes)", ErrUnknownNode, id, len(g.nodes))
	}
	return g.nodes[id], nil
}

// Tensor returns the value of a node.
func (g *Graph[T]) Tensor(id NodeID) (*tensor.Tensor[T], error) {
	n, err := g.Node(id)
	if err != nil {
		return nil, err
	}
	return n.Value, nil
}

// Topological returns the nodes reachable from root with every node listed
// after its inputs; root is last. Each node appears once even if it is
// used several times. Walking the result in reverse visits every node
// before its inputs.
func (g *Graph[T]) Topological(root NodeID) ([]NodeID, error) {
	if _, err := g.Node(root); err != nil {
		return nil, err
	}

	// Inputs always precede their consumer in the arena, so marking the
	// reachable set and then scanning in ID order is a valid ordering.
	reachable := make([]bool, root+1)
	reachable[root] = true
	count := 0
	for id := root; id >= 0; id-- {
		if !reachable[id] {
			continue
		}
		count++
		for _, in := range g.nodes[id].Inputs {
			reachable[in] = true
		}
	}

	order := make([]NodeID, 0, count)
	for id := NodeID(0); id <= root; id++ {
		if reachable[id] {
			order = append(order, id)
		}
	}
	return order, nil
}

// Reset releases every operation result and clears the arena. Leaf tensors
// are owned by the caller and are left alone. Results obtained through
// Tensor, or reached through a later tensor's Children, are invalid after
// Reset; Clone them first to keep them.
func (g *Graph[T]) Reset() {
	for _, n := range g.nodes {
		if n.Kind != tensor.OpLeaf {
			n.Value.Release()
		}
	}
	g.nodes = g.nodes[:0]
}
