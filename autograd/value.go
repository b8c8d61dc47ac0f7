// Package autograd implements a tiny reverse-mode automatic differentiation
// engine over scalar values.
//
// Every arithmetic or activation operation allocates a fresh Value node that
// remembers which nodes produced it and how. The result is an append-only DAG:
// a node never gains operands after construction and never points forward to
// its consumers. Calling Backward on any node then fills in the gradient of
// every ancestor with d(root)/d(ancestor) via the chain rule.
package autograd

import "fmt"

// Value is a single node in the computation graph.
//
// Think of it as a "number with memory":
// - Data is the actual number, computed eagerly when the node is built.
// - Grad accumulates "how much the root changes if this number changes a little."
// - children are the input nodes this one was computed from (empty for leaves).
// - op records which operation produced it, so Backward knows which local
//   derivative rule to apply.
//
// The same node may be an operand of many downstream nodes (reusing a weight
// in two products, say). Grad contributions from every consumer are summed.
type Value struct {
	Data float64
	Grad float64

	children []*Value
	op       Op
}

// NewValue creates a leaf node: a plain number with no operands, no
// operation, and gradient zero.
func NewValue(data float64) *Value {
	return &Value{Data: data}
}

// Children returns a copy of the operands that produced this node, in
// operand order. Leaves return nil. The copy keeps graph structure immutable
// from the outside; mutating the returned slice does not touch the graph.
func (v *Value) Children() []*Value {
	if len(v.children) == 0 {
		return nil
	}
	return append([]*Value(nil), v.children...)
}

// Operation reports which operation produced this node. ok is false for
// leaf nodes.
func (v *Value) Operation() (op Op, ok bool) {
	return v.op, v.op != OpNone
}

// SetGrad overwrites the gradient. Mostly useful for seeding a backward pass
// by hand; Backward does this for you.
func (v *Value) SetGrad(g float64) { v.Grad = g }

// AddGrad adds g into the gradient accumulator. A node shared by several
// consumers receives one contribution per consumer; addition is commutative,
// so the final gradient is the same whatever order they arrive in.
func (v *Value) AddGrad(g float64) { v.Grad += g }

// String renders the node as its current value and gradient together.
func (v *Value) String() string {
	return fmt.Sprintf("[Value=%v, Grad=%v]", v.Data, v.Grad)
}
