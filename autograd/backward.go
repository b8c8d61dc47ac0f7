package autograd

import "math"

// topoSort returns every node reachable from root, leaves first and root
// last, via a depth-first post-order walk.
//
// The visited set is keyed by node identity, so a node shared by several
// consumers appears exactly once, and only after everything that consumes it.
// That ordering is what makes one-pass gradient accumulation correct on a
// DAG: by the time a node's own rule runs, every consumer has already added
// its contribution.
func topoSort(root *Value) []*Value {
	topo := []*Value{}
	visited := make(map[*Value]bool)

	var build func(*Value)
	build = func(node *Value) {
		if visited[node] {
			return
		}
		visited[node] = true
		for _, child := range node.children {
			build(child)
		}
		topo = append(topo, node)
	}
	build(root)
	return topo
}

// Backward performs reverse-mode autodiff from this node to all ancestors.
//
// Process:
// 1) Build topological order so each node is visited only after its consumers.
// 2) Seed this node's gradient with 1 (d(root)/d(root) = 1).
// 3) Traverse in reverse topological order, applying each node's local
//    derivative rule exactly once and accumulating into its operands.
//
// Afterwards every ancestor's Grad holds d(root)/d(ancestor). On a leaf this
// is just the seeding step.
//
// Gradients are accumulated, never overwritten: calling Backward a second
// time without resetting adds on top of the stale gradients. Use ZeroGrad
// between passes if that is not what you want.
func (v *Value) Backward() {
	topo := topoSort(v)

	v.Grad = 1
	for i := len(topo) - 1; i >= 0; i-- {
		topo[i].propagate()
	}
}

// propagate applies this node's local derivative rule, pushing its current
// gradient into its operands. Leaves have no rule and contribute nothing.
func (v *Value) propagate() {
	switch v.op {
	case OpAdd:
		// z = a + b: dz/da = 1, dz/db = 1
		a, b := v.children[0], v.children[1]
		a.Grad += v.Grad
		b.Grad += v.Grad
	case OpMul:
		// z = a * b: dz/da = b, dz/db = a
		a, b := v.children[0], v.children[1]
		a.Grad += b.Data * v.Grad
		b.Grad += a.Data * v.Grad
	case OpTanh:
		// z = tanh(a): dz/da = 1 - z^2
		v.children[0].Grad += (1 - v.Data*v.Data) * v.Grad
	case OpExp:
		// z = e^a: dz/da = z
		v.children[0].Grad += v.Data * v.Grad
	case OpPow:
		// z = a^k: dz/da = k * a^(k-1); the exponent is a constant and
		// receives no gradient.
		a, k := v.children[0], v.children[1]
		a.Grad += k.Data * math.Pow(a.Data, k.Data-1) * v.Grad
	}
}

// ZeroGrad resets the gradient of every node reachable from root to zero,
// so the graph can run another backward pass without stale accumulation.
func ZeroGrad(root *Value) {
	for _, node := range topoSort(root) {
		node.Grad = 0
	}
}
