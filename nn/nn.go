// Package nn builds a tiny feed-forward network out of autograd scalars.
//
// It is a thin consumer of the engine: every forward pass just composes
// autograd operations, so the resulting output node carries the whole
// computation graph and Backward on it reaches every weight and bias.
package nn

import (
	"math/rand"

	"go.uber.org/zap"

	"scalargrad/autograd"
)

// uniform draws from [-1, 1), the initialization range for all weights
// and biases.
func uniform(rng *rand.Rand) float64 {
	return rng.Float64()*2 - 1
}

// Neuron computes tanh(w·x + b) over an input vector.
//
// W and B are exported so tests and external training loops can read or pin
// them; the graph itself is still only grown through autograd operations.
type Neuron struct {
	W []*autograd.Value
	B *autograd.Value
}

// NewNeuron creates a neuron with nin weights and a bias, all drawn
// uniformly from [-1, 1) using the injected source.
func NewNeuron(nin int, rng *rand.Rand) *Neuron {
	w := make([]*autograd.Value, nin)
	for i := range w {
		w[i] = autograd.NewValue(uniform(rng))
	}
	return &Neuron{
		W: w,
		B: autograd.NewValue(uniform(rng)),
	}
}

// Forward returns tanh(sum(w_i * x_i) + b). x must have exactly len(W)
// elements; mismatched lengths are the caller's responsibility.
func (n *Neuron) Forward(x []*autograd.Value) *autograd.Value {
	act := n.B
	for i, wi := range n.W {
		act = act.Add(wi.Mul(x[i]))
	}
	return act.Tanh()
}

// Parameters returns the neuron's weights followed by its bias, as one flat
// slice. Handy for zeroing gradients or feeding an external optimizer.
func (n *Neuron) Parameters() []*autograd.Value {
	return append(append([]*autograd.Value(nil), n.W...), n.B)
}

// Layer is an ordered set of neurons sharing the same input vector.
type Layer struct {
	Neurons []*Neuron
}

// NewLayer creates nout neurons of nin inputs each.
func NewLayer(nin, nout int, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, rng)
	}
	return &Layer{Neurons: neurons}
}

// Forward feeds the same input to every neuron and returns one output per
// neuron, in neuron order.
func (l *Layer) Forward(x []*autograd.Value) []*autograd.Value {
	out := make([]*autograd.Value, len(l.Neurons))
	for i, n := range l.Neurons {
		out[i] = n.Forward(x)
	}
	return out
}

// Parameters returns every neuron's parameters, flattened in neuron order.
func (l *Layer) Parameters() []*autograd.Value {
	var params []*autograd.Value
	for _, n := range l.Neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// MLP chains layers: each layer's output count becomes the next layer's
// input count.
type MLP struct {
	Layers []*Layer
}

// NewMLP creates a multi-layer perceptron taking nin inputs, with one layer
// per entry of nouts. NewMLP(3, []int{4, 4, 1}, …) builds a 3-4-4-1 network.
// A nil logger logs nothing.
func NewMLP(nin int, nouts []int, rng *rand.Rand, log *zap.Logger) *MLP {
	if log == nil {
		log = zap.NewNop()
	}
	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		layers[i] = NewLayer(sizes[i], sizes[i+1], rng)
		log.Debug("layer initialized",
			zap.Int("layer", i),
			zap.Int("in", sizes[i]),
			zap.Int("out", sizes[i+1]),
		)
	}
	return &MLP{Layers: layers}
}

// Forward runs the input through every layer and returns the final layer's
// outputs.
func (m *MLP) Forward(x []*autograd.Value) []*autograd.Value {
	for _, layer := range m.Layers {
		x = layer.Forward(x)
	}
	return x
}

// Parameters returns every layer's parameters, flattened in layer order.
func (m *MLP) Parameters() []*autograd.Value {
	var params []*autograd.Value
	for _, layer := range m.Layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}
