package nn

import (
	"github.com/greyson9/zerotohero/internal/engine"
	"gonum.org/v1/gonum/stat/distuv"
)

// Layer is a set of independent neurons sharing the same input vector.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons, each with nin inputs, initialized
// from src.
func NewLayer(nin, nout int, src distuv.Rander) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, src)
	}
	return &Layer{neurons: neurons}
}

// Forward evaluates every neuron on the same input and returns one output
// node per neuron.
func (l *Layer) Forward(x []*engine.Value) []*engine.Value {
	outs := make([]*engine.Value, len(l.neurons))
	for i, n := range l.neurons {
		outs[i] = n.Forward(x)
	}
	return outs
}

// ForwardUnit evaluates a single-output layer and returns the output node
// directly, equivalent to calling the lone neuron. It panics when the layer
// has more than one output; the arity is part of the layer's declared shape,
// not a runtime branch on the result.
func (l *Layer) ForwardUnit(x []*engine.Value) *engine.Value {
	if len(l.neurons) != 1 {
		panic("nn: ForwardUnit requires a single-output layer")
	}
	return l.neurons[0].Forward(x)
}

// Params returns the concatenation of each neuron's parameters, order
// preserved.
func (l *Layer) Params() []*engine.Value {
	var params []*engine.Value
	for _, n := range l.neurons {
		params = append(params, n.Params()...)
	}
	return params
}

// InSize returns the layer's fan-in.
func (l *Layer) InSize() int { return l.neurons[0].InSize() }

// OutSize returns the number of neurons in the layer.
func (l *Layer) OutSize() int { return len(l.neurons) }
