// Package nn provides neural network building blocks composed purely from
// engine operators, so that every forward pass builds a differentiable graph.
package nn

import (
	"github.com/greyson9/zerotohero/internal/engine"
	"gonum.org/v1/gonum/stat/distuv"
)

// Neuron computes tanh(w·x + b) over scalar graph nodes. Its weights and bias
// are persistent leaf nodes that survive across training iterations.
type Neuron struct {
	w []*engine.Value
	b *engine.Value
}

// NewNeuron creates a neuron with nin inputs. Weights and the bias are drawn
// from src; callers typically pass distuv.Uniform{Min: -1, Max: 1} with an
// explicit source for deterministic initialization.
func NewNeuron(nin int, src distuv.Rander) *Neuron {
	w := make([]*engine.Value, nin)
	for i := range w {
		w[i] = engine.New(src.Rand())
	}
	return &Neuron{
		w: w,
		b: engine.New(src.Rand()),
	}
}

// Forward computes tanh(sum(w_i * x_i) + b), returning the single output node.
func (n *Neuron) Forward(x []*engine.Value) *engine.Value {
	if len(x) != len(n.w) {
		panic("nn: input size does not match neuron fan-in")
	}

	act := n.b
	for i, w := range n.w {
		act = act.Add(w.Mul(x[i]))
	}
	return act.Tanh()
}

// Params returns the weights followed by the bias, flat and ordered, for
// optimizer use.
func (n *Neuron) Params() []*engine.Value {
	params := make([]*engine.Value, 0, len(n.w)+1)
	params = append(params, n.w...)
	return append(params, n.b)
}

// InSize returns the neuron's fan-in.
func (n *Neuron) InSize() int { return len(n.w) }
