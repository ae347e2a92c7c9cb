package nn

import (
	"github.com/greyson9/zerotohero/internal/engine"
	"gonum.org/v1/gonum/stat/distuv"
)

// MLP is a multi-layer perceptron: a sequential composition of layers, each
// feeding its output vector into the next.
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts,
// so NewMLP(3, []int{5, 5, 1}, src) builds a 3-5-5-1 network.
func NewMLP(nin int, nouts []int, src distuv.Rander) *MLP {
	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		layers[i] = NewLayer(sizes[i], sizes[i+1], src)
	}
	return &MLP{layers: layers}
}

// Forward threads the input through every layer and returns the final output
// vector.
func (m *MLP) Forward(x []*engine.Value) []*engine.Value {
	for _, l := range m.layers {
		x = l.Forward(x)
	}
	return x
}

// ForwardUnit evaluates a network whose final layer has a single output and
// returns that node directly. Panics when the final layer is wider.
func (m *MLP) ForwardUnit(x []*engine.Value) *engine.Value {
	last := len(m.layers) - 1
	for _, l := range m.layers[:last] {
		x = l.Forward(x)
	}
	return m.layers[last].ForwardUnit(x)
}

// Params returns the concatenation of every layer's parameters, in layer
// order.
func (m *MLP) Params() []*engine.Value {
	var params []*engine.Value
	for _, l := range m.layers {
		params = append(params, l.Params()...)
	}
	return params
}

// InSize returns the network's fan-in.
func (m *MLP) InSize() int { return m.layers[0].InSize() }

// OutSize returns the width of the final layer.
func (m *MLP) OutSize() int { return m.layers[len(m.layers)-1].OutSize() }
