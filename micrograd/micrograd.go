// Package micrograd re-exports the scalar autodiff engine and its neural
// network composition layer for easier access.
package micrograd

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/greyson9/zerotohero/internal/engine"
	"github.com/greyson9/zerotohero/internal/loss"
	"github.com/greyson9/zerotohero/internal/nn"
	"github.com/greyson9/zerotohero/internal/opt"
)

// Re-export common types for easier access
type (
	Value     = engine.Value
	Op        = engine.Op
	Neuron    = nn.Neuron
	Layer     = nn.Layer
	MLP       = nn.MLP
	Optimizer = opt.Optimizer
	Loss      = loss.Loss
)

// Errors
var (
	ErrDivisionByZero   = engine.ErrDivisionByZero
	ErrInvalidLogDomain = engine.ErrInvalidLogDomain
)

// Graph construction
func New(data float64) *Value {
	return engine.New(data)
}

func PowBase(base float64, exponent *Value) (*Value, error) {
	return engine.PowBase(base, exponent)
}

// Composition
func NewNeuron(nin int, src distuv.Rander) *Neuron {
	return nn.NewNeuron(nin, src)
}

func NewLayer(nin, nout int, src distuv.Rander) *Layer {
	return nn.NewLayer(nin, nout, src)
}

func NewMLP(nin int, nouts []int, src distuv.Rander) *MLP {
	return nn.NewMLP(nin, nouts, src)
}

// Uniform returns the conventional [-1, 1) parameter initializer with an
// explicit seed, so initialization stays deterministic and testable.
func Uniform(seed uint64) distuv.Uniform {
	return distuv.Uniform{Min: -1, Max: 1, Src: rand.NewSource(seed)}
}

// Optimizers
func SGD(lr float64) Optimizer {
	return opt.SGD{LearningRate: lr}
}

// ZeroGrad resets accumulated gradients on a parameter set.
func ZeroGrad(params []*Value) {
	opt.ZeroGrad(params)
}

// Losses
var MSE = loss.MSE{}
