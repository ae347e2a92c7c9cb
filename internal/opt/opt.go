// Package opt provides optimization over engine parameter nodes.
package opt

import "github.com/greyson9/zerotohero/internal/engine"

// Optimizer updates parameter nodes based on their accumulated gradients.
type Optimizer interface {
	// StepInPlace updates each parameter in-place from its gradient.
	StepInPlace(params []*engine.Value)
}

// SGD (Stochastic Gradient Descent) optimizer.
type SGD struct {
	LearningRate float64
}

// StepInPlace updates params in-place: data = data - lr * grad.
func (s SGD) StepInPlace(params []*engine.Value) {
	for _, p := range params {
		p.Data -= s.LearningRate * p.Grad
	}
}

// ZeroGrad resets the accumulated gradient of every parameter. The engine
// never clears gradients on its own, so this must run before each backward
// pass of a new iteration.
func ZeroGrad(params []*engine.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
