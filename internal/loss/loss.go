// Package loss provides loss functions built from engine operators, so the
// loss node stays differentiable end to end.
package loss

import "github.com/greyson9/zerotohero/internal/engine"

// Loss builds a scalar loss node from a prediction batch and targets.
type Loss interface {
	// Forward computes the loss between predicted nodes and true values.
	Forward(pred []*engine.Value, target []float64) *engine.Value
}

// MSE (sum of squared errors) loss.
type MSE struct{}

// Forward computes sum((pred_i - target_i)^2) as a graph node. Targets are
// promoted to leaf nodes and receive no meaningful gradient.
func (m MSE) Forward(pred []*engine.Value, target []float64) *engine.Value {
	if len(pred) != len(target) {
		panic("MSE: prediction and target must have same length")
	}

	total := engine.New(0)
	for i, p := range pred {
		diff := p.Sub(engine.New(target[i]))
		total = total.Add(diff.Pow(2))
	}
	return total
}
