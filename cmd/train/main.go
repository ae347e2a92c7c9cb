package main

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/greyson9/zerotohero/micrograd"
)

func main() {
	fmt.Println("=== Scalar Autodiff MLP Training ===")

	const (
		seed     = 42
		lr       = 0.05
		epochs   = 100
		interval = 10
	)

	// Four-sample regression over a 3-5-5-1 tanh network
	xs := [][]float64{
		{2, 3, -1},
		{3, -1, 0.5},
		{0.5, 1, 1},
		{1, 1, -1},
	}
	ys := []float64{1, -1, -1, 1}

	fmt.Println("Network architecture: 3-5-5-1 (tanh)")
	fmt.Println("Loss function: sum of squared errors")
	fmt.Printf("Optimizer: SGD with learning rate %v\n", lr)

	model := micrograd.NewMLP(3, []int{5, 5, 1}, micrograd.Uniform(seed))
	sgd := micrograd.SGD(lr)

	fmt.Printf("Trainable parameters: %d\n\n", len(model.Params()))

	sampleLoss := make([]float64, len(xs))
	for epoch := 0; epoch < epochs; epoch++ {
		preds := make([]*micrograd.Value, len(xs))
		for i, x := range xs {
			preds[i] = model.ForwardUnit(inputs(x))
			diff := preds[i].Data - ys[i]
			sampleLoss[i] = diff * diff
		}
		total := micrograd.MSE.Forward(preds, ys)

		micrograd.ZeroGrad(model.Params())
		total.Backward()
		sgd.StepInPlace(model.Params())

		if epoch%interval == 0 {
			fmt.Printf("Epoch %d, Loss: %.6f (per-sample mean %.6f)\n",
				epoch, total.Data, stat.Mean(sampleLoss, nil))
		}
	}

	fmt.Println("\nFinal predictions:")
	for i, x := range xs {
		pred := model.ForwardUnit(inputs(x))
		fmt.Printf("Input: %v, Predicted: %.4f, Target: %v\n", x, pred.Data, ys[i])
	}
}

// inputs promotes a sample to leaf nodes for a fresh forward graph.
func inputs(x []float64) []*micrograd.Value {
	in := make([]*micrograd.Value, len(x))
	for i, v := range x {
		in[i] = micrograd.New(v)
	}
	return in
}
