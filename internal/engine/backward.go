package engine

import "math"

// Backward performs reverse-mode automatic differentiation from this node.
//
// It topologically orders every node reachable through the operand graph,
// seeds this node's gradient with 1 (d(root)/d(root) = 1), then walks the
// order in reverse, letting each node propagate its gradient to its operands.
// Gradients are accumulated, never overwritten: the same operand may appear
// on multiple paths (or twice in one operand list) and every contribution
// must be summed.
//
// Gradients left over from a previous pass are not cleared; callers that want
// an independent result must zero them first.
func (v *Value) Backward() {
	order := topoSort(v)
	v.Grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		propagate(order[i])
	}
}

// topoSort returns the nodes reachable from root in topological order: every
// node appears exactly once and strictly after all of its operands. Visited
// tracking keys on node identity, so equal-valued nodes stay distinct.
func topoSort(root *Value) []*Value {
	var order []*Value
	visited := make(map[*Value]bool)

	var visit func(*Value)
	visit = func(node *Value) {
		if visited[node] {
			return
		}
		visited[node] = true
		for _, operand := range node.prev {
			visit(operand)
		}
		order = append(order, node)
	}
	visit(root)

	return order
}

// propagate applies the local chain rule for out's operation, adding the
// partial derivative of out with respect to each operand, scaled by out.Grad,
// into that operand's gradient.
//
// Sub, Div and Neg never appear here: they are composed from Add, Mul and
// Pow at construction time and inherit their rules.
func propagate(out *Value) {
	switch out.op {
	case OpLeaf:
		// no operands

	case OpAdd:
		a, b := out.prev[0], out.prev[1]
		a.Grad += out.Grad
		b.Grad += out.Grad

	case OpMul:
		a, b := out.prev[0], out.prev[1]
		a.Grad += b.Data * out.Grad
		b.Grad += a.Data * out.Grad

	case OpPow:
		a, p := out.prev[0], out.prev[1]
		a.Grad += p.Data * math.Pow(a.Data, p.Data-1) * out.Grad

	case OpPowBase:
		// out = base^e; d(out)/de = out * ln(base). PowBase validated base > 0.
		e, base := out.prev[0], out.prev[1]
		e.Grad += out.Data * math.Log(base.Data) * out.Grad

	case OpExp:
		out.prev[0].Grad += out.Data * out.Grad

	case OpLog:
		a := out.prev[0]
		a.Grad += out.Grad / a.Data

	case OpTanh:
		out.prev[0].Grad += (1 - out.Data*out.Data) * out.Grad

	case OpReLU:
		a := out.prev[0]
		if a.Data > 0 {
			a.Grad += out.Grad
		}
	}
}
