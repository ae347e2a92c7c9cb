// Package engine implements a scalar reverse-mode automatic differentiation engine.
//
// Every operator builds the computation graph as a side effect of the forward
// pass: the returned Value records its operands and the operation that produced
// it. Calling Backward on a root node then propagates gradients to every node
// reachable from it through the chain rule.
package engine

import (
	"errors"
	"fmt"
	"math"
)

// Errors reported by the fallible operators.
var (
	// ErrDivisionByZero is returned by Div when the divisor's value is exactly zero.
	ErrDivisionByZero = errors.New("engine: division by zero")

	// ErrInvalidLogDomain is returned when a logarithm of a non-positive value
	// is required, either directly by Log or internally by PowBase.
	ErrInvalidLogDomain = errors.New("engine: log requires a positive argument")
)

// Op identifies the operation that produced a Value. It drives the backward
// gradient dispatch and is useful for graph diagnostics.
type Op uint8

const (
	OpLeaf Op = iota // constant or trainable parameter, no operands
	OpAdd
	OpMul
	OpPow     // base^p with a constant exponent
	OpPowBase // base^e with a constant base and node exponent
	OpExp
	OpLog
	OpTanh
	OpReLU
)

// String returns a short name for the operation.
func (op Op) String() string {
	switch op {
	case OpLeaf:
		return "leaf"
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpPow:
		return "pow"
	case OpPowBase:
		return "powbase"
	case OpExp:
		return "exp"
	case OpLog:
		return "log"
	case OpTanh:
		return "tanh"
	case OpReLU:
		return "relu"
	}
	return "unknown"
}

// Value is a node in the computation graph.
//
// Data is the forward-computed value and is never mutated after construction.
// Grad accumulates the derivative of some downstream root with respect to this
// node; it is only meaningful after Backward has run from a root that reaches
// this node, and it is the caller's responsibility to reset it between
// independent backward passes (see opt.ZeroGrad).
type Value struct {
	Data float64
	Grad float64

	op   Op
	prev []*Value
}

// New creates a leaf node holding a plain number.
func New(data float64) *Value {
	return &Value{Data: data}
}

// Op returns the operation that produced this node.
func (v *Value) Op() Op { return v.op }

// Operands returns the ordered operand list of this node. Duplicates are
// preserved: in x.Mul(x) the same node appears twice, and the backward pass
// accumulates both contributions. The slice is shared, not copied.
func (v *Value) Operands() []*Value { return v.prev }

// ZeroGrad resets the accumulated gradient of this node.
func (v *Value) ZeroGrad() { v.Grad = 0 }

// String formats the node for diagnostics.
func (v *Value) String() string {
	return fmt.Sprintf("Value(data=%v, grad=%v, op=%v)", v.Data, v.Grad, v.op)
}

// Add returns a node computing v + other.
func (v *Value) Add(other *Value) *Value {
	return &Value{
		Data: v.Data + other.Data,
		op:   OpAdd,
		prev: []*Value{v, other},
	}
}

// Mul returns a node computing v * other.
func (v *Value) Mul(other *Value) *Value {
	return &Value{
		Data: v.Data * other.Data,
		op:   OpMul,
		prev: []*Value{v, other},
	}
}

// Neg returns a node computing -v, as multiplication by a -1 leaf.
func (v *Value) Neg() *Value {
	return New(-1).Mul(v)
}

// Sub returns a node computing v - other. Subtraction is composed from Add
// and Neg, so it has no backward rule of its own.
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// Pow returns a node computing v^p for a constant exponent p. The exponent is
// promoted to a leaf operand for graph diagnostics but receives no gradient.
func (v *Value) Pow(p float64) *Value {
	return &Value{
		Data: math.Pow(v.Data, p),
		op:   OpPow,
		prev: []*Value{v, New(p)},
	}
}

// PowBase returns a node computing base^exponent for a constant base and a
// node exponent. The backward rule needs ln(base), so the base must be
// positive; otherwise ErrInvalidLogDomain is returned.
func PowBase(base float64, exponent *Value) (*Value, error) {
	if base <= 0 {
		return nil, fmt.Errorf("engine: pow base %v: %w", base, ErrInvalidLogDomain)
	}
	return &Value{
		Data: math.Pow(base, exponent.Data),
		op:   OpPowBase,
		prev: []*Value{exponent, New(base)},
	}, nil
}

// Div returns a node computing v / other, or ErrDivisionByZero when the
// divisor's value is exactly zero. Division is composed as v * other^-1, so
// its backward rule is inherited from Mul and Pow.
func (v *Value) Div(other *Value) (*Value, error) {
	if other.Data == 0 {
		return nil, ErrDivisionByZero
	}
	return v.Mul(other.Pow(-1)), nil
}

// Exp returns a node computing e^v.
func (v *Value) Exp() *Value {
	return &Value{
		Data: math.Exp(v.Data),
		op:   OpExp,
		prev: []*Value{v},
	}
}

// Log returns a node computing ln(v), or ErrInvalidLogDomain when the
// argument's value is not positive.
func (v *Value) Log() (*Value, error) {
	if v.Data <= 0 {
		return nil, fmt.Errorf("engine: log of %v: %w", v.Data, ErrInvalidLogDomain)
	}
	return &Value{
		Data: math.Log(v.Data),
		op:   OpLog,
		prev: []*Value{v},
	}, nil
}

// Tanh returns a node computing the hyperbolic tangent of v.
func (v *Value) Tanh() *Value {
	e2x := math.Exp(2 * v.Data)
	return &Value{
		Data: (e2x - 1) / (e2x + 1),
		op:   OpTanh,
		prev: []*Value{v},
	}
}

// ReLU returns a node computing max(0, v).
func (v *Value) ReLU() *Value {
	return &Value{
		Data: math.Max(0, v.Data),
		op:   OpReLU,
		prev: []*Value{v},
	}
}
