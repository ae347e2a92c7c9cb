// Package engine provides unit tests for graph construction and forward values.
package engine

import (
	"errors"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-12

// TestLeafConstruction tests that New produces a leaf with zero gradient.
func TestLeafConstruction(t *testing.T) {
	v := New(4.5)

	if v.Data != 4.5 {
		t.Errorf("Data = %v, want 4.5", v.Data)
	}
	if v.Grad != 0 {
		t.Errorf("Grad = %v, want 0", v.Grad)
	}
	if v.Op() != OpLeaf {
		t.Errorf("Op = %v, want leaf", v.Op())
	}
	if len(v.Operands()) != 0 {
		t.Errorf("leaf has %d operands, want 0", len(v.Operands()))
	}
}

// TestBinaryForwardValues tests forward parity with native arithmetic for
// add, sub, mul and div across sign and magnitude combinations.
func TestBinaryForwardValues(t *testing.T) {
	pairs := [][2]float64{
		{4.5, 2.7},
		{-3.2, 1.5},
		{0.5, -0.25},
		{-1, -7},
		{0, 3.1},
	}

	for _, p := range pairs {
		a, b := p[0], p[1]

		if got := New(a).Add(New(b)).Data; !scalar.EqualWithinAbs(got, a+b, tol) {
			t.Errorf("Add(%v, %v) = %v, want %v", a, b, got, a+b)
		}
		if got := New(a).Sub(New(b)).Data; !scalar.EqualWithinAbs(got, a-b, tol) {
			t.Errorf("Sub(%v, %v) = %v, want %v", a, b, got, a-b)
		}
		if got := New(a).Mul(New(b)).Data; !scalar.EqualWithinAbs(got, a*b, tol) {
			t.Errorf("Mul(%v, %v) = %v, want %v", a, b, got, a*b)
		}
		if b != 0 {
			q, err := New(a).Div(New(b))
			if err != nil {
				t.Fatalf("Div(%v, %v) returned error: %v", a, b, err)
			}
			if !scalar.EqualWithinAbs(q.Data, a/b, tol) {
				t.Errorf("Div(%v, %v) = %v, want %v", a, b, q.Data, a/b)
			}
		}
	}
}

// TestUnaryForwardValues tests exp, log, tanh, pow and relu against math.
func TestUnaryForwardValues(t *testing.T) {
	if got := New(4.5).Exp().Data; !scalar.EqualWithinAbs(got, math.Exp(4.5), tol) {
		t.Errorf("Exp(4.5) = %v, want %v", got, math.Exp(4.5))
	}

	l, err := New(4.5).Log()
	if err != nil {
		t.Fatalf("Log(4.5) returned error: %v", err)
	}
	if !scalar.EqualWithinAbs(l.Data, math.Log(4.5), tol) {
		t.Errorf("Log(4.5) = %v, want %v", l.Data, math.Log(4.5))
	}

	if got := New(4.5).Tanh().Data; !scalar.EqualWithinAbs(got, math.Tanh(4.5), 1e-9) {
		t.Errorf("Tanh(4.5) = %v, want %v", got, math.Tanh(4.5))
	}

	if got := New(4.5).Pow(2.7).Data; !scalar.EqualWithinAbs(got, math.Pow(4.5, 2.7), tol) {
		t.Errorf("Pow(4.5, 2.7) = %v, want %v", got, math.Pow(4.5, 2.7))
	}

	p, err := PowBase(3.1, New(4.5))
	if err != nil {
		t.Fatalf("PowBase(3.1, 4.5) returned error: %v", err)
	}
	if !scalar.EqualWithinAbs(p.Data, math.Pow(3.1, 4.5), tol) {
		t.Errorf("PowBase(3.1, 4.5) = %v, want %v", p.Data, math.Pow(3.1, 4.5))
	}

	if got := New(-0.7).ReLU().Data; got != 0 {
		t.Errorf("ReLU(-0.7) = %v, want 0", got)
	}
	if got := New(1.5).ReLU().Data; got != 1.5 {
		t.Errorf("ReLU(1.5) = %v, want 1.5", got)
	}
}

// TestDivisionByZero tests that dividing by an exactly-zero node fails.
func TestDivisionByZero(t *testing.T) {
	out, err := New(4.5).Div(New(0))

	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Div by zero error = %v, want ErrDivisionByZero", err)
	}
	if out != nil {
		t.Errorf("Div by zero returned node %v, want nil", out)
	}
}

// TestLogDomain tests that log of a non-positive value fails.
func TestLogDomain(t *testing.T) {
	for _, x := range []float64{0, -1, -4.5} {
		out, err := New(x).Log()
		if !errors.Is(err, ErrInvalidLogDomain) {
			t.Errorf("Log(%v) error = %v, want ErrInvalidLogDomain", x, err)
		}
		if out != nil {
			t.Errorf("Log(%v) returned node %v, want nil", x, out)
		}
	}
}

// TestPowBaseDomain tests that a non-positive base fails up front, since the
// backward rule needs ln(base).
func TestPowBaseDomain(t *testing.T) {
	for _, base := range []float64{0, -2} {
		out, err := PowBase(base, New(1.5))
		if !errors.Is(err, ErrInvalidLogDomain) {
			t.Errorf("PowBase(%v, ...) error = %v, want ErrInvalidLogDomain", base, err)
		}
		if out != nil {
			t.Errorf("PowBase(%v, ...) returned node %v, want nil", base, out)
		}
	}
}

// TestOperandsPreserveDuplicates tests that x*x records the same node twice
// rather than deduplicating by identity.
func TestOperandsPreserveDuplicates(t *testing.T) {
	x := New(3)
	y := x.Mul(x)

	ops := y.Operands()
	if len(ops) != 2 {
		t.Fatalf("x*x has %d operands, want 2", len(ops))
	}
	if ops[0] != x || ops[1] != x {
		t.Error("x*x should reference the same node twice")
	}
}

// TestSubIsComposed tests that subtraction is built from Add and a -1
// multiplication rather than carrying its own rule.
func TestSubIsComposed(t *testing.T) {
	d := New(4.5).Sub(New(2.7))

	if d.Op() != OpAdd {
		t.Errorf("Sub output op = %v, want OpAdd", d.Op())
	}
	if neg := d.Operands()[1]; neg.Op() != OpMul {
		t.Errorf("Sub second operand op = %v, want OpMul", neg.Op())
	}
}

// TestDivIsComposed tests that division is built from Mul and Pow(-1).
func TestDivIsComposed(t *testing.T) {
	q, err := New(4.5).Div(New(2.7))
	if err != nil {
		t.Fatalf("Div returned error: %v", err)
	}

	if q.Op() != OpMul {
		t.Errorf("Div output op = %v, want OpMul", q.Op())
	}
	if inv := q.Operands()[1]; inv.Op() != OpPow {
		t.Errorf("Div second operand op = %v, want OpPow", inv.Op())
	}
}

// TestNodeIdentity tests that equal-valued nodes are distinct graph entities.
func TestNodeIdentity(t *testing.T) {
	a := New(1.0)
	b := New(1.0)

	if a == b {
		t.Fatal("distinct leaves must not be identical")
	}

	sum := a.Add(b)
	sum.Backward()

	// Both leaves get their own gradient even though the values are equal.
	if a.Grad != 1 || b.Grad != 1 {
		t.Errorf("grads = %v, %v, want 1, 1", a.Grad, b.Grad)
	}
}

// TestString tests the diagnostic formatting.
func TestString(t *testing.T) {
	s := New(2).Tanh().String()
	if !strings.Contains(s, "tanh") {
		t.Errorf("String() = %q, should mention the op", s)
	}
}
