// Package interpreter evaluates arithmetic syntax trees to 64-bit integers.
package interpreter

import (
	"fmt"
	"math"

	"github.com/myparse/myparse-go/parser"
)

// Span represents a location range in source code.
type Span = parser.Span

// OverflowMode determines what happens when a result does not fit in an
// int64.
type OverflowMode int

const (
	// OverflowChecked reports ErrOverflow.
	OverflowChecked OverflowMode = iota
	// OverflowWrapping wraps around using two's complement.
	OverflowWrapping
)

func (m OverflowMode) String() string {
	if m == OverflowWrapping {
		return "wrapping"
	}
	return "checked"
}

// ParseOverflowMode parses "checked" or "wrapping".
func ParseOverflowMode(s string) (OverflowMode, error) {
	switch s {
	case "", "checked":
		return OverflowChecked, nil
	case "wrapping":
		return OverflowWrapping, nil
	default:
		return OverflowChecked, fmt.Errorf("unknown overflow mode %q (expected checked or wrapping)", s)
	}
}

// Config controls evaluation.
type Config struct {
	Overflow OverflowMode
	// Fuel limits how many nodes one evaluation may visit. Zero means
	// unlimited.
	Fuel uint64
}

// Interpreter evaluates syntax trees. It keeps no state between calls to
// Eval apart from fuel accounting of the last call.
type Interpreter struct {
	cfg  Config
	fuel *fuelTracker
}

// New creates an interpreter.
func New(cfg Config) *Interpreter {
	return &Interpreter{cfg: cfg}
}

// Eval computes the value of expr. Operands are evaluated left to right; the
// first failure is returned.
func (it *Interpreter) Eval(expr parser.Expr) (int64, error) {
	it.fuel = nil
	if it.cfg.Fuel > 0 {
		it.fuel = newFuelTracker(it.cfg.Fuel)
	}
	v, err := it.eval(expr)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// FuelConsumed reports how much fuel the last Eval used. It is zero when no
// fuel limit is configured.
func (it *Interpreter) FuelConsumed() uint64 {
	if it.fuel == nil {
		return 0
	}
	return it.fuel.consumedFuel()
}

func (it *Interpreter) eval(expr parser.Expr) (int64, *Error) {
	if it.fuel != nil {
		if err := it.fuel.consume(1, expr.Span()); err != nil {
			return 0, err
		}
	}

	switch n := expr.(type) {
	case *parser.NumberLiteral:
		return it.literal(n.Value, n.Span())

	case *parser.UnaryExpr:
		// -9223372036854775808 is representable even though its literal
		// part is not.
		if lit, ok := n.Operand.(*parser.NumberLiteral); ok && n.Op.Value == parser.UnaryMinus && lit.Value == 1<<63 {
			return math.MinInt64, nil
		}
		v, err := it.eval(n.Operand)
		if err != nil {
			return 0, err
		}
		return it.evalUnary(n.Op, v)

	case *parser.BinaryExpr:
		l, err := it.eval(n.Left)
		if err != nil {
			return 0, err
		}
		r, err := it.eval(n.Right)
		if err != nil {
			return 0, err
		}
		return it.evalBinary(n.Op, l, r)

	default:
		panic(fmt.Sprintf("interpreter: unknown node %T", expr))
	}
}

func (it *Interpreter) literal(n uint64, span Span) (int64, *Error) {
	if n > math.MaxInt64 && it.cfg.Overflow == OverflowChecked {
		return 0, &Error{Kind: ErrOverflow, Span: span}
	}
	return int64(n), nil
}

func (it *Interpreter) evalUnary(op parser.UnaryOp, v int64) (int64, *Error) {
	if op.Value == parser.UnaryPlus {
		return v, nil
	}
	if v == math.MinInt64 && it.cfg.Overflow == OverflowChecked {
		return 0, &Error{Kind: ErrOverflow, Span: op.Span}
	}
	return -v, nil
}

func (it *Interpreter) evalBinary(op parser.BinOp, l, r int64) (int64, *Error) {
	var (
		v  int64
		ok = true
	)
	switch op.Value {
	case parser.BinOpAdd:
		v, ok = addInt64(l, r)
	case parser.BinOpSub:
		v, ok = subInt64(l, r)
	case parser.BinOpMul:
		v, ok = mulInt64(l, r)
	case parser.BinOpDiv:
		if r == 0 {
			return 0, &Error{Kind: ErrDivisionByZero, Span: op.Span}
		}
		ok = !(l == math.MinInt64 && r == -1)
		v = l / r
	default:
		panic(fmt.Sprintf("interpreter: unknown operator %s", op.Value))
	}
	if !ok && it.cfg.Overflow == OverflowChecked {
		return 0, &Error{Kind: ErrOverflow, Span: op.Span}
	}
	return v, nil
}

// The helpers below return the wrapped result and whether it is exact.

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	return c, (c > a) == (b > 0)
}

func subInt64(a, b int64) (int64, bool) {
	c := a - b
	return c, (c < a) == (b > 0)
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return c, false
	}
	return c, c/b == a
}
