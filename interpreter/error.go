package interpreter

import (
	"fmt"

	"github.com/myparse/myparse-go/syntax"
)

// ErrorKind describes why evaluation failed.
type ErrorKind int

const (
	ErrDivisionByZero ErrorKind = iota
	ErrOverflow
	ErrOutOfFuel
)

func (k ErrorKind) String() string {
	switch k {
	case ErrDivisionByZero:
		return "division by zero"
	case ErrOverflow:
		return "integer overflow"
	case ErrOutOfFuel:
		return "out of fuel"
	default:
		return "evaluation error"
	}
}

// Error is an arithmetic failure. Span points at the operator (or literal)
// that failed, not at the whole subexpression.
type Error struct {
	Kind ErrorKind
	Span syntax.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Kind, e.Span)
}

// ErrorSpan returns the location of the failing operator.
func (e *Error) ErrorSpan() syntax.Span {
	return e.Span
}
