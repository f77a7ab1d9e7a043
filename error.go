package myparse

import (
	"errors"
	"fmt"
	"io"

	"github.com/myparse/myparse-go/internal/diag"
	"github.com/myparse/myparse-go/interpreter"
	"github.com/myparse/myparse-go/lexer"
	"github.com/myparse/myparse-go/parser"
	"github.com/myparse/myparse-go/syntax"
)

// ErrorKind names the stage that failed.
type ErrorKind int

const (
	ErrLex ErrorKind = iota
	ErrParse
	ErrEval
)

func (k ErrorKind) String() string {
	switch k {
	case ErrLex:
		return "lexer error"
	case ErrParse:
		return "parser error"
	case ErrEval:
		return "evaluation error"
	default:
		return "error"
	}
}

// Error is returned by every Environment operation. It records the stage, the
// line being processed and the location of the failure. The stage error
// (*lexer.Error, *parser.Error or *interpreter.Error) is available through
// errors.As.
//
// Formatting an Error with %+v prints a full diagnostic with the source line
// and a caret under the offending span.
type Error struct {
	Kind   ErrorKind
	Source string
	Span   syntax.Span
	err    error
}

func (e *Error) Error() string {
	if e.err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.err)
}

// Unwrap returns the stage error.
func (e *Error) Unwrap() error {
	return e.err
}

// ErrorSpan returns the location of the failure within Source.
func (e *Error) ErrorSpan() syntax.Span {
	return e.Span
}

// Format implements fmt.Formatter.
func (e *Error) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			diag.Render(f, e, e.Source, diag.Plain())
			return
		}
		_, _ = io.WriteString(f, e.Error())
	case 's':
		_, _ = io.WriteString(f, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", e.Error())
	}
}

// wrapError attaches stage and source information to an error returned by
// one of the stage packages.
func wrapError(source string, err error) *Error {
	e := &Error{Source: source, err: err}

	var (
		lexErr   *lexer.Error
		parseErr *parser.Error
		evalErr  *interpreter.Error
	)
	switch {
	case errors.As(err, &lexErr):
		e.Kind, e.Span = ErrLex, lexErr.Span
	case errors.As(err, &parseErr):
		e.Kind, e.Span = ErrParse, parseErr.Span
	case errors.As(err, &evalErr):
		e.Kind, e.Span = ErrEval, evalErr.Span
	default:
		panic(fmt.Sprintf("myparse: unexpected error type %T", err))
	}
	return e
}
