package lexer

import (
	"fmt"

	"github.com/myparse/myparse-go/syntax"
)

// ErrorKind describes why lexing failed.
type ErrorKind int

const (
	ErrInvalidChar ErrorKind = iota
	ErrEOF
	ErrNumberOverflow
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidChar:
		return "invalid char"
	case ErrEOF:
		return "end of file"
	case ErrNumberOverflow:
		return "number overflow"
	default:
		return "lexer error"
	}
}

// Error is returned when the input contains something that is not a token.
type Error struct {
	Kind ErrorKind
	Char rune // offending character for ErrInvalidChar
	Span syntax.Span
	err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrInvalidChar:
		return fmt.Sprintf("invalid char %q at %s", e.Char, e.Span)
	case ErrNumberOverflow:
		return fmt.Sprintf("number literal out of range at %s", e.Span)
	default:
		return fmt.Sprintf("%s at %s", e.Kind, e.Span)
	}
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// ErrorSpan returns the location of the offending input.
func (e *Error) ErrorSpan() syntax.Span {
	return e.Span
}

// invalidChar reports the character starting at pos. The span covers only its
// first byte.
func invalidChar(c rune, pos int) *Error {
	return &Error{Kind: ErrInvalidChar, Char: c, Span: syntax.NewSpan(pos, pos+1)}
}

func eof(pos int) *Error {
	return &Error{Kind: ErrEOF, Span: syntax.NewSpan(pos, pos)}
}
