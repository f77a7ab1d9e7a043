package parser

import (
	"fmt"

	"github.com/myparse/myparse-go/lexer"
	"github.com/myparse/myparse-go/syntax"
)

// ErrorKind describes which grammar rule was violated.
type ErrorKind int

const (
	// ErrUnexpectedToken is not produced by the current grammar.
	ErrUnexpectedToken ErrorKind = iota
	ErrNotExpression
	// ErrNotOperator only ends a binary operator loop and never escapes Parse.
	ErrNotOperator
	ErrUnclosedOpenParen
	ErrRedundantExpression
	ErrEOF
	ErrRecursionLimit
)

var errorKindNames = [...]string{
	ErrUnexpectedToken:     "unexpected token",
	ErrNotExpression:       "not an expression",
	ErrNotOperator:         "not an operator",
	ErrUnclosedOpenParen:   "unclosed open parenthesis",
	ErrRedundantExpression: "redundant expression",
	ErrEOF:                 "end of file",
	ErrRecursionLimit:      "recursion limit exceeded",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "parser error"
}

// Error represents a parse error. Token is the offending token; it is nil for
// ErrEOF.
type Error struct {
	Kind  ErrorKind
	Token *lexer.Token
	Span  syntax.Span
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrEOF:
		return "unexpected end of input"
	case ErrNotExpression:
		return fmt.Sprintf("%s is not an expression at %s", tokenDescription(e.Token), e.Span)
	case ErrNotOperator:
		return fmt.Sprintf("%s is not an operator at %s", tokenDescription(e.Token), e.Span)
	case ErrUnclosedOpenParen:
		return fmt.Sprintf("unclosed open parenthesis at %s", e.Span)
	case ErrRedundantExpression:
		return fmt.Sprintf("redundant expression %s at %s", tokenDescription(e.Token), e.Span)
	case ErrRecursionLimit:
		return fmt.Sprintf("expression is nested too deeply at %s", e.Span)
	default:
		return fmt.Sprintf("unexpected %s at %s", tokenDescription(e.Token), e.Span)
	}
}

// ErrorSpan returns the location of the offending input.
func (e *Error) ErrorSpan() syntax.Span {
	return e.Span
}

func newError(kind ErrorKind, tok lexer.Token) *Error {
	return &Error{Kind: kind, Token: &tok, Span: tok.Span}
}

func tokenDescription(tok *lexer.Token) string {
	if tok == nil {
		return "end of input"
	}
	switch tok.Type() {
	case lexer.TokenNumber:
		return fmt.Sprintf("number %d", tok.Number)
	case lexer.TokenPlus:
		return "`+`"
	case lexer.TokenMinus:
		return "`-`"
	case lexer.TokenAsterisk:
		return "`*`"
	case lexer.TokenSlash:
		return "`/`"
	case lexer.TokenLParen:
		return "`(`"
	case lexer.TokenRParen:
		return "`)`"
	default:
		return tok.String()
	}
}
