package lexer

import (
	"fmt"

	"github.com/myparse/myparse-go/syntax"
)

// TokenType represents the type of a token.
type TokenType int

const (
	TokenNumber   TokenType = iota // [0-9]+
	TokenPlus                      // +
	TokenMinus                     // -
	TokenAsterisk                  // *
	TokenSlash                     // /
	TokenLParen                    // (
	TokenRParen                    // )
)

// Span represents a location range in source code.
type Span = syntax.Span

// Token represents a single token from the lexer. Number is only meaningful
// for TokenNumber.
type Token struct {
	syntax.Annot[TokenType]
	Number uint64
}

// NewToken creates a punctuation token.
func NewToken(typ TokenType, span Span) Token {
	return Token{Annot: syntax.NewAnnot(typ, span)}
}

// NewNumber creates a number token.
func NewNumber(n uint64, span Span) Token {
	return Token{Annot: syntax.NewAnnot(TokenNumber, span), Number: n}
}

// Type returns the kind of the token.
func (t Token) Type() TokenType {
	return t.Value
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Value == TokenNumber {
		return fmt.Sprintf("Number(%d)", t.Number)
	}
	return t.Value.String()
}

var tokenTypeNames = map[TokenType]string{
	TokenNumber:   "Number",
	TokenPlus:     "Plus",
	TokenMinus:    "Minus",
	TokenAsterisk: "Asterisk",
	TokenSlash:    "Slash",
	TokenLParen:   "LParen",
	TokenRParen:   "RParen",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// punctuation maps the single-byte tokens to their types.
var punctuation = map[byte]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenAsterisk,
	'/': TokenSlash,
	'(': TokenLParen,
	')': TokenRParen,
}

// FormatForSnapshot formats a token together with the source it covers.
func (t Token) FormatForSnapshot(source string) string {
	return fmt.Sprintf("%s@%s %q", t, t.Span, source[t.Span.Start:t.Span.End])
}
