// Package lexer turns a line of arithmetic into spanned tokens.
package lexer

import (
	"strconv"
	"unicode/utf8"

	"github.com/myparse/myparse-go/syntax"
)

// Lexer tokenizes a single line of input. The zero value is not usable; use
// New.
type Lexer struct {
	input string
	pos   int // current position in input
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize returns all tokens from the input.
func Tokenize(input string) ([]Token, error) {
	return New(input).All()
}

// All collects all remaining tokens into a slice. On failure no tokens are
// returned.
func (l *Lexer) All() ([]Token, error) {
	tokens := []Token{}
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			break
		}
		tokens = append(tokens, *tok)
	}
	return tokens, nil
}

// Next returns the next token, or nil at end of input.
func (l *Lexer) Next() (*Token, error) {
	for !l.atEnd() {
		b := l.input[l.pos]
		switch {
		case isDigit(b):
			return l.lexNumber()
		case isSpace(b):
			l.recognizeMany(isSpace)
		default:
			typ, ok := punctuation[b]
			if !ok {
				return nil, invalidChar(l.runeAt(l.pos), l.pos)
			}
			return l.lexPunct(b, typ)
		}
	}
	return nil, nil
}

// Pos returns the offset of the next unread byte.
func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) runeAt(pos int) rune {
	r, _ := utf8.DecodeRuneInString(l.input[pos:])
	return r
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

// consumeByte advances past b and returns the new position. It fails with
// ErrEOF at end of input and ErrInvalidChar if a different byte is found.
func (l *Lexer) consumeByte(b byte) (int, error) {
	if l.atEnd() {
		return l.pos, eof(l.pos)
	}
	if l.input[l.pos] != b {
		return l.pos, invalidChar(l.runeAt(l.pos), l.pos)
	}
	l.pos++
	return l.pos, nil
}

// recognizeMany advances while f accepts the current byte and returns the new
// position.
func (l *Lexer) recognizeMany(f func(byte) bool) int {
	for !l.atEnd() && f(l.input[l.pos]) {
		l.pos++
	}
	return l.pos
}

func (l *Lexer) lexPunct(b byte, typ TokenType) (*Token, error) {
	end, err := l.consumeByte(b)
	if err != nil {
		return nil, err
	}
	tok := NewToken(typ, syntax.NewSpan(end-1, end))
	return &tok, nil
}

func (l *Lexer) lexNumber() (*Token, error) {
	start := l.pos
	end := l.recognizeMany(isDigit)
	span := syntax.NewSpan(start, end)

	n, err := strconv.ParseUint(l.input[start:end], 10, 64)
	if err != nil {
		return nil, &Error{Kind: ErrNumberOverflow, Span: span, err: err}
	}
	tok := NewNumber(n, span)
	return &tok, nil
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n'
}
