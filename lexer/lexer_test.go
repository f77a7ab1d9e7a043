package lexer

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/myparse/myparse-go/internal/testutil"
	"github.com/myparse/myparse-go/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lexerInputDir = "testdata"

func TestLexer(t *testing.T) {
	cases, err := testutil.GlobCases(lexerInputDir)
	require.NoError(t, err)
	require.NotEmpty(t, cases, "no input files found in %s", lexerInputDir)

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			if reason, ok := c.Meta["skip"]; ok {
				t.Skip(reason)
			}
			actual := stringifyResult(c.Input)
			if diff := testutil.Diff(c.Expected, actual); diff != "" {
				t.Errorf("output mismatch\n%s", diff)
			}
		})
	}
}

// stringifyResult formats tokens one per line, or the error.
func stringifyResult(source string) string {
	tokens, err := Tokenize(source)
	if err != nil {
		return "error: " + err.Error()
	}
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.FormatForSnapshot(source))
		sb.WriteString("\n")
	}
	return sb.String()
}

func TestLexerBasic(t *testing.T) {
	tokens, err := Tokenize("1 + 2 * 3 - -10")
	require.NoError(t, err)

	expected := []Token{
		NewNumber(1, syntax.NewSpan(0, 1)),
		NewToken(TokenPlus, syntax.NewSpan(2, 3)),
		NewNumber(2, syntax.NewSpan(4, 5)),
		NewToken(TokenAsterisk, syntax.NewSpan(6, 7)),
		NewNumber(3, syntax.NewSpan(8, 9)),
		NewToken(TokenMinus, syntax.NewSpan(10, 11)),
		NewToken(TokenMinus, syntax.NewSpan(12, 13)),
		NewNumber(10, syntax.NewSpan(13, 15)),
	}
	assert.Equal(t, expected, tokens)
}

func TestLexerEmpty(t *testing.T) {
	for _, input := range []string{"", " ", "\t\n  "} {
		tokens, err := Tokenize(input)
		require.NoError(t, err)
		assert.Empty(t, tokens, "input %q", input)
	}
}

func TestLexerInvalidChar(t *testing.T) {
	tokens, err := Tokenize("1 + x")
	assert.Nil(t, tokens)

	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, ErrInvalidChar, lexErr.Kind)
	assert.Equal(t, 'x', lexErr.Char)
	assert.Equal(t, syntax.NewSpan(4, 5), lexErr.ErrorSpan())
}

func TestLexerNumberOverflow(t *testing.T) {
	_, err := Tokenize("1 + 18446744073709551616")

	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, ErrNumberOverflow, lexErr.Kind)
	assert.Equal(t, syntax.NewSpan(4, 24), lexErr.Span)
	assert.True(t, errors.Is(err, strconv.ErrRange))
}

func TestLexerMaxUint64(t *testing.T) {
	tokens, err := Tokenize("18446744073709551615")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, uint64(18446744073709551615), tokens[0].Number)
}

func TestLexerWhitespaceInsensitive(t *testing.T) {
	compact, err := Tokenize("1-2")
	require.NoError(t, err)
	spaced, err := Tokenize("1 - 2")
	require.NoError(t, err)

	require.Len(t, spaced, len(compact))
	for i := range compact {
		assert.Equal(t, compact[i].Type(), spaced[i].Type())
		assert.Equal(t, compact[i].Number, spaced[i].Number)
	}
}

func TestNextPullsOneTokenAtATime(t *testing.T) {
	l := New(" (7)")

	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, TokenLParen, tok.Type())
	assert.Equal(t, 2, l.Pos())

	tok, err = l.Next()
	require.NoError(t, err)
	assert.Equal(t, "Number(7)", tok.String())

	tok, err = l.Next()
	require.NoError(t, err)
	assert.Equal(t, TokenRParen, tok.Type())

	tok, err = l.Next()
	require.NoError(t, err)
	assert.Nil(t, tok)
}

func TestConsumeByte(t *testing.T) {
	l := New("+-")

	end, err := l.consumeByte('+')
	require.NoError(t, err)
	assert.Equal(t, 1, end)

	_, err = l.consumeByte('*')
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, ErrInvalidChar, lexErr.Kind)
	assert.Equal(t, '-', lexErr.Char)

	_, err = l.consumeByte('-')
	require.NoError(t, err)

	_, err = l.consumeByte('-')
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, ErrEOF, lexErr.Kind)
	assert.Equal(t, syntax.NewSpan(2, 2), lexErr.Span)
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "Asterisk", TokenAsterisk.String())
	assert.Equal(t, "TokenType(99)", TokenType(99).String())
}

func TestLexerInvalidMultiByteChar(t *testing.T) {
	_, err := Tokenize("1 + é")

	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, ErrInvalidChar, lexErr.Kind)
	assert.Equal(t, 'é', lexErr.Char)
	assert.Equal(t, syntax.NewSpan(4, 5), lexErr.Span)
	assert.Equal(t, "invalid char 'é' at [4,5)", lexErr.Error())

	_, err = Tokenize("2 * \xff")
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, utf8.RuneError, lexErr.Char)
}
