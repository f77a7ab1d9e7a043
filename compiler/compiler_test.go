package compiler

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/myparse/myparse-go/interpreter"
	"github.com/myparse/myparse-go/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"1 + 2 * 3 - -10", "1 2 3 * + 0 10 - -"},
		{"(1 + 2) * 3", "1 2 + 3 *"},
		{"8 - 3 - 2", "8 3 - 2 -"},
		{"8 - (3 - 2)", "8 3 2 - -"},
		{"+4 / 2", "0 4 + 2 /"},
		{"42", "42"},
		{"1/0", "1 0 /"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			expr, err := parser.ParseSource(tt.source, parser.DefaultConfig())
			require.NoError(t, err)
			assert.Equal(t, tt.want, Compile(expr))
		})
	}
}

// runPostfix evaluates compiled output on a stack with wrapping arithmetic.
func runPostfix(program string) (int64, error) {
	var stack []int64
	for _, tok := range strings.Fields(program) {
		switch tok {
		case "+", "-", "*", "/":
			if len(stack) < 2 {
				return 0, fmt.Errorf("stack underflow at %q", tok)
			}
			l, r := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]
			var v int64
			switch tok {
			case "+":
				v = l + r
			case "-":
				v = l - r
			case "*":
				v = l * r
			case "/":
				if r == 0 {
					return 0, fmt.Errorf("division by zero")
				}
				v = l / r
			}
			stack = append(stack, v)
		default:
			n, err := strconv.ParseUint(tok, 10, 64)
			if err != nil {
				return 0, err
			}
			stack = append(stack, int64(n))
		}
	}
	if len(stack) != 1 {
		return 0, fmt.Errorf("expected one value on the stack, got %d", len(stack))
	}
	return stack[0], nil
}

func genExpr(r *rand.Rand, depth int) string {
	if depth <= 0 || r.Intn(3) == 0 {
		atom := strconv.Itoa(r.Intn(50))
		if r.Intn(4) == 0 {
			return "-" + atom
		}
		return atom
	}
	ops := []string{"+", "-", "*", "/"}
	return "(" + genExpr(r, depth-1) + ops[r.Intn(len(ops))] + genExpr(r, depth-1) + ")"
}

func TestCompiledProgramAgreesWithInterpreter(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	it := interpreter.New(interpreter.Config{Overflow: interpreter.OverflowWrapping})

	for i := 0; i < 300; i++ {
		source := genExpr(r, 4)
		expr, err := parser.ParseSource(source, parser.DefaultConfig())
		require.NoError(t, err, source)

		want, evalErr := it.Eval(expr)
		got, runErr := runPostfix(Compile(expr))
		if evalErr != nil {
			assert.Error(t, runErr, source)
			continue
		}
		require.NoError(t, runErr, source)
		assert.Equal(t, want, got, source)
	}
}
