package interpreter

import (
	"math"
	"testing"

	"github.com/myparse/myparse-go/parser"
	"github.com/myparse/myparse-go/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, source string) parser.Expr {
	t.Helper()
	expr, err := parser.ParseSource(source, parser.DefaultConfig())
	require.NoError(t, err, source)
	return expr
}

func TestEval(t *testing.T) {
	tests := []struct {
		source string
		want   int64
	}{
		{"1 + 2 * 3 - -10", 17},
		{"(1 + 2) * 3", 9},
		{"8 - 3 - 2", 3},
		{"100 / 10 / 5", 2},
		{"7 / 2", 3},
		{"-7 / 2", -3},
		{"7 / -2", -3},
		{"+5", 5},
		{"-(2 * 3)", -6},
		{"0", 0},
		{"9223372036854775807", math.MaxInt64},
		{"-9223372036854775808", math.MinInt64},
		{"-9223372036854775807 - 1", math.MinInt64},
	}

	it := New(Config{})
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			got, err := it.Eval(mustParse(t, tt.source))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDivisionByZeroPointsAtOperator(t *testing.T) {
	_, err := New(Config{}).Eval(mustParse(t, "1/0"))

	var evalErr *Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, ErrDivisionByZero, evalErr.Kind)
	assert.Equal(t, syntax.NewSpan(1, 2), evalErr.ErrorSpan())
}

func TestDivisionByZeroInsideLargerExpression(t *testing.T) {
	_, err := New(Config{}).Eval(mustParse(t, "4 + 6 / (3 - 3) * 2"))

	var evalErr *Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, ErrDivisionByZero, evalErr.Kind)
	assert.Equal(t, syntax.NewSpan(6, 7), evalErr.Span)
	assert.Equal(t, "division by zero at [6,7)", evalErr.Error())
}

func TestOverflowChecked(t *testing.T) {
	tests := []struct {
		source string
		span   syntax.Span
	}{
		{"9223372036854775807 + 1", syntax.NewSpan(20, 21)},
		{"-9223372036854775808 - 1", syntax.NewSpan(21, 22)},
		{"4611686018427387904 * 2", syntax.NewSpan(20, 21)},
		{"-9223372036854775808 / -1", syntax.NewSpan(21, 22)},
		{"-(-9223372036854775808)", syntax.NewSpan(0, 1)},
		{"9223372036854775808", syntax.NewSpan(0, 19)},
	}

	it := New(Config{Overflow: OverflowChecked})
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			_, err := it.Eval(mustParse(t, tt.source))
			var evalErr *Error
			require.ErrorAs(t, err, &evalErr)
			assert.Equal(t, ErrOverflow, evalErr.Kind)
			assert.Equal(t, tt.span, evalErr.Span)
		})
	}
}

func TestOverflowWrapping(t *testing.T) {
	it := New(Config{Overflow: OverflowWrapping})

	got, err := it.Eval(mustParse(t, "9223372036854775807 + 1"))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), got)

	got, err = it.Eval(mustParse(t, "-9223372036854775808 / -1"))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), got)

	_, err = it.Eval(mustParse(t, "1 / 0"))
	assert.Error(t, err, "division by zero is reported in every mode")
}

func TestLeftOperandFailsFirst(t *testing.T) {
	_, err := New(Config{}).Eval(mustParse(t, "1/0 + 2/0"))
	var evalErr *Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, syntax.NewSpan(1, 2), evalErr.Span)
}

func TestFuel(t *testing.T) {
	expr := mustParse(t, "1 + 2 * 3")

	it := New(Config{Fuel: 5})
	got, err := it.Eval(expr)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)
	assert.Equal(t, uint64(5), it.FuelConsumed())

	it = New(Config{Fuel: 4})
	_, err = it.Eval(expr)
	var evalErr *Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, ErrOutOfFuel, evalErr.Kind)

	// Fuel is per evaluation.
	it = New(Config{Fuel: 5})
	for i := 0; i < 3; i++ {
		_, err := it.Eval(expr)
		require.NoError(t, err)
	}
}

func TestParseOverflowMode(t *testing.T) {
	m, err := ParseOverflowMode("wrapping")
	require.NoError(t, err)
	assert.Equal(t, OverflowWrapping, m)
	assert.Equal(t, "wrapping", m.String())

	m, err = ParseOverflowMode("")
	require.NoError(t, err)
	assert.Equal(t, OverflowChecked, m)

	_, err = ParseOverflowMode("saturating")
	assert.Error(t, err)
}

func TestArithmeticHelpers(t *testing.T) {
	_, ok := addInt64(math.MaxInt64, 0)
	assert.True(t, ok)
	_, ok = addInt64(math.MinInt64, -1)
	assert.False(t, ok)
	_, ok = subInt64(0, math.MinInt64)
	assert.False(t, ok)
	_, ok = subInt64(-1, math.MinInt64)
	assert.True(t, ok)
	_, ok = mulInt64(math.MinInt64, -1)
	assert.False(t, ok)
	v, ok := mulInt64(-3, 4)
	assert.True(t, ok)
	assert.Equal(t, int64(-12), v)
}
