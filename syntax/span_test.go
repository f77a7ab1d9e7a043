package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeAdjacent(t *testing.T) {
	a := NewSpan(0, 1)
	b := NewSpan(1, 4)
	assert.Equal(t, NewSpan(0, 4), a.Merge(b))
}

func TestMergeCommutative(t *testing.T) {
	cases := [][2]Span{
		{NewSpan(0, 1), NewSpan(1, 2)},
		{NewSpan(2, 9), NewSpan(4, 5)},
		{NewSpan(3, 3), NewSpan(3, 7)},
		{NewSpan(0, 15), NewSpan(12, 15)},
	}
	for _, c := range cases {
		assert.Equal(t, c[0].Merge(c[1]), c[1].Merge(c[0]), "merge %s %s", c[0], c[1])
	}
}

func TestMergeIdempotent(t *testing.T) {
	for _, s := range []Span{NewSpan(0, 0), NewSpan(2, 3), NewSpan(4, 15)} {
		assert.Equal(t, s, s.Merge(s))
	}
}

func TestMergeCoversGap(t *testing.T) {
	// "1 + 2": the operands are separated by the operator and whitespace.
	assert.Equal(t, NewSpan(0, 5), NewSpan(0, 1).Merge(NewSpan(4, 5)))
}

func TestMergeMalformedPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewSpan(3, 1).Merge(NewSpan(0, 4))
	})
	assert.Panics(t, func() {
		NewSpan(0, 1).Merge(NewSpan(-1, 0))
	})
}

func TestTouches(t *testing.T) {
	assert.True(t, NewSpan(0, 1).Touches(NewSpan(1, 2)))
	assert.True(t, NewSpan(0, 4).Touches(NewSpan(2, 3)))
	assert.False(t, NewSpan(0, 1).Touches(NewSpan(2, 3)))
}

func TestSpanString(t *testing.T) {
	s := NewSpan(13, 15)
	assert.Equal(t, "[13,15)", s.String())
	assert.Equal(t, 2, s.Len())
}

func TestAnnot(t *testing.T) {
	a := NewAnnot("x", NewSpan(1, 2))
	assert.Equal(t, "x", a.Value)
	assert.Equal(t, NewSpan(1, 2), a.Span)
}
