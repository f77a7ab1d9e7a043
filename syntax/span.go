// Package syntax holds the source location types shared by every stage.
package syntax

import "fmt"

// Span represents a half-open byte range [Start, End) in a source line.
type Span struct {
	Start int
	End   int
}

// NewSpan returns the span [start, end).
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Merge returns the smallest span covering both s and other, including any
// whitespace between them.
//
// Both spans must be well formed (Start <= End); Merge panics otherwise.
func (s Span) Merge(other Span) Span {
	if !s.Valid() || !other.Valid() {
		panic(fmt.Sprintf("syntax: cannot merge malformed spans %s and %s", s, other))
	}
	return Span{Start: min(s.Start, other.Start), End: max(s.End, other.End)}
}

// Valid reports whether the span is a well formed range.
func (s Span) Valid() bool {
	return 0 <= s.Start && s.Start <= s.End
}

// Touches reports whether the two spans overlap or are adjacent.
func (s Span) Touches(other Span) bool {
	return max(s.Start, other.Start) <= min(s.End, other.End)
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Annot pairs a value with the span it came from.
type Annot[T any] struct {
	Value T
	Span  Span
}

// NewAnnot wraps value with span.
func NewAnnot[T any](value T, span Span) Annot[T] {
	return Annot[T]{Value: value, Span: span}
}
