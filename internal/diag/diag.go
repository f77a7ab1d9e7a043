// Package diag renders errors that carry a source span as a short
// diagnostic: the message, the offending line, a caret underline and the
// chain of causes.
package diag

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/myparse/myparse-go/syntax"
)

// Spanned is implemented by errors that know where in the source they
// occurred.
type Spanned interface {
	ErrorSpan() syntax.Span
}

// Styles holds the colour formatters used by Render.
type Styles struct {
	Header *color.Color
	Caret  *color.Color
	Cause  *color.Color
}

// NewStyles creates the diagnostic styles. With enabled=false every
// formatter prints plain text.
func NewStyles(enabled bool) Styles {
	s := Styles{
		Header: color.New(color.Bold, color.FgRed),
		Caret:  color.New(color.Bold, color.FgYellow),
		Cause:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{s.Header, s.Caret, s.Cause} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Plain returns styles without colour.
func Plain() Styles {
	return NewStyles(false)
}

// Render writes the diagnostic for err to w. The output has no trailing
// newline. If no error in the chain implements Spanned only the message and
// causes are written.
//
//	parser error: unexpected end of input
//	  1 +
//	     ^
func Render(w io.Writer, err error, source string, styles Styles) {
	_, _ = fmt.Fprint(w, styles.Header.Sprint(err.Error()))

	var spanned Spanned
	if errors.As(err, &spanned) {
		span := spanned.ErrorSpan()
		_, _ = fmt.Fprintf(w, "\n  %s\n  %s%s", source, padding(source, span.Start), styles.Caret.Sprint(carets(span)))
	}

	prev := err.Error()
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		msg := cause.Error()
		// Skip causes whose text the wrapper already printed.
		if !strings.HasSuffix(prev, msg) {
			_, _ = fmt.Fprint(w, "\n", styles.Cause.Sprint("caused by: "+msg))
		}
		prev = msg
	}
}

// String renders err without colour.
func String(err error, source string) string {
	var sb strings.Builder
	Render(&sb, err, source, Plain())
	return sb.String()
}

// padding returns the whitespace that aligns a caret under byte offset pos:
// one column per character before pos. Tabs in the source are kept so the
// caret lines up in a terminal.
func padding(source string, pos int) string {
	if pos > len(source) {
		pos = len(source)
	}
	var sb strings.Builder
	for _, r := range source[:pos] {
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// carets underlines span. A zero-width span gets one caret.
func carets(span syntax.Span) string {
	return strings.Repeat("^", max(1, span.Len()))
}
