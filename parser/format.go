package parser

import (
	"fmt"
	"strings"
)

// Format renders e as an indented tree, one node per line, with operator and
// node spans.
func Format(e Expr) string {
	var sb strings.Builder
	formatNode(&sb, e, 0)
	return sb.String()
}

func formatNode(sb *strings.Builder, e Expr, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := e.(type) {
	case *NumberLiteral:
		fmt.Fprintf(sb, "%sNumberLiteral(%d) @ %s\n", indent, n.Value, n.Span())
	case *UnaryExpr:
		fmt.Fprintf(sb, "%sUnaryExpr(%s@%s) @ %s\n", indent, n.Op.Value, n.Op.Span, n.Span())
		formatNode(sb, n.Operand, depth+1)
	case *BinaryExpr:
		fmt.Fprintf(sb, "%sBinaryExpr(%s@%s) @ %s\n", indent, n.Op.Value, n.Op.Span, n.Span())
		formatNode(sb, n.Left, depth+1)
		formatNode(sb, n.Right, depth+1)
	default:
		fmt.Fprintf(sb, "%s%T\n", indent, e)
	}
}

// FormatResult renders the outcome of parsing source: the tree dump on
// success, or "error: " followed by the error message.
func FormatResult(e Expr, err error) string {
	if err != nil {
		return "error: " + err.Error()
	}
	return Format(e)
}
