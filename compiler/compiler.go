// Package compiler translates arithmetic syntax trees to postfix (reverse
// Polish) notation.
//
// Numbers are emitted in decimal, binary operators follow both operands, and
// a unary sign applied to e is emitted as "0 e +" or "0 e -". Tokens are
// separated by single spaces:
//
//	1 + 2 * 3 - -10   =>   1 2 3 * + 0 10 - -
package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/myparse/myparse-go/parser"
)

var binOpSymbols = map[parser.BinOpKind]string{
	parser.BinOpAdd: "+",
	parser.BinOpSub: "-",
	parser.BinOpMul: "*",
	parser.BinOpDiv: "/",
}

// Compiler walks a tree and emits postfix text.
type Compiler struct {
	out strings.Builder
}

// Compile returns the postfix form of expr.
func Compile(expr parser.Expr) string {
	var c Compiler
	c.compile(expr)
	return c.out.String()
}

func (c *Compiler) emit(s string) {
	if c.out.Len() > 0 {
		c.out.WriteByte(' ')
	}
	c.out.WriteString(s)
}

func (c *Compiler) compile(expr parser.Expr) {
	switch n := expr.(type) {
	case *parser.NumberLiteral:
		c.emit(strconv.FormatUint(n.Value, 10))
	case *parser.UnaryExpr:
		c.emit("0")
		c.compile(n.Operand)
		if n.Op.Value == parser.UnaryPlus {
			c.emit("+")
		} else {
			c.emit("-")
		}
	case *parser.BinaryExpr:
		c.compile(n.Left)
		c.compile(n.Right)
		c.emit(binOpSymbols[n.Op.Value])
	default:
		panic(fmt.Sprintf("compiler: unknown node %T", expr))
	}
}
