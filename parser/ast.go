package parser

import (
	"fmt"

	"github.com/myparse/myparse-go/lexer"
	"github.com/myparse/myparse-go/syntax"
)

// Span represents a location range in source code.
type Span = lexer.Span

// Node is the interface implemented by all AST nodes.
type Node interface {
	node()
	Span() Span
}

// Expr represents an expression node.
type Expr interface {
	Node
	fmt.Stringer
	expr()
}

// NumberLiteral is an unsigned integer literal.
type NumberLiteral struct {
	Value uint64
	span  Span
}

func (n *NumberLiteral) node()          {}
func (n *NumberLiteral) expr()          {}
func (n *NumberLiteral) Span() Span     { return n.span }
func (n *NumberLiteral) String() string { return fmt.Sprintf("%d", n.Value) }

// UnaryOpKind is the operator of a UnaryExpr.
type UnaryOpKind int

const (
	UnaryPlus UnaryOpKind = iota
	UnaryMinus
)

func (k UnaryOpKind) String() string {
	if k == UnaryPlus {
		return "Plus"
	}
	return "Minus"
}

// UnaryOp is a unary operator together with the span of its token.
type UnaryOp = syntax.Annot[UnaryOpKind]

// UnaryExpr applies a sign to its operand.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
	span    Span
}

func (u *UnaryExpr) node()      {}
func (u *UnaryExpr) expr()      {}
func (u *UnaryExpr) Span() Span { return u.span }
func (u *UnaryExpr) String() string {
	return fmt.Sprintf("Unary%s(%s)", u.Op.Value, u.Operand)
}

// BinOpKind is the operator of a BinaryExpr.
type BinOpKind int

const (
	BinOpAdd BinOpKind = iota
	BinOpSub
	BinOpMul
	BinOpDiv
)

var binOpNames = [...]string{
	BinOpAdd: "Add",
	BinOpSub: "Sub",
	BinOpMul: "Mul",
	BinOpDiv: "Div",
}

func (k BinOpKind) String() string {
	if int(k) < len(binOpNames) {
		return binOpNames[k]
	}
	return fmt.Sprintf("BinOpKind(%d)", k)
}

// BinOp is a binary operator together with the span of its token.
type BinOp = syntax.Annot[BinOpKind]

// BinaryExpr applies an arithmetic operator to two operands.
type BinaryExpr struct {
	Op    BinOp
	Left  Expr
	Right Expr
	span  Span
}

func (b *BinaryExpr) node()      {}
func (b *BinaryExpr) expr()      {}
func (b *BinaryExpr) Span() Span { return b.span }
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s(%s, %s)", b.Op.Value, b.Left, b.Right)
}

// NewNumber creates a number literal node.
func NewNumber(n uint64, span Span) *NumberLiteral {
	return &NumberLiteral{Value: n, span: span}
}

// NewUnary creates a unary node spanning the operator and the operand.
func NewUnary(op UnaryOp, operand Expr) *UnaryExpr {
	return &UnaryExpr{Op: op, Operand: operand, span: op.Span.Merge(operand.Span())}
}

// NewBinary creates a binary node spanning both operands.
func NewBinary(op BinOp, left, right Expr) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right, span: left.Span().Merge(right.Span())}
}

// Walk visits every node below and including e in post-order. It stops at
// the first error returned by fn.
func Walk(e Expr, fn func(Expr) error) error {
	switch n := e.(type) {
	case *UnaryExpr:
		if err := Walk(n.Operand, fn); err != nil {
			return err
		}
	case *BinaryExpr:
		if err := Walk(n.Left, fn); err != nil {
			return err
		}
		if err := Walk(n.Right, fn); err != nil {
			return err
		}
	}
	return fn(e)
}

// CountNodes returns the number of nodes in the tree.
func CountNodes(e Expr) int {
	count := 0
	_ = Walk(e, func(Expr) error {
		count++
		return nil
	})
	return count
}
