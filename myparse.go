// Package myparse evaluates one-line integer arithmetic expressions.
//
// A line is lexed into spanned tokens, parsed by a recursive-descent parser
// into a syntax tree and then either evaluated to an int64 or compiled to
// postfix notation. Every failure reports the byte range of the source that
// caused it.
//
// # Quick Start
//
//	env := myparse.NewEnvironment()
//	v, err := env.Eval("1 + 2 * 3 - -10")
//	fmt.Println(v) // Output: 17
//
// # Grammar
//
//	Expr   := AddSub
//	AddSub := MulDiv (("+" | "-") MulDiv)*
//	MulDiv := Unary (("*" | "/") Unary)*
//	Unary  := ("+" | "-")? Atom
//	Atom   := Number | "(" Expr ")"
//
// Binary operators are left associative and numbers are unsigned decimal
// literals. Whitespace (space, tab, newline) separates tokens and is
// otherwise ignored.
//
// # Errors
//
// Every operation returns *Error on failure. Its Kind names the failing
// stage and its Span locates the problem in the line:
//
//	_, err := env.Eval("1/0")
//	fmt.Printf("%+v\n", err)
//	// evaluation error: division by zero at [1,2)
//	//   1/0
//	//    ^
//
// The stage errors (*lexer.Error, *parser.Error, *interpreter.Error) are
// reachable through errors.As.
//
// # Postfix output
//
//	env.SetMode(myparse.ModeCompile)
//	out, _ := env.Process("1 + 2 * 3 - -10")
//	fmt.Println(out) // Output: 1 2 3 * + 0 10 - -
package myparse

// Version is the release version of the library and command line tool.
const Version = "0.3.0"
