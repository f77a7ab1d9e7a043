// Package parser builds an arithmetic syntax tree from lexer tokens.
//
// Grammar, loosest tier first:
//
//	Expr   = AddSub
//	AddSub = MulDiv (("+" | "-") MulDiv)*
//	MulDiv = Unary (("*" | "/") Unary)*
//	Unary  = ("+" | "-")? Atom
//	Atom   = Number | "(" Expr ")"
package parser

import (
	"github.com/myparse/myparse-go/lexer"
	"github.com/myparse/myparse-go/syntax"
)

// DefaultMaxDepth is the default limit for nested parentheses.
const DefaultMaxDepth = 150

// Config controls parser limits.
type Config struct {
	// MaxDepth limits how deeply expressions may nest. Zero means
	// DefaultMaxDepth.
	MaxDepth int
}

// DefaultConfig returns the default parser configuration.
func DefaultConfig() Config {
	return Config{MaxDepth: DefaultMaxDepth}
}

// Parser parses a single token sequence.
type Parser struct {
	tokens   []lexer.Token
	pos      int
	depth    int
	maxDepth int
	lastSpan Span
}

// New creates a parser over tokens.
func New(tokens []lexer.Token, cfg Config) *Parser {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return &Parser{tokens: tokens, maxDepth: cfg.MaxDepth}
}

// Parse parses tokens with the default configuration.
func Parse(tokens []lexer.Token) (Expr, error) {
	return New(tokens, DefaultConfig()).Parse()
}

// ParseSource lexes and parses a source line. Lexer failures are returned as
// *lexer.Error, grammar failures as *Error.
func ParseSource(source string, cfg Config) (Expr, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return New(tokens, cfg).Parse()
}

// Parse parses one expression covering every token.
func (p *Parser) Parse() (Expr, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok != nil {
		return nil, newError(ErrRedundantExpression, *tok)
	}
	return expr, nil
}

func (p *Parser) current() *lexer.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *Parser) advance() *lexer.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	tok := &p.tokens[p.pos]
	p.lastSpan = tok.Span
	p.pos++
	return tok
}

// unexpectedEOF points just past the last consumed token.
func (p *Parser) unexpectedEOF() *Error {
	end := p.lastSpan.End
	return &Error{Kind: ErrEOF, Span: syntax.NewSpan(end, end)}
}

// --- Expression Parsing ---

// binaryTier describes one left-associative precedence level: which tokens
// are its operators and which rule parses its operands.
type binaryTier struct {
	ops     map[lexer.TokenType]BinOpKind
	operand func(*Parser) (Expr, *Error)
}

var (
	addSubOps = map[lexer.TokenType]BinOpKind{
		lexer.TokenPlus:  BinOpAdd,
		lexer.TokenMinus: BinOpSub,
	}
	mulDivOps = map[lexer.TokenType]BinOpKind{
		lexer.TokenAsterisk: BinOpMul,
		lexer.TokenSlash:    BinOpDiv,
	}
)

func (p *Parser) parseExpr() (Expr, *Error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		if tok := p.current(); tok != nil {
			return nil, newError(ErrRecursionLimit, *tok)
		}
		return nil, &Error{Kind: ErrRecursionLimit, Span: p.lastSpan}
	}
	return p.parseAddSub()
}

func (p *Parser) parseAddSub() (Expr, *Error) {
	return p.parseLeftBinop(binaryTier{ops: addSubOps, operand: (*Parser).parseMulDiv})
}

func (p *Parser) parseMulDiv() (Expr, *Error) {
	return p.parseLeftBinop(binaryTier{ops: mulDivOps, operand: (*Parser).parseUnary})
}

// parseLeftBinop folds operand (op operand)* into a left-leaning tree. Any
// failure to recognize an operator of this tier ends the loop without
// consuming a token, leaving it to a looser tier or the caller.
func (p *Parser) parseLeftBinop(tier binaryTier) (Expr, *Error) {
	left, err := tier.operand(p)
	if err != nil {
		return nil, err
	}
	for {
		op, err := p.parseOperator(tier)
		if err != nil {
			return left, nil
		}
		right, err := tier.operand(p)
		if err != nil {
			return nil, err
		}
		left = NewBinary(op, left, right)
	}
}

// parseOperator consumes the next token if it is an operator of tier. It
// fails with ErrEOF or ErrNotOperator otherwise.
func (p *Parser) parseOperator(tier binaryTier) (BinOp, *Error) {
	tok := p.current()
	if tok == nil {
		return BinOp{}, p.unexpectedEOF()
	}
	kind, ok := tier.ops[tok.Type()]
	if !ok {
		return BinOp{}, newError(ErrNotOperator, *tok)
	}
	p.advance()
	return syntax.NewAnnot(kind, tok.Span), nil
}

func (p *Parser) parseUnary() (Expr, *Error) {
	tok := p.current()
	if tok == nil {
		return p.parseAtom()
	}

	var kind UnaryOpKind
	switch tok.Type() {
	case lexer.TokenPlus:
		kind = UnaryPlus
	case lexer.TokenMinus:
		kind = UnaryMinus
	default:
		return p.parseAtom()
	}
	p.advance()

	operand, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	return NewUnary(syntax.NewAnnot(kind, tok.Span), operand), nil
}

func (p *Parser) parseAtom() (Expr, *Error) {
	tok := p.advance()
	if tok == nil {
		return nil, p.unexpectedEOF()
	}

	switch tok.Type() {
	case lexer.TokenNumber:
		return NewNumber(tok.Number, tok.Span), nil

	case lexer.TokenLParen:
		open := *tok
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		closing := p.advance()
		switch {
		case closing == nil:
			return nil, newError(ErrUnclosedOpenParen, open)
		case closing.Type() != lexer.TokenRParen:
			return nil, newError(ErrRedundantExpression, *closing)
		}
		return inner, nil

	default:
		return nil, newError(ErrNotExpression, *tok)
	}
}
