package myparse

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/myparse/myparse-go/compiler"
	"github.com/myparse/myparse-go/interpreter"
	"github.com/myparse/myparse-go/lexer"
	"github.com/myparse/myparse-go/parser"
)

// Mode selects the consumer that Process hands a parsed line to.
type Mode int

const (
	ModeEval Mode = iota
	ModeCompile
)

func (m Mode) String() string {
	if m == ModeCompile {
		return "compile"
	}
	return "eval"
}

// ParseMode parses "eval" or "compile".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "eval":
		return ModeEval, nil
	case "compile":
		return ModeCompile, nil
	default:
		return ModeEval, fmt.Errorf("unknown mode %q (expected eval or compile)", s)
	}
}

// Environment holds the settings used to process lines. Every call works on
// its own line; nothing is carried over between calls.
type Environment struct {
	mode     Mode
	overflow interpreter.OverflowMode
	fuel     uint64
	maxDepth int
	logger   zerolog.Logger
}

// NewEnvironment creates an environment with default settings: evaluation
// mode, checked overflow, unlimited fuel and the default nesting limit.
func NewEnvironment() *Environment {
	return &Environment{
		mode:     ModeEval,
		overflow: interpreter.OverflowChecked,
		maxDepth: parser.DefaultMaxDepth,
		logger:   zerolog.Nop(),
	}
}

// SetMode selects what Process does with a parsed line.
func (e *Environment) SetMode(mode Mode) {
	e.mode = mode
}

// Mode returns the current mode.
func (e *Environment) Mode() Mode {
	return e.mode
}

// SetOverflow sets the integer overflow policy for evaluation.
func (e *Environment) SetOverflow(mode interpreter.OverflowMode) {
	e.overflow = mode
}

// SetFuel limits how many nodes a single evaluation may visit. Zero disables
// the limit.
func (e *Environment) SetFuel(fuel uint64) {
	e.fuel = fuel
}

// SetMaxDepth sets the parser nesting limit. Values <= 0 restore the default.
func (e *Environment) SetMaxDepth(depth int) {
	if depth <= 0 {
		depth = parser.DefaultMaxDepth
	}
	e.maxDepth = depth
}

// SetLogger attaches a logger that receives debug events for each line.
func (e *Environment) SetLogger(logger zerolog.Logger) {
	e.logger = logger
}

// Parse lexes and parses a line.
func (e *Environment) Parse(line string) (parser.Expr, error) {
	tokens, err := lexer.Tokenize(line)
	if err != nil {
		e.logger.Debug().Err(err).Msg("lexing failed")
		return nil, wrapError(line, err)
	}
	e.logger.Debug().Int("tokens", len(tokens)).Msg("lexed line")

	expr, err := parser.New(tokens, parser.Config{MaxDepth: e.maxDepth}).Parse()
	if err != nil {
		e.logger.Debug().Err(err).Msg("parsing failed")
		return nil, wrapError(line, err)
	}
	e.logger.Debug().
		Int("nodes", parser.CountNodes(expr)).
		Stringer("span", expr.Span()).
		Msg("parsed line")
	return expr, nil
}

// Eval parses and evaluates a line.
func (e *Environment) Eval(line string) (int64, error) {
	expr, err := e.Parse(line)
	if err != nil {
		return 0, err
	}
	return e.EvalExpr(line, expr)
}

// EvalExpr evaluates a tree previously returned by Parse for line. The line
// is only used for error reporting.
func (e *Environment) EvalExpr(line string, expr parser.Expr) (int64, error) {
	it := interpreter.New(interpreter.Config{Overflow: e.overflow, Fuel: e.fuel})
	v, err := it.Eval(expr)
	if err != nil {
		e.logger.Debug().Err(err).Msg("evaluation failed")
		return 0, wrapError(line, err)
	}
	e.logger.Debug().Int64("result", v).Uint64("fuel", it.FuelConsumed()).Msg("evaluated line")
	return v, nil
}

// Compile parses a line and returns its postfix form.
func (e *Environment) Compile(line string) (string, error) {
	expr, err := e.Parse(line)
	if err != nil {
		return "", err
	}
	return e.compileExpr(expr), nil
}

func (e *Environment) compileExpr(expr parser.Expr) string {
	out := compiler.Compile(expr)
	e.logger.Debug().Str("postfix", out).Msg("compiled line")
	return out
}

// Process runs a line through the consumer selected by the mode and returns
// the text to print.
func (e *Environment) Process(line string) (string, error) {
	expr, err := e.Parse(line)
	if err != nil {
		return "", err
	}
	return e.ProcessExpr(line, expr)
}

// ProcessExpr is Process for a tree previously returned by Parse for line.
func (e *Environment) ProcessExpr(line string, expr parser.Expr) (string, error) {
	if e.mode == ModeCompile {
		return e.compileExpr(expr), nil
	}
	v, err := e.EvalExpr(line, expr)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", v), nil
}
