package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/myparse/myparse-go"
	"github.com/myparse/myparse-go/internal/config"
	"github.com/myparse/myparse-go/interpreter"
)

var (
	compileMode bool
	showAST     bool
	colorMode   string
	configPath  string
	logLevel    string
	overflow    string
	fuel        uint64
	maxDepth    int
)

var rootCmd = &cobra.Command{
	Use:   "myparse",
	Short: "Evaluate integer arithmetic expressions",
	Long: `myparse reads one arithmetic expression per line and prints its value.

Expressions use + - * / on unsigned decimal literals, parentheses and unary
signs. With --compile each line is translated to postfix notation instead.
Without arguments an interactive prompt is started; when standard input is not
a terminal lines are read from it until end of input.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runREPL,
}

func init() {
	bindFlags(rootCmd)

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(versionCmd)
}

func bindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.BoolVar(&compileMode, "compile", false, "Print postfix notation instead of evaluating")
	flags.BoolVar(&showAST, "ast", false, "Print the syntax tree before the result")
	flags.StringVar(&colorMode, "color", "auto", "Color diagnostics: auto, always, never")
	flags.StringVar(&configPath, "config", "", "Path to a YAML config file")
	flags.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringVar(&overflow, "overflow", "checked", "Integer overflow policy: checked, wrapping")
	flags.Uint64Var(&fuel, "fuel", 0, "Maximum evaluation steps per line (0 = unlimited)")
	flags.IntVar(&maxDepth, "max-depth", 150, "Maximum parenthesis nesting depth")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig merges the config file with flags that were set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("compile") {
		cfg.Mode = "eval"
		if compileMode {
			cfg.Mode = "compile"
		}
	}
	if flags.Changed("color") {
		cfg.Color = colorMode
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("overflow") {
		cfg.Overflow = overflow
	}
	if flags.Changed("fuel") {
		cfg.Fuel = fuel
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = maxDepth
	}
	return cfg, cfg.Validate()
}

func newLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		With().Timestamp().Logger().
		Level(lvl)
}

func newEnvironment(cfg config.Config, logger zerolog.Logger) (*myparse.Environment, error) {
	mode, err := myparse.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	ovf, err := interpreter.ParseOverflowMode(cfg.Overflow)
	if err != nil {
		return nil, err
	}

	env := myparse.NewEnvironment()
	env.SetMode(mode)
	env.SetOverflow(ovf)
	env.SetFuel(cfg.Fuel)
	env.SetMaxDepth(cfg.MaxDepth)
	env.SetLogger(logger)
	return env, nil
}

// colorEnabled resolves --color for the writer diagnostics go to.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == ""
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
