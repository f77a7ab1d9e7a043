package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/myparse/myparse-go"
	"github.com/myparse/myparse-go/internal/config"
	"github.com/myparse/myparse-go/internal/diag"
	"github.com/myparse/myparse-go/parser"
)

const defaultHistoryFile = ".myparse_history"

// lineReader yields input lines until io.EOF.
type lineReader interface {
	ReadLine() (string, error)
	Close() error
}

// session processes lines with one environment and writes results and
// diagnostics to separate streams.
type session struct {
	env     *myparse.Environment
	out     io.Writer
	errOut  io.Writer
	styles  diag.Styles
	showAST bool
}

func newSession(cmd *cobra.Command) (*session, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, cfg, err
	}
	env, err := newEnvironment(cfg, newLogger(cfg.LogLevel, cmd.ErrOrStderr()))
	if err != nil {
		return nil, cfg, err
	}
	return &session{
		env:     env,
		out:     cmd.OutOrStdout(),
		errOut:  cmd.ErrOrStderr(),
		styles:  diag.NewStyles(colorEnabled(cfg.Color, cmd.ErrOrStderr())),
		showAST: showAST,
	}, cfg, nil
}

// handle processes one line and reports whether it succeeded.
func (s *session) handle(line string) bool {
	expr, err := s.env.Parse(line)
	if err != nil {
		s.report(line, err)
		return false
	}
	if s.showAST {
		_, _ = fmt.Fprint(s.out, parser.Format(expr))
	}

	result, err := s.env.ProcessExpr(line, expr)
	if err != nil {
		s.report(line, err)
		return false
	}
	_, _ = fmt.Fprintln(s.out, result)
	return true
}

func (s *session) report(line string, err error) {
	diag.Render(s.errOut, err, line, s.styles)
	_, _ = fmt.Fprintln(s.errOut)
}

// run reads lines until end of input or :quit. Failed lines are reported and
// do not stop the loop.
func (s *session) run(r lineReader) error {
	for {
		line, err := r.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if trimmed == ":quit" {
				return nil
			}
			_, _ = fmt.Fprintln(s.errOut, "unknown command. Type :quit to exit.")
			continue
		}
		s.handle(line)
	}
}

func runREPL(cmd *cobra.Command, args []string) error {
	s, cfg, err := newSession(cmd)
	if err != nil {
		return err
	}

	var r lineReader
	interactive := isTerminal(cmd.InOrStdin())
	if interactive {
		r = newLinerReader(cfg.Prompt, historyPath(cfg.HistoryFile))
	} else {
		r = newPipeReader(cmd.InOrStdin())
	}
	defer r.Close()

	if err := s.run(r); err != nil {
		return err
	}
	if interactive {
		_, _ = fmt.Fprintln(s.out)
	}
	return nil
}

// historyPath expands a leading ~/ and falls back to ~/.myparse_history.
func historyPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "" {
		return filepath.Join(home, defaultHistoryFile)
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

type linerReader struct {
	state       *liner.State
	prompt      string
	historyPath string
}

func newLinerReader(prompt, historyPath string) *linerReader {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	return &linerReader{state: ln, prompt: prompt, historyPath: historyPath}
}

func (r *linerReader) ReadLine() (string, error) {
	line, err := r.state.Prompt(r.prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		r.state.AppendHistory(line)
	}
	return line, nil
}

func (r *linerReader) Close() error {
	if r.historyPath != "" {
		if f, err := os.Create(r.historyPath); err == nil {
			_, _ = r.state.WriteHistory(f)
			_ = f.Close()
		}
	}
	return r.state.Close()
}

// pipeReader reads lines of any length from non-interactive input.
type pipeReader struct {
	reader *bufio.Reader
}

func newPipeReader(r io.Reader) *pipeReader {
	return &pipeReader{reader: bufio.NewReader(r)}
}

func (r *pipeReader) ReadLine() (string, error) {
	line, err := r.reader.ReadString('\n')
	if err != nil {
		// A final line without a newline is still a line.
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}

func (r *pipeReader) Close() error {
	return nil
}
