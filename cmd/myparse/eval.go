package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval EXPR...",
	Short: "Evaluate expressions given as arguments",
	Long: `Evaluate each argument as one line and print the results in order.
The exit status is non-zero if any expression failed.

An expression starting with "-" would be read as a flag; put "--" before the
expressions to pass it through.`,
	Example: `  myparse eval "1 + 2 * 3" "(4 - 1) / 2"
  myparse eval --compile "1 + 2 * 3 - -10"
  myparse eval -- "-1 + 2" "-(3 * 4)"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	s, _, err := newSession(cmd)
	if err != nil {
		return err
	}

	failed := 0
	for _, line := range args {
		if !s.handle(line) {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(args))
	}
	return nil
}
