/*
polysolve CLI
==============

One-shot batch entry point: reads the input file named on the command line,
parses it in full, then evaluates and prints its directives in order. A
single cobra RunE pass rather than an interactive REPL loop, since this
tool is a non-interactive batch run.
*/

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/polysolve/polysolve/driver"
	"github.com/polysolve/polysolve/parse"
	"github.com/spf13/cobra"
)

// Exit codes: distinct codes for the three ways a batch run can fail,
// beyond a bare "any non-zero" requirement.
const (
	exitIO       = 1
	exitParse    = 2
	exitInternal = 3
)

var traceFlag bool

var rootCmd = &cobra.Command{
	Use:   "polysolve <file>",
	Short: "Batch-mode symbolic calculator",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	rootCmd.Flags().BoolVar(&traceFlag, "trace", false, "print each directive's parsed shape to stderr before evaluating it")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

func run(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return &exitError{code: exitIO, err: fmt.Errorf("reading %s: %w", path, err)}
	}
	source := string(data)

	lines, err := parse.Parse(source)
	if err != nil {
		return &exitError{code: exitParse, err: err}
	}

	var trace io.Writer
	if traceFlag {
		trace = os.Stderr
	}

	if err := driver.Run(os.Stdout, trace, source, lines); err != nil {
		return &exitError{code: exitInternal, err: err}
	}
	return nil
}

// exitError carries the process exit code a failure should produce
// alongside the error cobra prints to stderr.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	if ee, ok := err.(*exitError); ok {
		return ee.code
	}
	return exitInternal
}
