/*
Output formatting
===================

Run is the batch entry point cmd/polysolve calls after parsing succeeds: for
each parsed line it echoes the original source text, then writes one
tab-indented result line per Eval result. A local
(non-fatal) directive error prints as a single "ERROR: ..." line and the run
continues; a *driver.FatalError aborts the run and is returned to the
caller, which reports it and exits non-zero.
*/

package driver

import (
	"fmt"
	"io"
	"strings"

	"github.com/polysolve/polysolve/ast"
	"github.com/polysolve/polysolve/parse"
)

// describe renders a one-line summary of dir's shape for --trace, naming
// the directive kind rather than dumping its internal struct layout.
func describe(dir ast.Directive) string {
	switch v := dir.(type) {
	case ast.Assign:
		return fmt.Sprintf("assign %s = ...", v.Name)
	case ast.Operation:
		return fmt.Sprintf("operation, %d operand(s)", len(v.Operands))
	case ast.Bare:
		return fmt.Sprintf("polynomial %s", v.Value.String())
	case ast.Solve:
		if v.Variable == "" {
			return fmt.Sprintf("solve %s", v.Value.String())
		}
		return fmt.Sprintf("solve %s for %s", v.Value.String(), v.Variable)
	default:
		return fmt.Sprintf("%T", dir)
	}
}

// Run evaluates lines in order against a fresh Driver, echoing each
// original source line (looked up in source by 1-based line number) to out
// followed by its tab-indented result. trace, if non-nil, receives one line
// per directive describing its parsed shape before it is evaluated.
func Run(out io.Writer, trace io.Writer, source string, lines []parse.Line) error {
	sourceLines := strings.Split(source, "\n")
	d := New()

	for _, line := range lines {
		if trace != nil {
			fmt.Fprintf(trace, "line %d: %s\n", line.LineNo, describe(line.Directive))
		}

		if line.LineNo >= 1 && line.LineNo <= len(sourceLines) {
			fmt.Fprintln(out, sourceLines[line.LineNo-1])
		}

		results, err := d.Eval(line.Directive)
		if err != nil {
			if fatal, ok := err.(*FatalError); ok {
				return fmt.Errorf("line %d: %w", line.LineNo, fatal)
			}
			fmt.Fprintf(out, "\tERROR: %s\n", err.Error())
			continue
		}
		for _, r := range results {
			fmt.Fprintf(out, "\t%s\n", r)
		}
	}
	return nil
}
