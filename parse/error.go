/*
Parse errors
=============

Error is a single parse-time diagnostic with source context: a caret under
the offending column, no ANSI color. Grounded on CWBudde-go-dws's
internal/errors.CompilerError, trimmed to the single-file, single-error
shape this parser needs — no multi-error accumulation, no file header,
since a batch run's "file" is always the one path given on the command
line and is reported by the caller, not the error itself.
*/

package parse

import (
	"fmt"
	"strings"

	"github.com/polysolve/polysolve/token"
)

// Error is a parse failure positioned at a single token.
type Error struct {
	Message string
	Source  string
	Pos     token.Position
}

// newError builds an Error pointing at tok's start position.
func newError(source string, tok token.Token, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Source: source, Pos: tok.Start}
}

// Error renders the diagnostic: a line/column header, the offending source
// line, and a caret under the column, followed by the message.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "line %d, column %d:\n", e.Pos.Line, e.Pos.Column)
	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		b.WriteString(line)
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", e.Pos.Column-1))
		b.WriteString("^\n")
	}
	b.WriteString(e.Message)
	return b.String()
}

func sourceLine(source string, n int) string {
	lines := strings.Split(source, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}
