package parse

import (
	"testing"

	"github.com/polysolve/polysolve/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_BarePolynomial(t *testing.T) {
	lines, err := Parse("8x^(2)\n")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	bare, ok := lines[0].Directive.(ast.Bare)
	require.True(t, ok)
	assert.Equal(t, "8x^(2)", bare.Value.String())
	assert.Equal(t, 1, lines[0].LineNo)
}

func TestParse_AssignToPolynomial(t *testing.T) {
	lines, err := Parse("a=8\n")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assign, ok := lines[0].Directive.(ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "a", assign.Name)
	_, ok = assign.Value.(ast.Poly)
	assert.True(t, ok)
}

func TestParse_AssignToOperation(t *testing.T) {
	lines, err := Parse("b=(x)*(6x-y)\n")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assign, ok := lines[0].Directive.(ast.Assign)
	require.True(t, ok)
	op, ok := assign.Value.(ast.Operation)
	require.True(t, ok)
	assert.Len(t, op.Operands, 2)
	assert.Equal(t, []ast.Op{ast.OpMul}, op.Ops)
}

func TestParse_ChainedOperation(t *testing.T) {
	lines, err := Parse("(1)+(2)-(3)\n")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	op, ok := lines[0].Directive.(ast.Operation)
	require.True(t, ok)
	require.Len(t, op.Operands, 3)
	assert.Equal(t, []ast.Op{ast.OpAdd, ast.OpSub}, op.Ops)
}

func TestParse_ParenthesizedFractionWithoutOperatorFallsBackToBare(t *testing.T) {
	// A lone "(1/2)" is not an operation (no operator follows), so it must
	// backtrack and parse as a bare polynomial (a fraction term) instead.
	lines, err := Parse("(1/2)\n")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	_, ok := lines[0].Directive.(ast.Bare)
	assert.True(t, ok)
}

func TestParse_SolveWithExplicitVariable(t *testing.T) {
	lines, err := Parse("[y^(2)-11x+2+x, x]\n")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	solve, ok := lines[0].Directive.(ast.Solve)
	require.True(t, ok)
	assert.Equal(t, "x", solve.Variable)
}

func TestParse_SolveWithoutVariable(t *testing.T) {
	lines, err := Parse("[x^(2)+x-2]\n")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	solve, ok := lines[0].Directive.(ast.Solve)
	require.True(t, ok)
	assert.Equal(t, "", solve.Variable)
}

func TestParse_MultipleLinesTrackLineNumbers(t *testing.T) {
	lines, err := Parse("a=8\n\nb=(a)*(x)\n")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].LineNo)
	assert.Equal(t, 3, lines[1].LineNo)
}

func TestParse_OperationMissingThirdOperandIsHardError(t *testing.T) {
	// Once two operands are committed, a further operator not followed by
	// '(' is a hard parse error, not a silent fall back to polynomial.
	_, err := Parse("(1)+(2)*x\n")
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
}

func TestParse_UnknownTokenIsError(t *testing.T) {
	_, err := Parse("@\n")
	require.Error(t, err)
}

func TestParse_EmptyInputProducesNoLines(t *testing.T) {
	lines, err := Parse("\n\n")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestError_FormatsCaretUnderOffendingColumn(t *testing.T) {
	// "a=" with nothing after the '=' fails inside parsePolynomial, a
	// genuine *Error with source-line and caret formatting (unlike a
	// lexical error, which never reaches the parser).
	_, err := Parse("a=\n")
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	msg := err.Error()
	assert.Contains(t, msg, "line 1, column 3:")
	assert.Contains(t, msg, "a=")
	assert.Contains(t, msg, "^")
}
