package driver

import (
	"testing"

	"github.com/polysolve/polysolve/algebra"
	"github.com/polysolve/polysolve/ast"
	"github.com/polysolve/polysolve/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriver_AssignRejectsNonConstantValue(t *testing.T) {
	d := New()
	_, err := d.Eval(ast.Assign{
		Name:  "a",
		Value: ast.Poly{Value: algebra.FromVariable("x")},
	})
	require.Error(t, err)
	var fatal *FatalError
	assert.NotErrorAs(t, err, &fatal, "a bad assignment is local, not fatal")
}

func TestDriver_AssignBindsForLaterDirectives(t *testing.T) {
	d := New()
	_, err := d.Eval(ast.Assign{Name: "a", Value: ast.Poly{Value: algebra.ConstantInt(8)}})
	require.NoError(t, err)

	lines, err := d.Eval(ast.Bare{Value: algebra.FromVariable("a")})
	require.NoError(t, err)
	assert.Equal(t, []string{"8"}, lines)
}

func TestDriver_SolveFailureIsFatal(t *testing.T) {
	d := New()
	cubic := algebra.NewPolynomial([]algebra.Term{
		{Coeff: rational.One, Vars: []algebra.Variable{{Name: "x", Degree: rational.NewInt(3)}}},
	})
	_, err := d.Eval(ast.Solve{Value: cubic})
	require.Error(t, err)
	var fatal *FatalError
	assert.ErrorAs(t, err, &fatal)
}

func TestDriver_SolveEveryValueIsARoot(t *testing.T) {
	d := New()
	lines, err := d.Eval(ast.Solve{Variable: "x", Value: algebra.Zero()})
	require.NoError(t, err)
	assert.Equal(t, []string{"every value is a root"}, lines)
}

func TestDriver_SolveNoRoots(t *testing.T) {
	d := New()
	lines, err := d.Eval(ast.Solve{Variable: "x", Value: algebra.ConstantInt(5)})
	require.NoError(t, err)
	assert.Equal(t, []string{"no roots"}, lines)
}
