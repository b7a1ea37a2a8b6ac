package algebra

import (
	"testing"

	"github.com/polysolve/polysolve/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolyRatio_CancelsSharedVariable(t *testing.T) {
	// (ax) / (ax) -> 1, scenario 3 of the worked examples.
	ax := poly(termC(1, Variable{Name: "a", Degree: rational.One}, Variable{Name: "x", Degree: rational.One}))
	r, err := NewRatio(ax, ax).Simplify()
	require.NoError(t, err)
	assert.Equal(t, "1", r.String())
}

func TestPolyRatio_DivisionByZeroPrintsSentinel(t *testing.T) {
	// (3) / (0) -> ERROR: Division by zero!, scenario 4.
	r := NewRatio(ConstantInt(3), ConstantInt(0))
	assert.Equal(t, "ERROR: Division by zero!", r.String())
}

func TestPolyRatio_SimplifiesWithSignNormalization(t *testing.T) {
	// (3 - 6y) / (6x + 12z) -> (-2y+1) / (2x+4z), scenario 5.
	num := poly(termC(3), termC(-6, Variable{Name: "y", Degree: rational.One}))
	den := poly(
		termC(6, Variable{Name: "x", Degree: rational.One}),
		termC(12, Variable{Name: "z", Degree: rational.One}),
	)
	r, err := NewRatio(num, den).Simplify()
	require.NoError(t, err)
	assert.Equal(t, "(-2y+1) / (2x+4z)", r.String())
}

func TestClearNegativeExponents_MultipliesBothSidesUniformly(t *testing.T) {
	// num = x^(-1), den = x^(-2): clearing should multiply both by x^2,
	// leaving num=x, den=1 — the ratio value (1/x) / (1/x^2) = x is preserved.
	num := poly(Term{Coeff: rational.One, Vars: []Variable{{Name: "x", Degree: rational.NewInt(-1)}}})
	den := poly(Term{Coeff: rational.One, Vars: []Variable{{Name: "x", Degree: rational.NewInt(-2)}}})
	r, err := NewRatio(num, den).Simplify()
	require.NoError(t, err)
	assert.Equal(t, "x", r.String())
}

func TestPolyRatio_RatioCancellationIdentity(t *testing.T) {
	// simplify(P*Q / Q) == simplify(P) when Q is a single monomial.
	p := poly(
		termC(2, Variable{Name: "x", Degree: rational.One}),
		termC(3),
	)
	q := poly(termC(5, Variable{Name: "y", Degree: rational.One}))
	pq, err := p.Mul(q)
	require.NoError(t, err)
	r, err := NewRatio(pq, q).Simplify()
	require.NoError(t, err)
	ps, err := p.Simplify()
	require.NoError(t, err)
	whole, ok := r.AsPolynomial()
	require.True(t, ok)
	assert.Equal(t, ps.String(), whole.String())
}

func TestPolyRatio_Arithmetic(t *testing.T) {
	half := NewRatio(ConstantInt(1), ConstantInt(2))
	third := NewRatio(ConstantInt(1), ConstantInt(3))

	sum, err := half.Add(third)
	require.NoError(t, err)
	assert.Equal(t, "(5) / (6)", sum.String())

	diff, err := half.Sub(third)
	require.NoError(t, err)
	assert.Equal(t, "(1) / (6)", diff.String())

	prod, err := half.Mul(third)
	require.NoError(t, err)
	assert.Equal(t, "(1) / (6)", prod.String())

	quot, err := half.Div(third)
	require.NoError(t, err)
	assert.Equal(t, "(3) / (2)", quot.String())
}
