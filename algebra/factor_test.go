package algebra

import (
	"testing"

	"github.com/polysolve/polysolve/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactor_ExtractsCoefficientAndVariableContent(t *testing.T) {
	// 6x^2y + 9xy = 3xy * (2x+3)
	p := poly(
		termC(6, Variable{Name: "x", Degree: rational.NewInt(2)}, Variable{Name: "y", Degree: rational.One}),
		termC(9, Variable{Name: "x", Degree: rational.One}, Variable{Name: "y", Degree: rational.One}),
	)
	f, q, err := p.Factor()
	require.NoError(t, err)
	assert.Equal(t, "3xy", Term{Coeff: f.Coeff, Vars: f.Vars}.Canonical().String())
	assert.Equal(t, "2x+3", q.String())
}

func TestFactor_ReconstructsOriginal(t *testing.T) {
	p := poly(
		termC(-10, Variable{Name: "x", Degree: rational.NewInt(3)}),
		termC(15, Variable{Name: "x", Degree: rational.NewInt(2)}),
	)
	f, q, err := p.Factor()
	require.NoError(t, err)
	product, err := Polynomial{Terms: []Term{f}, Degree: rational.One}.Mul(q)
	require.NoError(t, err)
	ps, err := p.Simplify()
	require.NoError(t, err)
	assert.Equal(t, ps.String(), product.String())
}

func TestFactor_NoCommonContentLeavesCoefficientOne(t *testing.T) {
	p := poly(
		termC(1, Variable{Name: "x", Degree: rational.One}),
		termC(1),
	)
	f, q, err := p.Factor()
	require.NoError(t, err)
	assert.True(t, f.Coeff.IsOne())
	assert.Empty(t, f.Vars)
	assert.Equal(t, "x+1", q.String())
}

func TestFactor_OfZeroIsZero(t *testing.T) {
	f, q, err := Zero().Factor()
	require.NoError(t, err)
	assert.True(t, f.Coeff.Equal(rational.One))
	assert.True(t, q.IsZero())
}
