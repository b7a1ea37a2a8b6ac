package algebra

import (
	"testing"

	"github.com/polysolve/polysolve/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivide_ExactLongDivisionProducesWholeQuotient(t *testing.T) {
	// (x^2 - 1) / (x - 1) = x + 1, no remainder.
	num := poly(
		termC(1, Variable{Name: "x", Degree: rational.NewInt(2)}),
		termC(-1),
	)
	den := poly(
		termC(1, Variable{Name: "x", Degree: rational.One}),
		termC(-1),
	)
	r, err := Divide(num, den)
	require.NoError(t, err)
	assert.Equal(t, "x+1", r.String())
}

func TestDivide_WithRemainderCarriesWholePart(t *testing.T) {
	// (x^2 + 1) / x = x + 1/x.
	num := poly(
		termC(1, Variable{Name: "x", Degree: rational.NewInt(2)}),
		termC(1),
	)
	den := poly(termC(1, Variable{Name: "x", Degree: rational.One}))
	r, err := Divide(num, den)
	require.NoError(t, err)
	assert.Equal(t, "x", r.Whole.String())
	assert.False(t, r.Numerator.IsZero())
}

func TestDivide_NonUnivariateFallsBackToFormalRatio(t *testing.T) {
	num := poly(termC(1, Variable{Name: "x", Degree: rational.One}, Variable{Name: "y", Degree: rational.One}))
	den := poly(termC(1, Variable{Name: "x", Degree: rational.One}))
	r, err := Divide(num, den)
	require.NoError(t, err)
	assert.Equal(t, "y", r.String())
}

func TestNeg_FlipsEverySign(t *testing.T) {
	p := poly(
		termC(2, Variable{Name: "x", Degree: rational.One}),
		termC(-3),
	)
	assert.Equal(t, "-2x+3", p.Neg().String())
}

func TestMul_DistributesAcrossTerms(t *testing.T) {
	p := poly(termC(1, Variable{Name: "x", Degree: rational.One}), termC(1))
	q := poly(termC(1, Variable{Name: "x", Degree: rational.One}), termC(-1))
	got, err := p.Mul(q)
	require.NoError(t, err)
	assert.Equal(t, "x^(2)-1", got.String())
}
