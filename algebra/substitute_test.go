package algebra

import (
	"testing"

	"github.com/polysolve/polysolve/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitute_BindsKnownLeavesUnknownSymbolic(t *testing.T) {
	// a*x - y with a=8 -> 8x-y
	p := poly(
		termC(1, Variable{Name: "a", Degree: rational.One}, Variable{Name: "x", Degree: rational.One}),
		termC(-1, Variable{Name: "y", Degree: rational.One}),
	)
	got, err := p.Substitute(map[string]rational.Q{"a": rational.NewInt(8)})
	require.NoError(t, err)
	assert.Equal(t, "8x-y", got.String())
}

func TestSubstitute_AssignThenOperationScenario(t *testing.T) {
	// a = 8 ; (a) * (6x - y) -> 48x-8y, scenario 2 of the worked examples.
	a := poly(termC(1, Variable{Name: "a", Degree: rational.One}))
	bound, err := a.Substitute(map[string]rational.Q{"a": rational.NewInt(8)})
	require.NoError(t, err)
	aVal, ok := bound.IsConstant()
	require.True(t, ok)
	assert.True(t, aVal.Equal(rational.NewInt(8)))

	rhs := poly(
		termC(6, Variable{Name: "x", Degree: rational.One}),
		termC(-1, Variable{Name: "y", Degree: rational.One}),
	)
	product, err := bound.Mul(rhs)
	require.NoError(t, err)
	assert.Equal(t, "48x-8y", product.String())
}

func TestSubstitute_PerfectPowerFoldsNonIntegerExponent(t *testing.T) {
	// x^(1/2) with x=4 -> 2, since 4 is a perfect square.
	p := poly(Term{Coeff: rational.One, Vars: []Variable{{Name: "x", Degree: rational.New(1, 2)}}})
	got, err := p.Substitute(map[string]rational.Q{"x": rational.NewInt(4)})
	require.NoError(t, err)
	assert.Equal(t, "2", got.String())
}

func TestSubstitute_NonPerfectPowerStaysSymbolic(t *testing.T) {
	// x^(1/2) with x=2 -> 2 is not a perfect square, so x stays bound to its
	// own exponent rather than erroring.
	p := poly(Term{Coeff: rational.One, Vars: []Variable{{Name: "x", Degree: rational.New(1, 2)}}})
	got, err := p.Substitute(map[string]rational.Q{"x": rational.NewInt(2)})
	require.NoError(t, err)
	assert.Equal(t, "x^(1/2)", got.String())
}

func TestFreeVariables_ExcludesImaginaryUnit(t *testing.T) {
	p := poly(
		termC(1, Variable{Name: "x", Degree: rational.One}),
		termC(1, Variable{Name: ImaginaryUnitName, Degree: rational.NewInt(2)}),
	)
	assert.Equal(t, []string{"x"}, p.FreeVariables())
}
