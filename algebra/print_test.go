package algebra

import (
	"testing"

	"github.com/polysolve/polysolve/rational"
	"github.com/stretchr/testify/assert"
)

func TestTermString_ElidesUnitCoefficientAndExponent(t *testing.T) {
	assert.Equal(t, "x", Term{Coeff: rational.One, Vars: []Variable{{Name: "x", Degree: rational.One}}}.String())
	assert.Equal(t, "-x", Term{Coeff: rational.NewInt(-1), Vars: []Variable{{Name: "x", Degree: rational.One}}}.String())
	assert.Equal(t, "3", Term{Coeff: rational.NewInt(3)}.String())
	assert.Equal(t, "x^(2)", Term{Coeff: rational.One, Vars: []Variable{{Name: "x", Degree: rational.NewInt(2)}}}.String())
	assert.Equal(t, "x^(1/2)", Term{Coeff: rational.One, Vars: []Variable{{Name: "x", Degree: rational.New(1, 2)}}}.String())
}

func TestPolynomialString_BareSimplifyScenario(t *testing.T) {
	// 8x^(2) -> 8x^(2), worked example 1.
	p := poly(termC(8, Variable{Name: "x", Degree: rational.NewInt(2)}))
	assert.Equal(t, "8x^(2)", p.String())
}

func TestPolynomialString_ZeroIsBareZero(t *testing.T) {
	assert.Equal(t, "0", Zero().String())
}

func TestPolyRatioString_ElidesUnitDenominator(t *testing.T) {
	r := NewRatio(ConstantInt(5), ConstantInt(1))
	assert.Equal(t, "5", r.String())
}
