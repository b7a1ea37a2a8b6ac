/*
Algebra Core - PolyRatio
=========================

PolyRatio is a formal rational function Numerator / Denominator, the result
of dividing one Polynomial by another when they don't reduce to a plain
Polynomial. Whole carries the quotient produced by classical long division
when the division precondition holds and the remainder is non-zero; it is
the zero polynomial for an ordinary ratio built directly without long
division. The value represented is always Whole + Numerator/Denominator.
*/

package algebra

import "github.com/polysolve/polysolve/rational"

// PolyRatio is Whole + Numerator/Denominator.
type PolyRatio struct {
	Whole       Polynomial
	Numerator   Polynomial
	Denominator Polynomial
}

// NewRatio builds an ordinary (Whole == 0) ratio from a numerator and
// denominator.
func NewRatio(num, den Polynomial) PolyRatio {
	return PolyRatio{Whole: Zero(), Numerator: num, Denominator: den}
}

// IsZeroDenominator reports whether r's denominator, once simplified, is the
// zero polynomial — the one print-time error condition for a ratio
//.
func (r PolyRatio) IsZeroDenominator() bool {
	d, err := r.Denominator.Simplify()
	if err != nil {
		return false
	}
	return d.IsZero()
}

// collapse folds r's Whole part into an ordinary numerator/denominator pair:
// (Whole*Denominator + Numerator) / Denominator. Arithmetic between ratios
// collapses both operands first since cross-multiplication only operates on
// plain fractions.
func (r PolyRatio) collapse() (num, den Polynomial, err error) {
	if r.Whole.IsZero() {
		return r.Numerator, r.Denominator, nil
	}
	scaled, err := r.Whole.Mul(r.Denominator)
	if err != nil {
		return Polynomial{}, Polynomial{}, err
	}
	num, err = scaled.Add(r.Numerator)
	if err != nil {
		return Polynomial{}, Polynomial{}, err
	}
	return num, r.Denominator, nil
}

// Simplify reduces r: simplify both sides, clear any negative variable
// exponent by multiplying both sides by the same
// monomial, cancel the monomial content common to numerator and
// denominator, then normalize sign so the denominator's leading coefficient
// is positive. A denominator that simplifies to zero is passed through
// unmodified — reducing it further is meaningless, and the zero-division
// condition belongs to the printer.
func (r PolyRatio) Simplify() (PolyRatio, error) {
	num, den, err := r.collapse()
	if err != nil {
		return PolyRatio{}, err
	}
	num, err = num.Simplify()
	if err != nil {
		return PolyRatio{}, err
	}
	den, err = den.Simplify()
	if err != nil {
		return PolyRatio{}, err
	}

	if den.IsZero() {
		return PolyRatio{Whole: Zero(), Numerator: num, Denominator: den}, nil
	}
	if num.IsZero() {
		return PolyRatio{Whole: Zero(), Numerator: Zero(), Denominator: Constant(rational.One)}, nil
	}

	// Monomial-content cancellation is only meaningful once both
	// sides are flat sums: a side still carrying a symbolic outer exponent
	// (an unresolved radical, e.g. from roots.go) has terms that don't mean
	// what Factor assumes they mean, so cancellation is skipped and the
	// independently-simplified pair is returned as-is.
	if !num.Degree.Equal(rational.One) || !den.Degree.Equal(rational.One) {
		return PolyRatio{Whole: Zero(), Numerator: num, Denominator: den}, nil
	}

	num, den, err = clearNegativeExponents(num, den)
	if err != nil {
		return PolyRatio{}, err
	}

	numF, numQ, err := num.Factor()
	if err != nil {
		return PolyRatio{}, err
	}
	denF, denQ, err := den.Factor()
	if err != nil {
		return PolyRatio{}, err
	}

	gcdTerm := monomialContent([]Term{numF, denF})
	numResidual := divideTermByMonomial(numF, gcdTerm)
	denResidual := divideTermByMonomial(denF, gcdTerm)

	finalNum, err := termTimesPolynomial(numResidual, numQ)
	if err != nil {
		return PolyRatio{}, err
	}
	finalDen, err := termTimesPolynomial(denResidual, denQ)
	if err != nil {
		return PolyRatio{}, err
	}

	if polynomialSign(finalDen) < 0 {
		finalNum = finalNum.Neg()
		finalDen = finalDen.Neg()
	}

	finalNum, err = finalNum.Simplify()
	if err != nil {
		return PolyRatio{}, err
	}
	finalDen, err = finalDen.Simplify()
	if err != nil {
		return PolyRatio{}, err
	}

	if d, ok := finalDen.IsConstant(); ok && d.Equal(rational.One) {
		return PolyRatio{Whole: finalNum, Numerator: Zero(), Denominator: Constant(rational.One)}, nil
	}
	return PolyRatio{Whole: Zero(), Numerator: finalNum, Denominator: finalDen}, nil
}

// clearNegativeExponents multiplies num and den by the same monomial,
// chosen per variable as that variable's most negative exponent found
// anywhere across both sides (negated), so that no variable carries a
// negative exponent in either polynomial afterward.
// Multiplying both sides by the same factor leaves the ratio's value
// unchanged; num and den are returned as-is when no negative exponent is
// present.
func clearNegativeExponents(num, den Polynomial) (Polynomial, Polynomial, error) {
	minExp := make(map[string]rational.Q)
	for _, poly := range []Polynomial{num, den} {
		for _, t := range poly.Terms {
			for _, v := range t.Vars {
				cur, ok := minExp[v.Name]
				if !ok || v.Degree.Less(cur) {
					minExp[v.Name] = v.Degree
				}
			}
		}
	}

	var factorVars []Variable
	for name, deg := range minExp {
		if deg.Sign() < 0 {
			factorVars = append(factorVars, Variable{Name: name, Degree: deg.Neg()})
		}
	}
	if len(factorVars) == 0 {
		return num, den, nil
	}

	factor := Term{Coeff: rational.One, Vars: factorVars}
	newNum, err := termTimesPolynomial(factor, num)
	if err != nil {
		return Polynomial{}, Polynomial{}, err
	}
	newDen, err := termTimesPolynomial(factor, den)
	if err != nil {
		return Polynomial{}, Polynomial{}, err
	}
	return newNum, newDen, nil
}

// termTimesPolynomial multiplies every term of p by t and simplifies.
func termTimesPolynomial(t Term, p Polynomial) (Polynomial, error) {
	terms := make([]Term, len(p.Terms))
	for i, pt := range p.Terms {
		terms[i] = mulTerm(t, pt)
	}
	return simplifyFlat(terms).Simplify()
}

// polynomialSign returns the sign of p's leading (first, per canonical
// ordering) term coefficient; p is assumed already simplified and non-zero.
func polynomialSign(p Polynomial) int {
	if len(p.Terms) == 0 {
		return 0
	}
	return p.Terms[0].Coeff.Sign()
}

// Add returns the simplified sum of two ratios via cross-multiplication:
// a/b + c/d = (a*d + c*b) / (b*d).
func (r PolyRatio) Add(o PolyRatio) (PolyRatio, error) {
	a, b, err := r.collapse()
	if err != nil {
		return PolyRatio{}, err
	}
	c, d, err := o.collapse()
	if err != nil {
		return PolyRatio{}, err
	}
	ad, err := a.Mul(d)
	if err != nil {
		return PolyRatio{}, err
	}
	cb, err := c.Mul(b)
	if err != nil {
		return PolyRatio{}, err
	}
	num, err := ad.Add(cb)
	if err != nil {
		return PolyRatio{}, err
	}
	bd, err := b.Mul(d)
	if err != nil {
		return PolyRatio{}, err
	}
	return NewRatio(num, bd).Simplify()
}

// Sub returns the simplified difference r - o.
func (r PolyRatio) Sub(o PolyRatio) (PolyRatio, error) {
	a, b, err := r.collapse()
	if err != nil {
		return PolyRatio{}, err
	}
	c, d, err := o.collapse()
	if err != nil {
		return PolyRatio{}, err
	}
	ad, err := a.Mul(d)
	if err != nil {
		return PolyRatio{}, err
	}
	cb, err := c.Mul(b)
	if err != nil {
		return PolyRatio{}, err
	}
	num, err := ad.Sub(cb)
	if err != nil {
		return PolyRatio{}, err
	}
	bd, err := b.Mul(d)
	if err != nil {
		return PolyRatio{}, err
	}
	return NewRatio(num, bd).Simplify()
}

// Mul returns the simplified product r * o: a/b * c/d = (a*c)/(b*d).
func (r PolyRatio) Mul(o PolyRatio) (PolyRatio, error) {
	a, b, err := r.collapse()
	if err != nil {
		return PolyRatio{}, err
	}
	c, d, err := o.collapse()
	if err != nil {
		return PolyRatio{}, err
	}
	ac, err := a.Mul(c)
	if err != nil {
		return PolyRatio{}, err
	}
	bd, err := b.Mul(d)
	if err != nil {
		return PolyRatio{}, err
	}
	return NewRatio(ac, bd).Simplify()
}

// Div returns the simplified quotient r / o: a/b / (c/d) = (a*d)/(b*c).
func (r PolyRatio) Div(o PolyRatio) (PolyRatio, error) {
	a, b, err := r.collapse()
	if err != nil {
		return PolyRatio{}, err
	}
	c, d, err := o.collapse()
	if err != nil {
		return PolyRatio{}, err
	}
	ad, err := a.Mul(d)
	if err != nil {
		return PolyRatio{}, err
	}
	bc, err := b.Mul(c)
	if err != nil {
		return PolyRatio{}, err
	}
	return NewRatio(ad, bc).Simplify()
}

// AsPolynomial reports whether r, once simplified, is equivalent to a plain
// Polynomial (denominator 1), returning it if so.
func (r PolyRatio) AsPolynomial() (Polynomial, bool) {
	if r.Numerator.IsZero() {
		return r.Whole, true
	}
	if d, ok := r.Denominator.IsConstant(); ok && d.Equal(rational.One) {
		sum, err := r.Whole.Add(r.Numerator)
		if err == nil {
			return sum, true
		}
	}
	return Polynomial{}, false
}
