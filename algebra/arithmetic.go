/*
Algebra Core - Arithmetic
==========================

Implements Polynomial + - * /. The first three combine term lists and
re-simplify; division tries classical single-variable Euclidean long
division first and falls back to the formal rational function (PolyRatio)
when the precondition doesn't hold.
*/

package algebra

import "github.com/polysolve/polysolve/rational"

// Add returns the simplified sum p + q.
func (p Polynomial) Add(q Polynomial) (Polynomial, error) {
	ps, err := p.Simplify()
	if err != nil {
		return Polynomial{}, err
	}
	qs, err := q.Simplify()
	if err != nil {
		return Polynomial{}, err
	}
	terms := make([]Term, 0, len(ps.Terms)+len(qs.Terms))
	terms = append(terms, ps.Terms...)
	terms = append(terms, qs.Terms...)
	return Polynomial{Terms: terms, Degree: rational.One}.Simplify()
}

// Sub returns the simplified difference p - q.
func (p Polynomial) Sub(q Polynomial) (Polynomial, error) {
	ps, err := p.Simplify()
	if err != nil {
		return Polynomial{}, err
	}
	qs, err := q.Simplify()
	if err != nil {
		return Polynomial{}, err
	}
	terms := make([]Term, 0, len(ps.Terms)+len(qs.Terms))
	terms = append(terms, ps.Terms...)
	for _, t := range qs.Terms {
		terms = append(terms, t.negate())
	}
	return Polynomial{Terms: terms, Degree: rational.One}.Simplify()
}

// Neg returns -p: every term's coefficient negated. p is assumed already
// simplified with a flat (degree-1) outer exponent — negating before an
// unresolved outer exponent is applied would change the value, not just its
// sign. The result is not re-simplified since negation alone can neither
// merge nor purge terms.
func (p Polynomial) Neg() Polynomial {
	terms := make([]Term, len(p.Terms))
	for i, t := range p.Terms {
		terms[i] = t.negate()
	}
	return Polynomial{Terms: terms, Degree: rational.One}
}

// Mul returns the simplified product p * q: the Cartesian product of term
// lists, each pair multiplying coefficients and concatenating variables.
func (p Polynomial) Mul(q Polynomial) (Polynomial, error) {
	ps, err := p.Simplify()
	if err != nil {
		return Polynomial{}, err
	}
	qs, err := q.Simplify()
	if err != nil {
		return Polynomial{}, err
	}
	terms := make([]Term, 0, len(ps.Terms)*len(qs.Terms))
	for _, a := range ps.Terms {
		for _, b := range qs.Terms {
			terms = append(terms, mulTerm(a, b))
		}
	}
	return Polynomial{Terms: terms, Degree: rational.One}.Simplify()
}

// Divide computes p / q. When both operands, once simplified, are expressed
// in a single common variable with non-negative integer exponents and the
// numerator's degree is at least the divisor's, classical long division
// applies and the result carries an explicit whole part (PolyRatio.Whole)
// alongside any fractional remainder. Otherwise the result is the formal
// ratio p/q, reduced only by monomial-content cancellation.
//
// A denominator that simplifies to zero is not an error here: division by
// zero is a non-fatal, print-time condition. Divide returns the ratio with
// that zero denominator unmodified so the printer can detect it.
func Divide(p, q Polynomial) (PolyRatio, error) {
	ps, err := p.Simplify()
	if err != nil {
		return PolyRatio{}, err
	}
	qs, err := q.Simplify()
	if err != nil {
		return PolyRatio{}, err
	}

	if qs.IsZero() {
		return PolyRatio{Whole: Zero(), Numerator: ps, Denominator: qs}, nil
	}

	if ps.IsZero() {
		return PolyRatio{Whole: Zero(), Numerator: Zero(), Denominator: Constant(rational.One)}, nil
	}

	if name, ok := univariateCommonVariable(ps, qs); ok {
		numDeg := degreeIn(ps, name)
		denDeg := degreeIn(qs, name)
		if numDeg >= denDeg {
			quotient, remainder := longDivide(ps, qs, name, numDeg, denDeg)
			if remainder.IsZero() {
				return PolyRatio{Whole: quotient, Numerator: Zero(), Denominator: Constant(rational.One)}, nil
			}
			frac, err := PolyRatio{Numerator: remainder, Denominator: qs}.Simplify()
			if err != nil {
				return PolyRatio{}, err
			}
			frac.Whole = quotient
			return frac, nil
		}
	}

	return PolyRatio{Whole: Zero(), Numerator: ps, Denominator: qs}.Simplify()
}

// univariateCommonVariable reports whether p and q, combined, mention at
// most one distinct variable name, every occurrence of which carries a
// non-negative integer exponent — the shape classical long division needs.
// Constant polynomials (no variable at all) count as univariate, trivially.
func univariateCommonVariable(p, q Polynomial) (string, bool) {
	name := ""
	for _, poly := range []Polynomial{p, q} {
		for _, t := range poly.Terms {
			for _, v := range t.Vars {
				if !v.Degree.IsInteger() || v.Degree.Num < 0 {
					return "", false
				}
				if name == "" {
					name = v.Name
				} else if v.Name != name {
					return "", false
				}
			}
		}
	}
	return name, true
}

// degreeIn returns the highest exponent of name appearing in p (0 if name
// does not appear, e.g. for a constant polynomial).
func degreeIn(p Polynomial, name string) int {
	best := int64(0)
	for _, t := range p.Terms {
		for _, v := range t.Vars {
			if v.Name == name && v.Degree.Num > best {
				best = v.Degree.Num
			}
		}
	}
	return int(best)
}

// coeffsByDegree returns p's coefficients indexed by the exponent of name,
// from 0 up to degree (inclusive); terms without name contribute to index 0.
func coeffsByDegree(p Polynomial, name string, degree int) []rational.Q {
	coeffs := make([]rational.Q, degree+1)
	for i := range coeffs {
		coeffs[i] = rational.Zero
	}
	for _, t := range p.Terms {
		d := 0
		for _, v := range t.Vars {
			if v.Name == name {
				d = int(v.Degree.Num)
			}
		}
		coeffs[d] = coeffs[d].Add(t.Coeff)
	}
	return coeffs
}

// longDivide performs classical polynomial long division of p by q in the
// single variable name, returning the quotient and remainder polynomials.
// Callers must have already established numDeg >= denDeg.
func longDivide(p, q Polynomial, name string, numDeg, denDeg int) (quotient, remainder Polynomial) {
	remCoeffs := coeffsByDegree(p, name, numDeg)
	denCoeffs := coeffsByDegree(q, name, denDeg)
	leadDen := denCoeffs[denDeg]

	quotCoeffs := make([]rational.Q, numDeg-denDeg+1)
	for i := range quotCoeffs {
		quotCoeffs[i] = rational.Zero
	}

	for d := numDeg; d >= denDeg; d-- {
		if remCoeffs[d].IsZero() {
			continue
		}
		factor := remCoeffs[d].Div(leadDen)
		quotCoeffs[d-denDeg] = factor
		for k := 0; k <= denDeg; k++ {
			remCoeffs[d-denDeg+k] = remCoeffs[d-denDeg+k].Sub(factor.Mul(denCoeffs[k]))
		}
	}

	return polyFromCoeffs(quotCoeffs, name), polyFromCoeffs(remCoeffs[:denDeg], name)
}

func polyFromCoeffs(coeffs []rational.Q, name string) Polynomial {
	var terms []Term
	for d, c := range coeffs {
		if c.IsZero() {
			continue
		}
		var vars []Variable
		if d > 0 {
			vars = []Variable{{Name: name, Degree: rational.NewInt(int64(d))}}
		}
		terms = append(terms, Term{Coeff: c, Vars: vars})
	}
	return simplifyFlat(terms)
}
