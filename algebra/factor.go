/*
Algebra Core - Factor
======================

Factor extracts a Polynomial's monomial content: the single term F such
that P = F * Q, where F's coefficient is the GCD of every term's
coefficient and F's variables are exactly those common to every term,
each raised to the smallest exponent at which it appears. This is
deliberately not full polynomial factoring (no root-finding, no grouping) —
only the monomial content a term-by-term GCD can find.
*/

package algebra

import "github.com/polysolve/polysolve/rational"

// Factor returns (F, Q) such that F is p's monomial content and p == F * Q,
// with Q's own monomial content equal to 1 (F is 1 and Q equals p when p's
// terms share no content beyond the trivial; Q is the constant 1 when p is a
// single term). p is simplified first.
func (p Polynomial) Factor() (F Term, Q Polynomial, err error) {
	ps, err := p.Simplify()
	if err != nil {
		return Term{}, Polynomial{}, err
	}
	if ps.IsZero() {
		return Term{Coeff: rational.One}, Zero(), nil
	}

	content := monomialContent(ps.Terms)

	quotientTerms := make([]Term, len(ps.Terms))
	for i, t := range ps.Terms {
		quotientTerms[i] = divideTermByMonomial(t, content)
	}
	q, err := simplifyFlat(quotientTerms).Simplify()
	if err != nil {
		return Term{}, Polynomial{}, err
	}
	return content, q, nil
}

// monomialContent returns the term common to every term in terms: its
// coefficient is the GCD of all term coefficients (sign taken from the
// leading term, so the quotient's leading coefficient stays positive when
// possible), and its variables are those present in every term (with integer
// exponents, when there is more than one term), each at the minimum exponent
// observed; a variable whose minimum exponent is not positive is left out.
func monomialContent(terms []Term) Term {
	coeffGCD := terms[0].Coeff
	for _, t := range terms[1:] {
		coeffGCD = rational.New(
			rational.GCD(coeffGCD.Num*t.Coeff.Den, t.Coeff.Num*coeffGCD.Den),
			coeffGCD.Den*t.Coeff.Den,
		)
	}
	if terms[0].Coeff.Sign() < 0 && coeffGCD.Sign() > 0 {
		coeffGCD = coeffGCD.Neg()
	}
	if coeffGCD.IsZero() {
		coeffGCD = rational.One
	}

	common := make(map[string]rational.Q)
	for name, deg := range variableExponents(terms[0]) {
		common[name] = deg
	}
	for _, t := range terms[1:] {
		exps := variableExponents(t)
		for name, deg := range common {
			other, ok := exps[name]
			if !ok || !other.IsInteger() || !deg.IsInteger() {
				delete(common, name)
				continue
			}
			if other.Less(deg) {
				common[name] = other
			}
		}
		for name := range common {
			if _, ok := exps[name]; !ok {
				delete(common, name)
			}
		}
	}

	var vars []Variable
	for name, deg := range common {
		if deg.Sign() > 0 {
			vars = append(vars, Variable{Name: name, Degree: deg})
		}
	}
	result := Term{Coeff: coeffGCD, Vars: vars}
	return result.Canonical()
}

// variableExponents maps each variable name in t to its degree.
func variableExponents(t Term) map[string]rational.Q {
	m := make(map[string]rational.Q, len(t.Vars))
	for _, v := range t.Vars {
		m[v.Name] = v.Degree
	}
	return m
}

// divideTermByMonomial divides t by the monomial term f (f's coefficient is
// assumed nonzero), subtracting f's variable exponents from t's.
func divideTermByMonomial(t Term, f Term) Term {
	exps := variableExponents(t)
	for _, fv := range f.Vars {
		exps[fv.Name] = exps[fv.Name].Sub(fv.Degree)
	}
	var vars []Variable
	for name, deg := range exps {
		if !deg.IsZero() {
			vars = append(vars, Variable{Name: name, Degree: deg})
		}
	}
	return Term{Coeff: t.Coeff.Div(f.Coeff), Vars: vars}
}
