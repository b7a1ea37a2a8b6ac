/*
Algebra Core - Substitute
==========================

Substitute replaces bound variables with their constant values, the
operation the directive driver uses both to evaluate a bare polynomial
directive against the current binding store and to resolve the operands
of an Operation directive before folding them together.
*/

package algebra

import (
	"github.com/polysolve/polysolve/rational"
)

// Substitute returns p with every variable named in values replaced by its
// bound rational value raised to that variable's exponent, then simplifies.
// Variables not present in values, and variables bound to a value that
// isn't a perfect power of the variable's exponent's denominator (e.g. 2
// substituted into x^(1/2)), are left symbolic. An error is returned only
// if the substitution collapses to the undefined 0^0.
func (p Polynomial) Substitute(values map[string]rational.Q) (Polynomial, error) {
	terms := make([]Term, len(p.Terms))
	for i, t := range p.Terms {
		terms[i] = substituteTerm(t, values)
	}
	return Polynomial{Terms: terms, Degree: p.Degree}.Simplify()
}

func substituteTerm(t Term, values map[string]rational.Q) Term {
	coeff := t.Coeff
	var remaining []Variable
	for _, v := range t.Vars {
		val, bound := values[v.Name]
		if !bound {
			remaining = append(remaining, v)
			continue
		}
		if v.Degree.IsInteger() {
			coeff = coeff.Mul(val.PowInt(v.Degree.Num))
			continue
		}
		root, ok := rationalKthRoot(val, v.Degree.Den)
		if !ok {
			// val is not a perfect Den-th power (e.g. 2^(1/2)): leave the
			// variable symbolic at its original exponent rather than erroring.
			remaining = append(remaining, v)
			continue
		}
		coeff = coeff.Mul(root.PowInt(v.Degree.Num))
	}
	return Term{Coeff: coeff, Vars: remaining}
}

// FreeVariables returns the distinct variable names appearing anywhere in p,
// excluding the imaginary-unit sentinel, in first-seen order.
func (p Polynomial) FreeVariables() []string {
	seen := make(map[string]bool)
	var names []string
	for _, t := range p.Terms {
		for _, v := range t.Vars {
			if v.IsImaginaryUnit() || seen[v.Name] {
				continue
			}
			seen[v.Name] = true
			names = append(names, v.Name)
		}
	}
	return names
}
