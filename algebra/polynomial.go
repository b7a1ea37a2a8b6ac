/*
Algebra Core - Polynomial
==========================

Polynomial is a finite sum of Terms, optionally raised to an outer rational
exponent (Degree, default 1): P = (Σ Terms)^Degree. This representation lets
the parser build constructs like sqrt(2x+y) without evaluating the root —
Simplify (simplify.go) is what resolves that exponent against the
canonicalized sum whenever it safely can.

Polynomials are immutable from the outside: every exported operation
(Simplify, Add, Sub, Mul, Divide, Factor, Substitute, Roots) returns a new
Polynomial built from freshly allocated term slices, never a slice aliasing
the receiver's or argument's backing array.
*/

package algebra

import "github.com/polysolve/polysolve/rational"

// Polynomial is (Σ Terms)^Degree.
type Polynomial struct {
	Terms  []Term
	Degree rational.Q
}

// NewPolynomial builds a polynomial with the given (not necessarily
// canonical) terms and an outer degree of 1.
func NewPolynomial(terms []Term) Polynomial {
	cp := make([]Term, len(terms))
	copy(cp, terms)
	return Polynomial{Terms: cp, Degree: rational.One}
}

// Zero is the canonical zero polynomial: a single term with a zero
// coefficient and no variables.
func Zero() Polynomial {
	return Polynomial{Terms: []Term{{Coeff: rational.Zero}}, Degree: rational.One}
}

// Constant builds the constant polynomial q.
func Constant(q rational.Q) Polynomial {
	if q.IsZero() {
		return Zero()
	}
	return Polynomial{Terms: []Term{{Coeff: q}}, Degree: rational.One}
}

// ConstantInt builds the constant polynomial n.
func ConstantInt(n int64) Polynomial { return Constant(rational.NewInt(n)) }

// FromVariable builds the single-term, single-variable polynomial v^1 for
// the given name.
func FromVariable(name string) Polynomial {
	return Polynomial{
		Terms:  []Term{{Coeff: rational.One, Vars: []Variable{NewVariable(name)}}},
		Degree: rational.One,
	}
}

// IsZero reports whether p, assumed already simplified, is the canonical
// zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.Terms) == 1 && len(p.Terms[0].Vars) == 0 && p.Terms[0].Coeff.IsZero()
}

// IsConstant reports whether p, assumed already simplified, has no
// variables at all, and if so returns its value.
func (p Polynomial) IsConstant() (rational.Q, bool) {
	if len(p.Terms) == 0 {
		return rational.Zero, true
	}
	if len(p.Terms) == 1 && len(p.Terms[0].Vars) == 0 {
		return p.Terms[0].Coeff, true
	}
	return rational.Q{}, false
}

// clone deep-copies p's term slice (and each term's variable slice) so the
// result shares no backing array with p.
func (p Polynomial) clone() Polynomial {
	terms := make([]Term, len(p.Terms))
	for i, t := range p.Terms {
		vars := make([]Variable, len(t.Vars))
		copy(vars, t.Vars)
		terms[i] = Term{Coeff: t.Coeff, Vars: vars}
	}
	return Polynomial{Terms: terms, Degree: p.Degree}
}
