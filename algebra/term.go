/*
Algebra Core - Term
====================

A Term is a coefficient times a product of Variables. Terms are built by the
parser/AST stage or by arithmetic, and are not assumed canonical until
canonicalized by Simplify: the variable list may contain duplicate names or
be out of order. Canonical form sorts variables by name and merges
duplicates by summing their degrees.
*/

package algebra

import (
	"sort"

	"github.com/polysolve/polysolve/rational"
)

// Term is coefficient * (product of Vars).
type Term struct {
	Coeff rational.Q
	Vars  []Variable
}

// NewTerm builds a Term from a coefficient and an (unsorted, possibly
// duplicate-bearing) variable list, copying the slice so the caller's
// backing array is never aliased.
func NewTerm(coeff rational.Q, vars []Variable) Term {
	cp := make([]Variable, len(vars))
	copy(cp, vars)
	return Term{Coeff: coeff, Vars: cp}
}

// Canonical returns a new Term with its variables sorted by name and
// like-named variables merged by summing degrees; variables whose degree
// sums to zero are dropped.
func (t Term) Canonical() Term {
	return Term{Coeff: t.Coeff, Vars: canonicalizeVars(t.Vars)}
}

// canonicalizeVars sorts vars by name and merges duplicate names by summing
// degrees, dropping any whose combined degree is zero. It always returns a
// freshly allocated slice.
func canonicalizeVars(vars []Variable) []Variable {
	sorted := make([]Variable, len(vars))
	copy(sorted, vars)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	merged := make([]Variable, 0, len(sorted))
	for _, v := range sorted {
		if n := len(merged); n > 0 && merged[n-1].Name == v.Name {
			merged[n-1].Degree = merged[n-1].Degree.Add(v.Degree)
			continue
		}
		merged = append(merged, v)
	}

	out := merged[:0:0]
	for _, v := range merged {
		if !v.Degree.IsZero() {
			out = append(out, v)
		}
	}
	return out
}

// varsKey builds a comparison/grouping key for an already-canonical variable
// list: two canonical lists with the same (name, degree) pairs produce the
// same key, and are thus "like terms" to be combined during simplification.
func varsKey(vars []Variable) string {
	var b []byte
	for _, v := range vars {
		b = append(b, v.Name...)
		b = append(b, ':')
		b = append(b, v.Degree.String()...)
		b = append(b, ';')
	}
	return string(b)
}

// compareVarTuples lexicographically compares two already-canonical
// variable lists by (name, degree) pairs; a shorter list that is a strict
// prefix of a longer one compares as less. Used as the simplifier's
// tie-break when two terms share the same leading exponent.
func compareVarTuples(a, b []Variable) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].Name != b[i].Name {
			if a[i].Name < b[i].Name {
				return -1
			}
			return 1
		}
		if c := a[i].Degree.Cmp(b[i].Degree); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// leadingExponent returns the highest degree among t's variables, or zero
// for a constant term (no variables). This is the "leading variable's
// exponent" the simplifier's term ordering sorts on.
func leadingExponent(t Term) rational.Q {
	best := rational.Zero
	for i, v := range t.Vars {
		if i == 0 || v.Degree.Cmp(best) > 0 {
			best = v.Degree
		}
	}
	return best
}

// equalCanonical reports whether two Terms, both already canonical, are
// semantically equal: same coefficient and the same multiset of
// (name, degree) pairs.
func (t Term) equalCanonical(o Term) bool {
	if !t.Coeff.Equal(o.Coeff) {
		return false
	}
	return varsKey(t.Vars) == varsKey(o.Vars)
}

// negate returns a Term with its coefficient negated; used by Polynomial
// subtraction.
func (t Term) negate() Term {
	cp := make([]Variable, len(t.Vars))
	copy(cp, t.Vars)
	return Term{Coeff: t.Coeff.Neg(), Vars: cp}
}

// scale returns a Term with its coefficient multiplied by q.
func (t Term) scale(q rational.Q) Term {
	cp := make([]Variable, len(t.Vars))
	copy(cp, t.Vars)
	return Term{Coeff: t.Coeff.Mul(q), Vars: cp}
}

// mulTerm returns the product of two Terms: coefficients multiply, variable
// lists concatenate (left uncanonicalized — the caller simplifies).
func mulTerm(a, b Term) Term {
	vars := make([]Variable, 0, len(a.Vars)+len(b.Vars))
	vars = append(vars, a.Vars...)
	vars = append(vars, b.Vars...)
	return Term{Coeff: a.Coeff.Mul(b.Coeff), Vars: vars}
}
