/*
Algebra Core - Simplify
========================

Simplify canonicalizes a Polynomial. It is the central
normalization the rest of the engine depends on: idempotent
(Simplify(Simplify(p)) == Simplify(p)) and deterministic (same input terms,
in any order, produce the same canonical output).

Procedure:
 1. Resolve the outer exponent (Degree).
 2. Per-term canonicalize (sort + merge variables).
 3. Combine like terms.
 4. Order terms by descending leading exponent, lexicographic tie-break.
 5. Purge zero-coefficient terms (unless everything purges to zero).
*/

package algebra

import (
	"fmt"
	"math"
	"sort"

	"github.com/polysolve/polysolve/rational"
)

// Simplify returns p's canonical form, or an error if p is the
// self-contradictory 0^0 (a zero polynomial raised to the zero power).
func (p Polynomial) Simplify() (Polynomial, error) {
	flat := simplifyFlat(p.Terms)

	switch {
	case p.Degree.IsInteger():
		return resolveIntegerDegree(flat, p.Degree.Num)

	case isUnitFractionDegree(p.Degree):
		if reduced, ok := tryReduceRadical(flat, p.Degree.Den); ok {
			return reduced, nil
		}
		return Polynomial{Terms: flat.Terms, Degree: p.Degree}, nil

	default:
		return Polynomial{Terms: flat.Terms, Degree: p.Degree}, nil
	}
}

// MustSimplify panics on error; reserved for call sites that have already
// proven (e.g. by construction) that the polynomial cannot be 0^0.
func (p Polynomial) MustSimplify() Polynomial {
	r, err := p.Simplify()
	if err != nil {
		panic(err)
	}
	return r
}

func resolveIntegerDegree(flat Polynomial, n int64) (Polynomial, error) {
	switch {
	case n == 1:
		return flat, nil
	case n == 0:
		if flat.IsZero() {
			return Polynomial{}, fmt.Errorf("0^0 is undefined")
		}
		return Constant(rational.One), nil
	case n >= 2:
		result := flat
		for i := int64(1); i < n; i++ {
			var err error
			result, err = result.Mul(flat)
			if err != nil {
				return Polynomial{}, err
			}
		}
		result.Degree = rational.One
		return result, nil
	default:
		// Negative integer outer exponent: expansion is only defined for
		// >=2, ==1, ==0, and the 1/k radical case, so this is kept
		// symbolic rather than guessed at.
		return Polynomial{Terms: flat.Terms, Degree: rational.NewInt(n)}, nil
	}
}

func isUnitFractionDegree(d rational.Q) bool {
	return !d.IsInteger() && d.Num == 1 && d.Den > 1
}

// simplifyFlat performs steps 2-5 of Polynomial.Simplify, ignoring the
// outer Degree entirely (callers apply that separately).
func simplifyFlat(terms []Term) Polynomial {
	canon := make([]Term, len(terms))
	for i, t := range terms {
		canon[i] = t.Canonical()
	}

	type group struct {
		term  Term
		order int
	}
	groups := make(map[string]*group)
	var order []string
	for _, t := range canon {
		k := varsKey(t.Vars)
		if g, ok := groups[k]; ok {
			g.term.Coeff = g.term.Coeff.Add(t.Coeff)
			continue
		}
		groups[k] = &group{term: t, order: len(order)}
		order = append(order, k)
	}

	combined := make([]Term, 0, len(order))
	for _, k := range order {
		combined = append(combined, groups[k].term)
	}

	nonzero := combined[:0:0]
	for _, t := range combined {
		if !t.Coeff.IsZero() {
			nonzero = append(nonzero, t)
		}
	}

	if len(nonzero) == 0 {
		return Polynomial{Terms: []Term{{Coeff: rational.Zero}}, Degree: rational.One}
	}

	sort.SliceStable(nonzero, func(i, j int) bool {
		a, b := nonzero[i], nonzero[j]
		la, lb := leadingExponent(a), leadingExponent(b)
		if c := la.Cmp(lb); c != 0 {
			return c > 0 // descending leading exponent
		}
		return compareVarTuples(a.Vars, b.Vars) < 0 // ascending tie-break
	})

	return Polynomial{Terms: nonzero, Degree: rational.One}
}

// tryReduceRadical attempts to collapse a single-term polynomial raised to
// the 1/k power into an exact single term: the coefficient must be a
// perfect k-th power (numerator and denominator each
// individually) and every variable's exponent must be an integer divisible
// by k. Returns ok == false when the radical must stay symbolic.
func tryReduceRadical(flat Polynomial, k int64) (Polynomial, bool) {
	if len(flat.Terms) != 1 {
		return Polynomial{}, false
	}
	term := flat.Terms[0]

	newCoeff, ok := rationalKthRoot(term.Coeff, k)
	if !ok {
		return Polynomial{}, false
	}

	newVars := make([]Variable, 0, len(term.Vars))
	for _, v := range term.Vars {
		if !v.Degree.IsInteger() || v.Degree.Num%k != 0 {
			return Polynomial{}, false
		}
		newVars = append(newVars, Variable{Name: v.Name, Degree: rational.NewInt(v.Degree.Num / k)})
	}

	reduced := simplifyFlat([]Term{{Coeff: newCoeff, Vars: newVars}})
	return reduced, true
}

// integerKthRoot returns r such that r^k == n exactly, if one exists.
// Negative n is only accepted for odd k.
func integerKthRoot(n, k int64) (int64, bool) {
	if n == 0 {
		return 0, true
	}
	sign := int64(1)
	m := n
	if n < 0 {
		if k%2 == 0 {
			return 0, false
		}
		sign = -1
		m = -n
	}
	guess := int64(math.Round(math.Pow(float64(m), 1/float64(k))))
	for _, cand := range []int64{guess - 1, guess, guess + 1} {
		if cand <= 0 {
			continue
		}
		p := int64(1)
		overflow := false
		for i := int64(0); i < k; i++ {
			p *= cand
			if p < 0 { // crude overflow guard; see rational package doc on int64 limits
				overflow = true
				break
			}
		}
		if !overflow && p == m {
			return sign * cand, true
		}
	}
	return 0, false
}

// rationalKthRoot returns r such that r^k == val exactly, if one exists, by
// taking the integer k-th root of val's numerator and denominator
// independently.
func rationalKthRoot(val rational.Q, k int64) (rational.Q, bool) {
	rootNum, ok := integerKthRoot(val.Num, k)
	if !ok {
		return rational.Q{}, false
	}
	rootDen, ok := integerKthRoot(val.Den, k)
	if !ok || rootDen <= 0 {
		return rational.Q{}, false
	}
	root := rational.New(rootNum, rootDen)
	if !root.PowInt(k).Equal(val) {
		return rational.Q{}, false
	}
	return root, true
}
