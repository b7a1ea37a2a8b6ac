/*
Algebra Core - Roots
=====================

Roots finds the values of a chosen variable that make a polynomial vanish, for degree 0 (the degenerate cases), 1, and 2, treating
every other variable still present as symbolic rather than requiring it to
be bound first — "solve [P, v]" may legitimately leave other free variables
in the answer (e.g. "y^(2)-11x+2+x, x" solves for x while y stays symbolic).

find_sym_coeff is partitionByVariable below: it splits P into one
Polynomial coefficient per power of the target variable actually present
(instead of a bare rational, since those coefficients may themselves carry
other free variables), then degree detection picks the highest power with a
nonzero coefficient.

A rational (non-radical) result collapses into a single clean value exactly
when every piece involved — both linear coefficients, or the quadratic
formula's a, b and the reduced discriminant — is itself a plain rational
constant; otherwise Roots returns the formula's pieces raw (unreduced
Numerator/Denominator), matching how the source material prints them.
*/

package algebra

import (
	"fmt"
	"strings"

	"github.com/polysolve/polysolve/rational"
)

// Root is an ordered list of PolyRatio summands meant to be printed joined
// by "+": length 1 for a plain rational root or an unreduced linear root,
// length 2 for an irrational or complex one (whole part, then radical or
// imaginary part).
type Root []PolyRatio

// String joins r's summands with " + ": unlike a polynomial's own term
// joiner, a root's whole and radical parts keep their sign inside their own
// parenthesized numerator or denominator rather than at the top level, so the separator
// is always a literal " + ".
func (r Root) String() string {
	parts := make([]string, len(r))
	for i, ratio := range r {
		parts[i] = ratio.String()
	}
	return strings.Join(parts, " + ")
}

// ContainsImaginaryUnit reports whether any summand of r mentions the
// imaginary-unit sentinel, the signal the printer uses to precede a set of
// roots with the "(i is the imaginary unit)" comment.
func (r Root) ContainsImaginaryUnit() bool {
	for _, ratio := range r {
		for _, poly := range []Polynomial{ratio.Whole, ratio.Numerator, ratio.Denominator} {
			for _, t := range poly.Terms {
				for _, v := range t.Vars {
					if v.IsImaginaryUnit() {
						return true
					}
				}
			}
		}
	}
	return false
}

// RootResult is the outcome of solving a degree-0 polynomial, where "the
// roots" isn't simply a list: either no value satisfies it, or every value
// does.
type RootResult struct {
	AllValuesAreRoots bool
	Roots             []Root
}

// Roots returns p's roots with respect to name, after substituting the
// given bindings for every other bound variable. name is the explicit
// target of a "solve [P, name]" directive, or "" to auto-detect: resolved
// must then have exactly one free variable, which becomes the target.
func (p Polynomial) Roots(name string, bindings map[string]rational.Q) (RootResult, error) {
	if _, bound := bindings[name]; name != "" && bound {
		others := make(map[string]rational.Q, len(bindings))
		for k, v := range bindings {
			if k != name {
				others[k] = v
			}
		}
		bindings = others
	}
	resolved, err := p.Substitute(bindings)
	if err != nil {
		return RootResult{}, err
	}

	if name == "" {
		free := resolved.FreeVariables()
		if len(free) > 1 {
			return RootResult{}, fmt.Errorf("cannot solve: expected at most 1 free variable, found %d %v", len(free), free)
		}
		if len(free) == 0 {
			return RootResult{}, fmt.Errorf("cannot solve: no variable to solve for and no target given")
		}
		name = free[0]
	}

	maxDeg, ok := maxIntegerDegree(resolved, name)
	if !ok {
		return RootResult{}, fmt.Errorf("cannot solve for %q: a non-integer or negative exponent of it is present", name)
	}
	if maxDeg > 2 {
		return RootResult{}, fmt.Errorf("cannot solve: degree %d polynomials are unsupported (only linear and quadratic)", maxDeg)
	}

	coeffs := partitionByVariable(resolved, name, maxDeg)

	deg := 0
	for d := maxDeg; d >= 0; d-- {
		if !coeffs[d].IsZero() {
			deg = d
			break
		}
	}

	switch deg {
	case 0:
		if coeffs[0].IsZero() {
			return RootResult{AllValuesAreRoots: true}, nil
		}
		return RootResult{}, nil
	case 1:
		root, err := linearRoot(coeffs[1], coeffs[0])
		if err != nil {
			return RootResult{}, err
		}
		return RootResult{Roots: []Root{root}}, nil
	case 2:
		roots, err := quadraticRoots(coeffs[2], coeffs[1], coeffs[0])
		if err != nil {
			return RootResult{}, err
		}
		return RootResult{Roots: roots}, nil
	default:
		return RootResult{}, fmt.Errorf("cannot solve: degree %d polynomials are unsupported (only linear and quadratic)", deg)
	}
}

// maxIntegerDegree returns the highest exponent of name appearing in p,
// requiring every occurrence to carry a non-negative integer exponent; ok
// is false otherwise (a shape Roots does not support).
func maxIntegerDegree(p Polynomial, name string) (deg int, ok bool) {
	best := 0
	for _, t := range p.Terms {
		for _, v := range t.Vars {
			if v.Name != name {
				continue
			}
			if !v.Degree.IsInteger() || v.Degree.Num < 0 {
				return 0, false
			}
			if int(v.Degree.Num) > best {
				best = int(v.Degree.Num)
			}
		}
	}
	return best, true
}

// partitionByVariable splits p into one Polynomial coefficient per power of
// name from 0 to maxDeg: every term is assigned to the bucket matching its
// degree in name, with name itself removed from that term's variable list
// but every other variable (the symbolic content find_sym_coeff must
// preserve) left intact.
func partitionByVariable(p Polynomial, name string, maxDeg int) []Polynomial {
	buckets := make([][]Term, maxDeg+1)
	for _, t := range p.Terms {
		d := 0
		var rest []Variable
		for _, v := range t.Vars {
			if v.Name == name {
				d = int(v.Degree.Num)
			} else {
				rest = append(rest, v)
			}
		}
		buckets[d] = append(buckets[d], Term{Coeff: t.Coeff, Vars: rest})
	}

	out := make([]Polynomial, maxDeg+1)
	for d, terms := range buckets {
		if len(terms) == 0 {
			out[d] = Zero()
			continue
		}
		out[d] = simplifyFlat(terms).MustSimplify()
	}
	return out
}

// linearRoot solves a*v + b = 0. When both coefficients are plain
// constants the result collapses to a single reduced rational; otherwise it
// is the raw, unreduced ratio -b/a.
func linearRoot(a, b Polynomial) (Root, error) {
	if aVal, aOk := a.IsConstant(); aOk {
		if bVal, bOk := b.IsConstant(); bOk {
			return Root{NewRatio(Constant(bVal.Neg().Div(aVal)), Constant(rational.One))}, nil
		}
	}
	return Root{PolyRatio{Whole: Zero(), Numerator: b.Neg(), Denominator: a}}, nil
}

// quadraticRoots solves a*v^2 + b*v + c = 0: discriminant
// Δ = b²-4ac; a non-negative or symbolic Δ gives real roots (-b±√Δ)/(2a), a
// Δ that reduces to a negative rational constant is rewritten through the
// ⅈ² sentinel as (-b±√((-Δ)·ⅈ²))/(2a). Either radical is encoded as a
// Polynomial of outer degree 1/2 and left exactly as Simplify resolves it.
// When a, b and the radical are all plain rational constants
// the two roots collapse to clean values; otherwise each root is returned
// as the formula's raw whole and radical summands.
func quadraticRoots(a, b, c Polynomial) ([]Root, error) {
	bSq, err := b.Mul(b)
	if err != nil {
		return nil, err
	}
	fourAC, err := ConstantInt(4).Mul(a)
	if err != nil {
		return nil, err
	}
	fourAC, err = fourAC.Mul(c)
	if err != nil {
		return nil, err
	}
	disc, err := bSq.Sub(fourAC)
	if err != nil {
		return nil, err
	}
	twoA, err := a.Mul(ConstantInt(2))
	if err != nil {
		return nil, err
	}

	var radicand Polynomial
	if discVal, ok := disc.IsConstant(); ok && discVal.Sign() < 0 {
		magnitude := discVal.Neg()
		radicand = Polynomial{
			Terms:  []Term{{Coeff: magnitude, Vars: []Variable{{Name: ImaginaryUnitName, Degree: rational.NewInt(2)}}}},
			Degree: rational.New(1, 2),
		}
	} else {
		radicand = Polynomial{Terms: disc.Terms, Degree: rational.New(1, 2)}
	}
	sqrtPoly, err := radicand.Simplify()
	if err != nil {
		return nil, err
	}

	aVal, aOk := a.IsConstant()
	bVal, bOk := b.IsConstant()
	sqrtVal, sqrtOk := sqrtPoly.IsConstant()
	if aOk && bOk && sqrtOk {
		twoAVal := rational.NewInt(2).Mul(aVal)
		whole := bVal.Neg().Div(twoAVal)
		r1 := Root{NewRatio(Constant(whole.Add(sqrtVal.Div(twoAVal))), Constant(rational.One))}
		r2 := Root{NewRatio(Constant(whole.Sub(sqrtVal.Div(twoAVal))), Constant(rational.One))}
		return []Root{r1, r2}, nil
	}

	wholeRatio := PolyRatio{Whole: Zero(), Numerator: b.Neg(), Denominator: twoA}
	plusRatio := PolyRatio{Whole: Zero(), Numerator: sqrtPoly, Denominator: twoA}
	// The minus branch negates the denominator rather than sqrtPoly itself:
	// sqrtPoly may still carry a symbolic outer degree of 1/2, and negating a
	// term before a radical is applied changes its value, not just its sign.
	minusRatio := PolyRatio{Whole: Zero(), Numerator: sqrtPoly, Denominator: twoA.Neg()}
	return []Root{
		{wholeRatio, plusRatio},
		{wholeRatio, minusRatio},
	}, nil
}
