/*
Algebra Core - Print
=====================

String methods implementing the pretty-printer: terms join left-to-right
with their own sign, a coefficient of exactly 1 or -1 is
elided in front of a variable, a non-unit outer Degree renders as the
parenthesized sum followed by "^(n)" or "^(p/q)", and a PolyRatio with a simplified-to-zero denominator
renders as the engine's one user-facing error sentinel.
*/

package algebra

import (
	"fmt"
	"strings"

	"github.com/polysolve/polysolve/rational"
)

// String renders t as "coeff" "name^deg" ... with the coefficient elided
// when it is exactly 1 or -1 and at least one variable is present.
func (t Term) String() string {
	var b strings.Builder
	neg := t.Coeff.Sign() < 0
	abs := t.Coeff
	if neg {
		abs = abs.Neg()
	}
	if neg {
		b.WriteByte('-')
	}
	if len(t.Vars) == 0 || !abs.Equal(rational.One) {
		b.WriteString(abs.String())
	}
	for _, v := range t.Vars {
		b.WriteString(v.Name)
		if !v.Degree.Equal(rational.One) {
			fmt.Fprintf(&b, "^(%s)", v.Degree.String())
		}
	}
	return b.String()
}

// sumString joins already-ordered terms left to right, each carrying its own
// sign; a "+" separator is inserted only where the next term's own rendering
// doesn't already start with "-".
func sumString(terms []Term) string {
	var b strings.Builder
	for i, t := range terms {
		s := t.String()
		if i > 0 && !strings.HasPrefix(s, "-") {
			b.WriteByte('+')
		}
		b.WriteString(s)
	}
	return b.String()
}

// String renders p: its terms summed per sumString, wrapped in parentheses
// and raised to its outer Degree when that degree isn't 1.
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	inner := sumString(p.Terms)
	if p.Degree.Equal(rational.One) {
		return inner
	}
	return fmt.Sprintf("(%s)^(%s)", inner, p.Degree.String())
}

// String renders r as Whole, Numerator/Denominator, or both joined with
// "+", eliding the denominator entirely when it is 1 and eliding the
// fraction entirely when the numerator is 0. A denominator that simplifies
// to zero renders as the engine's print-time division-by-zero sentinel
// instead of panicking or propagating an error.
func (r PolyRatio) String() string {
	if r.IsZeroDenominator() {
		return "ERROR: Division by zero!"
	}

	num, err := r.Numerator.Simplify()
	if err != nil {
		return "ERROR: Division by zero!"
	}
	den, err := r.Denominator.Simplify()
	if err != nil {
		return "ERROR: Division by zero!"
	}

	if num.IsZero() {
		if r.Whole.IsZero() {
			return "0"
		}
		return r.Whole.String()
	}

	var frac string
	if d, ok := den.IsConstant(); ok && d.Equal(rational.One) {
		frac = num.String()
	} else {
		frac = fmt.Sprintf("(%s) / (%s)", num.String(), den.String())
	}

	if r.Whole.IsZero() {
		return frac
	}
	return r.Whole.String() + "+" + frac
}
