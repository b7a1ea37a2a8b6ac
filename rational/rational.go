/*
Rational Module - Exact Scalar Arithmetic
==========================================

This package implements the exact rational scalar "Q" used throughout the
algebra core: a pair of 64-bit signed integers (numerator, denominator) kept
in lowest terms with a strictly positive denominator.

Design notes:
  - Every constructor and every arithmetic method returns a value already in
    canonical form: den > 0, gcd(|num|, den) == 1, and 0 is represented as
    0/1.
  - Arithmetic is exact: no floating-point is involved anywhere in this
    package. That is the entire reason the calculator keeps a dedicated
    rational type instead of reaching for float64.
  - Known limitation: operands are plain int64. Intermediate products (e.g.
    in Mul, or in PowInt with a large exponent) can overflow int64 silently.
    This is a documented limitation, not a bug: this package deliberately
    leaves 64-bit overflow unhandled rather than pulling in
    arbitrary-precision integers.
*/

package rational

import "fmt"

// Q is an exact rational number Num/Den, always kept in lowest terms with
// Den > 0.
type Q struct {
	Num int64
	Den int64
}

// Zero is the rational 0/1.
var Zero = Q{Num: 0, Den: 1}

// One is the rational 1/1.
var One = Q{Num: 1, Den: 1}

// NewInt builds the rational n/1.
func NewInt(n int64) Q {
	return Q{Num: n, Den: 1}
}

// New builds num/den, reducing to lowest terms and normalizing the sign so
// Den is always positive. Panics if den is zero: callers that might pass a
// zero denominator (e.g. a literal "3/0" in source) must check first and
// surface it as the domain-specific "division by zero" error instead.
func New(num, den int64) Q {
	if den == 0 {
		panic("rational: zero denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	if g == 0 {
		return Q{Num: 0, Den: 1}
	}
	return Q{Num: num / g, Den: den / g}
}

// Add returns a + b.
func (a Q) Add(b Q) Q {
	return New(a.Num*b.Den+b.Num*a.Den, a.Den*b.Den)
}

// Sub returns a - b.
func (a Q) Sub(b Q) Q {
	return New(a.Num*b.Den-b.Num*a.Den, a.Den*b.Den)
}

// Mul returns a * b.
func (a Q) Mul(b Q) Q {
	return New(a.Num*b.Num, a.Den*b.Den)
}

// Div returns a / b. Panics if b is zero; callers must check IsZero first.
func (a Q) Div(b Q) Q {
	if b.Num == 0 {
		panic("rational: division by zero")
	}
	return New(a.Num*b.Den, a.Den*b.Num)
}

// Neg returns -a.
func (a Q) Neg() Q {
	return Q{Num: -a.Num, Den: a.Den}
}

// Inv returns 1/a. Panics if a is zero.
func (a Q) Inv() Q {
	if a.Num == 0 {
		panic("rational: inversion of zero")
	}
	return New(a.Den, a.Num)
}

// PowInt raises a to an integer power n, which may be negative (in which
// case the result is 1/a^|n|) or zero (which yields One, even for a == 0,
// matching the usual convention x^0 == 1 used by the simplifier).
func (a Q) PowInt(n int64) Q {
	if n == 0 {
		return One
	}
	neg := n < 0
	if neg {
		n = -n
	}
	result := One
	base := a
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	if neg {
		return result.Inv()
	}
	return result
}

// Sign returns -1, 0, or 1 according to the sign of a.
func (a Q) Sign() int {
	switch {
	case a.Num < 0:
		return -1
	case a.Num > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether a == 0.
func (a Q) IsZero() bool { return a.Num == 0 }

// IsOne reports whether a == 1.
func (a Q) IsOne() bool { return a.Num == 1 && a.Den == 1 }

// IsInteger reports whether a has no fractional part.
func (a Q) IsInteger() bool { return a.Den == 1 }

// Equal reports whether a and b denote the same rational number. Since both
// are kept in canonical lowest-terms form, this is plain field equality.
func (a Q) Equal(b Q) bool { return a.Num == b.Num && a.Den == b.Den }

// Less reports whether a < b.
func (a Q) Less(b Q) bool {
	// a.Num/a.Den < b.Num/b.Den  <=>  a.Num*b.Den < b.Num*a.Den  (both Den > 0)
	return a.Num*b.Den < b.Num*a.Den
}

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater than b.
func (a Q) Cmp(b Q) int {
	switch {
	case a.Equal(b):
		return 0
	case a.Less(b):
		return -1
	default:
		return 1
	}
}

// String renders a in "n" form for integers or "n/d" form otherwise.
func (a Q) String() string {
	if a.Den == 1 {
		return fmt.Sprintf("%d", a.Num)
	}
	return fmt.Sprintf("%d/%d", a.Num, a.Den)
}

// GCD returns the greatest common divisor of two non-negative int64s,
// following the usual convention gcd(0, n) == n.
func GCD(a, b int64) int64 { return gcd(abs(a), abs(b)) }

// LCM returns the least common multiple of two non-negative int64s.
// LCM(0, n) == 0.
func LCM(a, b int64) int64 {
	a, b = abs(a), abs(b)
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
