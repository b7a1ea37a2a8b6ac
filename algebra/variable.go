/*
Algebra Core - Variable
========================

Variable is the smallest unit of the algebra core's data model: a named
symbol raised to a rational exponent. A Variable only ever exists inside a
Term's variable list — it has no independent lifecycle and
no method here ever mutates a Variable in place; every transform returns a
fresh value, preserving immutable value semantics throughout the package.
*/

package algebra

import "github.com/polysolve/polysolve/rational"

// ImaginaryUnitName is the sentinel variable name used to represent the
// imaginary unit i (U+2148, "ⅈ"). It carries the algebraic contract i² = -1,
// honored only by Roots (see roots.go) when it wraps a negative
// discriminant; Simplify deliberately never rewrites it.
const ImaginaryUnitName = "ⅈ"

// Variable is a named symbol raised to a rational exponent.
type Variable struct {
	Name   string
	Degree rational.Q
}

// NewVariable builds a Variable with an integer degree, the common case for
// a bare name like "x" parsed with an implicit exponent of 1.
func NewVariable(name string) Variable {
	return Variable{Name: name, Degree: rational.One}
}

// Equal reports whether v and o name the same symbol with the same degree.
func (v Variable) Equal(o Variable) bool {
	return v.Name == o.Name && v.Degree.Equal(o.Degree)
}

// IsImaginaryUnit reports whether v is the sentinel imaginary-unit variable.
func (v Variable) IsImaginaryUnit() bool { return v.Name == ImaginaryUnitName }
