// Package ast defines the four directive shapes a source line can parse to:
// a variable assignment, a chained arithmetic operation, a bare polynomial
// to simplify and print, or a request to solve for a variable's roots.
package ast

import "github.com/polysolve/polysolve/algebra"

// Directive is one parsed, not-yet-evaluated source line.
type Directive interface {
	directive()
}

// Expr is the right-hand side of an Assign: either a bare polynomial or a
// chained Operation. Assign is the only directive needing this distinction
// — a top-level line is already unambiguously one or the other (Operation
// and Bare are themselves separate Directive kinds).
type Expr interface {
	expr()
}

// Poly wraps a plain polynomial as an Expr.
type Poly struct {
	Value algebra.Polynomial
}

func (Poly) expr() {}

// Assign is "name = polynomial" or "name = operation": bind name to the
// evaluation of Value.
type Assign struct {
	Name  string
	Value Expr
}

func (Assign) directive() {}

// Op identifies one of the four chain operators an Operation folds over.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// Operation is a left-to-right fold of Operands via Ops: Operands[0] Ops[0]
// Operands[1] Ops[1] Operands[2] ... (len(Ops) == len(Operands)-1).
type Operation struct {
	Operands []algebra.Polynomial
	Ops      []Op
}

func (Operation) directive() {}
func (Operation) expr()      {}

// Bare is a standalone polynomial expression: simplify and print it.
type Bare struct {
	Value algebra.Polynomial
}

func (Bare) directive() {}

// Solve requests the roots of Value with respect to Variable, with every
// other free variable resolved from the binding store at evaluation time.
type Solve struct {
	Variable string
	Value    algebra.Polynomial
}

func (Solve) directive() {}
