/*
Directive driver
==================

Driver is the top-level sequential loop: it owns the run's Binding store,
dispatches each parsed directive to the algebra core, and hands the
formatted result to its caller. Every directive is evaluated against the
bindings as they stand at that point in the file — an Assign directive only
affects directives that follow it, and rebinding a name has no protection
against shadowing an earlier value.

Two error tiers: a Solve directive's own failure modes (no resolvable
variable, unsupported degree) are fatal and abort the whole run; every
other directive's algebra error is local, printed as an error line, and the
driver continues to the next directive.
*/

package driver

import (
	"fmt"

	"github.com/polysolve/polysolve/algebra"
	"github.com/polysolve/polysolve/ast"
	"github.com/polysolve/polysolve/binding"
	"github.com/polysolve/polysolve/rational"
)

// Driver evaluates a sequence of directives against a growing binding store.
type Driver struct {
	bindings binding.Store
}

// New returns a Driver with an empty binding store.
func New() *Driver {
	return &Driver{}
}

// FatalError is a directive failure that aborts the whole run (a Solve
// directive's own failure modes).
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string { return e.Err.Error() }
func (e *FatalError) Unwrap() error { return e.Err }

// Eval dispatches one directive and returns its result lines (already
// tab-indented, one or more, no trailing newline), or a *FatalError when the
// directive's failure must abort the run. Any other returned error is a
// local, per-directive failure the caller should report and move past.
func (d *Driver) Eval(dir ast.Directive) ([]string, error) {
	switch v := dir.(type) {
	case ast.Assign:
		return d.evalAssign(v)
	case ast.Operation:
		return d.evalOperation(v)
	case ast.Bare:
		return d.evalBare(v)
	case ast.Solve:
		return d.evalSolve(v)
	default:
		return nil, fmt.Errorf("unreachable: unknown directive type %T", dir)
	}
}

func (d *Driver) evalAssign(a ast.Assign) ([]string, error) {
	ratio, err := d.evalExpr(a.Value)
	if err != nil {
		return nil, err
	}
	poly, ok := ratio.AsPolynomial()
	if !ok {
		return nil, fmt.Errorf("cannot assign %s: value is not a polynomial", a.Name)
	}
	value, ok := poly.IsConstant()
	if !ok {
		return nil, fmt.Errorf("cannot assign %s: value %s is not a constant", a.Name, poly.String())
	}
	d.bindings.Set(a.Name, value)
	return []string{a.Name + " = " + value.String()}, nil
}

func (d *Driver) evalOperation(op ast.Operation) ([]string, error) {
	ratio, err := foldOperation(op, d.bindings.Snapshot())
	if err != nil {
		return nil, err
	}
	return []string{ratio.String()}, nil
}

func (d *Driver) evalBare(b ast.Bare) ([]string, error) {
	result, err := b.Value.Substitute(d.bindings.Snapshot())
	if err != nil {
		return nil, err
	}
	return []string{result.String()}, nil
}

func (d *Driver) evalSolve(s ast.Solve) ([]string, error) {
	result, err := s.Value.Roots(s.Variable, d.bindings.Snapshot())
	if err != nil {
		return nil, &FatalError{Err: err}
	}

	name := s.Variable
	if name == "" {
		free := s.Value.FreeVariables()
		if len(free) == 1 {
			name = free[0]
		}
	}

	if result.AllValuesAreRoots {
		return []string{"every value is a root"}, nil
	}
	if len(result.Roots) == 0 {
		return []string{"no roots"}, nil
	}

	var lines []string
	hasImaginary := false
	for _, r := range result.Roots {
		if r.ContainsImaginaryUnit() {
			hasImaginary = true
			break
		}
	}
	if hasImaginary {
		lines = append(lines, "(i is the imaginary unit)")
	}
	for _, r := range result.Roots {
		lines = append(lines, name+" = "+r.String())
	}
	return lines, nil
}

// evalExpr evaluates a's Value (either a bare polynomial or a chained
// operation) against the driver's current bindings.
func (d *Driver) evalExpr(e ast.Expr) (algebra.PolyRatio, error) {
	switch v := e.(type) {
	case ast.Poly:
		resolved, err := v.Value.Substitute(d.bindings.Snapshot())
		if err != nil {
			return algebra.PolyRatio{}, err
		}
		return algebra.NewRatio(resolved, algebra.Constant(rational.One)), nil
	case ast.Operation:
		return foldOperation(v, d.bindings.Snapshot())
	default:
		return algebra.PolyRatio{}, fmt.Errorf("unreachable: unknown expr type %T", e)
	}
}

// foldOperation resolves each operand against values, promotes it to a
// PolyRatio (Polynomial over denominator 1), and folds left to right via
// Ops.
func foldOperation(op ast.Operation, values map[string]rational.Q) (algebra.PolyRatio, error) {
	if len(op.Operands) == 0 {
		return algebra.PolyRatio{}, fmt.Errorf("unreachable: operation with no operands")
	}

	first, err := op.Operands[0].Substitute(values)
	if err != nil {
		return algebra.PolyRatio{}, err
	}
	acc := algebra.NewRatio(first, algebra.Constant(rational.One))

	for i, o := range op.Ops {
		operand, err := op.Operands[i+1].Substitute(values)
		if err != nil {
			return algebra.PolyRatio{}, err
		}
		rhs := algebra.NewRatio(operand, algebra.Constant(rational.One))

		switch o {
		case ast.OpAdd:
			acc, err = acc.Add(rhs)
		case ast.OpSub:
			acc, err = acc.Sub(rhs)
		case ast.OpMul:
			acc, err = acc.Mul(rhs)
		case ast.OpDiv:
			acc, err = acc.Div(rhs)
		default:
			err = fmt.Errorf("unreachable: unknown operator %v", o)
		}
		if err != nil {
			return algebra.PolyRatio{}, err
		}
	}
	return acc, nil
}
