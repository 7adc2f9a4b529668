package sphereprog

import (
	"math"

	"github.com/golang/geo/r3"
)

// Axis identifies one coordinate of a vertex position.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the variable letter for the axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	panic("Axis.String: invalid axis")
}

// component returns the coordinate of v along axis a.
func component(v r3.Vector, a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	}
	panic("component: invalid axis")
}

// Var is one scalar unknown: an axis of a free vertex. Vertex is the
// 0-based mesh vertex index.
type Var struct {
	Axis   Axis
	Vertex int
}

// Term is a signed monomial: Coeff times the product of one to three
// variables.
type Term struct {
	Coeff float64
	Vars  []Var
}

// Relation is the relational operator of a constraint.
type Relation int

const (
	GreaterEq Relation = iota
	LessEq
	Equal
)

// String returns the operator as written in the solver input.
func (r Relation) String() string {
	switch r {
	case GreaterEq:
		return ">="
	case LessEq:
		return "<="
	case Equal:
		return "="
	}
	panic("Relation.String: invalid relation")
}

// Constraint is a polynomial (in)equality: the sum of Terms related to
// RHS by Rel. Constraints carry no identifier; identifiers are assigned
// sequentially at serialization time.
type Constraint struct {
	Terms []Term
	Rel   Relation
	RHS   float64
}

// Eval evaluates the constraint's left-hand polynomial at the given
// coordinate assignment, one position per mesh vertex. Useful for
// checking solver output and in tests.
func (c Constraint) Eval(pos []r3.Vector) float64 {
	var sum float64
	for _, t := range c.Terms {
		p := t.Coeff
		for _, v := range t.Vars {
			p *= component(pos[v.Vertex], v.Axis)
		}
		sum += p
	}
	return sum
}

// Satisfied reports whether the constraint holds at pos within slack tol
// scaled by max(1, |RHS|), mirroring the solver's feasibility test.
func (c Constraint) Satisfied(pos []r3.Vector, tol float64) bool {
	lhs := c.Eval(pos)
	slack := tol * max1Abs(c.RHS)
	switch c.Rel {
	case GreaterEq:
		return lhs >= c.RHS-slack
	case LessEq:
		return lhs <= c.RHS+slack
	case Equal:
		return lhs >= c.RHS-slack && lhs <= c.RHS+slack
	}
	panic("Constraint.Satisfied: invalid relation")
}

// max1Abs returns max(1, |b|), the scaling the solver applies to its
// feasibility tolerance.
func max1Abs(b float64) float64 {
	return math.Max(1, math.Abs(b))
}
