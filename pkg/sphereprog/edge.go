package sphereprog

import (
	"fmt"

	"github.com/meshopt/spheremap/pkg/mesh"
)

// edgeConstraint bounds the chord length of an edge touching at least one
// free vertex. On the sphere both endpoints satisfy x^2+y^2+z^2 = R^2, so
// |a-b|^2 <= lmax^2 simplifies to the bilinear inequality
//
//	-xa*xb - ya*yb - za*zb <= lmax^2/2 - R^2
//
// which needs no squared unknowns.
func (g *generator) edgeConstraint(e mesh.Edge) Constraint {
	rhs := g.lmax*g.lmax/2 - g.radius*g.radius
	freeA, freeB := g.free[e.A], g.free[e.B]

	switch {
	case freeA && freeB:
		terms := []Term{
			{Coeff: -1, Vars: []Var{{AxisX, e.A}, {AxisX, e.B}}},
			{Coeff: -1, Vars: []Var{{AxisY, e.A}, {AxisY, e.B}}},
			{Coeff: -1, Vars: []Var{{AxisZ, e.A}, {AxisZ, e.B}}},
		}
		return Constraint{Terms: terms, Rel: LessEq, RHS: rhs}

	case freeA || freeB:
		freeV, fixedV := e.A, e.B
		if freeB {
			freeV, fixedV = e.B, e.A
		}
		p := g.fixedPos(fixedV)
		terms := []Term{
			{Coeff: -p.X, Vars: []Var{{AxisX, freeV}}},
			{Coeff: -p.Y, Vars: []Var{{AxisY, freeV}}},
			{Coeff: -p.Z, Vars: []Var{{AxisZ, freeV}}},
		}
		return Constraint{Terms: terms, Rel: LessEq, RHS: rhs}

	default:
		panic(fmt.Sprintf("edgeConstraint: fully fixed edge (%d,%d) reached the emitter", e.A, e.B))
	}
}
