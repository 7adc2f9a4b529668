package sphereprog

import (
	"fmt"
	"math"
)

// tetraConstraints derives the signed-volume constraints for triangle ti,
// already classified and canonicalized. The volume of the tetrahedron
// formed by the triangle and the sphere center is det[a; b; c] / 6; the
// expansion is specialized by free-vertex count so only monomials in
// unknowns are emitted.
func (g *generator) tetraConstraints(ti int, tc triangleCase) []Constraint {
	var terms []Term

	switch tc.kind {
	case allFixed:
		panic(fmt.Sprintf("tetraConstraints: fully fixed triangle %d reached the emitter", ti))

	case oneFree:
		// a, b fixed, c free: det = (a x b) . c, linear in c.
		a := g.fixedPos(tc.v[0])
		b := g.fixedPos(tc.v[1])
		f := tc.v[2]
		n := a.Cross(b)
		terms = []Term{
			{Coeff: n.X / 6, Vars: []Var{{AxisX, f}}},
			{Coeff: n.Y / 6, Vars: []Var{{AxisY, f}}},
			{Coeff: n.Z / 6, Vars: []Var{{AxisZ, f}}},
		}

	case twoFree:
		// a fixed, p, q free: det = a . (p x q), bilinear in p and q.
		a := g.fixedPos(tc.v[0])
		p, q := tc.v[1], tc.v[2]
		terms = []Term{
			{Coeff: +a.X / 6, Vars: []Var{{AxisY, p}, {AxisZ, q}}},
			{Coeff: -a.X / 6, Vars: []Var{{AxisZ, p}, {AxisY, q}}},
			{Coeff: +a.Y / 6, Vars: []Var{{AxisZ, p}, {AxisX, q}}},
			{Coeff: -a.Y / 6, Vars: []Var{{AxisX, p}, {AxisZ, q}}},
			{Coeff: +a.Z / 6, Vars: []Var{{AxisX, p}, {AxisY, q}}},
			{Coeff: -a.Z / 6, Vars: []Var{{AxisY, p}, {AxisX, q}}},
		}

	case allFree:
		// Full determinant: six trilinear monomials with signs following
		// the permutation parity.
		a, b, c := tc.v[0], tc.v[1], tc.v[2]
		s := 1.0 / 6
		terms = []Term{
			{Coeff: +s, Vars: []Var{{AxisX, a}, {AxisY, b}, {AxisZ, c}}},
			{Coeff: -s, Vars: []Var{{AxisX, a}, {AxisZ, b}, {AxisY, c}}},
			{Coeff: -s, Vars: []Var{{AxisY, a}, {AxisX, b}, {AxisZ, c}}},
			{Coeff: +s, Vars: []Var{{AxisY, a}, {AxisZ, b}, {AxisX, c}}},
			{Coeff: +s, Vars: []Var{{AxisZ, a}, {AxisX, b}, {AxisY, c}}},
			{Coeff: -s, Vars: []Var{{AxisZ, a}, {AxisY, b}, {AxisX, c}}},
		}
	}

	vmin, vmax := g.vmin[ti], g.vmax[ti]
	var out []Constraint
	if !math.IsInf(vmin, -1) {
		out = append(out, Constraint{Terms: terms, Rel: GreaterEq, RHS: tightenLower(vmin, g.tol)})
	}
	if !math.IsInf(vmax, 1) {
		out = append(out, Constraint{Terms: terms, Rel: LessEq, RHS: tightenUpper(vmax, g.tol)})
	}
	return out
}

// tightenLower raises a lower bound so the true constraint still holds
// when the solver exhausts its feasibility slack tol*max(1, |b|).
func tightenLower(b, tol float64) float64 {
	return b + tol*max1Abs(b)
}

// tightenUpper lowers an upper bound by the solver's feasibility slack.
func tightenUpper(b, tol float64) float64 {
	return b - tol*max1Abs(b)
}
