package sphereprog

import "github.com/meshopt/spheremap/pkg/mesh"

// Program is the immutable constraint set and variable bounds derived for
// one mesh. Constraint identifiers are not stored; pkg/pip assigns them
// sequentially in the order Constraints returns.
type Program struct {
	// Bounds is the shared axis-aligned box bounding every free vertex
	// coordinate. Zero when the program has no free vertices.
	Bounds Box

	// Free flags each mesh vertex; bounds and radius constraints exist
	// only for free vertices.
	Free []bool

	// Radius of the target sphere.
	Radius float64

	// Volume holds the per-triangle signed-volume constraints, EdgeLength
	// the per-edge chord bounds, and RadiusEq the per-free-vertex sphere
	// equalities, each in mesh element order.
	Volume     []Constraint
	EdgeLength []Constraint
	RadiusEq   []Constraint
}

// Constraints returns all constraints in canonical emission order:
// volume, then edge-length, then radius equalities.
func (p *Program) Constraints() []Constraint {
	out := make([]Constraint, 0, len(p.Volume)+len(p.EdgeLength)+len(p.RadiusEq))
	out = append(out, p.Volume...)
	out = append(out, p.EdgeLength...)
	out = append(out, p.RadiusEq...)
	return out
}

// NumFree returns the number of free vertices.
func (p *Program) NumFree() int {
	n := 0
	for _, f := range p.Free {
		if f {
			n++
		}
	}
	return n
}

// Generate derives the full constraint set and variable bounds for
// embedding m on the sphere of radius p.Radius without triangle
// fold-overs. All validation happens before any constraint is derived;
// on error no partial output is returned.
func Generate(m *mesh.Mesh, p Params) (*Program, error) {
	g, err := newGenerator(m, p)
	if err != nil {
		return nil, err
	}

	prog := &Program{
		Free:   g.free,
		Radius: g.radius,
	}
	if g.nfree > 0 {
		prog.Bounds = estimateBounds(m, g.radius)
	}

	for ti, tri := range m.Triangles {
		tc := classifyTriangle(tri, g.free)
		if tc.kind == allFixed {
			continue // geometrically immovable, contributes nothing
		}
		prog.Volume = append(prog.Volume, g.tetraConstraints(ti, tc)...)
	}

	for _, e := range m.Edges() {
		if !g.free[e.A] && !g.free[e.B] {
			continue
		}
		prog.EdgeLength = append(prog.EdgeLength, g.edgeConstraint(e))
	}

	for v, free := range g.free {
		if free {
			prog.RadiusEq = append(prog.RadiusEq, g.radiusConstraint(v))
		}
	}

	return prog, nil
}
