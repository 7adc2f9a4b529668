package sphereprog

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/meshopt/spheremap/pkg/mesh"
)

const (
	// DefaultFeasTol is the feasibility tolerance assumed when Params
	// leaves FeasTol zero. It matches the default of common polynomial
	// solvers.
	DefaultFeasTol = 1e-6

	// MinFeasTol is the smallest accepted feasibility tolerance. Below
	// this the right-hand-side adjustment drowns in floating-point noise.
	MinFeasTol = 1e-9

	// vminSafety is the required ratio between every triangle's lower
	// volume budget and the feasibility tolerance. A budget closer to the
	// tolerance than this lets the solver return a degenerate volume that
	// still passes its feasibility test.
	vminSafety = 10
)

// Params configures constraint generation.
type Params struct {
	// Radius of the target sphere. Required, positive, finite.
	Radius float64

	// VMin and VMax bound the signed tetrahedron volume per triangle.
	// Each slice holds either one entry (broadcast to every triangle) or
	// one entry per triangle. VMin is required and every entry must be at
	// least 10x the feasibility tolerance. A nil VMax means no upper
	// bound; +Inf entries omit the upper constraint per triangle.
	VMin []float64
	VMax []float64

	// LMax is the maximum allowed edge chord length. Zero means 2*Radius.
	LMax float64

	// Free flags each vertex as an unknown of the optimization. Nil means
	// every vertex is free.
	Free []bool

	// Fixed holds the constant position of every fixed vertex. Required
	// if and only if any vertex is fixed; entries for free vertices are
	// ignored and may be NaN.
	Fixed []r3.Vector

	// FeasTol is the solver's feasibility tolerance. Zero means
	// DefaultFeasTol; values below MinFeasTol are rejected.
	FeasTol float64
}

// UniformBudget returns a one-entry slice broadcasting v to every
// triangle.
func UniformBudget(v float64) []float64 {
	return []float64{v}
}

// generator holds the validated, default-filled inputs for one run.
type generator struct {
	mesh   *mesh.Mesh
	free   []bool
	nfree  int
	fixed  []r3.Vector
	radius float64
	lmax   float64
	tol    float64
	vmin   []float64 // per triangle
	vmax   []float64 // per triangle
}

// newGenerator validates params against the mesh and normalizes defaults.
// Every rejection happens here, before any constraint is derived.
func newGenerator(m *mesh.Mesh, p Params) (*generator, error) {
	for i, tri := range m.Triangles {
		for _, v := range tri {
			if v < 0 || v >= m.VertexCount() {
				return nil, configErrorf("BAD_TRIANGLE", i,
					"triangle references vertex %d, mesh has %d vertices", v, m.VertexCount())
			}
		}
	}

	if p.Radius <= 0 || math.IsInf(p.Radius, 1) || math.IsNaN(p.Radius) {
		return nil, configErrorf("BAD_RADIUS", -1, "radius %v must be positive and finite", p.Radius)
	}

	tol := p.FeasTol
	if tol == 0 {
		tol = DefaultFeasTol
	}
	if tol < MinFeasTol || math.IsNaN(tol) {
		return nil, configErrorf("BAD_TOLERANCE", -1,
			"feasibility tolerance %v below safe floor %v", tol, MinFeasTol)
	}

	lmax := p.LMax
	if lmax == 0 {
		lmax = 2 * p.Radius
	}
	if lmax <= 0 || math.IsInf(lmax, 1) || math.IsNaN(lmax) {
		return nil, configErrorf("BAD_EDGE_LIMIT", -1, "edge length limit %v must be positive and finite", lmax)
	}

	vmin, err := expandBudget("VMIN_LENGTH", p.VMin, m.TriangleCount(), false)
	if err != nil {
		return nil, err
	}
	vmax, err := expandBudget("VMAX_LENGTH", p.VMax, m.TriangleCount(), true)
	if err != nil {
		return nil, err
	}
	for i := range vmin {
		if math.IsNaN(vmin[i]) || vmin[i] < vminSafety*tol {
			return nil, configErrorf("VMIN_UNSAFE", i,
				"lower volume budget %v must be at least %d times the feasibility tolerance %v",
				vmin[i], vminSafety, tol)
		}
		if vmax[i] < vmin[i] || math.IsNaN(vmax[i]) {
			return nil, configErrorf("BUDGET_INVERTED", i,
				"upper volume budget %v below lower budget %v", vmax[i], vmin[i])
		}
	}

	free := p.Free
	if free == nil {
		free = make([]bool, m.VertexCount())
		for i := range free {
			free[i] = true
		}
	} else if len(free) != m.VertexCount() {
		return nil, configErrorf("FREE_LENGTH", -1,
			"free flags have %d entries, mesh has %d vertices", len(free), m.VertexCount())
	}

	nfree := 0
	for _, f := range free {
		if f {
			nfree++
		}
	}

	fixed := p.Fixed
	if nfree < m.VertexCount() {
		if fixed == nil {
			return nil, configErrorf("MISSING_FIXED", -1,
				"mesh has fixed vertices but no fixed-coordinate table was supplied")
		}
		if len(fixed) != m.VertexCount() {
			return nil, configErrorf("FIXED_LENGTH", -1,
				"fixed-coordinate table has %d entries, mesh has %d vertices", len(fixed), m.VertexCount())
		}
		for v, pos := range fixed {
			if free[v] {
				continue // free entries are never read, NaN allowed
			}
			if math.IsNaN(pos.X) || math.IsNaN(pos.Y) || math.IsNaN(pos.Z) {
				return nil, configErrorf("FIXED_NAN", v, "fixed vertex has a not-a-number coordinate")
			}
		}
	}

	return &generator{
		mesh:   m,
		free:   free,
		nfree:  nfree,
		fixed:  fixed,
		radius: p.Radius,
		lmax:   lmax,
		tol:    tol,
		vmin:   vmin,
		vmax:   vmax,
	}, nil
}

// expandBudget broadcasts a one-entry budget to n triangles or checks a
// full-length one. A nil slice is allowed only when infOK is set, in
// which case every entry defaults to +Inf.
func expandBudget(code string, budget []float64, n int, infOK bool) ([]float64, error) {
	switch len(budget) {
	case 0:
		if !infOK {
			return nil, configErrorf(code, -1, "volume budget is required (one entry or one per triangle)")
		}
		out := make([]float64, n)
		for i := range out {
			out[i] = math.Inf(1)
		}
		return out, nil
	case 1:
		out := make([]float64, n)
		for i := range out {
			out[i] = budget[0]
		}
		return out, nil
	case n:
		out := make([]float64, n)
		copy(out, budget)
		return out, nil
	default:
		return nil, configErrorf(code, -1,
			"volume budget has %d entries, want 1 or %d", len(budget), n)
	}
}

// fixedPos returns the constant position of a fixed vertex. Reading a
// free vertex's entry is an algorithm bug.
func (g *generator) fixedPos(v int) r3.Vector {
	if g.free[v] {
		panic("fixedPos: vertex is free, its table entry must never be read")
	}
	return g.fixed[v]
}
