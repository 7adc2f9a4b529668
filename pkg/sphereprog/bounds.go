package sphereprog

import (
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"

	"github.com/meshopt/spheremap/pkg/geom"
	"github.com/meshopt/spheremap/pkg/mesh"
)

// hullEpsilon is the coplanarity tolerance for the bounding-box hull.
const hullEpsilon = 1e-10

// Box is an axis-aligned bounding box. The same box bounds every free
// vertex coordinate.
type Box struct {
	Min [3]float64
	Max [3]float64
}

// estimateBounds computes the box enclosing the region of the sphere the
// mesh actually occupies. The raw vertex min/max underestimates the box
// when the surface wraps past a pole no vertex reaches, so the convex
// hull of the vertices plus the sphere center is tested against the six
// cardinal rays: a hit on a facet not incident to the center means the
// surface wraps past that pole and the bound extends to the full radius.
func estimateBounds(m *mesh.Mesh, radius float64) Box {
	box := rawExtents(m)

	pts := make([]r3.Vector, len(m.Vertices)+1)
	copy(pts, m.Vertices)
	center := len(m.Vertices) // origin appended last, zero value

	qh := new(quickhull.QuickHull)
	hull := qh.ConvexHull(pts, true, true, hullEpsilon)

	// Facets incident to the added center point come from the interior
	// point, not the mesh's boundary shell.
	var facets [][3]int
	for i := 0; i+2 < len(hull.Indices); i += 3 {
		f := [3]int{hull.Indices[i], hull.Indices[i+1], hull.Indices[i+2]}
		if f[0] == center || f[1] == center || f[2] == center {
			continue
		}
		facets = append(facets, f)
	}

	for axis := 0; axis < 3; axis++ {
		for _, sign := range []float64{1, -1} {
			var dir r3.Vector
			switch axis {
			case 0:
				dir = r3.Vector{X: sign}
			case 1:
				dir = r3.Vector{Y: sign}
			case 2:
				dir = r3.Vector{Z: sign}
			}
			if !rayHitsAny(geom.Ray{Dir: dir}, facets, pts) {
				continue
			}
			if sign > 0 {
				box.Max[axis] = radius
			} else {
				box.Min[axis] = -radius
			}
		}
	}
	return box
}

func rayHitsAny(ray geom.Ray, facets [][3]int, pts []r3.Vector) bool {
	for _, f := range facets {
		if ray.IntersectsTriangle(pts[f[0]], pts[f[1]], pts[f[2]]) {
			return true
		}
	}
	return false
}

// rawExtents returns the per-axis min/max of the vertex coordinates.
func rawExtents(m *mesh.Mesh) Box {
	var box Box
	for i, v := range m.Vertices {
		c := [3]float64{v.X, v.Y, v.Z}
		for axis := 0; axis < 3; axis++ {
			if i == 0 || c[axis] < box.Min[axis] {
				box.Min[axis] = c[axis]
			}
			if i == 0 || c[axis] > box.Max[axis] {
				box.Max[axis] = c[axis]
			}
		}
	}
	return box
}
