package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"github.com/markus-wa/quickhull-go/v2"

	"github.com/meshopt/spheremap/pkg/geom"
)

// hullEpsilon is the coplanarity tolerance passed to quickhull for unit
// sphere points.
const hullEpsilon = 1e-12

// TriangulateSphere triangulates points on the unit sphere into a closed,
// consistently outward-oriented mesh scaled to radius r. For points on a
// sphere the convex hull coincides with the Delaunay triangulation, so
// the result covers the whole sphere with 2(n-2) triangles.
//
// All points must lie on the unit sphere and be pairwise distinct.
func TriangulateSphere(points s2.PointVector, r float64) (*Mesh, error) {
	if len(points) < 4 {
		return nil, errors.New("mesh: sphere triangulation needs at least 4 points")
	}
	if r <= 0 || math.IsInf(r, 1) || math.IsNaN(r) {
		return nil, fmt.Errorf("mesh: sphere radius %v must be positive and finite", r)
	}

	unit := make([]r3.Vector, len(points))
	for i, p := range points {
		unit[i] = p.Vector
	}

	qh := new(quickhull.QuickHull)
	hull := qh.ConvexHull(unit, true, true, hullEpsilon)
	if len(hull.Indices) != 3*2*(len(points)-2) {
		return nil, fmt.Errorf("mesh: hull triangulation produced %d indices, want %d; points may be duplicated or off the sphere",
			len(hull.Indices), 3*2*(len(points)-2))
	}

	triangles := make([][3]int, len(hull.Indices)/3)
	for i := range triangles {
		triangles[i] = [3]int{hull.Indices[3*i], hull.Indices[3*i+1], hull.Indices[3*i+2]}
		orientOutward(&triangles[i], unit)
	}

	scaled := make([]r3.Vector, len(unit))
	for i, v := range unit {
		scaled[i] = v.Mul(r)
	}
	return New(scaled, triangles)
}

// orientOutward swaps two vertices when the triangle's normal points
// toward the sphere center, so that every facet contributes positive
// signed volume.
func orientOutward(tri *[3]int, v []r3.Vector) {
	if geom.SignedTetraVolume(v[tri[0]], v[tri[1]], v[tri[2]]) < 0 {
		tri[1], tri[2] = tri[2], tri[1]
	}
}

// FibonacciPoints returns n points spread roughly uniformly over the unit
// sphere along a golden-angle spiral. Handy for building test meshes and
// uniform samplings.
func FibonacciPoints(n int) s2.PointVector {
	pts := make(s2.PointVector, n)
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := 0; i < n; i++ {
		z := 1 - 2*(float64(i)+0.5)/float64(n)
		rad := math.Sqrt(1 - z*z)
		theta := golden * float64(i)
		v := r3.Vector{X: rad * math.Cos(theta), Y: rad * math.Sin(theta), Z: z}
		pts[i] = s2.Point{Vector: v.Normalize()}
	}
	return pts
}
