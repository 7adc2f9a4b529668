package sphereprog

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"

	"github.com/meshopt/spheremap/pkg/mesh"
)

// capMesh builds a mesh whose vertices lie in a spherical cap of the
// given half-angle around axis (unit), on the sphere of radius r. The
// triangles are a simple fan; the bounding-box estimator only consumes
// vertex positions.
func capMesh(t *testing.T, axis r3.Vector, halfAngle, r float64) *mesh.Mesh {
	t.Helper()

	// Orthonormal basis around the axis.
	e1 := axis.Cross(r3.Vector{Z: 1})
	if e1.Norm() < 1e-9 {
		e1 = axis.Cross(r3.Vector{X: 1})
	}
	e1 = e1.Normalize()
	e2 := axis.Cross(e1).Normalize()

	verts := []r3.Vector{axis.Mul(r)} // apex
	const rings, spokes = 4, 8
	for i := 1; i <= rings; i++ {
		alpha := halfAngle * float64(i) / rings
		for j := 0; j < spokes; j++ {
			phi := 2 * math.Pi * float64(j) / spokes
			dir := axis.Mul(math.Cos(alpha)).
				Add(e1.Mul(math.Sin(alpha) * math.Cos(phi))).
				Add(e2.Mul(math.Sin(alpha) * math.Sin(phi)))
			verts = append(verts, dir.Mul(r))
		}
	}

	var tris [][3]int
	for j := 0; j < spokes; j++ {
		tris = append(tris, [3]int{0, 1 + j, 1 + (j+1)%spokes})
	}
	m, err := mesh.New(verts, tris)
	if err != nil {
		t.Fatalf("mesh.New failed: %v", err)
	}
	return m
}

func TestBounds_FullSphereReachesPoles(t *testing.T) {
	const radius = 2.0
	m, err := mesh.TriangulateSphere(mesh.FibonacciPoints(128), radius)
	if err != nil {
		t.Fatalf("TriangulateSphere failed: %v", err)
	}
	box := estimateBounds(m, radius)
	for axis := 0; axis < 3; axis++ {
		if box.Min[axis] != -radius {
			t.Errorf("axis %d lower bound = %v, want %v", axis, box.Min[axis], -radius)
		}
		if box.Max[axis] != radius {
			t.Errorf("axis %d upper bound = %v, want %v", axis, box.Max[axis], radius)
		}
	}
}

// TestBounds_PolarCapExtendsToPole is the case the raw min/max gets
// wrong: a cap wrapped around +Z whose vertices stop short of the pole.
// The +Z bound must still reach the full radius; the other bounds must
// stay at the raw extents.
func TestBounds_PolarCapExtendsToPole(t *testing.T) {
	const radius = 1.0
	m := capMesh(t, r3.Vector{Z: 1}, 0.6, radius)

	// Remove the apex so no vertex sits on the pole: rebuild the fan over
	// ring vertices only, keeping the surface spanning the pole.
	verts := m.Vertices[1:]
	var tris [][3]int
	const spokes = 8
	for j := 0; j < spokes; j++ {
		// Quads between ring 1 (indices 0..7) and ring 2 (8..15), split
		// into triangles; the hull over these vertices still covers +Z.
		a, b := j, (j+1)%spokes
		tris = append(tris, [3]int{a, b, spokes + a}, [3]int{b, spokes + b, spokes + a})
	}
	capNoApex, err := mesh.New(verts, tris)
	if err != nil {
		t.Fatalf("mesh.New failed: %v", err)
	}

	box := estimateBounds(capNoApex, radius)
	raw := rawExtents(capNoApex)

	if box.Max[2] != radius {
		t.Errorf("+Z bound = %v, want %v (cap wraps the pole)", box.Max[2], radius)
	}
	if raw.Max[2] == radius {
		t.Fatal("test setup broken: raw +Z extent already reaches the pole")
	}
	for axis := 0; axis < 3; axis++ {
		if box.Min[axis] != raw.Min[axis] {
			t.Errorf("axis %d lower bound = %v, want raw extent %v", axis, box.Min[axis], raw.Min[axis])
		}
	}
	if box.Max[0] != raw.Max[0] || box.Max[1] != raw.Max[1] {
		t.Errorf("X/Y upper bounds = %v, %v; want raw extents %v, %v",
			box.Max[0], box.Max[1], raw.Max[0], raw.Max[1])
	}
}

// TestBounds_OctantConfined checks that a mesh strictly confined to one
// octant keeps the raw per-axis extents on every bound.
func TestBounds_OctantConfined(t *testing.T) {
	const radius = 1.0
	axis := r3.Vector{X: 1, Y: 1, Z: 1}.Normalize()
	m := capMesh(t, axis, 0.35, radius) // well inside the positive octant

	box := estimateBounds(m, radius)
	raw := rawExtents(m)

	for a := 0; a < 3; a++ {
		if box.Min[a] != raw.Min[a] {
			t.Errorf("axis %d lower bound = %v, want raw %v", a, box.Min[a], raw.Min[a])
		}
		if box.Max[a] != raw.Max[a] {
			t.Errorf("axis %d upper bound = %v, want raw %v", a, box.Max[a], raw.Max[a])
		}
		if box.Max[a] == radius || box.Min[a] == -radius {
			t.Errorf("axis %d bound reached the pole for an octant-confined mesh", a)
		}
	}
}

func TestRawExtents(t *testing.T) {
	verts := []r3.Vector{{X: -1, Y: 2, Z: 0}, {X: 3, Y: -2, Z: 1}}
	m := &mesh.Mesh{Vertices: verts, Triangles: [][3]int{{0, 1, 0}}}
	box := rawExtents(m)
	want := Box{Min: [3]float64{-1, -2, 0}, Max: [3]float64{3, 2, 1}}
	if box != want {
		t.Errorf("rawExtents = %+v, want %+v", box, want)
	}
}
