package geom

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

// unitOctantTriangle is the triangle spanning the three positive axis
// poles of the unit sphere.
func unitOctantTriangle() (a, b, c r3.Vector) {
	a = r3.Vector{X: 1}
	b = r3.Vector{Y: 1}
	c = r3.Vector{Z: 1}
	return
}

func TestRayIntersectsTriangle_Hit(t *testing.T) {
	a, b, c := unitOctantTriangle()
	ray := Ray{Origin: r3.Vector{}, Dir: r3.Vector{X: 1, Y: 1, Z: 1}}
	if !ray.IntersectsTriangle(a, b, c) {
		t.Error("ray through triangle centroid should intersect")
	}
}

func TestRayIntersectsTriangle_Miss(t *testing.T) {
	a, b, c := unitOctantTriangle()
	ray := Ray{Origin: r3.Vector{}, Dir: r3.Vector{X: 2, Y: -1, Z: 0}}
	if ray.IntersectsTriangle(a, b, c) {
		t.Error("ray crossing the triangle plane outside the triangle should not intersect")
	}
}

func TestRayIntersectsTriangle_BehindOrigin(t *testing.T) {
	a, b, c := unitOctantTriangle()
	// Same line as the centroid ray but pointing the opposite way: the
	// intersection parameter is negative and must not count.
	ray := Ray{Origin: r3.Vector{}, Dir: r3.Vector{X: -1, Y: -1, Z: -1}}
	if ray.IntersectsTriangle(a, b, c) {
		t.Error("intersection behind the ray origin must not count")
	}
}

func TestRayIntersectsTriangle_TwoSided(t *testing.T) {
	a, b, c := unitOctantTriangle()
	// Reversing the winding flips the normal; a two-sided test must still
	// report the hit.
	ray := Ray{Origin: r3.Vector{}, Dir: r3.Vector{X: 1, Y: 1, Z: 1}}
	if !ray.IntersectsTriangle(a, c, b) {
		t.Error("back-facing triangle should still intersect (two-sided test)")
	}
}

func TestRayIntersectsTriangle_Parallel(t *testing.T) {
	a := r3.Vector{X: 1, Z: 1}
	b := r3.Vector{Y: 1, Z: 1}
	c := r3.Vector{X: -1, Y: -1, Z: 1}
	ray := Ray{Origin: r3.Vector{}, Dir: r3.Vector{X: 1}}
	if ray.IntersectsTriangle(a, b, c) {
		t.Error("ray parallel to the triangle plane should not intersect")
	}
}

func TestRayIntersectsTriangle_OffsetOrigin(t *testing.T) {
	a, b, c := unitOctantTriangle()
	ray := Ray{Origin: r3.Vector{X: 0.2, Y: 0.2, Z: 0.2}, Dir: r3.Vector{X: 1, Y: 1, Z: 1}}
	if !ray.IntersectsTriangle(a, b, c) {
		t.Error("ray from inside the octant should intersect")
	}
}

func TestSignedTetraVolume(t *testing.T) {
	a, b, c := unitOctantTriangle()
	got := SignedTetraVolume(a, b, c)
	want := 1.0 / 6
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("SignedTetraVolume = %v, want %v", got, want)
	}

	// Swapping two vertices reverses the orientation and the sign.
	if got := SignedTetraVolume(a, c, b); math.Abs(got+want) > 1e-15 {
		t.Errorf("reflected SignedTetraVolume = %v, want %v", got, -want)
	}
}

func TestSignedTetraVolume_Degenerate(t *testing.T) {
	a := r3.Vector{X: 1}
	b := r3.Vector{X: 2}
	c := r3.Vector{X: 3}
	if got := SignedTetraVolume(a, b, c); got != 0 {
		t.Errorf("collinear triangle volume = %v, want 0", got)
	}
}
