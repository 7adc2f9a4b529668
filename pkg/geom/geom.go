// Package geom provides the geometric primitives used by the constraint
// generator: a two-sided ray-triangle intersection test and the signed
// volume of an origin-anchored tetrahedron.
package geom

import "github.com/golang/geo/r3"

// rayEpsilon bounds the determinant magnitude below which a ray is
// considered parallel to a triangle's plane.
const rayEpsilon = 1e-12

// Ray is a half-line starting at Origin in direction Dir.
// Dir need not be unit length.
type Ray struct {
	Origin r3.Vector
	Dir    r3.Vector
}

// IntersectsTriangle reports whether the ray hits the triangle (a, b, c).
// The test is two-sided (front and back faces both count) and uses ray
// semantics: intersections behind the origin (t < 0) do not count.
// Implements the Moller-Trumbore algorithm.
func (r Ray) IntersectsTriangle(a, b, c r3.Vector) bool {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Dir.Cross(e2)
	det := e1.Dot(p)
	if det > -rayEpsilon && det < rayEpsilon {
		return false
	}
	inv := 1 / det

	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return false
	}

	q := s.Cross(e1)
	v := r.Dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return false
	}

	t := e2.Dot(q) * inv
	return t >= 0
}

// SignedTetraVolume returns the signed volume of the tetrahedron spanned
// by the coordinate origin and the triangle (a, b, c): det[a; b; c] / 6.
// The sign is positive when the triangle's normal (right-hand rule over
// a -> b -> c) points away from the origin.
func SignedTetraVolume(a, b, c r3.Vector) float64 {
	return a.Dot(b.Cross(c)) / 6
}
