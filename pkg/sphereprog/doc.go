// Package sphereprog derives the nonlinear constraint system for mapping
// a closed triangle mesh onto a sphere of a given radius without triangle
// fold-overs. For every triangle it bounds the signed volume of the
// tetrahedron formed with the sphere center, for every edge it bounds the
// chord length using the fixed-radius identity, and for every free vertex
// it pins the vertex to the sphere. The result is an immutable Program
// that pkg/pip serializes for an external polynomial solver.
package sphereprog
