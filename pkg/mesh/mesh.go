package mesh

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Mesh is a triangulated surface. Each triangle is a triple of indices
// into Vertices. For a closed surface the triangles are expected to be
// consistently oriented with outward normals; Validate checks this.
type Mesh struct {
	Vertices  []r3.Vector
	Triangles [][3]int
}

// New builds a Mesh and checks that every triangle index is in range.
func New(vertices []r3.Vector, triangles [][3]int) (*Mesh, error) {
	for i, tri := range triangles {
		for _, v := range tri {
			if v < 0 || v >= len(vertices) {
				return nil, fmt.Errorf("triangle %d references vertex %d, mesh has %d vertices", i, v, len(vertices))
			}
		}
	}
	return &Mesh{Vertices: vertices, Triangles: triangles}, nil
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Edge is an undirected mesh edge. Invariant: A < B.
type Edge struct {
	A, B int
}

// Edges returns the undirected edges of the mesh, deduplicated, ordered
// by first appearance while walking triangles in index order. The order
// is deterministic so downstream constraint numbering is reproducible.
func (m *Mesh) Edges() []Edge {
	seen := make(map[Edge]bool)
	var edges []Edge
	for _, tri := range m.Triangles {
		for i := 0; i < 3; i++ {
			a, b := tri[i], tri[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			e := Edge{A: a, B: b}
			if !seen[e] {
				seen[e] = true
				edges = append(edges, e)
			}
		}
	}
	return edges
}
