// Package mesh defines the triangulated-surface model consumed by the
// constraint generator: indexed vertex positions, consistently oriented
// triangles, undirected edge extraction, and structural validation.
package mesh
