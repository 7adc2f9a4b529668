package mesh

import "fmt"

// ValidationError reports a structural defect in a mesh. Element is the
// index of the offending triangle or vertex, or -1 when no single element
// is responsible.
type ValidationError struct {
	Code    string
	Message string
	Element int
}

func (e ValidationError) Error() string {
	if e.Element >= 0 {
		return fmt.Sprintf("%s: %s (element %d)", e.Code, e.Message, e.Element)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Validate runs structural checks over the mesh and returns every defect
// found. An empty slice means the mesh is a closed, consistently oriented
// 2-manifold with no unreferenced vertices.
//
// The constraint generator does not call Validate; it assumes these
// properties hold. Callers that load meshes from untrusted sources should
// validate first.
func (m *Mesh) Validate() []ValidationError {
	var errs []ValidationError

	errs = append(errs, m.validateIndices()...)
	if len(errs) > 0 {
		// Half-edge accounting is meaningless with out-of-range indices.
		return errs
	}
	errs = append(errs, m.validateReferenced()...)
	errs = append(errs, m.validateClosedOriented()...)
	return errs
}

func (m *Mesh) validateIndices() []ValidationError {
	var errs []ValidationError
	for i, tri := range m.Triangles {
		for _, v := range tri {
			if v < 0 || v >= len(m.Vertices) {
				errs = append(errs, ValidationError{
					Code:    "INDEX_RANGE",
					Message: fmt.Sprintf("triangle references vertex %d, mesh has %d vertices", v, len(m.Vertices)),
					Element: i,
				})
			}
		}
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[2] == tri[0] {
			errs = append(errs, ValidationError{
				Code:    "DEGENERATE_TRIANGLE",
				Message: "triangle repeats a vertex index",
				Element: i,
			})
		}
	}
	return errs
}

func (m *Mesh) validateReferenced() []ValidationError {
	referenced := make([]bool, len(m.Vertices))
	for _, tri := range m.Triangles {
		for _, v := range tri {
			referenced[v] = true
		}
	}

	var errs []ValidationError
	for v, ok := range referenced {
		if !ok {
			errs = append(errs, ValidationError{
				Code:    "UNREFERENCED_VERTEX",
				Message: "vertex is not referenced by any triangle",
				Element: v,
			})
		}
	}
	return errs
}

// validateClosedOriented checks that every directed half-edge appears
// exactly once and that its opposite also appears. Together these imply
// the mesh is a closed 2-manifold with consistently oriented triangles.
func (m *Mesh) validateClosedOriented() []ValidationError {
	type halfEdge struct{ from, to int }
	count := make(map[halfEdge]int)
	for _, tri := range m.Triangles {
		for i := 0; i < 3; i++ {
			count[halfEdge{tri[i], tri[(i+1)%3]}]++
		}
	}

	var errs []ValidationError
	for he, n := range count {
		if n > 1 {
			errs = append(errs, ValidationError{
				Code:    "INCONSISTENT_ORIENTATION",
				Message: fmt.Sprintf("directed edge %d->%d appears %d times; adjacent triangles disagree on orientation or the edge is non-manifold", he.from, he.to, n),
				Element: -1,
			})
			continue
		}
		if count[halfEdge{he.to, he.from}] == 0 {
			errs = append(errs, ValidationError{
				Code:    "OPEN_EDGE",
				Message: fmt.Sprintf("directed edge %d->%d has no opposite; the surface is not closed", he.from, he.to),
				Element: -1,
			})
		}
	}
	return errs
}
