package sphereprog

import "fmt"

// caseKind tags a triangle by how many of its vertices are free. The
// kind selects which of the four polynomial expansions of the signed
// tetrahedron volume applies.
type caseKind int

const (
	allFixed caseKind = iota
	oneFree
	twoFree
	allFree
)

// triangleCase is a classified triangle carrying its canonically rotated
// vertex indices: oneFree keeps the free vertex in the last slot, twoFree
// keeps the fixed vertex in the first slot. allFixed and allFree keep the
// original order.
type triangleCase struct {
	kind caseKind
	v    [3]int
}

// rotate cyclically left-rotates the triangle by k slots. Cyclic
// rotations are even permutations, so the sign of the volume determinant
// is preserved; any other reordering would flip it.
func rotate(t [3]int, k int) [3]int {
	switch k {
	case 0:
		return t
	case 1:
		return [3]int{t[1], t[2], t[0]}
	case 2:
		return [3]int{t[2], t[0], t[1]}
	}
	panic("rotate: rotation must be 0, 1, or 2")
}

// classifyTriangle counts the triangle's free vertices and rotates it
// into canonical slot order. The post-rotation flag pattern is asserted:
// a mismatch is an algorithm bug, not a user error.
func classifyTriangle(t [3]int, free []bool) triangleCase {
	nfree := 0
	for _, v := range t {
		if free[v] {
			nfree++
		}
	}

	switch nfree {
	case 0:
		return triangleCase{kind: allFixed, v: t}

	case 1:
		var r [3]int
		switch {
		case free[t[2]]:
			r = t
		case free[t[0]]:
			r = rotate(t, 1)
		default: // free[t[1]]
			r = rotate(t, 2)
		}
		if free[r[0]] || free[r[1]] || !free[r[2]] {
			panic(fmt.Sprintf("classifyTriangle: canonicalization of %v left free pattern [%t %t %t], want [false false true]",
				t, free[r[0]], free[r[1]], free[r[2]]))
		}
		return triangleCase{kind: oneFree, v: r}

	case 2:
		var r [3]int
		switch {
		case !free[t[0]]:
			r = t
		case !free[t[1]]:
			r = rotate(t, 1)
		default: // !free[t[2]]
			r = rotate(t, 2)
		}
		if free[r[0]] || !free[r[1]] || !free[r[2]] {
			panic(fmt.Sprintf("classifyTriangle: canonicalization of %v left free pattern [%t %t %t], want [false true true]",
				t, free[r[0]], free[r[1]], free[r[2]]))
		}
		return triangleCase{kind: twoFree, v: r}

	case 3:
		return triangleCase{kind: allFree, v: t}
	}
	panic("classifyTriangle: free vertex count out of range")
}
