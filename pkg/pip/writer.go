// Package pip serializes a derived constraint program into PIP-style
// solver text: a bounds block and a polynomial constraints block.
// Identifiers are assigned sequentially, 1-based, at write time.
package pip

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/meshopt/spheremap/pkg/sphereprog"
)

// VarName returns the solver variable for one coordinate of a mesh
// vertex: the axis letter followed by the 1-based vertex index.
func VarName(a sphereprog.Axis, vertex int) string {
	return a.String() + strconv.Itoa(vertex+1)
}

// num renders a float with enough digits (17 significant) to round-trip
// exactly, so the solver's relative feasibility tolerance is not eroded
// by the text encoding.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', 17, 64)
}

// WriteBounds writes the Bounds block: one line per coordinate per free
// vertex, every free vertex sharing the program's box.
func WriteBounds(w io.Writer, prog *sphereprog.Program) error {
	if _, err := fmt.Fprintln(w, "Bounds"); err != nil {
		return err
	}
	for v, free := range prog.Free {
		if !free {
			continue
		}
		for _, axis := range []sphereprog.Axis{sphereprog.AxisX, sphereprog.AxisY, sphereprog.AxisZ} {
			_, err := fmt.Fprintf(w, " %s <= %s <= %s\n",
				num(prog.Bounds.Min[axis]), VarName(axis, v), num(prog.Bounds.Max[axis]))
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteConstraints writes the Subject to block. Identifiers run c1, c2,
// ... in the program's canonical constraint order.
func WriteConstraints(w io.Writer, prog *sphereprog.Program) error {
	if _, err := fmt.Fprintln(w, "Subject to"); err != nil {
		return err
	}
	for i, c := range prog.Constraints() {
		if _, err := fmt.Fprintf(w, " c%d: %s\n", i+1, FormatConstraint(c)); err != nil {
			return err
		}
	}
	return nil
}

// WriteProblem writes a complete solver input: a zero objective (the
// program is a pure feasibility system), the constraint block, the
// bounds block, and the end marker.
func WriteProblem(w io.Writer, prog *sphereprog.Program) error {
	header := "\\ fold-free spherical embedding, " +
		strconv.Itoa(prog.NumFree()) + " free vertices\nMinimize\n obj: 0\n"
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	if err := WriteConstraints(w, prog); err != nil {
		return err
	}
	if err := WriteBounds(w, prog); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "End")
	return err
}

// FormatConstraint renders one constraint as signed monomial terms, the
// relational operator, and the right-hand side. Unit coefficients are
// abbreviated to a bare sign, which keeps them numerically exact.
func FormatConstraint(c sphereprog.Constraint) string {
	var b strings.Builder
	for i, t := range c.Terms {
		neg := math.Signbit(t.Coeff)
		switch {
		case i == 0 && neg:
			b.WriteString("- ")
		case i > 0 && neg:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		if mag := math.Abs(t.Coeff); mag != 1 {
			b.WriteString(num(mag))
			b.WriteByte(' ')
		}
		for j, v := range t.Vars {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(VarName(v.Axis, v.Vertex))
		}
	}
	b.WriteByte(' ')
	b.WriteString(c.Rel.String())
	b.WriteByte(' ')
	b.WriteString(num(c.RHS))
	return b.String()
}
