package sphereprog

// radiusConstraint pins free vertex v onto the sphere:
// x^2 + y^2 + z^2 = R^2. Exact equality is requested; the solver's own
// equality tolerance governs feasibility, so no adjustment is applied.
func (g *generator) radiusConstraint(v int) Constraint {
	terms := []Term{
		{Coeff: 1, Vars: []Var{{AxisX, v}, {AxisX, v}}},
		{Coeff: 1, Vars: []Var{{AxisY, v}, {AxisY, v}}},
		{Coeff: 1, Vars: []Var{{AxisZ, v}, {AxisZ, v}}},
	}
	return Constraint{Terms: terms, Rel: Equal, RHS: g.radius * g.radius}
}
