package factory

import "github.com/wattforge/foundry-core/internal/simplex"

// Reduction is the coefficient matrix Factory.LP_Reducer builds once
// from a Model and reuses across both simplex phases: coef[itemIdx][col]
// = out[item]*(1+prodMod) - in[item] for the recipe at LP column col.
type Reduction struct {
	model  *Model
	coef   [][]float64 // len(model.Items) x model.NumCols
	effCPM []float64   // len model.NumCols
	colMac []int       // len model.NumCols -> machine index
}

// Reduce builds the shared coefficient matrix once. Both BuildFeasibility
// and BuildMaximize reuse it rather than recomputing per-item balance
// coefficients twice.
func Reduce(m *Model) *Reduction {
	coef := make([][]float64, len(m.Items))
	for i := range coef {
		coef[i] = make([]float64, m.NumCols)
	}
	effCPM := make([]float64, m.NumCols)
	colMac := make([]int, m.NumCols)

	for _, r := range m.Recipes {
		if !r.Runnable {
			continue
		}
		col := r.Col
		effCPM[col] = r.EffCPM
		colMac[col] = r.Machine
		prodMod := m.Machines[r.Machine].ProdMod
		for it, qty := range r.Out {
			idx := m.ItemIndex[it]
			coef[idx][col] += qty * (1 + prodMod)
		}
		for it, qty := range r.In {
			idx := m.ItemIndex[it]
			coef[idx][col] -= qty
		}
	}

	return &Reduction{model: m, coef: coef, effCPM: effCPM, colMac: colMac}
}

// ProducesTarget reports whether any runnable recipe has a positive
// output coefficient for the target item — used to detect the "no
// recipe produces the target" edge case up front.
func (red *Reduction) ProducesTarget() bool {
	idx := red.model.ItemIndex[red.model.TargetItem]
	for col := 0; col < red.model.NumCols; col++ {
		if red.coef[idx][col] > 0 {
			return true
		}
	}
	return false
}

// objective returns the "minimize total machines" cost vector shared by
// both phases: 1/eff_cpm(r) per column.
func (red *Reduction) objective() []float64 {
	c := make([]float64, red.model.NumCols)
	for col, eff := range red.effCPM {
		c[col] = 1 / eff
	}
	return c
}

// intermediateRows returns one equality row (RHS 0) per item that is
// neither the target nor a raw and whose coefficient row is not
// entirely zero, skipping balance rows that no recipe touches at all.
func (red *Reduction) intermediateRows() [][]float64 {
	m := red.model
	var rows [][]float64
	for _, it := range m.Items {
		if it == m.TargetItem || m.IsRaw(it) {
			continue
		}
		row := red.coef[m.ItemIndex[it]]
		if isAllZero(row) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// rawRowPairs returns, for each raw item that appears in the model's
// item set, the (net-production <= 0, net-consumption <= cap) row pair:
// a raw item may never be net-produced by the recipe set, and its net
// consumption may never exceed its supply cap.
func (red *Reduction) rawRowPairs() [][2][]float64 {
	m := red.model
	var pairs [][2][]float64
	for _, it := range m.Items {
		cap, ok := m.RawCaps[it]
		if !ok {
			continue
		}
		row := red.coef[m.ItemIndex[it]]
		neg := negate(row)
		pairs = append(pairs, [2][]float64{row, neg})
		_ = cap
	}
	return pairs
}

// rawCapsOrdered returns the caps in the same order as rawRowPairs.
func (red *Reduction) rawCapsOrdered() []float64 {
	m := red.model
	var caps []float64
	for _, it := range m.Items {
		cap, ok := m.RawCaps[it]
		if !ok {
			continue
		}
		caps = append(caps, cap)
	}
	return caps
}

// machineRows returns one <= row per machine type with at least one
// runnable recipe assigned, coefficient 1/eff_cpm(r) at that recipe's
// column, plus the matching cap.
func (red *Reduction) machineRows() ([][]float64, []float64, []string) {
	m := red.model
	var rows [][]float64
	var caps []float64
	var names []string
	for mi, machine := range m.Machines {
		row := make([]float64, m.NumCols)
		any := false
		for col := 0; col < m.NumCols; col++ {
			if red.colMac[col] == mi {
				row[col] = 1 / red.effCPM[col]
				any = true
			}
		}
		if !any {
			continue
		}
		rows = append(rows, row)
		caps = append(caps, machine.Max)
		names = append(names, machine.Name)
	}
	return rows, caps, names
}

// BuildFeasibility builds the Phase-1 LP: fix the target's equality RHS
// at targetRate, minimize total machines.
func (red *Reduction) BuildFeasibility(targetRate float64) simplex.Problem {
	m := red.model
	p := simplex.Problem{NumVars: m.NumCols, Cost: red.objective()}

	targetRow := red.coef[m.ItemIndex[m.TargetItem]]
	p.Eq = append(p.Eq, simplex.Row{Coeffs: targetRow, RHS: targetRate})
	for _, row := range red.intermediateRows() {
		p.Eq = append(p.Eq, simplex.Row{Coeffs: row, RHS: 0})
	}

	rawCaps := red.rawCapsOrdered()
	for i, pair := range red.rawRowPairs() {
		p.Le = append(p.Le, simplex.Row{Coeffs: pair[0], RHS: 0})
		p.Le = append(p.Le, simplex.Row{Coeffs: pair[1], RHS: rawCaps[i]})
	}

	machRows, machCaps, _ := red.machineRows()
	for i, row := range machRows {
		p.Le = append(p.Le, simplex.Row{Coeffs: row, RHS: machCaps[i]})
	}

	return p
}

// BuildMaximize builds the Phase-2 LP: introduce t >= 0 as the last
// variable, replace the target's fixed RHS with the equality
// (target row)·x - t = 0, and minimize -t (maximize t).
func (red *Reduction) BuildMaximize() simplex.Problem {
	m := red.model
	n := m.NumCols
	p := simplex.Problem{NumVars: n + 1}

	cost := make([]float64, n+1)
	copy(cost, red.objective())
	// Phase 2 minimizes -t (maximizes t); total-machines is not part of
	// the phase-2 objective, only t is optimized.
	for i := range cost {
		cost[i] = 0
	}
	cost[n] = -1
	p.Cost = cost

	extend := func(row []float64, tCoeff float64) []float64 {
		out := make([]float64, n+1)
		copy(out, row)
		out[n] = tCoeff
		return out
	}

	targetRow := red.coef[m.ItemIndex[m.TargetItem]]
	p.Eq = append(p.Eq, simplex.Row{Coeffs: extend(targetRow, -1), RHS: 0})
	for _, row := range red.intermediateRows() {
		p.Eq = append(p.Eq, simplex.Row{Coeffs: extend(row, 0), RHS: 0})
	}

	rawCaps := red.rawCapsOrdered()
	for i, pair := range red.rawRowPairs() {
		p.Le = append(p.Le, simplex.Row{Coeffs: extend(pair[0], 0), RHS: 0})
		p.Le = append(p.Le, simplex.Row{Coeffs: extend(pair[1], 0), RHS: rawCaps[i]})
	}

	machRows, machCaps, _ := red.machineRows()
	for i, row := range machRows {
		p.Le = append(p.Le, simplex.Row{Coeffs: extend(row, 0), RHS: machCaps[i]})
	}

	return p
}

// MachineUsage returns, for every machine type with at least one
// recipe at a nonzero rate in x, the machine-count usage Σ x_r/eff_cpm(r)
// implied by x (a solution vector over the reduction's NumCols LP
// columns). Machine types whose recipes all run at rate zero are absent
// from the map.
func (red *Reduction) MachineUsage(x []float64) map[string]float64 {
	m := red.model
	usage := make(map[string]float64, len(m.Machines))
	for col, xr := range x {
		if xr == 0 {
			continue
		}
		name := m.Machines[red.colMac[col]].Name
		usage[name] += xr / red.effCPM[col]
	}
	return usage
}

// RawUsage returns, for every raw item present in the model's item set,
// its net consumption implied by x: max(0, -coef[item]·x).
func (red *Reduction) RawUsage(x []float64) map[string]float64 {
	m := red.model
	usage := make(map[string]float64, len(m.RawCaps))
	for it := range m.RawCaps {
		idx, ok := m.ItemIndex[it]
		if !ok {
			usage[it] = 0
			continue
		}
		net := 0.0
		row := red.coef[idx]
		for col, xr := range x {
			net -= row[col] * xr
		}
		if net < 0 {
			net = 0
		}
		usage[it] = net
	}
	return usage
}

func isAllZero(row []float64) bool {
	for _, v := range row {
		if v != 0 {
			return false
		}
	}
	return true
}

func negate(row []float64) []float64 {
	out := make([]float64, len(row))
	for i, v := range row {
		out[i] = -v
	}
	return out
}
