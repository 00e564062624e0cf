package simplex

import "math"

// rowKind classifies a constraint after RHS-sign normalization.
type rowKind int

const (
	kindLE rowKind = iota
	kindGE
	kindEQ
)

// maxIterations bounds the pivot count before Solve reports
// StatusNumericalFailure instead of looping forever on a degenerate or
// malformed tableau.
const maxIterations = 20000

// tableau is the working state of one phase of the simplex method: a
// dense matrix of rows x (cols+1), the last column holding the RHS, plus
// the current basic variable for each row.
type tableau struct {
	rows  [][]float64 // rows[i] has len == cols+1
	cost  []float64   // len == cols, current reduced-cost row
	basis []int       // basis[i] = column index basic in row i
	cols  int
}

// Solve runs the two-phase primal simplex method on p and returns the
// terminal status and, when optimal, the primal solution.
//
// ErrDimensionMismatch is returned (not a Result) when p's rows disagree
// with p.NumVars — that is a caller bug (a malformed Problem built by
// internal/factory's reducer), distinct from a numerically or logically
// infeasible LP instance.
func Solve(p Problem) (Result, error) {
	for _, r := range p.Eq {
		if len(r.Coeffs) != p.NumVars {
			return Result{}, ErrDimensionMismatch
		}
	}
	for _, r := range p.Le {
		if len(r.Coeffs) != p.NumVars {
			return Result{}, ErrDimensionMismatch
		}
	}
	if len(p.Cost) != p.NumVars {
		return Result{}, ErrDimensionMismatch
	}

	rows, kinds := normalizeRows(p)
	n := p.NumVars

	// Column layout: structural [0,n), then one extra column per row
	// (slack for LE, surplus+artificial for GE, artificial for EQ),
	// allocated in row order for a stable, deterministic index space.
	type extra struct {
		slackCol, surplusCol, artCol int // -1 when not present
	}
	extras := make([]extra, len(rows))
	col := n
	var artificialCols []int
	for i, k := range kinds {
		extras[i] = extra{-1, -1, -1}
		switch k {
		case kindLE:
			extras[i].slackCol = col
			col++
		case kindGE:
			extras[i].surplusCol = col
			col++
			extras[i].artCol = col
			artificialCols = append(artificialCols, col)
			col++
		case kindEQ:
			extras[i].artCol = col
			artificialCols = append(artificialCols, col)
			col++
		}
	}
	totalCols := col

	t := &tableau{cols: totalCols}
	t.rows = make([][]float64, len(rows))
	t.basis = make([]int, len(rows))
	for i, r := range rows {
		row := make([]float64, totalCols+1)
		copy(row, r.Coeffs)
		switch kinds[i] {
		case kindLE:
			row[extras[i].slackCol] = 1
			t.basis[i] = extras[i].slackCol
		case kindGE:
			row[extras[i].surplusCol] = -1
			row[extras[i].artCol] = 1
			t.basis[i] = extras[i].artCol
		case kindEQ:
			row[extras[i].artCol] = 1
			t.basis[i] = extras[i].artCol
		}
		row[totalCols] = r.RHS
		t.rows[i] = row
	}

	active := make([]bool, len(rows))
	for i := range active {
		active[i] = true
	}

	if len(artificialCols) > 0 {
		status := t.runPhase1(artificialCols, active)
		if status != StatusOptimal {
			return Result{Status: status}, nil
		}
		if err := driveOutArtificials(t, artificialCols, active); err != StatusOptimal {
			return Result{Status: err}, nil
		}
	}

	t.cost = make([]float64, totalCols)
	copy(t.cost, p.Cost)
	forbid := make([]bool, totalCols)
	for _, c := range artificialCols {
		forbid[c] = true
	}
	reduceCostRow(t, active, forbid)

	status := t.pivotLoop(active, forbid)
	if status != StatusOptimal {
		return Result{Status: status}, nil
	}

	x := make([]float64, n)
	for i, b := range t.basis {
		if !active[i] {
			continue
		}
		if b < n {
			x[b] = t.rows[i][totalCols]
		}
	}
	obj := 0.0
	for j := 0; j < n; j++ {
		obj += p.Cost[j] * x[j]
	}
	return Result{Status: StatusOptimal, X: x, Objective: obj}, nil
}

// normalizeRows flattens Eq then Le rows into one list with a per-row
// kind, flipping sign on any row whose RHS is negative so every row's
// RHS is >= 0 (required to seed a basic feasible slack/artificial
// column).
func normalizeRows(p Problem) ([]Row, []rowKind) {
	rows := make([]Row, 0, len(p.Eq)+len(p.Le))
	kinds := make([]rowKind, 0, len(p.Eq)+len(p.Le))
	for _, r := range p.Eq {
		rows = append(rows, flipIfNegative(r))
		kinds = append(kinds, kindEQ)
	}
	for _, r := range p.Le {
		fr := r
		k := kindLE
		if fr.RHS < 0 {
			fr = flipIfNegative(fr)
			k = kindGE
		}
		rows = append(rows, fr)
		kinds = append(kinds, k)
	}
	return rows, kinds
}

func flipIfNegative(r Row) Row {
	if r.RHS >= 0 {
		return r
	}
	out := Row{Coeffs: make([]float64, len(r.Coeffs)), RHS: -r.RHS}
	for i, v := range r.Coeffs {
		out.Coeffs[i] = -v
	}
	return out
}

// runPhase1 minimizes the sum of artificial variables, returning
// StatusOptimal once that sum reaches zero (a feasible basis was found)
// or StatusInfeasible if the minimum is strictly positive.
func (t *tableau) runPhase1(artificialCols []int, active []bool) Status {
	cost := make([]float64, t.cols)
	for _, c := range artificialCols {
		cost[c] = 1
	}
	t.cost = cost
	reduceCostRow(t, active, nil)

	status := t.pivotLoop(active, nil)
	if status == StatusUnbounded {
		// The Phase-1 objective (sum of non-negative artificials) is
		// bounded below by zero; an "unbounded" signal here indicates a
		// numerically degenerate tableau, not a genuine LP property.
		return StatusNumericalFailure
	}
	if status != StatusOptimal {
		return status
	}

	sum := 0.0
	for i, b := range t.basis {
		if !active[i] {
			continue
		}
		for _, c := range artificialCols {
			if b == c {
				sum += t.rows[i][t.cols]
			}
		}
	}
	if !isZero(sum) {
		return StatusInfeasible
	}
	return StatusOptimal
}

// driveOutArtificials pivots any artificial variable still basic at
// value zero (a degenerate Phase-1 outcome) out of the basis via a
// nonzero structural/slack coefficient in its row. A row where no such
// pivot exists is a redundant constraint (linearly dependent on the
// others given the current solution) and is deactivated rather than
// forced.
func driveOutArtificials(t *tableau, artificialCols []int, active []bool) Status {
	isArtificial := make(map[int]bool, len(artificialCols))
	for _, c := range artificialCols {
		isArtificial[c] = true
	}
	for i, b := range t.basis {
		if !active[i] || !isArtificial[b] {
			continue
		}
		pivotCol := -1
		for c := 0; c < t.cols; c++ {
			if isArtificial[c] {
				continue
			}
			if !isZero(t.rows[i][c]) {
				pivotCol = c
				break
			}
		}
		if pivotCol == -1 {
			active[i] = false
			continue
		}
		t.pivot(i, pivotCol)
		t.basis[i] = pivotCol
	}
	return StatusOptimal
}

// reduceCostRow rewrites t.cost in terms of the non-basic variables
// given the current basis, by subtracting cost[basis[i]]*rows[i] for
// every active row i — the standard tableau-form reduced-cost update.
func reduceCostRow(t *tableau, active []bool, forbid []bool) {
	for i, b := range t.basis {
		if !active[i] {
			continue
		}
		c := t.cost[b]
		if isZero(c) {
			continue
		}
		row := t.rows[i]
		for j := 0; j < t.cols; j++ {
			t.cost[j] -= c * row[j]
		}
	}
	if forbid != nil {
		for j, f := range forbid {
			if f {
				t.cost[j] = 0
			}
		}
	}
}

// pivotLoop runs simplex pivots (Bland's rule for entering and leaving
// variable selection, guaranteeing termination without cycling and full
// determinism) until no column has a negative reduced cost, the problem
// is found unbounded, or the iteration cap is hit.
func (t *tableau) pivotLoop(active []bool, forbid []bool) Status {
	for iter := 0; iter < maxIterations; iter++ {
		enter := -1
		for j := 0; j < t.cols; j++ {
			if forbid != nil && forbid[j] {
				continue
			}
			if t.cost[j] < -tol {
				enter = j
				break // Bland's rule: lowest index with negative reduced cost
			}
		}
		if enter == -1 {
			return StatusOptimal
		}

		leave := -1
		bestRatio := math.Inf(1)
		for i, b := range t.basis {
			if !active[i] {
				continue
			}
			coeff := t.rows[i][enter]
			if coeff <= tol {
				continue
			}
			ratio := t.rows[i][t.cols] / coeff
			if ratio < bestRatio-tol || (ratio < bestRatio+tol && (leave == -1 || b < t.basis[leave])) {
				bestRatio = ratio
				leave = i
			}
		}
		if leave == -1 {
			return StatusUnbounded
		}

		t.pivot(leave, enter)
		t.basis[leave] = enter

		c := t.cost[enter]
		if !isZero(c) {
			row := t.rows[leave]
			for j := 0; j < t.cols; j++ {
				t.cost[j] -= c * row[j]
			}
		}
	}
	return StatusNumericalFailure
}

// pivot performs a Gauss-Jordan elimination step around (row, col): the
// pivot row is scaled to make rows[row][col] == 1, then subtracted from
// every other row (deactivated rows included) to zero out column col
// elsewhere.
func (t *tableau) pivot(row, col int) {
	pv := t.rows[row][col]
	prow := t.rows[row]
	for j := range prow {
		prow[j] /= pv
	}
	for i, r := range t.rows {
		if i == row {
			continue
		}
		factor := r[col]
		if isZero(factor) {
			continue
		}
		for j := range r {
			r[j] -= factor * prow[j]
		}
	}
}

// tol is the numeric threshold the pivot search uses to decide whether a
// reduced cost or pivot coefficient should be treated as zero. It is
// intentionally the same fixed value used throughout foundry-core (see
// internal/tolerance), duplicated here as a local constant so this
// package stays a self-contained numeric primitive with no import of the
// higher-level tolerance policy package.
const tol = 1e-9

func isZero(v float64) bool {
	return v > -tol && v < tol
}
