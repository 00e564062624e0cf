// Package simplex implements a dense two-phase primal simplex method over
// float64 tableaus. It is the LP engine behind Factory.TwoPhaseSolver: a
// Problem is a set of equality rows, less-or-equal rows, and a linear
// objective, all over non-negative decision variables; Solve returns one
// of four explicit result variants (Optimal, Infeasible, Unbounded,
// NumericalFailure) instead of raising an exception on solver failure.
//
// The tableau is plain dense []float64 rows, row/column-indexed, with no
// external matrix or LP dependency (see DESIGN.md for why this one
// component is standard-library numeric code).
//
// Determinism: Bland's rule selects the entering and leaving variable by
// lowest index on ties, guaranteeing the same pivot sequence — and hence
// the same vertex of the feasible polytope — for the same input on every
// run and platform.
package simplex
