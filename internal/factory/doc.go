// Package factory implements the Factory Steady-State Solver core:
// Normalize (Factory.Normalizer), Reduce (Factory.LP_Reducer), and Solve
// (Factory.TwoPhaseSolver plus Shared.Verifier), reducing a crafting
// graph to a two-phase linear program solved by internal/simplex.
//
// A recipe's effective crafts-per-minute folds machine base speed,
// speed and productivity modules, and craft time into a single rate
// constant; steady state then requires that, for every item, total
// production equals total consumption plus the target's own draw, and
// that raw consumption never exceeds each raw's supply cap or a
// machine's usage its declared count. Phase one finds any feasible
// point; phase two maximizes the target's rate, so an infeasible target
// still reports the best rate the system can sustain and which
// constraint is binding.
package factory
