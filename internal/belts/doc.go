// Package belts implements the Bounded-Flow Belt Solver core:
// Normalize (Belts.Normalizer), the node-splitting and lower-bound
// transform (also Belts.Normalizer), MaxFlow (Belts.MaxFlow, delegating
// to internal/maxflow), and Certifier plus Shared.Verifier.
//
// A belt network with per-edge bounds, per-node throughput caps, and
// fixed supplies/demand is reduced to a plain max-flow problem: capped
// nodes are split into in/out halves joined by a capacity-limited
// internal arc, edges with a nonzero lower bound have that lower bound
// subtracted out and folded into a per-node imbalance, and imbalanced
// nodes are wired to a super-source or super-sink. Feasibility holds
// exactly when the super-source's arcs all saturate; otherwise the
// residual-reachable set from the super-source is the infeasibility
// certificate.
package belts
