// Package foundrycore is the module root for two deterministic batch
// solvers built on the same LP/flow foundations.
//
// factorysolve reduces a factory production graph (raws, recipes,
// machines, a target item) to a linear program and solves it with a
// two-phase primal simplex, reporting steady-state rates or, when the
// target is infeasible, the maximum reachable rate and its bottleneck.
//
// beltsolve reduces a belt network with per-edge bounds, per-node
// throughput caps, and fixed supplies/demand to a max-flow problem via
// node-splitting and lower-bound elimination, solved with a
// deterministic Dinic's algorithm, reporting a feasible flow or a
// min-cut certificate of infeasibility.
//
// Both tools read a JSON document from stdin and write a JSON result to
// stdout; see internal/factory and internal/belts for the solvers
// themselves, and internal/simplex and internal/maxflow for the shared
// numerical engines.
package foundrycore
