// Package maxflow implements a deterministic Dinic maximum-flow solver
// over an arena-based directed graph, the engine behind Belts.MaxFlow.
//
// The graph stores nodes as small integers and arcs as adjacent
// forward/reverse pairs — arc 2k and arc 2k+1 are twins, so the residual
// counterpart of arc i is arc i^1. Adjacency lists record arcs in the
// order AddArc was called, never a Go map, so callers that add nodes and
// arcs in a fixed, sorted order get byte-identical BFS/DFS traversal
// order — and hence a byte-identical flow assignment — on every run.
//
// The solver follows the classic two-phase structure: build a level
// graph by BFS, then repeatedly find a blocking flow by DFS using a
// per-node current-arc pointer, over an integer-arena, paired-arc
// adjacency rather than a string-keyed map so traversal order is fixed
// by construction instead of left to map iteration.
package maxflow
