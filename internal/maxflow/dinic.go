package maxflow

import (
	"fmt"
	"math"

	"github.com/wattforge/foundry-core/internal/obs"
	"github.com/wattforge/foundry-core/internal/tolerance"
	"go.uber.org/zap"
)

// ErrSourceNotFound is returned when source is outside the graph's node
// range.
var ErrSourceNotFound = fmt.Errorf("maxflow: source vertex not found")

// ErrSinkNotFound is returned when sink is outside the graph's node
// range.
var ErrSinkNotFound = fmt.Errorf("maxflow: sink vertex not found")

// Dinic computes the maximum flow from source to sink in g, mutating g's
// residual arc capacities in place. It returns the total flow pushed.
//
// Steps:
//  1. Validate source and sink are registered nodes.
//  2. Repeat until sink is unreachable in the level graph:
//     a. BFS from source assigns level[v], traversing each node's arcs
//        in insertion order (deterministic — see package doc).
//     b. DFS from source to sink along strictly-increasing-level arcs,
//        pushing a blocking flow, using a per-node current-arc pointer
//        (iter) advanced only when an arc is exhausted or blocked.
//
// An arc with residual capacity <= tolerance.Eps() is treated as
// saturated.
func Dinic(g *Graph, source, sink int) (float64, error) {
	if source < 0 || source >= g.NumNodes() {
		return 0, ErrSourceNotFound
	}
	if sink < 0 || sink >= g.NumNodes() {
		return 0, ErrSinkNotFound
	}

	eps := tolerance.Eps()
	total := 0.0
	n := g.NumNodes()
	level := make([]int, n)
	iter := make([]int, n)

	for {
		for i := range level {
			level[i] = -1
		}
		level[source] = 0
		queue := []int{source}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, ai := range g.adj[u] {
				a := g.arcs[ai]
				if a.cap > eps && level[a.to] < 0 {
					level[a.to] = level[u] + 1
					queue = append(queue, a.to)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		for i := range iter {
			iter[i] = 0
		}
		for {
			pushed := dfsBlockingFlow(g, level, iter, source, sink, math.Inf(1), eps)
			if pushed <= eps {
				break
			}
			total += pushed
		}
	}

	obs.Logger().Debug("maxflow.Dinic done", zap.Float64("flow", total))
	return total, nil
}

// dfsBlockingFlow pushes flow along strictly-increasing-level arcs from
// u toward sink, bounded by available, advancing iter[u] whenever the
// current arc cannot contribute further (either saturated, off-level, or
// its subtree is exhausted).
func dfsBlockingFlow(g *Graph, level, iter []int, u, sink int, available, eps float64) float64 {
	if u == sink {
		return available
	}
	adj := g.adj[u]
	for iter[u] < len(adj) {
		ai := adj[iter[u]]
		a := &g.arcs[ai]
		if a.cap > eps && level[a.to] == level[u]+1 {
			send := available
			if a.cap < send {
				send = a.cap
			}
			pushed := dfsBlockingFlow(g, level, iter, a.to, sink, send, eps)
			if pushed > eps {
				a.cap -= pushed
				g.arcs[ai^1].cap += pushed
				return pushed
			}
			// This subtree is exhausted at the current level; never
			// revisit it in this blocking-flow pass.
			level[a.to] = -1
		}
		iter[u]++
	}
	return 0
}

// ReachableFrom returns, for every node, whether it is reachable from
// source in the current residual graph (arcs with cap > tolerance.Eps()).
// Used by Belts.Certifier to compute the cut certificate after an
// infeasible Dinic run.
func ReachableFrom(g *Graph, source int) []bool {
	eps := tolerance.Eps()
	n := g.NumNodes()
	visited := make([]bool, n)
	if source < 0 || source >= n {
		return visited
	}
	visited[source] = true
	queue := []int{source}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, ai := range g.adj[u] {
			a := g.arcs[ai]
			if a.cap > eps && !visited[a.to] {
				visited[a.to] = true
				queue = append(queue, a.to)
			}
		}
	}
	return visited
}
