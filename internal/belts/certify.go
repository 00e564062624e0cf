package belts

import (
	"math"
	"sort"

	"github.com/wattforge/foundry-core/internal/maxflow"
	"github.com/wattforge/foundry-core/internal/tolerance"
)

// recoverFlow implements Belts.Certifier's feasible path: add each
// edge's lower bound back onto the flow carried by its transformed arc,
// in input order.
func recoverFlow(m *Model, net *network) []FlowEntry {
	flow := make([]FlowEntry, len(m.Edges))
	for i, e := range m.Edges {
		f := net.graph.ArcFlow(net.edgeArc[i]) + e.Lo
		if f < 0 {
			f = 0
		}
		flow[i] = FlowEntry{U: m.Nodes[e.U].Name, V: m.Nodes[e.V].Name, F: f}
	}
	return flow
}

// certifyInfeasible implements Belts.Certifier's infeasibility path:
// the residual-reachable set from s*, the tight internal node arcs
// within it, and the tight crossing edges.
func certifyInfeasible(m *Model, net *network, flowed float64) InfeasibleOutput {
	reachable := maxflow.ReachableFrom(net.graph, net.source)

	var cutReachable []string
	for i, nd := range m.Nodes {
		if reachable[net.inID[i]] {
			cutReachable = append(cutReachable, nd.Name)
		}
	}
	sort.Strings(cutReachable)

	var tightNodes []string
	for i, nd := range m.Nodes {
		if !nd.HasCap || !reachable[net.inID[i]] {
			continue
		}
		used := net.graph.ArcFlow(net.internalArc[i])
		if tolerance.SlackTight(used, nd.Cap) {
			tightNodes = append(tightNodes, nd.Name)
		}
	}
	sort.Strings(tightNodes)

	var tightEdges []EdgeRef
	for i, e := range m.Edges {
		if !reachable[net.outID[e.U]] || reachable[net.inID[e.V]] {
			continue
		}
		cap := math.Max(0, e.Hi-e.Lo)
		used := net.graph.ArcFlow(net.edgeArc[i])
		if tolerance.SlackTight(used, cap) {
			tightEdges = append(tightEdges, EdgeRef{U: m.Nodes[e.U].Name, V: m.Nodes[e.V].Name})
		}
	}
	sort.Slice(tightEdges, func(a, b int) bool {
		if tightEdges[a].U != tightEdges[b].U {
			return tightEdges[a].U < tightEdges[b].U
		}
		return tightEdges[a].V < tightEdges[b].V
	})

	if cutReachable == nil {
		cutReachable = []string{}
	}
	if tightNodes == nil {
		tightNodes = []string{}
	}
	if tightEdges == nil {
		tightEdges = []EdgeRef{}
	}

	return InfeasibleOutput{
		Feasible:     false,
		CutReachable: cutReachable,
		Deficit: Deficit{
			DemandBalance: net.sumPosDemand - flowed,
			TightNodes:    tightNodes,
			TightEdges:    tightEdges,
		},
	}
}
