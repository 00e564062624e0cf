package belts

import (
	"math"
	"sort"

	"github.com/wattforge/foundry-core/internal/maxflow"
	"github.com/wattforge/foundry-core/internal/tolerance"
)

// unboundedCap stands in for an uncapped node's internal arc.
const unboundedCap = 1e18

// network is the transformed max-flow instance built from a Model:
// every node split into v_in/v_out, every edge's lower bound folded
// into a per-node imbalance, and a super-source/super-sink pair closing
// the circulation.
type network struct {
	graph        *maxflow.Graph
	inID, outID  []int // per node index
	internalArc  []int // per node index, the v_in->v_out arc
	edgeArc      []int // per Model.Edges index, the transformed u_out->v_in arc
	source, sink int
	sumPosDemand float64
}

// buildNetwork implements Belts.Normalizer's node-splitting and
// lower-bound elimination, then Belts.MaxFlow's super-source/sink
// construction, over the arc-arena internal/maxflow.Graph.
func buildNetwork(m *Model) *network {
	n := len(m.Nodes)
	g := maxflow.NewGraph(2*n + 2)

	inID := make([]int, n)
	outID := make([]int, n)
	internalArc := make([]int, n)
	for i, nd := range m.Nodes {
		inID[i] = g.AddNode(nd.Name + "$in")
		outID[i] = g.AddNode(nd.Name + "$out")
		cap := unboundedCap
		if nd.HasCap {
			cap = nd.Cap
		}
		arcIdx, _ := g.AddArc(inID[i], outID[i], cap)
		internalArc[i] = arcIdx
	}

	// Edges are added to the graph in lexicographic order by (from, to,
	// lo, hi), independent of the order they appeared in the input
	// document, so the BFS/DFS traversal Dinic runs is deterministic.
	order := make([]int, len(m.Edges))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ea, eb := m.Edges[order[a]], m.Edges[order[b]]
		na, nb := m.Nodes[ea.U].Name, m.Nodes[eb.U].Name
		if na != nb {
			return na < nb
		}
		na, nb = m.Nodes[ea.V].Name, m.Nodes[eb.V].Name
		if na != nb {
			return na < nb
		}
		if ea.Lo != eb.Lo {
			return ea.Lo < eb.Lo
		}
		return ea.Hi < eb.Hi
	})

	demand := make([]float64, n)
	edgeArc := make([]int, len(m.Edges))
	for _, idx := range order {
		e := m.Edges[idx]
		cap := math.Max(0, e.Hi-e.Lo)
		arcIdx, _ := g.AddArc(outID[e.U], inID[e.V], cap)
		edgeArc[idx] = arcIdx
		demand[e.U] -= e.Lo
		demand[e.V] += e.Lo
	}

	// Fixed supplies and the sink's matching demand fold into the same
	// imbalance array as the lower-bound excess: a supply node behaves
	// like the target of a forced external inflow (d += supply), the
	// sink like the source of a forced external outflow (d -= demand).
	for i, s := range m.Supplies {
		demand[i] += s
	}
	demand[m.Sink] -= m.TotalSupply

	sstar := g.AddNode("$s*")
	tstar := g.AddNode("$t*")
	sumPos := 0.0
	for i := 0; i < n; i++ {
		d := demand[i]
		switch {
		case d > tolerance.Eps():
			g.AddArc(sstar, inID[i], d)
			sumPos += d
		case d < -tolerance.Eps():
			g.AddArc(outID[i], tstar, -d)
		}
	}

	return &network{
		graph:        g,
		inID:         inID,
		outID:        outID,
		internalArc:  internalArc,
		edgeArc:      edgeArc,
		source:       sstar,
		sink:         tstar,
		sumPosDemand: sumPos,
	}
}
