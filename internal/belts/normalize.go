package belts

import (
	"sort"

	"github.com/wattforge/foundry-core/internal/tolerance"
)

// Normalize implements Belts.Normalizer's first responsibility: turn
// the wire document into a canonical Model with a sorted node vector
// and companion index map, and reject structurally malformed input up
// front.
//
// The node set is assembled from four sources — declared nodes, edge
// endpoints, supply ids, and the sink — before sorting, so a node that
// only appears as an edge endpoint still gets a stable index.
func Normalize(doc Document) (*Model, error) {
	if doc.Sink.ID == "" {
		return nil, ErrMissingSink
	}

	nodeSet := map[string]struct{}{doc.Sink.ID: {}}
	for name := range doc.Nodes {
		nodeSet[name] = struct{}{}
	}
	for _, e := range doc.Edges {
		nodeSet[e.U] = struct{}{}
		nodeSet[e.V] = struct{}{}
	}
	for name := range doc.Supplies {
		nodeSet[name] = struct{}{}
	}

	names := make([]string, 0, len(nodeSet))
	for name := range nodeSet {
		names = append(names, name)
	}
	sort.Strings(names)

	nodes := make([]Node, len(names))
	nodeIndex := make(map[string]int, len(names))
	for i, name := range names {
		nd := doc.Nodes[name]
		if nd.Cap != nil {
			if *nd.Cap < 0 {
				return nil, ErrNegativeQuantity
			}
			nodes[i] = Node{Name: name, Cap: *nd.Cap, HasCap: true}
		} else {
			nodes[i] = Node{Name: name}
		}
		nodeIndex[name] = i
	}

	edges := make([]Edge, len(doc.Edges))
	for i, e := range doc.Edges {
		if e.Lo < 0 {
			return nil, &EdgeError{U: e.U, V: e.V, Err: ErrNegativeQuantity}
		}
		if e.Hi+tolerance.Eps() < e.Lo {
			return nil, &EdgeError{U: e.U, V: e.V, Err: ErrInvertedBounds}
		}
		edges[i] = Edge{
			U:        nodeIndex[e.U],
			V:        nodeIndex[e.V],
			Lo:       e.Lo,
			Hi:       e.Hi,
			InputPos: i,
		}
	}

	supplies := make(map[int]float64, len(doc.Supplies))
	total := 0.0
	for name, qty := range doc.Supplies {
		if qty < 0 {
			return nil, ErrNegativeQuantity
		}
		supplies[nodeIndex[name]] = qty
		total += qty
	}
	if !tolerance.EqualScaled(total, doc.Sink.Demand) {
		return nil, ErrSupplyDemandMismatch
	}

	return &Model{
		Nodes:       nodes,
		NodeIndex:   nodeIndex,
		Edges:       edges,
		Supplies:    supplies,
		Sink:        nodeIndex[doc.Sink.ID],
		TotalSupply: total,
	}, nil
}
