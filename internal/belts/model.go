package belts

// Node is a canonicalized network vertex: its throughput cap, if any,
// applies to the split v_in->v_out arc built during normalization.
type Node struct {
	Name   string
	Cap    float64
	HasCap bool
}

// Edge is a canonicalized bounded arc, still indexed by input order so
// Belts.Certifier can emit flow in the same order it arrived.
type Edge struct {
	U, V     int
	Lo, Hi   float64
	InputPos int
}

// Model is the canonical, immutable form of a Document: sorted nodes
// with a companion index map, plus the edge list kept in original input
// order so the flow answer echoes edges in the order they arrived.
type Model struct {
	Nodes       []Node
	NodeIndex   map[string]int
	Edges       []Edge
	Supplies    map[int]float64
	Sink        int
	TotalSupply float64
}
