package belts

import "github.com/wattforge/foundry-core/internal/tolerance"

// verifyFeasible implements Shared.Verifier for the Belts core: every
// original edge bound and every capped node's throughput is re-checked
// against the recovered flow, independent of the transformed network's
// internal state.
func verifyFeasible(m *Model, net *network, flow []FlowEntry) bool {
	balance := make([]float64, len(m.Nodes))
	throughput := make([]float64, len(m.Nodes))

	for i, e := range m.Edges {
		f := flow[i].F
		if !tolerance.GE(f, e.Lo) || !tolerance.LEScaled(f, e.Hi) {
			return false
		}
		balance[e.U] -= f
		balance[e.V] += f
		throughput[e.V] += f
	}
	for i, s := range m.Supplies {
		balance[i] += s
	}
	balance[m.Sink] -= m.TotalSupply

	for i, nd := range m.Nodes {
		if !tolerance.EqualScaled(balance[i], 0) {
			return false
		}
		if nd.HasCap && !tolerance.LEScaled(throughput[i], nd.Cap) {
			return false
		}
	}

	return true
}
