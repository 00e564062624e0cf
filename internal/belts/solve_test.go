package belts_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/wattforge/foundry-core/internal/belts"
)

type BeltsSuite struct {
	suite.Suite
}

func TestBeltsSuite(t *testing.T) {
	suite.Run(t, new(BeltsSuite))
}

func flowLookup(flow []belts.FlowEntry, u, v string) (float64, bool) {
	for _, f := range flow {
		if f.U == u && f.V == v {
			return f.F, true
		}
	}
	return 0, false
}

// TestTrivialChain covers s->a->t, supply s=5, demand t=5.
func (s *BeltsSuite) TestTrivialChain() {
	demand := 5.0
	doc := belts.Document{
		Nodes: map[string]belts.NodeDoc{},
		Edges: []belts.EdgeDoc{
			{U: "s", V: "a", Lo: 0, Hi: 10},
			{U: "a", V: "t", Lo: 0, Hi: 10},
		},
		Supplies: map[string]float64{"s": 5},
		Sink:     belts.SinkDoc{ID: "t", Demand: demand},
	}
	out, err := belts.Solve(doc)
	require.NoError(s.T(), err)
	feas, ok := out.(*belts.FeasibleOutput)
	require.True(s.T(), ok, "expected feasible output, got %#v", out)
	f1, ok := flowLookup(feas.Flow, "s", "a")
	require.True(s.T(), ok)
	require.InDelta(s.T(), 5.0, f1, 1e-6)
	f2, ok := flowLookup(feas.Flow, "a", "t")
	require.True(s.T(), ok)
	require.InDelta(s.T(), 5.0, f2, 1e-6)
}

// TestLowerBoundInfeasibility covers a->t with lo=3 but supply only 2.
func (s *BeltsSuite) TestLowerBoundInfeasibility() {
	doc := belts.Document{
		Nodes: map[string]belts.NodeDoc{},
		Edges: []belts.EdgeDoc{
			{U: "s", V: "a", Lo: 0, Hi: 10},
			{U: "a", V: "t", Lo: 3, Hi: 10},
		},
		Supplies: map[string]float64{"s": 2},
		Sink:     belts.SinkDoc{ID: "t", Demand: 2},
	}
	out, err := belts.Solve(doc)
	require.NoError(s.T(), err)
	infeas, ok := out.(*belts.InfeasibleOutput)
	require.True(s.T(), ok, "expected infeasible output, got %#v", out)
	require.False(s.T(), infeas.Feasible)
	require.GreaterOrEqual(s.T(), infeas.Deficit.DemandBalance, 1.0-1e-6)
	tightOrCut := false
	for _, e := range infeas.Deficit.TightEdges {
		if e.U == "a" && e.V == "t" {
			tightOrCut = true
		}
	}
	for _, n := range infeas.CutReachable {
		if n == "a" {
			tightOrCut = true
		}
	}
	require.True(s.T(), tightOrCut)
}

// TestNodeCap covers cap(a)=1 but supply s=5.
func (s *BeltsSuite) TestNodeCap() {
	one := 1.0
	doc := belts.Document{
		Nodes: map[string]belts.NodeDoc{
			"a": {Cap: &one},
		},
		Edges: []belts.EdgeDoc{
			{U: "s", V: "a", Lo: 0, Hi: 10},
			{U: "a", V: "t", Lo: 0, Hi: 10},
		},
		Supplies: map[string]float64{"s": 5},
		Sink:     belts.SinkDoc{ID: "t", Demand: 5},
	}
	out, err := belts.Solve(doc)
	require.NoError(s.T(), err)
	infeas, ok := out.(*belts.InfeasibleOutput)
	require.True(s.T(), ok, "expected infeasible output, got %#v", out)
	require.False(s.T(), infeas.Feasible)
	require.Equal(s.T(), []string{"a"}, infeas.Deficit.TightNodes)
}

// TestSupplyDemandMismatchRejected covers Normalize's structural
// validation.
func (s *BeltsSuite) TestSupplyDemandMismatchRejected() {
	doc := belts.Document{
		Edges:    []belts.EdgeDoc{{U: "s", V: "t", Lo: 0, Hi: 10}},
		Supplies: map[string]float64{"s": 5},
		Sink:     belts.SinkDoc{ID: "t", Demand: 4},
	}
	_, err := belts.Solve(doc)
	require.ErrorIs(s.T(), err, belts.ErrSupplyDemandMismatch)
}

// TestInvertedBoundsRejected covers hi < lo rejection.
func (s *BeltsSuite) TestInvertedBoundsRejected() {
	doc := belts.Document{
		Edges:    []belts.EdgeDoc{{U: "s", V: "t", Lo: 5, Hi: 1}},
		Supplies: map[string]float64{"s": 5},
		Sink:     belts.SinkDoc{ID: "t", Demand: 5},
	}
	_, err := belts.Solve(doc)
	require.ErrorIs(s.T(), err, belts.ErrInvertedBounds)
}
