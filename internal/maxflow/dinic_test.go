package maxflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/wattforge/foundry-core/internal/maxflow"
)

type DinicSuite struct {
	suite.Suite
}

func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}

func (s *DinicSuite) TestSingleArc() {
	g := maxflow.NewGraph(2)
	a := g.AddNode("a")
	b := g.AddNode("b")
	_, err := g.AddArc(a, b, 7)
	require.NoError(s.T(), err)

	flow, err := maxflow.Dinic(g, a, b)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 7.0, flow, 1e-9)
}

func (s *DinicSuite) TestMultiPath() {
	g := maxflow.NewGraph(3)
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	_, _ = g.AddArc(a, b, 5)
	_, _ = g.AddArc(a, c, 4)
	_, _ = g.AddArc(c, b, 3)

	flow, err := maxflow.Dinic(g, a, b)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 8.0, flow, 1e-9)
}

func (s *DinicSuite) TestBottleneckChain() {
	g := maxflow.NewGraph(3)
	s0 := g.AddNode("s")
	m := g.AddNode("m")
	t0 := g.AddNode("t")
	_, _ = g.AddArc(s0, m, 10)
	_, _ = g.AddArc(m, t0, 3)

	flow, err := maxflow.Dinic(g, s0, t0)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 3.0, flow, 1e-9)
}

func (s *DinicSuite) TestUnreachableSink() {
	g := maxflow.NewGraph(2)
	a := g.AddNode("a")
	b := g.AddNode("b")

	flow, err := maxflow.Dinic(g, a, b)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 0.0, flow, 1e-9)
}

func (s *DinicSuite) TestReachableFromAfterSaturation() {
	g := maxflow.NewGraph(3)
	s0 := g.AddNode("s")
	m := g.AddNode("m")
	t0 := g.AddNode("t")
	_, _ = g.AddArc(s0, m, 3)
	_, _ = g.AddArc(m, t0, 3)

	_, err := maxflow.Dinic(g, s0, t0)
	require.NoError(s.T(), err)

	reach := maxflow.ReachableFrom(g, s0)
	require.True(s.T(), reach[s0])
	// m and t are reachable via the reverse residual arcs created by
	// saturating the forward path? No: forward arcs are fully saturated
	// (cap 0), so only the reverse residual arcs into s remain, meaning
	// m and t are not forward-reachable from s once fully saturated.
	require.False(s.T(), reach[m])
	require.False(s.T(), reach[t0])
}

func (s *DinicSuite) TestUnknownNode() {
	g := maxflow.NewGraph(1)
	a := g.AddNode("a")
	_, err := maxflow.Dinic(g, a, 99)
	require.ErrorIs(s.T(), err, maxflow.ErrSinkNotFound)
}
