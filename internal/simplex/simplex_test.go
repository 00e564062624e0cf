package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/wattforge/foundry-core/internal/simplex"
)

// SimplexSuite exercises the two-phase tableau method against small,
// hand-verifiable linear programs.
type SimplexSuite struct {
	suite.Suite
}

func TestSimplexSuite(t *testing.T) {
	suite.Run(t, new(SimplexSuite))
}

// TestSingleEqualityFeasible: x = 5 is the only feasible point of
// x = 5, x >= 0, minimize x. Optimal value is 5.
func (s *SimplexSuite) TestSingleEqualityFeasible() {
	p := simplex.Problem{
		NumVars: 1,
		Cost:    []float64{1},
		Eq:      []simplex.Row{{Coeffs: []float64{1}, RHS: 5}},
	}
	res, err := simplex.Solve(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), simplex.StatusOptimal, res.Status)
	require.InDelta(s.T(), 5.0, res.X[0], 1e-6)
	require.InDelta(s.T(), 5.0, res.Objective, 1e-6)
}

// TestInequalityCapsObjective: minimize -x subject to x <= 3, x >= 0
// should push x to its cap of 3 (maximizing x).
func (s *SimplexSuite) TestInequalityCapsObjective() {
	p := simplex.Problem{
		NumVars: 1,
		Cost:    []float64{-1},
		Le:      []simplex.Row{{Coeffs: []float64{1}, RHS: 3}},
	}
	res, err := simplex.Solve(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), simplex.StatusOptimal, res.Status)
	require.InDelta(s.T(), 3.0, res.X[0], 1e-6)
}

// TestInfeasibleEqualitySystem: x + y = 1 and x + y = 2 cannot both hold.
func (s *SimplexSuite) TestInfeasibleEqualitySystem() {
	p := simplex.Problem{
		NumVars: 2,
		Cost:    []float64{1, 1},
		Eq: []simplex.Row{
			{Coeffs: []float64{1, 1}, RHS: 1},
			{Coeffs: []float64{1, 1}, RHS: 2},
		},
	}
	res, err := simplex.Solve(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), simplex.StatusInfeasible, res.Status)
}

// TestMachineLikeSystem mirrors the shape of a Factory reduction:
// one equality (target production) and one inequality (a capacity),
// minimizing total machine usage.
func (s *SimplexSuite) TestMachineLikeSystem() {
	// x_recipe crafts/min, eff = 2 crafts/min per machine, cap 10
	// machines -> x <= 20. Target: x = 12.
	p := simplex.Problem{
		NumVars: 1,
		Cost:    []float64{0.5}, // 1/eff
		Eq:      []simplex.Row{{Coeffs: []float64{1}, RHS: 12}},
		Le:      []simplex.Row{{Coeffs: []float64{0.5}, RHS: 10}},
	}
	res, err := simplex.Solve(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), simplex.StatusOptimal, res.Status)
	require.InDelta(s.T(), 12.0, res.X[0], 1e-6)
}

// TestMachineLikeSystemInfeasible pushes the target beyond the capacity
// row's reach: x = 30 but x <= 20 (cap 10 machines at eff 2).
func (s *SimplexSuite) TestMachineLikeSystemInfeasible() {
	p := simplex.Problem{
		NumVars: 1,
		Cost:    []float64{0.5},
		Eq:      []simplex.Row{{Coeffs: []float64{1}, RHS: 30}},
		Le:      []simplex.Row{{Coeffs: []float64{0.5}, RHS: 10}},
	}
	res, err := simplex.Solve(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), simplex.StatusInfeasible, res.Status)
}

// TestDimensionMismatch confirms the caller-bug path is a Go error, not
// a solver status.
func (s *SimplexSuite) TestDimensionMismatch() {
	p := simplex.Problem{
		NumVars: 2,
		Cost:    []float64{1, 1},
		Eq:      []simplex.Row{{Coeffs: []float64{1}, RHS: 1}},
	}
	_, err := simplex.Solve(p)
	require.ErrorIs(s.T(), err, simplex.ErrDimensionMismatch)
}
