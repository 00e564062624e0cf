package factory_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/wattforge/foundry-core/internal/factory"
)

type FactorySuite struct {
	suite.Suite
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(FactorySuite))
}

// TestSingleRecipe covers a single recipe from ore to A, target A at
// rate 1.
func (s *FactorySuite) TestSingleRecipe() {
	doc := factory.Document{
		Target: factory.TargetDoc{Item: "A", Rate: 1},
		Machines: map[string]factory.MachineDoc{
			"M": {BaseSpeed: 1, Max: 10},
		},
		Recipes: map[string]factory.RecipeDoc{
			"A_rec": {Machine: "M", Time: 60, In: map[string]float64{"ore": 1}, Out: map[string]float64{"A": 1}},
		},
		Raws: map[string]factory.RawDoc{
			"ore": {Cap: 1000},
		},
	}
	out, err := factory.Solve(doc)
	require.NoError(s.T(), err)
	feas, ok := out.(*factory.FeasibleOutput)
	require.True(s.T(), ok, "expected feasible output, got %#v", out)
	require.True(s.T(), feas.Feasible)
	require.InDelta(s.T(), 1.0, feas.Rates["A_rec"], 1e-6)
	require.InDelta(s.T(), 1.0, feas.Machines["M"], 1e-6)
	require.InDelta(s.T(), 1.0, feas.RawUsage["ore"], 1e-6)
}

// TestCyclicByproduct covers X->Y+Z, Z->X, target Y=1; both recipes
// must be nonzero so Z balances.
func (s *FactorySuite) TestCyclicByproduct() {
	doc := factory.Document{
		Target: factory.TargetDoc{Item: "Y", Rate: 1},
		Machines: map[string]factory.MachineDoc{
			"M": {BaseSpeed: 60, Max: 1000},
		},
		Recipes: map[string]factory.RecipeDoc{
			"r_xy": {Machine: "M", Time: 1, In: map[string]float64{"X": 1}, Out: map[string]float64{"Y": 1, "Z": 1}},
			"r_zx": {Machine: "M", Time: 1, In: map[string]float64{"Z": 1}, Out: map[string]float64{"X": 1}},
		},
		Raws: map[string]factory.RawDoc{},
	}
	out, err := factory.Solve(doc)
	require.NoError(s.T(), err)
	feas, ok := out.(*factory.FeasibleOutput)
	require.True(s.T(), ok, "expected feasible output, got %#v", out)
	require.Greater(s.T(), feas.Rates["r_xy"], 0.0)
	require.Greater(s.T(), feas.Rates["r_zx"], 0.0)
	require.InDelta(s.T(), feas.Rates["r_xy"], feas.Rates["r_zx"], 1e-6)
}

// TestMachineCapInfeasible raises the target past what max_machines can
// support.
func (s *FactorySuite) TestMachineCapInfeasible() {
	doc := factory.Document{
		Target: factory.TargetDoc{Item: "A", Rate: 1000},
		Machines: map[string]factory.MachineDoc{
			"M": {BaseSpeed: 1, Max: 10},
		},
		Recipes: map[string]factory.RecipeDoc{
			"A_rec": {Machine: "M", Time: 60, In: map[string]float64{"ore": 1}, Out: map[string]float64{"A": 1}},
		},
		Raws: map[string]factory.RawDoc{
			"ore": {Cap: 1e18},
		},
	}
	out, err := factory.Solve(doc)
	require.NoError(s.T(), err)
	infeas, ok := out.(*factory.InfeasibleOutput)
	require.True(s.T(), ok, "expected infeasible output, got %#v", out)
	require.False(s.T(), infeas.Feasible)
	require.InDelta(s.T(), 10.0, infeas.MaxTargetRate, 1e-6) // 10 machines * 1 cpm
	require.Contains(s.T(), infeas.Bottlenecks, "M_cap")
}

// TestTargetUnreachable: no recipe produces the target item at all.
func (s *FactorySuite) TestTargetUnreachable() {
	doc := factory.Document{
		Target: factory.TargetDoc{Item: "ghost", Rate: 1},
		Machines: map[string]factory.MachineDoc{
			"M": {BaseSpeed: 1, Max: 10},
		},
		Recipes: map[string]factory.RecipeDoc{
			"A_rec": {Machine: "M", Time: 60, In: map[string]float64{"ore": 1}, Out: map[string]float64{"A": 1}},
		},
		Raws: map[string]factory.RawDoc{
			"ore": {Cap: 100},
		},
	}
	out, err := factory.Solve(doc)
	require.NoError(s.T(), err)
	infeas, ok := out.(*factory.InfeasibleOutput)
	require.True(s.T(), ok)
	require.Equal(s.T(), 0.0, infeas.MaxTargetRate)
	require.Equal(s.T(), []string{"ghost_unreachable"}, infeas.Bottlenecks)
}

// TestTargetIsRawItem exercises a target that is itself a raw item.
func (s *FactorySuite) TestTargetIsRawItem() {
	doc := factory.Document{
		Target:   factory.TargetDoc{Item: "ore", Rate: 50},
		Machines: map[string]factory.MachineDoc{},
		Recipes:  map[string]factory.RecipeDoc{},
		Raws: map[string]factory.RawDoc{
			"ore": {Cap: 100},
		},
	}
	out, err := factory.Solve(doc)
	require.NoError(s.T(), err)
	feas, ok := out.(*factory.FeasibleOutput)
	require.True(s.T(), ok)
	require.InDelta(s.T(), 50.0, feas.RawUsage["ore"], 1e-9)

	doc.Target.Rate = 500
	out, err = factory.Solve(doc)
	require.NoError(s.T(), err)
	infeas, ok := out.(*factory.InfeasibleOutput)
	require.True(s.T(), ok)
	require.InDelta(s.T(), 100.0, infeas.MaxTargetRate, 1e-9)
	require.Equal(s.T(), []string{"ore_supply"}, infeas.Bottlenecks)
}

// TestUnknownMachineRejected covers Normalize's structural validation.
func (s *FactorySuite) TestUnknownMachineRejected() {
	doc := factory.Document{
		Target:   factory.TargetDoc{Item: "A", Rate: 1},
		Machines: map[string]factory.MachineDoc{},
		Recipes: map[string]factory.RecipeDoc{
			"A_rec": {Machine: "missing", Time: 60, In: map[string]float64{"ore": 1}, Out: map[string]float64{"A": 1}},
		},
	}
	_, err := factory.Solve(doc)
	require.ErrorIs(s.T(), err, factory.ErrUnknownMachine)
}
