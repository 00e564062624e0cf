package factory

import (
	"fmt"
	"sort"

	"github.com/wattforge/foundry-core/internal/obs"
	"github.com/wattforge/foundry-core/internal/simplex"
	"github.com/wattforge/foundry-core/internal/tolerance"
	"go.uber.org/zap"
)

// ErrSolverFailure wraps a non-terminal simplex status — always a fatal,
// nonzero-exit condition.
type ErrSolverFailure struct {
	Phase  string
	Status simplex.Status
}

func (e *ErrSolverFailure) Error() string {
	return fmt.Sprintf("factory: %s solver returned non-terminal status %s", e.Phase, e.Status)
}

// Solve implements Factory.TwoPhaseSolver end to end: normalize, reduce,
// run Phase 1 (feasibility at the requested target rate), and on
// infeasibility run Phase 2 (maximize achievable target rate) to name
// bottlenecks. Returns exactly one of *FeasibleOutput / *InfeasibleOutput.
func Solve(doc Document) (interface{}, error) {
	model, err := Normalize(doc)
	if err != nil {
		return nil, err
	}
	obs.Logger().Info("factory.Solve normalized",
		zap.Int("items", len(model.Items)),
		zap.Int("recipes", len(model.Recipes)),
		zap.Int("machines", len(model.Machines)))

	// Edge case: the target item is itself a raw item. Feed it straight
	// from external supply, bypassing the LP entirely, because the
	// general reduction has no way to express "satisfy demand from
	// unmodeled external supply" for an item that also carries a
	// fixed-equality target row.
	if cap, ok := model.RawCaps[model.TargetItem]; ok {
		return solveRawTarget(model, cap), nil
	}

	red := Reduce(model)

	if !red.ProducesTarget() {
		return infeasibleUnreachable(model), nil
	}

	feasProblem := red.BuildFeasibility(model.TargetRate)
	feasRes, err := simplex.Solve(feasProblem)
	if err != nil {
		return nil, err
	}
	switch feasRes.Status {
	case simplex.StatusOptimal:
		if verifyFeasible(model, red, feasRes.X, model.TargetRate) {
			return buildFeasibleOutput(model, red, feasRes.X), nil
		}
		// Falls through to Phase 2: the verifier is the final word on
		// feasibility, not the simplex status alone.
	case simplex.StatusInfeasible:
		// expected path into Phase 2
	default:
		return nil, &ErrSolverFailure{Phase: "phase1", Status: feasRes.Status}
	}

	maxProblem := red.BuildMaximize()
	maxRes, err := simplex.Solve(maxProblem)
	if err != nil {
		return nil, err
	}
	if maxRes.Status != simplex.StatusOptimal {
		return nil, &ErrSolverFailure{Phase: "phase2", Status: maxRes.Status}
	}

	x := maxRes.X[:model.NumCols]
	maxT := maxRes.X[model.NumCols]
	bottlenecks := identifyBottlenecks(model, red, x)

	return &InfeasibleOutput{
		Feasible:      false,
		MaxTargetRate: roundTiny(maxT),
		Rates:         ratesFromX(model, x),
		Bottlenecks:   bottlenecks,
	}, nil
}

func solveRawTarget(model *Model, cap float64) interface{} {
	rates := make(map[string]float64, len(model.Recipes))
	for _, r := range model.Recipes {
		rates[r.Name] = 0
	}
	if tolerance.LE(model.TargetRate, cap) {
		rawUsage := make(map[string]float64, len(model.RawCaps))
		for it := range model.RawCaps {
			rawUsage[it] = 0
		}
		rawUsage[model.TargetItem] = model.TargetRate
		machines := make(map[string]float64, len(model.Machines))
		return &FeasibleOutput{
			Feasible: true,
			Rates:    rates,
			Machines: machines,
			RawUsage: rawUsage,
		}
	}
	return &InfeasibleOutput{
		Feasible:      false,
		MaxTargetRate: cap,
		Rates:         rates,
		Bottlenecks:   []string{model.TargetItem + "_supply"},
	}
}

func infeasibleUnreachable(model *Model) interface{} {
	rates := make(map[string]float64, len(model.Recipes))
	for _, r := range model.Recipes {
		rates[r.Name] = 0
	}
	return &InfeasibleOutput{
		Feasible:      false,
		MaxTargetRate: 0,
		Rates:         rates,
		Bottlenecks:   []string{model.TargetItem + "_unreachable"},
	}
}

// identifyBottlenecks names every machine-cap and raw-supply row whose
// slack is within tolerance of zero at the Phase-2 solution, machines
// lexicographic before raws lexicographic.
func identifyBottlenecks(model *Model, red *Reduction, x []float64) []string {
	var names []string

	machineUsage := red.MachineUsage(x)
	machineNames := make([]string, 0, len(machineUsage))
	for name := range machineUsage {
		machineNames = append(machineNames, name)
	}
	sort.Strings(machineNames)
	for _, name := range machineNames {
		mi := model.MachineIndex[name]
		if tolerance.SlackTight(machineUsage[name], model.Machines[mi].Max) {
			names = append(names, name+"_cap")
		}
	}

	rawUsage := red.RawUsage(x)
	rawNames := make([]string, 0, len(rawUsage))
	for name := range rawUsage {
		rawNames = append(rawNames, name)
	}
	sort.Strings(rawNames)
	for _, name := range rawNames {
		if tolerance.SlackTight(rawUsage[name], model.RawCaps[name]) {
			names = append(names, name+"_supply")
		}
	}

	return names
}

func ratesFromX(model *Model, x []float64) map[string]float64 {
	rates := make(map[string]float64, len(model.Recipes))
	for _, r := range model.Recipes {
		if r.Col >= 0 {
			rates[r.Name] = roundTiny(x[r.Col])
		} else {
			rates[r.Name] = 0
		}
	}
	return rates
}

func buildFeasibleOutput(model *Model, red *Reduction, x []float64) *FeasibleOutput {
	return &FeasibleOutput{
		Feasible: true,
		Rates:    ratesFromX(model, x),
		Machines: roundMap(red.MachineUsage(x)),
		RawUsage: roundMap(red.RawUsage(x)),
	}
}

func roundMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = roundTiny(v)
	}
	return out
}

// roundTiny rounds magnitudes below tolerance to exactly zero so
// simplex's floating-point noise never leaks into the reported answer.
func roundTiny(v float64) float64 {
	if tolerance.IsZero(v) {
		return 0
	}
	return v
}
