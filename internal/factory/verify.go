package factory

import "github.com/wattforge/foundry-core/internal/tolerance"

// verifyFeasible implements Shared.Verifier for the Factory core: it
// re-checks item balance, the target rate, and every machine/raw cap
// against the solved x under the fixed tolerance, independent of
// whatever internal state the simplex tableau ended in. A Phase-1
// result is only trusted after passing this check.
func verifyFeasible(model *Model, red *Reduction, x []float64, targetRate float64) bool {
	for _, v := range x {
		if v < -tolerance.Eps() {
			return false
		}
	}

	for _, it := range model.Items {
		row := red.coef[model.ItemIndex[it]]
		net := 0.0
		for col, xr := range x {
			net += row[col] * xr
		}
		switch {
		case it == model.TargetItem:
			if !tolerance.EqualScaled(net, targetRate) {
				return false
			}
		case model.IsRaw(it):
			usage := -net
			if usage > 0 && !tolerance.LEScaled(usage, model.RawCaps[it]) {
				return false
			}
		default:
			if !tolerance.EqualScaled(net, 0) {
				return false
			}
		}
	}

	for name, usage := range red.MachineUsage(x) {
		mi := model.MachineIndex[name]
		if !tolerance.LEScaled(usage, model.Machines[mi].Max) {
			return false
		}
	}
	for it, usage := range red.RawUsage(x) {
		if !tolerance.LEScaled(usage, model.RawCaps[it]) {
			return false
		}
	}

	return true
}
