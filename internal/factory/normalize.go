package factory

import "sort"

// Normalize implements Factory.Normalizer: it canonicalizes the wire
// document into a Model with sorted item/machine/recipe lists and
// companion index maps, computes each recipe's effective crafts-per-
// minute, and rejects structurally malformed input.
//
// Items, machines, and recipes are always iterated in sorted order,
// turning the wire document's unordered maps into canonical ordered
// vectors plus index maps so downstream tableau construction never
// depends on Go's randomized map iteration.
func Normalize(doc Document) (*Model, error) {
	if doc.Target.Item == "" {
		return nil, ErrMissingTarget
	}
	if doc.Target.Rate < 0 {
		return nil, ErrNegativeQuantity
	}

	machineNames := make([]string, 0, len(doc.Machines))
	for name := range doc.Machines {
		machineNames = append(machineNames, name)
	}
	sort.Strings(machineNames)

	machines := make([]Machine, len(machineNames))
	machineIndex := make(map[string]int, len(machineNames))
	for i, name := range machineNames {
		md := doc.Machines[name]
		if md.BaseSpeed <= 0 {
			return nil, ErrNonPositiveBaseSpeed
		}
		if md.Max < 0 {
			return nil, ErrNegativeQuantity
		}
		machines[i] = Machine{
			Name:      name,
			BaseSpeed: md.BaseSpeed,
			Max:       float64(md.Max),
			SpeedMod:  md.Modules.Speed,
			ProdMod:   md.Modules.Productivity,
		}
		machineIndex[name] = i
	}
	recipeNames := make([]string, 0, len(doc.Recipes))
	for name := range doc.Recipes {
		recipeNames = append(recipeNames, name)
	}
	sort.Strings(recipeNames)

	itemSet := map[string]struct{}{doc.Target.Item: {}}
	for _, rname := range recipeNames {
		rd := doc.Recipes[rname]
		for it, qty := range rd.In {
			if qty < 0 {
				return nil, &RecipeError{Recipe: rname, Err: ErrNegativeQuantity}
			}
			itemSet[it] = struct{}{}
		}
		for it, qty := range rd.Out {
			if qty < 0 {
				return nil, &RecipeError{Recipe: rname, Err: ErrNegativeQuantity}
			}
			itemSet[it] = struct{}{}
		}
	}
	for it := range doc.Raws {
		itemSet[it] = struct{}{}
	}

	items := make([]string, 0, len(itemSet))
	for it := range itemSet {
		items = append(items, it)
	}
	sort.Strings(items)
	itemIndex := make(map[string]int, len(items))
	for i, it := range items {
		itemIndex[it] = i
	}

	rawCaps := make(map[string]float64, len(doc.Raws))
	for it, rd := range doc.Raws {
		if rd.Cap < 0 {
			return nil, ErrNegativeQuantity
		}
		rawCaps[it] = rd.Cap
	}

	recipes := make([]Recipe, len(recipeNames))
	recipeIndex := make(map[string]int, len(recipeNames))
	col := 0
	for i, rname := range recipeNames {
		rd := doc.Recipes[rname]
		mIdx, ok := machineIndex[rd.Machine]
		if !ok {
			return nil, &RecipeError{Recipe: rname, Err: ErrUnknownMachine}
		}
		if rd.Time <= 0 {
			return nil, &RecipeError{Recipe: rname, Err: ErrNonPositiveTime}
		}
		m := machines[mIdx]
		effCPM := 0.0
		runnable := m.SpeedMultiplier() > 0
		if runnable {
			effCPM = m.BaseSpeed * m.SpeedMultiplier() * 60.0 / rd.Time
		}
		r := Recipe{
			Name:     rname,
			Machine:  mIdx,
			TimeS:    rd.Time,
			In:       rd.In,
			Out:      rd.Out,
			EffCPM:   effCPM,
			Runnable: runnable,
			Col:      -1,
		}
		if runnable {
			r.Col = col
			col++
		}
		recipes[i] = r
		recipeIndex[rname] = i
	}

	return &Model{
		TargetItem:   doc.Target.Item,
		TargetRate:   doc.Target.Rate,
		Items:        items,
		ItemIndex:    itemIndex,
		Machines:     machines,
		MachineIndex: machineIndex,
		Recipes:      recipes,
		RecipeIndex:  recipeIndex,
		RawCaps:      rawCaps,
		NumCols:      col,
	}, nil
}
