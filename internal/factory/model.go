package factory

// Machine is a canonicalized machine type.
type Machine struct {
	Name      string
	BaseSpeed float64
	Max       float64
	SpeedMod  float64
	ProdMod   float64
}

// SpeedMultiplier is (1 + SpeedMod).
func (m Machine) SpeedMultiplier() float64 { return 1 + m.SpeedMod }

// Recipe is a canonicalized recipe. Col is its LP column index, or -1 if
// the recipe is unrunnable (SpeedMultiplier <= 0) and therefore excluded
// from the LP entirely, with x_r implicitly fixed at zero.
type Recipe struct {
	Name     string
	Machine  int // index into Model.Machines
	TimeS    float64
	In       map[string]float64
	Out      map[string]float64
	EffCPM   float64
	Runnable bool
	Col      int
}

// Model is the canonicalized form of a Factory Document: sorted
// item/machine/recipe lists with index maps, ready for
// Factory.LP_Reducer. All fields are immutable once Normalize returns.
type Model struct {
	TargetItem string
	TargetRate float64

	Items      []string
	ItemIndex  map[string]int

	Machines     []Machine
	MachineIndex map[string]int

	Recipes     []Recipe
	RecipeIndex map[string]int

	// RawCaps maps a raw item name to its supply cap. Only items present
	// here are treated as raw for LP_Reducer purposes.
	RawCaps map[string]float64

	// NumCols is the number of LP decision variables (runnable recipes).
	NumCols int
}

// IsRaw reports whether item is a declared raw item.
func (m *Model) IsRaw(item string) bool {
	_, ok := m.RawCaps[item]
	return ok
}
