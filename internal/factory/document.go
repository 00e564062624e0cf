package factory

import (
	"encoding/json"
	"io"
)

// Document is the wire schema for a Factory problem instance. Field
// order here drives JSON encoding order for any value of this type that
// is re-marshaled; map fields are emitted with lexicographically sorted
// keys by encoding/json itself, so decoding then re-encoding a Document
// is stable regardless of the input's key order, with no bespoke
// sorting logic needed.
type Document struct {
	Target   TargetDoc             `json:"target"`
	Machines map[string]MachineDoc `json:"machines"`
	Recipes  map[string]RecipeDoc  `json:"recipes"`
	Raws     map[string]RawDoc     `json:"raws"`
}

// TargetDoc is the requested item and rate.
type TargetDoc struct {
	Item string  `json:"item"`
	Rate float64 `json:"rate"`
}

// MachineDoc describes one machine type's baseline speed, unit cap, and
// module configuration.
type MachineDoc struct {
	BaseSpeed float64    `json:"base_speed"`
	Max       int64      `json:"max"`
	Modules   ModulesDoc `json:"modules"`
}

// ModulesDoc is a machine type's additive speed and productivity
// modifiers.
type ModulesDoc struct {
	Speed        float64 `json:"speed"`
	Productivity float64 `json:"productivity"`
}

// RecipeDoc describes one recipe: its machine, craft time, and
// input/output multisets.
type RecipeDoc struct {
	Machine string             `json:"machine"`
	Time    float64            `json:"time"`
	In      map[string]float64 `json:"in"`
	Out     map[string]float64 `json:"out"`
}

// RawDoc is a raw item's external supply cap.
type RawDoc struct {
	Cap float64 `json:"cap"`
}

// DecodeDocument reads and parses one Document from r. JSON codec
// concerns are kept out of the solver core entirely; encoding/json is
// used here as the boundary layer (see SPEC_FULL.md for why no
// third-party JSON library is used).
func DecodeDocument(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// FeasibleOutput is the wire schema for a feasible Factory solve.
type FeasibleOutput struct {
	Feasible bool               `json:"feasible"`
	Rates    map[string]float64 `json:"rates"`
	Machines map[string]float64 `json:"machines"`
	RawUsage map[string]float64 `json:"raw_usage"`
}

// InfeasibleOutput is the wire schema for a well-formed infeasibility
// report.
type InfeasibleOutput struct {
	Feasible      bool               `json:"feasible"`
	MaxTargetRate float64            `json:"max_target_rate"`
	Rates         map[string]float64 `json:"rates"`
	Bottlenecks   []string           `json:"bottlenecks"`
}

// EncodeOutput writes v (a FeasibleOutput or InfeasibleOutput) to w as
// the single JSON document the tool contract requires.
func EncodeOutput(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
