package belts

import (
	"encoding/json"
	"io"
)

// NodeDoc is the wire representation of a node's optional throughput
// cap.
type NodeDoc struct {
	Cap *float64 `json:"cap,omitempty"`
}

// EdgeDoc is the wire representation of one directed bounded arc.
type EdgeDoc struct {
	U  string  `json:"u"`
	V  string  `json:"v"`
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// SinkDoc names the unique sink and its declared demand.
type SinkDoc struct {
	ID     string  `json:"id"`
	Demand float64 `json:"demand"`
}

// Document is the full wire schema Belts.Normalizer ingests.
type Document struct {
	Nodes    map[string]NodeDoc `json:"nodes"`
	Edges    []EdgeDoc          `json:"edges"`
	Supplies map[string]float64 `json:"supplies"`
	Sink     SinkDoc            `json:"sink"`
}

// DecodeDocument reads and parses a Document from r, rejecting unknown
// fields (factory.DecodeDocument does not) — a malformed-input
// rejection is cheaper here than downstream confusion.
func DecodeDocument(r io.Reader) (Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// FlowEntry is one line of a feasible Belts answer, echoing the input
// edge's endpoints and the recovered flow on it.
type FlowEntry struct {
	U string  `json:"u"`
	V string  `json:"v"`
	F float64 `json:"f"`
}

// FeasibleOutput is emitted when a flow honoring every bound exists.
type FeasibleOutput struct {
	Feasible bool        `json:"feasible"`
	Flow     []FlowEntry `json:"flow"`
}

// EdgeRef names one endpoint pair, used for tight_edges.
type EdgeRef struct {
	U string `json:"u"`
	V string `json:"v"`
}

// Deficit carries the infeasibility certificate's numeric evidence.
type Deficit struct {
	DemandBalance float64   `json:"demand_balance"`
	TightNodes    []string  `json:"tight_nodes"`
	TightEdges    []EdgeRef `json:"tight_edges"`
}

// InfeasibleOutput is emitted when no assignment can honor every lower
// bound and node cap simultaneously.
type InfeasibleOutput struct {
	Feasible     bool     `json:"feasible"`
	CutReachable []string `json:"cut_reachable"`
	Deficit      Deficit  `json:"deficit"`
}

// EncodeOutput writes v (a *FeasibleOutput or *InfeasibleOutput) as the
// single JSON document standard output must contain.
func EncodeOutput(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
