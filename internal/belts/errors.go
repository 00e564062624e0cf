package belts

import "errors"

var (
	// ErrMissingSink is returned when the sink id is empty.
	ErrMissingSink = errors.New("belts: sink not specified")
	// ErrNegativeQuantity covers any negative lo, cap, or supply. A
	// negative hi (with lo >= 0) is reported as ErrInvertedBounds.
	ErrNegativeQuantity = errors.New("belts: negative quantity")
	// ErrInvertedBounds is returned when an edge's hi is below its lo.
	ErrInvertedBounds = errors.New("belts: edge hi < lo")
	// ErrSupplyDemandMismatch is returned when declared supplies do not
	// sum to the sink's declared demand.
	ErrSupplyDemandMismatch = errors.New("belts: sum(supplies) != sink demand")
)

// EdgeError attaches the offending edge's endpoints to a validation
// failure, mirroring factory.RecipeError's per-entity wrapping.
type EdgeError struct {
	U, V string
	Err  error
}

func (e *EdgeError) Error() string {
	return e.U + "->" + e.V + ": " + e.Err.Error()
}

func (e *EdgeError) Unwrap() error { return e.Err }
