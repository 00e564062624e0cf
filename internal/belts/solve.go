package belts

import (
	"fmt"

	"github.com/wattforge/foundry-core/internal/maxflow"
	"github.com/wattforge/foundry-core/internal/obs"
	"github.com/wattforge/foundry-core/internal/tolerance"
	"go.uber.org/zap"
)

// ErrMaxFlowFailure wraps an unexpected error from the underlying
// max-flow engine — always fatal, always a nonzero exit.
type ErrMaxFlowFailure struct {
	Err error
}

func (e *ErrMaxFlowFailure) Error() string {
	return fmt.Sprintf("belts: max-flow solver failed: %v", e.Err)
}

func (e *ErrMaxFlowFailure) Unwrap() error { return e.Err }

// Solve implements the full Belts pipeline: normalize, build the
// transformed network, run Belts.MaxFlow, and hand the result to
// Belts.Certifier. Returns exactly one of *FeasibleOutput /
// *InfeasibleOutput.
func Solve(doc Document) (interface{}, error) {
	model, err := Normalize(doc)
	if err != nil {
		return nil, err
	}
	obs.Logger().Info("belts.Solve normalized",
		zap.Int("nodes", len(model.Nodes)),
		zap.Int("edges", len(model.Edges)))

	net := buildNetwork(model)

	flowed, err := maxflow.Dinic(net.graph, net.source, net.sink)
	if err != nil {
		return nil, &ErrMaxFlowFailure{Err: err}
	}

	if flowed+tolerance.Eps() < net.sumPosDemand {
		out := certifyInfeasible(model, net, flowed)
		return &out, nil
	}

	flow := recoverFlow(model, net)
	if !verifyFeasible(model, net, flow) {
		// The transformed max-flow claims full saturation but the
		// recovered flow fails re-verification: treat as the same
		// infeasibility path rather than emit an unverified answer.
		out := certifyInfeasible(model, net, flowed)
		return &out, nil
	}

	return &FeasibleOutput{Feasible: true, Flow: flow}, nil
}
