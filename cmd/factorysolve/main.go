// Command factorysolve reads one Factory Steady-State Solver input
// document from standard input and writes exactly one output document
// to standard output: no flags, no diagnostic text on stdout, exit 0
// for both feasible and well-formed infeasible answers, nonzero only on
// malformed input or solver failure.
package main

import (
	"errors"
	"os"

	"github.com/wattforge/foundry-core/internal/factory"
	"github.com/wattforge/foundry-core/internal/obs"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := obs.Logger()

	doc, err := factory.DecodeDocument(os.Stdin)
	if err != nil {
		logger.Error("factorysolve: malformed input", zap.Error(err))
		return 1
	}

	out, err := factory.Solve(doc)
	if err != nil {
		var failure *factory.ErrSolverFailure
		if errors.As(err, &failure) {
			logger.Error("factorysolve: solver failure", zap.String("phase", failure.Phase), zap.Stringer("status", failure.Status))
		} else {
			logger.Error("factorysolve: solve failed", zap.Error(err))
		}
		return 1
	}

	if err := factory.EncodeOutput(os.Stdout, out); err != nil {
		logger.Error("factorysolve: failed to write output", zap.Error(err))
		return 1
	}
	return 0
}
