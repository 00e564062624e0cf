// Command beltsolve reads one Bounded-Flow Belt Solver input document
// from standard input and writes exactly one output document to
// standard output: no flags, no diagnostic text on stdout, exit 0 for
// both feasible and well-formed infeasible answers, nonzero only on
// malformed input or solver failure.
package main

import (
	"os"

	"github.com/wattforge/foundry-core/internal/belts"
	"github.com/wattforge/foundry-core/internal/obs"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := obs.Logger()

	doc, err := belts.DecodeDocument(os.Stdin)
	if err != nil {
		logger.Error("beltsolve: malformed input", zap.Error(err))
		return 1
	}

	out, err := belts.Solve(doc)
	if err != nil {
		logger.Error("beltsolve: solve failed", zap.Error(err))
		return 1
	}

	if err := belts.EncodeOutput(os.Stdout, out); err != nil {
		logger.Error("beltsolve: failed to write output", zap.Error(err))
		return 1
	}
	return 0
}
