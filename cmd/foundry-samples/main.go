// Command foundry-samples is a regression harness that walks a
// directory of fixture pairs and exercises both solver cores
// in-process, without shelling out to the built factorysolve/beltsolve
// binaries.
//
// Usage: foundry-samples [samples-dir]
//
// Expects samples-dir/factory/*.in.json (each optionally paired with a
// same-named *.out.json) and samples-dir/belts/*.in.json likewise.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wattforge/foundry-core/internal/belts"
	"github.com/wattforge/foundry-core/internal/factory"
	"github.com/wattforge/foundry-core/internal/obs"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	dir := "samples"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	fmt.Println("foundry-core sample runner")
	fmt.Printf("samples dir: %s\n\n", dir)

	failures := 0
	failures += runSuite(filepath.Join(dir, "factory"), decodeAndSolveFactory)
	failures += runSuite(filepath.Join(dir, "belts"), decodeAndSolveBelts)

	fmt.Println()
	if failures > 0 {
		fmt.Printf("%d sample(s) failed\n", failures)
		return 1
	}
	fmt.Println("all samples passed")
	return 0
}

type solveFunc func([]byte) (interface{}, error)

func runSuite(dir string, solve solveFunc) int {
	entries, err := filepath.Glob(filepath.Join(dir, "*.in.json"))
	if err != nil {
		obs.Logger().Error("foundry-samples: glob failed", zap.String("dir", dir), zap.Error(err))
		return 1
	}
	sort.Strings(entries)

	failures := 0
	for _, inPath := range entries {
		name := strings.TrimSuffix(filepath.Base(inPath), ".in.json")
		if !runOne(dir, name, inPath, solve) {
			failures++
		}
	}
	return failures
}

func runOne(dir, name, inPath string, solve solveFunc) bool {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Printf("FAIL %s: reading input: %v\n", name, err)
		return false
	}

	out, err := solve(raw)
	if err != nil {
		fmt.Printf("FAIL %s: solve error: %v\n", name, err)
		return false
	}

	got, err := json.Marshal(out)
	if err != nil {
		fmt.Printf("FAIL %s: encoding output: %v\n", name, err)
		return false
	}

	outPath := filepath.Join(dir, name+".out.json")
	want, err := os.ReadFile(outPath)
	if err != nil {
		fmt.Printf("SKIP %s: no expected output, produced:\n%s\n", name, prettyPrint(got))
		return true
	}

	if !jsonEqual(got, want) {
		fmt.Printf("FAIL %s: output mismatch\n  got:  %s\n  want: %s\n", name, string(got), string(bytes.TrimSpace(want)))
		return false
	}

	fmt.Printf("PASS %s\n", name)
	return true
}

func decodeAndSolveFactory(raw []byte) (interface{}, error) {
	doc, err := factory.DecodeDocument(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return factory.Solve(doc)
}

func decodeAndSolveBelts(raw []byte) (interface{}, error) {
	doc, err := belts.DecodeDocument(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return belts.Solve(doc)
}

// jsonEqual compares two JSON documents by structure, not byte layout,
// since indentation and key order in a hand-authored *.out.json fixture
// need not match json.Marshal's canonical field order exactly.
func jsonEqual(a, b []byte) bool {
	var va, vb interface{}
	if err := json.Unmarshal(a, &va); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &vb); err != nil {
		return false
	}
	na, _ := json.Marshal(va)
	nb, _ := json.Marshal(vb)
	return bytes.Equal(na, nb)
}

func prettyPrint(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
