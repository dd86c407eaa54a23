package cliutil_test

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/katalvlaran/bnattract/attractor"
	"github.com/katalvlaran/bnattract/cliutil"
	"github.com/katalvlaran/bnattract/reduce"
)

func discardLogger() *log.Logger {
	return log.New(&bytes.Buffer{}, "", 0)
}

func TestRunPipeline_MutualInhibition_ReportsTwoAttractors(t *testing.T) {
	var out bytes.Buffer
	r := strings.NewReader("v1 := !v2\nv2 := !v1\n")

	code := cliutil.RunPipeline(r, &out, discardLogger(), cliutil.Identity, attractor.Find, cliutil.StaticPivot(attractor.PickVertexPivot))

	if code != 0 {
		t.Fatalf("RunPipeline() = %d, want 0", code)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d attractor lines, want 2:\n%s", len(lines), out.String())
	}
	for i, line := range lines {
		want := "Attractor #" + string(rune('1'+i)) + ": 1"
		if line != want {
			t.Errorf("line %d = %q, want %q", i, line, want)
		}
	}
}

func TestRunPipeline_MalformedInput_ReturnsExitCodeOne(t *testing.T) {
	var out bytes.Buffer
	r := strings.NewReader("not a valid line\n")

	code := cliutil.RunPipeline(r, &out, discardLogger(), cliutil.Identity, attractor.Find, cliutil.StaticPivot(attractor.PickVertexPivot))

	if code != 1 {
		t.Fatalf("RunPipeline() = %d, want 1", code)
	}
	if out.Len() != 0 {
		t.Errorf("expected no stdout output on parse failure, got %q", out.String())
	}
}

func TestRunPipeline_ReducedVariableCount_AnnotatesNodesUsed(t *testing.T) {
	var out bytes.Buffer
	// v1 never fires (update is always equal to its own value), so
	// Sequential retires it immediately. v2's pass then discards the
	// transient states {01, 10}, and v2 cannot fire in what is left
	// ({00, 11}), so it is retired too and no variable remains live.
	r := strings.NewReader("v1 := v1\nv2 := v1\n")

	code := cliutil.RunPipeline(r, &out, discardLogger(), reduce.Sequential, attractor.Find, cliutil.StaticPivot(attractor.PickVertexPivot))

	if code != 0 {
		t.Fatalf("RunPipeline() = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "(using 0 nodes)") {
		t.Errorf("output = %q, want an annotation of 0 remaining nodes", out.String())
	}
}
