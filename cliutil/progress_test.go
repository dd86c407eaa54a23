package cliutil_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/bnattract/cliutil"
)

func TestProgress_PadsOverShorterSubsequentLine(t *testing.T) {
	var buf bytes.Buffer
	p := cliutil.NewProgress(&buf)

	p.Report("reducing: 10000 states remain")
	p.Report("done")
	p.Done()

	out := buf.String()
	if !strings.HasPrefix(out, "\rreducing: 10000 states remain") {
		t.Fatalf("unexpected first report: %q", out)
	}
	secondStart := strings.Index(out[1:], "\r")
	if secondStart < 0 {
		t.Fatalf("expected a second carriage return in %q", out)
	}
	second := out[secondStart+1:]
	if !strings.HasPrefix(second, "\rdone") {
		t.Errorf("second report = %q, want it to start with \\rdone", second)
	}
	if len(second) < len("\rdone")+1 {
		t.Errorf("second report = %q, want trailing padding to erase the longer first line", second)
	}
}
