package bnet_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/bnattract/bnet"
)

func TestParse_SelfNegation(t *testing.T) {
	net, err := bnet.Parse(strings.NewReader("v1 := !v1\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := net.VariableNames(), []string{"v1"}; len(got) != len(want) || got[0] != want[0] {
		t.Errorf("VariableNames() = %v, want %v", got, want)
	}

	g, err := net.ToSymbolicGraph()
	if err != nil {
		t.Fatalf("ToSymbolicGraph: %v", err)
	}
	if g.NumStates() != 2 {
		t.Errorf("NumStates() = %d, want 2", g.NumStates())
	}
}

func TestParse_MutualInhibitionWithParentheses(t *testing.T) {
	net, err := bnet.Parse(strings.NewReader(`
# two-node mutual inhibition
v1 := !v2
v2 := !(v1 & 1)
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if net.NumVariables() != 2 {
		t.Errorf("NumVariables() = %d, want 2", net.NumVariables())
	}
	if _, err := net.ToSymbolicGraph(); err != nil {
		t.Errorf("ToSymbolicGraph: %v", err)
	}
}

func TestParse_UninterpretedParameter(t *testing.T) {
	net, err := bnet.Parse(strings.NewReader("v1 := v1 & ?p\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := net.ParameterNames(), []string{"p"}; len(got) != 1 || got[0] != want[0] {
		t.Errorf("ParameterNames() = %v, want %v", got, want)
	}

	g, err := net.ToSymbolicGraph()
	if err != nil {
		t.Fatalf("ToSymbolicGraph: %v", err)
	}
	if g.NumColours() != 2 {
		t.Errorf("NumColours() = %d, want 2 (one uninterpreted parameter)", g.NumColours())
	}
}

func TestParse_RejectsEmptyInput(t *testing.T) {
	if _, err := bnet.Parse(strings.NewReader("\n# just a comment\n")); !errors.Is(err, bnet.ErrEmptyInput) {
		t.Errorf("Parse() error = %v, want ErrEmptyInput", err)
	}
}

func TestParse_RejectsDuplicateVariable(t *testing.T) {
	_, err := bnet.Parse(strings.NewReader("v1 := 1\nv1 := 0\n"))
	if !errors.Is(err, bnet.ErrDuplicateVariable) {
		t.Errorf("Parse() error = %v, want ErrDuplicateVariable", err)
	}
}

func TestParse_RejectsUnknownVariable(t *testing.T) {
	_, err := bnet.Parse(strings.NewReader("v1 := v2\n"))
	if !errors.Is(err, bnet.ErrUnknownVariable) {
		t.Errorf("Parse() error = %v, want ErrUnknownVariable", err)
	}
}

func TestParse_RejectsMalformedLine(t *testing.T) {
	_, err := bnet.Parse(strings.NewReader("this is not an assignment\n"))
	if !errors.Is(err, bnet.ErrSyntax) {
		t.Errorf("Parse() error = %v, want ErrSyntax", err)
	}
}

func TestParse_RejectsUnbalancedParentheses(t *testing.T) {
	_, err := bnet.Parse(strings.NewReader("v1 := (v1 & 1\n"))
	if !errors.Is(err, bnet.ErrSyntax) {
		t.Errorf("Parse() error = %v, want ErrSyntax", err)
	}
}
