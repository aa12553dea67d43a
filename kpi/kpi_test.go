package kpi_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/toppricer/kpi"
	"gopkg.in/yaml.v3"
)

func TestWriteRoundTrips(t *testing.T) {
	r := kpi.Report{
		Instance:          "p1.top",
		Objective:         42.5,
		NumCreatedNodes:   10,
		NumFeasibleNodes:  6,
		MaxParallelSolves: 3,
		TimeSeconds:       1.25,
	}

	var buf strings.Builder
	if err := kpi.Write(&buf, r); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var got kpi.Report
	if err := yaml.Unmarshal([]byte(buf.String()), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != r {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", got, r)
	}
}

func TestWriteOmitsZeroDualUpperBound(t *testing.T) {
	r := kpi.Report{Instance: "x", Objective: 1}

	var buf strings.Builder
	if err := kpi.Write(&buf, r); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if strings.Contains(buf.String(), "dualUpperBound") {
		t.Fatalf("expected dualUpperBound to be omitted when zero, got:\n%s", buf.String())
	}
}
