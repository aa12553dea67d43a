package topio_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/toppricer/topio"
)

func TestParseBasicInstance(t *testing.T) {
	raw := strings.Join([]string{
		"n 3",
		"m 2",
		"b 10",
		"0 0 0",
		"3 4 7",
		"6 8 0",
	}, "\n")

	// parseReader is unexported; exercise it through a temp file via Parse.
	dir := t.TempDir()
	writeFile(t, dir, "tiny.top", raw)

	inst, err := topio.Parse(dir, "tiny.top", 0)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if inst.N() != 3 {
		t.Fatalf("N() = %d, want 3", inst.N())
	}
	if inst.FleetSize() != 2 {
		t.Fatalf("FleetSize() = %d, want 2", inst.FleetSize())
	}
	if inst.Source() != 0 || inst.Dest() != 2 {
		t.Fatalf("source/dest = %d/%d, want 0/2", inst.Source(), inst.Dest())
	}
	if inst.Prize(1) != 7 {
		t.Fatalf("Prize(1) = %v, want 7", inst.Prize(1))
	}
	if !inst.Graph().HasArc(0, 1) {
		t.Fatalf("expected arc 0->1 within budget")
	}
	want := math.Hypot(3, 4)
	if math.Abs(inst.Graph().At(0, 1)-want) > 1e-9 {
		t.Fatalf("At(0,1) = %v, want %v", inst.Graph().At(0, 1), want)
	}
}

func TestParseFleetOverride(t *testing.T) {
	raw := strings.Join([]string{
		"n 3",
		"m 1",
		"b 10",
		"0 0 0",
		"1 0 5",
		"2 0 0",
	}, "\n")

	dir := t.TempDir()
	writeFile(t, dir, "tiny.top", raw)

	inst, err := topio.Parse(dir, "tiny.top", 4)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if inst.FleetSize() != 4 {
		t.Fatalf("FleetSize() = %d, want 4 (override)", inst.FleetSize())
	}
}

func TestParseRejectsMismatchedVertexCount(t *testing.T) {
	raw := strings.Join([]string{
		"n 3",
		"m 1",
		"b 10",
		"0 0 0",
		"1 0 5",
	}, "\n")

	dir := t.TempDir()
	writeFile(t, dir, "bad.top", raw)

	if _, err := topio.Parse(dir, "bad.top", 0); err == nil {
		t.Fatalf("expected error for vertex-count mismatch")
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
