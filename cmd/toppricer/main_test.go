package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeInstance(t *testing.T, dir, name string) {
	t.Helper()
	raw := strings.Join([]string{
		"n 3",
		"m 1",
		"b 10",
		"0 0 0",
		"1 0 7",
		"2 0 0",
	}, "\n")
	if err := os.WriteFile(filepath.Join(dir, name), []byte(raw), 0o644); err != nil {
		t.Fatalf("writing instance: %v", err)
	}
}

func TestRunBranchAndPrice(t *testing.T) {
	dir := t.TempDir()
	writeInstance(t, dir, "p1.txt")
	out := filepath.Join(dir, "out.yaml")

	err := run([]string{"-n", "p1.txt", "-p", dir, "-o", out, "-a", "1"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	var rep map[string]any
	if err := yaml.Unmarshal(data, &rep); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rep["objective"].(float64) < 6.99 {
		t.Fatalf("objective = %v, want ~7", rep["objective"])
	}
}

func TestRunEnumerate(t *testing.T) {
	dir := t.TempDir()
	writeInstance(t, dir, "p1.txt")
	out := filepath.Join(dir, "out.yaml")

	if err := run([]string{"-n", "p1.txt", "-p", dir, "-o", out, "-a", "0"}); err != nil {
		t.Fatalf("run: %v", err)
	}
}
