package config_test

import (
	"testing"

	"github.com/katalvlaran/toppricer/config"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := config.Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.InstanceName != "p2.2.a.txt" {
		t.Fatalf("InstanceName = %q, want p2.2.a.txt", cfg.InstanceName)
	}
	if cfg.TimeLimitSec != 3600 {
		t.Fatalf("TimeLimitSec = %d, want 3600", cfg.TimeLimitSec)
	}
	if cfg.Algorithm != config.AlgorithmBranchAndPrice {
		t.Fatalf("Algorithm = %v, want AlgorithmBranchAndPrice", cfg.Algorithm)
	}
}

func TestParseOverrides(t *testing.T) {
	cfg, err := config.Parse([]string{
		"-n", "p1.txt",
		"-p", "/data",
		"-o", "/tmp/out.yaml",
		"-t", "120",
		"-a", "0",
		"-f", "3",
		"-v", "2,5",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.InstanceName != "p1.txt" || cfg.InstancePath != "/data" || cfg.OutputPath != "/tmp/out.yaml" {
		t.Fatalf("unexpected path fields: %+v", cfg)
	}
	if cfg.TimeLimitSec != 120 {
		t.Fatalf("TimeLimitSec = %d, want 120", cfg.TimeLimitSec)
	}
	if cfg.Algorithm != config.AlgorithmEnumerate {
		t.Fatalf("Algorithm = %v, want AlgorithmEnumerate", cfg.Algorithm)
	}
	if cfg.FleetOverride != 3 {
		t.Fatalf("FleetOverride = %d, want 3", cfg.FleetOverride)
	}
	if len(cfg.RemoveVertices) != 2 || cfg.RemoveVertices[0] != 2 || cfg.RemoveVertices[1] != 5 {
		t.Fatalf("RemoveVertices = %v, want [2 5]", cfg.RemoveVertices)
	}
}

func TestParseRejectsBadTimeLimit(t *testing.T) {
	if _, err := config.Parse([]string{"-t", "0"}); err == nil {
		t.Fatalf("expected error for non-positive time limit")
	}
}

func TestParseRejectsBadAlgorithm(t *testing.T) {
	if _, err := config.Parse([]string{"-a", "7"}); err == nil {
		t.Fatalf("expected error for invalid algorithm value")
	}
}
