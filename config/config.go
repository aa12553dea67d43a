// Package config defines the toppricer CLI surface (spec §6 "CLI
// surface"), grounded in the pflag-based flag style used across the
// example pack's CLI tools rather than the stdlib flag package.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Algorithm selects between the two solving strategies spec §6 names.
type Algorithm int

const (
	// AlgorithmEnumerate is the brute-force baseline (-a 0).
	AlgorithmEnumerate Algorithm = 0
	// AlgorithmBranchAndPrice is the column-generation/B&B solver (-a 1).
	AlgorithmBranchAndPrice Algorithm = 1
)

// Config holds the parsed CLI surface.
type Config struct {
	InstanceName   string
	InstancePath   string
	OutputPath     string
	TimeLimitSec   int
	Algorithm      Algorithm
	FleetOverride  int
	RemoveVertices []int
}

// Parse parses args (typically os.Args[1:]) into a Config, applying spec
// §6's defaults.
func Parse(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("toppricer", pflag.ContinueOnError)

	name := fs.StringP("name", "n", "p2.2.a.txt", "instance file name")
	path := fs.StringP("path", "p", ".", "instance folder path")
	out := fs.StringP("output", "o", "kpi.yaml", "output KPI file path (YAML)")
	timeLimit := fs.IntP("time-limit", "t", 3600, "time limit in seconds, must be positive")
	algo := fs.IntP("algorithm", "a", int(AlgorithmBranchAndPrice), "algorithm: 0 = enumerate, 1 = branch-and-price")
	fleet := fs.IntP("fleet", "f", 0, "adjusted fleet size for sensitivity analysis (0 = use instance file value)")
	remove := fs.IntSliceP("remove-vertex", "v", nil, "vertices to remove for sensitivity analysis (repeatable)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *timeLimit <= 0 {
		return nil, fmt.Errorf("config: -t time limit must be positive, got %d", *timeLimit)
	}
	if *algo != int(AlgorithmEnumerate) && *algo != int(AlgorithmBranchAndPrice) {
		return nil, fmt.Errorf("config: -a must be 0 or 1, got %d", *algo)
	}

	return &Config{
		InstanceName:   *name,
		InstancePath:   *path,
		OutputPath:     *out,
		TimeLimitSec:   *timeLimit,
		Algorithm:      Algorithm(*algo),
		FleetOverride:  *fleet,
		RemoveVertices: *remove,
	}, nil
}
