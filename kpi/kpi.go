// Package kpi renders a solved instance's run statistics as YAML (spec §6
// "Output"), the way the teacher promotes structured data to a
// serialization format instead of ad hoc fmt.Printf tables.
package kpi

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Report is the full set of keys spec §6 requires in the output file.
// DualUpperBound is omitted from the YAML when zero (its presence is
// optional per spec; the root node's dual bound is the only value worth
// reporting, so solvers without a meaningful value should leave it unset).
type Report struct {
	Instance          string  `yaml:"instance"`
	Objective         float64 `yaml:"objective"`
	NumCreatedNodes   int     `yaml:"numCreatedNodes"`
	NumFeasibleNodes  int     `yaml:"numFeasibleNodes"`
	MaxParallelSolves int     `yaml:"maxParallelSolves"`
	TimeSeconds       float64 `yaml:"timeSeconds"`
	DualUpperBound    float64 `yaml:"dualUpperBound,omitempty"`
}

// WriteFile marshals r as YAML to path, creating or truncating it.
func WriteFile(path string, r Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Write(f, r)
}

// Write marshals r as YAML to w.
func Write(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	return enc.Encode(r)
}
