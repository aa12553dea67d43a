// Command toppricer runs the Euclidean Team Orienteering Problem solver
// over one instance file and writes a YAML KPI report (spec §6 "CLI
// surface" / "Output").
package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/toppricer/bbengine"
	"github.com/katalvlaran/toppricer/bbnode"
	"github.com/katalvlaran/toppricer/branch"
	"github.com/katalvlaran/toppricer/colgen"
	"github.com/katalvlaran/toppricer/config"
	"github.com/katalvlaran/toppricer/enumerate"
	"github.com/katalvlaran/toppricer/instance"
	"github.com/katalvlaran/toppricer/kpi"
	"github.com/katalvlaran/toppricer/mastermodel"
	"github.com/katalvlaran/toppricer/solverapi"
	"github.com/katalvlaran/toppricer/topio"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Println("toppricer:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Parse(args)
	if err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}

	inst, err := topio.Parse(cfg.InstancePath, cfg.InstanceName, cfg.FleetOverride)
	if err != nil {
		return fmt.Errorf("loading instance: %w", err)
	}

	forbidden := make(map[int]struct{}, len(cfg.RemoveVertices))
	for _, v := range cfg.RemoveVertices {
		if err := inst.ValidateVertex(v); err != nil {
			return fmt.Errorf("removing vertex %d: %w", v, err)
		}
		forbidden[v] = struct{}{}
	}

	start := time.Now()

	var report kpi.Report
	switch cfg.Algorithm {
	case config.AlgorithmEnumerate:
		report, err = runEnumerate(inst, forbidden)
	default:
		report, err = runBranchAndPrice(inst, forbidden, cfg)
	}
	if err != nil {
		return err
	}

	report.Instance = cfg.InstanceName
	report.TimeSeconds = time.Since(start).Seconds()

	if err := kpi.WriteFile(cfg.OutputPath, report); err != nil {
		return fmt.Errorf("writing KPI report: %w", err)
	}

	log.Printf("toppricer: objective=%.3f nodes=%d feasible=%d parallel=%d time=%.2fs\n",
		report.Objective, report.NumCreatedNodes, report.NumFeasibleNodes, report.MaxParallelSolves, report.TimeSeconds)

	return nil
}

func runEnumerate(inst *instance.Instance, forbidden map[int]struct{}) (kpi.Report, error) {
	reduced := inst.Graph().Reduced(forbidden, nil)
	restricted, err := instance.New(reduced, prizesOf(inst), inst.Source(), inst.Dest(), inst.FleetSize(), inst.Budget())
	if err != nil {
		return kpi.Report{}, fmt.Errorf("applying vertex removal: %w", err)
	}

	routes := enumerate.Run(restricted)
	obj := 0.0
	for _, r := range routes {
		obj += r.Score
	}

	return kpi.Report{
		Objective:         obj,
		NumCreatedNodes:   1,
		NumFeasibleNodes:  1,
		MaxParallelSolves: 1,
	}, nil
}

func runBranchAndPrice(inst *instance.Instance, forbidden map[int]struct{}, cfg *config.Config) (kpi.Report, error) {
	params := instance.DefaultParameters(
		instance.WithTimeLimit(time.Duration(cfg.TimeLimitSec) * time.Second),
	)

	var nextID int64
	newID := func() int64 { return atomic.AddInt64(&nextID, 1) }

	root := bbnode.New(0, -1, math.Inf(1),
		map[int]struct{}{}, map[[2]int]struct{}{},
		forbidden, map[[2]int]struct{}{})

	rule := branch.NewRule(params.Eps)

	// One oracle per Solve call rather than per worker: GonumOracle carries
	// no handle that benefits from reuse across nodes (each Build starts a
	// fresh Simplex tableau), so there is nothing to amortize by pooling.
	solve := func(node *bbnode.BBNode) error {
		oracle := mastermodel.NewGonumOracle(params.PenaltyM, params.Eps)
		driver := colgen.NewDriver(oracle, params)

		return driver.Solve(inst, node, nil)
	}
	brancher := func(node *bbnode.BBNode) ([]*bbnode.BBNode, error) {
		return rule.Branch(node, newID)
	}

	eng := bbengine.New(params.NumSolvers, solverapi.NodeSolver(solve), solverapi.Brancher(brancher), params.Eps, params.TimeLimit)

	sol, err := eng.Run(context.Background(), root)
	if err != nil {
		return kpi.Report{}, fmt.Errorf("running branch-and-bound: %w", err)
	}

	report := kpi.Report{
		Objective:         sol.Objective,
		NumCreatedNodes:   sol.NumCreatedNodes,
		NumFeasibleNodes:  sol.NumFeasibleNodes,
		MaxParallelSolves: sol.MaxParallelSolves,
	}
	if root.LPFeasible {
		report.DualUpperBound = root.DualLPUpperBound
	}

	return report, nil
}

func prizesOf(inst *instance.Instance) []float64 {
	prizes := make([]float64, inst.N())
	for v := 0; v < inst.N(); v++ {
		prizes[v] = inst.Prize(v)
	}

	return prizes
}
