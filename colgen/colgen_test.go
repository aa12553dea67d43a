package colgen_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/toppricer/bbnode"
	"github.com/katalvlaran/toppricer/colgen"
	"github.com/katalvlaran/toppricer/instance"
	"github.com/katalvlaran/toppricer/mastermodel"
)

func rootNode() *bbnode.BBNode {
	return bbnode.New(0, -1, math.Inf(1),
		map[int]struct{}{}, map[[2]int]struct{}{},
		map[int]struct{}{}, map[[2]int]struct{}{})
}

// TestColgenTrivialInstance reproduces spec scenario S3: a unique feasible
// elementary path 0->1->2 with objective 7.
func TestColgenTrivialInstance(t *testing.T) {
	edges := []instance.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 0, To: 2, Weight: 2},
	}
	g, err := instance.NewGraph(3, edges, 0, 2, 10)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	inst, err := instance.New(g, []float64{0, 7, 0}, 0, 2, 1, 10)
	if err != nil {
		t.Fatalf("instance.New: %v", err)
	}

	params := instance.DefaultParameters()
	oracle := mastermodel.NewGonumOracle(params.PenaltyM, params.Eps)
	driver := colgen.NewDriver(oracle, params)

	node := rootNode()
	if err := driver.Solve(inst, node, nil); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if !node.LPFeasible {
		t.Fatalf("expected root node LP-feasible")
	}
	if math.Abs(node.LPObjective-7) > 1e-3 {
		t.Fatalf("LPObjective = %v, want 7", node.LPObjective)
	}
}

// TestColgenInfeasibleBudget reproduces spec scenario S4: with B=1 no
// s->t path respects budget, so the root's objective is 0.
func TestColgenInfeasibleBudget(t *testing.T) {
	edges := []instance.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 0, To: 2, Weight: 2},
	}
	g, err := instance.NewGraph(3, edges, 0, 2, 1)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	inst, err := instance.New(g, []float64{0, 7, 0}, 0, 2, 1, 1)
	if err != nil {
		t.Fatalf("instance.New: %v", err)
	}

	params := instance.DefaultParameters()
	oracle := mastermodel.NewGonumOracle(params.PenaltyM, params.Eps)
	driver := colgen.NewDriver(oracle, params)

	node := rootNode()
	if err := driver.Solve(inst, node, nil); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if !node.LPFeasible {
		t.Fatalf("expected root node LP-feasible (trivially, via the empty route set)")
	}
	if node.LPObjective != 0 {
		t.Fatalf("LPObjective = %v, want 0", node.LPObjective)
	}
	if len(node.MIPSolution) != 0 {
		t.Fatalf("expected empty MIP solution, got %v", node.MIPSolution)
	}
}
