package branch_test

import (
	"testing"

	"github.com/katalvlaran/toppricer/bbnode"
	"github.com/katalvlaran/toppricer/branch"
	"github.com/katalvlaran/toppricer/instance"
)

func nextIDFrom(start int64) func() int64 {
	id := start
	return func() int64 {
		id++
		return id
	}
}

func TestBranchVertexFractional(t *testing.T) {
	node := bbnode.New(0, -1, 0, map[int]struct{}{}, map[[2]int]struct{}{}, map[int]struct{}{}, map[[2]int]struct{}{})
	node.VertexReducedCosts = []float64{0, -5, -1, 0}
	node.LPSolution = []bbnode.RouteWeight{
		{Route: instance.Route{Path: []int{0, 1, 3}}, Weight: 0.5},
		{Route: instance.Route{Path: []int{0, 2, 3}}, Weight: 0.5},
	}

	r := branch.NewRule(1e-6)
	children, err := r.Branch(node, nextIDFrom(0))
	if err != nil {
		t.Fatalf("Branch: %v", err)
	}
	if len(children) != 2 {
		t.Fatalf("expected 2 children for vertex branching, got %d", len(children))
	}
	if _, ok := children[0].ForbiddenVertices[1]; !ok {
		t.Fatalf("expected first child to forbid vertex 1 (smallest reduced cost fractional vertex)")
	}
	if _, ok := children[1].MustVisitVertices[1]; !ok {
		t.Fatalf("expected second child to require vertex 1")
	}
}

func TestBranchIntegralReturnsNil(t *testing.T) {
	node := bbnode.New(0, -1, 0, map[int]struct{}{}, map[[2]int]struct{}{}, map[int]struct{}{}, map[[2]int]struct{}{})
	node.VertexReducedCosts = []float64{0, -5, 0}
	node.LPSolution = []bbnode.RouteWeight{
		{Route: instance.Route{Path: []int{0, 1, 2}}, Weight: 1.0},
	}

	r := branch.NewRule(1e-6)
	children, err := r.Branch(node, nextIDFrom(0))
	if err != nil {
		t.Fatalf("Branch: %v", err)
	}
	if children != nil {
		t.Fatalf("expected nil children for an integral node, got %v", children)
	}
}

func TestBranchWithoutSolveErrors(t *testing.T) {
	node := bbnode.New(0, -1, 0, map[int]struct{}{}, map[[2]int]struct{}{}, map[int]struct{}{}, map[[2]int]struct{}{})
	r := branch.NewRule(1e-6)
	if _, err := r.Branch(node, nextIDFrom(0)); err != branch.ErrNullVertexReducedCosts {
		t.Fatalf("expected ErrNullVertexReducedCosts, got %v", err)
	}
}
