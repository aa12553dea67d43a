// Package bbnode defines the branch-and-bound node type shared by the
// column-generation driver (which decorates nodes with solved fields) and
// the parallel B&B engine (which queues and dispatches them).
package bbnode

import "github.com/katalvlaran/toppricer/instance"

// RouteWeight pairs a Route with its LP weight in a node's solution (spec
// §3 "lpSolution (list of (Route, weight) with weight > ε)").
type RouteWeight struct {
	Route  instance.Route
	Weight float64
}

// BBNode is one branch-and-bound node: a unique id, its parent's id and LP
// objective, the four restriction sets, and — once solved — the LP/MIP
// outputs (spec §3 "BBNode").
type BBNode struct {
	ID                int64
	ParentID          int64
	ParentLPObjective float64

	MustVisitVertices map[int]struct{}
	MustVisitEdges    map[[2]int]struct{}
	ForbiddenVertices map[int]struct{}
	ForbiddenEdges    map[[2]int]struct{}

	// Solved fields, populated by the column-generation driver (spec
	// §4.3); zero-valued until then.
	LPFeasible         bool
	LPIntegral         bool
	LPObjective        float64
	LPSolution         []RouteWeight
	MIPSolution        []RouteWeight
	MIPObjective       float64
	VertexReducedCosts []float64 // indexed by vertex
	DualLPUpperBound   float64

	Children []*BBNode
}

// New constructs an unsolved BBNode with the given id/parent linkage and
// restriction sets (which are taken by reference; callers should pass
// copies of the parent's sets when deriving children, as branch does).
func New(id, parentID int64, parentLPObjective float64, mustV map[int]struct{}, mustE map[[2]int]struct{}, forbV map[int]struct{}, forbE map[[2]int]struct{}) *BBNode {
	return &BBNode{
		ID:                id,
		ParentID:          parentID,
		ParentLPObjective: parentLPObjective,
		MustVisitVertices: mustV,
		MustVisitEdges:    mustE,
		ForbiddenVertices: forbV,
		ForbiddenEdges:    forbE,
	}
}
