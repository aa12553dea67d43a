package branch

import (
	"sort"

	"github.com/katalvlaran/toppricer/bbnode"
)

// Rule computes flowIn/arcFlow over a solved node's fractional LP solution
// and produces its children (spec §4.6).
type Rule struct {
	Eps float64
}

// NewRule returns a Rule with the given fractional tolerance.
func NewRule(eps float64) *Rule {
	return &Rule{Eps: eps}
}

// Branch decides the branching variable for node and returns its 2 or 3
// children, or nil if node is already integral. nextID supplies
// monotonically increasing child ids.
func (r *Rule) Branch(node *bbnode.BBNode, nextID func() int64) ([]*bbnode.BBNode, error) {
	if node.VertexReducedCosts == nil {
		return nil, ErrNullVertexReducedCosts
	}

	flowIn, arcFlow := r.flows(node)

	if v, ok := r.fractionalVertex(node, flowIn); ok {
		return r.branchVertex(node, v, nextID), nil
	}

	u, v, ok := r.fractionalArc(node, arcFlow)
	if !ok {
		return nil, nil // integral node
	}

	return r.branchArc(node, u, v, nextID)
}

// flows computes flowIn[v] = Σ_k x_k·[v ∈ r_k] and
// arcFlow[(u,v)] = Σ_k x_k·[(u,v) ⊂ r_k] over node's LP solution.
func (r *Rule) flows(node *bbnode.BBNode) (map[int]float64, map[[2]int]float64) {
	flowIn := make(map[int]float64)
	arcFlow := make(map[[2]int]float64)

	for _, rw := range node.LPSolution {
		for _, v := range rw.Route.Path {
			if v == rw.Route.Path[0] || v == rw.Route.Path[len(rw.Route.Path)-1] {
				continue
			}
			flowIn[v] += rw.Weight
		}
		for i := 1; i < len(rw.Route.Path); i++ {
			u, v := rw.Route.Path[i-1], rw.Route.Path[i]
			arcFlow[[2]int{u, v}] += rw.Weight
		}
	}

	return flowIn, arcFlow
}

// fractionalVertex returns the vertex with fractional flow whose
// VertexReducedCosts is smallest (spec §4.6 step 1).
func (r *Rule) fractionalVertex(node *bbnode.BBNode, flowIn map[int]float64) (int, bool) {
	best := -1
	bestRC := 0.0
	// Iterate in sorted order for determinism.
	vertices := make([]int, 0, len(flowIn))
	for v := range flowIn {
		vertices = append(vertices, v)
	}
	sort.Ints(vertices)

	for _, v := range vertices {
		f := flowIn[v]
		if f < r.Eps || f > 1-r.Eps {
			continue
		}
		if v < 0 || v >= len(node.VertexReducedCosts) {
			continue
		}
		rc := node.VertexReducedCosts[v]
		if best == -1 || rc < bestRC {
			best = v
			bestRC = rc
		}
	}

	return best, best != -1
}

// fractionalArc returns the fractional arc (u,v) whose VertexReducedCosts[u]
// is smallest (spec §4.6 step 2).
func (r *Rule) fractionalArc(node *bbnode.BBNode, arcFlow map[[2]int]float64) (int, int, bool) {
	bestU, bestV := -1, -1
	bestRC := 0.0

	arcs := make([][2]int, 0, len(arcFlow))
	for e := range arcFlow {
		arcs = append(arcs, e)
	}
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i][0] != arcs[j][0] {
			return arcs[i][0] < arcs[j][0]
		}

		return arcs[i][1] < arcs[j][1]
	})

	for _, e := range arcs {
		f := arcFlow[e]
		if f < r.Eps || f > 1-r.Eps {
			continue
		}
		u := e[0]
		if u < 0 || u >= len(node.VertexReducedCosts) {
			continue
		}
		rc := node.VertexReducedCosts[u]
		if bestU == -1 || rc < bestRC {
			bestU, bestV = e[0], e[1]
			bestRC = rc
		}
	}

	return bestU, bestV, bestU != -1
}

func (r *Rule) branchVertex(node *bbnode.BBNode, v int, nextID func() int64) []*bbnode.BBNode {
	forbidden := cloneChild(node, nextID)
	forbidden.ForbiddenVertices[v] = struct{}{}

	required := cloneChild(node, nextID)
	required.MustVisitVertices[v] = struct{}{}

	node.Children = []*bbnode.BBNode{forbidden, required}

	return node.Children
}

func (r *Rule) branchArc(node *bbnode.BBNode, u, v int, nextID func() int64) ([]*bbnode.BBNode, error) {
	_, uMust := node.MustVisitVertices[u]
	_, vMust := node.MustVisitVertices[v]

	if uMust || vMust {
		enforce := cloneChild(node, nextID)
		enforce.MustVisitEdges[[2]int{u, v}] = struct{}{}

		forbid := cloneChild(node, nextID)
		forbid.ForbiddenEdges[[2]int{u, v}] = struct{}{}

		node.Children = []*bbnode.BBNode{enforce, forbid}

		return node.Children, nil
	}

	forbidU := cloneChild(node, nextID)
	forbidU.ForbiddenVertices[u] = struct{}{}

	mustUEnforceArc := cloneChild(node, nextID)
	mustUEnforceArc.MustVisitVertices[u] = struct{}{}
	mustUEnforceArc.MustVisitEdges[[2]int{u, v}] = struct{}{}

	mustUForbidArc := cloneChild(node, nextID)
	mustUForbidArc.MustVisitVertices[u] = struct{}{}
	mustUForbidArc.ForbiddenEdges[[2]int{u, v}] = struct{}{}

	node.Children = []*bbnode.BBNode{forbidU, mustUEnforceArc, mustUForbidArc}

	return node.Children, nil
}

func cloneChild(parent *bbnode.BBNode, nextID func() int64) *bbnode.BBNode {
	return bbnode.New(
		nextID(),
		parent.ID,
		parent.LPObjective,
		cloneIntSet(parent.MustVisitVertices),
		cloneEdgeSet(parent.MustVisitEdges),
		cloneIntSet(parent.ForbiddenVertices),
		cloneEdgeSet(parent.ForbiddenEdges),
	)
}

func cloneIntSet(m map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(m))
	for v := range m {
		out[v] = struct{}{}
	}

	return out
}

func cloneEdgeSet(m map[[2]int]struct{}) map[[2]int]struct{} {
	out := make(map[[2]int]struct{}, len(m))
	for e := range m {
		out[e] = struct{}{}
	}

	return out
}
