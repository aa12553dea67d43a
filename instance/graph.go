package instance

import "math"

// Edge is a directed arc (From, To) with a non-negative weight, used only
// at Graph-construction time.
type Edge struct {
	From, To int
	Weight   float64
}

// Graph is an immutable directed weighted graph over vertex indices
// [0, N). Edge weights are stored densely (w[u*n+v], +Inf meaning "no
// arc"), mirroring the teacher's tsp/bb.go dense buffer (e.w []float64)
// rather than a map-of-maps adjacency: vertex counts in benchmarked TOP
// instances are small enough (≲ 1000, DESIGN NOTES) that dense storage
// keeps the pricing engine's hot inner loops free of map overhead.
type Graph struct {
	n   int
	w   []float64 // dense n*n; math.Inf(1) where no arc exists
	out [][]int32 // out[u] = sorted list of v with a finite arc (u,v)
	in  [][]int32 // in[v]  = sorted list of u with a finite arc (u,v)
}

// NewGraph builds a Graph over n vertices from a list of candidate edges.
// Edges with u==v, w<0, or endpoints out of range are rejected; edges
// violating "no in-edges to source" / "no out-edges from destination" are
// silently dropped (they are meaningless for an s→t path and the original
// CLI-surface graph builder never emits them in the first place — see
// topio). Edges whose weight exceeds budget are excluded, per spec §3.
func NewGraph(n int, edges []Edge, source, dest int, budget float64) (*Graph, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	g := &Graph{
		n:   n,
		w:   make([]float64, n*n),
		out: make([][]int32, n),
		in:  make([][]int32, n),
	}
	for i := range g.w {
		g.w[i] = math.Inf(1)
	}

	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, ErrVertexOutOfRange
		}
		if e.From == e.To {
			return nil, ErrSelfLoop
		}
		if e.Weight < 0 {
			return nil, ErrNegativeWeight
		}
		if e.To == source || e.From == dest {
			// No in-edges to s, no out-edges from t: drop silently.
			continue
		}
		if e.Weight > budget {
			continue
		}
		if !math.IsInf(g.w[e.From*n+e.To], 1) {
			// Keep the cheaper of duplicate parallel edges.
			if e.Weight >= g.w[e.From*n+e.To] {
				continue
			}
		} else {
			g.out[e.From] = append(g.out[e.From], int32(e.To))
			g.in[e.To] = append(g.in[e.To], int32(e.From))
		}
		g.w[e.From*n+e.To] = e.Weight
	}

	return g, nil
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// At returns the weight of arc (u, v), or +Inf if absent.
func (g *Graph) At(u, v int) float64 { return g.w[u*g.n+v] }

// HasArc reports whether arc (u, v) exists.
func (g *Graph) HasArc(u, v int) bool { return !math.IsInf(g.w[u*g.n+v], 1) }

// Out returns the out-neighbors of u (vertices v with a finite arc u→v).
func (g *Graph) Out(u int) []int32 { return g.out[u] }

// In returns the in-neighbors of v (vertices u with a finite arc u→v).
func (g *Graph) In(v int) []int32 { return g.in[v] }

// Reduced returns a clone of g with every arc touching a forbidden vertex,
// or an explicitly forbidden arc, removed (spec §4.3 step 1). Vertex
// indices are unchanged so bit-sets sized for the original graph remain
// valid over the reduced graph.
func (g *Graph) Reduced(forbiddenVertices map[int]struct{}, forbiddenEdges map[[2]int]struct{}) *Graph {
	out := &Graph{
		n:   g.n,
		w:   make([]float64, len(g.w)),
		out: make([][]int32, g.n),
		in:  make([][]int32, g.n),
	}
	copy(out.w, g.w)

	for u := 0; u < g.n; u++ {
		if _, forb := forbiddenVertices[u]; forb {
			for _, v := range g.out[u] {
				out.w[u*g.n+int(v)] = math.Inf(1)
			}
			for _, v := range g.in[u] {
				out.w[int(v)*g.n+u] = math.Inf(1)
			}
			continue
		}
		for _, v := range g.out[u] {
			if _, forb := forbiddenVertices[int(v)]; forb {
				out.w[u*g.n+int(v)] = math.Inf(1)
				continue
			}
			if _, forb := forbiddenEdges[[2]int{u, int(v)}]; forb {
				out.w[u*g.n+int(v)] = math.Inf(1)
				continue
			}
			out.out[u] = append(out.out[u], v)
		}
	}
	for v := 0; v < g.n; v++ {
		for _, u := range g.in[v] {
			if math.IsInf(out.w[int(u)*g.n+v], 1) {
				continue
			}
			out.in[v] = append(out.in[v], u)
		}
	}

	return out
}
