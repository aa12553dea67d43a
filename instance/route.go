package instance

import (
	"math"
	"strconv"
	"strings"
)

// roundingScale stabilizes floating-point costs to 1e-9, mirroring the
// teacher's tsp/tour.go round1e9 helper used throughout tsp/bb.go.
const roundingScale = 1e9

func round1e9(x float64) float64 {
	return math.Round(x*roundingScale) / roundingScale
}

// Route is a source→destination path, with its score (sum of intermediate
// vertex prizes), length (sum of edge weights), reduced cost (with respect
// to the duals in effect when it was generated), and an IsElementary flag
// (spec §3). Routes are value objects: once constructed they are never
// mutated, only appended to a master's column pool (spec §3 Lifecycle).
type Route struct {
	Path         []int
	Score        float64
	Length       float64
	ReducedCost  float64
	IsElementary bool
}

// NewRoute computes Score, Length, and IsElementary from a path and an
// Instance; ReducedCost must be supplied separately by the caller (it
// depends on the duals active at generation time, not on path geometry).
func NewRoute(inst *Instance, path []int, reducedCost float64) Route {
	seen := make(map[int]bool, len(path))
	elementary := true
	var score, length float64
	for i, v := range path {
		if i > 0 {
			length += inst.Graph().At(path[i-1], v)
		}
		if v != inst.Source() && v != inst.Dest() {
			score += inst.Prize(v)
		}
		if seen[v] {
			elementary = false
		}
		seen[v] = true
	}

	return Route{
		Path:         append([]int(nil), path...),
		Score:        round1e9(score),
		Length:       round1e9(length),
		ReducedCost:  round1e9(reducedCost),
		IsElementary: elementary,
	}
}

// Key returns a string uniquely identifying Route by its path, used for
// equality/hashing in the master's column pool (spec §3: "Equality and
// hashing depend only on the path").
func (r Route) Key() string {
	var b strings.Builder
	for i, v := range r.Path {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// VisitsVertex reports whether v lies anywhere on the route, the
// source/destination endpoints included.
func (r Route) VisitsVertex(v int) bool {
	for _, x := range r.Path {
		if x == v {
			return true
		}
	}

	return false
}

// VisitsEdge reports whether the directed arc (u, v) is a consecutive pair
// on the route.
func (r Route) VisitsEdge(u, v int) bool {
	for i := 1; i < len(r.Path); i++ {
		if r.Path[i-1] == u && r.Path[i] == v {
			return true
		}
	}

	return false
}
