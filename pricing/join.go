package pricing

import (
	"github.com/katalvlaran/toppricer/instance"
	"github.com/katalvlaran/toppricer/state"
)

// performAllJoins tries every admissible join between the just-popped label
// at idx and the opposite direction's non-dominated labels reachable by one
// arc (spec §4.1.1 "Join"). A forward label at u joins against every
// backward label at v for each arc (u,v); a backward label at v joins
// against every forward label at u symmetrically.
func (e *Engine) performAllJoins(idx int, dir state.Direction) {
	s := e.arena.Get(idx)

	if dir == state.Forward {
		u := s.Vertex
		for _, vv := range e.graph.Out(u) {
			v := int(vv)
			arcW := e.graph.At(u, v)
			for _, bIdx := range e.nonDom[1][v] {
				e.tryJoin(idx, bIdx, u, v, arcW)
				if len(e.routes) >= e.params.MaxColumnsAdded {
					return
				}
			}
		}

		return
	}

	v := s.Vertex
	for _, uu := range e.graph.In(v) {
		u := int(uu)
		arcW := e.graph.At(u, v)
		for _, fIdx := range e.nonDom[0][u] {
			e.tryJoin(fIdx, idx, u, v, arcW)
			if len(e.routes) >= e.params.MaxColumnsAdded {
				return
			}
		}
	}
}

// tryJoin evaluates the join of forward label fIdx (ending at u) with
// backward label bIdx (ending at v) across arc (u,v) (spec §4.1.1 "Join").
//
// The halfway rule accepts the unique arc along a combined path that first
// crosses the path's own midpoint when walked forward from its start: since
// cumulative forward length strictly increases along positive-weight arcs,
// exactly one arc on any combined path satisfies
// f.Length < half <= f.Length+arcW, so a path is joined at exactly one point
// regardless of how many (f, b) pairs share an overlapping length window.
func (e *Engine) tryJoin(fIdx, bIdx int, u, v int, arcW float64) {
	f := e.arena.Get(fIdx)
	b := e.arena.Get(bIdx)
	eps := e.params.Eps

	if f.HasCommonCriticalVisits(b) {
		return
	}

	total := f.Length + arcW + b.Length
	if total > e.inst.Budget()+eps {
		return
	}

	half := total / 2
	if !(f.Length < half-eps && f.Length+arcW >= half-eps) {
		return
	}

	rc := e.duals.PiVeh + f.Cost + b.Cost + e.duals.Arc(u, v)
	if rc >= -eps {
		return
	}

	path := joinPath(e.arena, fIdx, bIdx)

	if rc < e.optRC {
		e.optRC = rc
		e.optPath = path
	}

	elementary := !f.HasCycle && !b.HasCycle && !f.HasCommonGeneralVisits(b)
	if !elementary {
		return
	}
	if len(e.routes) >= e.params.MaxColumnsAdded {
		return
	}

	e.routes = append(e.routes, instance.NewRoute(e.inst, path, rc))
}

// joinPath reconstructs the full source-to-destination vertex sequence from
// a forward label's and a backward label's parent chains.
func joinPath(arena *state.Arena, fIdx, bIdx int) []int {
	fChain := walkChain(arena, fIdx) // [u, ..., source]
	bChain := walkChain(arena, bIdx) // [v, ..., dest]

	path := make([]int, 0, len(fChain)+len(bChain))
	for i := len(fChain) - 1; i >= 0; i-- {
		path = append(path, fChain[i])
	}
	path = append(path, bChain...)

	return path
}

// walkChain follows Parent links from idx back to its terminal seed and
// returns the visited vertices in that (leaf-to-root) order.
func walkChain(arena *state.Arena, idx int) []int {
	var out []int
	for idx != -1 {
		s := arena.Get(idx)
		out = append(out, s.Vertex)
		idx = s.Parent
	}

	return out
}
