package pricing

import (
	"math"

	"github.com/katalvlaran/toppricer/bitset"
	"github.com/katalvlaran/toppricer/instance"
	"github.com/katalvlaran/toppricer/state"
)

// Result is the output of one pricing call: an ordered list of negative-
// reduced-cost routes (at most Params.MaxColumnsAdded of them) plus the
// overall best route found this call, which may be non-elementary (spec
// §4.1 "optimalRoute").
type Result struct {
	Routes      []instance.Route
	OptimalPath []int
	OptimalRC   float64
}

// Engine runs the outer I-DSSR loop (spec §4.1) over a (possibly
// node-reduced) graph for one instance and one dual vector.
type Engine struct {
	inst   *instance.Instance
	graph  *instance.Graph
	duals  Duals
	params *instance.Parameters
	n      int

	isCritical        []bool
	useVisitCondition bool

	arena   *state.Arena
	nonDom  [2][][]int // nonDom[dirIdx][vertex] = arena indices
	heaps   [2]*state.LabelHeap
	routes  []instance.Route
	optPath []int
	optRC   float64
}

func dirIdx(dir state.Direction) int {
	if dir == state.Forward {
		return 0
	}

	return 1
}

// New constructs a pricing Engine for one reduced graph / dual vector.
func New(inst *instance.Instance, graph *instance.Graph, duals Duals, params *instance.Parameters) *Engine {
	n := graph.N()

	return &Engine{
		inst:   inst,
		graph:  graph,
		duals:  duals,
		params: params,
		n:      n,
	}
}

// Run executes the full outer DSSR loop and returns the accumulated
// routes plus the final optimal (possibly non-elementary) path.
func (e *Engine) Run() (Result, error) {
	e.isCritical = make([]bool, e.n)
	visitedMultiple := make([]bool, e.n)
	retriedVisitCondition := false

	for {
		// Step 1: promote vertices visited multiple times last round.
		for v := 0; v < e.n; v++ {
			if visitedMultiple[v] {
				e.isCritical[v] = true
			}
		}

		// Step 2: reset per-vertex non-dominated lists and re-seed.
		e.resetSearchState()

		// Step 3: run the interleaved bidirectional labeling search.
		e.runInterleaved()

		// Invariant check: the optimal route from a completed DSSR
		// iteration must not revisit any critical vertex (spec §4.1 step
		// 6). Broken invariant is a fatal, global error.
		if e.optPath != nil {
			visits := countVisits(e.optPath)
			for v, c := range visits {
				if c > 1 && e.isCritical[v] {
					return Result{}, ErrCyclesWithCriticalVertex
				}
			}
		}

		// Step 4: termination conditions (a)-(d).
		if len(e.routes) >= e.params.MaxColumnsAdded {
			break
		}
		if len(e.routes) >= e.params.MaxPathsAfterSearch {
			break
		}
		if e.optPath != nil {
			visits := countVisits(e.optPath)
			if !hasRepeat(visits) {
				break // (c) optimalRoute already elementary
			}
			// Step 5: mark vertices visited more than once as critical
			// for next round.
			visitedMultiple = make([]bool, e.n)
			for v, c := range visits {
				if c > 1 {
					visitedMultiple[v] = true
				}
			}
			continue
		}

		// optPath == nil: no optimal route found this iteration.
		if retriedVisitCondition {
			break // (d) exhausted the single retry with useVisitCondition
		}
		e.useVisitCondition = true
		retriedVisitCondition = true
	}

	return Result{Routes: e.routes, OptimalPath: e.optPath, OptimalRC: e.optRC}, nil
}

func countVisits(path []int) map[int]int {
	m := make(map[int]int, len(path))
	for _, v := range path {
		m[v]++
	}

	return m
}

func hasRepeat(visits map[int]int) bool {
	for _, c := range visits {
		if c > 1 {
			return true
		}
	}

	return false
}

// resetSearchState clears per-vertex non-dominated lists, rebuilds the
// arena and heaps, and re-seeds the terminal source/destination labels
// (spec §4.1 step 2, §4.1.1 "Initialize").
func (e *Engine) resetSearchState() {
	e.arena = state.NewArena(256)
	e.nonDom[0] = make([][]int, e.n)
	e.nonDom[1] = make([][]int, e.n)
	e.heaps[0] = state.NewLabelHeap(e.arena)
	e.heaps[1] = state.NewLabelHeap(e.arena)
	e.routes = nil
	e.optPath = nil
	e.optRC = math.Inf(1)

	seedF := state.NewSeed(e.n, e.inst.Source(), state.Forward)
	idxF := e.arena.Add(seedF)
	e.nonDom[0][e.inst.Source()] = append(e.nonDom[0][e.inst.Source()], idxF)
	if !e.params.BackwardOnly {
		e.heaps[0].PushIndex(idxF)
	}

	seedB := state.NewSeed(e.n, e.inst.Dest(), state.Backward)
	idxB := e.arena.Add(seedB)
	e.nonDom[1][e.inst.Dest()] = append(e.nonDom[1][e.inst.Dest()], idxB)
	if !e.params.ForwardOnly {
		e.heaps[1].PushIndex(idxB)
	}
}

// runInterleaved runs one full pass of §4.1.1: alternate popping from UF
// and UB (skipping an empty side), performing joins then extension for
// each popped label, until both heaps are empty or the column cap hits.
func (e *Engine) runInterleaved() {
	forwardsTurn := true
	for !e.heaps[0].Empty() || !e.heaps[1].Empty() {
		if len(e.routes) >= e.params.MaxColumnsAdded {
			return
		}

		var dir state.Direction
		switch {
		case forwardsTurn && !e.heaps[0].Empty():
			dir = state.Forward
		case !forwardsTurn && !e.heaps[1].Empty():
			dir = state.Backward
		case !e.heaps[0].Empty():
			dir = state.Forward
		case !e.heaps[1].Empty():
			dir = state.Backward
		default:
			return
		}
		forwardsTurn = !forwardsTurn

		idx := e.heaps[dirIdx(dir)].PopIndex()
		e.performAllJoins(idx, dir)
		if len(e.routes) >= e.params.MaxColumnsAdded {
			return
		}
		e.processState(idx, dir)
	}
}

// processState extends idx in its own direction if it has not yet crossed
// the half-budget threshold (spec §4.1.1 "Extend step").
func (e *Engine) processState(idx int, dir state.Direction) {
	s := e.arena.Get(idx)
	if s.Length >= e.inst.Budget()/2-e.params.Eps {
		return
	}
	e.extend(idx, dir)
}

// extend tries every admissible arc out of (forward) / into (backward)
// s.Vertex, per spec §4.1.1 "Extension". Forward extension never targets
// the destination vertex and backward extension never targets the source
// vertex: reaching either endpoint happens exclusively through the Join
// step joining against the terminal seed sitting there, keeping every
// emitted Route's provenance uniform.
func (e *Engine) extend(idx int, dir state.Direction) {
	s := e.arena.Get(idx)
	u := s.Vertex

	var neighbors []int32
	if dir == state.Forward {
		neighbors = e.graph.Out(u)
	} else {
		neighbors = e.graph.In(u)
	}

	for _, vv := range neighbors {
		v := int(vv)
		if dir == state.Forward && v == e.inst.Dest() {
			continue
		}
		if dir == state.Backward && v == e.inst.Source() {
			continue
		}
		e.tryExtendTo(idx, dir, u, v)
	}
}

func (e *Engine) tryExtendTo(idx int, dir state.Direction, u, v int) {
	s := e.arena.Get(idx)

	// Pre-screen (spec §4.1.1 Extension).
	if e.isCritical[v] && s.VisitedCritical.Test(v) {
		return
	}
	if s.PredVertex == v {
		return // forbids immediate 2-cycles
	}

	var arcLen float64
	if dir == state.Forward {
		arcLen = e.graph.At(u, v)
	} else {
		arcLen = e.graph.At(v, u)
	}
	if s.Length+arcLen > e.inst.Budget() {
		return
	}

	var arcDual float64
	if dir == state.Forward {
		arcDual = e.duals.Arc(u, v)
	} else {
		arcDual = e.duals.Arc(v, u)
	}
	newCost := s.Cost + e.duals.PiVtx[v] + arcDual

	ns := state.State{
		Dir:           dir,
		Vertex:        v,
		Cost:          newCost,
		Score:         s.Score,
		Length:        s.Length + arcLen,
		Parent:        idx,
		PredVertex:    u,
		PredDominator: -1,
	}
	if v != e.inst.Source() && v != e.inst.Dest() {
		ns.Score += e.inst.Prize(v)
	}

	ns.VisitedCritical = s.VisitedCritical.Clone()
	if e.isCritical[v] {
		ns.VisitedCritical.Set(v)
	}
	ns.VisitedGeneral = s.VisitedGeneral.Clone()
	if s.VisitedGeneral.Test(v) {
		ns.HasCycle = true
	} else {
		ns.HasCycle = s.HasCycle
	}
	ns.VisitedGeneral.Set(v)

	ns.UnreachableCritical = s.UnreachableCritical.Clone()
	e.markUnreachableCritical(&ns, dir, v)

	e.addIfNonDominated(ns)
}

// markUnreachableCritical implements spec §4.1.1 "Mark unreachable-critical".
func (e *Engine) markUnreachableCritical(ns *state.State, dir state.Direction, v int) {
	var further []int32
	if dir == state.Forward {
		further = e.graph.Out(v)
	} else {
		further = e.graph.In(v)
	}
	for _, xx := range further {
		x := int(xx)
		if !e.isCritical[x] {
			continue
		}
		var arcLen float64
		if dir == state.Forward {
			arcLen = e.graph.At(v, x)
		} else {
			arcLen = e.graph.At(x, v)
		}
		if ns.Length+arcLen > e.inst.Budget() {
			ns.UnreachableCritical.Set(x)
		}
	}
}

// dominates implements spec §4.1.1 "Dominance". a dominates b iff both are
// at the same vertex/direction (checked by the caller) and the listed
// conditions hold.
func dominates(a, b *state.State, eps float64, useVisitCondition bool) bool {
	if a.Cost > b.Cost+eps {
		return false
	}
	if a.Length > b.Length+eps {
		return false
	}
	aUnion := unionCriticalUnreachable(a)
	bUnion := unionCriticalUnreachable(b)
	if !aUnion.SubsetOf(bUnion) {
		return false
	}
	if useVisitCondition && !a.VisitedCritical.SubsetOf(b.VisitedCritical) {
		return false
	}
	// At least one strict inequality overall, else a==b is not a strict
	// dominance (irreflexivity, spec I4).
	strict := a.Cost < b.Cost-eps || a.Length < b.Length-eps || !aUnion.Equal(bUnion)
	if useVisitCondition {
		strict = strict || !a.VisitedCritical.Equal(b.VisitedCritical)
	}

	return strict
}

func unionCriticalUnreachable(s *state.State) *bitset.Set {
	u := s.VisitedCritical.Clone()
	u.UnionInPlace(s.UnreachableCritical)

	return u
}

// addIfNonDominated implements spec §4.1.1 "addIfNonDominated", including
// the "two-cycle removal rule" (DESIGN NOTES open question (b)).
func (e *Engine) addIfNonDominated(ns state.State) {
	d := dirIdx(ns.Dir)
	list := e.nonDom[d][ns.Vertex]

	if e.params.UseDomination {
		for i := len(list) - 1; i >= 0; i-- {
			existing := e.arena.Get(list[i])
			if !dominates(existing, &ns, e.params.Eps, e.useVisitCondition) {
				continue
			}
			if ns.PredVertex == existing.PredVertex {
				return // same predecessor: dominated outright
			}
			if ns.PredDominator == -1 {
				// First dominator seen with a different predecessor:
				// remember it, but do not discard ns yet.
				ns.PredDominator = list[i]
				continue
			}
			if ns.PredDominator != list[i] {
				return // second distinct dominator: truly dominated
			}
		}
	}

	idx := e.arena.Add(ns)

	if e.params.TwoWayDomination {
		kept := list[:0]
		for _, existingIdx := range list {
			existing := e.arena.Get(existingIdx)
			if dominates(&ns, existing, e.params.Eps, e.useVisitCondition) {
				continue // existing is dominated by the new state; drop it
			}
			kept = append(kept, existingIdx)
		}
		list = kept
	}

	list = append(list, idx)
	e.nonDom[d][ns.Vertex] = list

	enabled := true
	if ns.Dir == state.Forward && e.params.BackwardOnly {
		enabled = false
	}
	if ns.Dir == state.Backward && e.params.ForwardOnly {
		enabled = false
	}
	if enabled {
		e.heaps[d].PushIndex(idx)
	}
}
