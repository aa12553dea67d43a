// Package state implements the pricing label (State) used by the ESPPRC
// bidirectional labeling engine (spec §3, §4.1). States are addressed by
// arena index rather than pointer, so parent chains form an implicit tree
// inside a flat slice (DESIGN NOTES "Cyclic parent chains in State": "An
// arena of State records ... eliminates deep-chain drop overhead"),
// mirroring the teacher's preference for dense slice-addressed state over
// pointer graphs (tsp/bb.go's bbEngine).
package state

import "github.com/katalvlaran/toppricer/bitset"

// Direction is the labeling direction of a State.
type Direction bool

const (
	// Forward labels extend from the source.
	Forward Direction = true
	// Backward labels extend from the destination.
	Backward Direction = false
)

// noParent marks a State with no parent (the two seed labels at s and t).
const noParent = -1

// State is a partial path label (spec §3). Bit-sets are owned by the
// State and cloned on extension (copy-on-write at state granularity,
// spec §5 "Shared resources").
type State struct {
	Dir        Direction
	Vertex     int
	Cost       float64 // accumulated reduced cost
	Score      float64
	Length     float64
	Parent     int // arena index, noParent if none
	PredVertex int // predecessor vertex, -1 if none

	VisitedCritical     *bitset.Set
	VisitedGeneral      *bitset.Set
	UnreachableCritical *bitset.Set
	HasCycle            bool

	// PredDominator implements the "two-cycle removal rule" (spec §4.1.1
	// addIfNonDominated, DESIGN NOTES open question (b)): the arena index
	// of the first dominator encountered whose predecessor differs from
	// this state's predecessor, or noParent if none seen yet.
	PredDominator int
}

// Ratio returns the bang-for-buck ordering key cost/length, with length=0
// mapped to 0 (spec §3 "States are compared by cost/length").
func (s *State) Ratio() float64 {
	if s.Length == 0 {
		return 0
	}

	return s.Cost / s.Length
}

// Arena is an append-only store of States addressed by index.
type Arena struct {
	states []State
}

// NewArena returns an empty Arena with capacity hint cap.
func NewArena(capHint int) *Arena {
	return &Arena{states: make([]State, 0, capHint)}
}

// Add appends s and returns its arena index.
func (a *Arena) Add(s State) int {
	a.states = append(a.states, s)

	return len(a.states) - 1
}

// Get returns a pointer to the State at index i.
func (a *Arena) Get(i int) *State { return &a.states[i] }

// NewSeed builds a terminal seed State at a source/destination vertex,
// with all three bit-sets containing only that vertex (spec §3 invariant
// (iv): "terminal states have all three bit-sets with only the terminal
// vertex bit set").
func NewSeed(n, vertex int, dir Direction) State {
	vc := bitset.New(n)
	vc.Set(vertex)
	vg := bitset.New(n)
	vg.Set(vertex)
	uc := bitset.New(n)
	uc.Set(vertex)

	return State{
		Dir:                 dir,
		Vertex:              vertex,
		Parent:              noParent,
		PredVertex:          -1,
		VisitedCritical:     vc,
		VisitedGeneral:      vg,
		UnreachableCritical: uc,
		PredDominator:       noParent,
	}
}

// HasCommonCriticalVisits reports whether two states (forward/backward, to
// be joined) both visited some common critical vertex (spec §4.1.1 Join
// feasibility).
func (s *State) HasCommonCriticalVisits(other *State) bool {
	return s.VisitedCritical.Intersects(other.VisitedCritical)
}

// HasCommonGeneralVisits reports whether two states share any visited
// vertex (spec §4.1.1 Join: ¬hasCommonGeneralVisits required for an
// elementary joined route).
func (s *State) HasCommonGeneralVisits(other *State) bool {
	return s.VisitedGeneral.Intersects(other.VisitedGeneral)
}
