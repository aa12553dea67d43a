package state_test

import (
	"testing"

	"github.com/katalvlaran/toppricer/state"
)

func TestSeedInvariants(t *testing.T) {
	s := state.NewSeed(5, 0, state.Forward)
	if s.VisitedGeneral.Count() != 1 || !s.VisitedGeneral.Test(0) {
		t.Fatalf("seed must have only its own vertex set in VisitedGeneral")
	}
	if s.VisitedCritical.Count() != 1 || !s.VisitedCritical.Test(0) || s.UnreachableCritical.Count() != 1 || !s.UnreachableCritical.Test(0) {
		t.Fatalf("seed critical/unreachable sets must hold only its own vertex")
	}
}

func TestRatioZeroLength(t *testing.T) {
	s := state.NewSeed(3, 0, state.Forward)
	s.Cost = -5
	s.Length = 0
	if got := s.Ratio(); got != 0 {
		t.Fatalf("Ratio() with length 0 = %v, want 0", got)
	}
	s.Length = 2
	if got := s.Ratio(); got != -2.5 {
		t.Fatalf("Ratio() = %v, want -2.5", got)
	}
}

func TestLabelHeapOrdersByRatio(t *testing.T) {
	arena := state.NewArena(4)
	mk := func(cost, length float64) int {
		s := state.NewSeed(3, 0, state.Forward)
		s.Cost, s.Length = cost, length

		return arena.Add(s)
	}
	a := mk(-10, 2) // ratio -5
	b := mk(-9, 1)  // ratio -9
	c := mk(0, 0)   // ratio 0

	h := state.NewLabelHeap(arena)
	h.PushIndex(a)
	h.PushIndex(b)
	h.PushIndex(c)

	first := h.PopIndex()
	if first != b {
		t.Fatalf("expected lowest ratio (b) popped first, got index %d", first)
	}
	second := h.PopIndex()
	if second != a {
		t.Fatalf("expected a popped second, got index %d", second)
	}
	if h.PopIndex() != c {
		t.Fatalf("expected c popped last")
	}
	if !h.Empty() {
		t.Fatalf("expected heap empty after draining")
	}
}

func TestHasCommonVisits(t *testing.T) {
	a := state.NewSeed(5, 1, state.Forward)
	b := state.NewSeed(5, 1, state.Backward)
	if !a.HasCommonGeneralVisits(&b) {
		t.Fatalf("expected shared vertex 1 to register as common visit")
	}
	c := state.NewSeed(5, 2, state.Backward)
	if a.HasCommonGeneralVisits(&c) {
		t.Fatalf("did not expect disjoint seeds to share a visit")
	}
}
