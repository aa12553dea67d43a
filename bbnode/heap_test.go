package bbnode_test

import (
	"testing"

	"github.com/katalvlaran/toppricer/bbnode"
)

func TestOpenQueueOrdering(t *testing.T) {
	q := bbnode.NewOpenQueue()
	q.PushNode(&bbnode.BBNode{ID: 3, ParentLPObjective: 10})
	q.PushNode(&bbnode.BBNode{ID: 1, ParentLPObjective: 20})
	q.PushNode(&bbnode.BBNode{ID: 2, ParentLPObjective: 20})

	first := q.PopNode()
	if first.ID != 1 {
		t.Fatalf("expected id 1 (tie broken by id) popped first, got %d", first.ID)
	}
	second := q.PopNode()
	if second.ID != 2 {
		t.Fatalf("expected id 2 popped second, got %d", second.ID)
	}
	third := q.PopNode()
	if third.ID != 3 {
		t.Fatalf("expected id 3 (lowest objective) popped last, got %d", third.ID)
	}
	if !q.Empty() {
		t.Fatalf("expected queue empty after draining")
	}
}
