package instance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/toppricer/instance"
)

func chainInstance(t *testing.T, budget float64) *instance.Instance {
	t.Helper()
	// 0-1-2-3-4 unit-weight chain, prizes [0,10,10,10,0] (spec §8 S5).
	edges := []instance.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 3, To: 4, Weight: 1},
	}
	g, err := instance.NewGraph(5, edges, 0, 4, budget)
	require.NoError(t, err, "NewGraph")
	inst, err := instance.New(g, []float64{0, 10, 10, 10, 0}, 0, 4, 1, budget)
	require.NoError(t, err, "New")

	return inst
}

func TestGraphExcludesOverBudgetEdges(t *testing.T) {
	g, err := instance.NewGraph(3, []instance.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 1, To: 2, Weight: 50},
	}, 0, 2, 10)
	require.NoError(t, err, "NewGraph")
	assert.False(t, g.HasArc(1, 2), "expected over-budget edge to be excluded")
	assert.True(t, g.HasArc(0, 1), "expected in-budget edge to survive")
}

func TestGraphDropsInEdgeToSource(t *testing.T) {
	g, err := instance.NewGraph(3, []instance.Edge{
		{From: 1, To: 0, Weight: 1},
	}, 0, 2, 10)
	require.NoError(t, err, "NewGraph")
	assert.False(t, g.HasArc(1, 0), "expected in-edge to source to be dropped")
}

func TestRouteScoreLengthElementary(t *testing.T) {
	inst := chainInstance(t, 4)
	r := instance.NewRoute(inst, []int{0, 1, 2, 3, 4}, -30)
	assert.Equal(t, 30.0, r.Score)
	assert.Equal(t, 4.0, r.Length)
	assert.True(t, r.IsElementary, "expected elementary route")
	assert.Equal(t, -30.0, r.ReducedCost)
}

func TestRouteNonElementary(t *testing.T) {
	inst := chainInstance(t, 10)
	r := instance.NewRoute(inst, []int{0, 1, 2, 1, 2, 3, 4}, 0)
	assert.False(t, r.IsElementary, "expected non-elementary route (vertex 1 and 2 repeat)")
}

func TestReducedGraphRemovesForbidden(t *testing.T) {
	inst := chainInstance(t, 10)
	reduced := inst.Graph().Reduced(map[int]struct{}{2: {}}, nil)
	assert.False(t, reduced.HasArc(1, 2) || reduced.HasArc(2, 3), "expected all arcs touching forbidden vertex 2 removed")
	assert.True(t, reduced.HasArc(0, 1), "expected untouched arcs preserved")
}

func TestDefaultParametersApplyOptions(t *testing.T) {
	p := instance.DefaultParameters(instance.WithEps(1e-5), instance.WithNumSolvers(4))
	assert.Equal(t, 1e-5, p.Eps)
	assert.Equal(t, 4, p.NumSolvers)
}
