package mastermodel

import (
	"errors"
	"sort"

	"github.com/katalvlaran/toppricer/instance"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// ErrSetCoverInfeasible signals TopSolverError::SetCoverInfeasible (spec
// §7): the LP oracle reported infeasibility on a model that already
// carries the auxiliary slack reformulation, which should never happen.
var ErrSetCoverInfeasible = errors.New("mastermodel: set-cover model infeasible despite auxiliary slack")

// GonumOracle implements MasterOracle on top of gonum's
// optimize/convex/lp.Simplex, standardizing the set-cover model's
// inequality-form rows into the equality-with-slacks shape Simplex
// expects, and recovering duals by solving the model's LP dual as a
// second Simplex call (gonum's public Simplex does not expose tableau
// internals for shadow-price extraction).
type GonumOracle struct {
	penaltyM float64
	eps      float64

	inst   *instance.Instance
	routes []instance.Route
	asMip  bool

	vertexList    []int
	mustVtxList   []int
	mustEdgeList  [][2]int
	numVars       int // K routes + 1 aux
	Ale           [][]float64
	ble           []float64
	fleetRow      int
	mustVtxStart  int
	mustEdgeStart int
	upperStart    int

	solved   bool
	feasible bool
	obj      float64
	primal   []float64 // size numVars (K routes + aux)

	routeDual    float64
	vertexDuals  []float64
	mustVtxDuals map[int]float64
	mustEdgDuals map[[2]int]float64
	routeVarDual []float64
}

// NewGonumOracle returns a GonumOracle with the given auxiliary-slack
// penalty and numerical tolerance (spec §4.2 "M", instance.Parameters.Eps).
func NewGonumOracle(penaltyM, eps float64) *GonumOracle {
	return &GonumOracle{penaltyM: penaltyM, eps: eps}
}

// Build constructs the restricted set-cover model (spec §4.2) over routes
// under restrictions. The asMip flag is accepted for interface parity but
// currently only the LP relaxation path is exercised by the MIP resolve
// step in colgen, which calls SolveMIP directly; ordinary Build/Solve
// always solves the continuous relaxation (see SolveMIP for the integral
// path, using gonum's lp.BNB).
func (o *GonumOracle) Build(inst *instance.Instance, routes []instance.Route, restrictions Restrictions, asMip bool) error {
	o.inst = inst
	o.routes = routes
	o.asMip = asMip
	o.solved = false

	K := len(routes)
	o.numVars = K + 1 // routes + aux slack a

	o.vertexList = nil
	for v := 0; v < inst.N(); v++ {
		if v == inst.Source() || v == inst.Dest() {
			continue
		}
		o.vertexList = append(o.vertexList, v)
	}

	o.mustVtxList = sortedIntSet(restrictions.MustVisitVertices)
	o.mustEdgeList = sortedEdgeSet(restrictions.MustVisitEdges)

	var Ale [][]float64
	var ble []float64

	for _, v := range o.vertexList {
		row := make([]float64, o.numVars)
		for k, r := range routes {
			if r.VisitsVertex(v) {
				row[k] = 1
			}
		}
		Ale = append(Ale, row)
		ble = append(ble, 1)
	}

	o.fleetRow = len(Ale)
	fleetRow := make([]float64, o.numVars)
	for k := range routes {
		fleetRow[k] = 1
	}
	Ale = append(Ale, fleetRow)
	ble = append(ble, float64(inst.FleetSize()))

	o.mustVtxStart = len(Ale)
	for _, v := range o.mustVtxList {
		row := make([]float64, o.numVars)
		for k, r := range routes {
			if r.VisitsVertex(v) {
				row[k] = -1
			}
		}
		row[K] = -1
		Ale = append(Ale, row)
		ble = append(ble, -1)
	}

	o.mustEdgeStart = len(Ale)
	for _, e := range o.mustEdgeList {
		row := make([]float64, o.numVars)
		for k, r := range routes {
			if r.VisitsEdge(e[0], e[1]) {
				row[k] = -1
			}
		}
		row[K] = -1
		Ale = append(Ale, row)
		ble = append(ble, -1)
	}

	o.upperStart = len(Ale)
	for k := range routes {
		row := make([]float64, o.numVars)
		row[k] = 1
		Ale = append(Ale, row)
		ble = append(ble, 1)
	}

	o.Ale = Ale
	o.ble = ble

	return nil
}

// Solve runs the LP relaxation built by Build.
func (o *GonumOracle) Solve() (bool, error) {
	K := len(o.routes)
	cMin := make([]float64, o.numVars)
	for k, r := range o.routes {
		cMin[k] = -r.Score
	}
	cMin[K] = o.penaltyM

	obj, x, err := solveLE(cMin, o.Ale, o.ble, o.eps)
	if err != nil {
		o.feasible = false
		o.solved = true

		return false, nil
	}

	o.feasible = true
	o.solved = true
	o.obj = -obj
	o.primal = x

	o.solveDuals()

	return true, nil
}

func (o *GonumOracle) solveDuals() {
	K := len(o.routes)
	m := len(o.Ale)
	n := o.numVars

	p := make([]float64, n)
	for k, r := range o.routes {
		p[k] = r.Score
	}
	p[K] = -o.penaltyM

	// Dual: min ble'y  s.t.  -Ale'y <= -p,  y >= 0.
	cDual := append([]float64(nil), o.ble...)
	ADual := make([][]float64, n)
	bDual := make([]float64, n)
	for j := 0; j < n; j++ {
		row := make([]float64, m)
		for i := 0; i < m; i++ {
			row[i] = -o.Ale[i][j]
		}
		ADual[j] = row
		bDual[j] = -p[j]
	}

	_, y, err := solveLE(cDual, ADual, bDual, o.eps)
	if err != nil {
		y = make([]float64, m)
	}

	o.vertexDuals = make([]float64, o.inst.N())
	for i, v := range o.vertexList {
		o.vertexDuals[v] = y[i]
	}
	o.routeDual = y[o.fleetRow]

	o.mustVtxDuals = make(map[int]float64, len(o.mustVtxList))
	for i, v := range o.mustVtxList {
		o.mustVtxDuals[v] = y[o.mustVtxStart+i]
	}

	o.mustEdgDuals = make(map[[2]int]float64, len(o.mustEdgeList))
	for i, e := range o.mustEdgeList {
		o.mustEdgDuals[e] = y[o.mustEdgeStart+i]
	}

	o.routeVarDual = make([]float64, K)
	for k := 0; k < K; k++ {
		o.routeVarDual[k] = y[o.upperStart+k]
	}
}

// SolveMIP re-solves the last built model with x_k ∈ {0,1} using gonum's
// lp.BNB (spec §4.3 step 3, "resolve as MIP for the MIP bound").
func (o *GonumOracle) SolveMIP() (bool, float64, []float64, error) {
	K := len(o.routes)
	cMin := make([]float64, o.numVars)
	for k, r := range o.routes {
		cMin[k] = -r.Score
	}
	cMin[K] = o.penaltyM

	A := denseOf(o.Ale)
	whole := make([]bool, o.numVars)
	for k := 0; k < K; k++ {
		whole[k] = true
	}

	obj, x, err := lp.BNB(cMin, nil, nil, A, o.ble, whole, o.eps)
	if err != nil {
		return false, 0, nil, nil
	}

	return true, -obj, x, nil
}

func (o *GonumOracle) Objective() float64 { return o.obj }

func (o *GonumOracle) Primal() []float64 {
	if len(o.primal) == 0 {
		return nil
	}

	return append([]float64(nil), o.primal[:len(o.routes)]...)
}

func (o *GonumOracle) AuxValue() float64 {
	if len(o.primal) == 0 {
		return 0
	}

	return o.primal[len(o.routes)]
}

func (o *GonumOracle) RouteDual() float64 { return o.routeDual }

func (o *GonumOracle) VertexDuals() []float64 { return append([]float64(nil), o.vertexDuals...) }

func (o *GonumOracle) MustVisitVertexDuals() map[int]float64 { return o.mustVtxDuals }

func (o *GonumOracle) MustVisitEdgeDuals() map[[2]int]float64 { return o.mustEdgDuals }

func (o *GonumOracle) RouteVariableDuals() []float64 {
	return append([]float64(nil), o.routeVarDual...)
}

// Dispose clears the oracle's per-build state so it can be reused for the
// next node without retaining stale slices.
func (o *GonumOracle) Dispose() {
	o.routes = nil
	o.Ale = nil
	o.ble = nil
	o.primal = nil
	o.vertexDuals = nil
	o.mustVtxDuals = nil
	o.mustEdgDuals = nil
	o.routeVarDual = nil
}

func sortedIntSet(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for v := range m {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

func sortedEdgeSet(m map[[2]int]struct{}) [][2]int {
	out := make([][2]int, 0, len(m))
	for e := range m {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}

		return out[i][1] < out[j][1]
	})

	return out
}

func denseOf(rows [][]float64) *mat.Dense {
	if len(rows) == 0 {
		return mat.NewDense(0, 0, nil)
	}
	m := len(rows)
	n := len(rows[0])
	flat := make([]float64, 0, m*n)
	for _, r := range rows {
		flat = append(flat, r...)
	}

	return mat.NewDense(m, n, flat)
}
