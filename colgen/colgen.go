// Package colgen implements the column-generation driver: the master LP ↔
// pricing loop run once per branch-and-bound node (spec §4.3).
package colgen

import (
	"sort"

	"github.com/katalvlaran/toppricer/bbnode"
	"github.com/katalvlaran/toppricer/instance"
	"github.com/katalvlaran/toppricer/mastermodel"
	"github.com/katalvlaran/toppricer/pricing"
)

// Driver runs one node's column-generation loop against a single
// MasterOracle handle. The handle is not tied to a worker: cmd/toppricer
// builds a fresh oracle and Driver for every node it solves, and no oracle
// persists across nodes.
type Driver struct {
	Oracle mastermodel.MasterOracle
	Params *instance.Parameters
}

// NewDriver returns a Driver bound to oracle and params.
func NewDriver(oracle mastermodel.MasterOracle, params *instance.Parameters) *Driver {
	return &Driver{Oracle: oracle, Params: params}
}

// Solve runs the §4.3 procedure for node against inst, decorating node's
// solved fields in place. seedRoutes are the routes already known for this
// node (carried down from the parent, plus any node-local restrictions);
// the driver appends newly priced routes to its own working pool and does
// not mutate seedRoutes.
func (d *Driver) Solve(inst *instance.Instance, node *bbnode.BBNode, seedRoutes []instance.Route) error {
	for v := range node.ForbiddenVertices {
		if err := inst.ValidateVertex(v); err != nil {
			return err
		}
	}
	for v := range node.MustVisitVertices {
		if err := inst.ValidateVertex(v); err != nil {
			return err
		}
	}
	for e := range node.ForbiddenEdges {
		if err := inst.ValidateEdge(e[0], e[1]); err != nil {
			return err
		}
	}
	for e := range node.MustVisitEdges {
		if err := inst.ValidateEdge(e[0], e[1]); err != nil {
			return err
		}
	}

	reduced := inst.Graph().Reduced(node.ForbiddenVertices, node.ForbiddenEdges)

	restrictions := mastermodel.Restrictions{
		MustVisitVertices: node.MustVisitVertices,
		MustVisitEdges:    node.MustVisitEdges,
		ForbiddenVertices: node.ForbiddenVertices,
		ForbiddenEdges:    node.ForbiddenEdges,
	}

	pool := make(map[string]instance.Route, len(seedRoutes))
	for _, r := range seedRoutes {
		pool[r.Key()] = r
	}

	var lastOK bool
	for {
		routes := poolSlice(pool)
		if err := d.Oracle.Build(inst, routes, restrictions, false); err != nil {
			return err
		}
		ok, err := d.Oracle.Solve()
		if err != nil {
			return err
		}
		if !ok {
			lastOK = false
			break
		}
		lastOK = true

		duals := d.buildDuals(inst, restrictions)

		eng := pricing.New(inst, reduced, duals, d.Params)
		res, err := eng.Run()
		if err != nil {
			return err
		}
		if len(res.Routes) == 0 {
			break
		}
		added := false
		for _, r := range res.Routes {
			if _, exists := pool[r.Key()]; !exists {
				pool[r.Key()] = r
				added = true
			}
		}
		if !added {
			break
		}
	}

	node.LPFeasible = lastOK
	if !lastOK {
		return nil
	}

	finalRoutes := poolSlice(pool)
	d.fillSolvedFields(inst, node, finalRoutes, restrictions)

	return nil
}

func (d *Driver) buildDuals(inst *instance.Instance, restrictions mastermodel.Restrictions) pricing.Duals {
	n := inst.N()
	piVtx := make([]float64, n)
	vertexDuals := d.Oracle.VertexDuals()
	mustVtxDuals := d.Oracle.MustVisitVertexDuals()
	for v := 0; v < n; v++ {
		piVtx[v] = vertexDuals[v] - inst.Prize(v)
		if dv, ok := mustVtxDuals[v]; ok {
			piVtx[v] += dv
		}
	}

	piArc := make([][]float64, n)
	for u := range piArc {
		piArc[u] = make([]float64, n)
	}
	for e, dv := range d.Oracle.MustVisitEdgeDuals() {
		piArc[e[0]][e[1]] = dv
	}

	return pricing.Duals{PiVeh: d.Oracle.RouteDual(), PiVtx: piVtx, PiArc: piArc}
}

func (d *Driver) fillSolvedFields(inst *instance.Instance, node *bbnode.BBNode, routes []instance.Route, restrictions mastermodel.Restrictions) {
	node.LPObjective = d.Oracle.Objective()
	node.LPSolution = lpSolution(routes, d.Oracle.Primal(), d.Params.Eps)
	node.VertexReducedCosts = append([]float64(nil), d.Oracle.VertexDuals()...)

	node.LPIntegral = isIntegral(d.Oracle.Primal(), d.Params.Eps)

	node.DualLPUpperBound = d.dualUpperBound(inst, restrictions)

	if d.Oracle.AuxValue() >= d.Params.Eps {
		return
	}

	if err := d.Oracle.Build(inst, routes, restrictions, true); err != nil {
		return
	}
	type mipOracle interface {
		SolveMIP() (bool, float64, []float64, error)
	}
	mo, ok := d.Oracle.(mipOracle)
	if !ok {
		return
	}
	ok2, obj, x, err := mo.SolveMIP()
	if err != nil || !ok2 {
		return
	}
	node.MIPObjective = obj
	node.MIPSolution = lpSolution(routes, x, d.Params.Eps)
}

func (d *Driver) dualUpperBound(inst *instance.Instance, restrictions mastermodel.Restrictions) float64 {
	sum := 0.0
	for _, v := range d.Oracle.VertexDuals() {
		sum += v
	}
	for _, v := range d.Oracle.MustVisitVertexDuals() {
		sum -= v
	}
	for _, v := range d.Oracle.MustVisitEdgeDuals() {
		sum -= v
	}
	sum += d.Oracle.RouteDual() * float64(inst.FleetSize()+1)
	for _, rv := range d.Oracle.RouteVariableDuals() {
		if rv > 0 {
			sum += rv
		}
	}

	return sum
}

func lpSolution(routes []instance.Route, x []float64, eps float64) []bbnode.RouteWeight {
	var out []bbnode.RouteWeight
	for k, r := range routes {
		if k >= len(x) {
			break
		}
		if x[k] > eps {
			out = append(out, bbnode.RouteWeight{Route: r, Weight: x[k]})
		}
	}

	return out
}

func isIntegral(x []float64, eps float64) bool {
	for _, v := range x {
		if v > eps && v < 1-eps {
			return false
		}
	}

	return true
}

func poolSlice(pool map[string]instance.Route) []instance.Route {
	keys := make([]string, 0, len(pool))
	for k := range pool {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]instance.Route, 0, len(pool))
	for _, k := range keys {
		out = append(out, pool[k])
	}

	return out
}
