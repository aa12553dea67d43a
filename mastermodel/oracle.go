package mastermodel

import "github.com/katalvlaran/toppricer/instance"

// MasterOracle is the one LP/MIP boundary the column-generation driver and
// branch-and-bound engine depend on (spec §6 "LP oracle interface"). A
// handle is used by one Driver at a time; cmd/toppricer creates a new
// handle for every node solve rather than keeping one per worker.
type MasterOracle interface {
	// Build constructs the restricted set-cover model (spec §4.2) over
	// routes under restrictions. asMip selects x_k ∈ {0,1} over x_k ∈
	// [0,1].
	Build(inst *instance.Instance, routes []instance.Route, restrictions Restrictions, asMip bool) error

	// Solve runs the model built by the last Build call. ok=false means
	// the model is infeasible (spec §7 "per-node LP infeasibility is not
	// an error").
	Solve() (ok bool, err error)

	Objective() float64

	// Primal returns x_k for every route in the order passed to Build.
	Primal() []float64

	// AuxValue returns the auxiliary slack variable a's value; a ≥ ε
	// means the restricted model needed must-visit slack to stay
	// feasible (spec §4.2).
	AuxValue() float64

	// RouteDual returns the dual of the fleet-size constraint (π_veh).
	RouteDual() float64

	// VertexDuals returns the vertex-cover constraint duals, indexed by
	// vertex (spec §4.2 "vertex cover").
	VertexDuals() []float64

	// MustVisitVertexDuals returns the must-visit-vertex constraint
	// duals, keyed by vertex.
	MustVisitVertexDuals() map[int]float64

	// MustVisitEdgeDuals returns the must-visit-edge constraint duals,
	// keyed by (u, v).
	MustVisitEdgeDuals() map[[2]int]float64

	// RouteVariableDuals returns the reduced cost of each route variable
	// at the optimal basis, used by the dual-upper-bound formula (spec
	// §4.3 step 4).
	RouteVariableDuals() []float64

	// Dispose releases any resources held by the last Build/Solve cycle.
	Dispose()
}
