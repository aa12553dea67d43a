package instance

// Instance is the immutable problem description for one Team Orienteering
// Problem solve: a directed weighted Graph, per-vertex prize, source and
// destination vertices, fleet size, and travel budget (spec §3). It is
// created once and never mutated afterward; all B&B workers and pricing
// calls share it by read-only reference (spec §5 "Shared resources").
type Instance struct {
	graph     *Graph
	prize     []float64
	source    int
	dest      int
	fleetSize int
	budget    float64
}

// New validates and constructs an Instance. Prize must have one entry per
// vertex; prize[source] and prize[dest] are ignored (the objective only
// counts intermediate vertices, spec §3 Route.score).
func New(graph *Graph, prize []float64, source, dest, fleetSize int, budget float64) (*Instance, error) {
	if graph == nil || graph.N() < 2 {
		return nil, ErrTooFewVertices
	}
	if source < 0 || source >= graph.N() || dest < 0 || dest >= graph.N() {
		return nil, ErrVertexOutOfRange
	}
	if fleetSize < 1 {
		return nil, ErrBadFleetSize
	}
	if budget <= 0 {
		return nil, ErrBadBudget
	}
	if len(prize) != graph.N() {
		return nil, ErrVertexOutOfRange
	}
	for _, p := range prize {
		if p < 0 {
			return nil, ErrNegativeWeight
		}
	}

	return &Instance{
		graph:     graph,
		prize:     append([]float64(nil), prize...),
		source:    source,
		dest:      dest,
		fleetSize: fleetSize,
		budget:    budget,
	}, nil
}

// Graph returns the instance's full (unrestricted) graph.
func (inst *Instance) Graph() *Graph { return inst.graph }

// Prize returns the prize of vertex v.
func (inst *Instance) Prize(v int) float64 { return inst.prize[v] }

// N returns the number of vertices.
func (inst *Instance) N() int { return inst.graph.N() }

// Source returns the source vertex s.
func (inst *Instance) Source() int { return inst.source }

// Dest returns the destination vertex t.
func (inst *Instance) Dest() int { return inst.dest }

// FleetSize returns the fleet size m.
func (inst *Instance) FleetSize() int { return inst.fleetSize }

// Budget returns the per-vehicle travel budget B.
func (inst *Instance) Budget() float64 { return inst.budget }

// ValidateVertex returns ErrMissingVertex if v is outside [0, N).
func (inst *Instance) ValidateVertex(v int) error {
	if v < 0 || v >= inst.N() {
		return ErrMissingVertex
	}

	return nil
}

// ValidateEdge returns ErrMissingEdge if (u, v) is not an arc of the
// original (unrestricted) graph.
func (inst *Instance) ValidateEdge(u, v int) error {
	if err := inst.ValidateVertex(u); err != nil {
		return ErrMissingEdge
	}
	if err := inst.ValidateVertex(v); err != nil {
		return ErrMissingEdge
	}
	if !inst.graph.HasArc(u, v) {
		return ErrMissingEdge
	}

	return nil
}
