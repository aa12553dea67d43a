// Package instance defines the immutable problem data for the Team
// Orienteering Problem core: the directed weighted Graph, the Instance
// (graph + prize + source/destination/fleet/budget), the Route value type,
// and the immutable Parameters controlling pricing/column-generation/B&B
// behavior (spec §3).
package instance

import "errors"

// Sentinel errors for instance construction and restriction application.
// These mirror the teacher's convention of package-scoped sentinel errors
// (see core.ErrVertexNotFound et al.) rather than ad-hoc fmt.Errorf values.
var (
	// ErrTooFewVertices indicates n < 2: no source/destination pair possible.
	ErrTooFewVertices = errors.New("instance: graph must have at least two vertices")

	// ErrBadFleetSize indicates a fleet size < 1.
	ErrBadFleetSize = errors.New("instance: fleet size must be >= 1")

	// ErrBadBudget indicates a non-positive budget.
	ErrBadBudget = errors.New("instance: budget must be > 0")

	// ErrNegativeWeight indicates an edge with w(e) < 0.
	ErrNegativeWeight = errors.New("instance: edge weight must be >= 0")

	// ErrSelfLoop indicates an edge (v, v).
	ErrSelfLoop = errors.New("instance: self-loops are not allowed")

	// ErrEdgeIntoSource indicates an in-edge to the source vertex.
	ErrEdgeIntoSource = errors.New("instance: no in-edges into the source vertex are allowed")

	// ErrEdgeOutOfDestination indicates an out-edge from the destination vertex.
	ErrEdgeOutOfDestination = errors.New("instance: no out-edges from the destination vertex are allowed")

	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("instance: vertex index out of range")

	// ErrMissingVertex signals TopSolverError::MissingVertex: a restriction
	// referenced a vertex absent from the original graph. Fatal globally.
	ErrMissingVertex = errors.New("instance: restriction references a vertex missing from the original graph")

	// ErrMissingEdge signals TopSolverError::MissingEdge: a restriction
	// referenced an edge absent from the original graph. Fatal globally.
	ErrMissingEdge = errors.New("instance: restriction references an edge missing from the original graph")
)
