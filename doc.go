// Package toppricer implements a branch-and-price solver for the
// Euclidean Team Orienteering Problem (TOP): a fleet of identical
// vehicles starts at a source vertex and ends at a destination vertex,
// each intermediate vertex carries a prize collectable at most once
// across the whole fleet, and each vehicle's path length is bounded by
// a shared budget. The objective is to maximize total prize collected.
//
// At its core are three tightly-coupled subsystems (pricing, colgen with
// mastermodel, and bbengine); the full set of subpackages is:
//
//	instance/    immutable graph, prizes, budget, routes, parameters
//	bitset/      fixed-width vertex bit-sets used by pricing labels
//	state/       pricing labels (States), arena, min-heaps
//	pricing/     ESPPRC bidirectional labeling + DSSR pricing engine
//	mastermodel/ set-cover LP/MIP model + MasterOracle + gonum-backed oracle
//	colgen/      column-generation driver (master <-> pricing loop)
//	bbnode/      branch-and-bound node type + priority ordering
//	branch/      vertex/arc branching rule
//	bbengine/    parallel branch-and-bound engine (workers + processor)
//	solverapi/   the node/solver plugin boundary wiring colgen into bbengine
//	topio/       instance file parsing + Euclidean graph construction
//	kpi/         YAML KPI output writer
//	config/      CLI flag parsing
//	enumerate/   brute-force baseline for the CLI's -a 0 mode
//	cmd/toppricer/ CLI entrypoint
//
// See SPEC_FULL.md and DESIGN.md at the repository root for the full
// specification and the grounding ledger tying each package back to its
// reference implementation.
package toppricer
