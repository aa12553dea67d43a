// Package solverapi defines the plugin boundary between the generic
// parallel branch-and-bound engine (bbengine) and the TOP-specific
// node-solving/branching logic (colgen, branch) — DESIGN NOTES "Dynamic
// dispatch": "branching and node-solving are supplied as plugin
// functions."
package solverapi

import "github.com/katalvlaran/toppricer/bbnode"

// NodeSolver decorates an unsolved BBNode with its LP/MIP outputs (spec
// §4.6: "a pure function from a BBNode and an LP oracle handle to a
// decorated BBNode"). All workers call the same NodeSolver concurrently,
// so implementations must not share mutable state across calls; the one in
// cmd/toppricer builds a fresh oracle handle on every call.
type NodeSolver func(node *bbnode.BBNode) error

// Brancher produces node's children (spec §4.6), or nil if node is
// already integral.
type Brancher func(node *bbnode.BBNode) ([]*bbnode.BBNode, error)
