// Package branch implements the branching rule that turns one solved,
// fractional BBNode into 2 or 3 children (spec §4.6).
package branch

import "errors"

// ErrBranchOnNullArc names TopSolverError::BranchOnNullArc (spec §7). Rule.Branch
// does not return it: a node with neither a fractional vertex nor a
// fractional arc is treated as integral and yields nil children.
var ErrBranchOnNullArc = errors.New("branch: no fractional arc to branch on")

// ErrNullVertexReducedCosts signals TopSolverError::NullVertexReducedCosts
// (spec §7): branching was invoked on a node that was never solved.
var ErrNullVertexReducedCosts = errors.New("branch: node has no vertex reduced costs; was it solved?")
