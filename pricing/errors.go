// Package pricing implements the ESPPRC pricing subroutine: bidirectional
// labeling with decremental state-space relaxation (DSSR), dominance,
// unreachable-vertex marking, and a halfway join rule (spec §4.1).
package pricing

import "errors"

// ErrCyclesWithCriticalVertex signals TopSolverError::CyclesWithCriticalVertex:
// a DSSR invariant was broken — a route marked optimal after a DSSR
// iteration visited a critical vertex more than once. Fatal globally
// (spec §4.1 step 6, §7).
var ErrCyclesWithCriticalVertex = errors.New("pricing: optimal route revisits a critical vertex after DSSR closure")
