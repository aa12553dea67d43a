package instance

import "time"

// Parameters bundles every tunable knob of the pricing engine, the
// column-generation driver, and the branch-and-bound engine into one
// immutable value, built once via functional options and shared by pointer
// across workers (DESIGN NOTES "Global mutable parameters": "make
// Parameters an immutable value shared by reference"). The functional
// option shape mirrors the teacher's dijkstra.Options/dijkstra.Option.
type Parameters struct {
	// Eps is the numerical tolerance used throughout pricing, the master,
	// and B&B pruning comparisons (spec §4.1, §4.4, §4.5).
	Eps float64

	// MaxColumnsAdded bounds the number of routes returned per pricing
	// call (spec §4.1 contract).
	MaxColumnsAdded int

	// MaxPathsAfterSearch is the second DSSR outer-loop stopping
	// condition on |R| (spec §4.1 step 4b).
	MaxPathsAfterSearch int

	// UseDomination enables dominance-based label pruning (spec §4.1.1).
	UseDomination bool

	// TwoWayDomination additionally removes existing states dominated by
	// a newly inserted state (spec §4.1.1 addIfNonDominated).
	TwoWayDomination bool

	// NumBits controls the bit-set word granularity reserved for
	// instances whose vertex count is not known at construction time;
	// retained for forward compatibility with streaming instance loaders
	// (unused by the dense bitset.Set, which sizes itself from N()).
	NumBits int

	// ForwardOnly disables the backward labeling heap, reducing the
	// bidirectional search to pure forward labeling (DESIGN NOTES open
	// question (a)). BackwardOnly is the symmetric reduction.
	ForwardOnly  bool
	BackwardOnly bool

	// NumSolvers is the size of the B&B worker pool (spec §4.5).
	NumSolvers int

	// TimeLimit is a wall-clock budget for the whole B&B run (spec §5
	// "Cancellation & timeouts"). Zero means no limit.
	TimeLimit time.Duration

	// PenaltyM is the large per-unit penalty on the set-cover auxiliary
	// slack variable `a` (spec §4.2). DESIGN NOTES (c): a tuning
	// constant, not a contract; default 1e5.
	PenaltyM float64
}

// Option is a functional option mutating Parameters during construction.
type Option func(*Parameters)

// WithEps overrides the numerical tolerance.
func WithEps(eps float64) Option {
	return func(p *Parameters) { p.Eps = eps }
}

// WithMaxColumnsAdded overrides the pricing batch size cap.
func WithMaxColumnsAdded(n int) Option {
	return func(p *Parameters) { p.MaxColumnsAdded = n }
}

// WithMaxPathsAfterSearch overrides the DSSR outer-loop |R| cap.
func WithMaxPathsAfterSearch(n int) Option {
	return func(p *Parameters) { p.MaxPathsAfterSearch = n }
}

// WithDomination toggles one-way dominance pruning.
func WithDomination(enabled bool) Option {
	return func(p *Parameters) { p.UseDomination = enabled }
}

// WithTwoWayDomination toggles two-way dominance pruning.
func WithTwoWayDomination(enabled bool) Option {
	return func(p *Parameters) { p.TwoWayDomination = enabled }
}

// WithForwardOnly selects the forward-only labeling reduction (DESIGN
// NOTES open question (a)).
func WithForwardOnly() Option {
	return func(p *Parameters) { p.ForwardOnly = true; p.BackwardOnly = false }
}

// WithBackwardOnly selects the backward-only labeling reduction.
func WithBackwardOnly() Option {
	return func(p *Parameters) { p.BackwardOnly = true; p.ForwardOnly = false }
}

// WithNumSolvers overrides the B&B worker pool size. Panics on n < 1,
// mirroring the teacher's WithMaxDistance/WithInfEdgeThreshold panic on
// invalid functional-option arguments (dijkstra/types.go).
func WithNumSolvers(n int) Option {
	if n < 1 {
		panic("instance: NumSolvers must be >= 1")
	}

	return func(p *Parameters) { p.NumSolvers = n }
}

// WithTimeLimit overrides the wall-clock budget.
func WithTimeLimit(d time.Duration) Option {
	return func(p *Parameters) { p.TimeLimit = d }
}

// WithPenaltyM overrides the auxiliary-slack penalty constant.
func WithPenaltyM(m float64) Option {
	return func(p *Parameters) { p.PenaltyM = m }
}

// DefaultParameters returns sane defaults, then applies opts in order.
func DefaultParameters(opts ...Option) *Parameters {
	p := &Parameters{
		Eps:                 1e-6,
		MaxColumnsAdded:     50,
		MaxPathsAfterSearch: 200,
		UseDomination:       true,
		TwoWayDomination:    false,
		NumBits:             64,
		NumSolvers:          1,
		TimeLimit:           0,
		PenaltyM:            1e5,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}
