// Package bbengine is the generic parallel branch-and-bound engine (spec
// §4.5): a pool of workers consuming unsolved nodes and producing solved
// ones, coordinated by a single-threaded Processor over channels. The
// channel/worker-pool shape is adapted from the semaphore-channel +
// context.Context cancellation style of the reference solver-service's
// SolverPool (other_examples/.../solver.go, "Hola-to-network_logistics_problem"),
// generalized here from a bounded worker-semaphore to the Processor/open-queue
// split the spec requires.
package bbengine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/katalvlaran/toppricer/bbnode"
	"github.com/katalvlaran/toppricer/solverapi"
)

// Solution is the engine's final report (spec §6 "Output").
type Solution struct {
	Objective         float64
	Incumbent         *bbnode.BBNode
	NumCreatedNodes   int
	NumFeasibleNodes  int
	MaxParallelSolves int
}

// Engine runs a branch-and-bound search using caller-supplied NodeSolver
// and Brancher plugins (DESIGN NOTES "Dynamic dispatch").
type Engine struct {
	NumSolvers int
	Solve      solverapi.NodeSolver
	Branch     solverapi.Brancher
	Eps        float64
	TimeLimit  time.Duration
}

// New returns an Engine with the given worker count and plugin functions.
// numSolvers < 1 is treated as 1.
func New(numSolvers int, solve solverapi.NodeSolver, branch solverapi.Brancher, eps float64, timeLimit time.Duration) *Engine {
	if numSolvers < 1 {
		numSolvers = 1
	}

	return &Engine{NumSolvers: numSolvers, Solve: solve, Branch: branch, Eps: eps, TimeLimit: timeLimit}
}

type workResult struct {
	node *bbnode.BBNode
	err  error
}

// errCancelled marks a processLoop that stopped because ctx was cancelled
// or timed out; Run reports it to the caller as ctx.Err(). Separately, the
// engine treats any non-nil Solve/Branch error as globally fatal; a
// NodeSolver that wants a node merely pruned sets node.LPFeasible=false and
// returns nil.
var errCancelled = errors.New("bbengine: cancelled")

// Run dispatches root and drives the engine to completion, to a fatal
// error, or to a context cancellation/timeout (spec §5 "Cancellation &
// timeouts": on timeout, the current incumbent is reported).
func (e *Engine) Run(ctx context.Context, root *bbnode.BBNode) (Solution, error) {
	if e.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.TimeLimit)
		defer cancel()
	}
	workerCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()

	unsolved := make(chan *bbnode.BBNode, e.NumSolvers)
	solved := make(chan workResult, e.NumSolvers)

	var wg sync.WaitGroup
	wg.Add(e.NumSolvers)
	for i := 0; i < e.NumSolvers; i++ {
		go e.worker(workerCtx, unsolved, solved, &wg)
	}

	sol, err := e.processLoop(ctx, root, unsolved, solved)

	cancelWorkers()
	wg.Wait()

	if err != nil && errors.Is(err, errCancelled) {
		return sol, ctx.Err()
	}

	return sol, err
}

func (e *Engine) worker(ctx context.Context, unsolved <-chan *bbnode.BBNode, solved chan<- workResult, wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case node, ok := <-unsolved:
			if !ok {
				return
			}
			err := e.Solve(node)
			select {
			case solved <- workResult{node: node, err: err}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// processLoop is the single-threaded Processor (spec §4.5 "Protocol"). It
// never touches shared mutable state besides the local queue, incumbent,
// and counters, which is what lets workers run lock-free.
func (e *Engine) processLoop(ctx context.Context, root *bbnode.BBNode, unsolved chan<- *bbnode.BBNode, solved <-chan workResult) (Solution, error) {
	open := bbnode.NewOpenQueue()

	var incumbent *bbnode.BBNode
	numSolving := 1
	numCreated := 1
	numFeasible := 0
	maxParallel := 1

	dispatch := func(n *bbnode.BBNode) bool {
		select {
		case unsolved <- n:
			return true
		case <-ctx.Done():
			return false
		}
	}
	if !dispatch(root) {
		return e.report(incumbent, numCreated, numFeasible, maxParallel), errCancelled
	}

	for {
		select {
		case <-ctx.Done():
			return e.report(incumbent, numCreated, numFeasible, maxParallel), errCancelled
		case res := <-solved:
			numSolving--

			if res.err != nil {
				return e.report(incumbent, numCreated, numFeasible, maxParallel), res.err
			}

			n := res.node
			prune := !n.LPFeasible || (incumbent != nil && incumbent.LPObjective >= n.LPObjective-e.Eps)
			if !prune {
				numFeasible++
				if n.LPIntegral {
					if incumbent == nil || n.LPObjective > incumbent.LPObjective {
						incumbent = n
					}
				} else {
					children, err := e.Branch(n)
					if err != nil {
						return e.report(incumbent, numCreated, numFeasible, maxParallel), err
					}
					for _, c := range children {
						open.PushNode(c)
					}
					numCreated += len(children)
				}
			}

			for !open.Empty() && numSolving < e.NumSolvers {
				next := open.PopNode()
				if !dispatch(next) {
					return e.report(incumbent, numCreated, numFeasible, maxParallel), errCancelled
				}
				numSolving++
				if numSolving > maxParallel {
					maxParallel = numSolving
				}
			}

			if open.Empty() && numSolving == 0 {
				close(unsolved)

				return e.report(incumbent, numCreated, numFeasible, maxParallel), nil
			}
		}
	}
}

func (e *Engine) report(incumbent *bbnode.BBNode, numCreated, numFeasible, maxParallel int) Solution {
	obj := 0.0
	if incumbent != nil {
		obj = incumbent.LPObjective
	}

	return Solution{
		Objective:         obj,
		Incumbent:         incumbent,
		NumCreatedNodes:   numCreated,
		NumFeasibleNodes:  numFeasible,
		MaxParallelSolves: maxParallel,
	}
}
