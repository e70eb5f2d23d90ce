// Package intersect defines settings, reporting types and sentinel errors
// for box intersection.
package intersect

import "github.com/pkg/errors"

// Sentinel errors. Validation errors are wrapped with the offending sequence
// and position; use errors.Is to match them.
var (
	// ErrNilReporter indicates a nil Reporter.
	ErrNilReporter = errors.New("intersect: reporter must be non-nil")

	// ErrDimensionMismatch indicates boxes of differing dimension, within one
	// sequence or across the two sequences.
	ErrDimensionMismatch = errors.New("intersect: all boxes must share one dimension")

	// ErrNilBox indicates a nil entry in an input sequence.
	ErrNilBox = errors.New("intersect: nil box")

	// ErrSettingMismatch indicates a Complete setting whose second sequence
	// does not mirror the first one position by position.
	ErrSettingMismatch = errors.New("intersect: complete setting requires the second sequence to mirror the first")

	// ErrUnknownSetting indicates a Setting outside {Bipartite, Complete}.
	ErrUnknownSetting = errors.New("intersect: unknown setting")

	// ErrUnknownTopology indicates a box.Topology outside {Closed, Open}.
	ErrUnknownTopology = errors.New("intersect: unknown topology")

	// ErrUnknownConcurrency indicates a Concurrency outside the declared modes.
	ErrUnknownConcurrency = errors.New("intersect: unknown concurrency mode")

	// ErrNoExecutor indicates a parallel mode without a usable Executor.
	// Parallel modes never fall back to sequential execution silently.
	ErrNoExecutor = errors.New("intersect: parallel mode requires an executor")
)

// Setting selects which pairs are reported.
//
//   - Bipartite: pairs (a, b) with a from the first and b from the second
//     sequence.
//   - Complete: the two sequences are the same collection; every unordered
//     pair of distinct boxes is reported once and never a box with itself.
type Setting int

const (
	// Bipartite intersects two logically distinct sequences. Default.
	Bipartite Setting = iota

	// Complete intersects one collection against itself.
	Complete
)

// String implements fmt.Stringer.
func (s Setting) String() string {
	switch s {
	case Bipartite:
		return "bipartite"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Concurrency selects the execution strategy of the sweep.
//
//   - Sequential: single goroutine, deterministic report order.
//   - Parallel: both ranges are split at their index midpoint; one
//     copy of each working array lets all four
//     sub-problems run at once.
//   - ParallelTwoPhase: same split without copies; the four sub-problems run
//     as two rounds of two so no storage is shared.
type Concurrency int

const (
	// Sequential runs the sweep on the calling goroutine. Default.
	Sequential Concurrency = iota

	// Parallel runs four sub-problems concurrently, at the cost of one copy
	// of each working array.
	Parallel

	// ParallelTwoPhase runs two rounds of two concurrent sub-problems.
	ParallelTwoPhase
)

// String implements fmt.Stringer.
func (c Concurrency) String() string {
	switch c {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	case ParallelTwoPhase:
		return "parallel-two-phase"
	default:
		return "unknown"
	}
}

// Reporter receives one intersecting pair per call. i indexes the first input
// sequence and j the second; under Complete both index the same collection
// and i < j. In parallel modes a Reporter may be invoked concurrently.
type Reporter func(i, j int)

// Pair is one reported intersection, as positions in the input sequences.
type Pair struct {
	I, J int
}

// Executor is the fork-join backend used by parallel modes: Go submits a task,
// Wait blocks until every submitted task has returned and yields the first
// non-nil error. *errgroup.Group satisfies it.
type Executor interface {
	Go(f func() error)
	Wait() error
}
