package intersect

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/boxsect/box"
)

// Intersect reports every pair (i, j) such that a[i] and b[j] intersect.
//
// Description:
//
//	Bipartite (default): the sweep runs twice, first with a as points and b
//	as intervals, then mirrored. Between them, each crossing pair is found
//	exactly once. Complete: the caller asserts that b mirrors a (same length,
//	same bounds per position); one pass reports each unordered pair of
//	distinct positions once, as i < j.
//
// Contracts:
//   - report must be non-nil; it is called once per pair. In parallel modes
//     it may be called concurrently and must synchronize itself (see Collector).
//   - All boxes share one positive dimension and have Min(k) <= Max(k).
//   - a and b are not modified or reordered; the engine permutes its own
//     working arrays. Boxes must not change during the call.
//   - Empty a or b: no report, nil error.
//
// Errors: ErrNilReporter, ErrNilBox, ErrDimensionMismatch,
// box.ErrZeroDimension, box.ErrInvalidBounds, ErrSettingMismatch,
// ErrUnknownTopology, ErrUnknownSetting, ErrUnknownConcurrency, ErrNoExecutor,
// or the first error returned by a custom Executor.
//
// Complexity: O(n·log^D(n) + k) time for n boxes and k pairs, O(n) extra
// memory (twice that under Parallel).
func Intersect[T cmp.Ordered](a, b []box.Box[T], report Reporter, opts ...Option) error {
	o := gatherOptions(opts...)
	if err := validateOptions(o); err != nil {
		return err
	}
	if report == nil {
		return ErrNilReporter
	}
	dim, err := validateInputs(a, b, o.setting)
	if err != nil {
		return err
	}
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	if o.setting == Complete {
		// Mirrored positions share an id so a box never meets itself.
		return run(newEntries(a, 0), newEntries(b, 0), dim, report, o)
	}
	return run(newEntries(a, 0), newEntries(b, len(a)), dim, report, o)
}

// SelfIntersect reports every unordered pair {i, j}, i < j, of intersecting
// boxes of a, each exactly once. A box is never paired with itself; two
// positions holding identical bounds form a regular pair.
//
// The sweep partitions both of its ranges independently, so the engine works
// on two private arrays over a; a itself is left untouched. WithSetting is
// ignored.
//
// Errors and contracts as for Intersect.
func SelfIntersect[T cmp.Ordered](a []box.Box[T], report Reporter, opts ...Option) error {
	o := gatherOptions(opts...)
	o.setting = Complete
	if err := validateOptions(o); err != nil {
		return err
	}
	if report == nil {
		return ErrNilReporter
	}
	dim, err := validateSeq("a", a, 0)
	if err != nil {
		return err
	}
	if len(a) < 2 {
		return nil
	}

	ps := newEntries(a, 0)
	is := slices.Clone(ps)
	return run(ps, is, dim, report, o)
}

// run wires the reporter orientation and executes one or two sweep passes.
func run[T cmp.Ordered](ea, eb []entry[T], dim int, report Reporter, o Options) error {
	s := &sweep[T]{
		traits: newTraits[T](o.topology),
		cutoff: o.cutoff,
	}
	if o.setting == Complete {
		s.emit = func(x, y *entry[T]) {
			if x.pos < y.pos {
				report(x.pos, y.pos)
			} else {
				report(y.pos, x.pos)
			}
		}
	} else {
		s.emit = func(x, y *entry[T]) { report(x.pos, y.pos) }
	}

	top := dim - 1
	if err := s.fanOut(ea, eb, top, true, o); err != nil {
		return err
	}
	if o.setting == Bipartite {
		return s.fanOut(eb, ea, top, false, o)
	}
	return nil
}
