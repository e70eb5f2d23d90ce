package intersect

import (
	"cmp"

	"github.com/katalvlaran/boxsect/box"
)

// AllPairs is the exhaustive tester: it checks every candidate pair on every
// axis with box.Overlap.
//
// Description:
//
//	Bipartite (default): every (i, j) in a×b is tested.
//	Complete: b must mirror a; only i < j is tested, so no box meets itself
//	and no pair is reported twice.
//
// It honors WithTopology and WithSetting; cutoff and concurrency options are
// accepted and ignored. Reports come in row-major order. AllPairs is the
// ground truth Intersect is tested against and remains the better choice for
// tiny inputs or coordinate distributions where every box meets every other.
//
// Errors: as for Intersect, except ErrNoExecutor.
//
// Complexity: O(|a|·|b|·D) time, O(1) extra memory.
func AllPairs[T cmp.Ordered](a, b []box.Box[T], report Reporter, opts ...Option) error {
	o := gatherOptions(opts...)
	o.concurrency = Sequential
	if err := validateOptions(o); err != nil {
		return err
	}
	if report == nil {
		return ErrNilReporter
	}
	if _, err := validateInputs(a, b, o.setting); err != nil {
		return err
	}

	for i := range a {
		j0 := 0
		if o.setting == Complete {
			j0 = i + 1
		}
		for j := j0; j < len(b); j++ {
			if box.Intersects(a[i], b[j], o.topology) {
				report(i, j)
			}
		}
	}
	return nil
}

// SelfAllPairs is AllPairs over a single sequence under the Complete setting:
// every unordered pair i < j is tested once.
func SelfAllPairs[T cmp.Ordered](a []box.Box[T], report Reporter, opts ...Option) error {
	opts = append(opts[:len(opts):len(opts)], WithSetting(Complete))
	return AllPairs(a, a, report, opts...)
}
