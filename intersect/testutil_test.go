// Package intersect_test provides helpers shared across *_test.go files:
// deterministic random streams, random box generators and ground-truth
// collection through the exhaustive tester.
package intersect_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/boxsect/box"
	"github.com/katalvlaran/boxsect/intersect"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the base seed of every randomized test.
	seedDet = int64(20041)

	// coordSpan is the range of lower bounds for float generators.
	coordSpan = 100.0

	// gridSpan is the range of integer coordinates; small on purpose so that
	// equal bounds and degenerate boxes are frequent.
	gridSpan = 8
)

// -----------------------------------------------------------------------------
// Deterministic random streams
// -----------------------------------------------------------------------------

// rngFromSeed returns a deterministic *rand.Rand; seed==0 maps to seedDet.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = seedDet
	}
	return rand.New(rand.NewSource(seed))
}

// deriveRNG creates an independent stream per subtest from a parent seed and
// a stream id (SplitMix64 finalizer).
func deriveRNG(parent int64, stream uint64) *rand.Rand {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return rand.New(rand.NewSource(int64(x)))
}

// -----------------------------------------------------------------------------
// Box generators
// -----------------------------------------------------------------------------

// randomBoxes returns n float boxes in dim axes with lower bounds in
// [0, coordSpan) and extents in [0, maxExtent).
func randomBoxes(r *rand.Rand, n, dim int, maxExtent float64) []box.Box[float64] {
	out := make([]box.Box[float64], n)
	for i := range out {
		lo := make([]float64, dim)
		hi := make([]float64, dim)
		for k := 0; k < dim; k++ {
			lo[k] = r.Float64() * coordSpan
			hi[k] = lo[k] + r.Float64()*maxExtent
		}
		out[i] = box.AABB[float64]{Lo: lo, Hi: hi}
	}
	return out
}

// gridBoxes returns n integer boxes on a tiny grid: many shared bounds,
// touching faces and degenerate (zero-extent) axes.
func gridBoxes(r *rand.Rand, n, dim int) []box.Box[int] {
	out := make([]box.Box[int], n)
	for i := range out {
		lo := make([]int, dim)
		hi := make([]int, dim)
		for k := 0; k < dim; k++ {
			lo[k] = r.Intn(gridSpan)
			hi[k] = lo[k] + r.Intn(3)
		}
		out[i] = box.AABB[int]{Lo: lo, Hi: hi}
	}
	return out
}

// flatBoxes returns n float boxes whose lower bound is 0 on every axis in
// flat; upper bounds there are drawn from {0, 1, 2}, so zero-extent axes occur.
// The other axes behave as in randomBoxes.
func flatBoxes(r *rand.Rand, n, dim int, maxExtent float64, flat ...int) []box.Box[float64] {
	out := randomBoxes(r, n, dim, maxExtent)
	for _, b := range out {
		bb := b.(box.AABB[float64])
		for _, k := range flat {
			bb.Lo[k] = 0
			bb.Hi[k] = float64(r.Intn(3))
		}
	}
	return out
}

// mk builds a float box from its two corners.
func mk(lo, hi []float64) box.Box[float64] {
	return box.AABB[float64]{Lo: lo, Hi: hi}
}

// shuffled returns a permuted copy of bs together with perm, where
// out[k] = bs[perm[k]].
func shuffled[T any](r *rand.Rand, bs []T) ([]T, []int) {
	perm := r.Perm(len(bs))
	out := make([]T, len(bs))
	for k, src := range perm {
		out[k] = bs[src]
	}
	return out, perm
}

// -----------------------------------------------------------------------------
// Running helpers
// -----------------------------------------------------------------------------

// collect runs Intersect and returns its sorted pairs.
func collect[T int | float64](t *testing.T, a, b []box.Box[T], opts ...intersect.Option) []intersect.Pair {
	t.Helper()
	var c intersect.Collector
	require.NoError(t, intersect.Intersect(a, b, c.Report, opts...))
	return c.Pairs()
}

// collectSelf runs SelfIntersect and returns its sorted pairs.
func collectSelf[T int | float64](t *testing.T, a []box.Box[T], opts ...intersect.Option) []intersect.Pair {
	t.Helper()
	var c intersect.Collector
	require.NoError(t, intersect.SelfIntersect(a, c.Report, opts...))
	return c.Pairs()
}

// truth runs the exhaustive tester with the same options.
func truth[T int | float64](t *testing.T, a, b []box.Box[T], opts ...intersect.Option) []intersect.Pair {
	t.Helper()
	var c intersect.Collector
	require.NoError(t, intersect.AllPairs(a, b, c.Report, opts...))
	return c.Pairs()
}

// truthSelf runs the exhaustive tester over one sequence.
func truthSelf[T int | float64](t *testing.T, a []box.Box[T], opts ...intersect.Option) []intersect.Pair {
	t.Helper()
	var c intersect.Collector
	require.NoError(t, intersect.SelfAllPairs(a, c.Report, opts...))
	return c.Pairs()
}

// requireNoDuplicates fails when a pair appears twice or pairs a box with itself.
func requireNoDuplicates(t *testing.T, pairs []intersect.Pair, self bool) {
	t.Helper()
	seen := make(map[intersect.Pair]struct{}, len(pairs))
	for _, p := range pairs {
		_, dup := seen[p]
		require.False(t, dup, "pair %v reported twice", p)
		seen[p] = struct{}{}
		if self {
			require.Less(t, p.I, p.J, "self pair must be ordered i<j and never i==j")
		}
	}
}
