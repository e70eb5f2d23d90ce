package intersect

import (
	"cmp"
	"slices"
	"sort"
)

// Segment-tree sweep
//
// Description:
//
//	The sweep looks at one range as points (the lower corners of its boxes)
//	and at the other as intervals. A pair (p, i) is reported when interval i
//	owns p along the current axis d (see traits.owns) and the two boxes
//	overlap along every lower axis. Instead of materializing an interval tree,
//	the tree is built implicitly: each call covers a slab [lo, hi) of point
//	coordinates, intervals spanning the whole slab are settled by descending
//	one axis, the rest are pushed to the two halves of the slab.
//
// Algorithm Outline (per call, axis d, slab [lo, hi)):
//  1. Either range empty, or empty slab: return.
//  2. d == 0: sort both ranges and run a one-way scan along axis 0.
//  3. Either range at or below the cutoff: brute force on axes 0..d.
//  4. Partition the intervals spanning [lo, hi) to the front. Every point of
//     the slab lies inside them along d, so their pairs only need the lower
//     axes: recurse on d-1 with (points, spanning) and, roles swapped, with
//     (spanning, points).
//  5. Split the points at a median lower bound mi. If all points share one
//     lower bound, settle the remaining intervals on d-1 instead (see flat).
//  6. Intervals starting below mi go with [lo, mi); intervals whose upper bound
//     reaches mi go with [mi, hi). Recurse on both halves along d.
//
// Complexity: O(n·log^d(n) + k) expected for n boxes and k reported pairs;
// the brute-force base case bounds the constant.

// sweep carries the per-call state shared by every level of the recursion.
type sweep[T cmp.Ordered] struct {
	traits[T]
	cutoff int
	// emit receives (first, second) in the orientation of the public API.
	emit func(first, second *entry[T])
	// keep, when set, filters (point, interval) pairs before emit.
	keep func(p, i *entry[T], inOrder bool) bool
}

// slab is the half-open range [lo, hi) of point coordinates covered by a call.
// An unset side is unbounded.
type slab[T cmp.Ordered] struct {
	lo, hi       T
	hasLo, hasHi bool
}

func (s slab[T]) empty() bool { return s.hasLo && s.hasHi && s.lo >= s.hi }

func (s slab[T]) left(mi T) slab[T] {
	return slab[T]{lo: s.lo, hasLo: s.hasLo, hi: mi, hasHi: true}
}

func (s slab[T]) right(mi T) slab[T] {
	return slab[T]{lo: mi, hasLo: true, hi: s.hi, hasHi: s.hasHi}
}

// report orients a (point, interval) pair. inOrder means points come from the
// first logical sequence.
func (s *sweep[T]) report(p, i *entry[T], inOrder bool) {
	if s.keep != nil && !s.keep(p, i, inOrder) {
		return
	}
	if inOrder {
		s.emit(p, i)
		return
	}
	s.emit(i, p)
}

// tree is the recursive sweep over points ps and intervals is along axis d.
func (s *sweep[T]) tree(ps, is []entry[T], sl slab[T], d int, inOrder bool) {
	if len(ps) == 0 || len(is) == 0 || sl.empty() {
		return
	}
	if d == 0 {
		s.scan(ps, is, inOrder)
		return
	}
	if len(ps) <= s.cutoff || len(is) <= s.cutoff {
		s.bruteForce(ps, is, d, inOrder)
		return
	}

	span := 0
	if sl.hasLo && sl.hasHi {
		span = partition(is, func(e *entry[T]) bool {
			return e.b.Min(d) < sl.lo && e.b.Max(d) >= sl.hi
		})
	}
	if span > 0 {
		s.tree(ps, is[:span], slab[T]{}, d-1, inOrder)
		s.tree(is[:span], ps, slab[T]{}, d-1, !inOrder)
	}

	rest := is[span:]
	mi, mid, ok := splitPoints(ps, d)
	if !ok {
		s.flat(ps, rest, d, inOrder)
		return
	}

	n := partition(rest, func(e *entry[T]) bool { return e.b.Min(d) < mi })
	s.tree(ps[:mid], rest[:n], sl.left(mi), d, inOrder)

	n = partition(rest, func(e *entry[T]) bool { return s.reaches(e.b.Max(d), mi) })
	s.tree(ps[mid:], rest[:n], sl.right(mi), d, inOrder)
}

// flat handles a point range whose lower bounds along d all equal one value v,
// so no split exists. Nothing is settled pairwise along d:
//   - intervals starting below v and reaching it own every point along d and
//     recurse on d-1 like spanning intervals;
//   - intervals starting at v own a point only on the id tie-break; they
//     recurse on d-1 through a gated sweep that keeps those pairs only;
//   - intervals starting above v own nothing.
func (s *sweep[T]) flat(ps, is []entry[T], d int, inOrder bool) {
	v := ps[0].b.Min(d)

	below := partition(is, func(e *entry[T]) bool {
		return e.b.Min(d) < v && s.reaches(e.b.Max(d), v)
	})
	if below > 0 {
		s.tree(ps, is[:below], slab[T]{}, d-1, inOrder)
		s.tree(is[:below], ps, slab[T]{}, d-1, !inOrder)
	}

	tied := is[below:]
	tied = tied[:partition(tied, func(e *entry[T]) bool { return e.b.Min(d) == v && s.extends(e, d) })]
	pts := ps[:partition(ps, func(e *entry[T]) bool { return s.extends(e, d) })]
	if len(tied) == 0 || len(pts) == 0 {
		return
	}

	g := s.gated(inOrder)
	g.tree(pts, tied, slab[T]{}, d-1, inOrder)
	g.tree(tied, pts, slab[T]{}, d-1, !inOrder)
}

// extends reports whether e can overlap a box starting at its own lower bound
// along d: always when closed, only with a positive extent when open.
func (s *sweep[T]) extends(e *entry[T], d int) bool {
	return s.closed || e.b.Min(d) < e.b.Max(d)
}

// gated returns a copy of s that only reports pairs in which the entry that
// played the interval when the orientation was base has the smaller id.
// Gates compose with any gate already installed on s.
func (s *sweep[T]) gated(base bool) *sweep[T] {
	outer := s.keep
	g := *s
	g.keep = func(p, i *entry[T], inOrder bool) bool {
		if outer != nil && !outer(p, i, inOrder) {
			return false
		}
		if inOrder != base {
			p, i = i, p
		}
		return i.id < p.id
	}
	return &g
}

// splitPoints sorts ps by lower bound along d and picks a split value mi with
// ps[:mid] strictly below it and ps[mid:] at or above it, both non-empty.
// ok is false when every point has the same lower bound.
func splitPoints[T cmp.Ordered](ps []entry[T], d int) (mi T, mid int, ok bool) {
	slices.SortFunc(ps, func(a, b entry[T]) int { return cmp.Compare(a.b.Min(d), b.b.Min(d)) })

	n := len(ps)
	mi = ps[n/2].b.Min(d)
	mid = sort.Search(n, func(k int) bool { return ps[k].b.Min(d) >= mi })
	if mid > 0 {
		return mi, mid, true
	}

	// The median equals the minimum; move up to the next distinct bound.
	mid = sort.Search(n, func(k int) bool { return ps[k].b.Min(d) > mi })
	if mid == n {
		return mi, 0, false
	}
	return ps[mid].b.Min(d), mid, true
}

// scan is the base case along axis 0: both ranges are sorted by lower bound,
// then for each interval the points starting inside it are enumerated.
func (s *sweep[T]) scan(ps, is []entry[T], inOrder bool) {
	byLo := compareLo[T](0)
	slices.SortFunc(ps, byLo)
	slices.SortFunc(is, byLo)

	first := 0
	for ii := range is {
		i := &is[ii]
		for first < len(ps) && s.loLessLo(&ps[first], i, 0) {
			first++
		}
		for k := first; k < len(ps) && s.loLessHi(&ps[k], i, 0); k++ {
			p := &ps[k]
			if p.id == i.id || !s.loLessHi(i, p, 0) {
				continue
			}
			s.report(p, i, inOrder)
		}
	}
}

// bruteForce tests every (p, i) for ownership along d and overlap on axes
// below d. Axes above d were settled by the caller.
func (s *sweep[T]) bruteForce(ps, is []entry[T], d int, inOrder bool) {
	for pi := range ps {
		p := &ps[pi]
		for ii := range is {
			i := &is[ii]
			if p.id == i.id || !s.owns(i, p, d) || !s.overlapsBelow(p, i, d) {
				continue
			}
			s.report(p, i, inOrder)
		}
	}
}
