package intersect

import (
	"cmp"

	"github.com/katalvlaran/boxsect/box"
)

// entry is one slot of the engine-owned working array. The caller's slice is
// never permuted; the sweep sorts and partitions entries instead.
//
//   - id  breaks ties between equal lower bounds. Two entries with the same id
//     stand for the same box (Complete setting).
//   - pos is the index in the caller's sequence, handed to the Reporter.
type entry[T cmp.Ordered] struct {
	b   box.Box[T]
	id  int
	pos int
}

// newEntries wraps bs with ids starting at base.
func newEntries[T cmp.Ordered](bs []box.Box[T], base int) []entry[T] {
	es := make([]entry[T], len(bs))
	for i, b := range bs {
		es[i] = entry[T]{b: b, id: base + i, pos: i}
	}
	return es
}

// traits bundles the topology-dependent comparisons used by the sweep and the
// brute-force tester. All of them treat lower bounds with the id tie-break so
// that, along any axis, exactly one box of an overlapping pair "owns" it.
type traits[T cmp.Ordered] struct {
	closed bool
}

func newTraits[T cmp.Ordered](t box.Topology) traits[T] {
	return traits[T]{closed: t == box.Closed}
}

// loLessLo orders lower bounds along d, ties broken by id.
func (tr traits[T]) loLessLo(a, b *entry[T], d int) bool {
	al, bl := a.b.Min(d), b.b.Min(d)
	return al < bl || (al == bl && a.id < b.id)
}

// loLessHi reports whether a's lower bound lies before b's upper bound along d.
func (tr traits[T]) loLessHi(a, b *entry[T], d int) bool {
	if tr.closed {
		return a.b.Min(d) <= b.b.Max(d)
	}
	return a.b.Min(d) < b.b.Max(d)
}

// overlaps is box.Overlap on entries.
func (tr traits[T]) overlaps(a, b *entry[T], d int) bool {
	return tr.loLessHi(a, b, d) && tr.loLessHi(b, a, d)
}

// overlapsBelow checks axes 0..d-1.
func (tr traits[T]) overlapsBelow(a, b *entry[T], d int) bool {
	for k := 0; k < d; k++ {
		if !tr.overlaps(a, b, k) {
			return false
		}
	}
	return true
}

// owns reports whether interval i owns the pair (p, i) along d: i starts first
// and the two projections overlap. Exactly one of owns(i, p, d) and
// owns(p, i, d) holds for distinct overlapping entries.
func (tr traits[T]) owns(i, p *entry[T], d int) bool {
	return tr.loLessLo(i, p, d) && tr.overlaps(p, i, d)
}

// reaches reports whether an upper bound hi reaches the split value v.
func (tr traits[T]) reaches(hi, v T) bool {
	if tr.closed {
		return hi >= v
	}
	return hi > v
}

// compareLo is the sort order of the one-way scan: lower bound along d, then id.
func compareLo[T cmp.Ordered](d int) func(a, b entry[T]) int {
	return func(a, b entry[T]) int {
		if c := cmp.Compare(a.b.Min(d), b.b.Min(d)); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	}
}

// partition moves the entries satisfying keep to the front of es and returns
// their count. Order within either group is unspecified.
func partition[T cmp.Ordered](es []entry[T], keep func(e *entry[T]) bool) int {
	n := 0
	for i := range es {
		if keep(&es[i]) {
			es[n], es[i] = es[i], es[n]
			n++
		}
	}
	return n
}
