package intersect

import "github.com/katalvlaran/boxsect/box"

// Test bridge: exposes unexported predicates and helpers to intersect_test
// without widening the production API. Wrappers work on float64 boxes and
// take explicit tie-break ids.

// ExportedOwns reports whether interval i (id ii) owns point p (id pi) along d.
func ExportedOwns(i box.Box[float64], ii int, p box.Box[float64], pi int, d int, t box.Topology) bool {
	tr := newTraits[float64](t)
	ei := entry[float64]{b: i, id: ii}
	ep := entry[float64]{b: p, id: pi}
	return tr.owns(&ei, &ep, d)
}

// ExportedSplitPoints runs splitPoints on bs along d and returns the split
// value, the size of the lower group and the lower bounds in sorted order.
func ExportedSplitPoints(bs []box.Box[float64], d int) (mi float64, mid int, ok bool, sorted []float64) {
	es := newEntries(bs, 0)
	mi, mid, ok = splitPoints(es, d)
	for _, e := range es {
		sorted = append(sorted, e.b.Min(d))
	}
	return mi, mid, ok, sorted
}

// ExportedPartition partitions xs by keep and returns the kept count.
func ExportedPartition(bs []box.Box[float64], keep func(b box.Box[float64]) bool) (int, []box.Box[float64]) {
	es := newEntries(bs, 0)
	n := partition(es, func(e *entry[float64]) bool { return keep(e.b) })
	out := make([]box.Box[float64], len(es))
	for k, e := range es {
		out[k] = e.b
	}
	return n, out
}
