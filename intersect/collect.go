package intersect

import (
	"cmp"
	"slices"
	"sync"
	"sync/atomic"
)

// Collector is a Reporter target that records pairs. It is safe for
// concurrent use, so it works with every Concurrency mode.
//
//	var c intersect.Collector
//	err := intersect.Intersect(a, b, c.Report)
//	pairs := c.Pairs()
type Collector struct {
	mu    sync.Mutex
	pairs []Pair
}

// Report records (i, j). Its method value has the Reporter signature.
func (c *Collector) Report(i, j int) {
	c.mu.Lock()
	c.pairs = append(c.pairs, Pair{I: i, J: j})
	c.mu.Unlock()
}

// Len returns the number of recorded pairs.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pairs)
}

// Pairs returns a copy of the recorded pairs sorted by (I, J).
func (c *Collector) Pairs() []Pair {
	c.mu.Lock()
	out := slices.Clone(c.pairs)
	c.mu.Unlock()

	slices.SortFunc(out, ComparePairs)
	return out
}

// Reset drops all recorded pairs.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.pairs = c.pairs[:0]
	c.mu.Unlock()
}

// ComparePairs orders pairs by I, then J.
func ComparePairs(a, b Pair) int {
	if c := cmp.Compare(a.I, b.I); c != 0 {
		return c
	}
	return cmp.Compare(a.J, b.J)
}

// Counter is a Reporter target that only counts pairs. Safe for concurrent use.
type Counter struct {
	n atomic.Int64
}

// Report counts one pair.
func (c *Counter) Report(_, _ int) { c.n.Add(1) }

// Count returns the number of pairs reported so far.
func (c *Counter) Count() int64 { return c.n.Load() }
