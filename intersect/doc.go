// Package intersect finds all intersecting pairs among axis-aligned boxes
// in d dimensions, between two collections or within one.
//
// 🚀 What does it solve?
//
//	Given boxes A and B, report every (a, b) whose intervals overlap on all
//	axes, without testing all |A|·|B| candidates. Typical callers:
//	  • collision broad phase (which objects may touch?)
//	  • mesh self-intersection (which triangle bounding boxes overlap?)
//	  • overlay of two polygon layers, spatial joins
//
// ✨ Key features:
//   - segment-tree sweep: one axis at a time, recursive, no static tree
//   - brute-force fallback below a tunable cutoff (WithCutoff, default 10)
//   - Closed / Open topology (WithTopology)
//   - Bipartite and Complete settings; SelfIntersect for one collection
//   - optional bounded parallel fan-out on an errgroup (WithConcurrency)
//   - inputs are never reordered: the engine permutes its own index array
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/boxsect/box"
//	  "github.com/katalvlaran/boxsect/intersect"
//	)
//
//	var pairs intersect.Collector
//	err := intersect.Intersect(a, b, pairs.Report,
//	  intersect.WithTopology(box.Open),
//	  intersect.WithCutoff(32),
//	)
//
//	// one collection against itself, i < j, each pair once
//	err = intersect.SelfIntersect(a, func(i, j int) { ... })
//
// Reporting:
//
//	The Reporter receives positions into the input slices. There is no early
//	termination. In Parallel / ParallelTwoPhase it may run on several
//	goroutines at once; Collector and Counter are safe for that.
//
// Performance:
//
//   - Time:   O(n·log^d(n) + k) for n boxes, d axes and k reported pairs
//   - Memory: O(n) working array (plus one copy per sequence in Parallel)
//
// AllPairs and SelfAllPairs expose the O(n·m·d) exhaustive tester, useful as
// ground truth and for tiny inputs.
package intersect
