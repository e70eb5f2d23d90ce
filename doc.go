// Package boxsect finds intersecting pairs of axis-aligned boxes in any
// number of dimensions.
//
// 🚀 What is boxsect?
//
//	A small, pure-Go library around one algorithm: the segment-tree sweep
//	for d-dimensional box intersection, with its brute-force companion.
//		• box/: Box capability interface, Closed/Open predicate, AABB
//		• intersect/: Intersect, SelfIntersect, AllPairs, options, collectors
//
// ✨ Why boxsect?
//
//   - Generic over any ordered coordinate type: int, float32, float64, ...
//   - Your boxes, your types: implement Dimension/Min/Max and go
//   - Caller slices stay in order; results are positions into them
//   - Optional parallel fan-out with join-before-return semantics
//
// Quick ASCII example:
//
//	  ┌─────┐
//	  │  A ┌┼────┐
//	  └────┼┘  B │
//	       └─────┘
//
//	A and B overlap, Intersect reports (0, 0).
//
//	go get github.com/katalvlaran/boxsect
package boxsect
