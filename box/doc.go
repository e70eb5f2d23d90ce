// Package box defines the capability interface consumed by the intersection
// engine, the open/closed boundary predicate, and a couple of ready-made
// d-dimensional box types.
//
// 🚀 What is a box here?
//
//	An axis-aligned hyper-rectangle described by one [min, max] interval per
//	axis. Anything that can answer three questions is a box:
//	  • Dimension(): how many axes
//	  • Min(k): lower bound along axis k
//	  • Max(k): upper bound along axis k
//
// ✨ Key features:
//   - generic over any ordered coordinate type (int, float64, ...)
//   - Closed (default) and Open topology: Closed counts touching faces as
//     overlapping, Open does not
//   - AABB: a slice-backed box for any dimension; Tagged: an AABB carrying a
//     caller payload (an id, a pointer to a mesh face, ...)
//
// ⚙️ Usage:
//
//	a, _ := box.New([]float64{0, 0}, []float64{2, 2})
//	b, _ := box.New([]float64{2, 2}, []float64{4, 4})
//
//	box.Intersects[float64](a, b, box.Closed) // true: they share the corner (2,2)
//	box.Intersects[float64](a, b, box.Open)   // false
//
// Boxes are never mutated by the intersection engine.
package box
