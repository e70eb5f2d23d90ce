package box

import "cmp"

// Overlap reports whether the projections of a and b onto axis dim overlap.
//
//	Closed: a.Min(dim) <= b.Max(dim) && b.Min(dim) <= a.Max(dim)
//	Open:   a.Min(dim) <  b.Max(dim) && b.Min(dim) <  a.Max(dim)
//
// The predicate is symmetric in a and b. Unknown topologies behave as Closed.
func Overlap[T cmp.Ordered](a, b Box[T], dim int, t Topology) bool {
	if t == Open {
		return a.Min(dim) < b.Max(dim) && b.Min(dim) < a.Max(dim)
	}
	return a.Min(dim) <= b.Max(dim) && b.Min(dim) <= a.Max(dim)
}

// Intersects reports whether a and b overlap along every axis of a.
// Both boxes are expected to share the same dimension.
func Intersects[T cmp.Ordered](a, b Box[T], t Topology) bool {
	for k := 0; k < a.Dimension(); k++ {
		if !Overlap(a, b, k, t) {
			return false
		}
	}
	return true
}

// Check validates the preconditions the intersection engine relies on:
// a positive dimension and Min(k) <= Max(k) on every axis.
//
// Errors:
//   - ErrZeroDimension: Dimension() <= 0.
//   - ErrInvalidBounds: Min(k) > Max(k), or the bounds do not compare
//     (a NaN coordinate fails `lo <= hi`).
func Check[T cmp.Ordered](b Box[T]) error {
	d := b.Dimension()
	if d <= 0 {
		return ErrZeroDimension
	}
	for k := 0; k < d; k++ {
		if !(b.Min(k) <= b.Max(k)) {
			return ErrInvalidBounds
		}
	}
	return nil
}
