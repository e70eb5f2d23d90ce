package box

import (
	"cmp"
	"fmt"
	"strings"
)

// AABB is a slice-backed axis-aligned box of any dimension.
// Lo[k] and Hi[k] hold the bounds along axis k.
//
// AABB has value semantics for its methods but shares the backing arrays of
// Lo and Hi; use New or Clone when an independent copy is needed.
type AABB[T cmp.Ordered] struct {
	Lo, Hi []T
}

var _ Box[float64] = AABB[float64]{}

// New returns a box with independent copies of lo and hi.
//
// Errors:
//   - ErrLengthMismatch: len(lo) != len(hi).
//   - ErrZeroDimension: len(lo) == 0.
//   - ErrInvalidBounds: lo[k] > hi[k] (or NaN) for some k.
func New[T cmp.Ordered](lo, hi []T) (AABB[T], error) {
	if len(lo) != len(hi) {
		return AABB[T]{}, ErrLengthMismatch
	}
	b := AABB[T]{
		Lo: append([]T(nil), lo...),
		Hi: append([]T(nil), hi...),
	}
	if err := Check[T](b); err != nil {
		return AABB[T]{}, err
	}
	return b, nil
}

// FromPoint returns the degenerate box [p, p].
func FromPoint[T cmp.Ordered](p []T) AABB[T] {
	return AABB[T]{
		Lo: append([]T(nil), p...),
		Hi: append([]T(nil), p...),
	}
}

// Dimension returns the number of axes.
func (b AABB[T]) Dimension() int { return len(b.Lo) }

// Min returns the lower bound along axis k.
func (b AABB[T]) Min(k int) T { return b.Lo[k] }

// Max returns the upper bound along axis k.
func (b AABB[T]) Max(k int) T { return b.Hi[k] }

// Clone returns a deep copy of b.
func (b AABB[T]) Clone() AABB[T] {
	return AABB[T]{
		Lo: append([]T(nil), b.Lo...),
		Hi: append([]T(nil), b.Hi...),
	}
}

// Union returns the smallest box containing both b and o.
// Both boxes must have the same dimension.
func (b AABB[T]) Union(o Box[T]) AABB[T] {
	u := b.Clone()
	for k := range u.Lo {
		u.Lo[k] = min(u.Lo[k], o.Min(k))
		u.Hi[k] = max(u.Hi[k], o.Max(k))
	}
	return u
}

// String renders the box as a product of intervals, e.g. "[0,2]x[1,3]".
func (b AABB[T]) String() string {
	var sb strings.Builder
	for k := range b.Lo {
		if k > 0 {
			sb.WriteByte('x')
		}
		fmt.Fprintf(&sb, "[%v,%v]", b.Lo[k], b.Hi[k])
	}
	return sb.String()
}

// Tagged is an AABB carrying an arbitrary caller payload, for instance the
// face or object the box was computed from.
type Tagged[T cmp.Ordered, V any] struct {
	AABB[T]
	Tag V
}

// NewTagged is New followed by attaching tag.
func NewTagged[T cmp.Ordered, V any](lo, hi []T, tag V) (Tagged[T, V], error) {
	b, err := New(lo, hi)
	if err != nil {
		return Tagged[T, V]{}, err
	}
	return Tagged[T, V]{AABB: b, Tag: tag}, nil
}

// Boxes converts a slice of concrete boxes into the interface slice consumed
// by the intersection engine. The element order is preserved, so positions
// reported by the engine index bs as well.
//
//	boxes := box.Boxes[float64](faces)
func Boxes[T cmp.Ordered, B Box[T]](bs []B) []Box[T] {
	out := make([]Box[T], len(bs))
	for i := range bs {
		out[i] = bs[i]
	}
	return out
}
