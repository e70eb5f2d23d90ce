package box

import (
	"cmp"
	"errors"
)

// Sentinel errors for box checks.
var (
	// ErrZeroDimension indicates a box reporting Dimension() <= 0.
	ErrZeroDimension = errors.New("box: dimension must be positive")

	// ErrInvalidBounds indicates Min(k) > Max(k) on some axis, or a bound that
	// does not compare (NaN).
	ErrInvalidBounds = errors.New("box: lower bound exceeds upper bound")

	// ErrLengthMismatch indicates lo and hi corners of different lengths.
	ErrLengthMismatch = errors.New("box: lo and hi must have the same length")
)

// Box is the capability interface of the intersection engine: per-axis
// bound access plus the number of axes. Implementations must be safe for
// concurrent reads when the engine runs in a parallel mode.
type Box[T cmp.Ordered] interface {
	// Dimension returns the number of axes, which must be positive.
	Dimension() int
	// Min returns the lower bound along axis k, 0 <= k < Dimension().
	Min(k int) T
	// Max returns the upper bound along axis k, 0 <= k < Dimension().
	Max(k int) T
}

// Topology selects whether boundaries belong to a box.
//
//   - Closed: touching boundaries (a.Max == b.Min) count as overlap.
//   - Open: boxes must share interior along every axis.
type Topology int

const (
	// Closed treats boxes as closed sets. It is the zero value and the default.
	Closed Topology = iota

	// Open treats boxes as open along every axis.
	Open
)

// String implements fmt.Stringer.
func (t Topology) String() string {
	switch t {
	case Closed:
		return "closed"
	case Open:
		return "open"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the declared topologies.
func (t Topology) Valid() bool {
	return t == Closed || t == Open
}
