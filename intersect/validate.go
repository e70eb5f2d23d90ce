package intersect

import (
	"cmp"

	"github.com/pkg/errors"

	"github.com/katalvlaran/boxsect/box"
)

// validateSeq checks every box of bs with box.Check and against the common
// dimension dim (0 = not known yet). It returns the dimension seen.
//
// Errors are wrapped with the sequence name and position of the first
// offending box.
//
// Complexity: O(n·D).
func validateSeq[T cmp.Ordered](name string, bs []box.Box[T], dim int) (int, error) {
	for i, b := range bs {
		if b == nil {
			return 0, errors.Wrapf(ErrNilBox, "%s[%d]", name, i)
		}
		if err := box.Check(b); err != nil {
			return 0, errors.Wrapf(err, "%s[%d]", name, i)
		}
		d := b.Dimension()
		if dim == 0 {
			dim = d
		} else if d != dim {
			return 0, errors.Wrapf(ErrDimensionMismatch, "%s[%d]: dimension %d, want %d", name, i, d, dim)
		}
	}
	return dim, nil
}

// validateInputs checks both sequences and, under Complete, that b mirrors a.
// It returns the common dimension (0 when both are empty).
func validateInputs[T cmp.Ordered](a, b []box.Box[T], setting Setting) (int, error) {
	dim, err := validateSeq("a", a, 0)
	if err != nil {
		return 0, err
	}
	dim, err = validateSeq("b", b, dim)
	if err != nil {
		return 0, err
	}
	if setting == Complete {
		if err = validateMirror(a, b); err != nil {
			return 0, err
		}
	}
	return dim, nil
}

// validateMirror requires len(a) == len(b) and identical bounds position by
// position, which is what Complete relies on to dedupe pairs.
func validateMirror[T cmp.Ordered](a, b []box.Box[T]) error {
	if len(a) != len(b) {
		return errors.Wrapf(ErrSettingMismatch, "len(a)=%d, len(b)=%d", len(a), len(b))
	}
	for i := range a {
		for k := 0; k < a[i].Dimension(); k++ {
			if a[i].Min(k) != b[i].Min(k) || a[i].Max(k) != b[i].Max(k) {
				return errors.Wrapf(ErrSettingMismatch, "position %d differs on axis %d", i, k)
			}
		}
	}
	return nil
}
