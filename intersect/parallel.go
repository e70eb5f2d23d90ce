package intersect

import "slices"

// fanOut runs one sweep pass over points ps and intervals is, starting at
// axis top, with the strategy selected in o.
//
// Parallel strategies split both ranges at their index midpoint (not a
// geometric median, for load balance), which yields four independent
// sub-problems P1×I1, P2×I2, P1×I2, P2×I1. Their union is the full product
// and no pair belongs to two of them.
//
//   - Parallel: P1×I2 and P2×I1 work on private copies of ps and is, so all
//     four tasks run at once without two tasks partitioning the same memory.
//   - ParallelTwoPhase: no copies; P1×I1 ∥ P2×I2, join, then P1×I2 ∥ P2×I1.
//
// Every task is joined before fanOut returns.
func (s *sweep[T]) fanOut(ps, is []entry[T], top int, inOrder bool, o Options) error {
	whole := slab[T]{}
	if o.concurrency == Sequential {
		s.tree(ps, is, whole, top, inOrder)
		return nil
	}

	mp, mi := len(ps)/2, len(is)/2
	task := func(p, i []entry[T]) func() error {
		return func() error {
			s.tree(p, i, whole, top, inOrder)
			return nil
		}
	}

	if o.concurrency == Parallel {
		pc, ic := slices.Clone(ps), slices.Clone(is)
		g, err := newExecutor(o)
		if err != nil {
			return err
		}
		g.Go(task(ps[:mp], is[:mi]))
		g.Go(task(ps[mp:], is[mi:]))
		g.Go(task(pc[:mp], ic[mi:]))
		g.Go(task(pc[mp:], ic[:mi]))
		return g.Wait()
	}

	g, err := newExecutor(o)
	if err != nil {
		return err
	}
	g.Go(task(ps[:mp], is[:mi]))
	g.Go(task(ps[mp:], is[mi:]))
	if err = g.Wait(); err != nil {
		return err
	}

	g, err = newExecutor(o)
	if err != nil {
		return err
	}
	g.Go(task(ps[:mp], is[mi:]))
	g.Go(task(ps[mp:], is[:mi]))
	return g.Wait()
}

// newExecutor obtains a fresh Executor, failing instead of degrading to
// sequential execution when none is available.
func newExecutor(o Options) (Executor, error) {
	if o.executor == nil {
		return nil, ErrNoExecutor
	}
	g := o.executor()
	if g == nil {
		return nil, ErrNoExecutor
	}
	return g, nil
}

