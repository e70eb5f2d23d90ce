// SPDX-License-Identifier: MIT

// Package intersect: functional configuration for the intersection engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions / validateOptions helpers.
//
// Design goals:
//   - One configuration value: cutoff, topology, setting, concurrency.
//   - Deterministic behavior: no global state.
//   - Safe by construction: constructors panic only on programmer error;
//     enum values outside the declared set surface as sentinel errors at call time.
package intersect

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/boxsect/box"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCutoff is the range size at or below which the sweep switches to
	// brute-force pair testing.
	DefaultCutoff = 10

	// DefaultTopology treats touching boundaries as overlapping.
	DefaultTopology = box.Closed

	// DefaultSetting intersects two distinct sequences.
	DefaultSetting = Bipartite

	// DefaultConcurrency runs on the calling goroutine.
	DefaultConcurrency = Sequential

	// DefaultMaxWorkers leaves the default executor unbounded. The fan-out is
	// at most four tasks regardless.
	DefaultMaxWorkers = 0
)

// ---------- Internal panic messages ----------

const (
	panicCutoffInvalid     = "intersect: WithCutoff: cutoff must be >= 1"
	panicMaxWorkersInvalid = "intersect: WithMaxWorkers: limit must be >= 0"
)

// ---------- Public option type ----------

// Option mutates Options. Options apply in order; the last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; entry points accept ...Option.
type Options struct {
	cutoff      int
	topology    box.Topology
	setting     Setting
	concurrency Concurrency
	maxWorkers  int
	executor    func() Executor
	executorSet bool
}

// WithCutoff sets the brute-force crossover: when either candidate range has
// at most n boxes, the remaining axes are checked pair by pair.
// Any n >= 1 yields the same pair set; only running time changes.
//
// Panics when n < 1.
func WithCutoff(n int) Option {
	if n < 1 {
		panic(panicCutoffInvalid)
	}
	return func(o *Options) { o.cutoff = n }
}

// WithTopology selects Closed (default) or Open boundary semantics for every
// comparison of the call, the brute-force fallback included.
func WithTopology(t box.Topology) Option {
	return func(o *Options) { o.topology = t }
}

// WithSetting selects Bipartite (default) or Complete reporting.
// With Complete, Intersect requires b to mirror a; SelfIntersect always
// runs Complete.
func WithSetting(s Setting) Option {
	return func(o *Options) { o.setting = s }
}

// WithConcurrency selects Sequential (default), Parallel or ParallelTwoPhase.
// Parallel modes may invoke the Reporter concurrently.
func WithConcurrency(c Concurrency) Option {
	return func(o *Options) { o.concurrency = c }
}

// WithMaxWorkers bounds the number of concurrently running tasks of the
// default errgroup executor. 0 means no limit. It has no effect on a custom
// executor installed with WithExecutor.
//
// Panics when n < 0.
func WithMaxWorkers(n int) Option {
	if n < 0 {
		panic(panicMaxWorkersInvalid)
	}
	return func(o *Options) { o.maxWorkers = n }
}

// WithExecutor installs the fork-join backend of parallel modes. The factory
// is called once per fan-out and must return a fresh Executor. Passing nil
// removes the default; a parallel call then fails with ErrNoExecutor.
func WithExecutor(f func() Executor) Option {
	return func(o *Options) {
		o.executor = f
		o.executorSet = true
	}
}

// gatherOptions applies user options over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		cutoff:      DefaultCutoff,
		topology:    DefaultTopology,
		setting:     DefaultSetting,
		concurrency: DefaultConcurrency,
		maxWorkers:  DefaultMaxWorkers,
	}
	for _, set := range user {
		set(&o)
	}
	if !o.executorSet {
		o.executor = errgroupExecutor(o.maxWorkers)
	}
	return o
}

// validateOptions rejects enum values outside the declared sets and parallel
// modes without an executor.
func validateOptions(o Options) error {
	if !o.topology.Valid() {
		return ErrUnknownTopology
	}
	switch o.setting {
	case Bipartite, Complete:
	default:
		return ErrUnknownSetting
	}
	switch o.concurrency {
	case Sequential:
	case Parallel, ParallelTwoPhase:
		if o.executor == nil {
			return ErrNoExecutor
		}
	default:
		return ErrUnknownConcurrency
	}
	return nil
}

// errgroupExecutor returns a factory of errgroup-backed executors, limited to
// limit concurrent tasks when limit > 0.
func errgroupExecutor(limit int) func() Executor {
	return func() Executor {
		g := new(errgroup.Group)
		if limit > 0 {
			g.SetLimit(limit)
		}
		return g
	}
}
