// SPDX-License-Identifier: MIT
//
// Grow — the single public orchestrator of this package.
package growth

import (
	"fmt"

	"github.com/swyrknt/distinction-engine/engine"
)

// Report tallies what a Grow run did. Steps always equals the requested step
// count on success; the other three partition it by synthesis outcome.
type Report struct {
	// Steps is the number of synthesis calls performed.
	Steps int `json:"steps"`

	// Created counts steps that added a new distinction (and two edges).
	Created int `json:"created"`

	// Memoized counts steps whose pair already had its child.
	Memoized int `json:"memoized"`

	// Reflexive counts steps that drew the same distinction twice.
	Reflexive int `json:"reflexive"`
}

// Grow performs the given number of synthesis steps against e, selecting each
// pair with the configured strategy. The engine is mutated in place; the
// returned Report partitions the steps by outcome.
//
// Determinism: the same seed, strategy, step count, and starting graph always
// produce the identical final graph and Report. Grow assumes it is the only
// writer for the duration of the run; concurrent synthesis from elsewhere is
// safe for the engine but breaks the run's reproducibility.
//
// Errors: ErrNilEngine, ErrBadSteps, ErrNeedRandSource, plus anything the
// engine reports (which, with well-behaved strategies, is nothing).
// Complexity: steps × strategy cost.
func Grow(e *engine.Engine, steps int, opts ...Option) (Report, error) {
	if e == nil {
		return Report{}, fmt.Errorf("Grow: %w", ErrNilEngine)
	}
	if steps < 0 {
		return Report{}, fmt.Errorf("Grow: steps=%d: %w", steps, ErrBadSteps)
	}

	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return Report{}, fmt.Errorf("Grow: %w", ErrNeedRandSource)
	}

	var rep Report
	for i := 0; i < steps; i++ {
		a, b := cfg.strategy(cfg.rng, e)

		before := e.DistinctionCount()
		if _, err := e.Synthesize(a, b); err != nil {
			// A strategy returning unregistered distinctions is a programming
			// error; surface it with the step index for diagnosis.
			return rep, fmt.Errorf("Grow: step %d: %w", i, err)
		}
		rep.Steps++

		switch {
		case a.ID == b.ID:
			rep.Reflexive++
		case e.DistinctionCount() > before:
			rep.Created++
		default:
			rep.Memoized++
		}
	}

	return rep, nil
}
