// SPDX-License-Identifier: MIT
//
// Package growth drives repeated synthesis against an engine.Engine using
// deterministic, seeded pair-selection strategies.
//
// The core deliberately leaves pair selection to the caller; this package is
// that caller. It never reaches into engine internals — every strategy works
// from the engine's public read surface, so growth is just an external
// collaborator exercising the synthesis contract.
//
// Design contract (strict):
//   - One orchestrator: Grow(e, steps, opts...). Resolves options, then runs
//     the strategy for the requested number of steps.
//   - Strategies are pure with respect to RNG state: same seed, same strategy,
//     same starting graph ⇒ identical final graph and identical Report.
//   - Option constructors validate and panic on meaningless inputs (nil RNG,
//     nil strategy); Grow itself never panics and returns sentinel errors.
//
// Strategies:
//
//	Uniform()        - both endpoints drawn uniformly from all distinctions.
//	DegreeWeighted() - endpoints drawn proportional to degree+1, a
//	                   preferential-attachment flavor that densifies hubs.
//	Frontier()       - one endpoint is always the newest distinction, which
//	                   grows chains off the leading edge of the graph.
//
// Errors:
//
//	ErrNilEngine      - Grow received a nil engine.
//	ErrBadSteps       - negative step count.
//	ErrNeedRandSource - no RNG was configured (use WithSeed or WithRand).
package growth
