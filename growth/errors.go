// SPDX-License-Identifier: MIT
//
// Sentinel errors for the growth package. Callers branch with errors.Is;
// implementations attach context via %w wrapping.
package growth

import "errors"

// ErrNilEngine indicates Grow was handed a nil *engine.Engine.
var ErrNilEngine = errors.New("growth: engine is nil")

// ErrBadSteps indicates a negative step count. Zero steps is a valid no-op.
var ErrBadSteps = errors.New("growth: negative step count")

// ErrNeedRandSource indicates that no RNG was configured. Every strategy is
// stochastic; supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("growth: rng is required")
