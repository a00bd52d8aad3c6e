// SPDX-License-Identifier: MIT
//
// Pair-selection strategies. Each strategy reads the engine through its
// public query surface only and draws from the supplied RNG; with a fixed
// seed and starting graph the chosen sequence of pairs is fully reproducible
// because every enumeration the strategies consume is sorted.
package growth

import (
	"math/rand"

	"github.com/swyrknt/distinction-engine/engine"
)

// Strategy selects the next unordered pair of distinctions to synthesize.
// Implementations must be deterministic given the RNG state and the current
// engine contents, and must only return registered distinctions.
type Strategy func(rng *rand.Rand, e *engine.Engine) (engine.Distinction, engine.Distinction)

// Uniform returns a strategy drawing both endpoints independently and
// uniformly from all registered distinctions. The two draws may coincide, so
// reflexive steps occur naturally at small graph sizes.
// Complexity per step: O(V log V) for the sorted enumeration.
func Uniform() Strategy {
	return func(rng *rand.Rand, e *engine.Engine) (engine.Distinction, engine.Distinction) {
		ds := e.Distinctions()

		return ds[rng.Intn(len(ds))], ds[rng.Intn(len(ds))]
	}
}

// Frontier returns a strategy pairing the newest distinction with a uniform
// draw over the whole graph. Growth stays attached to the leading edge,
// producing long chains anchored back into older structure.
// Complexity per step: O(V log V).
func Frontier() Strategy {
	return func(rng *rand.Rand, e *engine.Engine) (engine.Distinction, engine.Distinction) {
		ds := e.Distinctions()

		return e.Newest(), ds[rng.Intn(len(ds))]
	}
}

// DegreeWeighted returns a strategy drawing each endpoint with probability
// proportional to degree+1. The +1 keeps isolated nodes (the fresh primordial
// pair included) reachable; without it the empty origin graph could never
// take its first step.
// Complexity per step: O(V log V + E).
func DegreeWeighted() Strategy {
	return func(rng *rand.Rand, e *engine.Engine) (engine.Distinction, engine.Distinction) {
		snap := e.Snapshot()

		// Accumulate degree+1 weights in node order (sorted, so the weighted
		// draw below is deterministic for a given RNG state).
		degrees := make(map[string]int, len(snap.Nodes))
		for _, edge := range snap.Edges {
			degrees[edge.A]++
			degrees[edge.B]++
		}
		weights := make([]int, len(snap.Nodes))
		total := 0
		for i, id := range snap.Nodes {
			w := degrees[id] + 1
			weights[i] = w
			total += w
		}

		draw := func() engine.Distinction {
			target := rng.Intn(total)
			for i, w := range weights {
				if target < w {
					d, _ := e.Lookup(snap.Nodes[i])
					return d
				}
				target -= w
			}
			// Unreachable: weights sum to total.
			d, _ := e.Lookup(snap.Nodes[len(snap.Nodes)-1])
			return d
		}

		return draw(), draw()
	}
}
