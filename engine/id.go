// Package engine: canonical identifier derivation.
//
// DeriveID is the load-bearing rule of the whole system: every downstream
// property (reproducibility across runs, structural equivalence between
// independently grown graphs) reduces to this one pure function. It is kept
// free of Engine state so it can be tested in isolation.
package engine

import (
	"crypto/sha256"
	"encoding/hex"
)

// idSeparator joins the two parent IDs before hashing. Parent IDs produced by
// this package are decimal or lowercase-hex strings, so the separator never
// collides with identifier content.
const idSeparator = ":"

// DeriveID returns the canonical child identifier for the unordered parent
// pair (a, b): the lowercase hex SHA-256 digest of "min:max" over the two IDs.
//
// Properties, by construction:
//
//   - Deterministic: same inputs, same output; no randomness, no clock, no
//     dependence on registry contents.
//   - Symmetric: DeriveID(a, b) == DeriveID(b, a), because the pair is
//     canonicalized (sorted) before combining.
//   - Collision-free: distinct unordered pairs map to distinct IDs up to
//     SHA-256 collision resistance.
//
// DeriveID is total: it does not special-case a == b. Irreflexivity is the
// Engine's rule, applied before derivation ever happens.
// Complexity: O(len(a) + len(b)).
func DeriveID(a, b string) string {
	// Canonicalize: order-independence comes from sorting the pair.
	if a > b {
		a, b = b, a
	}
	sum := sha256.Sum256([]byte(a + idSeparator + b))

	return hex.EncodeToString(sum[:])
}
