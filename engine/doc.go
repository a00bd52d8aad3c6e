// Package engine implements a deterministic graph-synthesis core: a registry
// of atomic "distinctions" combined pairwise under one fixed, parameter-free
// rule to grow a single persistent, append-only universe graph.
//
// The model is intentionally minimal:
//
//   - Distinction — an immutable node identified solely by its ID.
//   - Relationship — an unordered ID pair, stored in canonical order.
//   - Engine — the exclusive owner of all distinctions and relationships.
//
// Every Engine starts from the two primordial distinctions "0" and "1"
// (PrimordialZero, PrimordialOne), initially disconnected. The sole generative
// operation is Synthesize, which obeys four contracts:
//
//   - Determinism: the child of an unordered pair is a pure function of the
//     two parent IDs (DeriveID); no randomness, no clock, no registry size.
//   - Symmetry: Synthesize(a, b) ≡ Synthesize(b, a).
//   - Irreflexivity: Synthesize(a, a) returns a unchanged; a designed fixed
//     point, not an error.
//   - Memoization: re-synthesizing a pair returns the existing child; the
//     graph never holds two nodes with the same derived identity.
//
// The registry is append-only: distinctions and relationships are never
// removed or mutated, so entity and relationship counts are monotonically
// non-decreasing for the lifetime of an Engine.
//
// Concurrency: one sync.RWMutex serializes the single writer section
// (the Synthesize mutation path) against arbitrarily many readers. Snapshot
// returns an immutable, internally consistent copy — it never exposes an edge
// whose endpoint is not yet visible in the node list.
//
// Enumeration is deterministic: Distinctions, Relationships, and Snapshot all
// return lexicographically sorted results, so equal graphs produce equal
// outputs byte for byte.
//
// Everything downstream of the graph — path analysis, clustering, rendering —
// is an external consumer of Snapshot and is out of this package's scope.
//
// Errors:
//
//	ErrNotRegistered - synthesis operand is not present in the registry.
//	ErrDuplicateID   - insert attempted with an already-present identifier.
//	ErrEmptyID       - an empty identifier was supplied.
package engine
