// Package engine: central types, sentinel errors, and the Engine constructor.
//
// This file declares Distinction, Relationship, Snapshot, Engine, and New.
// Method implementations live in methods.go; the identifier derivation rule
// lives in id.go.
package engine

import (
	"errors"
	"sync"
)

// Well-known identifiers of the two primordial distinctions seeded by New.
// They are stable across runs and across re-implementations so that external
// consumers can locate the graph's origin deterministically.
const (
	// PrimordialZero is the identifier of the first primordial distinction.
	PrimordialZero = "0"

	// PrimordialOne is the identifier of the second primordial distinction.
	PrimordialOne = "1"
)

// Sentinel errors for engine operations.
var (
	// ErrNotRegistered indicates a synthesis operand that is not present in
	// the registry. This is a precondition violation (caller bug), not a
	// recoverable condition.
	ErrNotRegistered = errors.New("engine: distinction not registered")

	// ErrDuplicateID indicates an insert with an identifier that already
	// exists. It signals a broken identifier derivation or call discipline
	// upstream and is never silently absorbed.
	ErrDuplicateID = errors.New("engine: identifier already present")

	// ErrEmptyID indicates an empty identifier where a real one is required.
	ErrEmptyID = errors.New("engine: identifier is empty")
)

// Distinction is one node of the universe graph.
//
// A distinction is defined solely by its identifier: it carries no other
// intrinsic state, is never mutated after creation, and compares equal to
// another distinction exactly when the IDs are equal. Derived properties
// (degree, age, coherence) are computed externally from graph structure.
type Distinction struct {
	// ID uniquely identifies this distinction within its Engine.
	ID string
}

// Relationship is an unordered pair of distinction IDs recording that the two
// are directly connected. It is stored in canonical order (A <= B under
// lexicographic comparison), so relationship(a,b) and relationship(b,a) are
// the same value and set semantics fall out of map-key equality.
type Relationship struct {
	// A is the lexicographically smaller endpoint ID.
	A string

	// B is the lexicographically larger endpoint ID.
	B string
}

// NewRelationship builds the canonical Relationship for the unordered pair
// (a, b), swapping the endpoints if needed.
// Complexity: O(min(len(a), len(b))) for the comparison.
func NewRelationship(a, b string) Relationship {
	if a > b {
		a, b = b, a
	}

	return Relationship{A: a, B: b}
}

// Has reports whether id is one of the relationship's endpoints.
func (r Relationship) Has(id string) bool {
	return r.A == id || r.B == id
}

// Other returns the endpoint opposite to id, or "" when id is not an
// endpoint of this relationship.
func (r Relationship) Other(id string) string {
	switch id {
	case r.A:
		return r.B
	case r.B:
		return r.A
	}

	return ""
}

// Snapshot is a consistent, read-only projection of the registry: the full
// node list and the full edge list at one point in the registry's append-only
// history. Nodes and Edges are sorted lexicographically, and every edge
// endpoint is guaranteed to appear in Nodes.
type Snapshot struct {
	// Nodes holds all distinction IDs, sorted ascending.
	Nodes []string

	// Edges holds all relationships in canonical order, sorted by (A, B).
	Edges []Relationship
}

// Engine is the registry: the single long-lived owner of every distinction
// and relationship produced over its lifetime. State is append-only — nothing
// is removed or mutated after creation.
//
// mu serializes the one writer section (the Synthesize mutation path) against
// arbitrarily many concurrent readers. Multiple independent Engine instances
// coexist without interference; there is no package-level state.
type Engine struct {
	mu sync.RWMutex

	// distinctions maps ID → Distinction for O(1) memoization lookups.
	distinctions map[string]Distinction

	// relationships is the canonical edge set (set semantics, no counts).
	relationships map[Relationship]struct{}

	// newest is the ID of the most recently created distinction; seeded to
	// PrimordialOne and updated only on the create path of Synthesize.
	newest string
}

// New constructs an Engine seeded with the two primordial distinctions "0"
// and "1" and no relationships between them: the origin graph is two
// disconnected nodes.
// Complexity: O(1).
func New() *Engine {
	e := &Engine{
		distinctions:  make(map[string]Distinction),
		relationships: make(map[Relationship]struct{}),
		newest:        PrimordialOne,
	}
	e.distinctions[PrimordialZero] = Distinction{ID: PrimordialZero}
	e.distinctions[PrimordialOne] = Distinction{ID: PrimordialOne}

	return e
}
