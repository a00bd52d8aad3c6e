// Package engine: Engine method implementations.
//
// All methods take the single RWMutex declared in types.go: Synthesize holds
// the write lock across its whole check-derive-insert sequence so a reader can
// never observe a half-applied synthesis; every query copies under the read
// lock and returns data the caller may retain freely.
package engine

import (
	"fmt"
	"sort"
)

// Lookup returns the distinction with the given ID and whether it exists.
// An empty ID is simply absent; Lookup never errors.
// Complexity: O(1).
func (e *Engine) Lookup(id string) (Distinction, bool) {
	if id == "" {
		return Distinction{}, false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	d, ok := e.distinctions[id]

	return d, ok
}

// Origin returns the two primordial distinctions seeded at construction.
// Complexity: O(1).
func (e *Engine) Origin() (Distinction, Distinction) {
	return Distinction{ID: PrimordialZero}, Distinction{ID: PrimordialOne}
}

// Newest returns the most recently created distinction. Before any creating
// synthesis this is the primordial "1".
// Complexity: O(1).
func (e *Engine) Newest() Distinction {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.distinctions[e.newest]
}

// Synthesize combines two registered distinctions into a third under the
// fixed rule of the system. It is deterministic, symmetric, memoized, and
// irreflexive:
//
//   - a == b (same ID): returns a unchanged; no mutation. A designed fixed
//     point of the rule, not an error.
//   - the derived child already exists: returns it; no mutation.
//   - otherwise: creates the child, inserts it, and records the two
//     relationships (a, child) and (b, child).
//
// Both operands must already be registered; an unregistered operand is a
// precondition violation reported as ErrNotRegistered. That is the only
// failure in normal flow — synthesis of any two registered (possibly equal)
// distinctions always succeeds.
// Complexity: O(len(a.ID) + len(b.ID)) for derivation, O(1) registry work.
func (e *Engine) Synthesize(a, b Distinction) (Distinction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Precondition: operands must exist. Fail loudly, never create around it.
	if _, ok := e.distinctions[a.ID]; !ok {
		return Distinction{}, fmt.Errorf("Synthesize: operand %q: %w", a.ID, ErrNotRegistered)
	}
	if _, ok := e.distinctions[b.ID]; !ok {
		return Distinction{}, fmt.Errorf("Synthesize: operand %q: %w", b.ID, ErrNotRegistered)
	}

	// Irreflexivity: a distinction synthesized with itself is itself.
	if a.ID == b.ID {
		return a, nil
	}

	// Memoization: the unordered pair may already have its child.
	id := DeriveID(a.ID, b.ID)
	if existing, ok := e.distinctions[id]; ok {
		return existing, nil
	}

	// Create path: one insert, two relationships, all under the write lock.
	child := Distinction{ID: id}
	if err := e.insert(child); err != nil {
		return Distinction{}, fmt.Errorf("Synthesize: %w", err)
	}
	e.addRelationship(a.ID, child.ID)
	e.addRelationship(b.ID, child.ID)
	e.newest = child.ID

	return child, nil
}

// insert registers a new distinction. Caller must hold the write lock.
// A duplicate identifier means the derivation or call discipline upstream is
// broken; it is reported, never overwritten.
func (e *Engine) insert(d Distinction) error {
	if d.ID == "" {
		return ErrEmptyID
	}
	if _, exists := e.distinctions[d.ID]; exists {
		return fmt.Errorf("insert %q: %w", d.ID, ErrDuplicateID)
	}
	e.distinctions[d.ID] = d

	return nil
}

// addRelationship records the canonical edge for (idA, idB). Idempotent: set
// semantics, so re-adding an existing pair is a no-op. Caller must hold the
// write lock.
func (e *Engine) addRelationship(idA, idB string) {
	e.relationships[NewRelationship(idA, idB)] = struct{}{}
}

// HasRelationship reports whether the unordered pair (idA, idB) is directly
// connected.
// Complexity: O(1).
func (e *Engine) HasRelationship(idA, idB string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.relationships[NewRelationship(idA, idB)]

	return ok
}

// Degree returns the number of relationships incident to id.
// Returns ErrNotRegistered when id is unknown.
// Complexity: O(E).
func (e *Engine) Degree(id string) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if _, ok := e.distinctions[id]; !ok {
		return 0, fmt.Errorf("Degree: %q: %w", id, ErrNotRegistered)
	}
	deg := 0
	for r := range e.relationships {
		if r.Has(id) {
			deg++
		}
	}

	return deg, nil
}

// DistinctionCount returns the number of registered distinctions. O(1).
func (e *Engine) DistinctionCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.distinctions)
}

// RelationshipCount returns the number of recorded relationships. O(1).
func (e *Engine) RelationshipCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.relationships)
}

// Distinctions returns all registered distinctions sorted by ID.
// Complexity: O(V log V).
func (e *Engine) Distinctions() []Distinction {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]Distinction, 0, len(e.distinctions))
	for _, d := range e.distinctions {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Relationships returns all relationships sorted by (A, B).
// Complexity: O(E log E).
func (e *Engine) Relationships() []Relationship {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]Relationship, 0, len(e.relationships))
	for r := range e.relationships {
		out = append(out, r)
	}
	sortRelationships(out)

	return out
}

// Snapshot returns an immutable, internally consistent projection of the
// registry: all node IDs and all edges, each sorted, copied under one read
// lock so the two sequences come from the same point in the append-only
// history. Every edge endpoint is present in Nodes.
// Complexity: O(V log V + E log E).
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()

	nodes := make([]string, 0, len(e.distinctions))
	for id := range e.distinctions {
		nodes = append(nodes, id)
	}
	edges := make([]Relationship, 0, len(e.relationships))
	for r := range e.relationships {
		edges = append(edges, r)
	}
	e.mu.RUnlock()

	// Sorting happens outside the lock: the copies are already consistent.
	sort.Strings(nodes)
	sortRelationships(edges)

	return Snapshot{Nodes: nodes, Edges: edges}
}

// sortRelationships orders edges by (A, B) ascending for reproducible output.
func sortRelationships(rs []Relationship) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].A != rs[j].A {
			return rs[i].A < rs[j].A
		}
		return rs[i].B < rs[j].B
	})
}
