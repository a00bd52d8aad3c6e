// Internal tests for the registry primitives that Synthesize builds on.
// The exported surface can never reach the duplicate-insert branch (the
// memoization check runs first), so it is exercised directly here.
package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsert_DuplicateID(t *testing.T) {
	e := New()
	e.mu.Lock()
	defer e.mu.Unlock()

	err := e.insert(Distinction{ID: PrimordialZero})
	require.ErrorIs(t, err, ErrDuplicateID)

	// The original entry must survive untouched.
	require.Equal(t, Distinction{ID: PrimordialZero}, e.distinctions[PrimordialZero])
}

func TestInsert_EmptyID(t *testing.T) {
	e := New()
	e.mu.Lock()
	defer e.mu.Unlock()

	require.ErrorIs(t, e.insert(Distinction{}), ErrEmptyID)
	require.Len(t, e.distinctions, 2)
}

func TestAddRelationship_Idempotent(t *testing.T) {
	e := New()
	e.mu.Lock()
	defer e.mu.Unlock()

	e.addRelationship("0", "1")
	e.addRelationship("1", "0")
	e.addRelationship("0", "1")
	require.Len(t, e.relationships, 1)

	_, ok := e.relationships[Relationship{A: "0", B: "1"}]
	require.True(t, ok, "edge must be stored in canonical order")
}
