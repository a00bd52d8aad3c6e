// Package engine_test verifies the canonical identifier derivation rule in
// isolation: determinism, symmetry, and pairwise distinctness are the three
// properties everything downstream leans on.
package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swyrknt/distinction-engine/engine"
)

// idOfZeroOne is the derived child of the primordial pair: SHA-256("0:1") hex.
const idOfZeroOne = "ef134f2a180ba05de91ab32d2976f51de13b68d823ea784171b1b0dafee67be4"

// TestDeriveID_KnownVector pins the derivation scheme to a concrete digest so
// an accidental change to the rule cannot slip through silently.
func TestDeriveID_KnownVector(t *testing.T) {
	require.Equal(t, idOfZeroOne, engine.DeriveID("0", "1"))
}

// TestDeriveID_Symmetric checks order-independence over a spread of pairs.
func TestDeriveID_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"0", "1"},
		{"1", "0"},
		{"a", "b"},
		{"abc", "ab"},
		{idOfZeroOne, "0"},
	}
	for _, p := range pairs {
		require.Equal(t, engine.DeriveID(p[0], p[1]), engine.DeriveID(p[1], p[0]),
			"DeriveID(%q,%q) must equal DeriveID(%q,%q)", p[0], p[1], p[1], p[0])
	}
}

// TestDeriveID_Deterministic verifies repeated calls agree.
func TestDeriveID_Deterministic(t *testing.T) {
	first := engine.DeriveID("0", "1")
	for i := 0; i < 100; i++ {
		require.Equal(t, first, engine.DeriveID("0", "1"))
	}
}

// TestDeriveID_DistinctPairs verifies that distinct unordered pairs yield
// distinct identifiers across a small exhaustive universe.
func TestDeriveID_DistinctPairs(t *testing.T) {
	ids := []string{"0", "1", "2", "a", "b", idOfZeroOne}
	seen := make(map[string][2]string)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			id := engine.DeriveID(ids[i], ids[j])
			if prev, dup := seen[id]; dup {
				t.Fatalf("collision: (%q,%q) and (%q,%q) both derive %q",
					prev[0], prev[1], ids[i], ids[j], id)
			}
			seen[id] = [2]string{ids[i], ids[j]}
		}
	}
}

// TestDeriveID_ChildShape checks the derived ID is 64 lowercase hex digits,
// so children can never collide with the decimal primordial IDs.
func TestDeriveID_ChildShape(t *testing.T) {
	id := engine.DeriveID("0", "1")
	require.Len(t, id, 64)
	for _, c := range id {
		require.True(t, (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f'),
			"unexpected rune %q in derived ID", c)
	}
}
