// Package distinction is a deterministic graph-synthesis engine: atomic
// distinctions combined pairwise under one fixed, parameter-free rule into a
// single persistent, append-only universe graph.
//
// The repository is organized around one small core and its external
// collaborators:
//
//	engine/  — the core: Distinction, Relationship, the Engine registry,
//	           the Synthesize rule, and the consistent Snapshot projection
//	growth/  — seeded, deterministic pair-selection strategies driving
//	           repeated synthesis (uniform, degree-weighted, frontier)
//	export/  — snapshot serialization: stable JSON and Graphviz DOT
//	server/  — HTTP surface serving snapshots, stats, growth runs, health,
//	           and Prometheus metrics
//	cmd/     — distinctctl: grow, status (invariant self-check), serve
//
// Everything downstream of the graph — shortest paths, clustering, component
// analysis, rendering — is external analysis over the Snapshot read
// interface and deliberately lives outside this module.
//
// The load-bearing guarantee is reproducibility: the child of any unordered
// pair of distinctions is a pure function of the two parent identifiers
// (engine.DeriveID), so the same operations produce the identical graph in
// any run, in any process, in any implementation of the same rule.
//
//	go get github.com/swyrknt/distinction-engine
package distinction
