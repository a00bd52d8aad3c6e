// Package export serializes engine snapshots for external consumers: a
// stable JSON document for analysis and visualization tooling, and Graphviz
// DOT for quick visual inspection.
//
// Persistence is deliberately layered on top of the snapshot interface — the
// core owns no file format. Because Snapshot enumerates nodes and edges in
// sorted order, both writers produce byte-identical output for equal graphs,
// so exports are safe to diff and to commit as golden files.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/swyrknt/distinction-engine/engine"
)

// Document is the JSON shape consumed by external analysis tooling: the node
// ID list and the edge list as two-element arrays.
type Document struct {
	Nodes []string    `json:"nodes"`
	Edges [][2]string `json:"edges"`
}

// NewDocument projects a snapshot into its JSON document form.
// Complexity: O(V + E).
func NewDocument(snap engine.Snapshot) Document {
	doc := Document{
		Nodes: snap.Nodes,
		Edges: make([][2]string, len(snap.Edges)),
	}
	for i, r := range snap.Edges {
		doc.Edges[i] = [2]string{r.A, r.B}
	}

	return doc
}

// WriteJSON writes the snapshot as an indented JSON document. Output is
// deterministic: equal snapshots encode to equal bytes.
// Complexity: O(V + E).
func WriteJSON(w io.Writer, snap engine.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(snap)); err != nil {
		return fmt.Errorf("export: encode json: %w", err)
	}

	return nil
}

// WriteDOT writes the snapshot as an undirected Graphviz graph. Node labels
// are truncated to the first eight ID characters to keep renders readable;
// the full ID remains the node name.
// Complexity: O(V + E).
func WriteDOT(w io.Writer, snap engine.Snapshot) error {
	bw := bufio.NewWriter(w)

	mustWrite := func(format string, args ...interface{}) {
		// bufio.Writer latches the first error; checked once on Flush.
		_, _ = fmt.Fprintf(bw, format, args...)
	}

	mustWrite("graph universe {\n")
	for _, id := range snap.Nodes {
		mustWrite("  %q [label=%q];\n", id, shortLabel(id))
	}
	for _, r := range snap.Edges {
		mustWrite("  %q -- %q;\n", r.A, r.B)
	}
	mustWrite("}\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write dot: %w", err)
	}

	return nil
}

// shortLabel truncates derived 64-hex IDs for display, leaving the short
// primordial IDs untouched.
func shortLabel(id string) string {
	const max = 8
	if len(id) <= max {
		return id
	}

	return id[:max]
}
