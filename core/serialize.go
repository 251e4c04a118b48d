// File: serialize.go
// Role: Canonical textual rendering of Vertex and Graph.
// Determinism:
//   - Output depends only on the current vertex/edge sets, never on
//     insertion history or map iteration order. The vertex block and each
//     source's successor list are sorted ascending by id at render time.

package core

import (
	"strconv"
	"strings"
)

// vertexIDPrefix is the textual prefix for vertex identifiers.
// Byte form is intentional to allow append to a []byte buffer without fmt.
// Ensures stable human-readable names like "v0", "v1", ...
const vertexIDPrefix = 'v'

// Fixed layout of the Graph.String rendering. The header and section
// labels are byte-exact contract; tests compare against them literally.
const (
	graphHeader   = "DirectedGraph:\n"
	verticesLabel = "  vertices:\n"
	edgesLabel    = "  edges:\n"
	lineIndent    = "    "
	edgeArrow     = " -> "
)

// String returns the canonical textual form "v<id>".
// Complexity: O(1).
func (v *Vertex) String() string {
	buf := make([]byte, 1, 21) // 'v' + up to 20 decimal digits of uint64
	buf[0] = vertexIDPrefix

	return string(strconv.AppendUint(buf, v.id, 10))
}

// String renders the whole graph deterministically:
//
//	DirectedGraph:
//	  vertices:
//	    v0
//	    v1
//	  edges:
//	    v0 -> v1
//
// Vertices are listed ascending by id; edges are listed source-major, each
// source's targets ascending by id. Sources without outgoing edges
// contribute no lines to the edges block. Two graphs holding the same
// vertex and edge sets always render to identical bytes, regardless of how
// they were built.
// Complexity: O(V log V + E log E) due to the two sort passes.
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ordered := g.sortedVertices()

	var b strings.Builder
	b.WriteString(graphHeader)

	b.WriteString(verticesLabel)
	var u *Vertex
	for _, u = range ordered {
		b.WriteString(lineIndent)
		b.WriteString(u.String())
		b.WriteByte('\n')
	}

	b.WriteString(edgesLabel)
	var tgt uint64
	for _, u = range ordered {
		// Sort this source's successor set on demand.
		for _, tgt = range sortedTargetIDs(g.adjacency[u.id]) {
			b.WriteString(lineIndent)
			b.WriteString(u.String())
			b.WriteString(edgeArrow)
			b.WriteString(g.vertices[tgt].String())
			b.WriteByte('\n')
		}
	}

	return b.String()
}
