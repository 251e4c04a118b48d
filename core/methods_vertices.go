// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
// Determinism:
//   - Vertices() returns handles sorted by id ascending.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "sort"

// AddVertex allocates a new vertex with a never-before-used id, stores it
// and returns its handle. The id is the current counter value; the counter
// then advances, so no two vertices of this graph ever share an id.
// Always succeeds.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(data int64) *Vertex {
	g.mu.Lock()
	defer g.mu.Unlock()

	v := &Vertex{id: g.nextID, data: data}
	g.nextID++ // the next vertex will get a different id
	g.vertices[v.id] = v

	return v
}

// HasVertex reports whether u currently belongs to the graph.
// A nil or removed handle reports false.
// Complexity: O(1).
func (g *Graph) HasVertex(u *Vertex) bool {
	if u == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[u.id]

	return ok
}

// VertexByID returns the handle for the given id, or (nil, false) when no
// such vertex is present.
// Complexity: O(1).
func (g *Graph) VertexByID(id uint64) (*Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, false
	}

	return v, true
}

// RemoveVertex deletes u together with every incident edge: all edges
// where u is the source, and all edges where u is the target (found by
// scanning every other source's outgoing set - no reverse index is kept).
// If u is nil or not present, nothing happens and false is returned.
// Complexity: O(V).
func (g *Graph) RemoveVertex(u *Vertex) bool {
	if u == nil {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[u.id]; !ok {
		return false
	}

	// Edges pointing from u.
	g.edgeCount -= len(g.adjacency[u.id])
	delete(g.adjacency, u.id)

	// Edges pointing to u: check every remaining source's outgoing set.
	for src, targets := range g.adjacency {
		if _, ok := targets[u.id]; ok {
			delete(targets, u.id)
			g.edgeCount--
			if len(targets) == 0 {
				delete(g.adjacency, src) // prune the empty bucket
			}
		}
	}

	// Finally the vertex itself.
	delete(g.vertices, u.id)

	return true
}

// Vertices returns a snapshot of handles to every vertex currently in the
// graph, sorted ascending by id.
// Complexity: O(V log V).
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedVertices()
}

// VertexCount returns the current number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// sortedVertices assembles the id-ascending vertex slice.
// Callers must hold at least the read lock.
func (g *Graph) sortedVertices() []*Vertex {
	out := make([]*Vertex, 0, len(g.vertices))
	var v *Vertex
	for _, v = range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}
