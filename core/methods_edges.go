// File: methods_edges.go
// Role: Edge lifecycle & adjacency queries.
// Determinism:
//   - Successors()/SuccessorIDs() return results sorted by id ascending.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "sort"

// AddEdge inserts the edge u→v. Both endpoints must currently belong to
// the graph; a nil or out-of-graph handle makes this a no-op returning
// false. If the edge already exists the graph is not modified and false is
// returned (the adjacency relation per source is a set, not a multiset).
// Self-loops (u == v) are permitted.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v *Vertex) bool {
	if u == nil || v == nil {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	// Both endpoints must be live.
	if _, ok := g.vertices[u.id]; !ok {
		return false
	}
	if _, ok := g.vertices[v.id]; !ok {
		return false
	}

	targets, ok := g.adjacency[u.id]
	if !ok {
		// First outgoing edge of u: bootstrap its bucket lazily.
		targets = make(map[uint64]struct{})
		g.adjacency[u.id] = targets
	}
	if _, dup := targets[v.id]; dup {
		return false // simple graph: at most one edge per ordered pair
	}
	targets[v.id] = struct{}{}
	g.edgeCount++

	return true
}

// RemoveEdge deletes the edge u→v. If either endpoint is absent (or nil),
// or the edge does not exist, nothing happens and false is returned.
// Only u→v is removed; a reverse edge v→u is untouched.
// Complexity: O(1) amortized.
func (g *Graph) RemoveEdge(u, v *Vertex) bool {
	if u == nil || v == nil {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[u.id]; !ok {
		return false
	}
	if _, ok := g.vertices[v.id]; !ok {
		return false
	}

	targets, ok := g.adjacency[u.id]
	if !ok {
		return false
	}
	if _, ok = targets[v.id]; !ok {
		return false
	}
	delete(targets, v.id)
	if len(targets) == 0 {
		delete(g.adjacency, u.id) // prune the empty bucket
	}
	g.edgeCount--

	return true
}

// HasEdge reports whether the edge u→v currently exists.
// Nil or out-of-graph handles report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v *Vertex) bool {
	if u == nil || v == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u.id][v.id]

	return ok
}

// Successors returns handles to every vertex that u points to, sorted
// ascending by id. The result is empty when u has no recorded outgoing
// edges, is nil, or does not belong to the graph - never a failure.
// Complexity: O(d log d) where d is the out-degree of u.
func (g *Graph) Successors(u *Vertex) []*Vertex {
	if u == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	targets, ok := g.adjacency[u.id]
	if !ok {
		return nil
	}
	out := make([]*Vertex, 0, len(targets))
	var id uint64
	for id = range targets {
		out = append(out, g.vertices[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// SuccessorIDs returns the ids of every vertex that u points to, unique
// and sorted ascending. Same emptiness contract as Successors.
// Complexity: O(d log d).
func (g *Graph) SuccessorIDs(u *Vertex) []uint64 {
	if u == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedTargetIDs(g.adjacency[u.id])
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// sortedTargetIDs flattens one adjacency bucket into an id-ascending slice.
// Callers must hold at least the read lock. A nil bucket yields nil.
func sortedTargetIDs(targets map[uint64]struct{}) []uint64 {
	if len(targets) == 0 {
		return nil
	}
	ids := make([]uint64, 0, len(targets))
	var id uint64
	for id = range targets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
