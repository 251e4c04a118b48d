// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextID so a clone never reissues an id
//     that collides with handles minted by the source.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with copies of all vertices but no edges.
// The clone owns fresh Vertex storage: mutating a payload through a source
// handle does not affect the clone, and vice versa.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneEmptyLocked()
}

// Clone returns a deep copy of the Graph: vertices, edges and counter.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.cloneEmptyLocked()
	// Copy adjacency buckets set by set.
	var (
		src, tgt uint64
		targets  map[uint64]struct{}
	)
	for src, targets = range g.adjacency {
		bucket := make(map[uint64]struct{}, len(targets))
		for tgt = range targets {
			bucket[tgt] = struct{}{}
		}
		clone.adjacency[src] = bucket
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear resets the graph to an empty state: zero vertices, zero edges.
// The id counter is deliberately preserved, so vertices created after a
// Clear never share an id with handles minted before it.
// Complexity: O(1) for map reallocation; no iteration over entries.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = make(map[uint64]*Vertex)
	g.adjacency = make(map[uint64]map[uint64]struct{})
	g.edgeCount = 0
	// nextID intentionally untouched: ids are never reused for the
	// lifetime of the graph instance.
}

// cloneEmptyLocked copies the counter and the vertex catalog into a fresh
// graph. Callers must hold at least the read lock on g.
func (g *Graph) cloneEmptyLocked() *Graph {
	clone := NewGraph(WithCapacity(len(g.vertices)))
	clone.nextID = g.nextID
	var (
		id uint64
		v  *Vertex
	)
	for id, v = range g.vertices {
		clone.vertices[id] = &Vertex{id: v.id, data: v.data}
	}

	return clone
}
