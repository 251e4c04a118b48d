// Package core declares the Vertex and Graph types, GraphOption, and the
// NewGraph constructor. Method implementations live in the methods_* files;
// serialization lives in serialize.go.
package core

import "sync"

// Vertex is a non-owning handle to a node stored inside a Graph.
//
// The id is assigned by Graph.AddVertex, is unique within the owning graph
// for the graph's whole lifetime (ids are never reissued, even after
// removal), and is immutable. The payload is mutable and carries no
// structural meaning: changing it affects neither identity nor edges.
//
// A handle stays valid until the referenced vertex is removed from its
// graph or the graph is cleared; after that, graph operations treat it as
// absent.
type Vertex struct {
	id   uint64
	data int64
}

// ID returns the unique vertex identifier.
// Complexity: O(1)
func (v *Vertex) ID() uint64 { return v.id }

// Data returns the current payload.
// Complexity: O(1)
func (v *Vertex) Data() int64 { return v.data }

// SetData replaces the payload. The write is not synchronized by the
// owning graph's lock; callers mutating a shared vertex concurrently must
// coordinate themselves.
// Complexity: O(1)
func (v *Vertex) SetData(data int64) { v.data = data }

// Equals reports whether v and other denote the same vertex, i.e. their
// ids match. Payloads are ignored. A nil operand equals nothing.
// Complexity: O(1)
func (v *Vertex) Equals(other *Vertex) bool {
	if v == nil || other == nil {
		return false
	}

	return v.id == other.id
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex catalog and adjacency index for n
// vertices. Purely an allocation hint; values below zero are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n < 0 {
			return
		}
		g.vertices = make(map[uint64]*Vertex, n)
		g.adjacency = make(map[uint64]map[uint64]struct{}, n)
	}
}

// Graph is the core in-memory directed graph data structure.
//
// It owns every Vertex it stores and hands out non-owning handles.
// A single coarse mu guards all state: the id counter, the vertex catalog
// and the adjacency sets reference each other and cannot be updated
// piecemeal.
type Graph struct {
	mu sync.RWMutex // guards everything below

	// nextID is the next vertex id to assign. It only ever grows, so ids
	// are never reused - not even after RemoveVertex or Clear.
	nextID uint64

	// Storage
	vertices  map[uint64]*Vertex             // vertex id → owned Vertex
	adjacency map[uint64]map[uint64]struct{} // source id → set of target ids
	edgeCount int                            // total edges, maintained on every mutation
}

// NewGraph creates an empty Graph: zero vertices, zero edges, counter at 0.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[uint64]*Vertex),
		adjacency: make(map[uint64]map[uint64]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
