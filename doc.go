// Package digraph is a minimal in-memory directed-graph container with
// deterministic string serialization.
//
// What you get:
//
//   - Core primitives: create vertices with auto-assigned ids, wire simple
//     (non-parallel) directed edges, mutate safely under a single lock
//   - Adjacency queries: successors, membership, counts
//   - A canonical, byte-stable textual dump for golden tests and diffs
//
// Why choose digraph?
//
//   - Beginner-friendly - tiny API, clear, intuitive naming
//   - Deterministic - Vertices(), Successors() and String() are id-sorted
//   - Pure Go - no cgo, no hidden deps
//
// Everything lives in one subpackage:
//
//	core/ - Graph and Vertex types plus lock-protected primitives
//
// Quick ASCII example:
//
//	v0 ──▶ v1
//	 │
//	 ▼
//	 v3 ◀── v2
//
// four vertices, three edges, always rendered by Graph.String in the same
// order no matter how they were inserted.
//
//	go get github.com/katalvlaran/digraph/core
package digraph
