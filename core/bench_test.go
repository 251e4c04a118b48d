// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/digraph/core"
)

// BenchmarkAddVertex measures raw vertex allocation and id assignment.
func BenchmarkAddVertex(b *testing.B) {
	g := core.NewGraph()
	// Report memory allocations per operation
	b.ReportAllocs()
	// Reset timer to exclude setup cost
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddVertex(int64(i))
	}
}

// BenchmarkAddEdge measures edge insertion into a growing star around one hub.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	hub := g.AddVertex(0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Each iteration pays for one vertex and one edge.
		g.AddEdge(hub, g.AddVertex(int64(i)))
	}
}

// BenchmarkSuccessors measures the sorted successor query on a
// 1000-leaf star topology.
func BenchmarkSuccessors(b *testing.B) {
	g := core.NewGraph(core.WithCapacity(1001))
	hub := g.AddVertex(0)
	for i := 0; i < 1000; i++ {
		g.AddEdge(hub, g.AddVertex(int64(i)))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Successors sorts 1000 handles in O(d log d)
		_ = g.Successors(hub)
	}
}

// BenchmarkString measures full deterministic rendering of a 1000-vertex star.
func BenchmarkString(b *testing.B) {
	g := core.NewGraph(core.WithCapacity(1001))
	hub := g.AddVertex(0)
	for i := 0; i < 1000; i++ {
		g.AddEdge(hub, g.AddVertex(int64(i)))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.String()
	}
}

// BenchmarkClone measures deep copy of a 1000-edge graph.
func BenchmarkClone(b *testing.B) {
	g := core.NewGraph(core.WithCapacity(1001))
	hub := g.AddVertex(0)
	for i := 0; i < 1000; i++ {
		g.AddEdge(hub, g.AddVertex(int64(i)))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
