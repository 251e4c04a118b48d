package core_test

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// ExampleGraph demonstrates building the reference graph and rendering it.
func ExampleGraph() {
	// 1) Create an empty directed graph:
	g := core.NewGraph()

	// 2) Add four vertices; ids 0..3 are assigned in call order:
	vs := make([]*core.Vertex, 0, 4)
	for i := 0; i < 4; i++ {
		vs = append(vs, g.AddVertex(int64(i)))
	}

	// 3) Wire the edges; the repeated v2→v3 is rejected (simple graph):
	g.AddEdge(vs[0], vs[0])
	g.AddEdge(vs[0], vs[1])
	g.AddEdge(vs[0], vs[3])
	g.AddEdge(vs[2], vs[3])
	fmt.Println("duplicate accepted?", g.AddEdge(vs[2], vs[3]))

	// 4) Render deterministically:
	fmt.Print(g.String())

	// Output:
	// duplicate accepted? false
	// DirectedGraph:
	//   vertices:
	//     v0
	//     v1
	//     v2
	//     v3
	//   edges:
	//     v0 -> v0
	//     v0 -> v1
	//     v0 -> v3
	//     v2 -> v3
}

// ExampleGraph_removeVertex shows the removal cascade over incident edges.
func ExampleGraph_removeVertex() {
	g := core.NewGraph()
	a := g.AddVertex(0)
	b := g.AddVertex(1)
	c := g.AddVertex(2)
	g.AddEdge(a, b)
	g.AddEdge(b, c)
	g.AddEdge(c, a)

	// Removing b drops both a→b and b→c.
	g.RemoveVertex(b)
	fmt.Print(g.String())

	// Output:
	// DirectedGraph:
	//   vertices:
	//     v0
	//     v2
	//   edges:
	//     v2 -> v0
}
