// Package core provides a minimal, lock-protected in-memory directed graph
// with deterministic serialization.
//
// The Graph G = (V,E) is deliberately small in scope:
//
//   - Vertices carry a unique, never-reused numeric id and a mutable int64 payload
//   - Edges are directed, unweighted and simple (at most one per ordered pair)
//   - Self-loops (u→u) are permitted
//   - One coarse sync.RWMutex guards every operation; the counter, vertex
//     catalog and adjacency sets are cross-referential and are only ever
//     updated together
//
// Why use core.Graph?
//
//   - Single owner - the graph allocates and owns all vertex storage;
//     callers hold non-owning *Vertex handles
//   - Deterministic enumeration - Vertices(), Successors(), SuccessorIDs()
//     and String() all sort ascending by id
//   - Sort-on-demand - mutation paths never maintain sorted structures;
//     ordering is paid for only at query/serialization time
//
// Handle policy:
//
// Handles are obtained from AddVertex (or Vertices/Successors/VertexByID)
// and are valid until the referenced vertex is removed or the graph is
// cleared. Passing a nil handle, or a handle whose vertex is no longer (or
// was never) in the graph, makes every operation a no-op that reports
// absence - false from mutators, empty results from queries. The same
// policy applies uniformly across AddEdge, RemoveEdge, RemoveVertex and all
// queries; no operation panics.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(data int64) *Vertex         // O(1) amortized, always succeeds
//	HasVertex(u *Vertex) bool             // O(1)
//	VertexByID(id uint64) (*Vertex, bool) // O(1)
//	RemoveVertex(u *Vertex) bool          // O(V): cascades over incident edges
//
//	// Edge lifecycle
//	AddEdge(u, v *Vertex) bool            // O(1) amortized; false on duplicate
//	RemoveEdge(u, v *Vertex) bool         // O(1) amortized
//	HasEdge(u, v *Vertex) bool            // O(1)
//
//	// Query
//	Vertices() []*Vertex                  // O(V log V), id asc
//	Successors(u *Vertex) []*Vertex       // O(d log d), id asc
//	SuccessorIDs(u *Vertex) []uint64      // O(d log d), id asc
//	VertexCount() int                     // O(1)
//	EdgeCount() int                       // O(1)
//
//	// Maintenance
//	Clear()                               // O(1); preserves the id counter
//	CloneEmpty() *Graph                   // O(V): vertices only
//	Clone() *Graph                        // O(V+E): deep copy
//
//	// Serialization
//	String() string                       // O(V log V + E log E), byte-stable
//
// Every fallible operation communicates success/failure through its bool
// return; failure causes are purely logical (edge/vertex already absent or
// already present). There is no error taxonomy and no panic path.
package core
