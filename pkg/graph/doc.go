// Package graph provides DAG operations for the trajectory finder: cycle
// detection via topological sort, transitive closure, transitive
// reduction, and the cluster-membership relation a single input DAG
// carries alongside its edges.
//
// # Representation
//
// A DAG holds forward adjacency (u,v present means u precedes v) plus a
// ClusterSet recording which nodes are unordered clone-mates. Both are
// keyed by the dense pkg/types.NodeID rather than the original string
// label, so every set operation here is an integer map lookup instead of
// a string comparison.
//
// # Topological sort
//
// TopologicalSort implements Kahn's algorithm: nodes with zero in-degree
// are queued in ascending NodeID order and removed one at a time,
// decrementing their successors' in-degree. If fewer nodes are ordered
// than the DAG contains, a cycle exists and ErrCycleDetected is returned.
//
// # Transitive closure and reduction
//
// TransitiveClose walks nodes in reverse topological order, unioning each
// node's direct successors' already-computed closures into its own. This
// both produces the closure in one linear pass over the topological order
// and doubles as the DAG's acyclicity check (it first calls
// TopologicalSort, so a cyclic input surfaces as ErrCycleDetected before
// any edge is rewritten).
//
// TransitiveReduce removes any edge (u,v) for which an alternate path
// u->w->v already exists among u's other direct successors, producing the
// Hasse diagram of an already-closed DAG.
//
// # Performance characteristics
//
//   - TopologicalSort: O(V + E)
//   - TransitiveClose: O(V * (V + E)) in the worst case, acceptable at the
//     node counts these DAGs reach (tens to low hundreds of mutations)
//   - TransitiveReduce: O(V * E) for the same reason
//
// # Thread safety
//
// A DAG is not safe for concurrent mutation; the pipeline builds one DAG
// per goroutine during ingestion and never mutates a DAG from more than
// one goroutine afterward.
package graph
