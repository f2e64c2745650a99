// Package conflict implements the three middle stages of the pipeline:
// enumerating DAG pairs, analysing each pair for conflicting precedence
// claims, and assembling the results into a single undirected conflict
// multigraph, optionally relaxed by the resolution policies.
//
// # Pairwise analysis
//
// AnalyzePair computes, for one pair of DAGs, a 4-bit signature per
// unordered pair of common nodes (directed claim a->b, directed claim
// b->a, incomparable-in-either-DAG, cluster-mates-in-either-DAG). Two
// directed claims, or a cluster claim alongside an incomparability claim,
// trigger a conflict edge. A directed claim alongside a cluster claim
// that does not itself trigger a conflict is recorded instead as a
// potential conflict, keyed by the direction of the directed claim.
//
// # Assembly and resolution
//
// UnionGraph merges every pair graph's edges into one multigraph, keyed
// by canonicalised (lesser-NodeID-first) endpoints so (a,b) and (b,a)
// collide; edge labels are pair names, preserved as a multiset. The
// aggregated PotentialMap merges potential conflicts across every pair by
// ordered key. ApplyFrequencyPolicy and ApplyThresholdPolicy then
// optionally reinstate some potential conflicts as real conflict edges,
// each leaving the union graph a superset of its input (equal to it when
// nothing is reinstated).
package conflict
