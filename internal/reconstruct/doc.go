// Package reconstruct turns one ILP solution (a selected node set and the
// DAGs that justify it) into a canonical trajectory DAG.
//
// Edges are drawn only from the selected graphs' own precedence relations
// restricted to the selected nodes. The synthetic root is a common node of
// every DAG pair, so the union graph and the node selection include it and
// its edges are drawn like any other selected node's. Processing selected graphs in a
// fixed order makes the "introduces order" diagnostics and the resulting
// trajectory reproducible regardless of how the caller's graph slice was
// built. After the node-count and acyclicity invariants are checked, the
// trajectory is transitively reduced and re-annotated with cluster
// membership for any node pair the reduction left without direct
// adjacency.
package reconstruct
