package graph

import "errors"

// Sentinel errors for DAG operations.
var (
	// ErrEmptyDAG means an operation was attempted on a DAG with no nodes.
	ErrEmptyDAG = errors.New("dag is empty")

	// ErrSelfLoop means an edge from a node to itself was requested; the
	// data model forbids self-loops (spec §3).
	ErrSelfLoop = errors.New("self-loops are not permitted")

	// ErrCycleDetected means transitive closure found a cycle, i.e. the
	// input is not a DAG.
	ErrCycleDetected = errors.New("cycle detected in graph")

	// ErrNodeNotFound means an operation referenced a node id the DAG does
	// not know about.
	ErrNodeNotFound = errors.New("node not found in dag")
)
