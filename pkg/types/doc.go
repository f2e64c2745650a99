// Package types provides shared type definitions for the trajectory finder.
//
// # Overview
//
// This package holds node identity (NodeLabel, NodeID, Interner) and the
// relation vocabulary (RelationKind) used across the ingestion, conflict,
// and reconstruction packages, plus the sentinel error values a caller can
// match with errors.Is. It serves as the foundation for avoiding circular
// dependencies between pkg/graph, internal/ingest, internal/conflict,
// internal/reconstruct and internal/support.
//
// # Node identity
//
// Node labels are opaque strings in the input files. The Interner assigns
// each label a dense NodeID so downstream packages can use integer-keyed
// maps and sets instead of comparing strings. "0" is always interned first
// and is reserved for the synthetic root every DAG is given.
//
// # Thread safety
//
// Interner is safe for concurrent use, since the DAG Ingestor interns
// labels from one goroutine per process while building the shared node
// space the rest of the pipeline operates over.
package types
