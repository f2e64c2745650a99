package types

import "errors"

// Sentinel errors shared across the ingestion, conflict, and reconstruction
// stages, per the error kinds named in the design: IOError, ParseError,
// NonDAG, SolverInfeasible, InvariantViolation.
var (
	// ErrIO wraps a failure to read an input path.
	ErrIO = errors.New("io error")

	// ErrParse wraps a malformed edge atom or file name.
	ErrParse = errors.New("parse error")

	// ErrNonDAG means transitive closure detected a cycle in an input
	// graph; the DAG it was found in is dropped, not the whole run.
	ErrNonDAG = errors.New("input is not a DAG")

	// ErrSolverInfeasible means no assignment satisfies the patient quota.
	ErrSolverInfeasible = errors.New("no feasible solution satisfies the patient quota")

	// ErrInvariantViolation marks a fatal internal consistency failure: a
	// reconstructed trajectory's node count disagreeing with its
	// selection, or becoming cyclic after edge intersection. Callers
	// should treat this as unrecoverable.
	ErrInvariantViolation = errors.New("invariant violation")
)
