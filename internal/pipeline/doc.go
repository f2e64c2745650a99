// Package pipeline wires the Ingestor, Pairwise Conflict Analyser, Union
// Conflict Graph Assembler, Resolution Policy Engine, ILP Interface,
// Trajectory Reconstructor, Deduplicator, and Support Computer into one
// end-to-end run, and writes the result through internal/ioformat.
//
// Context replaces the source tool's module-level verbose flag and ad hoc
// cancellation flag with a value threaded explicitly through every stage
// (spec §5, §9 "Global mutable state"). RunAll sizes a worker pool off
// Context.Cores for the one stage embarrassingly parallel across
// independent units of work - pairwise conflict analysis - mirroring the
// teacher's ParallelExecutionConfig/executeLevel shape for a single level
// of independent tasks, built on errgroup rather than a hand-rolled
// semaphore to match this module's ingestion worker pool.
package pipeline
