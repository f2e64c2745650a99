// Package ingest turns raw trajectory input — a single text file, a
// directory of per-process text files, or GEXF files — into the
// per-process map of DAGs the rest of the pipeline consumes.
//
// # File-name grammar
//
// Directory-mode files follow <base>[-<tree_index>]_<suffix>.<ext>.
// FileNameMatch recovers the process id and tree name from a file name
// alone; it never touches the filesystem.
//
// # Line grammar
//
// Each line tokenises on whitespace into precedence (A->-B), cluster
// (A-?-B), and disjoint (A-/-B) atoms, plus bare node tokens, via
// internal/ioformat.ParseAtom. ParseLine builds one DAG per line: interns
// every node, attaches the synthetic root, and transitively closes the
// result. A line whose edges are cyclic is reported as an error rather
// than silently dropped; Ingest records it as a Diagnostic for its process
// and moves on.
//
// # Duplicate suppression
//
// Within one process, lines are canonicalised by CanonicalizeLine (sorted
// whitespace-split tokens) before parsing; a line whose canonical form was
// already seen for that process contributes no DAG.
//
// # Concurrency
//
// Ingest fans out one goroutine per process in directory mode, bounded by
// the cores argument via golang.org/x/sync/errgroup. The shared
// types.Interner is safe for concurrent use, so goroutines never need to
// coordinate beyond that.
package ingest
