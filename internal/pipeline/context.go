package pipeline

import (
	"context"
	"runtime"

	"github.com/yesoreyeram/thaiyyal/backend/pkg/observer"
)

// Context carries the run-wide settings every pipeline stage needs,
// replacing the source tool's module-level verbose flag and ad hoc
// cancellation checks (SPEC_FULL.md §5, §9 "Global mutable state") with a
// single value threaded explicitly through each stage call.
type Context struct {
	// Ctx carries cancellation and deadlines; stages select on Ctx.Done()
	// between units of work instead of polling a package-level flag.
	Ctx context.Context
	// Verbose enables Run's extra progress and diagnostic log lines
	// (ingested process count, "introduces order" notes, duplicate count);
	// it does not change the logger's level.
	Verbose bool
	// Cores bounds the worker pool used by the Ingestor and the Pairwise
	// Conflict Analyser. Zero means runtime.GOMAXPROCS(0).
	Cores int
	// Parallelize disables the worker pools entirely when false, running
	// every stage on the calling goroutine.
	Parallelize bool
	// Observer receives run and stage events. Nil is valid and means no
	// one is listening; Run only notifies when this is set.
	Observer *observer.Manager
}

// NewContext builds a Context from the given run settings, resolving Cores'
// zero-value default the same way the teacher's ParallelExecutionConfig
// resolves an unset MaxConcurrency.
func NewContext(ctx context.Context, cores int, parallelize, verbose bool) Context {
	if cores <= 0 {
		cores = runtime.GOMAXPROCS(0)
	}
	if !parallelize {
		cores = 1
	}
	return Context{Ctx: ctx, Verbose: verbose, Cores: cores, Parallelize: parallelize}
}
