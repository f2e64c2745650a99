package pipeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/yesoreyeram/thaiyyal/backend/internal/conflict"
	"github.com/yesoreyeram/thaiyyal/backend/internal/dedup"
	"github.com/yesoreyeram/thaiyyal/backend/internal/ilpsolver"
	"github.com/yesoreyeram/thaiyyal/backend/internal/ingest"
	"github.com/yesoreyeram/thaiyyal/backend/internal/reconstruct"
	"github.com/yesoreyeram/thaiyyal/backend/internal/support"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/config"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/graph"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/logging"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/observer"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/types"
)

// Result is everything a run produces, ready to hand to the
// internal/ioformat writers or to an HTTP handler.
type Result struct {
	Interner          *types.Interner
	Trajectories      []*graph.DAG
	Support           []support.Result
	DuplicateCount    int
	IngestDiagnostics []ingest.Diagnostic
	ReconstructNotes  []reconstruct.Diagnostic
	DistinctDAGCounts map[string]int
}

// Run executes the full pipeline against cfg, using solver (pass
// ilpsolver.NewBruteForceSolver() when no production backend is wired).
// When pc.Observer is set, Run notifies it of the run's start and end and
// of each stage's start and end, so a caller can bridge progress into
// telemetry or console output without Run itself depending on either.
func Run(pc Context, cfg *config.Config, solver ilpsolver.Solver, logger *logging.Logger) (res *Result, err error) {
	if logger == nil {
		logger = logging.New(logging.DefaultConfig())
	}
	runID := uuid.New().String()
	notifyRunStart(pc, runID)
	defer func() { notifyRunEnd(pc, runID, res, err) }()

	stageLogger := logger.WithStage("ingest")
	notifyStageStart(pc, runID, "ingest")
	ingestRes, err := ingest.Ingest(pc.Ctx, cfg.DAGsPath, pc.Cores, stageLogger)
	notifyStageEnd(pc, runID, "ingest", err)
	if err != nil {
		return nil, err
	}
	if len(ingestRes.ProcessOrder) == 0 {
		err = fmt.Errorf("%w: no processes ingested from %s", types.ErrIO, cfg.DAGsPath)
		return nil, err
	}
	if pc.Verbose {
		stageLogger.Infof("ingested %d processes", len(ingestRes.ProcessOrder))
	}
	for _, diag := range ingestRes.Diagnostics {
		notifyDiagnostic(pc, runID, "ingest", diag.ProcessID)
	}

	notifyStageStart(pc, runID, "analyze")
	union, potentials, err := analyzeConflicts(pc, ingestRes, logger)
	notifyStageEnd(pc, runID, "analyze", err)
	if err != nil {
		return nil, err
	}

	notifyStageStart(pc, runID, "resolve")
	if cfg.ResolutionFrequency {
		conflict.ApplyFrequencyPolicy(union, potentials, logger.WithStage("resolve-frequency"))
	}
	if cfg.ResolutionThreshold > 0 {
		conflict.ApplyThresholdPolicy(union, potentials, cfg.ResolutionThreshold)
	}
	notifyStageEnd(pc, runID, "resolve", nil)

	k := cfg.K
	if k > len(ingestRes.ProcessOrder) {
		k = len(ingestRes.ProcessOrder)
		logger.Warnf("k=%d exceeds the %d ingested processes; clamping k to %d", cfg.K, k, k)
	}
	notifyStageStart(pc, runID, "solve")
	solutions, err := solver.Solve(pc.Ctx, union, ingestRes.ProcessOrder, ingestRes.Processes, k)
	notifyStageEnd(pc, runID, "solve", err)
	if err != nil {
		return nil, err
	}
	if cfg.SolutionPoolSize > 0 && len(solutions) > cfg.SolutionPoolSize {
		solutions = solutions[:cfg.SolutionPoolSize]
	}

	notifyStageStart(pc, runID, "reconstruct")
	trajectories, notes, err := reconstructAll(solutions, ingestRes.Interner)
	notifyStageEnd(pc, runID, "reconstruct", err)
	if err != nil {
		return nil, err
	}
	if pc.Verbose {
		for _, note := range notes {
			logger.WithStage("reconstruct").Warn(note.Message)
		}
	}

	notifyStageStart(pc, runID, "dedup")
	dedupRes := dedup.Dedup(trajectories)
	notifyStageEnd(pc, runID, "dedup", nil)
	if pc.Verbose {
		logger.WithStage("dedup").Infof("removed %d duplicate trajectories", dedupRes.DuplicateCount)
	}

	allInputDAGs := flattenProcesses(ingestRes.ProcessOrder, ingestRes.Processes)
	notifyStageStart(pc, runID, "support")
	supportRes, err := support.Compute(dedupRes.Trajectories, allInputDAGs, ingestRes.Interner)
	notifyStageEndWithCount(pc, runID, "support", err, len(dedupRes.Trajectories))
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(ingestRes.ProcessOrder))
	for _, p := range ingestRes.ProcessOrder {
		counts[p] = len(ingestRes.Processes[p])
	}

	return &Result{
		Interner:          ingestRes.Interner,
		Trajectories:      dedupRes.Trajectories,
		Support:           supportRes,
		DuplicateCount:    dedupRes.DuplicateCount,
		IngestDiagnostics: ingestRes.Diagnostics,
		ReconstructNotes:  notes,
		DistinctDAGCounts: counts,
	}, nil
}

func notifyRunStart(pc Context, runID string) {
	if pc.Observer == nil {
		return
	}
	pc.Observer.Notify(pc.Ctx, observer.Event{
		Type: observer.EventRunStart, Status: observer.StatusStarted,
		Timestamp: time.Now(), RunID: runID,
	})
}

func notifyRunEnd(pc Context, runID string, res *Result, err error) {
	if pc.Observer == nil {
		return
	}
	status := observer.StatusSuccess
	if err != nil {
		status = observer.StatusFailure
	}
	trajectoriesEmitted := 0
	if res != nil {
		trajectoriesEmitted = len(res.Trajectories)
	}
	pc.Observer.Notify(pc.Ctx, observer.Event{
		Type: observer.EventRunEnd, Status: status,
		Timestamp: time.Now(), RunID: runID, Error: err,
		Metadata: map[string]interface{}{"trajectories_emitted": trajectoriesEmitted},
	})
}

func notifyStageStart(pc Context, runID, stage string) {
	if pc.Observer == nil {
		return
	}
	pc.Observer.Notify(pc.Ctx, observer.Event{
		Type: observer.EventStageStart, Status: observer.StatusStarted,
		Timestamp: time.Now(), RunID: runID, Stage: stage,
	})
}

func notifyStageEnd(pc Context, runID, stage string, err error) {
	notifyStageEndWithCount(pc, runID, stage, err, 0)
}

func notifyStageEndWithCount(pc Context, runID, stage string, err error, trajectoryCount int) {
	if pc.Observer == nil {
		return
	}
	status := observer.StatusSuccess
	if err != nil {
		status = observer.StatusFailure
	}
	var metadata map[string]interface{}
	if stage == "support" {
		metadata = map[string]interface{}{"trajectories_emitted": trajectoryCount}
	}
	pc.Observer.Notify(pc.Ctx, observer.Event{
		Type: observer.EventStageEnd, Status: status,
		Timestamp: time.Now(), RunID: runID, Stage: stage, Error: err,
		Metadata: metadata,
	})
}

func notifyDiagnostic(pc Context, runID, stage, processID string) {
	if pc.Observer == nil {
		return
	}
	pc.Observer.Notify(pc.Ctx, observer.Event{
		Type: observer.EventDiagnostic, Status: observer.StatusCompleted,
		Timestamp: time.Now(), RunID: runID, Stage: stage, ProcessID: processID,
	})
}

// analyzeConflicts implements the Pairwise Conflict Analyser, fanned out
// over the worker pool, followed by the Union Conflict Graph Assembler
// (spec §4.2-§4.4).
func analyzeConflicts(pc Context, ingestRes *ingest.Result, logger *logging.Logger) (*conflict.UnionGraph, conflict.PotentialMap, error) {
	pairs := conflict.EnumeratePairs(ingestRes.ProcessOrder, ingestRes.Processes)

	pairGraphs := make([]*conflict.PairGraph, len(pairs))
	potentialLists := make([][]conflict.PotentialConflict, len(pairs))

	err := RunAll(pc, len(pairs), func(i int) error {
		pg, pot := conflict.AnalyzePair(pairs[i].DAGA, pairs[i].DAGB)
		pairGraphs[i] = pg
		potentialLists[i] = pot
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	union := conflict.NewUnionGraph()
	potentials := conflict.NewPotentialMap()
	for i, pg := range pairGraphs {
		union.AddPairGraph(pg)
		potentials.Merge(potentialLists[i])
	}
	if logger != nil {
		logger.WithStage("assemble").Infof("assembled union graph: %d nodes, %d edge keys", len(union.Nodes), len(union.Edges))
	}
	return union, potentials, nil
}

// reconstructAll runs the Trajectory Reconstructor once per solver
// solution (spec §4.7). A solution's SelectedGraphs map is converted to a
// slice sorted by process id first, so reconstruction order - and hence
// the "introduces order" diagnostics - is a deterministic function of the
// solver's output.
func reconstructAll(solutions []ilpsolver.Solution, interner *types.Interner) ([]*graph.DAG, []reconstruct.Diagnostic, error) {
	trajectories := make([]*graph.DAG, 0, len(solutions))
	var notes []reconstruct.Diagnostic

	for _, sol := range solutions {
		processIDs := make([]string, 0, len(sol.SelectedGraphs))
		for p := range sol.SelectedGraphs {
			processIDs = append(processIDs, p)
		}
		sort.Strings(processIDs)

		graphs := make([]*graph.DAG, len(processIDs))
		for i, p := range processIDs {
			graphs[i] = sol.SelectedGraphs[p]
		}

		traj, diags, err := reconstruct.Reconstruct(sol.SelectedNodes, graphs, interner)
		if err != nil {
			return nil, nil, err
		}
		trajectories = append(trajectories, traj)
		notes = append(notes, diags...)
	}
	return trajectories, notes, nil
}

func flattenProcesses(order []string, processes map[string][]*graph.DAG) []*graph.DAG {
	var out []*graph.DAG
	for _, p := range order {
		out = append(out, processes[p]...)
	}
	return out
}
