package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/yesoreyeram/thaiyyal/backend/internal/ilpsolver"
	"github.com/yesoreyeram/thaiyyal/backend/internal/pipeline"
)

// ComputeTrajectoriesRequest is the JSON body for a trajectory computation
// request. DAGs maps a process id to the contents of one or more per-tree
// input files, each using the line grammar from spec §4.1
// (A->-B / A-?-B / A-/-B).
type ComputeTrajectoriesRequest struct {
	DAGs                map[string][]string `json:"dags"`
	K                   int                  `json:"k"`
	ResolutionThreshold int                  `json:"resolutionThreshold"`
	ResolutionFrequency bool                 `json:"resolutionFrequency"`
	SolutionPoolSize    int                  `json:"solutionPoolSize"`
}

// TrajectoryResponse is one reconstructed trajectory in the API response.
type TrajectoryResponse struct {
	ID               int      `json:"id"`
	Support          int      `json:"support"`
	SupportingGraphs []string `json:"supportingGraphs"`
	Edges            []string `json:"edges"`
}

// ComputeTrajectoriesResponse is the JSON response for a successful run.
type ComputeTrajectoriesResponse struct {
	Success           bool                 `json:"success"`
	RunID             string               `json:"runId"`
	DurationMS        int64                `json:"durationMs"`
	Trajectories      []TrajectoryResponse `json:"trajectories"`
	DuplicateCount    int                  `json:"duplicateCount"`
	DistinctDAGCounts map[string]int       `json:"distinctDagCounts"`
}

// handleComputeTrajectories runs the pipeline against the DAGs in the
// request body and returns the reconstructed trajectories and their
// support, without writing anything to disk beyond a scratch directory
// cleaned up before the handler returns.
func (s *Server) handleComputeTrajectories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxRequestBodySize)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeErrorResponse(w, "Failed to read request body", http.StatusBadRequest, err)
		return
	}

	var req ComputeTrajectoriesRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeErrorResponse(w, "Failed to parse request body", http.StatusBadRequest, err)
		return
	}
	if len(req.DAGs) == 0 {
		s.writeErrorResponse(w, "Request must include at least one process under \"dags\"", http.StatusBadRequest, fmt.Errorf("empty dags"))
		return
	}

	dagsDir, err := os.MkdirTemp("", "trajfinder-request-*")
	if err != nil {
		s.writeErrorResponse(w, "Failed to allocate scratch directory", http.StatusInternalServerError, err)
		return
	}
	defer os.RemoveAll(dagsDir)

	if err := writeRequestDAGs(dagsDir, req.DAGs); err != nil {
		s.writeErrorResponse(w, "Failed to stage input DAGs", http.StatusBadRequest, err)
		return
	}

	cfg := s.pipelineConfig.Clone()
	cfg.DAGsPath = dagsDir
	cfg.OutputPath = ""
	if req.K > 0 {
		cfg.K = req.K
	}
	cfg.ResolutionThreshold = req.ResolutionThreshold
	cfg.ResolutionFrequency = req.ResolutionFrequency
	if req.SolutionPoolSize > 0 {
		cfg.SolutionPoolSize = req.SolutionPoolSize
	}

	runID := newRunID()
	pc := pipeline.NewContext(r.Context(), cfg.Cores, cfg.Parallelize, cfg.Verbose)
	pc.Observer = s.observerManager

	runLogger := s.logger.WithRunID(runID)
	startTime := time.Now()

	res, err := pipeline.Run(pc, cfg, ilpsolver.NewBruteForceSolver(), runLogger)
	duration := time.Since(startTime)

	if err != nil {
		s.writeErrorResponse(w, "Trajectory computation failed", http.StatusUnprocessableEntity, err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, toComputeResponse(runID, duration, res))
}

func writeRequestDAGs(dir string, dags map[string][]string) error {
	for processID, trees := range dags {
		if len(trees) == 0 {
			return fmt.Errorf("process %q has no trees", processID)
		}
		for i, tree := range trees {
			name := fmt.Sprintf("%s-%d_trees.txt", processID, i)
			if err := os.WriteFile(filepath.Join(dir, name), []byte(tree+"\n"), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", name, err)
			}
		}
	}
	return nil
}

func toComputeResponse(runID string, duration time.Duration, res *pipeline.Result) ComputeTrajectoriesResponse {
	trajectories := make([]TrajectoryResponse, len(res.Support))
	for i, sr := range res.Support {
		trajectories[i] = TrajectoryResponse{
			ID:               sr.ID,
			Support:          sr.SupportCount,
			SupportingGraphs: sr.SupportingNames,
			Edges:            sr.Edges,
		}
	}
	return ComputeTrajectoriesResponse{
		Success:           true,
		RunID:             runID,
		DurationMS:        duration.Milliseconds(),
		Trajectories:      trajectories,
		DuplicateCount:    res.DuplicateCount,
		DistinctDAGCounts: res.DistinctDAGCounts,
	}
}
