package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/yesoreyeram/thaiyyal/backend/internal/ioformat"
	"github.com/yesoreyeram/thaiyyal/backend/internal/support"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/graph"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/types"
)

// Write emits res through the internal/ioformat writers into dir, matching
// the source tool's output file set (spec §6): trajectories.csv,
// converted_format.txt, number_of_distinct_dags_per_sample.csv, and one
// trajectory_<n>.gexf plus traj_graphs_names.csv for the per-trajectory
// graphs.
func Write(res *Result, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", types.ErrIO, err)
	}

	rows := toTrajectoryRows(res.Support)

	if err := writeFile(dir, "trajectories.csv", func(f *os.File) error {
		return ioformat.WriteTrajectoriesCSV(f, rows)
	}); err != nil {
		return err
	}

	if err := writeFile(dir, "converted_format.txt", func(f *os.File) error {
		return ioformat.WriteConvertedFormat(f, rows)
	}); err != nil {
		return err
	}

	counts := toDistinctDAGCounts(res.DistinctDAGCounts)
	if err := writeFile(dir, "number_of_distinct_dags_per_sample.csv", func(f *os.File) error {
		return ioformat.WriteDistinctDAGCounts(f, counts)
	}); err != nil {
		return err
	}

	trajGraphs := toTrajectoryGraphs(res.Support, res.Interner)
	for _, tg := range trajGraphs {
		name := fmt.Sprintf("trajectory_%d.gexf", tg.Index)
		if err := writeFile(dir, name, func(f *os.File) error {
			return ioformat.WriteTrajectoryGEXF(f, tg)
		}); err != nil {
			return err
		}
	}
	if err := writeFile(dir, "traj_graphs_names.csv", func(f *os.File) error {
		return ioformat.WriteTrajGraphNames(f, trajGraphs)
	}); err != nil {
		return err
	}

	return nil
}

func writeFile(dir, name string, write func(f *os.File) error) error {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrIO, err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func toTrajectoryRows(results []support.Result) []ioformat.TrajectoryRow {
	rows := make([]ioformat.TrajectoryRow, len(results))
	for i, r := range results {
		rows[i] = ioformat.TrajectoryRow{
			FileIndex:        r.ID,
			Support:          r.SupportCount,
			SupportingGraphs: r.SupportingNames,
			Edges:            r.Edges,
		}
	}
	return rows
}

func toDistinctDAGCounts(counts map[string]int) []ioformat.DistinctDAGCount {
	out := make([]ioformat.DistinctDAGCount, 0, len(counts))
	processIDs := make([]string, 0, len(counts))
	for p := range counts {
		processIDs = append(processIDs, p)
	}
	sort.Strings(processIDs)
	for _, p := range processIDs {
		out = append(out, ioformat.DistinctDAGCount{ProcessID: p, Count: counts[p]})
	}
	return out
}

func toTrajectoryGraphs(results []support.Result, interner *types.Interner) []ioformat.TrajectoryGraph {
	out := make([]ioformat.TrajectoryGraph, len(results))
	for i, r := range results {
		out[i] = trajectoryGraph(r.ID, r.Trajectory, interner)
	}
	return out
}

func trajectoryGraph(index int, t *graph.DAG, interner *types.Interner) ioformat.TrajectoryGraph {
	nodeIDs := t.Nodes()
	nodes := make([]string, len(nodeIDs))
	for i, n := range nodeIDs {
		nodes[i] = string(interner.Label(n))
	}

	var edges []ioformat.GEXFEdge
	for _, e := range t.Edges() {
		edges = append(edges, ioformat.GEXFEdge{
			Source: string(interner.Label(e.A)),
			Target: string(interner.Label(e.B)),
		})
	}

	clusterMates := make(map[string][]string)
	for i := 0; i < len(nodeIDs); i++ {
		members := t.Clusters.Members(nodeIDs[i], nodeIDs)
		if len(members) == 0 {
			continue
		}
		labels := make([]string, len(members))
		for j, m := range members {
			labels[j] = string(interner.Label(m))
		}
		clusterMates[string(interner.Label(nodeIDs[i]))] = ioformat.SortedStrings(labels)
	}

	return ioformat.TrajectoryGraph{
		Index:        index,
		Name:         t.Name,
		Nodes:        nodes,
		Edges:        edges,
		ClusterMates: clusterMates,
	}
}
