package reconstruct

import (
	"fmt"
	"sort"

	"github.com/yesoreyeram/thaiyyal/backend/internal/ioformat"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/graph"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/types"
)

// Diagnostic is an "introduces order" event (spec §4.7 step 3): processing
// one more graph into the trajectory changed the accumulated edge set in a
// way the previous graphs alone did not predict, meaning the ILP's node
// selection resolved a cluster that had been left ambiguous.
type Diagnostic struct {
	TrajectoryName string
	GraphName      string
	Message        string
}

// Reconstruct implements the Trajectory Reconstructor (spec §4.7) for one
// optimal (S_nodes, S_graphs) pair returned by the solver. graphs need not
// be pre-sorted; Reconstruct processes them in a deterministic order (by
// DAG name) so the diagnostics and the resulting trajectory are a
// reproducible function of the input regardless of map iteration order
// upstream.
func Reconstruct(nodes map[types.NodeID]struct{}, graphs []*graph.DAG, interner *types.Interner) (*graph.DAG, []Diagnostic, error) {
	sorted := append([]*graph.DAG(nil), graphs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	names := make([]string, len(sorted))
	for i, g := range sorted {
		names[i] = g.Name
	}
	trajName := ioformat.SortedJoin(names, ":")

	traj := graph.New(trajName, "", 0)
	traj.AddNode(interner.RootID())
	for n := range nodes {
		traj.AddNode(n)
	}

	var diagnostics []Diagnostic
	allEdges := make(map[types.NodeID2]struct{})
	for _, g := range sorted {
		thisIter := make(map[types.NodeID2]struct{})
		for _, e := range g.Edges() {
			if _, ok := nodes[e.A]; !ok {
				continue
			}
			if _, ok := nodes[e.B]; !ok {
				continue
			}
			thisIter[e] = struct{}{}
			traj.AddEdge(e.A, e.B)
		}

		if len(allEdges) > 0 {
			diff := symmetricDifference(allEdges, thisIter)
			if len(diff) > 0 {
				diagnostics = append(diagnostics, Diagnostic{
					TrajectoryName: trajName,
					GraphName:      g.Name,
					Message:        fmt.Sprintf("graph %s introduces order: %d edges differ from the trajectory so far", g.Name, len(diff)),
				})
			}
		}
		for e := range thisIter {
			allEdges[e] = struct{}{}
		}
	}

	wantNodes := len(nodes)
	if _, ok := nodes[interner.RootID()]; !ok {
		wantNodes++ // root wasn't already a selected node, traj.AddNode added it separately
	}
	if traj.NodeCount() != wantNodes {
		return nil, diagnostics, fmt.Errorf("%w: trajectory %s has %d nodes, want %d",
			types.ErrInvariantViolation, trajName, traj.NodeCount(), wantNodes)
	}
	if !traj.IsAcyclic() {
		return nil, diagnostics, fmt.Errorf("%w: trajectory %s is cyclic", types.ErrInvariantViolation, trajName)
	}

	traj.TransitiveReduce()
	attachClusterMembership(traj, sorted)

	return traj, diagnostics, nil
}

// attachClusterMembership implements spec §4.7 step 7: any node pair left
// without direct adjacency in either direction after reduction is given
// mutual cluster_nodes membership in the trajectory if any selected graph
// recorded them as cluster-mates, merged transitively within the
// trajectory's own ClusterSet.
func attachClusterMembership(traj *graph.DAG, graphs []*graph.DAG) {
	nodeList := traj.Nodes()
	for i := 0; i < len(nodeList); i++ {
		for j := i + 1; j < len(nodeList); j++ {
			a, b := nodeList[i], nodeList[j]
			if traj.HasEdge(a, b) || traj.HasEdge(b, a) {
				continue
			}
			for _, g := range graphs {
				if g.Clusters.SameCluster(a, b) {
					traj.Clusters.Merge(a, b)
					break
				}
			}
		}
	}
}

func symmetricDifference(a, b map[types.NodeID2]struct{}) map[types.NodeID2]struct{} {
	diff := make(map[types.NodeID2]struct{})
	for e := range a {
		if _, ok := b[e]; !ok {
			diff[e] = struct{}{}
		}
	}
	for e := range b {
		if _, ok := a[e]; !ok {
			diff[e] = struct{}{}
		}
	}
	return diff
}
