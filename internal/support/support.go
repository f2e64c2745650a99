package support

import (
	"github.com/yesoreyeram/thaiyyal/backend/internal/ioformat"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/graph"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/types"
)

// Result is one trajectory's support report (spec §4.9): its 1-indexed id,
// the DAGs from the original input that support it, and its canonical
// edge list for the output writers.
type Result struct {
	ID              int
	Trajectory      *graph.DAG
	SupportCount    int
	SupportingNames []string
	Edges           []string
}

// Compute implements the Support Computer (spec §4.9). For each
// trajectory, an input DAG G supports it if G's transitive closure,
// restricted to the trajectory's node set, has exactly the trajectory's
// own (transitively closed) edge set. The emitted edge list reflects the
// trajectory's own edges (spec §9: trajectory edges, not input-DAG edges),
// combining direct precedence with any attached but unordered cluster
// pairs.
//
// The restriction node set excludes the synthetic root: every input DAG
// has a root-to-everything edge by construction (spec §4.1), and since
// the union graph's node universe is every common node of a pair
// (including the root, spec §4.4), a reconstructed trajectory now carries
// its own root edges too. Comparing with root included would make those
// root edges the only thing distinguishing an otherwise-identical
// restriction, so both sides are restricted to the non-root nodes before
// comparison, matching the input DAGs on the actual precedence claims
// being tested rather than the root-to-everything boilerplate every DAG
// shares.
func Compute(trajectories []*graph.DAG, inputDAGs []*graph.DAG, interner *types.Interner) ([]Result, error) {
	results := make([]Result, 0, len(trajectories))
	root := interner.RootID()

	for i, traj := range trajectories {
		closed := traj.Clone()
		if err := closed.TransitiveClose(); err != nil {
			return nil, err
		}
		trajNodes := nodeSet(closed)
		delete(trajNodes, root)
		closedEdges := restrictEdges(closed, trajNodes)

		var supporting []string
		for _, g := range inputDAGs {
			gClosed := g.Clone()
			if err := gClosed.TransitiveClose(); err != nil {
				continue // non-DAG inputs were already dropped at ingest; skip defensively
			}
			restricted := restrictEdges(gClosed, trajNodes)
			if edgeSetsEqual(restricted, closedEdges) {
				supporting = append(supporting, g.Name)
			}
		}

		results = append(results, Result{
			ID:              i + 1,
			Trajectory:      traj,
			SupportCount:    len(supporting),
			SupportingNames: ioformat.SortedStrings(supporting),
			Edges:           CanonicalEdgeList(traj, interner),
		})
	}

	return results, nil
}

// CanonicalEdgeList renders t's direct precedence edges and attached
// cluster pairs in the input grammar's atom format, sorted for
// deterministic output.
func CanonicalEdgeList(t *graph.DAG, interner *types.Interner) []string {
	var atoms []string
	for _, e := range t.Edges() {
		atoms = append(atoms, ioformat.FormatPrecedes(interner.Label(e.A), interner.Label(e.B)))
	}

	nodes := t.Nodes()
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			a, b := nodes[i], nodes[j]
			if t.HasEdge(a, b) || t.HasEdge(b, a) {
				continue
			}
			if t.Clusters.SameCluster(a, b) {
				atoms = append(atoms, ioformat.FormatCluster(interner.Label(a), interner.Label(b)))
			}
		}
	}

	return ioformat.SortedStrings(atoms)
}

func nodeSet(g *graph.DAG) map[types.NodeID]struct{} {
	set := make(map[types.NodeID]struct{})
	for _, n := range g.Nodes() {
		set[n] = struct{}{}
	}
	return set
}

func restrictEdges(g *graph.DAG, nodes map[types.NodeID]struct{}) map[types.NodeID2]struct{} {
	set := make(map[types.NodeID2]struct{})
	for _, e := range g.Edges() {
		if _, ok := nodes[e.A]; !ok {
			continue
		}
		if _, ok := nodes[e.B]; !ok {
			continue
		}
		set[e] = struct{}{}
	}
	return set
}

func edgeSetsEqual(a, b map[types.NodeID2]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for e := range a {
		if _, ok := b[e]; !ok {
			return false
		}
	}
	return true
}
