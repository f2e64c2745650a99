package reconstruct

import (
	"errors"
	"testing"

	"github.com/yesoreyeram/thaiyyal/backend/pkg/graph"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/types"
)

func newGraph(name string, edges [][2]types.NodeID) *graph.DAG {
	g := graph.New(name, name, 0)
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g
}

func TestReconstruct_AgreeingGraphsProduceNoDiagnostics(t *testing.T) {
	in := types.NewInterner()
	a, b := in.Intern("A"), in.Intern("B")

	g1 := newGraph("p1-0", [][2]types.NodeID{{a, b}})
	g2 := newGraph("p2-0", [][2]types.NodeID{{a, b}})

	nodes := map[types.NodeID]struct{}{a: {}, b: {}}
	traj, diags, err := Reconstruct(nodes, []*graph.DAG{g1, g2}, in)
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("diagnostics = %+v, want none", diags)
	}
	if traj.NodeCount() != 3 {
		t.Fatalf("NodeCount() = %d, want 3 (root + A + B)", traj.NodeCount())
	}
	if !traj.HasEdge(a, b) {
		t.Fatalf("expected A->B in the trajectory")
	}
	if traj.Name != "p1-0:p2-0" {
		t.Fatalf("Name = %q, want %q", traj.Name, "p1-0:p2-0")
	}
}

func TestReconstruct_NewOrderDiagnosticOnDivergence(t *testing.T) {
	in := types.NewInterner()
	a, b, c := in.Intern("A"), in.Intern("B"), in.Intern("C")

	g1 := newGraph("p1-0", [][2]types.NodeID{{a, c}})
	g2 := newGraph("p2-0", [][2]types.NodeID{{a, c}, {a, b}})

	nodes := map[types.NodeID]struct{}{a: {}, b: {}, c: {}}
	_, diags, err := Reconstruct(nodes, []*graph.DAG{g1, g2}, in)
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}
	if len(diags) != 1 {
		t.Fatalf("len(diags) = %d, want 1: %+v", len(diags), diags)
	}
	if diags[0].GraphName != "p2-0" {
		t.Fatalf("GraphName = %q, want %q", diags[0].GraphName, "p2-0")
	}
}

func TestReconstruct_CyclicSelectionIsInvariantViolation(t *testing.T) {
	in := types.NewInterner()
	a, b := in.Intern("A"), in.Intern("B")

	g1 := newGraph("p1-0", [][2]types.NodeID{{a, b}})
	g2 := newGraph("p2-0", [][2]types.NodeID{{b, a}})

	nodes := map[types.NodeID]struct{}{a: {}, b: {}}
	_, _, err := Reconstruct(nodes, []*graph.DAG{g1, g2}, in)
	if !errors.Is(err, types.ErrInvariantViolation) {
		t.Fatalf("err = %v, want ErrInvariantViolation", err)
	}
}

func TestReconstruct_AttachesUnresolvedClusterMembership(t *testing.T) {
	in := types.NewInterner()
	a, b := in.Intern("A"), in.Intern("B")

	g1 := graph.New("p1-0", "p1", 0)
	g1.AddNode(a)
	g1.AddNode(b)
	g1.Clusters.Merge(a, b)

	nodes := map[types.NodeID]struct{}{a: {}, b: {}}
	traj, _, err := Reconstruct(nodes, []*graph.DAG{g1}, in)
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}
	if !traj.Clusters.SameCluster(a, b) {
		t.Fatalf("expected A and B to be attached as cluster-mates in the trajectory")
	}
}
