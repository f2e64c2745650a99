package conflict

import (
	"testing"

	"github.com/yesoreyeram/thaiyyal/backend/pkg/graph"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/types"
)

func buildDAG(t *testing.T, in *types.Interner, name string, precedes [][2]string, clusters [][2]string) *graph.DAG {
	t.Helper()
	d := graph.New(name, name, 0)
	root := in.Intern(types.RootLabel)
	d.AddNode(root)
	for _, e := range precedes {
		d.AddEdge(in.Intern(types.NodeLabel(e[0])), in.Intern(types.NodeLabel(e[1])))
	}
	for _, c := range clusters {
		a, b := in.Intern(types.NodeLabel(c[0])), in.Intern(types.NodeLabel(c[1]))
		d.AddNode(a)
		d.AddNode(b)
		d.Clusters.Merge(a, b)
	}
	for _, n := range d.Nodes() {
		if n != root {
			d.AddEdge(root, n)
		}
	}
	if err := d.TransitiveClose(); err != nil {
		t.Fatalf("TransitiveClose() error = %v", err)
	}
	return d
}

func TestEnumeratePairs_CrossProductInOrder(t *testing.T) {
	in := types.NewInterner()
	p1 := buildDAG(t, in, "p1-0", [][2]string{{"A", "B"}}, nil)
	p2a := buildDAG(t, in, "p2-0", [][2]string{{"A", "B"}}, nil)
	p2b := buildDAG(t, in, "p2-1", [][2]string{{"A", "B"}}, nil)

	processes := map[string][]*graph.DAG{"p1": {p1}, "p2": {p2a, p2b}}
	pairs := EnumeratePairs([]string{"p1", "p2"}, processes)
	if len(pairs) != 2 {
		t.Fatalf("len(pairs) = %d, want 2", len(pairs))
	}
	if pairs[0].DAGB != p2a || pairs[1].DAGB != p2b {
		t.Fatalf("pairs not in D[p2] order: %+v", pairs)
	}
}

func TestAnalyzePair_OppositeDirectedEdgesConflict(t *testing.T) {
	in := types.NewInterner()
	g1 := buildDAG(t, in, "p1-0", [][2]string{{"A", "B"}}, nil)
	g2 := buildDAG(t, in, "p2-0", [][2]string{{"B", "A"}}, nil)

	pg, potentials := AnalyzePair(g1, g2)
	a, b := in.Intern("A"), in.Intern("B")
	found := false
	for _, e := range pg.Edges {
		if (e.A == a && e.B == b) || (e.A == b && e.B == a) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a conflict edge between A and B, got %+v", pg.Edges)
	}
	if len(potentials) != 0 {
		t.Fatalf("expected no potential conflicts, got %+v", potentials)
	}
}

func TestAnalyzePair_DirectedOverClusterIsPotential(t *testing.T) {
	in := types.NewInterner()
	g1 := buildDAG(t, in, "p1-0", nil, [][2]string{{"A", "B"}})
	g2 := buildDAG(t, in, "p2-0", [][2]string{{"A", "B"}}, nil)

	pg, potentials := AnalyzePair(g1, g2)
	if len(pg.Edges) != 0 {
		t.Fatalf("expected no conflict edge, got %+v", pg.Edges)
	}
	if len(potentials) != 1 {
		t.Fatalf("len(potentials) = %d, want 1: %+v", len(potentials), potentials)
	}
	a, b := in.Intern("A"), in.Intern("B")
	pc := potentials[0]
	if pc.A != a || pc.B != b {
		t.Fatalf("potential conflict direction = (%v,%v), want (A,B)", pc.A, pc.B)
	}
	if pc.OriginatingDAGName != "p2-0" {
		t.Fatalf("OriginatingDAGName = %q, want %q", pc.OriginatingDAGName, "p2-0")
	}
}

func TestAnalyzePair_NodesIncludeEveryCommonNodeNotJustConflictEndpoints(t *testing.T) {
	in := types.NewInterner()
	g1 := buildDAG(t, in, "p1-0", [][2]string{{"A", "B"}, {"B", "C"}}, nil)
	g2 := buildDAG(t, in, "p2-0", [][2]string{{"A", "B"}, {"B", "C"}}, nil)

	pg, _ := AnalyzePair(g1, g2)
	root, a, b, c := in.Intern(types.RootLabel), in.Intern("A"), in.Intern("B"), in.Intern("C")
	for _, want := range []types.NodeID{root, a, b, c} {
		if _, ok := pg.Nodes[want]; !ok {
			t.Fatalf("Nodes missing common node %v: agreeing DAGs must still contribute every shared node, not just conflict endpoints", want)
		}
	}
	if len(pg.Edges) != 0 {
		t.Fatalf("expected no conflict edges between identical DAGs, got %+v", pg.Edges)
	}
}

func TestUnionGraph_CanonicalizesUndirectedEdges(t *testing.T) {
	u := NewUnionGraph()
	a, b := types.NodeID(1), types.NodeID(2)
	u.AddPairGraph(&PairGraph{Name: "p1:p2", Nodes: map[types.NodeID]struct{}{a: {}, b: {}}, Edges: []ConflictEdge{{A: a, B: b}}})
	u.AddPairGraph(&PairGraph{Name: "p3:p4", Nodes: map[types.NodeID]struct{}{a: {}, b: {}}, Edges: []ConflictEdge{{A: b, B: a}}})

	key := canonEdgeKey(a, b)
	labels := u.Edges[key]
	if len(labels) != 2 {
		t.Fatalf("len(labels) = %d, want 2 (both insertions collapse onto one key)", len(labels))
	}
}

func TestApplyFrequencyPolicy_ReinstatesWeakerDirection(t *testing.T) {
	u := NewUnionGraph()
	potentials := NewPotentialMap()
	a, b := types.NodeID(1), types.NodeID(2)

	potentials.Merge([]PotentialConflict{
		{A: a, B: b, PairName: "p1:p2", OriginatingDAGName: "p2-0"},
		{A: a, B: b, PairName: "p1:p3", OriginatingDAGName: "p3-0"},
		{A: b, B: a, PairName: "p4:p5", OriginatingDAGName: "p4-0"},
	})

	ApplyFrequencyPolicy(u, potentials, nil)

	if _, ok := potentials[PotentialKey{A: b, B: a}]; ok {
		t.Fatalf("weaker reversed key should have been removed from potentials")
	}
	if _, ok := potentials[PotentialKey{A: a, B: b}]; !ok {
		t.Fatalf("stronger key should remain in potentials")
	}
	if len(u.Edges[canonEdgeKey(a, b)]) == 0 {
		t.Fatalf("expected reinstated conflict edge between a and b")
	}
}

func TestApplyThresholdPolicy_ReinstatesWeaklySupported(t *testing.T) {
	u := NewUnionGraph()
	potentials := NewPotentialMap()
	a, b := types.NodeID(1), types.NodeID(2)
	c, d := types.NodeID(3), types.NodeID(4)

	potentials.Merge([]PotentialConflict{
		{A: a, B: b, PairName: "p1:p2", OriginatingDAGName: "p2-0"},
		{A: c, B: d, PairName: "p1:p2", OriginatingDAGName: "p2-0"},
		{A: c, B: d, PairName: "p1:p3", OriginatingDAGName: "p3-0"},
		{A: c, B: d, PairName: "p1:p4", OriginatingDAGName: "p4-0"},
	})

	ApplyThresholdPolicy(u, potentials, 2)

	if _, ok := potentials[PotentialKey{A: a, B: b}]; ok {
		t.Fatalf("key with 1 supporting DAG should be reinstated and removed under threshold 2")
	}
	if _, ok := potentials[PotentialKey{A: c, B: d}]; !ok {
		t.Fatalf("key with 3 supporting DAGs should remain under threshold 2")
	}
}
