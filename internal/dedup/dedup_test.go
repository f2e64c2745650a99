package dedup

import (
	"testing"

	"github.com/yesoreyeram/thaiyyal/backend/pkg/graph"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/types"
)

func TestDedup_MergesIdenticalTrajectories(t *testing.T) {
	in := types.NewInterner()
	a, b := in.Intern("A"), in.Intern("B")

	t1 := graph.New("p1-0:p2-0", "", 0)
	t1.AddEdge(a, b)
	t2 := graph.New("p1-0:p3-0", "", 0)
	t2.AddEdge(a, b)
	t3 := graph.New("p4-0", "", 0)
	t3.AddEdge(a, b)
	t3.AddNode(in.Intern("C"))

	result := Dedup([]*graph.DAG{t1, t2, t3})
	if result.DuplicateCount != 1 {
		t.Fatalf("DuplicateCount = %d, want 1", result.DuplicateCount)
	}
	if len(result.Trajectories) != 2 {
		t.Fatalf("len(Trajectories) = %d, want 2", len(result.Trajectories))
	}
	if result.Trajectories[0].Name != "p1-0:p2-0:p3-0" {
		t.Fatalf("merged Name = %q, want %q", result.Trajectories[0].Name, "p1-0:p2-0:p3-0")
	}
}

func TestDedup_DistinctNodeSetsNeverMerge(t *testing.T) {
	in := types.NewInterner()
	a, b, c := in.Intern("A"), in.Intern("B"), in.Intern("C")

	t1 := graph.New("p1-0", "", 0)
	t1.AddEdge(a, b)
	t2 := graph.New("p2-0", "", 0)
	t2.AddEdge(a, c)

	result := Dedup([]*graph.DAG{t1, t2})
	if result.DuplicateCount != 0 {
		t.Fatalf("DuplicateCount = %d, want 0", result.DuplicateCount)
	}
	if len(result.Trajectories) != 2 {
		t.Fatalf("len(Trajectories) = %d, want 2", len(result.Trajectories))
	}
}
