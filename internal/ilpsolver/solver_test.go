package ilpsolver

import (
	"context"
	"testing"

	"github.com/yesoreyeram/thaiyyal/backend/internal/conflict"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/graph"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/types"
)

func buildSimpleDAG(name string, nodes ...types.NodeID) *graph.DAG {
	d := graph.New(name, name, 0)
	for _, n := range nodes {
		d.AddNode(n)
	}
	return d
}

func TestBruteForceSolver_TwoProcessesConflictYieldsTwoSolutions(t *testing.T) {
	in := types.NewInterner()
	a, b := in.Intern("A"), in.Intern("B")

	g1 := buildSimpleDAG("p1-0", a, b)
	g2 := buildSimpleDAG("p2-0", a, b)

	u := conflict.NewUnionGraph()
	u.AddPairGraph(&conflict.PairGraph{
		Name:  "p1-0:p2-0",
		Nodes: map[types.NodeID]struct{}{a: {}, b: {}},
		Edges: []conflict.ConflictEdge{{A: a, B: b}},
	})

	processes := map[string][]*graph.DAG{"p1": {g1}, "p2": {g2}}
	order := []string{"p1", "p2"}

	solver := NewBruteForceSolver()
	pool, err := solver.Solve(context.Background(), u, order, processes, 2)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if len(pool) != 2 {
		t.Fatalf("len(pool) = %d, want 2 (choose A, or choose B)", len(pool))
	}
	for _, sol := range pool {
		if len(sol.SelectedNodes) != 1 {
			t.Fatalf("len(SelectedNodes) = %d, want 1 under the active conflict", len(sol.SelectedNodes))
		}
		if len(sol.SelectedGraphs) != 2 {
			t.Fatalf("len(SelectedGraphs) = %d, want 2", len(sol.SelectedGraphs))
		}
	}
}

func TestBruteForceSolver_SingleProcessHasNoActiveConflict(t *testing.T) {
	in := types.NewInterner()
	a, b := in.Intern("A"), in.Intern("B")

	g1 := buildSimpleDAG("p1-0", a, b)
	g2 := buildSimpleDAG("p2-0", a, b)

	u := conflict.NewUnionGraph()
	u.AddPairGraph(&conflict.PairGraph{
		Name:  "p1-0:p2-0",
		Nodes: map[types.NodeID]struct{}{a: {}, b: {}},
		Edges: []conflict.ConflictEdge{{A: a, B: b}},
	})

	processes := map[string][]*graph.DAG{"p1": {g1}, "p2": {g2}}
	order := []string{"p1", "p2"}

	solver := NewBruteForceSolver()
	pool, err := solver.Solve(context.Background(), u, order, processes, 1)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	for _, sol := range pool {
		if len(sol.SelectedNodes) != 2 {
			t.Fatalf("len(SelectedNodes) = %d, want 2 when only one DAG is selected", len(sol.SelectedNodes))
		}
		if len(sol.SelectedGraphs) != 1 {
			t.Fatalf("len(SelectedGraphs) = %d, want 1", len(sol.SelectedGraphs))
		}
	}
}

func TestBruteForceSolver_KGreaterThanProcessCountIsInfeasible(t *testing.T) {
	processes := map[string][]*graph.DAG{"p1": {buildSimpleDAG("p1-0")}}
	u := conflict.NewUnionGraph()

	solver := NewBruteForceSolver()
	_, err := solver.Solve(context.Background(), u, []string{"p1"}, processes, 2)
	if err != types.ErrSolverInfeasible {
		t.Fatalf("err = %v, want ErrSolverInfeasible", err)
	}
}

func TestBruteForceSolver_NodeCoverageExcludesUnsharedNodes(t *testing.T) {
	in := types.NewInterner()
	a, b, c := in.Intern("A"), in.Intern("B"), in.Intern("C")

	g1 := buildSimpleDAG("p1-0", a, b)
	g2 := buildSimpleDAG("p2-0", a, c)

	u := conflict.NewUnionGraph()
	u.Nodes[a] = struct{}{}
	u.Nodes[b] = struct{}{}
	u.Nodes[c] = struct{}{}

	processes := map[string][]*graph.DAG{"p1": {g1}, "p2": {g2}}
	order := []string{"p1", "p2"}

	solver := NewBruteForceSolver()
	pool, err := solver.Solve(context.Background(), u, order, processes, 2)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if len(pool) != 1 {
		t.Fatalf("len(pool) = %d, want 1", len(pool))
	}
	if _, ok := pool[0].SelectedNodes[a]; !ok || len(pool[0].SelectedNodes) != 1 {
		t.Fatalf("SelectedNodes = %+v, want only A (the one node common to both selected DAGs)", pool[0].SelectedNodes)
	}
}
