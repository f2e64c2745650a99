package ilpsolver

import (
	"context"
	"sort"

	"github.com/yesoreyeram/thaiyyal/backend/internal/conflict"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/graph"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/types"
)

// Solution is one member of the optimal solution pool returned by a Solver:
// a maximum-objective selection of nodes (SelectedNodes) together with the
// one DAG chosen per process that justifies it (SelectedGraphs, keyed by
// process id).
type Solution struct {
	SelectedNodes  map[types.NodeID]struct{}
	SelectedGraphs map[string]*graph.DAG
}

// Solver is the abstract contract any integer-program backend must satisfy
// (spec §4.6): given the union conflict graph, the per-process DAG lists,
// and a target patient count k, return every distinct node selection
// achieving the optimal objective, each paired with its selected DAGs.
//
// Implementations are free to use any search strategy; this package ships
// only BruteForceSolver, a reference implementation used for tests and
// small inputs. Production deployments are expected to plug in a real ILP
// backend behind this same interface.
type Solver interface {
	Solve(ctx context.Context, u *conflict.UnionGraph, order []string, processes map[string][]*graph.DAG, k int) ([]Solution, error)
}

// sortedProcessOrder returns order's elements sorted, used by
// implementations that need deterministic iteration independent of the
// caller's ordering.
func sortedProcessOrder(order []string) []string {
	out := append([]string(nil), order...)
	sort.Strings(out)
	return out
}
