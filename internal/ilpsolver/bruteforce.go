package ilpsolver

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/yesoreyeram/thaiyyal/backend/internal/conflict"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/graph"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/types"
)

// BruteForceSolver is the reference implementation of Solver: it enumerates
// every feasible DAG selection exhaustively and, for each, the maximum
// independent set of the union graph's nodes under that selection's active
// conflicts. It is exponential in both the number of processes and the
// number of conflict-graph nodes, and exists to exercise and validate the
// Solver contract in tests, not to stand in for a production ILP backend.
type BruteForceSolver struct{}

// NewBruteForceSolver returns a ready-to-use BruteForceSolver.
func NewBruteForceSolver() *BruteForceSolver { return &BruteForceSolver{} }

// Solve implements Solver. Selecting more than min(k, len(order)) DAGs never
// helps: the node-coverage constraint intersects nodes(g) across every
// selected g, so coverable nodes only shrink as more DAGs are added, while
// active conflicts only accumulate. The optimum is therefore always reached
// at exactly min(k, len(order)) selected processes, so only that size is
// searched.
func (s *BruteForceSolver) Solve(ctx context.Context, u *conflict.UnionGraph, order []string, processes map[string][]*graph.DAG, k int) ([]Solution, error) {
	procOrder := sortedProcessOrder(order)
	if k > len(procOrder) {
		return nil, types.ErrSolverInfeasible
	}
	if k <= 0 {
		return nil, types.ErrSolverInfeasible
	}

	type candidate struct {
		graphs map[string]*graph.DAG
	}
	var feasible []candidate
	for _, combo := range combinations(procOrder, k) {
		for _, assignment := range dagAssignments(combo, processes) {
			g := make(map[string]*graph.DAG, len(combo))
			for i, p := range combo {
				g[p] = assignment[i]
			}
			feasible = append(feasible, candidate{graphs: g})
		}
	}
	if len(feasible) == 0 {
		return nil, types.ErrSolverInfeasible
	}

	bestObjective := -1
	var pool []Solution
	seen := make(map[string]struct{})

	for _, c := range feasible {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		coverable := coverableNodes(u, c.graphs)
		adjacency := activeConflictAdjacency(u, c.graphs)
		for _, nodeSet := range allMaxIndependentSets(coverable, adjacency) {
			obj := len(nodeSet)
			switch {
			case obj > bestObjective:
				bestObjective = obj
				pool = nil
				seen = make(map[string]struct{})
				fallthrough
			case obj == bestObjective:
				key := solutionKey(nodeSet, c.graphs)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				pool = append(pool, Solution{SelectedNodes: nodeSet, SelectedGraphs: cloneGraphSelection(c.graphs)})
			}
		}
	}

	if len(pool) == 0 {
		return nil, types.ErrSolverInfeasible
	}
	return pool, nil
}

// coverableNodes returns the U nodes that belong to every graph in
// selection (spec §4.6's node-coverage constraint collapses, for fixed y,
// to: x_n may be 1 only if n is a member of every selected DAG).
func coverableNodes(u *conflict.UnionGraph, selection map[string]*graph.DAG) []types.NodeID {
	var out []types.NodeID
	for n := range u.Nodes {
		covered := true
		for _, g := range selection {
			if !g.HasNode(n) {
				covered = false
				break
			}
		}
		if covered {
			out = append(out, n)
		}
	}
	return out
}

// activeConflictAdjacency returns the adjacency induced by U's edges whose
// label names an ordered pair of DAGs both present in selection (conflict
// activation: e_eps >= y_g1 + y_g2 - 1, minimised to exactly that product
// since nothing else in the objective rewards a larger e).
func activeConflictAdjacency(u *conflict.UnionGraph, selection map[string]*graph.DAG) map[types.NodeID]map[types.NodeID]struct{} {
	selectedNames := make(map[string]struct{}, len(selection))
	for _, g := range selection {
		selectedNames[g.Name] = struct{}{}
	}

	adjacency := make(map[types.NodeID]map[types.NodeID]struct{})
	for key, labels := range u.Edges {
		for _, label := range labels {
			g1, g2, ok := splitPairLabel(label)
			if !ok {
				continue
			}
			if _, ok1 := selectedNames[g1]; !ok1 {
				continue
			}
			if _, ok2 := selectedNames[g2]; !ok2 {
				continue
			}
			if adjacency[key.A] == nil {
				adjacency[key.A] = make(map[types.NodeID]struct{})
			}
			if adjacency[key.B] == nil {
				adjacency[key.B] = make(map[types.NodeID]struct{})
			}
			adjacency[key.A][key.B] = struct{}{}
			adjacency[key.B][key.A] = struct{}{}
			break
		}
	}
	return adjacency
}

// splitPairLabel splits a "<g1>:<g2>" pair-name label into its two DAG
// names.
func splitPairLabel(label string) (g1, g2 string, ok bool) {
	for i := 0; i < len(label); i++ {
		if label[i] == ':' {
			return label[:i], label[i+1:], true
		}
	}
	return "", "", false
}

func cloneGraphSelection(selection map[string]*graph.DAG) map[string]*graph.DAG {
	out := make(map[string]*graph.DAG, len(selection))
	for p, g := range selection {
		out[p] = g
	}
	return out
}

func solutionKey(nodes map[types.NodeID]struct{}, selection map[string]*graph.DAG) string {
	nodeIDs := make([]types.NodeID, 0, len(nodes))
	for n := range nodes {
		nodeIDs = append(nodeIDs, n)
	}
	sort.Slice(nodeIDs, func(i, j int) bool { return nodeIDs[i] < nodeIDs[j] })

	names := make([]string, 0, len(selection))
	for _, g := range selection {
		names = append(names, g.Name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, n := range nodeIDs {
		fmt.Fprintf(&b, "n%d,", n)
	}
	for _, name := range names {
		fmt.Fprintf(&b, "g%s,", name)
	}
	return b.String()
}
