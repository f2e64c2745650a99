package ilpsolver

import "github.com/yesoreyeram/thaiyyal/backend/pkg/graph"

// combinations returns every subset of items of size n, in the order
// produced by standard lexicographic index generation.
func combinations(items []string, n int) [][]string {
	if n < 0 || n > len(items) {
		return nil
	}
	if n == 0 {
		return [][]string{{}}
	}

	var out [][]string
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	for {
		combo := make([]string, n)
		for i, v := range idx {
			combo[i] = items[v]
		}
		out = append(out, combo)

		i := n - 1
		for i >= 0 && idx[i] == i+len(items)-n {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < n; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}

// dagAssignments enumerates every way to pick exactly one DAG per process in
// combo (the "one DAG per process" constraint, spec §4.6), as the cartesian
// product of processes[p] over p in combo.
func dagAssignments(combo []string, processes map[string][]*graph.DAG) [][]*graph.DAG {
	if len(combo) == 0 {
		return [][]*graph.DAG{{}}
	}

	results := [][]*graph.DAG{{}}
	for _, p := range combo {
		dags := processes[p]
		var next [][]*graph.DAG
		for _, partial := range results {
			for _, d := range dags {
				extended := append(append([]*graph.DAG{}, partial...), d)
				next = append(next, extended)
			}
		}
		results = next
	}
	return results
}
