package ilpsolver

import (
	"sort"

	"github.com/yesoreyeram/thaiyyal/backend/pkg/types"
)

// allMaxIndependentSets returns every independent set of candidates under
// the given active-conflict adjacency that attains the maximum possible
// size (spec §4.6's independent-set constraint: x_a + x_b <= 2 - e, so an
// active edge forbids choosing both endpoints, and the objective maximises
// the count chosen). It is implemented by exhaustive search, which is the
// reason BruteForceSolver is documented as a reference solver for small
// inputs only: a real ILP backend would not enumerate subsets.
func allMaxIndependentSets(candidates []types.NodeID, adjacency map[types.NodeID]map[types.NodeID]struct{}) []map[types.NodeID]struct{} {
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

	bestSize := -1
	var best []map[types.NodeID]struct{}
	var chosen []types.NodeID

	record := func() {
		switch {
		case len(chosen) > bestSize:
			bestSize = len(chosen)
			best = best[:0]
			fallthrough
		case len(chosen) == bestSize:
			set := make(map[types.NodeID]struct{}, len(chosen))
			for _, n := range chosen {
				set[n] = struct{}{}
			}
			best = append(best, set)
		}
	}

	var search func(i int)
	search = func(i int) {
		if i == len(candidates) {
			record()
			return
		}

		// Branch: include candidates[i] if it conflicts with nothing already
		// chosen.
		n := candidates[i]
		conflictsWithChosen := false
		for _, c := range chosen {
			if _, ok := adjacency[n][c]; ok {
				conflictsWithChosen = true
				break
			}
		}
		if !conflictsWithChosen {
			chosen = append(chosen, n)
			search(i + 1)
			chosen = chosen[:len(chosen)-1]
		}

		// Branch: exclude candidates[i].
		search(i + 1)
	}
	search(0)
	return best
}
