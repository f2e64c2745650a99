package dedup

import (
	"strings"

	"github.com/yesoreyeram/thaiyyal/backend/internal/ioformat"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/graph"
)

// Result is the Deduplicator's output (spec §4.8): the surviving
// trajectories, in their original relative order, and how many were
// merged away as duplicates.
type Result struct {
	Trajectories   []*graph.DAG
	DuplicateCount int
}

// Dedup implements the Deduplicator (spec §4.8). Two trajectories are
// duplicates if their node sets and edge sets are both equal; node labels
// are global identifiers, so set equality is sufficient without an
// isomorphism check. Mutates the Name of surviving trajectories in place
// to the sorted, colon-joined union of every merged trajectory's own
// (possibly already colon-joined) name.
func Dedup(trajectories []*graph.DAG) Result {
	removed := make([]bool, len(trajectories))
	count := 0

	for i := 0; i < len(trajectories); i++ {
		if removed[i] {
			continue
		}
		for j := i + 1; j < len(trajectories); j++ {
			if removed[j] {
				continue
			}
			if !sameShape(trajectories[i], trajectories[j]) {
				continue
			}
			trajectories[i].Name = mergeNames(trajectories[i].Name, trajectories[j].Name)
			removed[j] = true
			count++
		}
	}

	out := make([]*graph.DAG, 0, len(trajectories)-count)
	for i, t := range trajectories {
		if !removed[i] {
			out = append(out, t)
		}
	}
	return Result{Trajectories: out, DuplicateCount: count}
}

func sameShape(a, b *graph.DAG) bool {
	an, bn := a.Nodes(), b.Nodes()
	if len(an) != len(bn) {
		return false
	}
	for i := range an {
		if an[i] != bn[i] {
			return false
		}
	}

	ae, be := a.Edges(), b.Edges()
	if len(ae) != len(be) {
		return false
	}
	for i := range ae {
		if ae[i] != be[i] {
			return false
		}
	}
	return true
}

func mergeNames(a, b string) string {
	seen := make(map[string]bool)
	var names []string
	for _, n := range append(strings.Split(a, ":"), strings.Split(b, ":")...) {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	return ioformat.SortedJoin(names, ":")
}
