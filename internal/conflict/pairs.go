package conflict

import (
	"github.com/yesoreyeram/thaiyyal/backend/pkg/graph"
)

// Pair is one ordered cross-product entry produced by EnumeratePairs.
type Pair struct {
	ProcessA, ProcessB string
	DAGA, DAGB         *graph.DAG
}

// EnumeratePairs produces the sequence of ordered pairs (g1,g2) over all
// (p1,p2) with p1<p2 in order, cross-producted over D[p1] x D[p2] (spec
// §4.2). order must list each key of processes exactly once; passing a
// sorted order makes the result a deterministic function of the input.
func EnumeratePairs(order []string, processes map[string][]*graph.DAG) []Pair {
	var pairs []Pair
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			pa, pb := order[i], order[j]
			for _, a := range processes[pa] {
				for _, b := range processes[pb] {
					pairs = append(pairs, Pair{ProcessA: pa, ProcessB: pb, DAGA: a, DAGB: b})
				}
			}
		}
	}
	return pairs
}
