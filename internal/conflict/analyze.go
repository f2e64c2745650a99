package conflict

import (
	"github.com/yesoreyeram/thaiyyal/backend/pkg/graph"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/types"
)

// ConflictEdge is one undirected edge of a pair graph: two nodes of the
// pair whose combined evidence triggered a conflict (spec §4.3 step 4).
type ConflictEdge struct {
	A, B types.NodeID
}

// PairGraph is the result of analysing one (G1,G2) pair: its name (used as
// the edge label when merged into the union graph) and the conflict edges
// it contributes.
type PairGraph struct {
	Name  string
	Nodes map[types.NodeID]struct{}
	Edges []ConflictEdge
}

// PotentialConflict is a directed-edge-plus-cluster-claim combination that
// did not trigger a conflict edge (spec §4.3 step 5). A and B preserve the
// direction of the directed claim; OriginatingDAGName is the DAG (within
// the pair) that asserted A->B.
type PotentialConflict struct {
	A, B               types.NodeID
	PairName           string
	OriginatingDAGName string
}

// AnalyzePair implements the Pairwise Conflict Analyser (spec §4.3). It is
// pure and depends only on its two arguments, so it is safe to call
// concurrently across pairs.
func AnalyzePair(g1, g2 *graph.DAG) (*PairGraph, []PotentialConflict) {
	common := intersectNodes(g1, g2)
	nameA, nameB := g1.Name, g2.Name
	if nameB < nameA {
		nameA, nameB = nameB, nameA
	}
	pairName := nameA + ":" + nameB

	pg := &PairGraph{Name: pairName, Nodes: make(map[types.NodeID]struct{})}
	for _, n := range common {
		pg.Nodes[n] = struct{}{}
	}
	var potentials []PotentialConflict

	for i := 0; i < len(common); i++ {
		for j := i + 1; j < len(common); j++ {
			a, b := common[i], common[j]

			aToB := g1.HasEdge(a, b) || g2.HasEdge(a, b)
			bToA := g1.HasEdge(b, a) || g2.HasEdge(b, a)

			incomp1, cluster1 := classifyUnordered(g1, a, b)
			incomp2, cluster2 := classifyUnordered(g2, a, b)
			incomparableAny := incomp1 || incomp2
			clusterAny := cluster1 || cluster2

			var bits int
			if aToB {
				bits |= 1 << 0
			}
			if bToA {
				bits |= 1 << 1
			}
			if incomparableAny {
				bits |= 1 << 2
			}
			if clusterAny {
				bits |= 1 << 3
			}

			if popcount(bits&0b0111) > 1 || popcount(bits&0b1100) > 1 {
				pg.Edges = append(pg.Edges, ConflictEdge{A: a, B: b})
				continue
			}

			if aToB && clusterAny {
				for _, name := range originatingNames(g1, g2, a, b) {
					potentials = append(potentials, PotentialConflict{A: a, B: b, PairName: pairName, OriginatingDAGName: name})
				}
			}
			if bToA && clusterAny {
				for _, name := range originatingNames(g1, g2, b, a) {
					potentials = append(potentials, PotentialConflict{A: b, B: a, PairName: pairName, OriginatingDAGName: name})
				}
			}
		}
	}

	return pg, potentials
}

// classifyUnordered reports whether (a,b) is incomparable or cluster-mates
// in g, per spec §4.3 step 2. Both are false when g has a direct edge
// between a and b in either direction, or doesn't contain both nodes.
func classifyUnordered(g *graph.DAG, a, b types.NodeID) (incomparable, clusterMates bool) {
	if !g.HasNode(a) || !g.HasNode(b) {
		return false, false
	}
	if g.HasEdge(a, b) || g.HasEdge(b, a) {
		return false, false
	}
	if g.Clusters.SameCluster(a, b) {
		return false, true
	}
	return true, false
}

func originatingNames(g1, g2 *graph.DAG, u, v types.NodeID) []string {
	var names []string
	if g1.HasEdge(u, v) {
		names = append(names, g1.Name)
	}
	if g2.HasEdge(u, v) {
		names = append(names, g2.Name)
	}
	return names
}

func intersectNodes(g1, g2 *graph.DAG) []types.NodeID {
	set := make(map[types.NodeID]struct{})
	for _, n := range g1.Nodes() {
		set[n] = struct{}{}
	}
	var common []types.NodeID
	for _, n := range g2.Nodes() {
		if _, ok := set[n]; ok {
			common = append(common, n)
		}
	}
	return common
}

func popcount(x int) int {
	n := 0
	for x != 0 {
		n += x & 1
		x >>= 1
	}
	return n
}
