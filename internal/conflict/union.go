package conflict

import (
	"sort"

	"github.com/yesoreyeram/thaiyyal/backend/pkg/types"
)

// EdgeKey is an undirected conflict-graph edge, always stored with the
// lesser NodeID first so (a,b) and (b,a) collide onto one map entry
// (spec §4.4).
type EdgeKey struct {
	A, B types.NodeID
}

func canonEdgeKey(a, b types.NodeID) EdgeKey {
	if a <= b {
		return EdgeKey{A: a, B: b}
	}
	return EdgeKey{A: b, B: a}
}

// UnionGraph is the undirected multigraph U of spec §4.4: every pair
// graph's nodes and edges merged together, with each edge instance
// labelled by the pair that produced it.
type UnionGraph struct {
	Nodes map[types.NodeID]struct{}
	Edges map[EdgeKey][]string
}

// NewUnionGraph returns an empty union graph.
func NewUnionGraph() *UnionGraph {
	return &UnionGraph{
		Nodes: make(map[types.NodeID]struct{}),
		Edges: make(map[EdgeKey][]string),
	}
}

// AddPairGraph merges one pair graph's nodes and edges into u. Edge
// insertion order is not significant: the union graph is an
// order-independent function of the set of pair graphs merged into it
// (spec §5, "the union-graph assembly is order-independent").
func (u *UnionGraph) AddPairGraph(pg *PairGraph) {
	for n := range pg.Nodes {
		u.Nodes[n] = struct{}{}
	}
	for _, e := range pg.Edges {
		key := canonEdgeKey(e.A, e.B)
		u.Edges[key] = append(u.Edges[key], pg.Name)
	}
}

// SortedEdgeKeys returns u's edge keys in a deterministic order, for
// callers that need to iterate the union graph reproducibly (logging,
// tests, the ILP interface).
func (u *UnionGraph) SortedEdgeKeys() []EdgeKey {
	keys := make([]EdgeKey, 0, len(u.Edges))
	for k := range u.Edges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].A != keys[j].A {
			return keys[i].A < keys[j].A
		}
		return keys[i].B < keys[j].B
	})
	return keys
}

// PotentialKey is an ordered key into the aggregated potential-conflicts
// map: direction matters here, unlike EdgeKey (spec §4.4, §4.5).
type PotentialKey struct {
	A, B types.NodeID
}

// PotentialValue accumulates, across every pair that registered the same
// ordered potential conflict, the pair names that saw it and the DAG
// names that asserted the directed claim.
type PotentialValue struct {
	Labels         map[string]struct{}
	EdgeGraphNames map[string]struct{}
}

// PotentialMap is the aggregated-potential-conflicts map of spec §4.4.
type PotentialMap map[PotentialKey]*PotentialValue

// NewPotentialMap returns an empty aggregated potential-conflicts map.
func NewPotentialMap() PotentialMap {
	return make(PotentialMap)
}

// Merge folds a batch of potential conflicts (as produced by one
// AnalyzePair call) into m, unioning labels and edge_graph_names by
// ordered key.
func (m PotentialMap) Merge(pcs []PotentialConflict) {
	for _, pc := range pcs {
		key := PotentialKey{A: pc.A, B: pc.B}
		v, ok := m[key]
		if !ok {
			v = &PotentialValue{Labels: make(map[string]struct{}), EdgeGraphNames: make(map[string]struct{})}
			m[key] = v
		}
		v.Labels[pc.PairName] = struct{}{}
		v.EdgeGraphNames[pc.OriginatingDAGName] = struct{}{}
	}
}

func sortedPotentialKeys(m PotentialMap) []PotentialKey {
	keys := make([]PotentialKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].A != keys[j].A {
			return keys[i].A < keys[j].A
		}
		return keys[i].B < keys[j].B
	})
	return keys
}
