// Package graph provides DAG operations for the trajectory finder: transitive
// closure, transitive reduction, cycle detection via topological sort, and
// the per-DAG cluster-membership relation. Node labels are interned
// (pkg/types.NodeID) so every set/map here is keyed by integers rather than
// strings.
package graph

import (
	"sort"

	"github.com/yesoreyeram/thaiyyal/backend/pkg/types"
)

// DAG is a transitively-closed directed acyclic graph over interned node
// ids, plus the cluster-membership relation for the same node space (spec
// §3, "Input DAG (G)"). Edges are stored as forward adjacency only;
// (u,v) present means u precedes v.
type DAG struct {
	Name      string
	ProcessID string
	TreeIndex int

	nodes    map[types.NodeID]struct{}
	adjOut   map[types.NodeID]map[types.NodeID]struct{}
	Clusters *ClusterSet
}

// New creates an empty DAG.
func New(name, processID string, treeIndex int) *DAG {
	return &DAG{
		Name:      name,
		ProcessID: processID,
		TreeIndex: treeIndex,
		nodes:     make(map[types.NodeID]struct{}),
		adjOut:    make(map[types.NodeID]map[types.NodeID]struct{}),
		Clusters:  NewClusterSet(),
	}
}

// AddNode registers n as a member of the DAG, with no edges.
func (d *DAG) AddNode(n types.NodeID) {
	if _, ok := d.nodes[n]; ok {
		return
	}
	d.nodes[n] = struct{}{}
	d.adjOut[n] = make(map[types.NodeID]struct{})
}

// AddEdge records u precedes v. Both endpoints are added as nodes if
// absent. Self-loops are rejected by the caller (ingestion never produces
// them); AddEdge itself is a no-op for u == v to keep closure safe.
func (d *DAG) AddEdge(u, v types.NodeID) {
	if u == v {
		return
	}
	d.AddNode(u)
	d.AddNode(v)
	d.adjOut[u][v] = struct{}{}
}

// HasEdge reports whether u precedes v directly (in the current, possibly
// not-yet-closed, edge set).
func (d *DAG) HasEdge(u, v types.NodeID) bool {
	out, ok := d.adjOut[u]
	if !ok {
		return false
	}
	_, ok = out[v]
	return ok
}

// HasNode reports whether n is a member of the DAG.
func (d *DAG) HasNode(n types.NodeID) bool {
	_, ok := d.nodes[n]
	return ok
}

// Nodes returns the DAG's nodes in ascending NodeID order, for
// deterministic iteration.
func (d *DAG) Nodes() []types.NodeID {
	out := make([]types.NodeID, 0, len(d.nodes))
	for n := range d.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NodeCount returns the number of nodes in the DAG.
func (d *DAG) NodeCount() int { return len(d.nodes) }

// Edges returns every (u,v) pair currently recorded, in deterministic
// order (sorted by u then v).
func (d *DAG) Edges() []types.NodeID2 {
	var out []types.NodeID2
	for u, outs := range d.adjOut {
		for v := range outs {
			out = append(out, types.NodeID2{A: u, B: v})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// OutNeighbors returns v's direct successors in ascending order.
func (d *DAG) OutNeighbors(v types.NodeID) []types.NodeID {
	outs := d.adjOut[v]
	res := make([]types.NodeID, 0, len(outs))
	for n := range outs {
		res = append(res, n)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// TopologicalSort orders the DAG's nodes so that every edge points from an
// earlier to a later position. Implemented with Kahn's algorithm: compute
// in-degree for every node, repeatedly remove zero-in-degree nodes in
// ascending NodeID order so ties resolve deterministically, same shape as
// the teacher's string-keyed TopologicalSort but over NodeID and the DAG's
// own adjacency.
//
// Returns ErrCycleDetected if not every node could be ordered.
func (d *DAG) TopologicalSort() ([]types.NodeID, error) {
	n := len(d.nodes)
	if n == 0 {
		return nil, nil
	}

	inDegree := make(map[types.NodeID]int, n)
	for node := range d.nodes {
		inDegree[node] = 0
	}
	for _, outs := range d.adjOut {
		for v := range outs {
			inDegree[v]++
		}
	}

	queue := make([]types.NodeID, 0, n)
	for node, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, node)
		}
	}
	sort.Slice(queue, func(i, j int) bool { return queue[i] < queue[j] })

	order := make([]types.NodeID, 0, n)
	head := 0
	for head < len(queue) {
		cur := queue[head]
		head++
		order = append(order, cur)

		next := d.OutNeighbors(cur)
		for _, v := range next {
			inDegree[v]--
			if inDegree[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	if len(order) != n {
		return nil, ErrCycleDetected
	}
	return order, nil
}

// TransitiveClose replaces the DAG's edge set with its transitive closure:
// (u,v) is an edge iff u precedes v through any chain of existing edges.
// Returns ErrCycleDetected (mapped by callers to spec's NonDAG) if the
// input is not acyclic.
func (d *DAG) TransitiveClose() error {
	order, err := d.TopologicalSort()
	if err != nil {
		return err
	}

	// Process nodes in reverse topological order so that by the time we
	// compute a node's closure, every successor's closure is already
	// final.
	reach := make(map[types.NodeID]map[types.NodeID]struct{}, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		set := make(map[types.NodeID]struct{})
		for v := range d.adjOut[u] {
			set[v] = struct{}{}
			for w := range reach[v] {
				set[w] = struct{}{}
			}
		}
		reach[u] = set
	}

	for u, set := range reach {
		d.adjOut[u] = set
	}
	return nil
}

// TransitiveReduce removes redundant edges, leaving the minimal edge set
// whose transitive closure equals the DAG's current closure (the Hasse
// diagram). The DAG is assumed already transitively closed.
func (d *DAG) TransitiveReduce() {
	for u, outs := range d.adjOut {
		reduced := make(map[types.NodeID]struct{}, len(outs))
		for v := range outs {
			redundant := false
			for w := range outs {
				if w == v {
					continue
				}
				if _, ok := d.adjOut[w][v]; ok {
					redundant = true
					break
				}
			}
			if !redundant {
				reduced[v] = struct{}{}
			}
		}
		d.adjOut[u] = reduced
	}
}

// IsAcyclic reports whether the DAG currently has a valid topological
// order.
func (d *DAG) IsAcyclic() bool {
	_, err := d.TopologicalSort()
	return err == nil
}

// Clone returns a deep copy of the DAG, including its cluster set.
func (d *DAG) Clone() *DAG {
	out := New(d.Name, d.ProcessID, d.TreeIndex)
	for n := range d.nodes {
		out.AddNode(n)
	}
	for u, outs := range d.adjOut {
		for v := range outs {
			out.adjOut[u][v] = struct{}{}
		}
	}
	for n, root := range d.Clusters.parent {
		out.Clusters.parent[n] = root
	}
	return out
}
