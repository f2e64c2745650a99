package graph

import "github.com/yesoreyeram/thaiyyal/backend/pkg/types"

// ClusterSet tracks which nodes of a single DAG share a clone. Membership
// is reflexive-exclusive and transitively closed: merging A and B also
// merges everyone already in A's or B's clone (spec §3, "cluster_nodes").
//
// Implemented as a union-find over node ids rather than the source's
// mutable per-node attribute sets, so that merging two clusters never
// requires walking and rewriting every member's attribute dict in place
// (Design Notes §9, "Cyclic graph references").
type ClusterSet struct {
	parent map[types.NodeID]types.NodeID
}

// NewClusterSet returns an empty ClusterSet.
func NewClusterSet() *ClusterSet {
	return &ClusterSet{parent: make(map[types.NodeID]types.NodeID)}
}

func (c *ClusterSet) find(n types.NodeID) types.NodeID {
	root, ok := c.parent[n]
	if !ok {
		c.parent[n] = n
		return n
	}
	if root == n {
		return n
	}
	root = c.find(root)
	c.parent[n] = root
	return root
}

// Merge declares a and b cluster-mates, transitively merging their
// existing clones.
func (c *ClusterSet) Merge(a, b types.NodeID) {
	ra, rb := c.find(a), c.find(b)
	if ra != rb {
		c.parent[ra] = rb
	}
}

// SameCluster reports whether a and b are in the same clone. A node is
// never considered its own cluster-mate.
func (c *ClusterSet) SameCluster(a, b types.NodeID) bool {
	if a == b {
		return false
	}
	_, okA := c.parent[a]
	_, okB := c.parent[b]
	if !okA || !okB {
		return false
	}
	// Walk to the roots without path compression, so concurrent readers of
	// the same DAG never write to the shared parent map.
	ra, rb := a, b
	for c.parent[ra] != ra {
		ra = c.parent[ra]
	}
	for c.parent[rb] != rb {
		rb = c.parent[rb]
	}
	return ra == rb
}

// Members returns the other nodes in n's clone, excluding n itself.
// candidates restricts the search to a known node universe (typically the
// DAG's own node set); Members never allocates a result for nodes outside
// it.
func (c *ClusterSet) Members(n types.NodeID, candidates []types.NodeID) []types.NodeID {
	if _, ok := c.parent[n]; !ok {
		return nil
	}
	root := c.find(n)
	var members []types.NodeID
	for _, m := range candidates {
		if m == n {
			continue
		}
		if _, ok := c.parent[m]; !ok {
			continue
		}
		if c.find(m) == root {
			members = append(members, m)
		}
	}
	return members
}

// HasAny reports whether n belongs to any recorded cluster.
func (c *ClusterSet) HasAny(n types.NodeID) bool {
	_, ok := c.parent[n]
	return ok
}
