package conflict

import "github.com/yesoreyeram/thaiyyal/backend/pkg/logging"

// ApplyFrequencyPolicy implements the frequency policy (spec §4.5): for
// each ordered key (a,b) whose reverse (b,a) is also present, the
// direction with fewer supporting DAGs has its potential conflicts
// reinstated into u and removed from potentials. Equal support leaves
// both in place and only logs a diagnostic.
func ApplyFrequencyPolicy(u *UnionGraph, potentials PotentialMap, logger *logging.Logger) {
	for _, key := range sortedPotentialKeys(potentials) {
		if key.A >= key.B {
			continue // each unordered pair is resolved once, from its A<B side
		}
		val, ok := potentials[key]
		if !ok {
			continue
		}
		rev := PotentialKey{A: key.B, B: key.A}
		revVal, hasRev := potentials[rev]
		if !hasRev {
			continue
		}

		switch {
		case len(val.EdgeGraphNames) > len(revVal.EdgeGraphNames):
			reinstate(u, rev, revVal)
			delete(potentials, rev)
		case len(revVal.EdgeGraphNames) > len(val.EdgeGraphNames):
			reinstate(u, key, val)
			delete(potentials, key)
		default:
			if logger != nil {
				logger.WithField("a", key.A).WithField("b", key.B).
					Warn("frequency policy: equal support between reversed claims, leaving both as potential conflicts")
			}
		}
	}
}

// ApplyThresholdPolicy implements the threshold policy (spec §4.5): every
// remaining potential conflict with fewer than threshold supporting DAGs
// is reinstated into u and removed from potentials.
func ApplyThresholdPolicy(u *UnionGraph, potentials PotentialMap, threshold int) {
	for _, key := range sortedPotentialKeys(potentials) {
		val, ok := potentials[key]
		if !ok {
			continue
		}
		if len(val.EdgeGraphNames) < threshold {
			reinstate(u, key, val)
			delete(potentials, key)
		}
	}
}

func reinstate(u *UnionGraph, key PotentialKey, val *PotentialValue) {
	edgeKey := canonEdgeKey(key.A, key.B)
	for label := range val.Labels {
		u.Edges[edgeKey] = append(u.Edges[edgeKey], label)
	}
	u.Nodes[key.A] = struct{}{}
	u.Nodes[key.B] = struct{}{}
}
