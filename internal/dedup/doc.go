// Package dedup implements the Deduplicator (spec §4.8): it collapses
// trajectories that the ILP's solution pool produced from different DAG
// selections but that reduce to the same node set and edge set, merging
// their names rather than discarding provenance.
package dedup
