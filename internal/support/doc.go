// Package support implements the Support Computer (spec §4.9): for each
// deduplicated trajectory, it finds every input DAG whose transitive
// closure, restricted to the trajectory's own node set, exactly matches
// the trajectory's closure, and renders the trajectory's own edges
// (precedence plus any attached cluster pairs) as a sorted canonical edge
// list for the output writers.
package support
