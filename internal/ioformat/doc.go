// Package ioformat implements the edge-atom grammar shared by input
// parsing and output rendering, plus every output writer named in spec
// §6: the trajectories CSV, the converted format, per-trajectory GEXF,
// and the distinct-DAG-count summary.
//
// # Edge-atom grammar
//
// ParseAtom classifies one whitespace-delimited token as a directed
// precedence edge (A->-B), a cluster-membership edge (A-?-B), an explicit
// incomparability declaration (A-/-B), or a bare node token. The Format*
// functions render the same three operators back to their string form, so
// a round trip through ParseAtom and FormatPrecedes/FormatCluster is
// lossless for any single atom.
//
// # Sorting
//
// SortedStrings and SortedJoin use golang.org/x/text/collate rather than
// raw byte comparison, matching every "sorted" requirement in spec §3/§6
// (trajectory names, supporting-graph lists).
package ioformat
