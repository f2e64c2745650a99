package ioformat

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortedStrings returns a sorted copy of items using a locale-stable
// collator rather than raw byte comparison, so every "sorted" output
// required by the edge-atom and CSV formats (spec §3/§6 — trajectory
// names, supporting-graph lists, cluster-mate joins) is stable
// independent of the platform's default string ordering.
//
// A fresh Collator is built per call: collate.Collator is not safe for
// concurrent use, and this runs from parallel pipeline stages.
func SortedStrings(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	collate.New(language.Und).SortStrings(out)
	return out
}

// SortedJoin sorts items with SortedStrings and joins them with sep.
func SortedJoin(items []string, sep string) string {
	sorted := SortedStrings(items)
	joined := ""
	for i, s := range sorted {
		if i > 0 {
			joined += sep
		}
		joined += s
	}
	return joined
}
