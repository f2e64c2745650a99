package ioformat

import (
	"fmt"
	"io"
	"strings"
)

// WriteConvertedFormat writes the two-line-per-trajectory "converted"
// format (spec §6): "<edges> (<support>)" followed by the supporting-graph
// token sequence with the literal character 'L' stripped, carried over
// unchanged from the original converter's sample-name convention.
func WriteConvertedFormat(w io.Writer, rows []TrajectoryRow) error {
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%s (%d)\n", joinSpace(row.Edges), row.Support); err != nil {
			return err
		}
		supporting := SortedJoin(row.SupportingGraphs, " ")
		stripped := strings.ReplaceAll(supporting, "L", "")
		if _, err := fmt.Fprintln(w, stripped); err != nil {
			return err
		}
	}
	return nil
}
