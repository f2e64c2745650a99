package ioformat

import (
	"encoding/csv"
	"fmt"
	"io"
)

// TrajectoryRow is one emitted trajectory, already 1-indexed and with its
// edge set rendered to the edge-atom grammar (spec §6, §4.9).
type TrajectoryRow struct {
	FileIndex        int
	Support          int
	SupportingGraphs []string
	Edges            []string
}

// WriteTrajectoriesCSV writes the trajectories CSV with header
// "File Index,Support,Supporting Graphs,Edges" (spec §6). Supporting
// Graphs and Edges are space-separated within their column.
func WriteTrajectoriesCSV(w io.Writer, rows []TrajectoryRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"File Index", "Support", "Supporting Graphs", "Edges"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			fmt.Sprintf("%d", row.FileIndex),
			fmt.Sprintf("%d", row.Support),
			SortedJoin(row.SupportingGraphs, " "),
			joinSpace(row.Edges),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", row.FileIndex, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func joinSpace(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += " "
		}
		out += s
	}
	return out
}
