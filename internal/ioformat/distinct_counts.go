package ioformat

import (
	"encoding/csv"
	"fmt"
	"io"
)

// DistinctDAGCount is one process's distinct-tree count, supplementing the
// trajectory outputs with the ingestor's per-process deduplication result
// (original_source/read_input_dags.py's number_of_distinct_dags_per_sample.csv).
type DistinctDAGCount struct {
	ProcessID string
	Count     int
}

// WriteDistinctDAGCounts writes number_of_distinct_dags_per_sample.csv,
// matching the original tool's pandas.DataFrame.to_csv layout: a leading
// unnamed index column, then "evolution" and "distinct trees".
func WriteDistinctDAGCounts(w io.Writer, counts []DistinctDAGCount) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"", "evolution", "distinct trees"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, c := range counts {
		record := []string{fmt.Sprintf("%d", i), c.ProcessID, fmt.Sprintf("%d", c.Count)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
