package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yesoreyeram/thaiyyal/backend/pkg/types"
)

func TestFileNameMatch(t *testing.T) {
	tests := []struct {
		name        string
		fileName    string
		processID   string
		treeName    string
		wantErr     bool
		wantErrWrap error
	}{
		{
			name:      "dash tree index",
			fileName:  "patient1-0_trees.txt",
			processID: "patient1",
			treeName:  "patient1-0",
		},
		{
			name:      "dash tree index second tree",
			fileName:  "patient1-2_trees.txt",
			processID: "patient1",
			treeName:  "patient1-2",
		},
		{
			name:      "no dash, trailing digit stripped",
			fileName:  "patient1_trees.txt",
			processID: "patient",
			treeName:  "patient-0",
		},
		{
			name:      "gexf extension accepted",
			fileName:  "patient7_tree.gexf",
			processID: "patient",
			treeName:  "patient-0",
		},
		{
			name:        "unsupported extension",
			fileName:    "patient1-0_trees.csv",
			wantErr:     true,
			wantErrWrap: types.ErrParse,
		},
		{
			name:        "empty stem",
			fileName:    ".txt",
			wantErr:     true,
			wantErrWrap: types.ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processID, treeName, err := FileNameMatch(tt.fileName)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("FileNameMatch(%q) error = nil, want error", tt.fileName)
				}
				if tt.wantErrWrap != nil && !errors.Is(err, tt.wantErrWrap) {
					t.Fatalf("FileNameMatch(%q) error = %v, want wrapping %v", tt.fileName, err, tt.wantErrWrap)
				}
				return
			}
			if err != nil {
				t.Fatalf("FileNameMatch(%q) unexpected error: %v", tt.fileName, err)
			}
			if processID != tt.processID || treeName != tt.treeName {
				t.Fatalf("FileNameMatch(%q) = (%q, %q), want (%q, %q)", tt.fileName, processID, treeName, tt.processID, tt.treeName)
			}
		})
	}
}

func TestCanonicalizeLine_OrderIndependent(t *testing.T) {
	a := CanonicalizeLine("B->-C A")
	b := CanonicalizeLine("A B->-C")
	if a != b {
		t.Fatalf("CanonicalizeLine not order-independent: %q vs %q", a, b)
	}
}

func TestParseLine_SimpleChain(t *testing.T) {
	in := types.NewInterner()
	dag, err := ParseLine("A->-B B->-C", in, "p1", "p1-0")
	if err != nil {
		t.Fatalf("ParseLine() error = %v", err)
	}
	a, c := in.Intern("A"), in.Intern("C")
	if !dag.HasEdge(a, c) {
		t.Fatalf("expected transitive edge A->C after closure")
	}
	if dag.NodeCount() != 4 {
		t.Fatalf("NodeCount() = %d, want 4 (root, A, B, C)", dag.NodeCount())
	}
}

func TestParseLine_ClusterAtom(t *testing.T) {
	in := types.NewInterner()
	dag, err := ParseLine("A-?-B", in, "p1", "p1-0")
	if err != nil {
		t.Fatalf("ParseLine() error = %v", err)
	}
	a, b := in.Intern("A"), in.Intern("B")
	if !dag.Clusters.SameCluster(a, b) {
		t.Fatalf("expected A and B to be cluster-mates")
	}
}

func TestParseLine_CycleIsNonDAG(t *testing.T) {
	in := types.NewInterner()
	_, err := ParseLine("A->-B B->-A", in, "p1", "p1-0")
	if !errors.Is(err, types.ErrNonDAG) {
		t.Fatalf("ParseLine() error = %v, want wrapping ErrNonDAG", err)
	}
}

func TestParseLine_LeadingIDOverridesName(t *testing.T) {
	in := types.NewInterner()
	dag, err := ParseLine("myname,A->-B", in, "p1", "p1-0")
	if err != nil {
		t.Fatalf("ParseLine() error = %v", err)
	}
	if dag.Name != "myname" {
		t.Fatalf("dag.Name = %q, want %q", dag.Name, "myname")
	}
}

func TestParseLine_MalformedAtom(t *testing.T) {
	in := types.NewInterner()
	_, err := ParseLine("A->-", in, "p1", "p1-0")
	if !errors.Is(err, types.ErrParse) {
		t.Fatalf("ParseLine() error = %v, want wrapping ErrParse", err)
	}
}

func TestIngest_SingleFileOneDAGPerLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lines.txt")
	content := "A->-B\nB->-C\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	res, err := Ingest(context.Background(), path, 1, nil)
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if len(res.Processes) != 2 {
		t.Fatalf("len(res.Processes) = %d, want 2 (one process per line)", len(res.Processes))
	}
	for _, processID := range []string{"0", "1"} {
		dags, ok := res.Processes[processID]
		if !ok || len(dags) != 1 {
			t.Fatalf("Processes[%q] = %v, want exactly one DAG", processID, dags)
		}
	}
}

func TestIngest_DirectoryDedupesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	file0 := filepath.Join(dir, "p1-0_trees.txt")
	file1 := filepath.Join(dir, "p1-1_trees.txt")
	// The first line of file1 is a token-reordering of file0's line and
	// must be suppressed as a duplicate for process p1.
	if err := os.WriteFile(file0, []byte("A->-B B->-C\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := os.WriteFile(file1, []byte("B->-C A->-B\nA->-C\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	res, err := Ingest(context.Background(), dir, 2, nil)
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	dags, ok := res.Processes["p1"]
	if !ok {
		t.Fatalf("expected process p1 in result, got %v", res.ProcessOrder)
	}
	if len(dags) != 2 {
		t.Fatalf("len(Processes[p1]) = %d, want 2 (duplicate line suppressed)", len(dags))
	}
}

func TestIngest_UnreadableDirectoryFails(t *testing.T) {
	if _, err := Ingest(context.Background(), filepath.Join(t.TempDir(), "missing"), 1, nil); !errors.Is(err, types.ErrIO) {
		t.Fatalf("Ingest() error = %v, want wrapping ErrIO", err)
	}
}
