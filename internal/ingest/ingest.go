// Package ingest implements the DAG Ingestor: turning a single text file,
// a directory of per-process text files, or GEXF files into the per-process
// map of DAGs the rest of the pipeline operates on.
package ingest

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/yesoreyeram/thaiyyal/backend/pkg/graph"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/logging"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/types"
)

// Diagnostic records a dropped file or tree, surfaced to the caller instead
// of aborting the whole run.
type Diagnostic struct {
	ProcessID string
	TreeName  string
	Err       error
}

// Result is the output of an ingestion run: the per-process DAG lists keyed
// the way the Pair Enumerator expects, in deterministic process order.
type Result struct {
	ProcessOrder []string
	Processes    map[string][]*graph.DAG
	Interner     *types.Interner
	Diagnostics  []Diagnostic
}

type fileEntry struct {
	path     string
	treeName string
}

// Ingest reads path (a single file or a directory) and builds the
// per-process DAG map. Cores bounds the number of processes ingested
// concurrently in directory mode (spec §4.1).
func Ingest(ctx context.Context, path string, cores int, logger *logging.Logger) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrIO, err)
	}

	interner := types.NewInterner()
	res := &Result{
		Processes: make(map[string][]*graph.DAG),
		Interner:  interner,
	}

	if info.IsDir() {
		if err := ingestDirectory(ctx, path, cores, interner, res, logger); err != nil {
			return nil, err
		}
	} else {
		if err := ingestSingleFile(path, interner, res); err != nil {
			return nil, err
		}
	}

	res.ProcessOrder = make([]string, 0, len(res.Processes))
	for p := range res.Processes {
		res.ProcessOrder = append(res.ProcessOrder, p)
	}
	sort.Strings(res.ProcessOrder)
	return res, nil
}

// ingestSingleFile implements the "one DAG per line; each line becomes its
// own process" mode (spec §4.1).
func ingestSingleFile(path string, interner *types.Interner, res *Result) error {
	lines, err := readLines(path)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrIO, err)
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		processID := fmt.Sprintf("%d", i)
		treeName := processID + "-0"
		dag, err := ParseLine(line, interner, processID, treeName)
		if err != nil {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{ProcessID: processID, TreeName: treeName, Err: err})
			continue
		}
		res.Processes[processID] = []*graph.DAG{dag}
	}
	return nil
}

// ingestDirectory implements the per-process-files mode: .txt files are
// grouped by process_id via the file-name grammar, lines are deduplicated
// within each process across every contributing file, and each process is
// ingested by its own worker, bounded by cores. .gexf files are read
// afterward and appended to whichever process they name.
func ingestDirectory(ctx context.Context, dir string, cores int, interner *types.Interner, res *Result, logger *logging.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrIO, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	txtGroups := make(map[string][]fileEntry)
	var txtOrder []string
	gexfGroups := make(map[string][]fileEntry)

	for _, name := range names {
		ext := filepath.Ext(name)
		if ext != ".txt" && ext != ".gexf" {
			continue
		}
		processID, treeName, err := FileNameMatch(name)
		if err != nil {
			if logger != nil {
				logger.WithField("file", name).WithError(err).Warn("skipping input file with unrecognised name")
			}
			continue
		}
		entry := fileEntry{path: filepath.Join(dir, name), treeName: treeName}
		if ext == ".txt" {
			if _, ok := txtGroups[processID]; !ok {
				txtOrder = append(txtOrder, processID)
			}
			txtGroups[processID] = append(txtGroups[processID], entry)
		} else {
			gexfGroups[processID] = append(gexfGroups[processID], entry)
		}
	}

	var mu sync.Mutex
	g, _ := errgroup.WithContext(ctx)
	if cores > 0 {
		g.SetLimit(cores)
	}

	for _, processID := range txtOrder {
		processID := processID
		files := txtGroups[processID]
		g.Go(func() error {
			dags, diags := ingestProcessFiles(processID, files, interner)
			mu.Lock()
			res.Processes[processID] = append(res.Processes[processID], dags...)
			res.Diagnostics = append(res.Diagnostics, diags...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var gexfProcessOrder []string
	for processID := range gexfGroups {
		gexfProcessOrder = append(gexfProcessOrder, processID)
	}
	sort.Strings(gexfProcessOrder)

	for _, processID := range gexfProcessOrder {
		for _, entry := range gexfGroups[processID] {
			dag, err := readGEXFFile(entry.path, interner, processID, entry.treeName)
			if err != nil {
				res.Diagnostics = append(res.Diagnostics, Diagnostic{ProcessID: processID, TreeName: entry.treeName, Err: err})
				if logger != nil {
					logger.WithProcessID(processID).WithTreeName(entry.treeName).WithError(err).Warn("dropping gexf tree")
				}
				continue
			}
			res.Processes[processID] = append(res.Processes[processID], dag)
		}
	}

	return nil
}

// ingestProcessFiles reads every file belonging to one process in order,
// deduplicating lines by their canonical sorted-token form across the
// whole process before parsing each surviving line into a DAG.
func ingestProcessFiles(processID string, files []fileEntry, interner *types.Interner) ([]*graph.DAG, []Diagnostic) {
	var dags []*graph.DAG
	var diags []Diagnostic
	seen := make(map[string]struct{})

	for _, file := range files {
		lines, err := readLines(file.path)
		if err != nil {
			diags = append(diags, Diagnostic{ProcessID: processID, TreeName: file.treeName, Err: fmt.Errorf("%w: %v", types.ErrIO, err)})
			continue
		}
		for _, line := range lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			canon := CanonicalizeLine(line)
			if _, dup := seen[canon]; dup {
				continue
			}
			seen[canon] = struct{}{}

			dag, err := ParseLine(line, interner, processID, file.treeName)
			if err != nil {
				diags = append(diags, Diagnostic{ProcessID: processID, TreeName: file.treeName, Err: err})
				continue
			}
			dags = append(dags, dag)
		}
	}
	return dags, diags
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func readGEXFFile(path string, interner *types.Interner, processID, treeName string) (*graph.DAG, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrIO, err)
	}
	defer f.Close()
	return ReadGEXF(f, interner, processID, treeName)
}
