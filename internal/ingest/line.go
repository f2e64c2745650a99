package ingest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yesoreyeram/thaiyyal/backend/pkg/graph"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/types"
	"github.com/yesoreyeram/thaiyyal/backend/internal/ioformat"
)

// CanonicalizeLine reduces a line to a whitespace-sorted token string, used
// to suppress duplicate trees within a single process (spec §4.1: "lines
// are canonicalised by sorting their tokens; identical canonical strings
// yield one DAG").
func CanonicalizeLine(raw string) string {
	tokens := strings.Fields(raw)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// ParseLine builds a DAG from one line of an input file. A leading
// "<id>,<edges>" form overrides the generated tree name with <id> (spec
// §6); otherwise defaultName is used. Every node reachable by the line's
// atoms is given an edge from the synthetic root, after which the DAG is
// transitively closed. A cyclic line is reported as ErrNonDAG rather than
// returned, matching the ingestor's drop-and-log handling of bad trees.
func ParseLine(raw string, interner *types.Interner, processID, defaultName string) (*graph.DAG, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty input line", types.ErrParse)
	}

	name := defaultName
	body := trimmed
	if idx := strings.Index(trimmed, ","); idx >= 0 {
		name = trimmed[:idx]
		body = trimmed[idx+1:]
	}

	dag := graph.New(name, processID, 0)
	rootID := interner.Intern(types.RootLabel)
	dag.AddNode(rootID)

	for _, tok := range strings.Fields(body) {
		atom, err := ioformat.ParseAtom(tok)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", raw, err)
		}
		switch atom.Kind {
		case ioformat.AtomPrecedes:
			a, b := interner.Intern(atom.A), interner.Intern(atom.B)
			dag.AddEdge(a, b)
		case ioformat.AtomCluster:
			a, b := interner.Intern(atom.A), interner.Intern(atom.B)
			dag.AddNode(a)
			dag.AddNode(b)
			dag.Clusters.Merge(a, b)
		case ioformat.AtomDisjoint:
			a, b := interner.Intern(atom.A), interner.Intern(atom.B)
			dag.AddNode(a)
			dag.AddNode(b)
		case ioformat.AtomNode:
			dag.AddNode(interner.Intern(atom.A))
		}
	}

	for _, n := range dag.Nodes() {
		if n == rootID {
			continue
		}
		dag.AddEdge(rootID, n)
	}

	if err := dag.TransitiveClose(); err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrNonDAG, name)
	}
	return dag, nil
}
