package ioformat

import (
	"fmt"
	"strings"

	"github.com/yesoreyeram/thaiyyal/backend/pkg/types"
)

// The three infix operators of the edge-atom grammar, each exactly three
// characters wide (spec §6).
const (
	OpPrecedes = "->-"
	OpCluster  = "-?-"
	OpDisjoint = "-/-"
)

// AtomKind classifies a single whitespace-delimited token from an input
// line.
type AtomKind int

const (
	// AtomNode is a bare token naming a single node with no asserted
	// relation.
	AtomNode AtomKind = iota
	// AtomPrecedes is "A->-B".
	AtomPrecedes
	// AtomCluster is "A-?-B".
	AtomCluster
	// AtomDisjoint is "A-/-B".
	AtomDisjoint
)

// Atom is one parsed token. B is empty for AtomNode.
type Atom struct {
	Kind AtomKind
	A, B types.NodeLabel
}

var operators = []struct {
	kind AtomKind
	op   string
}{
	{AtomPrecedes, OpPrecedes},
	{AtomCluster, OpCluster},
	{AtomDisjoint, OpDisjoint},
}

// ParseAtom classifies a single token per the edge-atom grammar (spec §6).
func ParseAtom(tok string) (Atom, error) {
	if tok == "" {
		return Atom{}, fmt.Errorf("%w: empty edge atom", types.ErrParse)
	}
	for _, o := range operators {
		idx := strings.Index(tok, o.op)
		if idx < 0 {
			continue
		}
		a, b := tok[:idx], tok[idx+len(o.op):]
		if a == "" || b == "" {
			return Atom{}, fmt.Errorf("%w: malformed edge atom %q", types.ErrParse, tok)
		}
		return Atom{Kind: o.kind, A: types.NodeLabel(a), B: types.NodeLabel(b)}, nil
	}
	return Atom{Kind: AtomNode, A: types.NodeLabel(tok)}, nil
}

// FormatPrecedes renders a directed precedence edge atom.
func FormatPrecedes(a, b types.NodeLabel) string {
	return string(a) + OpPrecedes + string(b)
}

// FormatCluster renders a cluster-membership edge atom.
func FormatCluster(a, b types.NodeLabel) string {
	return string(a) + OpCluster + string(b)
}

// FormatDisjoint renders an explicit-incomparability edge atom.
func FormatDisjoint(a, b types.NodeLabel) string {
	return string(a) + OpDisjoint + string(b)
}
