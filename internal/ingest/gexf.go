package ingest

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/yesoreyeram/thaiyyal/backend/pkg/graph"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/types"
)

// gexfDocument is a minimal GEXF structure: just enough to recover nodes,
// edges, and a "cluster_nodes" node attribute (spec §4.1, "GEXF input").
// The file is otherwise read as-is; unknown elements are ignored by
// encoding/xml.
type gexfDocument struct {
	XMLName xml.Name  `xml:"gexf"`
	Graph   gexfGraph `xml:"graph"`
}

type gexfGraph struct {
	Attributes []gexfAttributeDecl `xml:"attributes>attribute"`
	Nodes      []gexfNode          `xml:"nodes>node"`
	Edges      []gexfEdge          `xml:"edges>edge"`
}

type gexfAttributeDecl struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
}

type gexfNode struct {
	ID        string         `xml:"id,attr"`
	AttValues []gexfAttValue `xml:"attvalues>attvalue"`
}

type gexfAttValue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

type gexfEdge struct {
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

const clusterNodesAttrTitle = "cluster_nodes"

// ReadGEXF decodes a GEXF document into a DAG, attaching the synthetic
// root and applying transitive closure identically to the text-format
// path (spec §4.1).
func ReadGEXF(r io.Reader, interner *types.Interner, processID, treeName string) (*graph.DAG, error) {
	var doc gexfDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: malformed gexf: %v", types.ErrParse, err)
	}

	clusterAttrID := ""
	for _, a := range doc.Graph.Attributes {
		if a.Title == clusterNodesAttrTitle {
			clusterAttrID = a.ID
			break
		}
	}

	dag := graph.New(treeName, processID, 0)
	rootID := interner.Intern(types.RootLabel)
	dag.AddNode(rootID)

	for _, n := range doc.Graph.Nodes {
		dag.AddNode(interner.Intern(types.NodeLabel(n.ID)))
	}
	for _, e := range doc.Graph.Edges {
		dag.AddEdge(interner.Intern(types.NodeLabel(e.Source)), interner.Intern(types.NodeLabel(e.Target)))
	}

	if clusterAttrID != "" {
		for _, n := range doc.Graph.Nodes {
			var clusterValue string
			for _, av := range n.AttValues {
				if av.For == clusterAttrID {
					clusterValue = av.Value
					break
				}
			}
			if clusterValue == "" {
				continue
			}
			a := interner.Intern(types.NodeLabel(n.ID))
			for _, mate := range strings.Split(clusterValue, ",") {
				mate = strings.TrimSpace(mate)
				if mate == "" {
					continue
				}
				dag.Clusters.Merge(a, interner.Intern(types.NodeLabel(mate)))
			}
		}
	}

	for _, n := range dag.Nodes() {
		if n == rootID {
			continue
		}
		dag.AddEdge(rootID, n)
	}

	if err := dag.TransitiveClose(); err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrNonDAG, treeName)
	}
	return dag, nil
}
