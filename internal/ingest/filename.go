package ingest

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yesoreyeram/thaiyyal/backend/pkg/types"
)

var dashTreeIndexRe = regexp.MustCompile(`^(.+)-(\d+)$`)

// FileNameMatch parses a per-process input file name into its process id
// and tree name, per the grammar
//
//	<base>[-<tree_index>]_<suffix>.<ext>
//
// (spec §4.1). The presence of "-<digits>" immediately before the
// "_<suffix>" segment indicates multiple trees for one process: process id
// is <base>, tree name is "<base>-<tree_index>". Otherwise the process id
// is the pre-suffix stem with any trailing digits stripped, and the tree
// name is "<process_id>-0".
func FileNameMatch(fileName string) (processID, treeName string, err error) {
	ext := filepath.Ext(fileName)
	if ext != ".txt" && ext != ".gexf" {
		return "", "", fmt.Errorf("%w: unsupported extension in file name %q", types.ErrParse, fileName)
	}
	stem := strings.TrimSuffix(fileName, ext)
	if stem == "" {
		return "", "", fmt.Errorf("%w: empty file name stem in %q", types.ErrParse, fileName)
	}

	prefix := stem
	if idx := strings.LastIndex(stem, "_"); idx > 0 {
		prefix = stem[:idx]
	}

	if m := dashTreeIndexRe.FindStringSubmatch(prefix); m != nil {
		return m[1], m[1] + "-" + m[2], nil
	}

	base := strings.TrimRight(prefix, "0123456789")
	if base == "" {
		base = prefix
	}
	return base, base + "-0", nil
}
