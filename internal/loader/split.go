package loader

import "github.com/agenthands/graphparity/internal/core/model"

// Split separates a mixed record stream. A record carrying both "source" and
// "target" keys is an edge; everything else is a node.
func Split(records []model.Record) (nodes, edges []model.Record) {
	for _, r := range records {
		if r.Has("source") && r.Has("target") {
			edges = append(edges, r)
		} else {
			nodes = append(nodes, r)
		}
	}
	return nodes, edges
}
