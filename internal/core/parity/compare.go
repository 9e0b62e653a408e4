// Package parity compares the normalized legacy and new graphs.
package parity

import (
	"github.com/agenthands/graphparity/internal/core/model"
)

// Diff partitions the identity keys of one element kind. Missing holds keys
// only the legacy side has, Extra keys only the new side has.
type Diff[K Key] struct {
	Common  []K
	Missing []K
	Extra   []K
}

func diff[K Key](legacy, next Set[K]) Diff[K] {
	return Diff[K]{
		Common:  Sorted(legacy.Intersect(next)),
		Missing: Sorted(legacy.Minus(next)),
		Extra:   Sorted(next.Minus(legacy)),
	}
}

// Empty reports whether both sides agree on this element kind.
func (d Diff[K]) Empty() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0
}

type Result struct {
	RunID       string
	LegacyInput string
	NewInput    string

	Nodes Diff[model.NodeKey]
	Edges Diff[model.EdgeKey]
}

// Compare diffs nodes and edges independently. Neither side is modified.
func Compare(legacy, next *Side) *Result {
	return &Result{
		Nodes: diff(legacy.Nodes, next.Nodes),
		Edges: diff(legacy.Edges, next.Edges),
	}
}

// Match reports whether there is no node or edge difference at all.
func (r *Result) Match() bool {
	return r.Nodes.Empty() && r.Edges.Empty()
}
