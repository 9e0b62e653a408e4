// Package normalize maps raw node and edge records from the legacy and the new
// extractor into the canonical model.
//
// Field mapping for nodes:
//
//	canonical   legacy   new
//	label       type     type
//	name        label    name
//	file        file     file
//	id          id       id
//
// The legacy producer stores the human name under "label" and the kind under
// "type"; the cross-mapping above is intentional.
package normalize

import (
	"strings"

	"github.com/agenthands/graphparity/internal/core/model"
)

// Schema selects the normalizer variant for one side of the comparison.
type Schema int

const (
	Legacy Schema = iota
	New
)

func (s Schema) String() string {
	switch s {
	case Legacy:
		return "legacy"
	case New:
		return "new"
	default:
		return "unknown"
	}
}

// Index resolves raw node ids of one side to their canonical node.
type Index map[model.Value]model.Node

// Add normalizes r as a node of schema s, stores it under its raw id and
// returns it. A later node with the same id replaces the earlier one.
func (idx Index) Add(s Schema, r model.Record) model.Node {
	n := s.Node(r)
	idx[n.ID] = n
	return n
}

func (s Schema) Node(r model.Record) model.Node {
	if s == Legacy {
		return LegacyNode(r)
	}
	return NewNode(r)
}

func (s Schema) Edge(r model.Record, idx Index) model.Edge {
	if s == Legacy {
		return LegacyEdge(r, idx)
	}
	return NewEdge(r, idx)
}

func LegacyNode(r model.Record) model.Node {
	return model.Node{
		Label: r.Get("type"),
		Name:  r.Get("label"),
		File:  r.Get("file"),
		ID:    r.Get("id"),
	}
}

func NewNode(r model.Record) model.Node {
	return model.Node{
		Label: r.Get("type"),
		Name:  r.Get("name"),
		File:  r.Get("file"),
		ID:    r.Get("id"),
	}
}

// LegacyEdge resolves endpoints through idx and falls back to the raw id.
func LegacyEdge(r model.Record, idx Index) model.Edge {
	return model.Edge{
		Source: resolveLegacy(r.Get("source"), idx),
		Target: resolveLegacy(r.Get("target"), idx),
		Type:   r.Get("type"),
	}
}

// NewEdge resolves endpoints through idx. New ids are "file:name", so an
// endpoint missing from idx (an external reference) resolves to the part after
// the last colon.
func NewEdge(r model.Record, idx Index) model.Edge {
	return model.Edge{
		Source: resolveNew(r.Get("source"), idx),
		Target: resolveNew(r.Get("target"), idx),
		Type:   r.Get("type"),
	}
}

func resolveLegacy(id model.Value, idx Index) model.Value {
	if n, ok := idx[id]; ok {
		return n.Name
	}
	return id
}

func resolveNew(id model.Value, idx Index) model.Value {
	if n, ok := idx[id]; ok {
		return n.Name
	}
	if s, ok := id.Str(); ok {
		if i := strings.LastIndexByte(s, ':'); i >= 0 {
			return model.String(s[i+1:])
		}
	}
	return id
}
