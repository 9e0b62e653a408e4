package parity

import (
	"github.com/agenthands/graphparity/internal/core/model"
	"github.com/agenthands/graphparity/internal/core/normalize"
)

// Side holds the normalized view of one producer's output.
type Side struct {
	Schema normalize.Schema
	Index  normalize.Index
	Nodes  Set[model.NodeKey]
	Edges  Set[model.EdgeKey]
}

func NewSide(schema normalize.Schema) *Side {
	return &Side{
		Schema: schema,
		Index:  normalize.Index{},
		Nodes:  Set[model.NodeKey]{},
		Edges:  Set[model.EdgeKey]{},
	}
}

// BuildSide normalizes nodes before edges so that every edge endpoint can be
// resolved against the complete index.
func BuildSide(schema normalize.Schema, nodes, edges []model.Record) *Side {
	s := NewSide(schema)
	s.AddNodes(nodes)
	s.AddEdges(edges)
	return s
}

func (s *Side) AddNodes(records []model.Record) {
	for _, r := range records {
		n := s.Index.Add(s.Schema, r)
		s.Nodes.Add(n.Key())
	}
}

func (s *Side) AddEdges(records []model.Record) {
	for _, r := range records {
		s.Edges.Add(s.Schema.Edge(r, s.Index).Key())
	}
}
