package model

import (
	"encoding/json"
	"fmt"
)

// Edge is a directed relationship with both endpoints resolved to node names.
type Edge struct {
	Source Value `json:"source"`
	Target Value `json:"target"`
	Type   Value `json:"type"`
}

// EdgeKey is the identity of an edge across producers.
type EdgeKey struct {
	Source Value
	Target Value
	Type   Value
}

func (e Edge) Key() EdgeKey {
	return EdgeKey(e)
}

func (k EdgeKey) String() string {
	return fmt.Sprintf("(%s, %s, %s)", k.Source, k.Target, k.Type)
}

func (k EdgeKey) MarshalJSON() ([]byte, error) {
	return marshalTriple(k.Source, k.Target, k.Type)
}

func marshalTriple(a, b, c Value) ([]byte, error) {
	return json.Marshal([3]Value{a, b, c})
}
