package model

import "fmt"

// Node is the schema-independent form of a graph entity. Label is always the
// semantic category ("Function", "File", ...) and Name the human identifier,
// whichever raw fields they were read from.
type Node struct {
	Label Value `json:"label"`
	Name  Value `json:"name"`
	File  Value `json:"file"`
	ID    Value `json:"id"`
}

// NodeKey decides whether two nodes from different producers are the same.
type NodeKey struct {
	Label Value
	Name  Value
	File  Value // basename only
}

func (n Node) Key() NodeKey {
	return NodeKey{
		Label: n.Label,
		Name:  n.Name,
		File:  n.File.Base(),
	}
}

func (k NodeKey) String() string {
	return fmt.Sprintf("(%s, %s, %s)", k.Label, k.Name, k.File)
}

func (k NodeKey) MarshalJSON() ([]byte, error) {
	return marshalTriple(k.Label, k.Name, k.File)
}
