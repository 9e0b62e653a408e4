package driver

// The legacy importer stores every node as (:Entity) with the raw JSONL row as
// its properties, and every edge as a relationship typed by the raw edge type.
const (
	ExportNodesQuery = `
		MATCH (n:Entity)
		RETURN properties(n) AS props
	`

	ExportEdgesQuery = `
		MATCH (s:Entity)-[r]->(t:Entity)
		RETURN s.id AS source, t.id AS target, type(r) AS type
	`
)
