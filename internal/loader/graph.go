package loader

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/agenthands/graphparity/internal/core/model"
	"github.com/agenthands/graphparity/internal/driver"
)

// LoadGraph exports a legacy graph stored in Neo4j back into raw records, in
// the same shape as the nodes.jsonl and edges.jsonl it was imported from.
func LoadGraph(ctx context.Context, d driver.GraphDriver) (nodes, edges []model.Record, err error) {
	res, err := d.ExecuteQuery(ctx, driver.ExportNodesQuery, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to export nodes: %w", err)
	}
	for _, rec := range res.Records {
		props, _ := rec.Get("props")
		r, err := toRecord(props)
		if err != nil {
			return nil, nil, err
		}
		nodes = append(nodes, r)
	}

	res, err = d.ExecuteQuery(ctx, driver.ExportEdgesQuery, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to export edges: %w", err)
	}
	for _, rec := range res.Records {
		row := map[string]interface{}{}
		for _, key := range []string{"source", "target", "type"} {
			row[key], _ = rec.Get(key)
		}
		r, err := toRecord(row)
		if err != nil {
			return nil, nil, err
		}
		edges = append(edges, r)
	}

	return nodes, edges, nil
}

func toRecord(v interface{}) (model.Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return model.Record{}, fmt.Errorf("failed to encode graph row: %w", err)
	}
	r, ok := model.ParseRecord(string(data))
	if !ok {
		return model.Record{}, fmt.Errorf("graph row is not an object: %s", data)
	}
	return r, nil
}
