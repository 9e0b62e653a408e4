package loader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/agenthands/graphparity/internal/core/model"
	"github.com/agenthands/graphparity/internal/driver"
)

const (
	DefaultNodesFile = "nodes.jsonl"
	DefaultEdgesFile = "edges.jsonl"
)

// Connector opens a graph database given the URI passed as legacy input.
type Connector func(ctx context.Context, uri string) (driver.GraphDriver, error)

type Options struct {
	// NodesFile and EdgesFile are looked up inside a legacy directory.
	NodesFile string
	EdgesFile string
	Connect   Connector
}

var graphSchemes = []string{
	"neo4j://", "neo4j+s://", "neo4j+ssc://",
	"bolt://", "bolt+s://", "bolt+ssc://",
}

// IsGraphURI reports whether input names a Neo4j database rather than a path.
func IsGraphURI(input string) bool {
	for _, scheme := range graphSchemes {
		if strings.HasPrefix(input, scheme) {
			return true
		}
	}
	return false
}

// LoadLegacy reads the legacy side from a Neo4j URI, a directory holding the
// split node and edge files, or a single mixed file.
func LoadLegacy(ctx context.Context, input string, opts Options) (nodes, edges []model.Record, err error) {
	if IsGraphURI(input) {
		return loadFromGraph(ctx, input, opts.Connect)
	}

	if fi, err := os.Stat(input); err == nil && fi.IsDir() {
		nodesFile, edgesFile := opts.NodesFile, opts.EdgesFile
		if nodesFile == "" {
			nodesFile = DefaultNodesFile
		}
		if edgesFile == "" {
			edgesFile = DefaultEdgesFile
		}

		if nodes, err = LoadJSONL(filepath.Join(input, nodesFile)); err != nil {
			return nil, nil, err
		}
		if edges, err = LoadJSONL(filepath.Join(input, edgesFile)); err != nil {
			return nil, nil, err
		}
		return nodes, edges, nil
	}

	return LoadMixed(input)
}

// LoadMixed reads one file holding both nodes and edges.
func LoadMixed(path string) (nodes, edges []model.Record, err error) {
	records, err := LoadJSONL(path)
	if err != nil {
		return nil, nil, err
	}
	nodes, edges = Split(records)
	return nodes, edges, nil
}

func loadFromGraph(ctx context.Context, uri string, connect Connector) ([]model.Record, []model.Record, error) {
	if connect == nil {
		return nil, nil, fmt.Errorf("no graph connector configured for %s", uri)
	}
	d, err := connect(ctx, uri)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if err := d.Close(ctx); err != nil {
			slog.Warn("failed to close graph driver", "err", err)
		}
	}()

	return LoadGraph(ctx, d)
}
