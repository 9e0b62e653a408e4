package core

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agenthands/graphparity/internal/config"
	"github.com/agenthands/graphparity/internal/core/normalize"
	"github.com/agenthands/graphparity/internal/core/parity"
	"github.com/agenthands/graphparity/internal/driver"
	"github.com/agenthands/graphparity/internal/loader"
)

// Checker runs one legacy-versus-new comparison per call. It keeps no state
// between runs.
type Checker struct {
	Loader        loader.Options
	UUIDGenerator func() string
}

func NewChecker(cfg *config.Config) *Checker {
	return &Checker{
		Loader: loader.Options{
			NodesFile: cfg.Legacy.NodesFile,
			EdgesFile: cfg.Legacy.EdgesFile,
			Connect:   Neo4jConnector(cfg.Neo4j),
		},
		UUIDGenerator: uuid.NewString,
	}
}

// Neo4jConnector opens legacy graphs given as a URI with the configured
// credentials.
func Neo4jConnector(cfg config.Neo4jConfig) loader.Connector {
	return func(ctx context.Context, uri string) (driver.GraphDriver, error) {
		return driver.NewNeo4jDriver(ctx, uri, cfg.User, cfg.Password, cfg.Database)
	}
}

// Run loads both sides, normalizes each with its own schema and diffs them.
func (c *Checker) Run(ctx context.Context, legacyInput, newInput string) (*parity.Result, error) {
	runID := c.newRunID()
	log := slog.With("run_id", runID)

	lNodes, lEdges, err := loader.LoadLegacy(ctx, legacyInput, c.Loader)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded legacy side", "input", legacyInput, "nodes", len(lNodes), "edges", len(lEdges))

	nNodes, nEdges, err := loader.LoadMixed(newInput)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded new side", "input", newInput, "nodes", len(nNodes), "edges", len(nEdges))

	res := parity.Compare(
		parity.BuildSide(normalize.Legacy, lNodes, lEdges),
		parity.BuildSide(normalize.New, nNodes, nEdges),
	)
	res.RunID = runID
	res.LegacyInput = legacyInput
	res.NewInput = newInput

	log.Debug("comparison finished", "match", res.Match(),
		"nodes_missing", len(res.Nodes.Missing), "nodes_extra", len(res.Nodes.Extra),
		"edges_missing", len(res.Edges.Missing), "edges_extra", len(res.Edges.Extra))
	return res, nil
}

func (c *Checker) newRunID() string {
	if c.UUIDGenerator == nil {
		return uuid.NewString()
	}
	return c.UUIDGenerator()
}
