//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/graphparity/internal/config"
	"github.com/agenthands/graphparity/internal/core"
	"github.com/agenthands/graphparity/internal/driver"
)

// importLegacy loads rows the way the legacy importer does: every node becomes
// an :Entity carrying its raw row plus a label named after its type, every edge
// a relationship named after its type. Writes go to the leader.
func importLegacy(ctx context.Context, t *testing.T, d *driver.Neo4jDriver, nodes []map[string]any, edges []map[string]any) {
	t.Helper()

	_, err := d.ExecuteWrite(ctx, "MATCH (n:Entity) DETACH DELETE n", nil)
	require.NoError(t, err)

	for _, row := range nodes {
		q := fmt.Sprintf("MERGE (n:Entity {id: $row.id}) SET n += $row, n:%s", row["type"])
		_, err := d.ExecuteWrite(ctx, q, map[string]interface{}{"row": row})
		require.NoError(t, err)
	}
	for _, row := range edges {
		q := fmt.Sprintf(`
			MATCH (source:Entity {id: $row.source})
			MATCH (target:Entity {id: $row.target})
			MERGE (source)-[r:%s]->(target)`, row["type"])
		_, err := d.ExecuteWrite(ctx, q, map[string]interface{}{"row": row})
		require.NoError(t, err)
	}
}

func TestLegacyGraphFromNeo4j(t *testing.T) {
	_ = godotenv.Load("../../.env")

	uri := os.Getenv("NEO4J_URI")
	if uri == "" {
		t.Skip("Skipping integration test: NEO4J_URI not set")
	}

	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv())

	ctx := context.Background()
	d, err := driver.NewNeo4jDriver(ctx, uri, cfg.Neo4j.User, cfg.Neo4j.Password, cfg.Neo4j.Database)
	require.NoError(t, err)
	defer d.Close(ctx)

	importLegacy(ctx, t, d,
		[]map[string]any{
			{"id": "n1", "type": "Function", "label": "Foo", "file": "/src/x.go"},
			{"id": "n2", "type": "Function", "label": "Bar", "file": "/src/x.go"},
		},
		[]map[string]any{
			{"source": "n1", "target": "n2", "type": "calls"},
		},
	)

	newFile := filepath.Join(t.TempDir(), "new.jsonl")
	require.NoError(t, os.WriteFile(newFile, []byte(
		`{"id":"x.go:Foo","type":"Function","name":"Foo","file":"x.go"}`+"\n"+
			`{"id":"x.go:Bar","type":"Function","name":"Bar","file":"x.go"}`+"\n"+
			`{"source":"x.go:Foo","target":"x.go:Bar","type":"calls"}`+"\n"), 0o644))

	res, err := core.NewChecker(cfg).Run(ctx, uri, newFile)
	require.NoError(t, err)

	assert.Len(t, res.Nodes.Common, 2)
	assert.Len(t, res.Edges.Common, 1)
	assert.True(t, res.Match())
}
