package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/graphparity/internal/core/model"
)

func TestSplit(t *testing.T) {
	records, err := ReadJSONL(strings.NewReader(strings.Join([]string{
		`{"id":"n1","type":"Function"}`,
		`{"source":"n1","target":"n2","type":"calls"}`,
		`{"source":"n1","type":"dangling"}`,
		`{"source":null,"target":null}`,
		`{"id":"n2","type":"Function"}`,
	}, "\n")))
	require.NoError(t, err)

	nodes, edges := Split(records)

	require.Len(t, nodes, 3)
	assert.Equal(t, model.String("n1"), nodes[0].Get("id"))
	assert.Equal(t, model.String("dangling"), nodes[1].Get("type"))
	assert.Equal(t, model.String("n2"), nodes[2].Get("id"))

	require.Len(t, edges, 2)
	assert.Equal(t, model.String("calls"), edges[0].Get("type"))
	assert.True(t, edges[1].Get("source").IsNull())
}
