package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/graphparity/internal/core/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadJSONLSkipsBlankAndMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		`{"id":"n1"}`,
		``,
		`   `,
		`{"id":`,
		`not json`,
		`[1,2,3]`,
		`{"id":"n2"}`,
	}, "\n")

	records, err := ReadJSONL(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, model.String("n1"), records[0].Get("id"))
	assert.Equal(t, model.String("n2"), records[1].Get("id"))
}

func TestReadJSONLLastLineWithoutNewline(t *testing.T) {
	records, err := ReadJSONL(strings.NewReader("{\"id\":\"a\"}\r\n{\"id\":\"b\"}"))
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestReadJSONLLongLine(t *testing.T) {
	long := `{"id":"n1","doc":"` + strings.Repeat("x", 1<<20) + `"}`
	records, err := ReadJSONL(strings.NewReader(long + "\n"))
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestLoadJSONLMissingFile(t *testing.T) {
	records, err := LoadJSONL(filepath.Join(t.TempDir(), "absent.jsonl"))
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadJSONLDirectoryIsAnError(t *testing.T) {
	_, err := LoadJSONL(t.TempDir())
	assert.Error(t, err)
}

func TestLoadJSONLFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "graph.jsonl", "{\"id\":\"n1\"}\n{\"id\":\"n2\"}\n")
	records, err := LoadJSONL(path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
