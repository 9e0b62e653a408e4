package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/graphparity/internal/report"
)

func writeLines(t *testing.T, path string, lines ...string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func fixtures(t *testing.T) (legacy, matching, differing string) {
	t.Helper()
	dir := t.TempDir()
	legacy = writeLines(t, filepath.Join(dir, "legacy.jsonl"),
		`{"id":"n1","type":"Function","label":"Foo","file":"/a/b/x.go"}`,
		`{"id":"n2","type":"Function","label":"Bar","file":"/a/b/x.go"}`,
		`{"source":"n1","target":"n2","type":"calls"}`,
	)
	matching = writeLines(t, filepath.Join(dir, "new.jsonl"),
		`{"id":"x.go:Foo","type":"Function","name":"Foo","file":"x.go"}`,
		`{"id":"x.go:Bar","type":"Function","name":"Bar","file":"x.go"}`,
		`{"source":"x.go:Foo","target":"x.go:Bar","type":"calls"}`,
	)
	differing = writeLines(t, filepath.Join(dir, "differing.jsonl"),
		`{"id":"x.go:Foo","type":"Function","name":"Foo","file":"x.go"}`,
	)
	return legacy, matching, differing
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestUsageError(t *testing.T) {
	code, stdout, stderr := runCLI(t, "only-one")
	assert.Equal(t, exitError, code)
	assert.Equal(t, report.Banner+"\n", stdout)
	assert.Contains(t, stderr, "<legacy_input> <new_file>")

	code, stdout, _ = runCLI(t)
	assert.Equal(t, exitError, code)
	assert.Equal(t, report.Banner+"\n", stdout)
}

func TestUsageErrorJSONHasNoBanner(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--format", "json", "only-one")
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "<legacy_input> <new_file>")
}

func TestPerfectMatch(t *testing.T) {
	legacy, matching, _ := fixtures(t)

	code, stdout, _ := runCLI(t, legacy, matching)
	assert.Equal(t, exitOK, code)
	assert.True(t, strings.HasPrefix(stdout, "Starting verification...\n"))
	assert.Contains(t, stdout, "Common: 2\n")
	assert.Contains(t, stdout, "✅ PERFECT MATCH")
	assert.NotContains(t, stdout, "MISMATCH")
}

func TestMismatchStillExitsZero(t *testing.T) {
	legacy, _, differing := fixtures(t)

	code, stdout, _ := runCLI(t, legacy, differing)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "❌ MISMATCH")
	assert.Contains(t, stdout, "Missing in Go: 1\n")
}

func TestStrictMismatch(t *testing.T) {
	legacy, matching, differing := fixtures(t)

	code, _, _ := runCLI(t, "--strict", legacy, differing)
	assert.Equal(t, exitMismatch, code)

	code, _, _ = runCLI(t, "--strict", legacy, matching)
	assert.Equal(t, exitOK, code)
}

func TestThirdArgumentIgnored(t *testing.T) {
	legacy, matching, _ := fixtures(t)

	code, stdout, _ := runCLI(t, legacy, matching, "extra")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "PERFECT MATCH")
}

func TestJSONFormat(t *testing.T) {
	legacy, _, differing := fixtures(t)

	code, stdout, _ := runCLI(t, "-f", "json", "-n", "1", legacy, differing)
	require.Equal(t, exitOK, code)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, false, got["match"])
	nodes := got["nodes"].(map[string]any)
	assert.EqualValues(t, 1, nodes["missing"])
}

func TestConfigFile(t *testing.T) {
	legacy, _, differing := fixtures(t)
	cfgPath := filepath.Join(t.TempDir(), "graphparity.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[report]\nnew_side = \"v2\"\nstrict = true\n"), 0o644))

	code, stdout, _ := runCLI(t, "-c", cfgPath, legacy, differing)
	assert.Equal(t, exitMismatch, code)
	assert.Contains(t, stdout, "Missing in v2: 1\n")
}

func TestMissingLegacyInput(t *testing.T) {
	_, matching, _ := fixtures(t)

	code, stdout, _ := runCLI(t, filepath.Join(t.TempDir(), "absent"), matching)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Extra in Go: 2\n")
	assert.Contains(t, stdout, "Extra in Go: 1\n")
	assert.Contains(t, stdout, "Missing in Go: 0\n")
}

func TestRunErrorExitsOne(t *testing.T) {
	legacy, _, _ := fixtures(t)

	code, _, _ := runCLI(t, legacy, t.TempDir())
	assert.Equal(t, exitError, code)
}

func TestInvalidFormat(t *testing.T) {
	legacy, matching, _ := fixtures(t)

	code, _, _ := runCLI(t, "-f", "xml", legacy, matching)
	assert.Equal(t, exitError, code)
}
