// Package loader reads the raw records of both sides of a comparison.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/agenthands/graphparity/internal/core/model"
)

// LoadJSONL reads a newline-delimited JSON file. A missing file is not an
// error: it is reported as a warning and yields no records.
func LoadJSONL(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("file not found", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, err := ReadJSONL(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	slog.Debug("loaded records", "path", path, "count", len(records))
	return records, nil
}

// ReadJSONL decodes one JSON object per line. Blank lines and lines that are
// not a JSON object are skipped.
func ReadJSONL(r io.Reader) ([]model.Record, error) {
	br := bufio.NewReader(r)
	var records []model.Record

	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if rec, ok := model.ParseRecord(line); ok {
			records = append(records, rec)
		} else if strings.TrimSpace(line) != "" {
			slog.Debug("skipping malformed line", "line", lineNo)
		}

		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
