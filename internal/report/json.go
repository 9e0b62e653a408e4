package report

import (
	"encoding/json"
	"io"

	"github.com/agenthands/graphparity/internal/core/parity"
)

func WriteJSON(w io.Writer, res *parity.Result, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(Build(res, opts))
}
