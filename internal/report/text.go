package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/agenthands/graphparity/internal/core/parity"
)

const (
	Banner       = "Starting verification..."
	PerfectMatch = "✅ PERFECT MATCH"
	Mismatch     = "❌ MISMATCH"
)

// WriteText writes the human-readable report.
func WriteText(w io.Writer, res *parity.Result, opts Options) error {
	opts = opts.withDefaults()
	var b strings.Builder

	fmt.Fprintln(&b, "--- Node Comparison (Label, Name, FileBasename) ---")
	fmt.Fprintf(&b, "Common: %d\n", len(res.Nodes.Common))
	writeSet(&b, "Missing in "+opts.NewSide, " - ", res.Nodes.Missing, opts.Samples)
	writeSet(&b, "Extra in "+opts.NewSide, " + ", res.Nodes.Extra, opts.Samples)

	fmt.Fprintln(&b, "\n--- Edge Comparison (SrcName, TgtName, Type) ---")
	fmt.Fprintf(&b, "Common: %d\n", len(res.Edges.Common))
	if len(res.Edges.Common) > 0 && opts.Samples > 0 {
		fmt.Fprintln(&b, "Sample common edges:")
		writeSamples(&b, " = ", res.Edges.Common, opts.Samples)
	}
	writeSet(&b, "Missing in "+opts.NewSide, " - ", res.Edges.Missing, opts.Samples)
	writeSet(&b, "Extra in "+opts.NewSide, " + ", res.Edges.Extra, opts.Samples)

	if res.Match() {
		fmt.Fprintln(&b, "\n"+PerfectMatch)
	} else {
		fmt.Fprintln(&b, "\n"+Mismatch)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSet[K parity.Key](b *strings.Builder, title, prefix string, keys []K, n int) {
	fmt.Fprintf(b, "%s: %d\n", title, len(keys))
	writeSamples(b, prefix, keys, n)
}

func writeSamples[K parity.Key](b *strings.Builder, prefix string, keys []K, n int) {
	for _, k := range head(keys, n) {
		b.WriteString(prefix)
		b.WriteString(k.String())
		b.WriteByte('\n')
	}
}
