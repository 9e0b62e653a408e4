// Package report renders a parity result for people (text) and tools (JSON).
package report

import (
	"github.com/agenthands/graphparity/internal/core/model"
	"github.com/agenthands/graphparity/internal/core/parity"
)

const (
	DefaultSamples = 5
	DefaultNewSide = "Go"
)

type Options struct {
	// Samples caps the example entries listed per set.
	Samples int
	// NewSide names the new producer in headings.
	NewSide string
}

func (o Options) withDefaults() Options {
	if o.NewSide == "" {
		o.NewSide = DefaultNewSide
	}
	if o.Samples < 0 {
		o.Samples = 0
	}
	return o
}

type Samples[K parity.Key] struct {
	Common  []K `json:"common"`
	Missing []K `json:"missing"`
	Extra   []K `json:"extra"`
}

type Section[K parity.Key] struct {
	Common  int        `json:"common"`
	Missing int        `json:"missing"`
	Extra   int        `json:"extra"`
	Samples Samples[K] `json:"samples"`
}

// Report is the machine-readable form of a parity.Result.
type Report struct {
	RunID       string                 `json:"run_id"`
	LegacyInput string                 `json:"legacy_input,omitempty"`
	NewInput    string                 `json:"new_input,omitempty"`
	Nodes       Section[model.NodeKey] `json:"nodes"`
	Edges       Section[model.EdgeKey] `json:"edges"`
	Match       bool                   `json:"match"`
}

func Build(res *parity.Result, opts Options) *Report {
	opts = opts.withDefaults()
	return &Report{
		RunID:       res.RunID,
		LegacyInput: res.LegacyInput,
		NewInput:    res.NewInput,
		Nodes:       section(res.Nodes, opts.Samples),
		Edges:       section(res.Edges, opts.Samples),
		Match:       res.Match(),
	}
}

func section[K parity.Key](d parity.Diff[K], n int) Section[K] {
	return Section[K]{
		Common:  len(d.Common),
		Missing: len(d.Missing),
		Extra:   len(d.Extra),
		Samples: Samples[K]{
			Common:  head(d.Common, n),
			Missing: head(d.Missing, n),
			Extra:   head(d.Extra, n),
		},
	}
}

func head[K any](keys []K, n int) []K {
	if len(keys) > n {
		keys = keys[:n]
	}
	return append([]K{}, keys...)
}
